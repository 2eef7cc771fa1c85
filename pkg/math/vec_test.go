package math

import (
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{3, 0, 4}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Vec3.Distance() = %v, want 5", got)
	}
	if got := a.DistanceSq(b); got != 25 {
		t.Errorf("Vec3.DistanceSq() = %v, want 25", got)
	}
}

func TestVec3XZ(t *testing.T) {
	v := Vec3{1, 9, 2}
	if got := v.XZ(); got != (Vec2{1, 2}) {
		t.Errorf("Vec3.XZ() = %v, want {1 2}", got)
	}
}

func TestVec2Distance(t *testing.T) {
	a := Vec2{1, 1}
	b := Vec2{4, 5}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Vec2.Distance() = %v, want 5", got)
	}
}
