package world

import (
	"testing"
)

// mockGrid is a square grid, walkable unless blocked.
type mockGrid struct {
	size    int
	blocked map[[2]int]bool
}

func newMockGrid(size int, blocked [][2]int) *mockGrid {
	g := &mockGrid{size: size, blocked: make(map[[2]int]bool)}
	for _, b := range blocked {
		g.blocked[b] = true
	}
	return g
}

func (g *mockGrid) Size() int { return g.size }

func (g *mockGrid) IsWalkable(x, y int) bool {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return false
	}
	return !g.blocked[[2]int{x, y}]
}

func TestPathFinder_FindPath_Simple(t *testing.T) {
	pf := NewPathFinder(newMockGrid(5, nil))

	path := pf.FindPath(0, 0, 4, 4)
	if path == nil {
		t.Fatal("expected path, got nil")
	}

	if path[0] != [2]int{0, 0} {
		t.Errorf("path should start at (0,0), got %v", path[0])
	}
	if last := path[len(path)-1]; last != [2]int{4, 4} {
		t.Errorf("path should end at (4,4), got %v", last)
	}

	// 4-way movement: 8 steps plus the start node.
	if len(path) != 9 {
		t.Errorf("expected path length 9, got %d", len(path))
	}
}

func TestPathFinder_FindPath_StepsAreOrthogonal(t *testing.T) {
	pf := NewPathFinder(newMockGrid(6, [][2]int{{2, 2}, {3, 2}}))

	path := pf.FindPath(0, 0, 5, 5)
	for i := 1; i < len(path); i++ {
		dx := abs(path[i][0] - path[i-1][0])
		dy := abs(path[i][1] - path[i-1][1])
		if dx+dy != 1 {
			t.Fatalf("non-orthogonal step %v -> %v", path[i-1], path[i])
		}
	}
}

func TestPathFinder_FindPath_WithObstacle(t *testing.T) {
	blocked := [][2]int{
		{2, 0}, {2, 1}, {2, 2}, {2, 3},
	}
	pf := NewPathFinder(newMockGrid(5, blocked))

	path := pf.FindPath(0, 2, 4, 2)
	if path == nil {
		t.Fatal("expected path around obstacle, got nil")
	}

	for _, p := range path {
		if p[0] == 2 && p[1] < 4 {
			t.Errorf("path went through blocked cell at (%d,%d)", p[0], p[1])
		}
	}
}

func TestPathFinder_FindPath_NoPath(t *testing.T) {
	blocked := [][2]int{
		{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4},
	}
	pf := NewPathFinder(newMockGrid(5, blocked))

	if path := pf.FindPath(0, 2, 4, 2); path != nil {
		t.Errorf("expected no path, got %v", path)
	}
}

func TestPathFinder_FindPath_SameStartGoal(t *testing.T) {
	pf := NewPathFinder(newMockGrid(5, nil))

	path := pf.FindPath(2, 2, 2, 2)
	if len(path) != 1 {
		t.Errorf("expected path length 1, got %d", len(path))
	}
}

func TestPathFinder_FindPath_OutOfBounds(t *testing.T) {
	pf := NewPathFinder(newMockGrid(5, nil))

	if path := pf.FindPath(-1, 0, 4, 4); path != nil {
		t.Error("expected nil for out of bounds start")
	}
	if path := pf.FindPath(0, 0, 10, 10); path != nil {
		t.Error("expected nil for out of bounds goal")
	}
}

func TestPathFinder_FindPath_BlockedGoal(t *testing.T) {
	pf := NewPathFinder(newMockGrid(5, [][2]int{{4, 4}}))

	if path := pf.FindPath(0, 0, 4, 4); path != nil {
		t.Error("expected nil for blocked goal")
	}
}

func TestPathFinder_Nil(t *testing.T) {
	pf := NewPathFinder(nil)
	if pf != nil {
		t.Fatal("expected nil pathfinder for nil grid")
	}
	if pf.FindPath(0, 0, 1, 1) != nil {
		t.Error("expected nil path from nil pathfinder")
	}
}
