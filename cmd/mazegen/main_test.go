package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/labyrinth/internal/config"
)

func TestCmdSpawns(t *testing.T) {
	g := newTestGame(t, 3, 1)

	tests := []struct {
		name    string
		args    []string
		wantErr bool
		lines   int
	}{
		{"all", nil, false, 1 + 36},
		{"limited", []string{"4"}, false, 1 + 4 + 1},
		{"zero", []string{"0"}, false, 1 + 1},
		{"negative", []string{"-1"}, true, 0},
		{"garbage", []string{"many"}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := cmdSpawns(&buf, g, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("cmdSpawns err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			got := strings.Count(buf.String(), "\n")
			if got != tt.lines {
				t.Errorf("expected %d lines, got %d:\n%s", tt.lines, got, buf.String())
			}
		})
	}
}

func TestCmdRouteAndCull(t *testing.T) {
	g := newTestGame(t, 5, 2)
	route := g.World().Route()

	var buf bytes.Buffer
	if err := cmdRoute(&buf, g); err != nil {
		t.Fatalf("cmdRoute: %v", err)
	}
	if !strings.Contains(buf.String(), "cells:") {
		t.Errorf("expected route listing, got:\n%s", buf.String())
	}

	buf.Reset()
	if err := cmdCull(&buf, g); err != nil {
		t.Fatalf("cmdCull: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "Reached finish.\n") {
		t.Errorf("expected walk to reach the finish, got:\n%s", buf.String())
	}
	if g.Ticks() != uint64(len(route)) {
		t.Errorf("expected one tick per route cell (%d), got %d", len(route), g.Ticks())
	}
}

func TestCmdInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := config.Default()
	cfg.SetSeed(5)

	var buf bytes.Buffer
	if err := cmdInit(&buf, cfg, []string{path}); err != nil {
		t.Fatalf("cmdInit: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config written: %v", err)
	}
	if !strings.Contains(buf.String(), path) {
		t.Errorf("expected written path in output, got %q", buf.String())
	}
}

func TestCmdInitError(t *testing.T) {
	// A regular file where a directory is needed makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := cmdInit(&buf, config.Default(), []string{filepath.Join(blocker, "config.yaml")}); err == nil {
		t.Error("expected error writing under a regular file")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on failure, got %q", buf.String())
	}
}
