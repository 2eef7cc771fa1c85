// Package world turns a carved maze into the level: spawn descriptors for
// every physical cell, start and finish locations, and the route between.
package world

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/labyrinth/internal/logger"
	"github.com/Faultbox/labyrinth/internal/maze"
	"github.com/Faultbox/labyrinth/pkg/math"
)

// ErrNoSpawner is returned when descriptors are handed to a nil spawner.
var ErrNoSpawner = errors.New("no spawner")

// Handle identifies an object realized by the rendering/physics side.
type Handle uint32

// Spawner realizes spawn descriptors as renderable/collidable objects.
type Spawner interface {
	Spawn(d SpawnDescriptor) (Handle, error)
}

// Options holds the generation settings.
type Options struct {
	BoardSize int
	Heights   maze.Heights
	Factory   FactoryConfig
}

// DefaultOptions returns a 16x16 board with default heights and spacing.
func DefaultOptions() Options {
	return Options{
		BoardSize: 16,
		Heights:   maze.DefaultHeights(),
		Factory:   DefaultFactoryConfig(),
	}
}

// Validate checks every option. Generate calls it before any work.
func (o Options) Validate() error {
	if err := maze.ValidateBoardSize(o.BoardSize); err != nil {
		return err
	}
	if err := o.Heights.Validate(); err != nil {
		return err
	}
	return o.Factory.Validate()
}

// World is a generated level. It is read-only after Generate returns.
type World struct {
	Grid        *maze.Grid
	Layout      *maze.Layout
	Descriptors []SpawnDescriptor

	// Start and Finish are physical coordinates of rooms.
	Start  maze.Coord
	Finish maze.Coord

	factory FactoryConfig
}

// Generate carves a maze, expands it and builds the descriptor stream.
// Carving consumes rng first, then expansion.
func Generate(opts Options, rng maze.Rand) (*World, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("generating world: %w", err)
	}

	began := time.Now()

	grid, err := maze.Carve(opts.BoardSize, rng)
	if err != nil {
		return nil, fmt.Errorf("carving maze: %w", err)
	}

	layout, err := maze.Expand(grid, opts.Heights, rng)
	if err != nil {
		return nil, fmt.Errorf("expanding maze: %w", err)
	}

	root := maze.Coord{X: opts.BoardSize / 2, Y: opts.BoardSize / 2}
	far := farthestCell(grid, root)

	w := &World{
		Grid:        grid,
		Layout:      layout,
		Descriptors: Descriptors(layout, opts.Factory),
		Start:       maze.Coord{X: root.X * 2, Y: root.Y * 2},
		Finish:      maze.Coord{X: far.X * 2, Y: far.Y * 2},
		factory:     opts.Factory,
	}

	open, walls := layout.Counts()
	logger.Named("world").Info("generated",
		zap.Int("boardSize", opts.BoardSize),
		zap.Int("edges", grid.Edges()),
		zap.Int("physicalSize", layout.Size()),
		zap.Int("open", open),
		zap.Int("walls", walls),
		zap.Int("descriptors", len(w.Descriptors)),
		zap.Stringer("start", w.Start),
		zap.Stringer("finish", w.Finish),
		zap.Duration("elapsed", time.Since(began)))

	return w, nil
}

// Spacing returns the world units per physical cell.
func (w *World) Spacing() float32 {
	return w.factory.Spacing
}

// StartPosition returns the world position of the start room.
func (w *World) StartPosition() math.Vec3 {
	return CellToWorld(w.Start.X, w.Start.Y, w.factory.Spacing)
}

// FinishPosition returns the world position of the finish room.
func (w *World) FinishPosition() math.Vec3 {
	return CellToWorld(w.Finish.X, w.Finish.Y, w.factory.Spacing)
}

// Route returns the physical path from start to finish, inclusive.
func (w *World) Route() [][2]int {
	return NewPathFinder(w.Layout).FindPath(w.Start.X, w.Start.Y, w.Finish.X, w.Finish.Y)
}

// SpawnAll hands every descriptor to s in order and returns the handles.
// It stops at the first spawn error.
func (w *World) SpawnAll(s Spawner) ([]Handle, error) {
	if s == nil {
		return nil, ErrNoSpawner
	}
	handles := make([]Handle, 0, len(w.Descriptors))
	for _, d := range w.Descriptors {
		h, err := s.Spawn(d)
		if err != nil {
			return handles, fmt.Errorf("spawning %s: %w", d.Name(), err)
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// farthestCell returns the logical cell with the longest tree distance
// from root. Ties go to the lowest row-major coordinate.
func farthestCell(g *maze.Grid, root maze.Coord) maze.Coord {
	dist := map[maze.Coord]int{root: 0}
	queue := []maze.Coord{root}
	best := root

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		d := dist[cur]
		if d > dist[best] || (d == dist[best] && rowMajorLess(cur, best)) {
			best = cur
		}

		for _, n := range g.Neighbors(cur) {
			if _, seen := dist[n]; !seen {
				dist[n] = d + 1
				queue = append(queue, n)
			}
		}
	}
	return best
}

func rowMajorLess(a, b maze.Coord) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
