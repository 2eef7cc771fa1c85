package world

import (
	"errors"
	"fmt"

	"github.com/Faultbox/labyrinth/internal/maze"
	"github.com/Faultbox/labyrinth/pkg/math"
)

// ErrInvalidFactory is returned for a non-positive spacing or a negative
// height scale.
var ErrInvalidFactory = errors.New("invalid cell factory settings")

// FactoryConfig controls how physical cells map into world space.
type FactoryConfig struct {
	Spacing     float32 // world units per physical cell
	HeightScale float32 // multiplier from cell height to box height
}

// DefaultFactoryConfig returns 2 units per physical cell and a 4x height scale.
func DefaultFactoryConfig() FactoryConfig {
	return FactoryConfig{
		Spacing:     2,
		HeightScale: 4,
	}
}

// Validate checks the factory settings.
func (c FactoryConfig) Validate() error {
	if c.Spacing <= 0 || c.HeightScale < 0 {
		return fmt.Errorf("%w: spacing=%g scale=%g", ErrInvalidFactory, c.Spacing, c.HeightScale)
	}
	return nil
}

// SpawnDescriptor describes one box for the rendering/physics side to
// realize. The factory does not retain it.
type SpawnDescriptor struct {
	X, Y     int       // physical cell coordinates
	Position math.Vec3 // box centre in world space
	Extent   math.Vec3 // full box size
	Kind     maze.CellKind
}

// Collidable reports whether the physics side should build a static
// collision volume for this box. Only walls need one.
func (d SpawnDescriptor) Collidable() bool {
	return d.Kind == maze.KindWall
}

// Name returns the display name for the spawned entity.
func (d SpawnDescriptor) Name() string {
	return fmt.Sprintf("Cell %d:%d", d.X, d.Y)
}

// Describe converts one physical cell into a descriptor. The box sits on
// the ground plane: its centre is raised by half its height.
func Describe(c maze.PhysicalCell, cfg FactoryConfig) SpawnDescriptor {
	height := c.Height * cfg.HeightScale
	pos := CellToWorld(c.X, c.Y, cfg.Spacing)
	pos.Y = height / 2
	return SpawnDescriptor{
		X:        c.X,
		Y:        c.Y,
		Position: pos,
		Extent:   math.Vec3{X: cfg.Spacing, Y: height, Z: cfg.Spacing},
		Kind:     c.Kind,
	}
}

// Descriptors returns one descriptor per physical cell in row-major order.
func Descriptors(l *maze.Layout, cfg FactoryConfig) []SpawnDescriptor {
	cells := l.Cells()
	out := make([]SpawnDescriptor, len(cells))
	for i, c := range cells {
		out[i] = Describe(c, cfg)
	}
	return out
}

// CellToWorld converts physical cell coordinates to a ground-level world
// position. Physical x maps to world X, physical y to world Z.
func CellToWorld(px, py int, spacing float32) math.Vec3 {
	return math.Vec3{X: float32(px) * spacing, Y: 0, Z: float32(py) * spacing}
}

// WorldToCell converts a world position to the physical cell containing it.
func WorldToCell(pos math.Vec3, spacing float32) (int, int) {
	return roundToInt(pos.X / spacing), roundToInt(pos.Z / spacing)
}

// roundToInt rounds half away from zero. Cell centres sit on integer
// multiples of the spacing, so a cell spans [c-0.5, c+0.5).
func roundToInt(v float32) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}
