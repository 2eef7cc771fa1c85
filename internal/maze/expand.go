package maze

import (
	"errors"
	"fmt"
)

// ErrNilGrid is returned when Expand is given no logical grid.
var ErrNilGrid = errors.New("nil logical grid")

// CellKind classifies a physical cell.
type CellKind uint8

const (
	KindWall CellKind = iota
	KindOpen
)

func (k CellKind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindWall:
		return "wall"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// PhysicalCell is one cell of the (2N)×(2N) grid.
type PhysicalCell struct {
	X, Y   int
	Height float32
	Kind   CellKind
}

// Open reports whether the cell is walkable floor.
func (c PhysicalCell) Open() bool {
	return c.Kind == KindOpen
}

// Layout is the expanded physical grid. It is read-only after Expand.
type Layout struct {
	size  int
	cells []PhysicalCell
}

// Size returns 2N, the side length of the physical grid.
func (l *Layout) Size() int {
	return l.size
}

// In reports whether (px, py) lies inside the layout.
func (l *Layout) In(px, py int) bool {
	return px >= 0 && px < l.size && py >= 0 && py < l.size
}

// Cell returns the cell at (px, py). It panics outside the layout.
func (l *Layout) Cell(px, py int) PhysicalCell {
	if !l.In(px, py) {
		panic(fmt.Sprintf("maze: physical coordinate %d:%d outside %dx%d layout", px, py, l.size, l.size))
	}
	return l.cells[py*l.size+px]
}

// Cells returns a row-major copy of all cells.
func (l *Layout) Cells() []PhysicalCell {
	out := make([]PhysicalCell, len(l.cells))
	copy(out, l.cells)
	return out
}

// IsWalkable reports whether (px, py) is an open cell. Coordinates outside
// the layout are not walkable.
func (l *Layout) IsWalkable(px, py int) bool {
	return l.In(px, py) && l.cells[py*l.size+px].Kind == KindOpen
}

// Counts returns the number of open and wall cells.
func (l *Layout) Counts() (open, walls int) {
	for _, c := range l.cells {
		if c.Kind == KindOpen {
			open++
		} else {
			walls++
		}
	}
	return open, walls
}

// Expand doubles the resolution of g. For each logical cell (x, y):
//
//	(2x,   2y)   open, the room itself
//	(2x+1, 2y)   open iff (x,y)-(x+1,y) are connected, else wall
//	(2x,   2y+1) open iff (x,y)-(x,y+1) are connected, else wall
//	(2x+1, 2y+1) always wall
//
// Neighbours past the outer edge are never consulted; those cells are
// walls. Logical cells are visited row-major and their four physical cells
// sampled in the order above, so a given rng state yields one layout.
func Expand(g *Grid, h Heights, rng Rand) (*Layout, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}

	size := g.Size() * 2
	l := &Layout{
		size:  size,
		cells: make([]PhysicalCell, size*size),
	}

	set := func(px, py int, open bool) {
		c := PhysicalCell{X: px, Y: py}
		if open {
			c.Kind = KindOpen
			c.Height = h.Open.Sample(rng)
		} else {
			c.Kind = KindWall
			c.Height = h.Wall.Sample(rng)
		}
		l.cells[py*size+px] = c
	}

	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			here := Coord{x, y}
			east := Coord{x + 1, y}
			south := Coord{x, y + 1}

			set(2*x, 2*y, true)
			set(2*x+1, 2*y, g.In(east) && g.Connected(here, east))
			set(2*x, 2*y+1, g.In(south) && g.Connected(here, south))
			set(2*x+1, 2*y+1, false)
		}
	}
	return l, nil
}
