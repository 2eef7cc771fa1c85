// Package maze builds the logical maze graph and expands it into the
// doubled-resolution physical grid of rooms and walls.
package maze

import "fmt"

// Coord identifies a cell by its grid coordinates.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("%d:%d", c.X, c.Y)
}

// Dir is a set of axis-aligned directions stored as a bitmask.
type Dir uint8

const (
	DirNorth Dir = 1 << iota // y-1
	DirEast                  // x+1
	DirSouth                 // y+1
	DirWest                  // x-1
)

// directions lists the single directions in candidate order.
// Carving depends on this order for reproducibility.
var directions = [4]Dir{DirNorth, DirEast, DirSouth, DirWest}

// Offset returns the coordinate delta for a single direction.
func (d Dir) Offset() (dx, dy int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirEast:
		return 1, 0
	case DirSouth:
		return 0, 1
	case DirWest:
		return -1, 0
	}
	panic(fmt.Sprintf("maze: offset of non-single direction %04b", uint8(d)))
}

// Opposite returns the reverse of a single direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirNorth:
		return DirSouth
	case DirEast:
		return DirWest
	case DirSouth:
		return DirNorth
	case DirWest:
		return DirEast
	}
	panic(fmt.Sprintf("maze: opposite of non-single direction %04b", uint8(d)))
}

// Has reports whether all directions in other are set.
func (d Dir) Has(other Dir) bool {
	return d&other == other
}

// Count returns the number of directions in the set.
func (d Dir) Count() int {
	n := 0
	for _, dir := range directions {
		if d.Has(dir) {
			n++
		}
	}
	return n
}

// dirBetween returns the direction that leads from a to b, or 0 if the
// coordinates are not axis-aligned neighbours.
func dirBetween(a, b Coord) Dir {
	for _, dir := range directions {
		dx, dy := dir.Offset()
		if a.X+dx == b.X && a.Y+dy == b.Y {
			return dir
		}
	}
	return 0
}

// LogicalCell is a node of the N×N maze graph.
type LogicalCell struct {
	Coord
	Links Dir // directions of connected neighbours
}

// Grid is the logical N×N maze. It is read-only once carving completes.
type Grid struct {
	size     int
	cells    []LogicalCell
	edges    int
	finished []Coord
}

func newGrid(size int) *Grid {
	g := &Grid{
		size:     size,
		cells:    make([]LogicalCell, size*size),
		finished: make([]Coord, 0, size*size),
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g.cells[g.index(Coord{x, y})].Coord = Coord{x, y}
		}
	}
	return g
}

// Size returns N, the side length of the grid.
func (g *Grid) Size() int {
	return g.size
}

// In reports whether c lies inside the grid.
func (g *Grid) In(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// Cell returns the cell at c. It panics if c is outside the grid.
func (g *Grid) Cell(c Coord) LogicalCell {
	return g.cells[g.mustIndex(c)]
}

// Cells returns a row-major copy of all cells.
func (g *Grid) Cells() []LogicalCell {
	out := make([]LogicalCell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Connected reports whether a and b share an edge.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.In(a) || !g.In(b) {
		return false
	}
	dir := dirBetween(a, b)
	return dir != 0 && g.cells[g.index(a)].Links.Has(dir)
}

// Neighbors returns the coordinates connected to c.
func (g *Grid) Neighbors(c Coord) []Coord {
	links := g.Cell(c).Links
	out := make([]Coord, 0, links.Count())
	for _, dir := range directions {
		if links.Has(dir) {
			dx, dy := dir.Offset()
			out = append(out, Coord{c.X + dx, c.Y + dy})
		}
	}
	return out
}

// Edges returns the number of undirected edges.
func (g *Grid) Edges() int {
	return g.edges
}

// FinishOrder returns the coordinates in the order the walk finished them.
func (g *Grid) FinishOrder() []Coord {
	out := make([]Coord, len(g.finished))
	copy(out, g.finished)
	return out
}

// link adds the undirected edge a<->b. Linking a pair twice, or a pair
// that is not adjacent, means the walk is broken and panics.
func (g *Grid) link(a, b Coord) {
	ia, ib := g.mustIndex(a), g.mustIndex(b)
	dir := dirBetween(a, b)
	if dir == 0 {
		panic(fmt.Sprintf("maze: link between non-adjacent cells %v and %v", a, b))
	}
	if g.cells[ia].Links.Has(dir) || g.cells[ib].Links.Has(dir.Opposite()) {
		panic(fmt.Sprintf("maze: cells %v and %v already linked", a, b))
	}
	g.cells[ia].Links |= dir
	g.cells[ib].Links |= dir.Opposite()
	g.edges++
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.size + c.X
}

func (g *Grid) mustIndex(c Coord) int {
	if !g.In(c) {
		panic(fmt.Sprintf("maze: coordinate %v outside %dx%d grid", c, g.size, g.size))
	}
	return g.index(c)
}
