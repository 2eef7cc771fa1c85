package maze

import (
	"errors"
	"fmt"
)

// MaxBoardSize bounds N so carving (O(N²)) and the (2N)² physical grid
// stay within the world initialization budget.
const MaxBoardSize = 512

var (
	// ErrInvalidBoardSize is returned for N <= 0 or N > MaxBoardSize.
	ErrInvalidBoardSize = errors.New("invalid board size")

	// ErrNilRand is returned when no random source is supplied.
	ErrNilRand = errors.New("nil random source")
)

// Rand is the random source used by generation. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float32() float32
}

// ValidateBoardSize checks n against the supported range.
func ValidateBoardSize(n int) error {
	if n <= 0 || n > MaxBoardSize {
		return fmt.Errorf("%w: %d (must be 1..%d)", ErrInvalidBoardSize, n, MaxBoardSize)
	}
	return nil
}

// Carver runs a randomized iterative depth-first walk that connects an
// N×N grid into a spanning tree. The walk keeps an explicit coordinate
// stack: a cell with unvisited neighbours is pushed back before the chosen
// neighbour, and a cell with none is finished.
type Carver struct {
	grid      *Grid
	rng       Rand
	remaining []bool // indexed like grid cells; true while unvisited
	stack     []Coord
	scratch   [4]Coord
}

// NewCarver prepares a walk over an n×n grid rooted at (n/2, n/2).
func NewCarver(n int, rng Rand) (*Carver, error) {
	if err := ValidateBoardSize(n); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	c := &Carver{
		grid:      newGrid(n),
		rng:       rng,
		remaining: make([]bool, n*n),
		stack:     make([]Coord, 0, n*n),
	}
	for i := range c.remaining {
		c.remaining[i] = true
	}

	start := Coord{n / 2, n / 2}
	c.remaining[c.grid.index(start)] = false
	c.stack = append(c.stack, start)
	return c, nil
}

// Step pops one coordinate and either links it to a random unvisited
// neighbour or finishes it. It returns false once the walk is complete.
func (c *Carver) Step() bool {
	if len(c.stack) == 0 {
		return false
	}

	cur := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	open := c.unvisited(cur)
	if len(open) == 0 {
		c.grid.finished = append(c.grid.finished, cur)
		return len(c.stack) > 0
	}

	next := open[c.rng.Intn(len(open))]
	c.remaining[c.grid.mustIndex(next)] = false
	c.grid.link(cur, next)
	c.stack = append(c.stack, cur, next)
	return true
}

// Done reports whether the walk has finished every cell.
func (c *Carver) Done() bool {
	return len(c.stack) == 0
}

// Pending returns the number of coordinates on the visit stack.
func (c *Carver) Pending() int {
	return len(c.stack)
}

// Visited reports whether the walk has reached p.
func (c *Carver) Visited(p Coord) bool {
	return !c.remaining[c.grid.mustIndex(p)]
}

// Grid returns the carved grid. It panics if called before Done, and if
// the finished walk does not form a spanning tree.
func (c *Carver) Grid() *Grid {
	if !c.Done() {
		panic("maze: grid requested before carving finished")
	}
	n := c.grid.size * c.grid.size
	if c.grid.edges != n-1 || len(c.grid.finished) != n {
		panic(fmt.Sprintf("maze: walk produced %d edges and %d finished cells, want %d and %d",
			c.grid.edges, len(c.grid.finished), n-1, n))
	}
	return c.grid
}

// unvisited fills the scratch buffer with cur's neighbours that are still
// unvisited, in direction order.
func (c *Carver) unvisited(cur Coord) []Coord {
	open := c.scratch[:0]
	for _, dir := range directions {
		dx, dy := dir.Offset()
		n := Coord{cur.X + dx, cur.Y + dy}
		if c.grid.In(n) && c.remaining[c.grid.index(n)] {
			open = append(open, n)
		}
	}
	return open
}

// Carve builds an n×n spanning-tree maze with rng.
func Carve(n int, rng Rand) (*Grid, error) {
	c, err := NewCarver(n, rng)
	if err != nil {
		return nil, err
	}
	for c.Step() {
	}
	return c.Grid(), nil
}
