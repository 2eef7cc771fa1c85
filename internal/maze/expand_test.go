package maze

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fixedRand always picks the first candidate and the midpoint of a range.
type fixedRand struct{}

func (fixedRand) Intn(int) int     { return 0 }
func (fixedRand) Float32() float32 { return 0.5 }

func TestExpand_Dimensions(t *testing.T) {
	for _, n := range []int{1, 3, 10} {
		g, err := Carve(n, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("Carve: %v", err)
		}
		l, err := Expand(g, DefaultHeights(), rand.New(rand.NewSource(2)))
		if err != nil {
			t.Fatalf("Expand: %v", err)
		}

		if l.Size() != 2*n {
			t.Errorf("n=%d: expected size %d, got %d", n, 2*n, l.Size())
		}
		if len(l.Cells()) != 4*n*n {
			t.Errorf("n=%d: expected %d cells, got %d", n, 4*n*n, len(l.Cells()))
		}
	}
}

func TestExpand_OddOddAlwaysWall(t *testing.T) {
	g, err := Carve(9, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("Carve: %v", err)
	}
	l, err := Expand(g, DefaultHeights(), rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	for _, c := range l.Cells() {
		if c.X%2 == 1 && c.Y%2 == 1 && c.Kind != KindWall {
			t.Errorf("expected wall at %d:%d, got %v", c.X, c.Y, c.Kind)
		}
		if c.X%2 == 0 && c.Y%2 == 0 && c.Kind != KindOpen {
			t.Errorf("expected room at %d:%d, got %v", c.X, c.Y, c.Kind)
		}
	}
}

func TestExpand_ConnectedPairOpensGap(t *testing.T) {
	h := DefaultHeights()

	linked := newGrid(2)
	linked.link(Coord{0, 0}, Coord{1, 0})
	l, err := Expand(linked, h, fixedRand{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	gap := l.Cell(1, 0)
	if gap.Kind != KindOpen {
		t.Errorf("expected 1:0 open when 0:0-1:0 connected, got %v", gap.Kind)
	}
	if !h.Open.Contains(gap.Height) {
		t.Errorf("expected open height in %v, got %v", h.Open, gap.Height)
	}

	unlinked := newGrid(2)
	l, err = Expand(unlinked, h, fixedRand{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	wall := l.Cell(1, 0)
	if wall.Kind != KindWall {
		t.Errorf("expected 1:0 wall when 0:0-1:0 not connected, got %v", wall.Kind)
	}
	if !h.Wall.Contains(wall.Height) {
		t.Errorf("expected wall height in %v, got %v", h.Wall, wall.Height)
	}
}

func TestExpand_VerticalConnection(t *testing.T) {
	g := newGrid(2)
	g.link(Coord{0, 0}, Coord{0, 1})
	l, err := Expand(g, DefaultHeights(), fixedRand{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	if !l.IsWalkable(0, 1) {
		t.Error("expected 0:1 open when 0:0-0:1 connected")
	}
	if l.IsWalkable(1, 0) {
		t.Error("expected 1:0 wall when 0:0-1:0 not connected")
	}
}

func TestExpand_OuterEdgeIsWall(t *testing.T) {
	g, err := Carve(6, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("Carve: %v", err)
	}
	l, err := Expand(g, DefaultHeights(), rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	last := l.Size() - 1
	for i := 0; i < l.Size(); i++ {
		if l.IsWalkable(last, i) {
			t.Errorf("expected wall on east edge at %d:%d", last, i)
		}
		if l.IsWalkable(i, last) {
			t.Errorf("expected wall on south edge at %d:%d", i, last)
		}
	}
}

func TestExpand_OpenCellCount(t *testing.T) {
	// Every room plus one gap per tree edge is open.
	n := 7
	g, err := Carve(n, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("Carve: %v", err)
	}
	l, err := Expand(g, DefaultHeights(), rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	open, walls := l.Counts()
	if open != n*n+n*n-1 {
		t.Errorf("expected %d open cells, got %d", 2*n*n-1, open)
	}
	if open+walls != 4*n*n {
		t.Errorf("expected %d cells total, got %d", 4*n*n, open+walls)
	}
}

func TestExpand_Deterministic(t *testing.T) {
	build := func() *Layout {
		rng := rand.New(rand.NewSource(99))
		g, err := Carve(12, rng)
		if err != nil {
			t.Fatalf("Carve: %v", err)
		}
		l, err := Expand(g, DefaultHeights(), rng)
		if err != nil {
			t.Fatalf("Expand: %v", err)
		}
		return l
	}

	if diff := cmp.Diff(build().Cells(), build().Cells()); diff != "" {
		t.Errorf("same seed produced different layouts (-a +b):\n%s", diff)
	}
}

func TestExpand_Errors(t *testing.T) {
	if _, err := Expand(nil, DefaultHeights(), fixedRand{}); !errors.Is(err, ErrNilGrid) {
		t.Errorf("expected ErrNilGrid, got %v", err)
	}
	if _, err := Expand(newGrid(1), DefaultHeights(), nil); !errors.Is(err, ErrNilRand) {
		t.Errorf("expected ErrNilRand, got %v", err)
	}

	bad := Heights{Open: Range{Min: 0, Max: 0}, Wall: Range{Min: 1, Max: 0.5}}
	if _, err := Expand(newGrid(1), bad, fixedRand{}); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestLayout_IsWalkableOutOfRange(t *testing.T) {
	l, err := Expand(newGrid(1), DefaultHeights(), fixedRand{})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if l.IsWalkable(-1, 0) || l.IsWalkable(0, 2) {
		t.Error("expected coordinates outside the layout to be unwalkable")
	}
}

func TestRange_Sample(t *testing.T) {
	fixed := Range{Min: 0.05, Max: 0.05}
	if got := fixed.Sample(fixedRand{}); got != 0.05 {
		t.Errorf("expected fixed height 0.05, got %v", got)
	}

	r := Range{Min: 0.8, Max: 1.0}
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		if h := r.Sample(rng); !r.Contains(h) {
			t.Fatalf("sample %v outside %v", h, r)
		}
	}
}

// topRand returns the largest float32 below 1.
type topRand struct{ fixedRand }

func (topRand) Float32() float32 { return 0.99999994 }

func TestRange_SampleStaysBelowMax(t *testing.T) {
	wall := DefaultHeights().Wall
	h := wall.Sample(topRand{})
	if h >= wall.Max {
		t.Errorf("sample %v reached max %v", h, wall.Max)
	}
	if !wall.Contains(h) {
		t.Errorf("sample %v outside %v", h, wall)
	}
}

func TestRange_Contains(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		h    float32
		want bool
	}{
		{"min", Range{Min: 0.8, Max: 1}, 0.8, true},
		{"inside", Range{Min: 0.8, Max: 1}, 0.9, true},
		{"max excluded", Range{Min: 0.8, Max: 1}, 1, false},
		{"below", Range{Min: 0.8, Max: 1}, 0.7, false},
		{"fixed", Range{Min: 0.05, Max: 0.05}, 0.05, true},
		{"fixed other", Range{Min: 0.05, Max: 0.05}, 0.06, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.h); got != tt.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", tt.r, tt.h, got, tt.want)
			}
		})
	}
}
