// Package culling toggles entity visibility by distance from the viewpoints
// each tick.
package culling

import (
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/labyrinth/internal/game/entity"
	"github.com/Faultbox/labyrinth/pkg/math"
)

// DefaultRadius is the cull distance in world units.
const DefaultRadius = 20

// minParallelBatch is the smallest batch worth handing to a goroutine.
const minParallelBatch = 512

// Visible reports whether pos lies strictly inside radius of view.
func Visible(view, pos math.Vec3, radius float32) bool {
	return view.DistanceSq(pos) < radius*radius
}

// Stats summarizes one culling pass.
type Stats struct {
	Visible int
	Hidden  int
	Skipped bool // no viewpoint this tick
}

// Culler evaluates every cullable entity against the viewpoints. It only
// writes IsVisible; entities are never created or removed.
type Culler struct {
	Radius  float32
	Workers int // > 1 splits large entity sets across goroutines
}

// New creates a culler. Workers below 1 are treated as 1.
func New(radius float32, workers int) *Culler {
	if workers < 1 {
		workers = 1
	}
	return &Culler{Radius: radius, Workers: workers}
}

// Update culls against a single viewpoint. A nil view means the viewpoint
// is not available yet and the pass is skipped.
func (c *Culler) Update(view *math.Vec3, ents []*entity.Entity) Stats {
	if view == nil {
		return Stats{Skipped: true}
	}
	return c.UpdateMulti([]math.Vec3{*view}, ents)
}

// UpdateMulti marks an entity visible when it is inside the radius of any
// viewpoint. With no viewpoints the pass is skipped and flags are untouched.
func (c *Culler) UpdateMulti(views []math.Vec3, ents []*entity.Entity) Stats {
	if len(views) == 0 {
		return Stats{Skipped: true}
	}

	if c.Workers <= 1 || len(ents) < 2*minParallelBatch {
		visible, hidden := c.cull(views, ents)
		return Stats{Visible: visible, Hidden: hidden}
	}

	batch := (len(ents) + c.Workers - 1) / c.Workers
	if batch < minParallelBatch {
		batch = minParallelBatch
	}

	var g errgroup.Group
	g.SetLimit(c.Workers)

	batches := (len(ents) + batch - 1) / batch
	visible := make([]int, batches)
	hidden := make([]int, batches)
	for i := 0; i < batches; i++ {
		lo := i * batch
		hi := min(lo+batch, len(ents))
		g.Go(func() error {
			visible[i], hidden[i] = c.cull(views, ents[lo:hi])
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	var s Stats
	for i := range visible {
		s.Visible += visible[i]
		s.Hidden += hidden[i]
	}
	return s
}

func (c *Culler) cull(views []math.Vec3, ents []*entity.Entity) (visible, hidden int) {
	for _, e := range ents {
		if e == nil || !e.Cullable {
			continue
		}
		e.IsVisible = false
		for _, v := range views {
			if Visible(v, e.Position, c.Radius) {
				e.IsVisible = true
				break
			}
		}
		if e.IsVisible {
			visible++
		} else {
			hidden++
		}
	}
	return visible, hidden
}
