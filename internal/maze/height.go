package maze

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRange is returned for a height range with Min < 0 or Max < Min.
var ErrInvalidRange = errors.New("invalid height range")

// Range is a half-open height interval [Min, Max). Min == Max is a fixed
// height and draws nothing from the random source.
type Range struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

// Validate checks the range bounds.
func (r Range) Validate() error {
	if r.Min < 0 || r.Max < r.Min {
		return fmt.Errorf("%w: [%g, %g)", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Contains reports whether h lies within [Min, Max). A fixed range
// contains only Min.
func (r Range) Contains(h float32) bool {
	if r.Max <= r.Min {
		return h == r.Min
	}
	return h >= r.Min && h < r.Max
}

// Sample draws a height uniformly from [Min, Max). Float32 rounding can
// land exactly on Max, so the result is pulled back below it.
func (r Range) Sample(rng Rand) float32 {
	if r.Max <= r.Min {
		return r.Min
	}
	h := r.Min + rng.Float32()*(r.Max-r.Min)
	if h >= r.Max {
		h = math.Nextafter32(r.Max, r.Min)
	}
	return h
}

// Heights holds the height ranges for open and wall cells.
type Heights struct {
	Open Range `yaml:"open"`
	Wall Range `yaml:"wall"`
}

// DefaultHeights returns near-zero floors and walls in [0.8, 1.0).
func DefaultHeights() Heights {
	return Heights{
		Open: Range{Min: 0.05, Max: 0.05},
		Wall: Range{Min: 0.8, Max: 1.0},
	}
}

// Validate checks both ranges.
func (h Heights) Validate() error {
	if err := h.Open.Validate(); err != nil {
		return fmt.Errorf("open: %w", err)
	}
	if err := h.Wall.Validate(); err != nil {
		return fmt.Errorf("wall: %w", err)
	}
	return nil
}
