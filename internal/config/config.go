// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/Faultbox/labyrinth/internal/maze"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all game settings.
type Config struct {
	Maze    MazeConfig    `yaml:"maze"`
	Heights maze.Heights  `yaml:"heights"`
	World   WorldConfig   `yaml:"world"`
	Culling CullingConfig `yaml:"culling"`
	View    ViewConfig    `yaml:"view"`
	Logging LoggingConfig `yaml:"logging"`

	// seedDrawn marks a seed taken from the clock at load time. Save
	// leaves it out so a saved config keeps producing fresh levels.
	seedDrawn bool
}

// MazeConfig holds generation settings.
type MazeConfig struct {
	BoardSize int    `yaml:"board_size"`
	Seed      *int64 `yaml:"seed,omitempty"` // nil draws one at load time
}

// WorldConfig holds the mapping from physical cells to world space.
type WorldConfig struct {
	CellSpacing float32 `yaml:"cell_spacing"`
	HeightScale float32 `yaml:"height_scale"`
}

// CullingConfig holds visibility culling settings.
type CullingConfig struct {
	Radius  float32 `yaml:"radius"`
	Workers int     `yaml:"workers"`
}

// ViewConfig holds settings for the terminal viewer.
type ViewConfig struct {
	TickRate time.Duration `yaml:"tick_rate"`
	MoveStep int           `yaml:"move_step"` // physical cells per key press
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Maze: MazeConfig{
			BoardSize: 16,
		},
		Heights: maze.DefaultHeights(),
		World: WorldConfig{
			CellSpacing: 2,
			HeightScale: 4,
		},
		Culling: CullingConfig{
			Radius:  20,
			Workers: 1,
		},
		View: ViewConfig{
			TickRate: 33 * time.Millisecond,
			MoveStep: 1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// SeedValue returns the configured seed, or 0 if none is set.
func (c *Config) SeedValue() int64 {
	if c.Maze.Seed == nil {
		return 0
	}
	return *c.Maze.Seed
}

// SetSeed pins the generation seed.
func (c *Config) SetSeed(seed int64) {
	c.Maze.Seed = &seed
	c.seedDrawn = false
}

// SeedDrawn reports whether the seed came from the clock rather than from
// a flag or config file.
func (c *Config) SeedDrawn() bool {
	return c.seedDrawn
}

// Validate checks the configuration before any generation runs.
func (c *Config) Validate() error {
	if err := maze.ValidateBoardSize(c.Maze.BoardSize); err != nil {
		return fmt.Errorf("%w: maze: %w", ErrInvalidConfig, err)
	}
	if err := c.Heights.Validate(); err != nil {
		return fmt.Errorf("%w: heights: %w", ErrInvalidConfig, err)
	}
	if c.World.CellSpacing <= 0 {
		return fmt.Errorf("%w: world.cell_spacing must be positive, got %g", ErrInvalidConfig, c.World.CellSpacing)
	}
	if c.World.HeightScale < 0 {
		return fmt.Errorf("%w: world.height_scale must not be negative, got %g", ErrInvalidConfig, c.World.HeightScale)
	}
	if c.Culling.Radius <= 0 {
		return fmt.Errorf("%w: culling.radius must be positive, got %g", ErrInvalidConfig, c.Culling.Radius)
	}
	if c.Culling.Workers < 1 {
		return fmt.Errorf("%w: culling.workers must be at least 1, got %d", ErrInvalidConfig, c.Culling.Workers)
	}
	if c.View.TickRate <= 0 {
		return fmt.Errorf("%w: view.tick_rate must be positive, got %v", ErrInvalidConfig, c.View.TickRate)
	}
	if c.View.MoveStep < 1 {
		return fmt.Errorf("%w: view.move_step must be at least 1, got %d", ErrInvalidConfig, c.View.MoveStep)
	}
	return nil
}
