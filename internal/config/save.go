package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes the config to the user's config directory.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), "config.yaml"))
}

// SaveTo writes the config to a specific path. Only settings are written;
// generated levels are never persisted. A pinned seed is kept so the level
// can be reproduced, while a seed drawn from the clock is dropped.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	out := *c
	if out.seedDrawn {
		out.Maze.Seed = nil
	}

	var buf bytes.Buffer
	if out.Maze.Seed != nil {
		fmt.Fprintf(&buf, "# Level %dx%d from seed %d.\n", out.Maze.BoardSize, out.Maze.BoardSize, *out.Maze.Seed)
	}

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}
