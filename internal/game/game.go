// Package game wires world generation, the entity registry and the per-tick
// systems together.
package game

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/Faultbox/labyrinth/internal/config"
	"github.com/Faultbox/labyrinth/internal/engine/culling"
	"github.com/Faultbox/labyrinth/internal/game/entity"
	"github.com/Faultbox/labyrinth/internal/game/world"
	"github.com/Faultbox/labyrinth/internal/logger"
	"github.com/Faultbox/labyrinth/pkg/math"
)

// EyeHeight is the player's viewpoint height above the floor.
const EyeHeight = 1.6

// Game is the main game instance.
type Game struct {
	config   *config.Config
	seed     int64
	world    *world.World
	entities *entity.Manager
	culler   *culling.Culler
	player   *entity.Entity

	tick      uint64
	lastStats culling.Stats
}

// New validates cfg, generates the level and spawns it. Nothing is
// generated when the configuration is invalid.
func New(cfg *config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.SeedValue()
	logger.Info("initializing game",
		zap.Int("boardSize", cfg.Maze.BoardSize),
		zap.Int64("seed", seed),
		zap.Bool("seedFromClock", cfg.SeedDrawn()))

	w, err := generate(cfg, seed)
	if err != nil {
		return nil, err
	}

	g := &Game{
		config:   cfg,
		seed:     seed,
		world:    w,
		entities: entity.NewManager(),
		culler:   culling.New(cfg.Culling.Radius, cfg.Culling.Workers),
	}

	handles, err := w.SpawnAll(g.entities)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	g.player = g.entities.Create(entity.TypePlayer, "Player")
	g.placePlayer(w.Start.X, w.Start.Y)
	g.entities.SetPlayer(g.player)

	logger.Info("game initialized successfully",
		zap.Int("spawned", len(handles)),
		zap.Stringer("start", w.Start))
	return g, nil
}

// Regenerate replaces the level with one built from seed. Cell entities
// are cleared and respawned; the player keeps its ID and moves to the new
// start. On error the current level is left untouched.
func (g *Game) Regenerate(seed int64) error {
	w, err := generate(g.config, seed)
	if err != nil {
		return err
	}

	g.entities.Clear()
	handles, err := w.SpawnAll(g.entities)
	if err != nil {
		return fmt.Errorf("failed to spawn world: %w", err)
	}

	g.world = w
	g.seed = seed
	g.lastStats = culling.Stats{}
	g.placePlayer(w.Start.X, w.Start.Y)

	logger.Info("level regenerated",
		zap.Int64("seed", seed),
		zap.Int("spawned", len(handles)))
	return nil
}

func generate(cfg *config.Config, seed int64) (*world.World, error) {
	w, err := world.Generate(world.Options{
		BoardSize: cfg.Maze.BoardSize,
		Heights:   cfg.Heights,
		Factory: world.FactoryConfig{
			Spacing:     cfg.World.CellSpacing,
			HeightScale: cfg.World.HeightScale,
		},
	}, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate world: %w", err)
	}
	return w, nil
}

// Seed returns the seed the level was generated from.
func (g *Game) Seed() int64 {
	return g.seed
}

// World returns the generated level.
func (g *Game) World() *world.World {
	return g.world
}

// Entities returns the entity registry.
func (g *Game) Entities() *entity.Manager {
	return g.entities
}

// Player returns the player entity.
func (g *Game) Player() *entity.Entity {
	return g.player
}

// PlayerCell returns the physical cell the player stands in.
func (g *Game) PlayerCell() (int, int) {
	return world.WorldToCell(g.player.Position, g.world.Spacing())
}

// Viewpoint returns the player's eye position.
func (g *Game) Viewpoint() math.Vec3 {
	return g.player.Position
}

// MovePlayer steps the player by (dx, dy) physical cells. The move is
// refused when the target cell is a wall or outside the level.
func (g *Game) MovePlayer(dx, dy int) bool {
	x, y := g.PlayerCell()
	nx, ny := x+dx, y+dy
	if !g.world.Layout.IsWalkable(nx, ny) {
		return false
	}
	g.placePlayer(nx, ny)
	return true
}

// Teleport places the player in the given physical cell if it is open.
func (g *Game) Teleport(px, py int) bool {
	if !g.world.Layout.IsWalkable(px, py) {
		return false
	}
	g.placePlayer(px, py)
	return true
}

// AtFinish reports whether the player has reached the finish room.
func (g *Game) AtFinish() bool {
	x, y := g.PlayerCell()
	return x == g.world.Finish.X && y == g.world.Finish.Y
}

// Tick runs the per-tick systems against the given viewpoints. With no
// viewpoints the culling pass is skipped.
func (g *Game) Tick(views ...math.Vec3) culling.Stats {
	g.tick++
	g.lastStats = g.culler.UpdateMulti(views, g.entities.Cullable())

	if !g.lastStats.Skipped {
		logger.Debug("tick",
			zap.Uint64("tick", g.tick),
			zap.Int("visible", g.lastStats.Visible),
			zap.Int("hidden", g.lastStats.Hidden))
	}
	return g.lastStats
}

// Ticks returns the number of ticks run so far.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// LastStats returns the culling result of the latest tick.
func (g *Game) LastStats() culling.Stats {
	return g.lastStats
}

func (g *Game) placePlayer(px, py int) {
	pos := world.CellToWorld(px, py, g.world.Spacing())
	g.player.SetPosition(pos.X, EyeHeight, pos.Z)
}
