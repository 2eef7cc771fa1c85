// mazegen is a CLI utility for generating and inspecting maze levels.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/labyrinth/internal/config"
	"github.com/Faultbox/labyrinth/internal/game"
	"github.com/Faultbox/labyrinth/internal/game/entity"
	"github.com/Faultbox/labyrinth/internal/logger"
)

// errNoRoute means the start and finish are not connected.
var errNoRoute = errors.New("no route from start to finish")

func main() {
	os.Exit(run())
}

// run executes one command and returns the exit code. Deferred flushes
// happen here so every exit path writes buffered output and logs.
func run() int {
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		return 1
	}

	command := args[0]
	args = args[1:]

	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	if command == "init" {
		if err := cmdInit(os.Stdout, cfg, args); err != nil {
			logger.Error("failed to write config", zap.Error(err))
			return 1
		}
		return 0
	}

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		return 1
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	switch command {
	case "info":
		cmdInfo(out, g)
	case "ascii", "map":
		writeASCII(out, g, nil)
	case "route", "path":
		err = cmdRoute(out, g)
	case "spawns", "ls":
		err = cmdSpawns(out, g, args)
	case "cull":
		err = cmdCull(out, g)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return 1
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", command, err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Println(`mazegen - procedural maze level utility

Usage:
  mazegen [flags] <command> [args]

Commands:
  info               Show level summary
  ascii              Render the physical grid (# wall, . open, S start, F finish)
  route              Render the start-to-finish route and list its cells
  spawns [limit]     List spawn descriptors
  cull               Walk the route and report visibility per tick
  init [path]        Write a config file with the current settings. The seed
                     is only written when given with -seed or in a config

Flags:
  -config <file>     Config file
  -size <n>          Board size (logical cells per side)
  -seed <n>          Random seed
  -radius <r>        Cull radius
  -workers <n>       Culling worker goroutines
  -debug             Debug logging
  -log <file>        Also write logs to a rotating file

Examples:
  mazegen -size 12 -seed 7 ascii
  mazegen -seed 7 route
  mazegen init ./config.yaml`)
}

func cmdInfo(out io.Writer, g *game.Game) {
	w := g.World()
	open, walls := w.Layout.Counts()

	fmt.Fprintf(out, "Seed:         %d\n", g.Seed())
	fmt.Fprintf(out, "Board:        %dx%d logical\n", w.Grid.Size(), w.Grid.Size())
	fmt.Fprintf(out, "Layout:       %dx%d physical\n", w.Layout.Size(), w.Layout.Size())
	fmt.Fprintf(out, "Edges:        %d\n", w.Grid.Edges())
	fmt.Fprintf(out, "Open cells:   %d\n", open)
	fmt.Fprintf(out, "Wall cells:   %d\n", walls)
	fmt.Fprintf(out, "Descriptors:  %d\n", len(w.Descriptors))
	fmt.Fprintf(out, "Entities:     %d (%d cells)\n", g.Entities().Count(), g.Entities().CountByType(entity.TypeCell))
	fmt.Fprintf(out, "Start:        %v (%v)\n", w.Start, w.StartPosition())
	fmt.Fprintf(out, "Finish:       %v (%v)\n", w.Finish, w.FinishPosition())
	if route := w.Route(); route != nil {
		fmt.Fprintf(out, "Route length: %d cells\n", len(route))
	}
}

func cmdRoute(out io.Writer, g *game.Game) error {
	route := g.World().Route()
	if route == nil {
		return errNoRoute
	}

	onRoute := make(map[[2]int]bool, len(route))
	for _, p := range route {
		onRoute[p] = true
	}
	writeASCII(out, g, onRoute)

	fmt.Fprintf(out, "\n%d cells:\n", len(route))
	for i, p := range route {
		fmt.Fprintf(out, "%4d  %d:%d\n", i, p[0], p[1])
	}
	return nil
}

func cmdSpawns(out io.Writer, g *game.Game, args []string) error {
	descriptors := g.World().Descriptors
	limit := len(descriptors)
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid limit %q", args[0])
		}
		limit = min(n, limit)
	}

	fmt.Fprintf(out, "%-12s %-5s %-22s %-22s %s\n", "NAME", "KIND", "POSITION", "EXTENT", "COLLIDER")
	for _, d := range descriptors[:limit] {
		pos := fmt.Sprintf("%.2f,%.2f,%.2f", d.Position.X, d.Position.Y, d.Position.Z)
		ext := fmt.Sprintf("%.2f,%.2f,%.2f", d.Extent.X, d.Extent.Y, d.Extent.Z)
		fmt.Fprintf(out, "%-12s %-5s %-22s %-22s %v\n", d.Name(), d.Kind, pos, ext, d.Collidable())
	}

	if limit < len(descriptors) {
		fmt.Fprintf(out, "... %d more\n", len(descriptors)-limit)
	}
	return nil
}

func cmdCull(out io.Writer, g *game.Game) error {
	route := g.World().Route()
	if route == nil {
		return errNoRoute
	}

	fmt.Fprintf(out, "%-6s %-9s %-8s %s\n", "TICK", "CELL", "VISIBLE", "HIDDEN")
	for i, p := range route {
		if i > 0 {
			g.MovePlayer(p[0]-route[i-1][0], p[1]-route[i-1][1])
		}
		s := g.Tick(g.Viewpoint())
		cell := fmt.Sprintf("%d:%d", p[0], p[1])
		fmt.Fprintf(out, "%-6d %-9s %-8d %d\n", g.Ticks(), cell, s.Visible, s.Hidden)
	}

	if g.AtFinish() {
		fmt.Fprintln(out, "Reached finish.")
	}
	return nil
}

func cmdInit(out io.Writer, cfg *config.Config, args []string) error {
	var err error
	path := filepath.Join(config.ConfigDir(), "config.yaml")
	if len(args) > 0 {
		path = args[0]
		err = cfg.SaveTo(path)
	} else {
		err = cfg.Save()
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}
