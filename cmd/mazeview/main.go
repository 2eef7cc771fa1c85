// Package main is the entry point for the terminal maze viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/labyrinth/internal/config"
	"github.com/Faultbox/labyrinth/internal/game"
	"github.com/Faultbox/labyrinth/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// The terminal is the screen, so logs only go to a file.
	if err := logger.InitFileOnly(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Labyrinth Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		os.Exit(1)
	}

	v, err := newViewer(g, cfg.View)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Screen error: %v\n", err)
		os.Exit(1)
	}

	v.run()
	v.close()

	logger.Info("viewer closed normally", zap.Uint64("ticks", g.Ticks()))
	fmt.Printf("Seed %d, %d ticks.\n", g.Seed(), g.Ticks())
}
