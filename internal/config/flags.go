package config

import (
	"flag"
	"strconv"
)

// seedFlag is an int64 flag that remembers whether it was set.
type seedFlag struct {
	value int64
	set   bool
}

func (f *seedFlag) String() string {
	if !f.set {
		return ""
	}
	return strconv.FormatInt(f.value, 10)
}

func (f *seedFlag) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	f.value, f.set = v, true
	return nil
}

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagSize    = flag.Int("size", 0, "Maze board size (logical cells per side)")
	flagRadius  = flag.Float64("radius", 0, "Visibility cull radius")
	flagWorkers = flag.Int("workers", 0, "Culling worker goroutines")
	flagLogFile = flag.String("log", "", "Log file path")
	flagSeed    = &seedFlag{}
)

func init() {
	flag.Var(flagSeed, "seed", "Random seed for maze generation")
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSize > 0 {
		cfg.Maze.BoardSize = *flagSize
	}
	if flagSeed.set {
		cfg.SetSeed(flagSeed.value)
	}
	if *flagRadius > 0 {
		cfg.Culling.Radius = float32(*flagRadius)
	}
	if *flagWorkers > 0 {
		cfg.Culling.Workers = *flagWorkers
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
