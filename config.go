package main

import (
	"flag"
	"io"
	"strconv"
	"strings"

	"snake-classic/game/types"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	uiWindow = "window"
	uiTerm   = "term"
)

// Config is the startup configuration. Flags win over SNAKE_* environment
// variables, which win over the built-in defaults.
type Config struct {
	UI       string
	Speed    types.Speed
	DataDir  string
	LogLevel zerolog.Level
	Seed     uint64
	FPS      int
}

func loadConfig(args []string, getenv func(string) string) (Config, error) {
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	ui := fs.String("ui", env("SNAKE_UI", uiWindow), "front end: window or term")
	speed := fs.String("speed", env("SNAKE_SPEED", "normal"), "starting speed: slow, normal or fast")
	dataDir := fs.String("data", env("SNAKE_DATA_DIR", "data"), "directory for settings and logs")
	logLevel := fs.String("log-level", env("SNAKE_LOG_LEVEL", "info"), "log level")
	seed := fs.String("seed", env("SNAKE_SEED", "0"), "food placement seed, 0 for time based")
	fps := fs.String("fps", env("SNAKE_FPS", "60"), "frames per second")

	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}

	var cfg Config
	switch u := strings.ToLower(*ui); u {
	case uiWindow, uiTerm:
		cfg.UI = u
	default:
		return Config{}, errors.Errorf("unknown ui %q", *ui)
	}

	s, ok := types.ParseSpeed(*speed)
	if !ok {
		return Config{}, errors.Errorf("unknown speed %q", *speed)
	}
	cfg.Speed = s

	if strings.TrimSpace(*dataDir) == "" {
		return Config{}, errors.New("data directory is empty")
	}
	cfg.DataDir = *dataDir

	level, err := zerolog.ParseLevel(strings.ToLower(*logLevel))
	if err != nil {
		return Config{}, errors.Wrapf(err, "log level %q", *logLevel)
	}
	cfg.LogLevel = level

	cfg.Seed, err = strconv.ParseUint(*seed, 10, 64)
	if err != nil {
		return Config{}, errors.Wrapf(err, "seed %q", *seed)
	}

	cfg.FPS, err = strconv.Atoi(*fps)
	if err != nil {
		return Config{}, errors.Wrapf(err, "fps %q", *fps)
	}
	if cfg.FPS < 1 || cfg.FPS > 240 {
		return Config{}, errors.Errorf("fps %d out of range 1-240", cfg.FPS)
	}
	return cfg, nil
}
