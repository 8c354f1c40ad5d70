package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"snake-classic/game"
	"snake-classic/game/loop"
	"snake-classic/game/manager"
	"snake-classic/ui"
	"snake-classic/ui/term"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const logFile = "snake.log"

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("reading .env")
	}

	if err := run(os.Args[1:], log); err != nil {
		log.Fatal().Err(err).Msg("snake")
	}
}

func run(args []string, log zerolog.Logger) error {
	cfg, err := loadConfig(args, os.Getenv)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return errors.Wrap(err, "create data directory")
	}

	// The terminal front end owns the screen, so logs go to a file.
	if cfg.UI == uiTerm {
		f, err := os.OpenFile(filepath.Join(cfg.DataDir, logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrap(err, "open log file")
		}
		defer f.Close()
		log = newFileLogger(f)
	}
	log = log.Level(cfg.LogLevel)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	settings := manager.NewSettingsManager(cfg.DataDir, manager.SystemTheme(os.Getenv), log)
	settings.Load()

	g := game.NewGame(settings.Best(), cfg.Speed, seed)
	log.Info().
		Str("ui", cfg.UI).
		Stringer("speed", cfg.Speed).
		Uint64("seed", seed).
		Int("best", settings.Best()).
		Stringer("theme", settings.Theme()).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.UI {
	case uiTerm:
		r := term.NewRenderer(func(err error) { log.Error().Err(err).Msg("terminal flush") })
		return term.Run(ctx, loop.New(g, settings, r, log), cfg.FPS, log)
	default:
		ui.Run(ctx, loop.New(g, settings, ui.NewRenderer(), log), cfg.FPS, log)
		return nil
	}
}

func newFileLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}
