package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"snake-panel/game"
	"snake-panel/tui"
	"snake-panel/ui"
)

func main() {
	variant := flag.String("variant", string(game.VariantEnhanced), "Panel variant: classic (10px cells) or enhanced (20px cells)")
	frontend := flag.String("frontend", "gui", "Frontend: gui (raylib window) or term (terminal)")
	speed := flag.Int("speed", int(game.DefaultTickInterval/time.Millisecond), "Tick interval in milliseconds")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	level := flag.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stderr")
	flag.Parse()

	log, closeLog, err := newLogger(*level, *logFile, *frontend == "term")
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}

	err = run(log, *variant, *frontend, *speed, *seed)
	if err != nil {
		log.Error().Err(err).Msg("snake failed")
	}
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func run(log zerolog.Logger, variant, frontend string, speedMs int, seed uint64) error {
	cfg, err := game.ForVariant(game.Variant(variant))
	if err != nil {
		return err
	}
	cfg.TickInterval = time.Duration(speedMs) * time.Millisecond
	cfg.Seed = seed

	g, err := game.NewGame(cfg, game.WithLogger(log))
	if err != nil {
		return err
	}

	switch frontend {
	case "gui":
		return ui.Run(g, log)
	case "term":
		return runTerminal(g, log)
	default:
		return fmt.Errorf("unknown frontend %q", frontend)
	}
}

func runTerminal(g *game.Game, log zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return tui.NewApp(screen, g, log).Run(ctx)
}

// newLogger builds a console logger. The terminal frontend owns the screen,
// so without a log file its output is discarded.
func newLogger(level, path string, quiet bool) (zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("parse log level: %w", err)
	}

	var out io.Writer
	closer := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("open log file: %w", err)
		}
		out = zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.RFC3339}
		closer = func() { f.Close() }
	case quiet:
		out = io.Discard
	default:
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), closer, nil
}
