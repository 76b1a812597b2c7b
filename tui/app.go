// Package tui plays the game in a terminal through tcell.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"snake-panel/game"
	"snake-panel/loop"
)

// App wires a tcell screen to a game. The caller owns the screen's
// Init/Fini lifecycle.
type App struct {
	screen   tcell.Screen
	game     *game.Game
	renderer *Renderer
	log      zerolog.Logger
}

func NewApp(screen tcell.Screen, g *game.Game, log zerolog.Logger) *App {
	return &App{
		screen:   screen,
		game:     g,
		renderer: NewRenderer(screen, ThemeFor(g.Config().Variant)),
		log:      log,
	}
}

// Run plays until the user quits or ctx is cancelled. After game over the
// final screen stays up until a quit key arrives.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runner := loop.NewRunner(a.game, loop.NewTicker(a.game.Config().TickInterval), a.renderer.Draw, a.log)

	go a.pollEvents(ctx, cancel, runner)

	a.log.Info().Str("game", a.game.UUID).Msg("terminal session started")
	err := runner.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run game: %w", err)
	}

	<-ctx.Done()
	snap := a.game.Snapshot()
	a.log.Info().Int("score", snap.Score).Bool("finished", !snap.Running).Msg("terminal session ended")
	return nil
}

// pollEvents forwards arrow keys to the runner and turns quit keys into
// cancellation. It returns once the screen is finalised.
func (a *App) pollEvents(ctx context.Context, quit context.CancelFunc, runner *loop.Runner) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if IsQuit(ev.Key(), ev.Rune()) {
				quit()
				continue
			}
			if dir, ok := KeyDirection(ev.Key()); ok && ctx.Err() == nil {
				runner.Send(dir)
			}
		case *tcell.EventResize:
			a.screen.Sync()
		}
	}
}
