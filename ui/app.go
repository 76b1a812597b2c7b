// Package ui is the raylib window for the game.
package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"snake-panel/game"
	"snake-panel/game/types"
	"snake-panel/loop"
)

const targetFPS = 60

// KeyDirection maps arrow key codes to directions.
func KeyDirection(key int32) (types.Direction, bool) {
	switch key {
	case rl.KeyUp:
		return types.UP, true
	case rl.KeyDown:
		return types.DOWN, true
	case rl.KeyLeft:
		return types.LEFT, true
	case rl.KeyRight:
		return types.RIGHT, true
	default:
		return types.NONE, false
	}
}

// Title is the window caption for a variant.
func Title(v game.Variant) string {
	if v == game.VariantEnhanced {
		return "Enhanced Snake Game"
	}
	return "Snake Game"
}

// Run opens the window and plays g until the window is closed. Input, ticks
// and drawing all happen on the calling goroutine, which must be the main
// thread.
func Run(g *game.Game, log zerolog.Logger) error {
	cfg := g.Config()

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.CanvasWidth), int32(cfg.CanvasHeight), Title(cfg.Variant))
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("open %dx%d window", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	rl.SetTargetFPS(targetFPS)

	renderer := NewRenderer(ThemeFor(cfg.Variant), cfg.CellSize, cfg.CanvasWidth, cfg.CanvasHeight)
	step := loop.NewFixedStep(cfg.TickInterval)
	reported := false

	log.Info().Str("game", g.UUID).Msg("window opened")

	for !rl.WindowShouldClose() {
		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			if dir, ok := KeyDirection(key); ok {
				g.HandleInput(dir)
			}
		}

		if step.ShouldStep(time.Now()) {
			g.Tick()
		}

		snap := g.Snapshot()
		renderer.Draw(snap)

		if !snap.Running && !reported {
			reported = true
			log.Info().Int("score", snap.Score).Msg("game over, close the window to exit")
		}
	}

	log.Info().Msg("window closed")
	return nil
}
