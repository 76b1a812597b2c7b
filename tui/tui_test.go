package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"snake-panel/game"
	"snake-panel/game/types"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func rowText(s tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

func TestKeyDirection(t *testing.T) {
	cases := map[tcell.Key]types.Direction{
		tcell.KeyUp:    types.UP,
		tcell.KeyDown:  types.DOWN,
		tcell.KeyLeft:  types.LEFT,
		tcell.KeyRight: types.RIGHT,
	}
	for key, want := range cases {
		got, ok := KeyDirection(key)
		if !ok || got != want {
			t.Errorf("KeyDirection(%v) = %v, %v; want %v", key, got, ok, want)
		}
	}
	if _, ok := KeyDirection(tcell.KeyEnter); ok {
		t.Error("Enter should not map to a direction")
	}
}

func TestIsQuit(t *testing.T) {
	if !IsQuit(tcell.KeyEscape, 0) || !IsQuit(tcell.KeyCtrlC, 0) || !IsQuit(tcell.KeyRune, 'q') {
		t.Error("expected Esc, Ctrl-C and q to quit")
	}
	if IsQuit(tcell.KeyRune, 'w') || IsQuit(tcell.KeyUp, 0) {
		t.Error("unexpected quit key")
	}
}

func TestRendererDrawsRunningGame(t *testing.T) {
	screen := newScreen(t)
	theme := ThemeFor(game.VariantEnhanced)
	r := NewRenderer(screen, theme)

	r.Draw(game.Snapshot{
		Grid:    types.Grid{Width: 30, Height: 20},
		Snake:   []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}},
		Food:    types.Point{X: 10, Y: 3},
		Running: true,
		Score:   1,
	})

	if got := runeAt(screen, 7, 6); got != theme.HeadRune {
		t.Errorf("head rune = %q", got)
	}
	if got := runeAt(screen, 6, 6); got != theme.BodyRune {
		t.Errorf("body rune = %q", got)
	}
	if got := runeAt(screen, 11, 4); got != theme.FoodRune {
		t.Errorf("food rune = %q", got)
	}
	if got := runeAt(screen, 0, 0); got != tcell.RuneULCorner {
		t.Errorf("corner rune = %q", got)
	}
	if row := rowText(screen, 22, 20); !strings.Contains(row, "Score: 1") {
		t.Errorf("score line = %q", row)
	}
}

func TestRendererDrawsGameOver(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen, ThemeFor(game.VariantClassic))

	r.Draw(game.Snapshot{
		Grid:    types.Grid{Width: 30, Height: 20},
		Snake:   []types.Point{{X: -1, Y: 0}},
		Running: false,
		Score:   3,
	})

	if row := rowText(screen, 11, 32); !strings.Contains(row, "Game Over") {
		t.Errorf("game over row = %q", row)
	}
	if row := rowText(screen, 12, 32); !strings.Contains(row, "Score: 3") {
		t.Errorf("score row = %q", row)
	}
}

func TestAppRunsUntilCancelled(t *testing.T) {
	screen := newScreen(t)
	cfg := game.Enhanced()
	cfg.TickInterval = time.Millisecond
	cfg.StartDirection = types.LEFT
	g, err := game.NewGame(cfg, game.WithBody(types.Point{X: 1, Y: 4}))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	if err := NewApp(screen, g, zerolog.Nop()).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if g.Running() {
		t.Fatal("expected the snake to hit the left wall")
	}
	if row := rowText(screen, 11, 32); !strings.Contains(row, "Game Over") {
		t.Errorf("final screen row = %q", row)
	}
}
