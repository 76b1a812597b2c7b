package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-panel/game"
	"snake-panel/game/types"
)

func TestKeyDirection(t *testing.T) {
	cases := map[int32]types.Direction{
		rl.KeyUp:    types.UP,
		rl.KeyDown:  types.DOWN,
		rl.KeyLeft:  types.LEFT,
		rl.KeyRight: types.RIGHT,
	}
	for key, want := range cases {
		if got, ok := KeyDirection(key); !ok || got != want {
			t.Errorf("KeyDirection(%d) = %v, %v; want %v", key, got, ok, want)
		}
	}
	if _, ok := KeyDirection(rl.KeySpace); ok {
		t.Error("space should be ignored")
	}
}

func TestThemes(t *testing.T) {
	classic := ThemeFor(game.VariantClassic)
	if classic.Rounded || classic.Background != rl.Black || classic.ScoreY != 10 {
		t.Errorf("unexpected classic theme: %+v", classic)
	}
	enhanced := ThemeFor(game.VariantEnhanced)
	if !enhanced.Rounded || enhanced.ScoreY != 20 {
		t.Errorf("unexpected enhanced theme: %+v", enhanced)
	}
	if enhanced.Head == enhanced.Body {
		t.Error("enhanced head should stand out from the body")
	}
	if Title(game.VariantEnhanced) == Title(game.VariantClassic) {
		t.Error("variants should have distinct titles")
	}
}
