package tui

import (
	"github.com/gdamore/tcell/v2"

	"snake-panel/game/types"
)

// KeyDirection maps the arrow keys to directions. Other keys are ignored.
func KeyDirection(key tcell.Key) (types.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return types.UP, true
	case tcell.KeyDown:
		return types.DOWN, true
	case tcell.KeyLeft:
		return types.LEFT, true
	case tcell.KeyRight:
		return types.RIGHT, true
	default:
		return types.NONE, false
	}
}

// IsQuit reports whether the key closes the game.
func IsQuit(key tcell.Key, ch rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ch == 'q' || ch == 'Q'
	default:
		return false
	}
}
