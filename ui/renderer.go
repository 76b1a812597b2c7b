package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-panel/game"
	"snake-panel/game/types"
)

const fontSize = 10

// Theme is the palette and shape of one panel variant.
type Theme struct {
	Background rl.Color
	Food       rl.Color
	Head       rl.Color
	Body       rl.Color
	Text       rl.Color
	Alert      rl.Color
	Rounded    bool
	ScoreY     int32
}

func ThemeFor(v game.Variant) Theme {
	if v == game.VariantEnhanced {
		return Theme{
			Background: rl.Color{R: 30, G: 30, B: 30, A: 255},
			Food:       rl.Red,
			Head:       rl.Color{R: 0, G: 200, B: 0, A: 255},
			Body:       rl.Color{R: 0, G: 150, B: 0, A: 255},
			Text:       rl.White,
			Alert:      rl.Red,
			Rounded:    true,
			ScoreY:     20,
		}
	}
	return Theme{
		Background: rl.Black,
		Food:       rl.Red,
		Head:       rl.Green,
		Body:       rl.Green,
		Text:       rl.White,
		Alert:      rl.Red,
		ScoreY:     10,
	}
}

type Renderer struct {
	theme        Theme
	cellSize     int32
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(theme Theme, cellSize, screenWidth, screenHeight int) *Renderer {
	return &Renderer{
		theme:        theme,
		cellSize:     int32(cellSize),
		screenWidth:  int32(screenWidth),
		screenHeight: int32(screenHeight),
	}
}

// Draw paints one frame. It only reads the snapshot.
func (r *Renderer) Draw(s game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(r.theme.Background)

	if s.Running {
		r.drawCell(s.Food, r.theme.Food)
		for i, p := range s.Snake {
			color := r.theme.Body
			if i == 0 {
				color = r.theme.Head
			}
			r.drawCell(p, color)
		}
		rl.DrawText(fmt.Sprintf("Score: %d", s.Score), 10, r.theme.ScoreY-fontSize, fontSize, r.theme.Text)
	} else {
		r.drawGameOver(s.Score)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	x := int32(p.X) * r.cellSize
	y := int32(p.Y) * r.cellSize
	if r.theme.Rounded {
		rect := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(r.cellSize), Height: float32(r.cellSize)}
		rl.DrawRectangleRounded(rect, 0.5, 6, color)
		return
	}
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
}

func (r *Renderer) drawGameOver(score int) {
	x := r.screenWidth/2 - 30
	y := r.screenHeight / 2
	rl.DrawText("Game Over", x, y-fontSize, fontSize, r.theme.Alert)
	rl.DrawText(fmt.Sprintf("Score: %d", score), x, y+20-fontSize, fontSize, r.theme.Alert)
}
