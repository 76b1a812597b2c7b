package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake-panel/game"
)

// Theme holds the glyphs and styles for one variant.
type Theme struct {
	Background tcell.Style
	Border     tcell.Style
	Text       tcell.Style
	Alert      tcell.Style
	Head       tcell.Style
	Body       tcell.Style
	Food       tcell.Style
	HeadRune   rune
	BodyRune   rune
	FoodRune   rune
}

// ThemeFor returns the look of the given variant: square blocks on black for
// classic, rounded dots on dark grey for enhanced.
func ThemeFor(v game.Variant) Theme {
	if v == game.VariantEnhanced {
		bg := tcell.StyleDefault.Background(tcell.NewRGBColor(30, 30, 30))
		return Theme{
			Background: bg,
			Border:     bg.Foreground(tcell.ColorGray),
			Text:       bg.Foreground(tcell.ColorWhite),
			Alert:      bg.Foreground(tcell.ColorRed),
			Head:       bg.Foreground(tcell.NewRGBColor(0, 200, 0)),
			Body:       bg.Foreground(tcell.NewRGBColor(0, 150, 0)),
			Food:       bg.Foreground(tcell.ColorRed),
			HeadRune:   '●',
			BodyRune:   '●',
			FoodRune:   '●',
		}
	}
	bg := tcell.StyleDefault.Background(tcell.ColorBlack)
	return Theme{
		Background: bg,
		Border:     bg.Foreground(tcell.ColorGray),
		Text:       bg.Foreground(tcell.ColorWhite),
		Alert:      bg.Foreground(tcell.ColorRed),
		Head:       bg.Foreground(tcell.ColorGreen),
		Body:       bg.Foreground(tcell.ColorGreen),
		Food:       bg.Foreground(tcell.ColorRed),
		HeadRune:   '█',
		BodyRune:   '█',
		FoodRune:   '█',
	}
}

// Renderer draws snapshots onto a tcell screen. Grid cell (x,y) lands on
// screen cell (x+1, y+1) inside a border.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
}

func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.screen.SetStyle(r.theme.Background)
	r.screen.Clear()

	r.drawBorder(s.Grid.Width+2, s.Grid.Height+2)

	if s.Running {
		r.setCell(s.Food.X, s.Food.Y, r.theme.FoodRune, r.theme.Food)
		for i := len(s.Snake) - 1; i >= 0; i-- {
			p := s.Snake[i]
			if i == 0 {
				r.setCell(p.X, p.Y, r.theme.HeadRune, r.theme.Head)
			} else {
				r.setCell(p.X, p.Y, r.theme.BodyRune, r.theme.Body)
			}
		}
		r.drawText(1, s.Grid.Height+2, fmt.Sprintf("Score: %d", s.Score), r.theme.Text)
	} else {
		cx := (s.Grid.Width + 2) / 2
		cy := (s.Grid.Height + 2) / 2
		over := "Game Over"
		score := fmt.Sprintf("Score: %d", s.Score)
		r.drawText(cx-len(over)/2, cy, over, r.theme.Alert)
		r.drawText(cx-len(score)/2, cy+1, score, r.theme.Alert)
		r.drawText(1, s.Grid.Height+2, "press q to quit", r.theme.Text)
	}

	r.screen.Show()
}

// setCell draws a grid cell, skipping cells outside the board.
func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 {
		return
	}
	r.screen.SetContent(x+1, y+1, ch, nil, style)
}

func (r *Renderer) drawBorder(w, h int) {
	st := r.theme.Border
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, st)
		r.screen.SetContent(x, h-1, tcell.RuneHLine, nil, st)
	}
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, st)
		r.screen.SetContent(w-1, y, tcell.RuneVLine, nil, st)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, st)
	r.screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, st)
	r.screen.SetContent(0, h-1, tcell.RuneLLCorner, nil, st)
	r.screen.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, st)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
