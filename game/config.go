package game

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"snake-panel/game/types"
)

// Variant selects one of the two panel layouts.
type Variant string

const (
	VariantClassic  Variant = "classic"
	VariantEnhanced Variant = "enhanced"
)

const (
	DefaultCanvasWidth  = 600
	DefaultCanvasHeight = 400
	DefaultTickInterval = 100 * time.Millisecond
)

// Config is fixed at construction; nothing reconfigures a running game.
type Config struct {
	CanvasWidth    int             `validate:"gt=0"`
	CanvasHeight   int             `validate:"gt=0"`
	CellSize       int             `validate:"gt=0,ltefield=CanvasWidth,ltefield=CanvasHeight"`
	TickInterval   time.Duration   `validate:"gt=0"`
	Start          types.Point     `validate:"-"`
	StartDirection types.Direction `validate:"gte=1,lte=4"`
	Variant        Variant         `validate:"oneof=classic enhanced"`
	// Seed for food placement; 0 picks one from the clock.
	Seed uint64
}

var validate = validator.New()

// Classic is the 10px-cell panel.
func Classic() Config {
	return Config{
		CanvasWidth:    DefaultCanvasWidth,
		CanvasHeight:   DefaultCanvasHeight,
		CellSize:       10,
		TickInterval:   DefaultTickInterval,
		Start:          types.Point{X: 5, Y: 5},
		StartDirection: types.RIGHT,
		Variant:        VariantClassic,
	}
}

// Enhanced is the 20px-cell panel.
func Enhanced() Config {
	cfg := Classic()
	cfg.CellSize = 20
	cfg.Variant = VariantEnhanced
	return cfg
}

// ForVariant returns the preset named by v.
func ForVariant(v Variant) (Config, error) {
	switch v {
	case VariantClassic:
		return Classic(), nil
	case VariantEnhanced:
		return Enhanced(), nil
	default:
		return Config{}, fmt.Errorf("unknown variant %q", v)
	}
}

// Grid derives the board size from the canvas and cell size.
func (c Config) Grid() types.Grid {
	if c.CellSize <= 0 {
		return types.Grid{}
	}
	return types.Grid{
		Width:  c.CanvasWidth / c.CellSize,
		Height: c.CanvasHeight / c.CellSize,
	}
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if !c.Grid().Contains(c.Start) {
		return fmt.Errorf("invalid config: start %+v outside %dx%d grid", c.Start, c.Grid().Width, c.Grid().Height)
	}
	return nil
}
