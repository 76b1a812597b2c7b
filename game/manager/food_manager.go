package manager

import (
	"snake-panel/game/types"
)

// Source yields integers in [0, n).
type Source interface {
	Intn(n int) int
}

type FoodManager struct {
	grid types.Grid
	src  Source
	food types.Point
}

func NewFoodManager(grid types.Grid, src Source) *FoodManager {
	return &FoodManager{
		grid: grid,
		src:  src,
	}
}

// GenerateFood picks a cell uniformly over the whole grid. Cells under the
// snake are not excluded.
func (fm *FoodManager) GenerateFood() types.Point {
	return types.Point{
		X: fm.src.Intn(fm.grid.Width),
		Y: fm.src.Intn(fm.grid.Height),
	}
}

// Respawn replaces the current food and returns the new position.
func (fm *FoodManager) Respawn() types.Point {
	fm.food = fm.GenerateFood()
	return fm.food
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

func (fm *FoodManager) SetFood(food types.Point) {
	fm.food = food
}
