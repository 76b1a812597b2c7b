package game

import "snake-panel/game/types"

// Snapshot is a consistent copy of the game state for renderers.
type Snapshot struct {
	UUID      string
	Variant   Variant
	Grid      types.Grid
	CellSize  int
	Snake     []types.Point
	Food      types.Point
	Direction types.Direction
	Running   bool
	Score     int
	Steps     int
	Collision types.CollisionType
}

// Head returns the first body cell.
func (s Snapshot) Head() types.Point {
	if len(s.Snake) == 0 {
		return types.Point{}
	}
	return s.Snake[0]
}

// Snapshot captures every accessor under a single read lock.
func (g *Game) Snapshot() Snapshot {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return Snapshot{
		UUID:      g.UUID,
		Variant:   g.cfg.Variant,
		Grid:      g.grid,
		CellSize:  g.cfg.CellSize,
		Snake:     g.snake.Cells(),
		Food:      g.foodMgr.GetFood(),
		Direction: g.snake.Direction,
		Running:   g.running,
		Score:     g.score(),
		Steps:     g.steps,
		Collision: g.collision,
	}
}
