package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"

	"snake-panel/game/entity"
	"snake-panel/game/manager"
	"snake-panel/game/types"
)

// Game is a single round of Snake. Tick and HandleInput are the only
// mutators; both may be called from different goroutines.
type Game struct {
	UUID      string
	StartTime time.Time

	cfg          Config
	grid         types.Grid
	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	running      bool
	collision    types.CollisionType
	steps        int
	endTime      time.Time
	log          zerolog.Logger
	mutex        sync.RWMutex
}

type options struct {
	log  zerolog.Logger
	src  manager.Source
	body []types.Point
	food *types.Point
}

// Option customises a Game at construction.
type Option func(*options)

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithSource replaces the random source used to place food.
func WithSource(src manager.Source) Option {
	return func(o *options) { o.src = src }
}

// WithBody starts the game with the given snake, head first, instead of a
// single cell at Config.Start.
func WithBody(cells ...types.Point) Option {
	return func(o *options) { o.body = cells }
}

// WithFood places the first food item instead of drawing it at random.
func WithFood(p types.Point) Option {
	return func(o *options) { o.food = &p }
}

func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		o.src = rand.New(rand.NewSource(seed))
	}

	grid := cfg.Grid()
	id := uuid.New().String()

	var snake *entity.Snake
	if len(o.body) > 0 {
		snake = entity.NewSnakeFromBody(o.body, cfg.StartDirection)
	} else {
		snake = entity.NewSnake(cfg.Start, cfg.StartDirection)
	}

	g := &Game{
		UUID:         id,
		StartTime:    time.Now(),
		cfg:          cfg,
		grid:         grid,
		snake:        snake,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, o.src),
		running:      true,
		log:          o.log.With().Str("game", id).Logger(),
	}

	if o.food != nil {
		g.foodMgr.SetFood(*o.food)
	} else {
		g.foodMgr.Respawn()
	}

	g.log.Debug().
		Str("variant", string(cfg.Variant)).
		Int("width", grid.Width).
		Int("height", grid.Height).
		Interface("food", g.foodMgr.GetFood()).
		Msg("game created")

	return g, nil
}

// HandleInput steers the snake. Reversals and input after game over are ignored.
func (g *Game) HandleInput(dir types.Direction) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if !g.running {
		return
	}
	if !g.snake.SetDirection(dir) {
		g.log.Trace().Stringer("requested", dir).Stringer("current", g.snake.Direction).Msg("input ignored")
	}
}

// Tick advances the snake by one cell.
//
// The wall check, self check and food check all run on every live tick, even
// once the wall check has ended the game, so a fatal tick still trims the tail.
func (g *Game) Tick() {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if !g.running {
		return
	}
	g.steps++

	newHead := g.snake.NextHead()
	g.snake.Move(newHead)

	if g.collisionMgr.IsWallCollision(newHead) {
		g.end(types.WallCollision)
	}
	if g.collisionMgr.IsSelfCollision(g.snake) {
		g.end(types.SelfCollision)
	}

	if g.collisionMgr.IsFoodCollision(newHead, g.foodMgr.GetFood()) {
		next := g.foodMgr.Respawn()
		g.log.Debug().Int("score", g.score()).Interface("food", next).Msg("food eaten")
	} else {
		g.snake.RemoveTail()
	}

	if !g.running {
		g.logGameOver()
	}
}

// end records the first collision of the fatal tick.
func (g *Game) end(cause types.CollisionType) {
	if !g.running {
		return
	}
	g.running = false
	g.collision = cause
	g.endTime = time.Now()
}

func (g *Game) logGameOver() {
	g.log.Info().
		Stringer("cause", g.collision).
		Int("score", g.score()).
		Int("steps", g.steps).
		Dur("elapsed", g.endTime.Sub(g.StartTime)).
		Msg("game over")
}

func (g *Game) score() int {
	return g.snake.Len() - 1
}

// Score is the number of food items eaten.
func (g *Game) Score() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.score()
}

// Snake returns the body cells, head first.
func (g *Game) Snake() []types.Point {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.snake.Cells()
}

func (g *Game) Food() types.Point {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.foodMgr.GetFood()
}

func (g *Game) Running() bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.running
}

func (g *Game) Direction() types.Direction {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.snake.Direction
}

func (g *Game) Collision() types.CollisionType {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.collision
}

// Steps counts the ticks that moved the snake.
func (g *Game) Steps() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.steps
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) CellSize() int {
	return g.cfg.CellSize
}

func (g *Game) Config() Config {
	return g.cfg
}

// ElapsedTime is the duration of the round in seconds, frozen at game over.
func (g *Game) ElapsedTime() float64 {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	if !g.running {
		return g.endTime.Sub(g.StartTime).Seconds()
	}
	return time.Since(g.StartTime).Seconds()
}
