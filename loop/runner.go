package loop

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"snake-panel/game"
	"snake-panel/game/types"
)

// InputBuffer is how many directions may queue up between ticks.
const InputBuffer = 16

var ErrAlreadyRunning = errors.New("runner already running")

// Game is the simulation a Runner drives.
type Game interface {
	HandleInput(dir types.Direction)
	Tick()
	Snapshot() game.Snapshot
}

// RenderFunc receives the state after every tick, on the runner's goroutine.
type RenderFunc func(game.Snapshot)

// Runner serialises input and ticks onto one goroutine.
type Runner struct {
	game      Game
	scheduler Scheduler
	render    RenderFunc
	inputs    chan types.Direction
	log       zerolog.Logger

	mutex   sync.Mutex
	running bool
}

func NewRunner(g Game, scheduler Scheduler, render RenderFunc, log zerolog.Logger) *Runner {
	return &Runner{
		game:      g,
		scheduler: scheduler,
		render:    render,
		inputs:    make(chan types.Direction, InputBuffer),
		log:       log,
	}
}

// Send queues a direction without blocking. It returns false if the queue is full.
func (r *Runner) Send(dir types.Direction) bool {
	select {
	case r.inputs <- dir:
		return true
	default:
		r.log.Warn().Stringer("dir", dir).Msg("input queue full, dropping")
		return false
	}
}

// Run blocks until the game ends or ctx is cancelled. The scheduler is
// stopped on return.
func (r *Runner) Run(ctx context.Context) error {
	r.mutex.Lock()
	if r.running {
		r.mutex.Unlock()
		return ErrAlreadyRunning
	}
	r.running = true
	r.mutex.Unlock()

	defer func() {
		r.scheduler.Stop()
		r.mutex.Lock()
		r.running = false
		r.mutex.Unlock()
	}()

	snap := r.game.Snapshot()
	r.draw(snap)
	if !snap.Running {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case dir := <-r.inputs:
			r.game.HandleInput(dir)
		case <-r.scheduler.C():
			r.drainInputs()
			r.game.Tick()

			snap := r.game.Snapshot()
			r.draw(snap)
			if !snap.Running {
				r.log.Debug().Int("score", snap.Score).Int("steps", snap.Steps).Msg("runner stopped")
				return nil
			}
		}
	}
}

// drainInputs applies queued input in arrival order so the last one sent
// before a tick decides the move.
func (r *Runner) drainInputs() {
	for {
		select {
		case dir := <-r.inputs:
			r.game.HandleInput(dir)
		default:
			return
		}
	}
}

func (r *Runner) draw(s game.Snapshot) {
	if r.render != nil {
		r.render(s)
	}
}
