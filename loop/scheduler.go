// Package loop drives a game at a fixed rate and feeds it input.
package loop

import "time"

// Scheduler delivers ticks. The game itself owns no timer.
type Scheduler interface {
	C() <-chan time.Time
	Stop()
}

// Ticker is a Scheduler backed by time.Ticker.
type Ticker struct {
	t *time.Ticker
}

func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{t: time.NewTicker(interval)}
}

func (t *Ticker) C() <-chan time.Time { return t.t.C }

func (t *Ticker) Stop() { t.t.Stop() }

// FixedStep paces updates from a loop that runs faster than the tick rate,
// such as a render loop pinned to the main thread.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

func NewFixedStep(step time.Duration) *FixedStep {
	if step <= 0 {
		step = 100 * time.Millisecond
	}
	return &FixedStep{step: step}
}

// ShouldStep reports whether a tick is due at now. At most one tick is
// reported per call; a long stall is caught up over later calls.
func (f *FixedStep) ShouldStep(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
		return false
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
