package sequencer

import (
	"time"

	"github.com/milk9111/steptoline/common"
)

// maxCatchUp bounds how many intervals a single Advance may run, so a
// stalled host does not replay a burst of steps in one frame.
const maxCatchUp = 4

// Invalidator requests a redraw from the host view.
type Invalidator interface {
	Invalidate()
}

// InvalidatorFunc adapts a function to Invalidator.
type InvalidatorFunc func()

func (f InvalidatorFunc) Invalidate() {
	if f != nil {
		f()
	}
}

// Ticker runs one step per fixed interval while running. It never blocks;
// hosts feed it elapsed time through Advance, or call Tick from their own
// timer.
type Ticker struct {
	interval time.Duration
	elapsed  time.Duration
	running  bool
	view     Invalidator
}

func NewTicker(interval time.Duration, view Invalidator) *Ticker {
	if interval <= 0 {
		interval = common.DefaultInterval
	}
	return &Ticker{interval: interval, view: view}
}

func (t *Ticker) Interval() time.Duration { return t.interval }
func (t *Ticker) Running() bool           { return t.running }

func (t *Ticker) SetInterval(d time.Duration) {
	if d <= 0 {
		d = common.DefaultInterval
	}
	t.interval = d
}

// Start begins ticking and requests an initial redraw. Starting a running
// ticker does nothing.
func (t *Ticker) Start() {
	if t.running {
		return
	}
	t.running = true
	t.elapsed = 0
	t.invalidate()
}

func (t *Ticker) Stop() {
	if t.running {
		t.running = false
	}
}

// Tick runs step once and requests a redraw, if running.
func (t *Ticker) Tick(step func()) {
	if !t.running {
		return
	}
	if step != nil {
		step()
	}
	t.invalidate()
}

// Advance accumulates dt and runs one Tick per whole interval elapsed. It
// returns the number of ticks run.
func (t *Ticker) Advance(dt time.Duration, step func()) int {
	if !t.running || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	if limit := maxCatchUp * t.interval; t.elapsed > limit {
		t.elapsed = limit
	}
	n := 0
	for t.running && t.elapsed >= t.interval {
		t.elapsed -= t.interval
		t.Tick(step)
		n++
	}
	if !t.running {
		t.elapsed = 0
	}
	return n
}

func (t *Ticker) invalidate() {
	if t.view != nil {
		t.view.Invalidate()
	}
}
