package sequencer

import (
	"testing"
	"time"
)

type countingView struct {
	invalidations int
}

func (v *countingView) Invalidate() { v.invalidations++ }

func TestTickerStartIsIdempotent(t *testing.T) {
	view := &countingView{}
	tk := NewTicker(50*time.Millisecond, view)

	tk.Start()
	tk.Start()
	tk.Start()
	if !tk.Running() {
		t.Fatalf("ticker should be running")
	}
	if view.invalidations != 1 {
		t.Fatalf("expected a single initial redraw, got %d", view.invalidations)
	}

	tk.Stop()
	tk.Stop()
	if tk.Running() {
		t.Fatalf("ticker should be stopped")
	}
}

func TestTickerTick(t *testing.T) {
	view := &countingView{}
	tk := NewTicker(0, view)
	if tk.Interval() != 50*time.Millisecond {
		t.Fatalf("expected default interval, got %v", tk.Interval())
	}

	steps := 0
	tk.Tick(func() { steps++ })
	if steps != 0 || view.invalidations != 0 {
		t.Fatalf("stopped ticker should not step or redraw")
	}

	tk.Start()
	tk.Tick(func() { steps++ })
	if steps != 1 || view.invalidations != 2 {
		t.Fatalf("expected 1 step and 2 redraws, got %d and %d", steps, view.invalidations)
	}
}

func TestTickerAdvance(t *testing.T) {
	cases := []struct {
		name  string
		dts   []time.Duration
		want  int
		extra func(tk *Ticker) func()
	}{
		{"below_interval", []time.Duration{20 * time.Millisecond, 20 * time.Millisecond}, 0, nil},
		{"accumulates", []time.Duration{30 * time.Millisecond, 30 * time.Millisecond}, 1, nil},
		{"several", []time.Duration{160 * time.Millisecond}, 3, nil},
		{"catch_up_bounded", []time.Duration{time.Second}, maxCatchUp, nil},
		{"stop_inside_step", []time.Duration{200 * time.Millisecond}, 1, func(tk *Ticker) func() {
			return tk.Stop
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tk := NewTicker(50*time.Millisecond, nil)
			tk.Start()
			var onStep func()
			if c.extra != nil {
				onStep = c.extra(tk)
			}
			steps := 0
			for _, dt := range c.dts {
				tk.Advance(dt, func() {
					steps++
					if onStep != nil {
						onStep()
					}
				})
			}
			if steps != c.want {
				t.Fatalf("expected %d steps, got %d", c.want, steps)
			}
		})
	}
}

func TestTickerAdvanceWhenStopped(t *testing.T) {
	tk := NewTicker(50*time.Millisecond, nil)
	if n := tk.Advance(time.Second, func() { t.Fatalf("stopped ticker stepped") }); n != 0 {
		t.Fatalf("expected 0 ticks, got %d", n)
	}
}
