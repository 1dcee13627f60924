package sequencer

import (
	"time"

	"github.com/milk9111/steptoline/common"
	"github.com/milk9111/steptoline/render"
)

// Config holds the tunable animation parameters.
type Config struct {
	Step     float64
	Interval time.Duration
	// Strict settles only once travel exceeds a full unit, one step past
	// the boundary.
	Strict bool
	Style  render.Style
}

func DefaultConfig() Config {
	return Config{
		Step:     common.DefaultStep,
		Interval: common.DefaultInterval,
		Style:    render.DefaultStyle(),
	}
}

// SettleFunc is called after a node completes a half-cycle.
type SettleFunc func(index int, settled float64)

// Sequencer owns the chain and its ticker.
type Sequencer struct {
	chain  *Chain
	ticker *Ticker
	cfg    Config

	listeners []SettleFunc
}

// New builds a sequencer over a common.NodeCount chain. view receives redraw
// requests and may be nil.
func New(view Invalidator, cfg Config) *Sequencer {
	s := &Sequencer{
		chain:  NewChain(common.NodeCount),
		ticker: NewTicker(cfg.Interval, view),
	}
	s.Configure(cfg)
	return s
}

func (s *Sequencer) Chain() *Chain   { return s.chain }
func (s *Sequencer) Ticker() *Ticker { return s.ticker }
func (s *Sequencer) Config() Config  { return s.cfg }

// Configure replaces the animation parameters. Node scales and the cursor
// are left alone.
func (s *Sequencer) Configure(cfg Config) {
	if cfg.Step <= 0 || cfg.Step > 1 {
		cfg.Step = common.DefaultStep
	}
	if cfg.Interval <= 0 {
		cfg.Interval = common.DefaultInterval
	}
	s.cfg = cfg
	s.chain.configure(cfg.Step, cfg.Strict)
	s.ticker.SetInterval(cfg.Interval)
}

// OnSettle registers fn to run whenever a node settles.
func (s *Sequencer) OnSettle(fn SettleFunc) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

// Render clears the surface and draws the whole chain.
func (s *Sequencer) Render(dst render.Surface) {
	render.Clear(dst, s.cfg.Style)
	s.chain.Draw(dst, s.cfg.Style)
}

// Update feeds elapsed time to the ticker.
func (s *Sequencer) Update(dt time.Duration) int {
	return s.ticker.Advance(dt, s.step)
}

// Tick runs a single interval immediately.
func (s *Sequencer) Tick() {
	s.ticker.Tick(s.step)
}

// HandleTap starts the cursor node and the ticker. Taps while a node is
// animating are ignored.
func (s *Sequencer) HandleTap() {
	s.chain.Begin(s.ticker.Start)
}

func (s *Sequencer) step() {
	s.chain.Step(func(index int, settled float64) {
		s.ticker.Stop()
		for _, fn := range s.listeners {
			fn(index, settled)
		}
	})
}
