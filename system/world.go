package system

import (
	"time"

	"github.com/milk9111/steptoline/prefabs"
	"github.com/milk9111/steptoline/sequencer"
)

// Input is the per-frame input state, filled by InputSystem.
type Input struct {
	Tap       bool
	Copy      bool
	ToggleHUD bool
}

// World is the state shared by systems during a frame.
type World struct {
	Seq   *sequencer.Sequencer
	Style *prefabs.StyleSpec
	Input Input
	// Dt is the time elapsed since the previous frame.
	Dt time.Duration

	ShowHUD bool

	// OnStyle hooks run after a style reload has been applied.
	OnStyle []func(*prefabs.StyleSpec)
}

func NewWorld(seq *sequencer.Sequencer, style *prefabs.StyleSpec) *World {
	return &World{Seq: seq, Style: style}
}

// ApplyStyle reconfigures the sequencer from spec and notifies OnStyle hooks.
func (w *World) ApplyStyle(spec *prefabs.StyleSpec) error {
	cfg, err := spec.Config()
	if err != nil {
		return err
	}
	w.Style = spec
	w.Seq.Configure(cfg)
	for _, fn := range w.OnStyle {
		fn(spec)
	}
	return nil
}
