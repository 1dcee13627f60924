package sequencer

import (
	"math"

	"github.com/milk9111/steptoline/common"
)

const settleEpsilon = 1e-9

// State is the animation state of a single node. Dir is zero while the node
// is settled at Committed.
type State struct {
	Scale     float64
	Dir       float64
	Committed float64

	step   float64
	strict bool
}

func (s *State) configure(step float64, strict bool) {
	s.step = step
	s.strict = strict
}

// Idle reports whether the node is settled.
func (s *State) Idle() bool {
	return s.Dir == 0
}

// Step advances the scale by one increment. When a full unit of travel since
// the last settle has accumulated, the scale snaps to the opposite extreme
// and onSettle receives the new committed value.
func (s *State) Step(onSettle func(settled float64)) {
	if s.Dir == 0 {
		return
	}
	step := s.step
	if step <= 0 || step > 1 {
		step = common.DefaultStep
	}
	s.Scale += step * s.Dir
	if !s.reachedThreshold() {
		return
	}
	s.Scale = s.Committed + s.Dir
	s.Dir = 0
	s.Committed = s.Scale
	if onSettle != nil {
		onSettle(s.Committed)
	}
}

func (s *State) reachedThreshold() bool {
	travel := math.Abs(s.Scale - s.Committed)
	if s.strict {
		return travel > 1
	}
	return travel >= 1-settleEpsilon
}

// Begin starts a half-cycle toward the opposite extreme. It does nothing if
// the node is already animating.
func (s *State) Begin(onStarted func()) {
	if s.Dir != 0 {
		return
	}
	s.Dir = 1 - 2*s.Committed
	if onStarted != nil {
		onStarted()
	}
}
