package system

// SequencerSystem forwards taps and elapsed time to the sequencer.
type SequencerSystem struct{}

func NewSequencerSystem() *SequencerSystem {
	return &SequencerSystem{}
}

func (s *SequencerSystem) Update(w *World) {
	if w.Seq == nil {
		return
	}
	if w.Input.Tap {
		w.Seq.HandleTap()
	}
	w.Seq.Update(w.Dt)
}
