package sequencer

import "testing"

func runToSettle(t *testing.T, s *State, limit int) (steps int, settled float64) {
	t.Helper()
	done := false
	for steps = 0; steps < limit && !done; steps++ {
		s.Step(func(v float64) {
			done = true
			settled = v
		})
	}
	if !done {
		t.Fatalf("state did not settle within %d steps: %+v", limit, *s)
	}
	return steps, settled
}

func TestStateBeginToggles(t *testing.T) {
	cases := []struct {
		name      string
		committed float64
		wantDir   float64
	}{
		{"from_zero", 0, 1},
		{"from_one", 1, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := State{Scale: c.committed, Committed: c.committed}
			started := 0
			s.Begin(func() { started++ })
			if s.Dir != c.wantDir {
				t.Fatalf("expected dir %v, got %v", c.wantDir, s.Dir)
			}
			if started != 1 {
				t.Fatalf("expected started callback once, got %d", started)
			}
		})
	}
}

func TestStateBeginWhileAnimatingIsNoop(t *testing.T) {
	s := State{}
	s.Begin(nil)
	s.Step(nil)
	s.Step(nil)

	before := s
	called := false
	s.Begin(func() { called = true })
	if called {
		t.Fatalf("begin callback should not run while animating")
	}
	if s.Dir != before.Dir || s.Committed != before.Committed || s.Scale != before.Scale {
		t.Fatalf("begin changed state: before=%+v after=%+v", before, s)
	}
}

func TestStateSettlesAtExtremes(t *testing.T) {
	s := State{}
	for cycle := 0; cycle < 6; cycle++ {
		s.Begin(nil)
		steps, settled := runToSettle(t, &s, 100)
		if steps != 20 {
			t.Fatalf("cycle %d: expected 20 steps, got %d", cycle, steps)
		}
		want := float64((cycle + 1) % 2)
		if settled != want || s.Committed != want || s.Scale != want {
			t.Fatalf("cycle %d: expected settle at %v, got settled=%v state=%+v", cycle, want, settled, s)
		}
		if !s.Idle() {
			t.Fatalf("cycle %d: expected idle after settle", cycle)
		}
	}
}

func TestStateStepWhileIdleDoesNothing(t *testing.T) {
	s := State{Scale: 1, Committed: 1}
	s.Step(func(float64) { t.Fatalf("idle state should not settle") })
	if s.Scale != 1 {
		t.Fatalf("idle step moved scale to %v", s.Scale)
	}
}

func TestStateThreshold(t *testing.T) {
	cases := []struct {
		name      string
		strict    bool
		wantSteps int
	}{
		{"tight", false, 4},
		{"strict", true, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := State{}
			s.configure(0.25, c.strict)
			s.Begin(nil)
			steps, settled := runToSettle(t, &s, 10)
			if steps != c.wantSteps {
				t.Fatalf("expected %d steps, got %d", c.wantSteps, steps)
			}
			if settled != 1 || s.Scale != 1 {
				t.Fatalf("expected clamp to 1, got settled=%v scale=%v", settled, s.Scale)
			}
		})
	}
}
