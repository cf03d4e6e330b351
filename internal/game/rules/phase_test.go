package rules

import "testing"

func TestTrackerFollowsTurnSequence(t *testing.T) {
	tr := NewTracker()
	if tr.Current() != PhaseTurnStart {
		t.Fatalf("expected initial phase TURN_START, got %s", tr.Current())
	}

	sequence := []Phase{
		PhaseActionWindow,
		PhaseEndTurnResolution,
		PhaseControlCheck,
		PhaseTurnStart,
		PhaseActionWindow,
	}
	for _, next := range sequence {
		if err := tr.Advance(next); err != nil {
			t.Fatalf("advancing to %s: %v", next, err)
		}
		if tr.Current() != next {
			t.Fatalf("expected phase %s, got %s", next, tr.Current())
		}
	}
}

func TestTrackerRejectsIllegalTransitions(t *testing.T) {
	cases := []struct {
		from Phase
		to   Phase
	}{
		{PhaseTurnStart, PhaseEndTurnResolution},
		{PhaseTurnStart, PhaseControlCheck},
		{PhaseActionWindow, PhaseTurnStart},
		{PhaseActionWindow, PhaseGameOver},
		{PhaseEndTurnResolution, PhaseActionWindow},
		{PhaseControlCheck, PhaseActionWindow},
		{PhaseGameOver, PhaseTurnStart},
		{PhaseGameOver, PhaseActionWindow},
	}
	for _, tc := range cases {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("transition %s -> %s should be illegal", tc.from, tc.to)
		}
		tr := &Tracker{current: tc.from}
		if err := tr.Advance(tc.to); err == nil {
			t.Errorf("Advance(%s -> %s) should fail", tc.from, tc.to)
		}
		if tr.Current() != tc.from {
			t.Errorf("failed advance must not move the tracker, got %s", tr.Current())
		}
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	tr := NewTracker()
	if err := tr.Advance(PhaseGameOver); err != nil {
		t.Fatalf("TurnStart -> GameOver should be legal (confirmed control win): %v", err)
	}
	if !tr.Terminal() {
		t.Fatal("expected tracker to be terminal")
	}
	for p := PhaseTurnStart; p <= PhaseGameOver; p++ {
		if CanTransition(PhaseGameOver, p) {
			t.Errorf("GameOver must have no outgoing edges, found -> %s", p)
		}
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseActionWindow.String() != "ACTION_WINDOW" {
		t.Fatalf("unexpected name %s", PhaseActionWindow)
	}
	if Phase(99).String() != "PHASE_99" {
		t.Fatalf("unexpected fallback name %s", Phase(99))
	}
}
