package rules

import "fmt"

// Phase represents the stages a turn moves through. The engine drives the
// sequence TurnStart → ActionWindow → EndTurnResolution → ControlCheck and
// then either wraps to the next player's TurnStart or terminates in
// GameOver.
type Phase int

const (
	PhaseTurnStart Phase = iota
	PhaseActionWindow
	PhaseEndTurnResolution
	PhaseControlCheck
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseTurnStart:         "TURN_START",
	PhaseActionWindow:      "ACTION_WINDOW",
	PhaseEndTurnResolution: "END_TURN_RESOLUTION",
	PhaseControlCheck:      "CONTROL_CHECK",
	PhaseGameOver:          "GAME_OVER",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// transitions lists every legal phase edge. GameOver is terminal.
var transitions = map[Phase][]Phase{
	PhaseTurnStart:         {PhaseActionWindow, PhaseGameOver},
	PhaseActionWindow:      {PhaseEndTurnResolution},
	PhaseEndTurnResolution: {PhaseControlCheck},
	PhaseControlCheck:      {PhaseTurnStart, PhaseGameOver},
	PhaseGameOver:          {},
}

// CanTransition reports whether moving from one phase to another is legal.
func CanTransition(from, to Phase) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Tracker holds the current phase and refuses illegal transitions, so an
// out-of-order engine call is a representable failure instead of silent
// state corruption.
type Tracker struct {
	current Phase
}

// NewTracker creates a tracker positioned at TurnStart.
func NewTracker() *Tracker {
	return &Tracker{current: PhaseTurnStart}
}

// Current returns the phase in progress.
func (t *Tracker) Current() Phase {
	return t.current
}

// Advance moves the tracker to the given phase.
func (t *Tracker) Advance(to Phase) error {
	if !CanTransition(t.current, to) {
		return fmt.Errorf("illegal phase transition %s -> %s", t.current, to)
	}
	t.current = to
	return nil
}

// Terminal reports whether the game has ended.
func (t *Tracker) Terminal() bool {
	return t.current == PhaseGameOver
}
