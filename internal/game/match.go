package game

import (
	"fmt"
	"math/rand"

	"github.com/animaldominion/dominion-server-go/internal/catalog"
	"github.com/animaldominion/dominion-server-go/internal/game/rules"
)

// Params fixes the rule constants for a match.
type Params struct {
	BiomeName      string
	CNBase         int
	Lmax           int
	HandSize       int
	ActionsPerTurn int
}

// DefaultParams returns the baseline forest configuration.
func DefaultParams() Params {
	return Params{
		BiomeName:      "Forest",
		CNBase:         4,
		Lmax:           6,
		HandSize:       8,
		ActionsPerTurn: 3,
	}
}

func (p Params) validate(cat *catalog.Catalog) error {
	if p.CNBase < 0 {
		return fmt.Errorf("cn_base must not be negative, got %d", p.CNBase)
	}
	if p.HandSize < 1 {
		return fmt.Errorf("hand_size must be positive, got %d", p.HandSize)
	}
	if p.ActionsPerTurn < 1 {
		return fmt.Errorf("actions_per_turn must be positive, got %d", p.ActionsPerTurn)
	}
	if p.Lmax < cat.MaxLevel() {
		return fmt.Errorf("lmax %d is below the catalog's highest animal level %d", p.Lmax, cat.MaxLevel())
	}
	return nil
}

// Match binds one game's mutable state to the shared immutable catalog and
// the turn-phase tracker. All rule methods hang off it; none of them are
// safe for concurrent use, callers serialize access per match.
type Match struct {
	State  *GameState
	params Params
	cat    *catalog.Catalog
	phase  *rules.Tracker
}

// NewMatch shuffles both decks independently with the injected random
// source, builds the initial biome and runs the first player's turn start,
// so the returned match is already in its action window.
func NewMatch(cat *catalog.Catalog, params Params, names [2]string, decks [2][]string, rng *rand.Rand) (*Match, error) {
	if params.Lmax == 0 {
		params.Lmax = cat.MaxLevel()
	}
	if err := params.validate(cat); err != nil {
		return nil, err
	}
	players := [2]*PlayerState{}
	for i := range decks {
		deck := make([]string, len(decks[i]))
		copy(deck, decks[i])
		for _, id := range deck {
			if _, ok := cat.Get(id); !ok {
				return nil, fmt.Errorf("deck for %s references unknown card %q", names[i], id)
			}
		}
		rng.Shuffle(len(deck), func(a, b int) {
			deck[a], deck[b] = deck[b], deck[a]
		})
		players[i] = &PlayerState{Name: names[i], Deck: deck}
	}

	m := &Match{
		State: &GameState{
			Players: players,
			Biome: BiomeState{
				Name:   params.BiomeName,
				CNBase: params.CNBase,
				Lmax:   params.Lmax,
			},
			NextInstanceID: 1,
			TurnNumber:     1,
		},
		params: params,
		cat:    cat,
		phase:  rules.NewTracker(),
	}
	m.State.logf("Game started in the %s biome.", params.BiomeName)
	m.startTurn()
	return m, nil
}

// Phase returns the phase the match is currently in.
func (m *Match) Phase() rules.Phase {
	return m.phase.Current()
}

// Over reports whether a winner has been declared.
func (m *Match) Over() bool {
	return m.State.Winner != ""
}

func (m *Match) mustAdvance(to rules.Phase) {
	if err := m.phase.Advance(to); err != nil {
		// The match drives its own phase sequence; an illegal edge here is
		// an engine bug, not a player error.
		panic(err)
	}
}
