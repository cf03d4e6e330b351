package game

import "github.com/animaldominion/dominion-server-go/internal/game/rules"

// startTurn runs the beginning-of-turn sequence for the active player:
// confirm a pending control claim, reset the action budget, recompute the
// food pool and draw up to a full hand. Phase moves to ActionWindow, or to
// GameOver when the control claim is confirmed.
func (m *Match) startTurn() {
	state := m.State
	player := state.activePlayer()

	// Second, confirming control check. A claim set at the end of the
	// player's previous turn wins now only if it still holds; otherwise the
	// claim is void.
	if player.PendingControl {
		if m.checkControl(state.ActivePlayerIndex) {
			state.Winner = player.Name
			state.logf("%s holds full control of every level and wins the game.", player.Name)
			m.mustAdvance(rules.PhaseGameOver)
			return
		}
		player.PendingControl = false
		state.logf("%s's control claim no longer holds.", player.Name)
	}

	state.ActionsUsed = 0

	biome := &state.Biome
	plantFood := 0
	for _, plant := range state.Plants {
		plantFood += m.cat.MustGet(plant.CardID).CNPerTurn
	}
	biome.CN = biome.CNBase + biome.CNTemp + plantFood
	biome.CNTemp = 0
	state.logf("Start of %s's turn. CN available: %d (base %d).", player.Name, biome.CN, biome.CNBase)

	m.drawToHand(player)
	m.mustAdvance(rules.PhaseActionWindow)
}

// drawToHand tops the player's hand up from the deck. Running out of cards
// carries no penalty, the player simply holds fewer.
func (m *Match) drawToHand(player *PlayerState) {
	for len(player.Hand) < m.params.HandSize && len(player.Deck) > 0 {
		player.Hand = append(player.Hand, player.Deck[0])
		player.Deck = player.Deck[1:]
	}
	m.State.logf("%s draws up to %d cards in hand.", player.Name, len(player.Hand))
}

// EndTurn resolves the acting player's turn and chains straight into the
// next player's turn start. The whole pipeline (hunting, feeding,
// starvation, conversion, control check, advance, draw) runs atomically
// within this one call. It is a no-op once a winner is set.
func (m *Match) EndTurn(huntingChoices map[int]int) {
	state := m.State
	if state.Winner != "" {
		return
	}
	m.mustAdvance(rules.PhaseEndTurnResolution)

	fed := m.resolveHunting(huntingChoices)
	m.resolveFeeding(fed)
	m.resolveStarvation()
	m.resolveConversion()

	m.mustAdvance(rules.PhaseControlCheck)
	player := state.activePlayer()
	if m.checkControl(state.ActivePlayerIndex) {
		player.PendingControl = true
		state.logf("%s threatens full control.", player.Name)
	} else {
		player.PendingControl = false
	}

	state.ActivePlayerIndex = (state.ActivePlayerIndex + 1) % len(state.Players)
	state.TurnNumber++
	m.mustAdvance(rules.PhaseTurnStart)
	m.startTurn()
}
