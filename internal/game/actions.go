package game

import (
	"fmt"

	"github.com/animaldominion/dominion-server-go/internal/catalog"
)

// PlayCard deploys one card from the active player's hand during the action
// window. Rule violations return false with a log entry; the error return
// is reserved for data-integrity faults (a hand id the catalog does not
// know, or an unknown card kind).
func (m *Match) PlayCard(cardID string) (bool, error) {
	state := m.State
	if state.Winner != "" {
		state.logf("The game is already over.")
		return false, nil
	}
	player := state.activePlayer()
	if !contains(player.Hand, cardID) {
		state.logf("That card is not in %s's hand.", player.Name)
		return false, nil
	}
	if state.ActionsUsed >= m.params.ActionsPerTurn {
		state.logf("%s already used all %d actions this turn.", player.Name, m.params.ActionsPerTurn)
		return false, nil
	}

	card, ok := m.cat.Get(cardID)
	if !ok {
		return false, fmt.Errorf("hand references unknown card %q", cardID)
	}

	switch card.Kind {
	case catalog.KindPlant:
		plant := &PlantInstance{
			InstanceID: state.issueInstanceID(),
			CardID:     cardID,
			Owner:      state.ActivePlayerIndex,
		}
		state.Plants = append(state.Plants, plant)
		player.Hand = removeCard(player.Hand, cardID)
		state.ActionsUsed++
		state.logf("%s plays plant %s (+%d CN per turn).", player.Name, card.Name, card.CNPerTurn)
		return true, nil

	case catalog.KindAnimal:
		if !m.canPlayAnimal(card) {
			return false, nil
		}
		animal := &AnimalInstance{
			InstanceID: state.issueInstanceID(),
			CardID:     cardID,
			Owner:      state.ActivePlayerIndex,
		}
		state.Animals = append(state.Animals, animal)
		player.Hand = removeCard(player.Hand, cardID)
		state.ActionsUsed++
		state.logf("%s plays animal %s (level %d).", player.Name, card.Name, card.Level)
		return true, nil
	}

	return false, fmt.Errorf("card %q has unknown kind %q", cardID, card.Kind)
}

// canPlayAnimal checks the deployment condition for an animal card.
// Herbivores need the food pool to cover their level, carnivores need at
// least one viable prey on the table regardless of food, omnivores need
// either.
func (m *Match) canPlayAnimal(card *catalog.Card) bool {
	state := m.State
	hasPrey := len(m.viablePrey(card.Level)) > 0

	switch card.Type {
	case catalog.TypeHerbivore:
		if state.Biome.CN >= card.Level {
			return true
		}
		state.logf("Not enough CN to deploy herbivore %s.", card.Name)
		return false
	case catalog.TypeCarnivore:
		if hasPrey {
			return true
		}
		state.logf("No viable prey on the table for carnivore %s.", card.Name)
		return false
	case catalog.TypeOmnivore:
		if state.Biome.CN >= card.Level || hasPrey {
			return true
		}
		state.logf("Omnivore %s needs enough CN or a viable prey.", card.Name)
		return false
	}
	// Catalog validation rejects unknown animal types at load time.
	return false
}

// viablePrey lists every live animal a predator of the given level could
// hunt: herbivores and omnivores at or above half the predator's level,
// rounded up. Ownership is never checked, prey can belong to either player.
func (m *Match) viablePrey(predatorLevel int) []*AnimalInstance {
	threshold := (predatorLevel + 1) / 2
	var prey []*AnimalInstance
	for _, animal := range m.State.Animals {
		card := m.cat.MustGet(animal.CardID)
		if card.IsGrazer() && card.Level >= threshold {
			prey = append(prey, animal)
		}
	}
	return prey
}

func contains(hand []string, cardID string) bool {
	for _, id := range hand {
		if id == cardID {
			return true
		}
	}
	return false
}
