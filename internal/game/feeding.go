package game

import (
	"sort"

	"github.com/animaldominion/dominion-server-go/internal/catalog"
)

// resolveFeeding distributes the shared food pool over every herbivore and
// omnivore level, ascending. A level either eats in full, settles a single
// duel between its two heaviest members when the pool covers only one
// share, or goes entirely hungry. Afterwards every strict carnivore that
// was not fed by hunting this turn grows hungrier; carnivores never draw
// from the pool.
func (m *Match) resolveFeeding(fedPredators map[int]bool) {
	state := m.State
	biome := &state.Biome
	state.logf("CN feeding phase.")

	for level := 1; level <= biome.Lmax; level++ {
		var grazers []*AnimalInstance
		for _, animal := range state.Animals {
			card := m.cat.MustGet(animal.CardID)
			if card.IsGrazer() && card.Level == level {
				grazers = append(grazers, animal)
			}
		}
		if len(grazers) == 0 {
			continue
		}

		totalNeeded := level * len(grazers)
		if biome.CN >= totalNeeded {
			biome.CN -= totalNeeded
			for _, animal := range grazers {
				animal.Hunger = 0
			}
			state.logf("Level %d: all fed. CN remaining %d.", level, biome.CN)
			continue
		}

		state.logf("Level %d: CN too low (%d available) for %d grazers.", level, biome.CN, len(grazers))
		// Stable sort keeps table order on equal weights, so the first
		// encountered instance wins a weight tie.
		duelists := make([]*AnimalInstance, len(grazers))
		copy(duelists, grazers)
		sort.SliceStable(duelists, func(a, b int) bool {
			return m.cat.MustGet(duelists[a].CardID).WeightKg > m.cat.MustGet(duelists[b].CardID).WeightKg
		})
		if len(duelists) >= 2 && biome.CN >= level {
			winner, loser := duelists[0], duelists[1]
			biome.CN -= level
			winner.Hunger = 0
			loser.Hunger++
			state.logf("Feeding duel: %s eats, %s goes hungry.",
				m.cat.MustGet(winner.CardID).Name, m.cat.MustGet(loser.CardID).Name)
			for _, animal := range grazers {
				if animal.InstanceID != winner.InstanceID && animal.InstanceID != loser.InstanceID {
					animal.Hunger++
				}
			}
		} else {
			for _, animal := range grazers {
				animal.Hunger++
			}
			state.logf("Not enough CN for a duel: hunger rises across level %d.", level)
		}
	}

	hungrier := false
	for _, animal := range state.Animals {
		card := m.cat.MustGet(animal.CardID)
		if card.Type == catalog.TypeCarnivore && !fedPredators[animal.InstanceID] {
			animal.Hunger++
			hungrier = true
		}
	}
	if hungrier {
		state.logf("Carnivores without a kill grow hungrier.")
	}
}
