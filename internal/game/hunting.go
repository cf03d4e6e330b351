package game

import "github.com/animaldominion/dominion-server-go/internal/catalog"

// resolveHunting runs the hunting sub-phase. Candidates are the live
// carnivores and omnivores that are already hungry; a freshly played
// predator with hunger 0 never hunts this turn. Choices map predator
// instance ids to prey instance ids and come from the caller; a missing or
// invalid choice just leaves that predator unfed. The returned set holds
// the instance ids of predators fed by a successful hunt.
func (m *Match) resolveHunting(choices map[int]int) map[int]bool {
	state := m.State
	fed := make(map[int]bool)

	var predators []*AnimalInstance
	for _, animal := range state.Animals {
		if m.cat.MustGet(animal.CardID).IsPredator() && animal.Hunger >= 1 {
			predators = append(predators, animal)
		}
	}
	if len(predators) == 0 {
		state.logf("No hungry predators to hunt.")
		return fed
	}
	state.logf("Hunting phase begins.")

	for _, predator := range predators {
		predatorCard := m.cat.MustGet(predator.CardID)
		preyID := choices[predator.InstanceID]
		if preyID == 0 {
			state.logf("%s has no hunt target.", predatorCard.Name)
			continue
		}
		prey := state.animalByID(preyID)
		if prey == nil {
			state.logf("Invalid hunt target for %s.", predatorCard.Name)
			continue
		}
		if !m.isViablePrey(predatorCard.Level, prey) {
			state.logf("%s cannot hunt that prey.", predatorCard.Name)
			continue
		}
		if m.resolveSingleHunt(predator, prey) {
			fed[predator.InstanceID] = true
		}
	}
	return fed
}

// isViablePrey applies the type and level threshold test against a live
// instance.
func (m *Match) isViablePrey(predatorLevel int, prey *AnimalInstance) bool {
	threshold := (predatorLevel + 1) / 2
	preyCard := m.cat.MustGet(prey.CardID)
	return preyCard.IsGrazer() && preyCard.Level >= threshold
}

// resolveSingleHunt runs one deterministic hunt. Instinct advantage puts
// the predator straight into combat; otherwise superior prey mobility lets
// it escape. Combat compares attack and defense scores boosted by scaled
// body weight. A kill removes the prey, feeds the biome's carrion counter
// and eases the predator's hunger — fully when the prey matched its level.
func (m *Match) resolveSingleHunt(predator, prey *AnimalInstance) bool {
	state := m.State
	predatorCard := m.cat.MustGet(predator.CardID)
	preyCard := m.cat.MustGet(prey.CardID)

	if predatorCard.Instinct >= preyCard.Instinct {
		state.logf("Instinct favors %s. Combat is direct.", predatorCard.Name)
	} else {
		if predatorCard.Mobility < preyCard.Mobility {
			state.logf("%s escapes with superior mobility.", preyCard.Name)
			return false
		}
		state.logf("%s matches %s in mobility.", predatorCard.Name, preyCard.Name)
	}

	attackScore := predatorCard.Attack + int(0.20*float64(weightScaled(predatorCard)))
	defenseScore := preyCard.Defense + int(0.25*float64(weightScaled(preyCard)))
	if attackScore >= defenseScore {
		state.logf("%s takes down %s.", predatorCard.Name, preyCard.Name)
		state.removeAnimal(prey.InstanceID)
		state.Biome.CC += preyCard.Level
		if preyCard.Level == predatorCard.Level {
			predator.Hunger = 0
		} else if predator.Hunger > 0 {
			predator.Hunger--
		}
		return true
	}
	state.logf("%s resists the attack from %s.", preyCard.Name, predatorCard.Name)
	return false
}

// weightScaled maps body weight onto the 0..100 combat scale.
func weightScaled(card *catalog.Card) int {
	scaled := int(card.WeightKg / 10)
	if scaled > 100 {
		return 100
	}
	return scaled
}
