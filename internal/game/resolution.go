package game

// resolveStarvation removes every animal whose hunger reached 2 and feeds
// its level into the biome's carrion counter. Running right after feeding
// means this turn's hunger increments kill immediately, with no grace turn.
func (m *Match) resolveStarvation() {
	state := m.State
	var dead []*AnimalInstance
	for _, animal := range state.Animals {
		if animal.Hunger >= 2 {
			dead = append(dead, animal)
		}
	}
	if len(dead) == 0 {
		state.logf("No deaths from starvation.")
		return
	}
	for _, animal := range dead {
		card := m.cat.MustGet(animal.CardID)
		state.Biome.CC += card.Level
		state.logf("%s starves to death.", card.Name)
		state.removeAnimal(animal.InstanceID)
	}
}

// resolveConversion turns the accumulated carrion into a one-shot food
// bonus. The bonus lands at the next turn start, whichever player that is.
func (m *Match) resolveConversion() {
	biome := &m.State.Biome
	biome.CNTemp = int(0.40 * float64(biome.CC))
	m.State.logf("Conversion: CN bonus of %d carried into the next turn.", biome.CNTemp)
	biome.CC = 0
}
