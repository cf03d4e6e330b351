package game

// checkControl reports whether the player owns at least one live animal at
// every level from 1 through Lmax. It is a pure read over current
// ownership; the two-turn confirmation lives in the turn controller.
func (m *Match) checkControl(playerIndex int) bool {
	for level := 1; level <= m.State.Biome.Lmax; level++ {
		if !m.ownsLevel(playerIndex, level) {
			return false
		}
	}
	return true
}

func (m *Match) ownsLevel(playerIndex, level int) bool {
	for _, animal := range m.State.Animals {
		if animal.Owner == playerIndex && m.cat.MustGet(animal.CardID).Level == level {
			return true
		}
	}
	return false
}
