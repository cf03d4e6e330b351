package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuntSucceedsOnWeightBoostedAttack(t *testing.T) {
	// Predator attack 50, weight 800kg: score 50 + trunc(0.20*80) = 66.
	// Prey defense 40, weight 300kg: score 40 + trunc(0.25*30) = 47.
	m := newTestMatch(t)
	predator := addAnimal(m, "c5", 0, 1)
	prey := addAnimal(m, "preyb", 1, 0)

	fed := m.resolveHunting(map[int]int{predator.InstanceID: prey.InstanceID})

	assert.True(t, fed[predator.InstanceID])
	assert.Nil(t, m.State.animalByID(prey.InstanceID), "prey removed from the table")
	assert.Equal(t, 5, m.State.Biome.CC, "carrion grows by the prey's level")
	assert.Equal(t, 0, predator.Hunger, "equal level resets hunger fully")
}

func TestHuntOnLowerLevelPreyOnlyEasesHunger(t *testing.T) {
	m := newTestMatch(t)
	predator := addAnimal(m, "c5", 0, 2)
	prey := addAnimal(m, "h3a", 1, 0) // level 3 vs predator level 5

	fed := m.resolveHunting(map[int]int{predator.InstanceID: prey.InstanceID})

	assert.True(t, fed[predator.InstanceID])
	assert.Equal(t, 1, predator.Hunger, "level mismatch only decrements hunger")
	assert.Equal(t, 3, m.State.Biome.CC)
}

func TestPreyEscapesWithSuperiorMobility(t *testing.T) {
	// Gazelle: instinct 90 > wolf 60, mobility 95 > wolf 60.
	m := newTestMatch(t)
	predator := addAnimal(m, "c5", 0, 1)
	prey := addAnimal(m, "swift", 1, 0)

	fed := m.resolveHunting(map[int]int{predator.InstanceID: prey.InstanceID})

	assert.False(t, fed[predator.InstanceID])
	assert.NotNil(t, m.State.animalByID(prey.InstanceID))
	assert.Equal(t, 0, m.State.Biome.CC)
	assert.Equal(t, 1, predator.Hunger)
}

func TestInstinctAdvantageOverridesMobility(t *testing.T) {
	// Tiger instinct 85 vs gazelle 90 would force the mobility check, but
	// the jackal's instinct 100 beats it outright despite mobility 40 < 95.
	m := newTestMatch(t)
	predator := addAnimal(m, "cweak", 0, 1)
	prey := addAnimal(m, "swift", 1, 0)

	fed := m.resolveHunting(map[int]int{predator.InstanceID: prey.InstanceID})

	// Combat was direct, but the jackal is too weak: 5+0 < 15+1.
	assert.False(t, fed[predator.InstanceID])
	assert.NotNil(t, m.State.animalByID(prey.InstanceID), "prey resists, no state change")
}

func TestHuntSkipsMissingAndInvalidChoices(t *testing.T) {
	m := newTestMatch(t)
	noTarget := addAnimal(m, "c5", 0, 1)
	badTarget := addAnimal(m, "c6", 0, 1)
	wrongType := addAnimal(m, "c6", 1, 1)
	other := addAnimal(m, "cweak", 1, 1) // carnivores are never viable prey

	fed := m.resolveHunting(map[int]int{
		badTarget.InstanceID: 9999,
		wrongType.InstanceID: other.InstanceID,
	})

	assert.Empty(t, fed)
	assert.Equal(t, 1, noTarget.Hunger, "skipped predators are untouched")
	assert.Len(t, m.State.Animals, 4)
}

func TestHuntRejectsPreyBelowLevelThreshold(t *testing.T) {
	m := newTestMatch(t)
	predator := addAnimal(m, "c6", 0, 1) // threshold ceil(6/2) = 3
	prey := addAnimal(m, "h2", 1, 0)

	fed := m.resolveHunting(map[int]int{predator.InstanceID: prey.InstanceID})

	assert.Empty(t, fed)
	assert.NotNil(t, m.State.animalByID(prey.InstanceID))
}

func TestFreshPredatorsNeverHunt(t *testing.T) {
	m := newTestMatch(t)
	predator := addAnimal(m, "c5", 0, 0)
	prey := addAnimal(m, "preyb", 1, 0)

	fed := m.resolveHunting(map[int]int{predator.InstanceID: prey.InstanceID})

	assert.Empty(t, fed)
	assert.NotNil(t, m.State.animalByID(prey.InstanceID), "hunger-0 predators sit the phase out")
}

func TestSameOwnerPredationIsLegal(t *testing.T) {
	m := newTestMatch(t)
	predator := addAnimal(m, "c5", 0, 1)
	prey := addAnimal(m, "preyb", 0, 0) // same owner

	fed := m.resolveHunting(map[int]int{predator.InstanceID: prey.InstanceID})

	require.True(t, fed[predator.InstanceID])
	assert.Nil(t, m.State.animalByID(prey.InstanceID))
}

func TestOmnivoresHuntToo(t *testing.T) {
	m := newTestMatch(t)
	predator := addAnimal(m, "o6", 0, 1) // bear: attack 60, weight 350
	prey := addAnimal(m, "h3a", 1, 0)    // elk: defense 22, weight 300

	fed := m.resolveHunting(map[int]int{predator.InstanceID: prey.InstanceID})

	assert.True(t, fed[predator.InstanceID])
	assert.Nil(t, m.State.animalByID(prey.InstanceID))
}
