package game

import "fmt"

// PlayerState tracks one player's cards and their pending win claim. The
// deck is consumed from the front; hand order only matters for display.
type PlayerState struct {
	Name           string
	Deck           []string
	Hand           []string
	PendingControl bool
}

// BiomeState is the shared food economy. CN is the pool available during
// the current turn, CC accumulates biomass from kills and starvation, and
// CNTemp carries the converted bonus into exactly one later turn.
type BiomeState struct {
	Name   string
	CNBase int
	Lmax   int
	CC     int
	CNTemp int
	CN     int
}

// AnimalInstance is a live animal on the table. Hunger starts at 0 and the
// animal dies the turn it reaches 2.
type AnimalInstance struct {
	InstanceID int
	CardID     string
	Owner      int
	Hunger     int
}

// PlantInstance is a live plant on the table. Plants never die or change
// state after being played.
type PlantInstance struct {
	InstanceID int
	CardID     string
	Owner      int
}

// GameState is the aggregate root for a single game. It exclusively owns
// the player states and all live instances; cards are referenced by id into
// the shared catalog.
type GameState struct {
	Players           [2]*PlayerState
	Biome             BiomeState
	Animals           []*AnimalInstance
	Plants            []*PlantInstance
	ActivePlayerIndex int
	ActionsUsed       int
	NextInstanceID    int
	TurnNumber        int
	Log               []string
	Winner            string
}

func (s *GameState) logf(format string, args ...interface{}) {
	s.Log = append(s.Log, fmt.Sprintf(format, args...))
}

func (s *GameState) activePlayer() *PlayerState {
	return s.Players[s.ActivePlayerIndex]
}

func (s *GameState) animalByID(instanceID int) *AnimalInstance {
	for _, animal := range s.Animals {
		if animal.InstanceID == instanceID {
			return animal
		}
	}
	return nil
}

func (s *GameState) removeAnimal(instanceID int) {
	kept := s.Animals[:0]
	for _, animal := range s.Animals {
		if animal.InstanceID != instanceID {
			kept = append(kept, animal)
		}
	}
	s.Animals = kept
}

// issueInstanceID hands out the next globally unique instance id. Ids are
// monotonically increasing and never reused, so they stay valid as stable
// handles across collection rebuilds.
func (s *GameState) issueInstanceID() int {
	id := s.NextInstanceID
	s.NextInstanceID++
	return id
}

func removeCard(hand []string, cardID string) []string {
	for i, id := range hand {
		if id == cardID {
			return append(hand[:i], hand[i+1:]...)
		}
	}
	return hand
}
