package game

// GameView is the complete snapshot handed to the presentation layer.
// Building it never mutates state.
type GameView struct {
	Biome          BiomeView
	Players        []PlayerView
	ActiveIndex    int
	ActionsUsed    int
	ActionsPerTurn int
	TurnNumber     int
	Phase          string
	Winner         string
	Plants         []PlantView
	AnimalsByLevel map[int][]AnimalView
	Log            []string
}

// BiomeView mirrors the biome's display fields.
type BiomeView struct {
	Name   string
	CN     int
	CNBase int
	CNTemp int
	CC     int
	Lmax   int
}

// PlayerView exposes one player's public state plus their hand.
type PlayerView struct {
	Name           string
	Hand           []string
	DeckCount      int
	PendingControl bool
}

// AnimalView is one live animal instance with its card attributes resolved.
type AnimalView struct {
	InstanceID int
	CardID     string
	Name       string
	Type       string
	Level      int
	Owner      int
	OwnerName  string
	Hunger     int
	WeightKg   float64
}

// PlantView is one live plant instance with its card attributes resolved.
type PlantView struct {
	InstanceID int
	CardID     string
	Name       string
	CNPerTurn  int
	Owner      int
	OwnerName  string
}

// View builds the full snapshot of the match.
func (m *Match) View() *GameView {
	state := m.State
	view := &GameView{
		Biome: BiomeView{
			Name:   state.Biome.Name,
			CN:     state.Biome.CN,
			CNBase: state.Biome.CNBase,
			CNTemp: state.Biome.CNTemp,
			CC:     state.Biome.CC,
			Lmax:   state.Biome.Lmax,
		},
		ActiveIndex:    state.ActivePlayerIndex,
		ActionsUsed:    state.ActionsUsed,
		ActionsPerTurn: m.params.ActionsPerTurn,
		TurnNumber:     state.TurnNumber,
		Phase:          m.phase.Current().String(),
		Winner:         state.Winner,
		AnimalsByLevel: m.AnimalsByLevel(),
		Log:            append([]string(nil), state.Log...),
	}
	for _, player := range state.Players {
		view.Players = append(view.Players, PlayerView{
			Name:           player.Name,
			Hand:           append([]string(nil), player.Hand...),
			DeckCount:      len(player.Deck),
			PendingControl: player.PendingControl,
		})
	}
	for _, plant := range state.Plants {
		card := m.cat.MustGet(plant.CardID)
		view.Plants = append(view.Plants, PlantView{
			InstanceID: plant.InstanceID,
			CardID:     plant.CardID,
			Name:       card.Name,
			CNPerTurn:  card.CNPerTurn,
			Owner:      plant.Owner,
			OwnerName:  state.Players[plant.Owner].Name,
		})
	}
	return view
}

// AnimalsByLevel groups the live animals by level for display. Every level
// from 1 through Lmax is present, empty levels map to an empty list.
func (m *Match) AnimalsByLevel() map[int][]AnimalView {
	state := m.State
	grouped := make(map[int][]AnimalView, state.Biome.Lmax)
	for level := 1; level <= state.Biome.Lmax; level++ {
		grouped[level] = []AnimalView{}
	}
	for _, animal := range state.Animals {
		card := m.cat.MustGet(animal.CardID)
		grouped[card.Level] = append(grouped[card.Level], AnimalView{
			InstanceID: animal.InstanceID,
			CardID:     animal.CardID,
			Name:       card.Name,
			Type:       string(card.Type),
			Level:      card.Level,
			Owner:      animal.Owner,
			OwnerName:  state.Players[animal.Owner].Name,
			Hunger:     animal.Hunger,
			WeightKg:   card.WeightKg,
		})
	}
	return grouped
}

// HungryPredators lists the live predators that would take part in the next
// hunting phase, so the presentation layer knows which choices to collect.
func (m *Match) HungryPredators() []AnimalView {
	var out []AnimalView
	for _, animal := range m.State.Animals {
		card := m.cat.MustGet(animal.CardID)
		if card.IsPredator() && animal.Hunger >= 1 {
			out = append(out, AnimalView{
				InstanceID: animal.InstanceID,
				CardID:     animal.CardID,
				Name:       card.Name,
				Type:       string(card.Type),
				Level:      card.Level,
				Owner:      animal.Owner,
				OwnerName:  m.State.Players[animal.Owner].Name,
				Hunger:     animal.Hunger,
				WeightKg:   card.WeightKg,
			})
		}
	}
	return out
}

// PreyOptions lists the viable prey for a predator level, for choice
// collection in the presentation layer.
func (m *Match) PreyOptions(predatorLevel int) []AnimalView {
	var out []AnimalView
	for _, prey := range m.viablePrey(predatorLevel) {
		card := m.cat.MustGet(prey.CardID)
		out = append(out, AnimalView{
			InstanceID: prey.InstanceID,
			CardID:     prey.CardID,
			Name:       card.Name,
			Type:       string(card.Type),
			Level:      card.Level,
			Owner:      prey.Owner,
			OwnerName:  m.State.Players[prey.Owner].Name,
			Hunger:     prey.Hunger,
			WeightKg:   card.WeightKg,
		})
	}
	return out
}
