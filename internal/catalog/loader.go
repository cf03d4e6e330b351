package catalog

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// cardRow mirrors one line of cards.csv. Plant-only and animal-only columns
// are left zero for the other kind.
type cardRow struct {
	ID        string  `csv:"id"`
	Name      string  `csv:"name"`
	Kind      string  `csv:"kind"`
	Type      string  `csv:"type"`
	Level     int     `csv:"level"`
	Attack    int     `csv:"attack"`
	Defense   int     `csv:"defense"`
	Instinct  int     `csv:"instinct"`
	Mobility  int     `csv:"mobility"`
	WeightKg  float64 `csv:"weight_kg"`
	CNPerTurn int     `csv:"cn_per_turn"`
}

// Load reads the card catalog from a CSV file. Any malformed row is a fatal
// load error; the engine never has to cope with a corrupt catalog at play
// time.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening card catalog: %w", err)
	}
	defer f.Close()

	var rows []cardRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parsing card catalog %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("card catalog %s is empty", path)
	}

	cards := make([]Card, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, Card{
			ID:        row.ID,
			Name:      row.Name,
			Kind:      CardKind(row.Kind),
			CNPerTurn: row.CNPerTurn,
			Type:      AnimalType(row.Type),
			Level:     row.Level,
			Attack:    row.Attack,
			Defense:   row.Defense,
			Instinct:  row.Instinct,
			Mobility:  row.Mobility,
			WeightKg:  row.WeightKg,
		})
	}
	cat, err := New(cards)
	if err != nil {
		return nil, fmt.Errorf("validating card catalog %s: %w", path, err)
	}
	return cat, nil
}

// DeckList holds the two fixed starter decks, each an ordered sequence of
// card ids consumed from the front.
type DeckList struct {
	Player1 []string `yaml:"player1"`
	Player2 []string `yaml:"player2"`
}

// LoadDecks reads decks.yaml and verifies every entry against the catalog.
func LoadDecks(path string, cat *Catalog) (*DeckList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening deck list: %w", err)
	}
	var decks DeckList
	if err := yaml.Unmarshal(data, &decks); err != nil {
		return nil, fmt.Errorf("parsing deck list %s: %w", path, err)
	}
	if len(decks.Player1) == 0 || len(decks.Player2) == 0 {
		return nil, fmt.Errorf("deck list %s must define both starter decks", path)
	}
	for _, deck := range [][]string{decks.Player1, decks.Player2} {
		for _, id := range deck {
			if _, ok := cat.Get(id); !ok {
				return nil, fmt.Errorf("deck list %s references unknown card %q", path, id)
			}
		}
	}
	return &decks, nil
}
