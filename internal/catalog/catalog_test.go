package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCards() []Card {
	return []Card{
		{ID: "fern", Name: "Fern", Kind: KindPlant, CNPerTurn: 2},
		{ID: "mouse", Name: "Mouse", Kind: KindAnimal, Type: TypeHerbivore, Level: 1, WeightKg: 0.5},
		{ID: "wolf", Name: "Wolf", Kind: KindAnimal, Type: TypeCarnivore, Level: 5, Attack: 50, WeightKg: 45},
		{ID: "bear", Name: "Bear", Kind: KindAnimal, Type: TypeOmnivore, Level: 6, Attack: 60, WeightKg: 350},
	}
}

func TestNewCatalog(t *testing.T) {
	cat, err := New(validCards())
	require.NoError(t, err)

	assert.Equal(t, 4, cat.Len())
	assert.Equal(t, 6, cat.MaxLevel())
	assert.Equal(t, []string{"fern", "mouse", "wolf", "bear"}, cat.IDs())

	wolf, ok := cat.Get("wolf")
	require.True(t, ok)
	assert.True(t, wolf.IsPredator())
	assert.False(t, wolf.IsGrazer())

	bear := cat.MustGet("bear")
	assert.True(t, bear.IsPredator())
	assert.True(t, bear.IsGrazer())

	_, ok = cat.Get("dodo")
	assert.False(t, ok)
}

func TestMustGetPanicsOnUnknownID(t *testing.T) {
	cat, err := New(validCards())
	require.NoError(t, err)
	assert.Panics(t, func() { cat.MustGet("dodo") })
}

func TestNewCatalogValidation(t *testing.T) {
	cases := []struct {
		name  string
		cards []Card
	}{
		{"duplicate id", append(validCards(), Card{ID: "fern", Name: "Fern 2", Kind: KindPlant, CNPerTurn: 1})},
		{"empty id", []Card{{Name: "X", Kind: KindPlant, CNPerTurn: 1}}},
		{"missing name", []Card{{ID: "x", Kind: KindPlant, CNPerTurn: 1}}},
		{"unknown kind", []Card{{ID: "x", Name: "X", Kind: "mineral"}}},
		{"unknown animal type", []Card{{ID: "x", Name: "X", Kind: KindAnimal, Type: "Fungivore", Level: 1, WeightKg: 1}}},
		{"zero level", []Card{{ID: "x", Name: "X", Kind: KindAnimal, Type: TypeHerbivore, Level: 0, WeightKg: 1}}},
		{"zero weight", []Card{{ID: "x", Name: "X", Kind: KindAnimal, Type: TypeHerbivore, Level: 1}}},
		{"plant without food", []Card{{ID: "x", Name: "X", Kind: KindPlant}}},
		{"no animals at all", []Card{{ID: "x", Name: "X", Kind: KindPlant, CNPerTurn: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cards)
			assert.Error(t, err)
		})
	}
}

const sampleCSV = `id,name,kind,type,level,attack,defense,instinct,mobility,weight_kg,cn_per_turn
fern,Fern,plant,,0,0,0,0,0,0,2
mouse,Mouse,animal,Herbivore,1,2,8,40,70,0.5,0
wolf,Wolf,animal,Carnivore,5,50,26,75,80,45,0
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	cat, err := Load(writeFile(t, "cards.csv", sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, 5, cat.MaxLevel())

	mouse := cat.MustGet("mouse")
	assert.Equal(t, TypeHerbivore, mouse.Type)
	assert.Equal(t, 0.5, mouse.WeightKg)
	assert.Equal(t, 70, mouse.Mobility)

	fern := cat.MustGet("fern")
	assert.Equal(t, KindPlant, fern.Kind)
	assert.Equal(t, 2, fern.CNPerTurn)
}

func TestLoadCSVErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	header := "id,name,kind,type,level,attack,defense,instinct,mobility,weight_kg,cn_per_turn\n"
	_, err = Load(writeFile(t, "empty.csv", header))
	assert.Error(t, err)

	bad := header + "x,X,mineral,,0,0,0,0,0,0,0\n"
	_, err = Load(writeFile(t, "bad.csv", bad))
	assert.Error(t, err)
}

func TestLoadDecks(t *testing.T) {
	cat, err := Load(writeFile(t, "cards.csv", sampleCSV))
	require.NoError(t, err)

	decksYAML := "player1: [fern, mouse, wolf]\nplayer2: [mouse, mouse, fern]\n"
	decks, err := LoadDecks(writeFile(t, "decks.yaml", decksYAML), cat)
	require.NoError(t, err)
	assert.Equal(t, []string{"fern", "mouse", "wolf"}, decks.Player1)
	assert.Len(t, decks.Player2, 3)
}

func TestLoadDecksErrors(t *testing.T) {
	cat, err := Load(writeFile(t, "cards.csv", sampleCSV))
	require.NoError(t, err)

	_, err = LoadDecks(writeFile(t, "decks.yaml", "player1: [dodo]\nplayer2: [mouse]\n"), cat)
	assert.Error(t, err, "unknown card id")

	_, err = LoadDecks(writeFile(t, "decks.yaml", "player1: [mouse]\n"), cat)
	assert.Error(t, err, "missing second deck")

	_, err = LoadDecks(writeFile(t, "decks.yaml", "not yaml: ["), cat)
	assert.Error(t, err)
}
