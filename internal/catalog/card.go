package catalog

import "fmt"

// CardKind distinguishes the two playable card families.
type CardKind string

const (
	KindPlant  CardKind = "plant"
	KindAnimal CardKind = "animal"
)

// AnimalType classifies how an animal feeds.
type AnimalType string

const (
	TypeHerbivore AnimalType = "Herbivore"
	TypeCarnivore AnimalType = "Carnivore"
	TypeOmnivore  AnimalType = "Omnivore"
)

// Card is a single immutable catalog entry. Plant cards only use CNPerTurn;
// animal cards only use the combat fields.
type Card struct {
	ID        string
	Name      string
	Kind      CardKind
	CNPerTurn int
	Type      AnimalType
	Level     int
	Attack    int
	Defense   int
	Instinct  int
	Mobility  int
	WeightKg  float64
}

// IsPredator reports whether the card can take part in hunting.
func (c *Card) IsPredator() bool {
	return c.Kind == KindAnimal && (c.Type == TypeCarnivore || c.Type == TypeOmnivore)
}

// IsGrazer reports whether the card feeds from the shared food pool.
func (c *Card) IsGrazer() bool {
	return c.Kind == KindAnimal && (c.Type == TypeHerbivore || c.Type == TypeOmnivore)
}

// Catalog is the immutable card index. It is built once by Load and shared
// by reference; nothing mutates it after construction.
type Catalog struct {
	cards    map[string]*Card
	order    []string
	maxLevel int
}

// Get returns the card for id. The second return is false when the id is
// unknown; callers holding ids that came from the catalog treat that as a
// data-integrity fault.
func (c *Catalog) Get(id string) (*Card, bool) {
	card, ok := c.cards[id]
	return card, ok
}

// MustGet returns the card for id or panics. Only used on ids the engine
// itself issued; an unknown id here means the catalog was corrupted.
func (c *Catalog) MustGet(id string) *Card {
	card, ok := c.cards[id]
	if !ok {
		panic(fmt.Sprintf("catalog: unknown card id %q", id))
	}
	return card
}

// IDs returns the card ids in catalog file order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// MaxLevel returns the highest animal level present in the catalog.
func (c *Catalog) MaxLevel() int {
	return c.maxLevel
}

// New builds a catalog from validated cards. Load is the usual constructor;
// New exists so tests can assemble small fixed catalogs directly.
func New(cards []Card) (*Catalog, error) {
	cat := &Catalog{cards: make(map[string]*Card, len(cards))}
	for i := range cards {
		card := cards[i]
		if err := validateCard(&card); err != nil {
			return nil, err
		}
		if _, dup := cat.cards[card.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate card id %q", card.ID)
		}
		cat.cards[card.ID] = &card
		cat.order = append(cat.order, card.ID)
		if card.Kind == KindAnimal && card.Level > cat.maxLevel {
			cat.maxLevel = card.Level
		}
	}
	if cat.maxLevel == 0 {
		return nil, fmt.Errorf("catalog: no animal cards present")
	}
	return cat, nil
}

func validateCard(card *Card) error {
	if card.ID == "" {
		return fmt.Errorf("catalog: card with empty id")
	}
	if card.Name == "" {
		return fmt.Errorf("catalog: card %q has no name", card.ID)
	}
	switch card.Kind {
	case KindPlant:
		if card.CNPerTurn <= 0 {
			return fmt.Errorf("catalog: plant %q must generate food (cn_per_turn %d)", card.ID, card.CNPerTurn)
		}
	case KindAnimal:
		switch card.Type {
		case TypeHerbivore, TypeCarnivore, TypeOmnivore:
		default:
			return fmt.Errorf("catalog: animal %q has unknown type %q", card.ID, card.Type)
		}
		if card.Level < 1 {
			return fmt.Errorf("catalog: animal %q has invalid level %d", card.ID, card.Level)
		}
		if card.WeightKg <= 0 {
			return fmt.Errorf("catalog: animal %q has invalid weight %.1f", card.ID, card.WeightKg)
		}
	default:
		return fmt.Errorf("catalog: card %q has unknown kind %q", card.ID, card.Kind)
	}
	return nil
}
