package state

// BonusScoringMode distinguishes a flat per-bird multiplier from a tiered
// bracket lookup.
type BonusScoringMode string

const (
	BonusScoringPerBird BonusScoringMode = "per-bird"
	BonusScoringTiered  BonusScoringMode = "tiered"
)

// BonusTier is one [Min,Max] bracket of a tiered bonus card.
type BonusTier struct {
	Min    int `json:"min"`
	Max    int `json:"max"`
	Points int `json:"points"`
}

// BonusQualifier determines which birds count toward a bonus card's score.
// Exactly one of BirdList or Predicate is set.
type BonusQualifier struct {
	BirdList  []string `json:"birdList,omitempty"`
	Predicate string   `json:"predicate,omitempty"`
}

// Named runtime predicates a bonus card's qualifier may reference.
const (
	PredicateEggsAtLeast4    = "eggs-at-least-4"
	PredicateEggsAtLeast1    = "eggs-at-least-1"
	PredicateHandSize        = "hand-size"
	PredicateSmallestHabitat = "smallest-habitat"
)

// BonusCardDefinition is an immutable bonus card as loaded from the static
// dataset.
type BonusCardDefinition struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	ScoringMode BonusScoringMode `json:"scoringMode"`
	PerBirdPoints int          `json:"perBirdPoints,omitempty"`
	Tiers       []BonusTier    `json:"tiers,omitempty"`
	Qualifier   BonusQualifier `json:"qualifier"`
}

// Score computes the card's point value given the count of qualifying birds.
func (b *BonusCardDefinition) Score(qualifyingCount int) int {
	switch b.ScoringMode {
	case BonusScoringPerBird:
		return qualifyingCount * b.PerBirdPoints
	case BonusScoringTiered:
		for _, t := range b.Tiers {
			if qualifyingCount >= t.Min && qualifyingCount <= t.Max {
				return t.Points
			}
		}
		return 0
	default:
		return 0
	}
}
