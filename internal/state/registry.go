package state

import "fmt"

// Registry is the immutable, shared card universe: bird and bonus card
// definitions keyed by ID, populated once at startup. It is a pure leaf —
// no runtime mutability, grounded in the teacher's CardRegistry.
type Registry struct {
	Cards      map[string]*CardDefinition
	BonusCards map[string]*BonusCardDefinition
	// CardOrder preserves the dataset's declared order, used to build a
	// deterministic shuffle-source deck before the seeded PRNG permutes it.
	CardOrder      []string
	BonusCardOrder []string
}

// NewRegistry builds an empty registry; used by the loader.
func NewRegistry() *Registry {
	return &Registry{
		Cards:      make(map[string]*CardDefinition),
		BonusCards: make(map[string]*BonusCardDefinition),
	}
}

// Card looks up a bird card definition by ID.
func (r *Registry) Card(id string) (*CardDefinition, error) {
	c, ok := r.Cards[id]
	if !ok {
		return nil, fmt.Errorf("unknown card id %q", id)
	}
	return c, nil
}

// BonusCard looks up a bonus card definition by ID.
func (r *Registry) BonusCard(id string) (*BonusCardDefinition, error) {
	c, ok := r.BonusCards[id]
	if !ok {
		return nil, fmt.Errorf("unknown bonus card id %q", id)
	}
	return c, nil
}

// CardUniverseSize is the fixed number of bird cards in this dataset; used
// by the deck+tray+hands+discard invariant.
func (r *Registry) CardUniverseSize() int {
	return len(r.CardOrder)
}
