package state

// BoardColumns is the fixed number of slots per habitat row.
const BoardColumns = 5

// BirdInstance is a runtime bird placed on a board. Created by a play-bird
// effect and retained for the rest of the match — the base game has no
// discard path for placed birds.
type BirdInstance struct {
	ID          string
	CardID      string
	Eggs        int
	CachedFood  map[FoodType]int
	TuckedCards []string // card ids tucked face-down, each worth 1 VP
}

func newBirdInstance(id, cardID string) *BirdInstance {
	return &BirdInstance{
		ID:         id,
		CardID:     cardID,
		CachedFood: make(map[FoodType]int),
	}
}

// TotalCachedFood sums every cached food token on this bird (each worth 1 VP).
func (b *BirdInstance) TotalCachedFood() int {
	total := 0
	for _, n := range b.CachedFood {
		total += n
	}
	return total
}

// Row is one habitat's five ordered slots, leftmost to rightmost. The
// non-empty prefix is always contiguous (an engine invariant).
type Row struct {
	Slots [BoardColumns]*BirdInstance
}

// LeftmostEmpty returns the index of the first empty slot, or -1 if full.
func (r *Row) LeftmostEmpty() int {
	for i, s := range r.Slots {
		if s == nil {
			return i
		}
	}
	return -1
}

// Occupied counts filled slots in this row.
func (r *Row) Occupied() int {
	n := 0
	for _, s := range r.Slots {
		if s != nil {
			n++
		}
	}
	return n
}

// Board is a player's three habitat rows.
type Board struct {
	Rows map[Habitat]*Row
}

// NewBoard builds an empty three-row board.
func NewBoard() *Board {
	b := &Board{Rows: make(map[Habitat]*Row, 3)}
	for _, h := range Habitats {
		b.Rows[h] = &Row{}
	}
	return b
}

// Row returns the row for a habitat.
func (b *Board) Row(h Habitat) *Row {
	return b.Rows[h]
}

// AllBirds returns every placed bird instance across all three rows, in
// forest->grassland->wetland, left-to-right order.
func (b *Board) AllBirds() []*BirdInstance {
	var out []*BirdInstance
	for _, h := range Habitats {
		for _, s := range b.Rows[h].Slots {
			if s != nil {
				out = append(out, s)
			}
		}
	}
	return out
}

// AllBirdsReactiveOrder returns every placed bird instance in the order the
// engine resolves reactive (pink) power dispatch: right-to-left within each
// habitat, habitats visited forest->grassland->wetland.
func (b *Board) AllBirdsReactiveOrder() []*BirdInstance {
	var out []*BirdInstance
	for _, h := range Habitats {
		slots := b.Rows[h].Slots
		for i := len(slots) - 1; i >= 0; i-- {
			if slots[i] != nil {
				out = append(out, slots[i])
			}
		}
	}
	return out
}

// FindInstance locates a bird instance by ID and reports which habitat and
// column it occupies.
func (b *Board) FindInstance(instanceID string) (inst *BirdInstance, habitat Habitat, column int, found bool) {
	for _, h := range Habitats {
		row := b.Rows[h]
		for i, s := range row.Slots {
			if s != nil && s.ID == instanceID {
				return s, h, i, true
			}
		}
	}
	return nil, "", -1, false
}

// SmallestHabitatCount returns the occupancy of whichever row has the
// fewest birds (ties broken by forest->grassland->wetland order), used by
// the "birds in smallest habitat" bonus card predicate.
func (b *Board) SmallestHabitatCount() int {
	min := BoardColumns + 1
	for _, h := range Habitats {
		if n := b.Rows[h].Occupied(); n < min {
			min = n
		}
	}
	return min
}
