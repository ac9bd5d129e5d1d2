package state

import "math/rand"

// MaxBirdfeederDice is the fixed feeder size (spec §3 invariant: 0..5).
const MaxBirdfeederDice = 5

// DieFace is a single birdfeeder die face. Faces other than the dual ones
// show exactly one food type; dual faces show two and the selecting choice
// must resolve which one it pays.
type DieFace string

const (
	DieInvertebrate       DieFace = "invertebrate"
	DieSeed               DieFace = "seed"
	DieFish               DieFace = "fish"
	DieFruit              DieFace = "fruit"
	DieRodent             DieFace = "rodent"
	DieSeedOrInvertebrate DieFace = "seed-or-invertebrate"
	DieFishOrRodent       DieFace = "fish-or-rodent"
)

// allDieFaces lists the six faces on a standard Wingspan food die.
var allDieFaces = [6]DieFace{DieInvertebrate, DieSeed, DieFish, DieFruit, DieRodent, DieSeedOrInvertebrate}

// IsDual reports whether this face requires a resolution choice.
func (d DieFace) IsDual() bool {
	return d == DieSeedOrInvertebrate || d == DieFishOrRodent
}

// Options returns the food type(s) this face can resolve to.
func (d DieFace) Options() []FoodType {
	switch d {
	case DieSeedOrInvertebrate:
		return []FoodType{FoodSeed, FoodInvertebrate}
	case DieFishOrRodent:
		return []FoodType{FoodFish, FoodRodent}
	default:
		return []FoodType{FoodType(d)}
	}
}

// Birdfeeder is the shared dice pool, cardinality always in [0, 5].
type Birdfeeder struct {
	Dice []DieFace
}

// NewBirdfeeder builds an empty feeder.
func NewBirdfeeder() *Birdfeeder {
	return &Birdfeeder{}
}

// Homogeneous reports whether every die currently in the feeder shows the
// same face — the precondition for offering a reroll.
func (f *Birdfeeder) Homogeneous() bool {
	if len(f.Dice) == 0 {
		return false
	}
	first := f.Dice[0]
	for _, d := range f.Dice[1:] {
		if d != first {
			return false
		}
	}
	return true
}

// RandomDieFace rolls one of the six standard faces using rng.
func RandomDieFace(rng *rand.Rand) DieFace {
	return allDieFaces[rng.Intn(len(allDieFaces))]
}

// RemoveAt removes the die at index i, preserving the remaining order.
func (f *Birdfeeder) RemoveAt(i int) (DieFace, bool) {
	if i < 0 || i >= len(f.Dice) {
		return "", false
	}
	d := f.Dice[i]
	f.Dice = append(f.Dice[:i], f.Dice[i+1:]...)
	return d, true
}
