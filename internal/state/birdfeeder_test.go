package state

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBirdfeederHomogeneous(t *testing.T) {
	f := NewBirdfeeder()
	assert.False(t, f.Homogeneous(), "empty feeder is never homogeneous")

	f.Dice = []DieFace{DieSeed, DieSeed, DieSeed}
	assert.True(t, f.Homogeneous())

	f.Dice = append(f.Dice, DieFish)
	assert.False(t, f.Homogeneous())
}

func TestBirdfeederRemoveAt(t *testing.T) {
	f := &Birdfeeder{Dice: []DieFace{DieSeed, DieFish, DieFruit}}
	d, ok := f.RemoveAt(1)
	assert.True(t, ok)
	assert.Equal(t, DieFish, d)
	assert.Equal(t, []DieFace{DieSeed, DieFruit}, f.Dice)

	_, ok = f.RemoveAt(99)
	assert.False(t, ok)
}

func TestDieFaceOptions(t *testing.T) {
	assert.True(t, DieSeedOrInvertebrate.IsDual())
	assert.ElementsMatch(t, []FoodType{FoodSeed, FoodInvertebrate}, DieSeedOrInvertebrate.Options())

	assert.False(t, DieFish.IsDual())
	assert.Equal(t, []FoodType{FoodFish}, DieFish.Options())
}

func TestRandomDieFaceIsDeterministicForSeed(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		assert.Equal(t, RandomDieFace(a), RandomDieFace(b))
	}
}
