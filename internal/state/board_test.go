package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowLeftmostEmpty(t *testing.T) {
	row := &Row{}
	assert.Equal(t, 0, row.LeftmostEmpty())

	row.Slots[0] = newBirdInstance("p1#1", "blue-jay")
	assert.Equal(t, 1, row.LeftmostEmpty())

	for i := range row.Slots {
		row.Slots[i] = newBirdInstance("x", "x")
	}
	assert.Equal(t, -1, row.LeftmostEmpty())
}

func TestBoardAllBirdsOrder(t *testing.T) {
	b := NewBoard()
	b.Row(HabitatGrassland).Slots[0] = newBirdInstance("g1", "mallard")
	b.Row(HabitatForest).Slots[0] = newBirdInstance("f1", "blue-jay")
	b.Row(HabitatWetland).Slots[0] = newBirdInstance("w1", "osprey")

	birds := b.AllBirds()
	require.Len(t, birds, 3)
	assert.Equal(t, "f1", birds[0].ID)
	assert.Equal(t, "g1", birds[1].ID)
	assert.Equal(t, "w1", birds[2].ID)
}

func TestBoardAllBirdsReactiveOrder(t *testing.T) {
	b := NewBoard()
	b.Row(HabitatForest).Slots[0] = newBirdInstance("f0", "blue-jay")
	b.Row(HabitatForest).Slots[2] = newBirdInstance("f2", "blue-jay")
	b.Row(HabitatGrassland).Slots[1] = newBirdInstance("g1", "mallard")
	b.Row(HabitatWetland).Slots[4] = newBirdInstance("w4", "osprey")

	birds := b.AllBirdsReactiveOrder()
	require.Len(t, birds, 4)
	assert.Equal(t, "f2", birds[0].ID)
	assert.Equal(t, "f0", birds[1].ID)
	assert.Equal(t, "g1", birds[2].ID)
	assert.Equal(t, "w4", birds[3].ID)
}

func TestBoardFindInstance(t *testing.T) {
	b := NewBoard()
	inst := newBirdInstance("f1", "blue-jay")
	b.Row(HabitatForest).Slots[2] = inst

	found, habitat, col, ok := b.FindInstance("f1")
	require.True(t, ok)
	assert.Equal(t, inst, found)
	assert.Equal(t, HabitatForest, habitat)
	assert.Equal(t, 2, col)

	_, _, _, ok = b.FindInstance("missing")
	assert.False(t, ok)
}

func TestBoardSmallestHabitatCount(t *testing.T) {
	b := NewBoard()
	b.Row(HabitatForest).Slots[0] = newBirdInstance("f1", "x")
	b.Row(HabitatForest).Slots[1] = newBirdInstance("f2", "x")
	b.Row(HabitatGrassland).Slots[0] = newBirdInstance("g1", "x")
	assert.Equal(t, 0, b.SmallestHabitatCount()) // wetland is empty
}
