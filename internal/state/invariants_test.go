package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInvariantsPassesOnFreshGame(t *testing.T) {
	reg := testRegistry()
	g := NewGame("m1", 1, reg, []string{"p1", "p2"})
	assert.NoError(t, CheckInvariants(g))
}

func TestCheckInvariantsCatchesDuplicateCard(t *testing.T) {
	reg := testRegistry()
	g := NewGame("m1", 1, reg, []string{"p1", "p2"})

	dup := g.Supply.Deck[0]
	g.Players[0].Hand = append(g.Players[0].Hand, dup)

	err := CheckInvariants(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), dup)
}

func TestCheckInvariantsCatchesBoardGap(t *testing.T) {
	reg := testRegistry()
	g := NewGame("m1", 1, reg, []string{"p1"})

	row := g.Players[0].Board.Row(HabitatForest)
	row.Slots[0] = nil
	row.Slots[1] = newBirdInstance("p1#1", g.Supply.Deck[0])
	g.Supply.Deck = g.Supply.Deck[1:]

	err := CheckInvariants(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap")
}

func TestCheckInvariantsCatchesNegativeFood(t *testing.T) {
	reg := testRegistry()
	g := NewGame("m1", 1, reg, []string{"p1"})
	g.Players[0].Food[FoodSeed] = -1

	err := CheckInvariants(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}
