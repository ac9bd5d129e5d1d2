package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviary-games/wingspan-engine/internal/state"
)

func testRegistry() *state.Registry {
	reg := state.NewRegistry()
	reg.Cards["a"] = &state.CardDefinition{ID: "a", Habitats: []state.Habitat{state.HabitatForest}, EggCapacity: 2}
	reg.CardOrder = []string{"a"}
	return reg
}

func TestBuildRedactsOpponentHandAndBonusCards(t *testing.T) {
	reg := testRegistry()
	g := state.NewGame("m1", 1, reg, []string{"p1", "p2"})
	g.Player("p1").Hand = []string{"a"}
	g.Player("p2").Hand = []string{"a"}
	g.Player("p2").BonusCards = []string{"b1"}

	v := Build(g, "p1")

	require.Len(t, v.Opponents, 1)
	assert.Equal(t, "p2", v.Opponents[0].ID)
	assert.Equal(t, 1, v.Opponents[0].HandSize, "opponent hand size is visible")
	assert.Equal(t, 1, v.Opponents[0].BonusCardCount)
	assert.Equal(t, []string{"a"}, v.SelfHand, "only the requesting player's own hand is exposed")
}

func TestBuildCopiesFoodSoCallerCannotMutateGameState(t *testing.T) {
	reg := testRegistry()
	g := state.NewGame("m1", 1, reg, []string{"p1"})
	g.Player("p1").Food[state.FoodSeed] = 3

	v := Build(g, "p1")
	v.Self.Food[state.FoodSeed] = 99

	assert.Equal(t, 3, g.Player("p1").Food[state.FoodSeed], "view's food map must be a copy")
}
