package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviary-games/wingspan-engine/internal/handler"
	"github.com/aviary-games/wingspan-engine/internal/state"
	"github.com/aviary-games/wingspan-engine/internal/view"
)

func TestRandomAgentIsDeterministicForAGivenSeed(t *testing.T) {
	v := view.View{Self: view.PlayerSummary{Board: state.NewBoard()}}
	p := handler.TurnActionPrompt{PlayerID: "p1"}

	a1 := NewRandomAgent("p1", 7)
	a2 := NewRandomAgent("p1", 7)

	for i := 0; i < 10; i++ {
		c1, err1 := a1.Decide(context.Background(), v, p)
		c2, err2 := a2.Decide(context.Background(), v, p)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, c1, c2)
	}
}

func TestRandomAgentPlayBirdChoosesOpenHabitat(t *testing.T) {
	a := NewRandomAgent("p1", 3)
	board := state.NewBoard()
	row := board.Row(state.HabitatForest)
	for i := range row.Slots {
		row.Slots[i] = &state.BirdInstance{ID: "x", CachedFood: map[state.FoodType]int{}}
	}
	v := view.View{Self: view.PlayerSummary{Board: board}}
	p := handler.PlayBirdPrompt{PlayableCardIDs: []string{"card-a"}}

	choice, err := a.Decide(context.Background(), v, p)
	require.NoError(t, err)
	assert.Equal(t, "card-a", choice.CardID)
	assert.NotEqual(t, state.HabitatForest, choice.Habitat, "forest is full, so only grassland/wetland are eligible")
}

func TestRandomAgentEggPlacementCapsAtEligibleCount(t *testing.T) {
	a := NewRandomAgent("p1", 9)
	v := view.View{}
	p := handler.EggPlacementPrompt{EligibleInstances: []string{"i1", "i2"}, EggsToPlace: 5}
	choice, err := a.Decide(context.Background(), v, p)
	require.NoError(t, err)
	assert.Len(t, choice.InstanceIDs, 2)
}
