package powers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviary-games/wingspan-engine/internal/effects"
	"github.com/aviary-games/wingspan-engine/internal/handler"
	"github.com/aviary-games/wingspan-engine/internal/state"
)

func dieIndexZeroPrompt(_ *handler.Context, p handler.Prompt) handler.Choice {
	return handler.Choice{DieIndex: 0, InstanceIDs: nil, CardIDs: nil}
}

// TestGainFoodRewardScalesWithForestColumn exercises spec.md §4.2's
// column-dependent base reward: with 2 birds already occupying the forest
// row, gain-food takes 3 dice instead of 1.
func TestGainFoodRewardScalesWithForestColumn(t *testing.T) {
	g := newTestPowerGame(t, "p1")
	p := g.Player("p1")
	p.PlaceBird(state.HabitatForest, "filler-a")
	p.PlaceBird(state.HabitatForest, "filler-a")
	g.Feeder.Dice = []state.DieFace{state.DieSeed, state.DieSeed, state.DieSeed, state.DieFish}

	applier := effects.NewApplier().WithGame(g).WithEventLog(effects.NewEventLog())
	proc := handler.NewProcessor(applier)
	ctx := handler.NewContext("p1", g)

	require.NoError(t, proc.Run(ctx, GainFood, dieIndexZeroPrompt, noopEvent, noopEffect))
	assert.Equal(t, 3, p.Food[state.FoodSeed])
}

// TestGainFoodBonusConversionDiscardsCardForExtraFood exercises spec.md
// §4.2's "discard 1 card for +1 food" bonus conversion.
func TestGainFoodBonusConversionDiscardsCardForExtraFood(t *testing.T) {
	g := newTestPowerGame(t, "p1")
	p := g.Player("p1")
	p.Hand = []string{"filler-a"}
	g.Feeder.Dice = []state.DieFace{state.DieSeed}

	applier := effects.NewApplier().WithGame(g).WithEventLog(effects.NewEventLog())
	proc := handler.NewProcessor(applier)
	ctx := handler.NewContext("p1", g)
	ctx.SetWantsBonus(true)

	require.NoError(t, proc.Run(ctx, GainFood, dieIndexZeroPrompt, noopEvent, noopEffect))
	assert.Equal(t, 2, p.Food[state.FoodSeed], "base grant plus the bonus conversion")
	assert.Empty(t, p.Hand, "the bonus discarded the only hand card")
	assert.True(t, ctx.BonusApplied())
}

// TestGainFoodBonusConversionNoopWithEmptyHand exercises the "bonus-applied
// remains false" boundary: the agent asked for the bonus, but had nothing
// to discard, so the conversion silently does not happen.
func TestGainFoodBonusConversionNoopWithEmptyHand(t *testing.T) {
	g := newTestPowerGame(t, "p1")
	p := g.Player("p1")
	g.Feeder.Dice = []state.DieFace{state.DieSeed}

	applier := effects.NewApplier().WithGame(g).WithEventLog(effects.NewEventLog())
	proc := handler.NewProcessor(applier)
	ctx := handler.NewContext("p1", g)
	ctx.SetWantsBonus(true)

	require.NoError(t, proc.Run(ctx, GainFood, dieIndexZeroPrompt, noopEvent, noopEffect))
	assert.Equal(t, 1, p.Food[state.FoodSeed], "only the base grant, no hand card to convert")
	assert.False(t, ctx.BonusApplied())
}

// TestDrawCardsBonusConversionDiscardsEggForExtraCard exercises spec.md
// §4.2's "discard 1 egg for +1 card" bonus conversion.
func TestDrawCardsBonusConversionDiscardsEggForExtraCard(t *testing.T) {
	g := newTestPowerGame(t, "p1")
	p := g.Player("p1")
	inst := p.PlaceBird(state.HabitatWetland, "filler-a")
	inst.Eggs = 1

	applier := effects.NewApplier().WithGame(g).WithEventLog(effects.NewEventLog())
	proc := handler.NewProcessor(applier)
	ctx := handler.NewContext("p1", g)
	ctx.SetWantsBonus(true)

	require.NoError(t, proc.Run(ctx, DrawCards, noopPrompt, noopEvent, noopEffect))

	assert.Equal(t, 0, inst.Eggs, "the bonus spent the egg")
	assert.Len(t, p.Hand, 3, "2 base cards plus 1 bonus card")
	assert.True(t, ctx.BonusApplied())
}
