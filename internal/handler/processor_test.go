package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviary-games/wingspan-engine/internal/effects"
	"github.com/aviary-games/wingspan-engine/internal/state"
)

func testGame(t *testing.T) *state.Game {
	t.Helper()
	reg := state.NewRegistry()
	reg.Cards["x"] = &state.CardDefinition{ID: "x", Habitats: []state.Habitat{state.HabitatForest}, EggCapacity: 2}
	reg.CardOrder = append(reg.CardOrder, "x")
	return state.NewGame("m1", 1, reg, []string{"p1"})
}

func TestProcessorDrivesEffectPromptEventDeferral(t *testing.T) {
	g := testGame(t)
	applier := effects.NewApplier().WithGame(g).WithEventLog(effects.NewEventLog())
	pr := NewProcessor(applier)

	var sawPrompt Prompt
	var sawEvent Event

	fn := func(ctx *Context) error {
		ctx.YieldEffect(effects.GainFood{PlayerID: ctx.PlayerID(), FoodType: state.FoodSeed, Count: 1, FromSupply: true})
		choice := ctx.YieldPrompt(YesNoPrompt{PlayerID: ctx.PlayerID(), Question: "continue?"})
		if !choice.Accept {
			return nil
		}
		ctx.YieldEvent(Event{Kind: EventFoodGained, ActorID: ctx.PlayerID()})
		ctx.YieldDeferral(state.DeferredContinuation{PlayerID: ctx.PlayerID(), HandlerID: "later", When: state.DeferEndOfTurn})
		return nil
	}

	ctx := NewContext("p1", g)
	err := pr.Run(ctx, fn,
		func(hc *Context, p Prompt) Choice {
			sawPrompt = p
			return Choice{Accept: true}
		},
		func(hc *Context, ev Event) {
			sawEvent = ev
		},
		func(hc *Context, eff effects.Effect) error { return nil },
	)

	require.NoError(t, err)
	assert.Equal(t, 1, g.Player("p1").Food[state.FoodSeed])
	assert.Equal(t, PromptYesNo, sawPrompt.Kind())
	assert.Equal(t, EventFoodGained, sawEvent.Kind)
	require.Len(t, g.Deferred, 1)
	assert.Equal(t, "later", g.Deferred[0].HandlerID)
}

func TestProcessorPropagatesEffectApplicationError(t *testing.T) {
	g := testGame(t)
	applier := effects.NewApplier().WithGame(g).WithEventLog(effects.NewEventLog())
	pr := NewProcessor(applier)

	fn := func(ctx *Context) error {
		// discarding food the player never had is rejected by the applier
		ctx.YieldEffect(effects.DiscardFood{PlayerID: ctx.PlayerID(), FoodType: state.FoodSeed, Count: 5})
		return nil
	}

	ctx := NewContext("p1", g)
	err := pr.Run(ctx, fn,
		func(hc *Context, p Prompt) Choice { return Choice{} },
		func(hc *Context, ev Event) {},
		func(hc *Context, eff effects.Effect) error { return nil },
	)
	assert.Error(t, err)
}
