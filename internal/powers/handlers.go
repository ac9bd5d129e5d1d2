package powers

import (
	"strconv"

	"github.com/aviary-games/wingspan-engine/internal/effects"
	"github.com/aviary-games/wingspan-engine/internal/handler"
	"github.com/aviary-games/wingspan-engine/internal/state"
)

func paramInt(params map[string]string, key string, fallback int) int {
	v, ok := params[key]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// NewGainFoodFromFeederOrSupply builds a when-activated power that takes a
// die of the named food type from the feeder if one is present, else 1 of
// that type from the general supply. Demonstrates the feeder-matching,
// dual-die-aware gain-food pattern.
func NewGainFoodFromFeederOrSupply(instanceID string, params map[string]string) handler.Func {
	foodType := state.FoodType(params["foodType"])
	return func(ctx *handler.Context) error {
		g := ctx.Game()
		fromSupply := true
		for _, d := range g.Feeder.Dice {
			if state.FoodType(d) == foodType || (d.IsDual() && containsFoodType(d.Options(), foodType)) {
				fromSupply = false
				break
			}
		}
		ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: true})
		ctx.YieldEffect(effects.GainFood{PlayerID: ctx.PlayerID(), FoodType: foodType, Count: 1, FromSupply: fromSupply})
		return nil
	}
}

// NewGainAllMatchingDiceFromFeeder builds a when-played power that takes
// every feeder die matching foodType (including dual faces offering it,
// which resolve as foodType) at once — e.g. "gain all seed and/or
// invertebrate dice in the birdfeeder".
func NewGainAllMatchingDiceFromFeeder(instanceID string, params map[string]string) handler.Func {
	foodType := state.FoodType(params["foodType"])
	return func(ctx *handler.Context) error {
		g := ctx.Game()
		matching := 0
		for _, d := range g.Feeder.Dice {
			if state.FoodType(d) == foodType || (d.IsDual() && containsFoodType(d.Options(), foodType)) {
				matching++
			}
		}
		if matching == 0 {
			ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: false, SkipReason: state.SkipResourceUnavailable})
			return nil
		}
		ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: true})
		ctx.YieldEffect(effects.GainFood{PlayerID: ctx.PlayerID(), FoodType: foodType, Count: matching, FromSupply: false})
		return nil
	}
}

func containsFoodType(opts []state.FoodType, want state.FoodType) bool {
	for _, o := range opts {
		if o == want {
			return true
		}
	}
	return false
}

// NewGainFixedFood builds a when-activated power that simply grants N food
// of a fixed type from the general supply — the simplest brown power shape,
// used to demonstrate right-to-left habitat activation order when two such
// birds share a row.
func NewGainFixedFood(instanceID string, params map[string]string) handler.Func {
	foodType := state.FoodType(params["foodType"])
	count := paramInt(params, "count", 1)
	return func(ctx *handler.Context) error {
		ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: true})
		ctx.YieldEffect(effects.GainFood{PlayerID: ctx.PlayerID(), FoodType: foodType, Count: count, FromSupply: true})
		return nil
	}
}

// NewPinkGainFoodOnOpponentHabitatPlay builds a once-between-turns power
// that, when any opponent plays a bird into the named habitat, grants this
// bird's owner 1 food of the named type. Registered against EventBirdPlayed
// by the orchestrator's reactive dispatch, not invoked on the active
// player's own turn.
func NewPinkGainFoodOnOpponentHabitatPlay(instanceID string, params map[string]string) handler.Func {
	habitat := state.Habitat(params["habitat"])
	foodType := state.FoodType(params["foodType"])
	return func(ctx *handler.Context) error {
		// The orchestrator only drives this handler when its precondition
		// (an opponent just played into habitat) already held; re-derive
		// nothing here beyond the grant itself.
		_ = habitat
		choice := ctx.YieldPrompt(handler.YesNoPrompt{
			PlayerID: ctx.PlayerID(),
			Question: "activate power to gain 1 " + string(foodType) + "?",
		})
		if !choice.Accept {
			ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: false, SkipReason: state.SkipAgentDeclined})
			return nil
		}
		ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: true})
		ctx.YieldEffect(effects.GainFood{PlayerID: ctx.PlayerID(), FoodType: foodType, Count: 1, FromSupply: true})
		return nil
	}
}

// NewDrawThenDeferredDiscard builds a when-activated power that draws a
// card immediately, then defers a 1-card discard obligation to the end of
// the owner's current turn — demonstrating the deferral yield variant.
func NewDrawThenDeferredDiscard(instanceID string, params map[string]string) handler.Func {
	return func(ctx *handler.Context) error {
		ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: true})
		ctx.YieldEffect(effects.DrawCards{PlayerID: ctx.PlayerID(), FromDeck: 1})
		ctx.YieldDeferral(state.DeferredContinuation{
			PlayerID:  ctx.PlayerID(),
			HandlerID: "deferred-discard-one",
			When:      state.DeferEndOfTurn,
		})
		return nil
	}
}

// NewDeferredDiscardOne is the continuation NewDrawThenDeferredDiscard
// defers: prompt for one hand card to discard. It is registered under the
// literal handler id "deferred-discard-one" used above.
func NewDeferredDiscardOne(instanceID string, params map[string]string) handler.Func {
	return func(ctx *handler.Context) error {
		p := ctx.Game().Player(ctx.PlayerID())
		choice := ctx.YieldPrompt(handler.CardSelectionPrompt{
			PlayerID:     ctx.PlayerID(),
			CandidateIDs: p.Hand,
			Min:          1,
			Max:          1,
			Purpose:      "discard",
		})
		ctx.YieldEffect(effects.DiscardCards{PlayerID: ctx.PlayerID(), CardIDs: choice.CardIDs})
		return nil
	}
}

// NewRepeatHabitatPower builds a when-activated power that repeats one
// other when-activated power from a different bird in sourceHabitat, on
// this same activation. Eligible targets are discovered live from the
// owner's board, since the dataset names only the source habitat, not a
// specific target instance: with exactly one eligible bird it is repeated
// automatically; with more than one the owner's agent picks via
// RepeatPowerPrompt; with none the power declines.
func NewRepeatHabitatPower(instanceID string, params map[string]string) handler.Func {
	sourceHabitat := state.Habitat(params["sourceHabitat"])
	return func(ctx *handler.Context) error {
		g := ctx.Game()
		p := g.Player(ctx.PlayerID())
		var eligible []string
		for _, inst := range p.Board.Row(sourceHabitat).Slots {
			if inst == nil || inst.ID == instanceID {
				continue
			}
			card, err := g.Registry.Card(inst.CardID)
			if err != nil || card.Power == nil || card.Power.Trigger != state.TriggerWhenActivated {
				continue
			}
			eligible = append(eligible, inst.ID)
		}
		if len(eligible) == 0 {
			ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: false, SkipReason: state.SkipConditionNotMet})
			return nil
		}
		target := eligible[0]
		if len(eligible) > 1 {
			choice := ctx.YieldPrompt(handler.RepeatPowerPrompt{PlayerID: ctx.PlayerID(), EligibleInstanceIDs: eligible})
			if choice.InstanceID != "" {
				target = choice.InstanceID
			}
		}
		ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: true})
		ctx.YieldEffect(effects.RepeatBrownPower{
			PlayerID:       ctx.PlayerID(),
			SourceHabitat:  sourceHabitat,
			TargetInstance: target,
		})
		return nil
	}
}

// NewTuckFromDeck builds a when-activated power that tucks the top card of
// the deck face-down under this bird, worth 1 VP at scoring. The card is
// drawn into the owner's hand and tucked from there with no prompt in
// between.
func NewTuckFromDeck(instanceID string, params map[string]string) handler.Func {
	count := paramInt(params, "count", 1)
	return func(ctx *handler.Context) error {
		if len(ctx.Game().Supply.Deck) == 0 {
			ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: false, SkipReason: state.SkipResourceUnavailable})
			return nil
		}
		ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: true})
		drawn, _ := ctx.YieldEffect(effects.DrawCards{PlayerID: ctx.PlayerID(), FromDeck: count}).(effects.DrawCards)
		ctx.YieldEffect(effects.TuckCards{PlayerID: ctx.PlayerID(), InstanceID: instanceID, CardIDs: drawn.DrawnCardIDs})
		return nil
	}
}

// NewCacheFoodFromSupply builds a when-activated power that caches N food
// of a fixed type from the owner's supply onto this bird (each cached token
// worth 1 VP at scoring). Declines (an ActivatePower with
// SkipResourceUnavailable) if the owner cannot afford it.
func NewCacheFoodFromSupply(instanceID string, params map[string]string) handler.Func {
	foodType := state.FoodType(params["foodType"])
	count := paramInt(params, "count", 1)
	return func(ctx *handler.Context) error {
		p := ctx.Game().Player(ctx.PlayerID())
		if p.Food[foodType] < count {
			ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: false, SkipReason: state.SkipResourceUnavailable})
			return nil
		}
		ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: true})
		ctx.YieldEffect(effects.CacheFood{PlayerID: ctx.PlayerID(), InstanceID: instanceID, FoodType: foodType, Count: count})
		return nil
	}
}

// NewLayBonusEgg builds a when-activated power that lays 1 extra egg on
// this bird itself, ignoring the normal egg-action limits, bounded by its
// own capacity.
func NewLayBonusEgg(instanceID string, params map[string]string) handler.Func {
	count := paramInt(params, "count", 1)
	return func(ctx *handler.Context) error {
		g := ctx.Game()
		p := g.Player(ctx.PlayerID())
		inst, _, _, found := p.Board.FindInstance(instanceID)
		if found {
			card, err := g.Registry.Card(inst.CardID)
			if err == nil && inst.Eggs >= card.EggCapacity {
				ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: false, SkipReason: state.SkipConditionNotMet})
				return nil
			}
		}
		ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: true})
		ctx.YieldEffect(effects.LayEggs{PlayerID: ctx.PlayerID(), InstanceID: instanceID, Count: count})
		return nil
	}
}

// NewAllPlayersGainFoodPower builds a when-activated power granting food to
// every player, typically excluding the owner when the card reads "each
// other player gains".
func NewAllPlayersGainFoodPower(instanceID string, params map[string]string) handler.Func {
	foodType := state.FoodType(params["foodType"])
	count := paramInt(params, "count", 1)
	excludeActive := params["excludeActive"] == "true"
	return func(ctx *handler.Context) error {
		ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: true})
		ctx.YieldEffect(effects.AllPlayersGainFood{FoodType: foodType, Count: count, ExcludeActive: excludeActive})
		return nil
	}
}

// NewAllPlayersDrawCardsPower builds a when-activated power granting every
// player (excluding the owner if so configured) Count cards drawn from the
// deck.
func NewAllPlayersDrawCardsPower(instanceID string, params map[string]string) handler.Func {
	count := paramInt(params, "count", 1)
	excludeActive := params["excludeActive"] == "true"
	return func(ctx *handler.Context) error {
		ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: true})
		ctx.YieldEffect(effects.AllPlayersDrawCards{Count: count, ExcludeActive: excludeActive})
		return nil
	}
}

// NewAllPlayersLayEggsPower builds a when-activated power granting every
// player (excluding the owner if so configured) Count eggs, greedily
// placed on whichever of their own birds has room first.
func NewAllPlayersLayEggsPower(instanceID string, params map[string]string) handler.Func {
	count := paramInt(params, "count", 1)
	excludeActive := params["excludeActive"] == "true"
	return func(ctx *handler.Context) error {
		ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: true})
		ctx.YieldEffect(effects.AllPlayersLayEggs{Count: count, ExcludeActive: excludeActive})
		return nil
	}
}

// NewPredatorHuntPower builds a when-activated "predator" power: the owner
// rolls one birdfeeder-style die outside the feeder; on a face that
// resolves to preyFoodType, they gain 1 of that food from the supply.
// Either way a predator-power-resolved event fires, giving other players'
// once-between-turns powers a chance to react to the hunt's outcome.
func NewPredatorHuntPower(instanceID string, params map[string]string) handler.Func {
	preyFoodType := state.FoodType(params["preyFoodType"])
	return func(ctx *handler.Context) error {
		ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: true})
		face := state.RandomDieFace(ctx.Game().RNG)
		success := false
		for _, opt := range face.Options() {
			if opt == preyFoodType {
				success = true
				break
			}
		}
		if success {
			ctx.YieldEffect(effects.GainFood{PlayerID: ctx.PlayerID(), FoodType: preyFoodType, Count: 1, FromSupply: true})
		}
		ctx.YieldEvent(handler.Event{Kind: handler.EventPredatorResolved, ActorID: ctx.PlayerID(), FoodType: preyFoodType})
		return nil
	}
}

// NewDrawBonusCardKeepBest builds a when-activated power that reveals 2
// bonus cards and keeps the agent's choice of 1, discarding the other.
func NewDrawBonusCardKeepBest(instanceID string, params map[string]string) handler.Func {
	reveal := paramInt(params, "reveal", 2)
	keep := paramInt(params, "keep", 1)
	return func(ctx *handler.Context) error {
		drawn := ctx.Game().BonusDeck.Draw(reveal)
		if len(drawn) == 0 {
			ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: false, SkipReason: state.SkipResourceUnavailable})
			return nil
		}
		ctx.YieldEffect(effects.ActivatePower{InstanceID: instanceID, Activated: true})
		choice := ctx.YieldPrompt(handler.BonusCardKeepPrompt{
			PlayerID:    ctx.PlayerID(),
			RevealedIDs: drawn,
			KeepCount:   keep,
		})
		kept := make(map[string]bool, len(choice.CardIDs))
		for _, id := range choice.CardIDs {
			kept[id] = true
		}
		var discard []string
		for _, id := range drawn {
			if !kept[id] {
				discard = append(discard, id)
			}
		}
		p := ctx.Game().Player(ctx.PlayerID())
		p.BonusCards = append(p.BonusCards, choice.CardIDs...)
		ctx.Game().BonusDeck.DiscardCards(discard)
		return nil
	}
}
