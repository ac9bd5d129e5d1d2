package powers

import (
	"github.com/aviary-games/wingspan-engine/internal/effects"
	"github.com/aviary-games/wingspan-engine/internal/handler"
	"github.com/aviary-games/wingspan-engine/internal/state"
)

// PlayBird is the "play a bird" turn action: ask which hand card and
// habitat, pay its cost, place it, then activate its own power if it has a
// when-played power.
func PlayBird(ctx *handler.Context) error {
	g := ctx.Game()
	p := g.Player(ctx.PlayerID())

	playable := PlayableCardIDs(g, p)
	eligible := make(map[string][]state.Habitat, len(playable))
	for _, cardID := range playable {
		card, err := g.Registry.Card(cardID)
		if err != nil {
			continue
		}
		eligible[cardID] = EligibleHabitats(p, card)
	}
	choice := ctx.YieldPrompt(handler.PlayBirdPrompt{
		PlayerID:         ctx.PlayerID(),
		PlayableCardIDs:  playable,
		EligibleHabitats: eligible,
	})
	if choice.CardID == "" {
		// The seat forfeited at this prompt: nothing is placed.
		return nil
	}

	card, err := g.Registry.Card(choice.CardID)
	if err != nil {
		return err
	}
	payment := CheapestFoodPayment(p, card.FoodCost)

	ctx.YieldEffect(effects.PlayBird{
		PlayerID: ctx.PlayerID(),
		CardID:   choice.CardID,
		Habitat:  choice.Habitat,
		FoodPaid: payment,
	})

	ctx.YieldEvent(handler.Event{Kind: handler.EventBirdPlayed, ActorID: ctx.PlayerID(), Habitat: choice.Habitat})

	// A when-played power, if any, is activated by the orchestrator after
	// this effect resolves: it locates the freshly placed instance (always
	// the last occupied slot of choice.Habitat) and dispatches it there,
	// the same path a brown power's right-to-left chain uses.
	return nil
}

// baseRewardForColumn returns the number of resources a forest/grassland/
// wetland turn action grants for acting into the row's column-th (1-based)
// open slot: the habitat rows award 1 resource per occupied slot to their
// left, plus the action's own base grant, clamped to the row's width so an
// already-full row still pays out its maximum.
func baseRewardForColumn(column int) int {
	if column < 1 {
		return 1
	}
	if column > state.BoardColumns {
		return state.BoardColumns
	}
	return column
}

// columnFor returns the 1-based column a turn action into habitat resolves
// at: the row's leftmost empty slot, or the full row width once every slot
// is occupied (the action still resolves — rows stay playable once full,
// only bird-placement itself requires an open slot).
func columnFor(p *state.Player, h state.Habitat) int {
	row := p.Board.Row(h)
	if col := row.LeftmostEmpty(); col >= 0 {
		return col + 1
	}
	return state.BoardColumns
}

// GainFood is the "gain food" turn action: take a number of dice from the
// feeder based on how far along the forest row is filled, resolving each
// dual face to one of its two food types. If the agent opted into the
// bonus conversion (TakeBonus) and can afford it, discarding 1 hand card
// converts into 1 more food of the same type; the conversion is a silent
// no-op if the hand is empty.
func GainFood(ctx *handler.Context) error {
	g := ctx.Game()
	p := g.Player(ctx.PlayerID())
	reward := baseRewardForColumn(columnFor(p, state.HabitatForest))

	var lastType state.FoodType
	for i := 0; i < reward; i++ {
		if len(g.Feeder.Dice) == 0 {
			break
		}
		choice := ctx.YieldPrompt(handler.FoodFromFeederPrompt{
			PlayerID: ctx.PlayerID(),
			DieFaces: g.Feeder.Dice,
		})
		face := g.Feeder.Dice[choice.DieIndex]
		foodType := choice.FoodType
		if !face.IsDual() {
			foodType = state.FoodType(face)
		}
		lastType = foodType
		ctx.YieldEffect(effects.GainFood{PlayerID: ctx.PlayerID(), FoodType: foodType, Count: 1})
		ctx.YieldEffect(effects.RefillBirdfeeder{})
		ctx.YieldEvent(handler.Event{Kind: handler.EventFoodGained, ActorID: ctx.PlayerID(), FoodType: foodType, Count: 1})
	}

	if ctx.WantsBonus() && lastType != "" && len(p.Hand) > 0 {
		ctx.YieldEffect(effects.DiscardCards{PlayerID: ctx.PlayerID(), CardIDs: []string{p.Hand[0]}})
		ctx.YieldEffect(effects.GainFood{PlayerID: ctx.PlayerID(), FoodType: lastType, Count: 1, FromSupply: true})
		ctx.MarkBonusApplied()
	}
	return nil
}

// LayEggs is the "lay eggs" turn action: distribute a number of eggs based
// on how far along the grassland row is filled, among birds with remaining
// capacity. If the agent opted into the bonus conversion and can afford it,
// paying 1 food converts into 1 more egg; the conversion is a silent no-op
// if the player has no food at all.
func LayEggs(ctx *handler.Context) error {
	g := ctx.Game()
	p := g.Player(ctx.PlayerID())
	reward := baseRewardForColumn(columnFor(p, state.HabitatGrassland))

	eligible := EligibleEggInstances(g, p)
	choice := ctx.YieldPrompt(handler.EggPlacementPrompt{
		PlayerID:          ctx.PlayerID(),
		EligibleInstances: eligible,
		EggsToPlace:       reward,
	})
	for _, instanceID := range choice.InstanceIDs {
		ctx.YieldEffect(effects.LayEggs{PlayerID: ctx.PlayerID(), InstanceID: instanceID, Count: 1})
	}
	ctx.YieldEvent(handler.Event{Kind: handler.EventEggsLaid, ActorID: ctx.PlayerID(), Count: len(choice.InstanceIDs)})

	if ctx.WantsBonus() && p.TotalFood() > 0 {
		if foodType := cheapestSingleFoodType(p); foodType != "" {
			if bonus := EligibleEggInstances(g, p); len(bonus) > 0 {
				ctx.YieldEffect(effects.DiscardFood{PlayerID: ctx.PlayerID(), FoodType: foodType, Count: 1})
				ctx.YieldEffect(effects.LayEggs{PlayerID: ctx.PlayerID(), InstanceID: bonus[0], Count: 1})
				ctx.MarkBonusApplied()
			}
		}
	}
	return nil
}

// cheapestSingleFoodType returns a food type p currently holds at least 1
// of, or "" if p has none at all.
func cheapestSingleFoodType(p *state.Player) state.FoodType {
	for _, ft := range state.FoodTypes {
		if p.Food[ft] > 0 {
			return ft
		}
	}
	return ""
}

// DrawCards is the "draw cards" turn action: draw a number of cards based
// on how far along the wetland row is filled, from the tray or deck in any
// combination the agent selects. If the agent opted into the bonus
// conversion and can afford it, discarding 1 egg converts into 1 more
// card; the conversion is a silent no-op if no bird holds an egg to spend.
func DrawCards(ctx *handler.Context) error {
	g := ctx.Game()
	p := g.Player(ctx.PlayerID())
	reward := baseRewardForColumn(columnFor(p, state.HabitatWetland))

	choice := ctx.YieldPrompt(handler.CardSelectionPrompt{
		PlayerID:     ctx.PlayerID(),
		CandidateIDs: g.Supply.VisibleTray(),
		Min:          0,
		Max:          reward,
		Purpose:      "draw",
	})
	fromDeck := reward - len(choice.CardIDs)
	ctx.YieldEffect(effects.DrawCards{PlayerID: ctx.PlayerID(), FromDeck: fromDeck, FromTrayID: choice.CardIDs})
	ctx.YieldEvent(handler.Event{Kind: handler.EventCardsDrawn, ActorID: ctx.PlayerID(), Count: reward})

	if ctx.WantsBonus() {
		if eggSource := eggBearingInstance(g, p); eggSource != "" {
			ctx.YieldEffect(effects.DiscardEggs{PlayerID: ctx.PlayerID(), InstanceID: eggSource, Count: 1})
			ctx.YieldEffect(effects.DrawCards{PlayerID: ctx.PlayerID(), FromDeck: 1})
			ctx.MarkBonusApplied()
		}
	}
	return nil
}

// eggBearingInstance returns the id of a p-owned bird instance currently
// holding at least 1 egg, or "" if none does.
func eggBearingInstance(g *state.Game, p *state.Player) string {
	for _, b := range p.Board.AllBirds() {
		if b.Eggs > 0 {
			return b.ID
		}
	}
	return ""
}
