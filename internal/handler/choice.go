package handler

import "github.com/aviary-games/wingspan-engine/internal/state"

// Choice is an agent's answer to a Prompt. Only the fields relevant to the
// prompt kind that produced it are populated; the validator for that kind
// checks the rest are left at their zero value.
type Choice struct {
	Accept      bool
	ActionKind  TurnActionKind
	CardID      string
	CardIDs     []string
	InstanceID  string
	InstanceIDs []string
	Habitat     state.Habitat
	FoodType    state.FoodType
	DieIndex    int

	// TakeBonus answers a TurnActionPrompt: opt into that action's
	// one-per-action bonus conversion (discard a card/food/egg for 1 more
	// of the turn action's resource).
	TakeBonus bool
}

// TurnActionKind names one of the four top-level turn actions.
type TurnActionKind string

const (
	ActionPlayBird    TurnActionKind = "play-bird"
	ActionGainFood    TurnActionKind = "gain-food"
	ActionLayEggs     TurnActionKind = "lay-eggs"
	ActionDrawCards   TurnActionKind = "draw-cards"
)
