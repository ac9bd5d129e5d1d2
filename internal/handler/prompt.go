package handler

import "github.com/aviary-games/wingspan-engine/internal/state"

// PromptKind discriminates the concrete Prompt variants below.
type PromptKind string

const (
	PromptTurnAction    PromptKind = "turn-action"
	PromptPlayBird      PromptKind = "play-bird"
	PromptEggPlacement  PromptKind = "egg-placement"
	PromptFoodFromFeeder PromptKind = "food-from-feeder"
	PromptCardSelection PromptKind = "card-selection"
	PromptHabitatChoice PromptKind = "habitat-choice"
	PromptBonusCardKeep PromptKind = "bonus-card-keep"
	PromptDieReroll     PromptKind = "die-reroll"
	PromptYesNo         PromptKind = "yes-no"
	PromptRepeatPower   PromptKind = "repeat-power"
)

// Prompt is a question a handler yields to the active (or a reacting)
// player's agent. The set is closed; Kind identifies the concrete variant
// to both the validator and the agent.
type Prompt interface {
	Kind() PromptKind
}

// TurnActionPrompt offers the four top-level turn actions.
type TurnActionPrompt struct {
	PlayerID string
}

func (TurnActionPrompt) Kind() PromptKind { return PromptTurnAction }

// PlayBirdPrompt asks which hand card to play and into which habitat. The
// agent answers both in one Choice, so EligibleHabitats is keyed by card id
// rather than a flat list: different playable cards can have different
// legal habitats (allowed habitat set intersected with row occupancy).
type PlayBirdPrompt struct {
	PlayerID         string
	PlayableCardIDs  []string
	EligibleHabitats map[string][]state.Habitat
}

func (PlayBirdPrompt) Kind() PromptKind { return PromptPlayBird }

// EggPlacementPrompt asks which bird instance(s) receive laid eggs.
type EggPlacementPrompt struct {
	PlayerID          string
	EligibleInstances []string
	EggsToPlace       int
}

func (EggPlacementPrompt) Kind() PromptKind { return PromptEggPlacement }

// FoodFromFeederPrompt asks which feeder die (and, for a dual face, which
// of its two food types) to take.
type FoodFromFeederPrompt struct {
	PlayerID  string
	DieFaces  []state.DieFace
}

func (FoodFromFeederPrompt) Kind() PromptKind { return PromptFoodFromFeeder }

// CardSelectionPrompt asks the player to pick among a set of card ids, with
// a minimum and maximum number of selections.
type CardSelectionPrompt struct {
	PlayerID    string
	CandidateIDs []string
	Min, Max    int
	Purpose     string // e.g. "tuck", "discard", "keep"
}

func (CardSelectionPrompt) Kind() PromptKind { return PromptCardSelection }

// HabitatChoicePrompt asks the player to pick one of a set of habitats.
type HabitatChoicePrompt struct {
	PlayerID  string
	Options   []state.Habitat
}

func (HabitatChoicePrompt) Kind() PromptKind { return PromptHabitatChoice }

// BonusCardKeepPrompt asks the player which revealed bonus card(s) to keep.
type BonusCardKeepPrompt struct {
	PlayerID     string
	RevealedIDs  []string
	KeepCount    int
}

func (BonusCardKeepPrompt) Kind() PromptKind { return PromptBonusCardKeep }

// DieRerollPrompt asks whether to reroll a homogeneous birdfeeder.
type DieRerollPrompt struct {
	PlayerID string
}

func (DieRerollPrompt) Kind() PromptKind { return PromptDieReroll }

// YesNoPrompt is a generic optional-power opt-in/opt-out question.
type YesNoPrompt struct {
	PlayerID string
	Question string
}

func (YesNoPrompt) Kind() PromptKind { return PromptYesNo }

// RepeatPowerPrompt asks which of several eligible when-activated bird
// instances a "repeat 1 [habitat] power" power should re-trigger, offered
// only when more than one instance qualifies (a single eligible target is
// picked automatically, no prompt needed).
type RepeatPowerPrompt struct {
	PlayerID            string
	EligibleInstanceIDs []string
}

func (RepeatPowerPrompt) Kind() PromptKind { return PromptRepeatPower }
