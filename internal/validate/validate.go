// Package validate checks an agent's Choice against the Prompt it answers,
// independent of game state legality already enforced by the handler that
// issued the prompt. A rejection here is recoverable — the orchestrator
// reprompts, counting toward the per-player three-strike policy.
package validate

import (
	"fmt"

	"github.com/aviary-games/wingspan-engine/internal/apperrors"
	"github.com/aviary-games/wingspan-engine/internal/handler"
	"github.com/aviary-games/wingspan-engine/internal/state"
)

// Choice validates c against p, returning a *apperrors.ValidationRejection
// if the shape of the answer does not fit the question asked.
func Choice(p handler.Prompt, c handler.Choice) error {
	switch pr := p.(type) {
	case handler.TurnActionPrompt:
		return validateTurnAction(pr, c)
	case handler.PlayBirdPrompt:
		return validatePlayBird(pr, c)
	case handler.EggPlacementPrompt:
		return validateEggPlacement(pr, c)
	case handler.FoodFromFeederPrompt:
		return validateFoodFromFeeder(pr, c)
	case handler.CardSelectionPrompt:
		return validateCardSelection(pr, c)
	case handler.HabitatChoicePrompt:
		return validateHabitatChoice(pr, c)
	case handler.BonusCardKeepPrompt:
		return validateBonusCardKeep(pr, c)
	case handler.DieRerollPrompt:
		return nil // bare yes/no, Accept is always a legal answer
	case handler.YesNoPrompt:
		return nil
	case handler.RepeatPowerPrompt:
		return validateRepeatPowerChoice(pr, c)
	default:
		return &apperrors.ValidationRejection{PromptKind: "unknown", Reason: fmt.Sprintf("no validator for %T", p)}
	}
}

func validateTurnAction(p handler.TurnActionPrompt, c handler.Choice) error {
	switch c.ActionKind {
	case handler.ActionPlayBird, handler.ActionGainFood, handler.ActionLayEggs, handler.ActionDrawCards:
		return nil
	default:
		return &apperrors.ValidationRejection{PromptKind: string(p.Kind()), Reason: "unrecognized turn action " + string(c.ActionKind)}
	}
}

func validatePlayBird(p handler.PlayBirdPrompt, c handler.Choice) error {
	if !contains(p.PlayableCardIDs, c.CardID) {
		return &apperrors.ValidationRejection{PromptKind: string(p.Kind()), Reason: "card not in playable set: " + c.CardID}
	}
	if !containsHabitat(p.EligibleHabitats[c.CardID], c.Habitat) {
		return &apperrors.ValidationRejection{PromptKind: string(p.Kind()), Reason: "habitat not eligible for " + c.CardID + ": " + string(c.Habitat)}
	}
	return nil
}

func validateEggPlacement(p handler.EggPlacementPrompt, c handler.Choice) error {
	if len(c.InstanceIDs) == 0 {
		return &apperrors.ValidationRejection{PromptKind: string(p.Kind()), Reason: "no instances selected"}
	}
	for _, id := range c.InstanceIDs {
		if !contains(p.EligibleInstances, id) {
			return &apperrors.ValidationRejection{PromptKind: string(p.Kind()), Reason: "instance not eligible: " + id}
		}
	}
	if len(c.InstanceIDs) > p.EggsToPlace {
		return &apperrors.ValidationRejection{PromptKind: string(p.Kind()), Reason: "more placements than eggs available"}
	}
	return nil
}

func validateFoodFromFeeder(p handler.FoodFromFeederPrompt, c handler.Choice) error {
	if c.DieIndex < 0 || c.DieIndex >= len(p.DieFaces) {
		return &apperrors.ValidationRejection{PromptKind: string(p.Kind()), Reason: "die index out of range"}
	}
	face := p.DieFaces[c.DieIndex]
	if face.IsDual() {
		ok := false
		for _, o := range face.Options() {
			if o == c.FoodType {
				ok = true
			}
		}
		if !ok {
			return &apperrors.ValidationRejection{PromptKind: string(p.Kind()), Reason: "food type not offered by die face"}
		}
	}
	return nil
}

func validateCardSelection(p handler.CardSelectionPrompt, c handler.Choice) error {
	if len(c.CardIDs) < p.Min || len(c.CardIDs) > p.Max {
		return &apperrors.ValidationRejection{PromptKind: string(p.Kind()), Reason: fmt.Sprintf("selected %d cards, want [%d,%d]", len(c.CardIDs), p.Min, p.Max)}
	}
	for _, id := range c.CardIDs {
		if !contains(p.CandidateIDs, id) {
			return &apperrors.ValidationRejection{PromptKind: string(p.Kind()), Reason: "card not a candidate: " + id}
		}
	}
	return nil
}

func validateHabitatChoice(p handler.HabitatChoicePrompt, c handler.Choice) error {
	if !containsHabitat(p.Options, c.Habitat) {
		return &apperrors.ValidationRejection{PromptKind: string(p.Kind()), Reason: "habitat not offered: " + string(c.Habitat)}
	}
	return nil
}

func validateBonusCardKeep(p handler.BonusCardKeepPrompt, c handler.Choice) error {
	if len(c.CardIDs) != p.KeepCount {
		return &apperrors.ValidationRejection{PromptKind: string(p.Kind()), Reason: fmt.Sprintf("must keep exactly %d", p.KeepCount)}
	}
	for _, id := range c.CardIDs {
		if !contains(p.RevealedIDs, id) {
			return &apperrors.ValidationRejection{PromptKind: string(p.Kind()), Reason: "card not among revealed: " + id}
		}
	}
	return nil
}

func validateRepeatPowerChoice(p handler.RepeatPowerPrompt, c handler.Choice) error {
	if !contains(p.EligibleInstanceIDs, c.InstanceID) {
		return &apperrors.ValidationRejection{PromptKind: string(p.Kind()), Reason: "instance not eligible to repeat: " + c.InstanceID}
	}
	return nil
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}

func containsHabitat(haystack []state.Habitat, needle state.Habitat) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}
