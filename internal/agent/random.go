package agent

import (
	"context"
	"math/rand"

	"github.com/aviary-games/wingspan-engine/internal/handler"
	"github.com/aviary-games/wingspan-engine/internal/state"
	"github.com/aviary-games/wingspan-engine/internal/view"
)

// RandomAgent answers every prompt by picking uniformly among its legal
// options, using its own seeded source so a match replayed with the same
// per-seat seeds reproduces the same choices.
type RandomAgent struct {
	id  string
	rng *rand.Rand
}

// NewRandomAgent builds a random agent seeded independently of the match's
// own PRNG, so two random seats in the same match never covary.
func NewRandomAgent(id string, seed int64) *RandomAgent {
	return &RandomAgent{id: id, rng: rand.New(rand.NewSource(seed))}
}

// ID implements Agent.
func (a *RandomAgent) ID() string { return a.id }

// Decide implements Agent.
func (a *RandomAgent) Decide(_ context.Context, v view.View, p handler.Prompt) (handler.Choice, error) {
	switch pr := p.(type) {
	case handler.TurnActionPrompt:
		kinds := []handler.TurnActionKind{handler.ActionPlayBird, handler.ActionGainFood, handler.ActionLayEggs, handler.ActionDrawCards}
		return handler.Choice{ActionKind: kinds[a.rng.Intn(len(kinds))], TakeBonus: a.rng.Intn(2) == 0}, nil

	case handler.PlayBirdPrompt:
		if len(pr.PlayableCardIDs) == 0 {
			return handler.Choice{}, nil
		}
		cardID := pr.PlayableCardIDs[a.rng.Intn(len(pr.PlayableCardIDs))]
		habitats := pr.EligibleHabitats[cardID]
		if len(habitats) == 0 {
			habitats = habitatsFor(v, cardID)
		}
		h := habitats[a.rng.Intn(len(habitats))]
		return handler.Choice{CardID: cardID, Habitat: h}, nil

	case handler.EggPlacementPrompt:
		if len(pr.EligibleInstances) == 0 {
			return handler.Choice{}, nil
		}
		n := pr.EggsToPlace
		if n > len(pr.EligibleInstances) {
			n = len(pr.EligibleInstances)
		}
		perm := a.rng.Perm(len(pr.EligibleInstances))[:n]
		ids := make([]string, n)
		for i, idx := range perm {
			ids[i] = pr.EligibleInstances[idx]
		}
		return handler.Choice{InstanceIDs: ids}, nil

	case handler.FoodFromFeederPrompt:
		if len(pr.DieFaces) == 0 {
			return handler.Choice{}, nil
		}
		idx := a.rng.Intn(len(pr.DieFaces))
		face := pr.DieFaces[idx]
		options := face.Options()
		food := options[a.rng.Intn(len(options))]
		return handler.Choice{DieIndex: idx, FoodType: food}, nil

	case handler.CardSelectionPrompt:
		n := pr.Min
		if pr.Max > pr.Min {
			n = pr.Min + a.rng.Intn(pr.Max-pr.Min+1)
		}
		if n > len(pr.CandidateIDs) {
			n = len(pr.CandidateIDs)
		}
		perm := a.rng.Perm(len(pr.CandidateIDs))[:n]
		ids := make([]string, n)
		for i, idx := range perm {
			ids[i] = pr.CandidateIDs[idx]
		}
		return handler.Choice{CardIDs: ids}, nil

	case handler.HabitatChoicePrompt:
		if len(pr.Options) == 0 {
			return handler.Choice{}, nil
		}
		return handler.Choice{Habitat: pr.Options[a.rng.Intn(len(pr.Options))]}, nil

	case handler.BonusCardKeepPrompt:
		n := pr.KeepCount
		if n > len(pr.RevealedIDs) {
			n = len(pr.RevealedIDs)
		}
		perm := a.rng.Perm(len(pr.RevealedIDs))[:n]
		ids := make([]string, n)
		for i, idx := range perm {
			ids[i] = pr.RevealedIDs[idx]
		}
		return handler.Choice{CardIDs: ids}, nil

	case handler.DieRerollPrompt, handler.YesNoPrompt:
		return handler.Choice{Accept: a.rng.Intn(2) == 0}, nil

	case handler.RepeatPowerPrompt:
		if len(pr.EligibleInstanceIDs) == 0 {
			return handler.Choice{}, nil
		}
		return handler.Choice{InstanceID: pr.EligibleInstanceIDs[a.rng.Intn(len(pr.EligibleInstanceIDs))]}, nil

	default:
		return handler.Choice{}, nil
	}
}

// habitatsFor returns every habitat in the player's own board with an open
// slot. The handler that issued PlayBirdPrompt already restricted
// PlayableCardIDs to cards with at least one such habitat, so this always
// returns at least one option for any id in that list.
func habitatsFor(v view.View, _ string) []state.Habitat {
	var out []state.Habitat
	for _, h := range state.Habitats {
		if v.Self.Board.Row(h).LeftmostEmpty() >= 0 {
			out = append(out, h)
		}
	}
	if len(out) == 0 {
		out = append(out, state.Habitats[0])
	}
	return out
}
