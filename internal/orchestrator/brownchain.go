package orchestrator

import (
	"context"

	"github.com/aviary-games/wingspan-engine/internal/apperrors"
	"github.com/aviary-games/wingspan-engine/internal/effects"
	"github.com/aviary-games/wingspan-engine/internal/handler"
	"github.com/aviary-games/wingspan-engine/internal/state"
)

// activateHabitat fires every when-activated ("brown") power in a row, from
// its rightmost occupied slot down to fromColumn inclusive — the
// right-to-left chain a turn action touching that habitat triggers.
func (m *Match) activateHabitat(ctx context.Context, playerID string, habitat state.Habitat, fromColumn int) error {
	p := m.Game.Player(playerID)
	row := p.Board.Row(habitat)
	for col := len(row.Slots) - 1; col >= fromColumn; col-- {
		inst := row.Slots[col]
		if inst == nil {
			continue
		}
		if err := m.activateInstance(ctx, playerID, inst); err != nil {
			return err
		}
	}
	return nil
}

// activateInstance runs inst's when-activated power, if it has one.
func (m *Match) activateInstance(ctx context.Context, playerID string, inst *state.BirdInstance) error {
	card, err := m.Game.Registry.Card(inst.CardID)
	if err != nil {
		return err
	}
	if card.Power == nil || card.Power.Trigger != state.TriggerWhenActivated {
		return nil
	}
	return m.runHandler(ctx, playerID, card.Power.HandlerID, inst.ID, card.Power.Params)
}

// activateWhenPlayed runs a just-placed bird's own when-played power, if any.
func (m *Match) activateWhenPlayed(ctx context.Context, playerID, instanceID, cardID string) error {
	card, err := m.Game.Registry.Card(cardID)
	if err != nil {
		return err
	}
	if card.Power == nil || card.Power.Trigger != state.TriggerWhenPlayed {
		return nil
	}
	return m.runHandler(ctx, playerID, card.Power.HandlerID, instanceID, card.Power.Params)
}

// runHandler builds and drives one power handler to completion, applying
// its effects and routing its prompts/events through this match's normal
// agent and reactive-dispatch paths.
func (m *Match) runHandler(ctx context.Context, playerID, handlerID, instanceID string, params map[string]string) error {
	fn, ok := m.Powers.Build(handlerID, instanceID, params)
	if !ok {
		return nil // dataset referenced a handler id this build doesn't ship
	}
	hctx := handler.NewContext(playerID, m.Game)
	return m.Processor.Run(hctx, fn,
		func(hc *handler.Context, p handler.Prompt) handler.Choice {
			return m.ask(ctx, hc.PlayerID(), p)
		},
		func(hc *handler.Context, ev handler.Event) {
			m.dispatchPink(ctx, ev)
		},
		func(hc *handler.Context, eff effects.Effect) error {
			return m.onRepeatBrownPower(ctx, eff)
		},
	)
}

// onRepeatBrownPower re-invokes a target instance's when-activated handler
// when a repeat-brown-power effect has just applied successfully. The
// effects package only validates that the target exists and owns such a
// power; the actual re-dispatch happens here because it needs the power
// registry, which effects must not import.
func (m *Match) onRepeatBrownPower(ctx context.Context, eff effects.Effect) error {
	rb, ok := eff.(effects.RepeatBrownPower)
	if !ok {
		return nil
	}
	p := m.Game.Player(rb.PlayerID)
	inst, _, _, found := p.Board.FindInstance(rb.TargetInstance)
	if !found {
		return &apperrors.InvariantViolation{MatchID: m.Game.MatchID, Detail: "repeat-brown-power: target vanished: " + rb.TargetInstance}
	}
	card, err := m.Game.Registry.Card(inst.CardID)
	if err != nil {
		return err
	}
	return m.runHandler(ctx, rb.PlayerID, card.Power.HandlerID, inst.ID, card.Power.Params)
}

// dispatchPink broadcasts ev to every other player's once-between-turns
// ("pink") powers, in clockwise order starting with the player immediately
// left of the actor (i.e. next in turn order), each firing at most once per
// qualifying event.
func (m *Match) dispatchPink(ctx context.Context, ev handler.Event) {
	n := len(m.Game.Players)
	actorIdx := 0
	for i, p := range m.Game.Players {
		if p.ID == ev.ActorID {
			actorIdx = i
			break
		}
	}
	for step := 1; step < n; step++ {
		p := m.Game.Players[(actorIdx+step)%n]
		if p.Forfeited || p.ID == ev.ActorID {
			continue
		}
		for _, inst := range p.Board.AllBirdsReactiveOrder() {
			card, err := m.Game.Registry.Card(inst.CardID)
			if err != nil || card.Power == nil || card.Power.Trigger != state.TriggerOnceBetweenTurns {
				continue
			}
			if !pinkQualifies(card.Power.Params, ev) {
				continue
			}
			_ = m.runHandler(ctx, p.ID, card.Power.HandlerID, inst.ID, card.Power.Params)
		}
	}
}

// pinkQualifies checks a pink power's declared trigger condition against
// the event that just occurred.
func pinkQualifies(params map[string]string, ev handler.Event) bool {
	wantKind, ok := params["onEvent"]
	if ok && wantKind != string(ev.Kind) {
		return false
	}
	if wantHabitat, ok := params["habitat"]; ok && wantHabitat != "" && wantHabitat != string(ev.Habitat) {
		return false
	}
	return true
}
