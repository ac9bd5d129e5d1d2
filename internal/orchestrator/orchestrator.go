// Package orchestrator drives one match end to end: setup, the four
// rounds of turns, reactive power dispatch, and final scoring. It is the
// only package that sequences the other five components together.
package orchestrator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aviary-games/wingspan-engine/internal/agent"
	"github.com/aviary-games/wingspan-engine/internal/effects"
	"github.com/aviary-games/wingspan-engine/internal/handler"
	"github.com/aviary-games/wingspan-engine/internal/observer"
	"github.com/aviary-games/wingspan-engine/internal/powers"
	"github.com/aviary-games/wingspan-engine/internal/state"
	"github.com/aviary-games/wingspan-engine/internal/view"
)

// StartingHandSize and StartingBonusCards are the setup deal sizes; the
// base game deals 5 bird cards and 2 bonus cards, keeping at least one of
// each per the discard-for-food-tokens tradeoff the base game offers,
// which this build does not implement (see DESIGN.md).
const (
	StartingHandSize   = 5
	StartingBonusCards = 2
	KeptBonusCards     = 1
)

// Match holds everything RunMatch needs to drive one game: state, the
// effect applier and handler processor wired to it, the power registry,
// the wrapped agents, and the observer fan-out.
type Match struct {
	Game      *state.Game
	Powers    *powers.Registry
	Applier   *effects.Applier
	Processor *handler.Processor
	Log       *effects.EventLog

	agents    map[string]*AgentWrapper
	observers []observer.Observer
	logger    *zap.Logger

	roundGoalTotals map[string]int
	// gameEnded is set the moment a forfeit leaves at most one
	// non-forfeited player; checked at every turn/round loop boundary so
	// the match stops immediately rather than playing out the round.
	gameEnded bool
}

// NewMatch wires a fresh match together. agents must have one entry per id
// in playerIDs.
func NewMatch(matchID string, seed int64, registry *state.Registry, playerIDs []string, agents map[string]agent.Agent, observers []observer.Observer, logger *zap.Logger) (*Match, error) {
	for _, id := range playerIDs {
		if _, ok := agents[id]; !ok {
			return nil, fmt.Errorf("no agent registered for player %s", id)
		}
	}

	g := state.NewGame(matchID, seed, registry, playerIDs)
	eventLog := effects.NewEventLog()
	applier := effects.NewApplier().WithGame(g).WithEventLog(eventLog).WithLogger(logger)

	wrapped := make(map[string]*AgentWrapper, len(playerIDs))
	for id, a := range agents {
		wrapped[id] = NewAgentWrapper(a)
	}

	return &Match{
		Game:            g,
		Powers:          powers.NewRegistry(),
		Applier:         applier,
		Processor:       handler.NewProcessor(applier),
		Log:             eventLog,
		agents:          wrapped,
		observers:       observers,
		logger:          logger,
		roundGoalTotals: make(map[string]int),
	}, nil
}

// ask routes a prompt to playerID's wrapped agent, forfeiting the seat on
// the third consecutive strike.
func (m *Match) ask(ctx context.Context, playerID string, p handler.Prompt) handler.Choice {
	w := m.agents[playerID]
	if w.Forfeited {
		return handler.Choice{}
	}
	v := view.Build(m.Game, playerID)
	choice, err := w.Ask(ctx, v, p)
	if err != nil {
		pl := m.Game.Player(playerID)
		pl.Forfeited = true
		pl.TurnsRemaining = 0
		pl.LastError = err.Error()
		remaining := m.Game.ActivePlayersRemaining()
		m.notify(func(o observer.Observer) {
			o.OnPlayerForfeited(observer.PlayerForfeitedEvent{MatchID: m.Game.MatchID, PlayerID: playerID, Reason: err.Error(), RemainingPlayers: remaining})
		})
		if remaining <= 1 {
			m.gameEnded = true
		}
		return handler.Choice{}
	}
	return choice
}

func (m *Match) notify(fn func(observer.Observer)) {
	for _, o := range m.observers {
		fn(o)
	}
}

// RunMatch plays the match to completion and returns final scores.
func (m *Match) RunMatch(ctx context.Context) (map[string]int, error) {
	if err := m.setup(ctx); err != nil {
		return nil, err
	}
	m.notify(func(o observer.Observer) {
		o.OnMatchStarted(observer.MatchStartedEvent{MatchID: m.Game.MatchID, PlayerIDs: playerIDs(m.Game), Seed: m.Game.Seed})
	})

	for round := 1; round <= 4; round++ {
		if err := m.runRound(ctx, round); err != nil {
			return nil, err
		}
		if m.gameEnded || m.Game.ActivePlayersRemaining() <= 1 {
			break
		}
	}

	totals := FinalScore(m.Game, m.roundGoalTotals)
	winner := Winner(m.Game, totals)
	m.notify(func(o observer.Observer) {
		o.OnMatchEnded(observer.MatchEndedEvent{MatchID: m.Game.MatchID, FinalScores: totals, WinnerID: winner})
	})
	return totals, nil
}

func playerIDs(g *state.Game) []string {
	out := make([]string, len(g.Players))
	for i, p := range g.Players {
		out[i] = p.ID
	}
	return out
}

// setup deals each player's starting hand and bonus cards, then asks each
// which bonus cards to keep; every dealt bird card stays in hand.
func (m *Match) setup(ctx context.Context) error {
	for _, p := range m.Game.Players {
		hand := m.Game.Supply.DrawFromDeck(StartingHandSize)
		p.Hand = append(p.Hand, hand...)
		bonus := m.Game.BonusDeck.Draw(StartingBonusCards)

		choice := m.ask(ctx, p.ID, handler.BonusCardKeepPrompt{
			PlayerID:    p.ID,
			RevealedIDs: bonus,
			KeepCount:   KeptBonusCards,
		})
		kept := make(map[string]bool, len(choice.CardIDs))
		for _, id := range choice.CardIDs {
			kept[id] = true
		}
		var discard []string
		for _, id := range bonus {
			if kept[id] {
				p.BonusCards = append(p.BonusCards, id)
			} else {
				discard = append(discard, id)
			}
		}
		m.Game.BonusDeck.DiscardCards(discard)
	}
	m.Game.Supply.RefillTray()
	return nil
}

// runRound resets each active player's turn allowance, plays every turn in
// the round, resolves end-of-round deferrals, and scores the round goal.
func (m *Match) runRound(ctx context.Context, round int) error {
	m.Game.Round = round
	allowance := state.TurnsPerRound[round-1]
	for _, p := range m.Game.Players {
		if !p.Forfeited {
			p.TurnsRemaining = allowance
		}
	}
	m.notify(func(o observer.Observer) {
		o.OnRoundStarted(observer.RoundStartedEvent{MatchID: m.Game.MatchID, Round: round, GoalKind: string(m.Game.RoundGoals[round-1])})
	})

	for m.anyTurnsRemaining() {
		if m.gameEnded {
			break
		}
		if err := m.runTurn(ctx); err != nil {
			return err
		}
		if m.gameEnded {
			break
		}
		if !m.Game.AdvanceActivePlayer() {
			break
		}
	}

	for _, p := range m.Game.Players {
		for _, d := range m.Game.PopDeferredFor(p.ID, state.DeferEndOfRound) {
			_ = m.resumeDeferred(ctx, d)
		}
	}

	points := state.ScoreRoundGoal(m.Game.RoundGoals[round-1], m.Game.Players)
	for id, n := range points {
		m.roundGoalTotals[id] += n
	}
	m.notify(func(o observer.Observer) {
		o.OnRoundEnded(observer.RoundEndedEvent{MatchID: m.Game.MatchID, Round: round, GoalPoints: points})
	})
	return nil
}

func (m *Match) anyTurnsRemaining() bool {
	for _, p := range m.Game.Players {
		if !p.Forfeited && p.TurnsRemaining > 0 {
			return true
		}
	}
	return false
}

// runTurn resolves the active player's single turn action, including any
// triggered brown/pink powers, then the turn's own deferred obligations.
func (m *Match) runTurn(ctx context.Context) error {
	p := m.Game.ActivePlayer()
	if p.Forfeited || p.TurnsRemaining == 0 {
		return nil
	}

	m.notify(func(o observer.Observer) {
		o.OnTurnStarted(observer.TurnStartedEvent{MatchID: m.Game.MatchID, Round: m.Game.Round, PlayerID: p.ID})
	})

	choice := m.ask(ctx, p.ID, handler.TurnActionPrompt{PlayerID: p.ID})
	if p.Forfeited {
		return nil
	}

	var fn handler.Func
	switch choice.ActionKind {
	case handler.ActionPlayBird:
		fn = powers.PlayBird
	case handler.ActionGainFood:
		fn = powers.GainFood
	case handler.ActionLayEggs:
		fn = powers.LayEggs
	case handler.ActionDrawCards:
		fn = powers.DrawCards
	default:
		fn = powers.GainFood
	}

	hctx := handler.NewContext(p.ID, m.Game)
	hctx.SetWantsBonus(choice.TakeBonus)
	var playedHabitat state.Habitat
	if err := m.Processor.Run(hctx, fn,
		func(hc *handler.Context, pr handler.Prompt) handler.Choice { return m.ask(ctx, hc.PlayerID(), pr) },
		func(hc *handler.Context, ev handler.Event) { m.dispatchPink(ctx, ev) },
		func(hc *handler.Context, eff effects.Effect) error {
			if pb, ok := eff.(effects.PlayBird); ok {
				playedHabitat = pb.Habitat
			}
			return m.onRepeatBrownPower(ctx, eff)
		},
	); err != nil {
		return err
	}
	if m.gameEnded {
		return nil
	}

	switch choice.ActionKind {
	case handler.ActionPlayBird:
		if playedHabitat == "" {
			break
		}
		if inst, _, _, found := p.Board.FindInstance(lastPlacedInstance(p, playedHabitat)); found {
			if err := m.activateWhenPlayed(ctx, p.ID, inst.ID, inst.CardID); err != nil {
				return err
			}
		}
	case handler.ActionGainFood:
		if err := m.activateHabitat(ctx, p.ID, state.HabitatForest, 0); err != nil {
			return err
		}
	case handler.ActionLayEggs:
		if err := m.activateHabitat(ctx, p.ID, state.HabitatGrassland, 0); err != nil {
			return err
		}
	case handler.ActionDrawCards:
		if err := m.activateHabitat(ctx, p.ID, state.HabitatWetland, 0); err != nil {
			return err
		}
	}

	for _, d := range m.Game.PopDeferredFor(p.ID, state.DeferEndOfTurn) {
		if err := m.resumeDeferred(ctx, d); err != nil {
			return err
		}
	}

	p.TurnsRemaining--
	m.Game.TurnSeq++
	m.notify(func(o observer.Observer) {
		o.OnTurnEnded(observer.TurnEndedEvent{MatchID: m.Game.MatchID, Round: m.Game.Round, PlayerID: p.ID, ActionKind: string(choice.ActionKind), BonusApplied: hctx.BonusApplied()})
	})
	return nil
}

// lastPlacedInstance returns the instance id of the rightmost occupied
// slot in habitat — always the bird just placed there, since placement is
// always leftmost-empty and nothing is ever removed.
func lastPlacedInstance(p *state.Player, habitat state.Habitat) string {
	row := p.Board.Row(habitat)
	for i := len(row.Slots) - 1; i >= 0; i-- {
		if row.Slots[i] != nil {
			return row.Slots[i].ID
		}
	}
	return ""
}

// resumeDeferred resumes a deferred continuation by building and running
// its named handler (registered in the powers registry just like any other
// power handler).
func (m *Match) resumeDeferred(ctx context.Context, d state.DeferredContinuation) error {
	return m.runHandler(ctx, d.PlayerID, d.HandlerID, "", d.Params)
}
