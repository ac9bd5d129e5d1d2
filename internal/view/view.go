// Package view builds the redacted, player-facing projection of a match:
// everything an agent or a human renderer is allowed to see, and nothing
// more (opponents' hand contents and deck order stay hidden).
package view

import "github.com/aviary-games/wingspan-engine/internal/state"

// PlayerSummary is what every player can see about any player's board,
// including their own.
type PlayerSummary struct {
	ID             string
	Board          *state.Board
	Food           map[state.FoodType]int
	HandSize       int
	BonusCardCount int
	TurnsRemaining int
	Forfeited      bool
}

// View is the full redacted projection handed to one player's agent (and to
// terminal/narrative observers, who also only see what an agent would).
type View struct {
	MatchID        string
	Round          int
	RoundGoals     [4]state.RoundGoalKind
	Feeder         []state.DieFace
	VisibleTray    []string
	DeckSize       int
	BonusDeckSize  int
	Self           PlayerSummary
	SelfHand       []string
	SelfBonusCards []string
	Opponents      []PlayerSummary
	ActivePlayerID string
}

// Build constructs the view for playerID. It takes no lock; the
// orchestrator calls it from the goroutine that currently owns the match
// state.
func Build(g *state.Game, playerID string) View {
	self := g.Player(playerID)
	v := View{
		MatchID:       g.MatchID,
		Round:         g.Round,
		RoundGoals:    g.RoundGoals,
		Feeder:        append([]state.DieFace(nil), g.Feeder.Dice...),
		VisibleTray:   g.Supply.VisibleTray(),
		DeckSize:      len(g.Supply.Deck),
		BonusDeckSize: len(g.BonusDeck.Deck),
		Self:          summarize(self),
		SelfHand:      append([]string(nil), self.Hand...),
		SelfBonusCards: append([]string(nil), self.BonusCards...),
		ActivePlayerID: g.ActivePlayer().ID,
	}
	for _, p := range g.Players {
		if p.ID == playerID {
			continue
		}
		v.Opponents = append(v.Opponents, summarize(p))
	}
	return v
}

func summarize(p *state.Player) PlayerSummary {
	return PlayerSummary{
		ID:             p.ID,
		Board:          p.Board,
		Food:           copyFood(p.Food),
		HandSize:       len(p.Hand),
		BonusCardCount: len(p.BonusCards),
		TurnsRemaining: p.TurnsRemaining,
		Forfeited:      p.Forfeited,
	}
}

func copyFood(f map[state.FoodType]int) map[state.FoodType]int {
	out := make(map[state.FoodType]int, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
