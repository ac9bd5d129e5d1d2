package orchestrator

import "github.com/aviary-games/wingspan-engine/internal/state"

// FinalScore computes each player's total victory points: bird card VP,
// cached food, eggs, tucked cards, bonus card scoring, and accumulated
// round-goal points.
func FinalScore(g *state.Game, roundGoalPoints map[string]int) map[string]int {
	totals := make(map[string]int, len(g.Players))
	for _, p := range g.Players {
		total := roundGoalPoints[p.ID]
		for _, b := range p.Board.AllBirds() {
			card, err := g.Registry.Card(b.CardID)
			if err != nil {
				continue
			}
			total += card.VictoryPoints
			total += b.Eggs
			total += b.TotalCachedFood()
			total += len(b.TuckedCards)
		}
		for _, bonusID := range p.BonusCards {
			bonus, err := g.Registry.BonusCard(bonusID)
			if err != nil {
				continue
			}
			total += bonus.Score(qualifyingBirdCount(g, p, bonus.Qualifier))
		}
		totals[p.ID] = total
	}
	return totals
}

// qualifyingBirdCount counts how many of p's placed birds satisfy q, either
// by membership in an explicit bird list or by a named runtime predicate.
func qualifyingBirdCount(g *state.Game, p *state.Player, q state.BonusQualifier) int {
	if len(q.BirdList) > 0 {
		want := make(map[string]bool, len(q.BirdList))
		for _, id := range q.BirdList {
			want[id] = true
		}
		n := 0
		for _, b := range p.Board.AllBirds() {
			if want[b.CardID] {
				n++
			}
		}
		return n
	}
	switch q.Predicate {
	case state.PredicateEggsAtLeast4:
		return countBirdsWhere(p, func(b *state.BirdInstance) bool { return b.Eggs >= 4 })
	case state.PredicateEggsAtLeast1:
		return countBirdsWhere(p, func(b *state.BirdInstance) bool { return b.Eggs >= 1 })
	case state.PredicateHandSize:
		return len(p.Hand)
	case state.PredicateSmallestHabitat:
		return p.Board.SmallestHabitatCount()
	default:
		return 0
	}
}

func countBirdsWhere(p *state.Player, pred func(*state.BirdInstance) bool) int {
	n := 0
	for _, b := range p.Board.AllBirds() {
		if pred(b) {
			n++
		}
	}
	return n
}

// Winner returns the player id with the highest total, breaking ties by
// earliest turn-order position (the teacher's convention for deterministic
// tie resolution, same as its final_score/awards grouping).
func Winner(g *state.Game, totals map[string]int) string {
	best := ""
	bestScore := -1
	for _, p := range g.Players {
		if t := totals[p.ID]; t > bestScore {
			best = p.ID
			bestScore = t
		}
	}
	return best
}
