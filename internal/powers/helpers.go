// Package powers implements bird card power handlers (brown, pink, white)
// and the four top-level turn actions, all as handler.Func bodies driven
// by a handler.Processor.
package powers

import "github.com/aviary-games/wingspan-engine/internal/state"

// CanPayFoodCost reports whether p currently holds enough food to pay cost.
func CanPayFoodCost(p *state.Player, cost state.FoodCost) bool {
	if cost.IsFree() {
		return true
	}
	switch cost.Mode {
	case state.FoodCostOr:
		for _, item := range cost.Items {
			if affordItem(p, item) {
				return true
			}
		}
		return false
	default: // FoodCostAnd
		for _, item := range cost.Items {
			if !affordItem(p, item) {
				return false
			}
		}
		return true
	}
}

func affordItem(p *state.Player, item state.FoodCostItem) bool {
	if item.Type == state.FoodWild {
		return p.TotalFood() >= item.Count
	}
	return p.Food[item.Type] >= item.Count
}

// EligibleHabitats returns the habitats card can be played into given p's
// current board occupancy (room in the row) and the card's allowed
// habitats.
func EligibleHabitats(p *state.Player, card *state.CardDefinition) []state.Habitat {
	var out []state.Habitat
	for _, h := range state.Habitats {
		if !card.AllowsHabitat(h) {
			continue
		}
		if p.Board.Row(h).LeftmostEmpty() < 0 {
			continue
		}
		out = append(out, h)
	}
	return out
}

// PlayableCardIDs returns every hand card p can afford and place somewhere.
func PlayableCardIDs(g *state.Game, p *state.Player) []string {
	var out []string
	for _, cardID := range p.Hand {
		card, err := g.Registry.Card(cardID)
		if err != nil {
			continue
		}
		if !CanPayFoodCost(p, card.FoodCost) {
			continue
		}
		if len(EligibleHabitats(p, card)) == 0 {
			continue
		}
		out = append(out, cardID)
	}
	return out
}

// EligibleEggInstances returns bird instance ids on p's board with room for
// another egg.
func EligibleEggInstances(g *state.Game, p *state.Player) []string {
	var out []string
	for _, b := range p.Board.AllBirds() {
		card, err := g.Registry.Card(b.CardID)
		if err != nil {
			continue
		}
		if b.Eggs < card.EggCapacity {
			out = append(out, b.ID)
		}
	}
	return out
}

// CheapestFoodPayment greedily picks a food payment plan for cost from p's
// current balance, preferring non-wild matches. Returns nil if cost cannot
// be paid (caller should have checked CanPayFoodCost first).
func CheapestFoodPayment(p *state.Player, cost state.FoodCost) map[state.FoodType]int {
	if cost.IsFree() {
		return nil
	}
	plan := make(map[state.FoodType]int)
	if cost.Mode == state.FoodCostOr {
		for _, item := range cost.Items {
			if affordItem(p, item) {
				if item.Type == state.FoodWild {
					remaining := item.Count
					for _, ft := range state.FoodTypes {
						take := min(remaining, p.Food[ft])
						if take > 0 {
							plan[ft] += take
							remaining -= take
						}
					}
				} else {
					plan[item.Type] = item.Count
				}
				return plan
			}
		}
		return nil
	}
	for _, item := range cost.Items {
		if item.Type == state.FoodWild {
			remaining := item.Count
			for _, ft := range state.FoodTypes {
				take := min(remaining, p.Food[ft]-plan[ft])
				if take > 0 {
					plan[ft] += take
					remaining -= take
				}
			}
		} else {
			plan[item.Type] += item.Count
		}
	}
	return plan
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
