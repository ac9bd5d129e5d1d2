package powers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aviary-games/wingspan-engine/internal/state"
)

func TestCanPayFoodCostAnd(t *testing.T) {
	p := state.NewPlayer("p1")
	p.Food[state.FoodSeed] = 1
	p.Food[state.FoodFish] = 1
	cost := state.FoodCost{Mode: state.FoodCostAnd, Items: []state.FoodCostItem{
		{Type: state.FoodSeed, Count: 1}, {Type: state.FoodFish, Count: 1},
	}}
	assert.True(t, CanPayFoodCost(p, cost))

	p.Food[state.FoodFish] = 0
	assert.False(t, CanPayFoodCost(p, cost))
}

func TestCanPayFoodCostOr(t *testing.T) {
	p := state.NewPlayer("p1")
	p.Food[state.FoodSeed] = 1
	cost := state.FoodCost{Mode: state.FoodCostOr, Items: []state.FoodCostItem{
		{Type: state.FoodSeed, Count: 1}, {Type: state.FoodFish, Count: 1},
	}}
	assert.True(t, CanPayFoodCost(p, cost))
}

func TestCanPayFoodCostWild(t *testing.T) {
	p := state.NewPlayer("p1")
	p.Food[state.FoodSeed] = 1
	p.Food[state.FoodFruit] = 1
	cost := state.FoodCost{Mode: state.FoodCostAnd, Items: []state.FoodCostItem{{Type: state.FoodWild, Count: 2}}}
	assert.True(t, CanPayFoodCost(p, cost))
}

func TestEligibleHabitatsExcludesFullRows(t *testing.T) {
	p := state.NewPlayer("p1")
	row := p.Board.Row(state.HabitatForest)
	for i := range row.Slots {
		row.Slots[i] = &state.BirdInstance{ID: "x", CardID: "x", CachedFood: map[state.FoodType]int{}}
	}
	card := &state.CardDefinition{Habitats: []state.Habitat{state.HabitatForest, state.HabitatGrassland}}
	got := EligibleHabitats(p, card)
	assert.ElementsMatch(t, []state.Habitat{state.HabitatGrassland}, got)
}

func TestCheapestFoodPaymentPrefersExactMatch(t *testing.T) {
	p := state.NewPlayer("p1")
	p.Food[state.FoodSeed] = 2
	cost := state.FoodCost{Mode: state.FoodCostAnd, Items: []state.FoodCostItem{{Type: state.FoodSeed, Count: 2}}}
	plan := CheapestFoodPayment(p, cost)
	assert.Equal(t, 2, plan[state.FoodSeed])
}
