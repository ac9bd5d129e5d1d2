package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviary-games/wingspan-engine/internal/state"
)

func newTestGame(t *testing.T) *state.Game {
	t.Helper()
	reg := state.NewRegistry()
	reg.Cards["blue-jay"] = &state.CardDefinition{
		ID:          "blue-jay",
		Habitats:    []state.Habitat{state.HabitatForest},
		EggCapacity: 3,
	}
	reg.CardOrder = append(reg.CardOrder, "blue-jay")
	for _, id := range []string{"x1", "x2", "x3"} {
		reg.Cards[id] = &state.CardDefinition{ID: id, Habitats: []state.Habitat{state.HabitatForest}, EggCapacity: 2}
		reg.CardOrder = append(reg.CardOrder, id)
	}
	g := state.NewGame("m1", 1, reg, []string{"p1", "p2"})
	return g
}

func newTestApplier(g *state.Game) *Applier {
	return NewApplier().WithGame(g).WithEventLog(NewEventLog())
}

func TestApplyGainFoodFromFeeder(t *testing.T) {
	g := newTestGame(t)
	g.Feeder.Dice = []state.DieFace{state.DieSeed}
	a := newTestApplier(g)

	_, err := a.Apply("p1", GainFood{PlayerID: "p1", FoodType: state.FoodSeed, Count: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, g.Player("p1").Food[state.FoodSeed])
	assert.Empty(t, g.Feeder.Dice, "the matching die is removed from the feeder")
}

func TestApplyPlayBirdMovesCardAndPaysFood(t *testing.T) {
	g := newTestGame(t)
	p := g.Player("p1")
	p.Hand = []string{"blue-jay"}
	p.Food[state.FoodSeed] = 2
	a := newTestApplier(g)

	_, err := a.Apply("p1", PlayBird{
		PlayerID: "p1",
		CardID:   "blue-jay",
		Habitat:  state.HabitatForest,
		FoodPaid: map[state.FoodType]int{state.FoodSeed: 1},
	})
	require.NoError(t, err)

	assert.False(t, p.HasCardInHand("blue-jay"))
	assert.Equal(t, 1, p.Food[state.FoodSeed])
	birds := p.Board.AllBirds()
	require.Len(t, birds, 1)
	assert.Equal(t, "blue-jay", birds[0].CardID)
}

func TestApplyGainFoodRemovesAllMatchingDice(t *testing.T) {
	g := newTestGame(t)
	g.Feeder.Dice = []state.DieFace{state.DieSeed, state.DieSeed, state.DieSeedOrInvertebrate, state.DieFish, state.DieFruit}
	a := newTestApplier(g)

	_, err := a.Apply("p1", GainFood{PlayerID: "p1", FoodType: state.FoodSeed, Count: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Player("p1").Food[state.FoodSeed])
	assert.ElementsMatch(t, []state.DieFace{state.DieFish, state.DieFruit}, g.Feeder.Dice)
}

func TestApplyGainFoodStopsWhenFeederRunsShort(t *testing.T) {
	g := newTestGame(t)
	g.Feeder.Dice = []state.DieFace{state.DieSeed, state.DieFish}
	a := newTestApplier(g)

	_, err := a.Apply("p1", GainFood{PlayerID: "p1", FoodType: state.FoodSeed, Count: 3})
	require.NoError(t, err)

	assert.Equal(t, 1, g.Player("p1").Food[state.FoodSeed], "only the one matching die present is taken")
	assert.Equal(t, []state.DieFace{state.DieFish}, g.Feeder.Dice)
}

func TestApplyGainFoodDieSelectionsResolveDualFaces(t *testing.T) {
	g := newTestGame(t)
	g.Feeder.Dice = []state.DieFace{state.DieSeed, state.DieSeedOrInvertebrate, state.DieFish}
	a := newTestApplier(g)

	_, err := a.Apply("p1", GainFood{PlayerID: "p1", DieSelections: []DieSelection{
		{DieIndex: 0, FoodType: state.FoodSeed},
		{DieIndex: 1, FoodType: state.FoodInvertebrate},
	}})
	require.NoError(t, err)

	p := g.Player("p1")
	assert.Equal(t, 1, p.Food[state.FoodSeed])
	assert.Equal(t, 1, p.Food[state.FoodInvertebrate])
	assert.Equal(t, []state.DieFace{state.DieFish}, g.Feeder.Dice)
}

func TestApplyPlayBirdRejectsInsufficientFood(t *testing.T) {
	g := newTestGame(t)
	p := g.Player("p1")
	p.Hand = []string{"blue-jay"}
	a := newTestApplier(g)

	_, err := a.Apply("p1", PlayBird{
		PlayerID: "p1",
		CardID:   "blue-jay",
		Habitat:  state.HabitatForest,
		FoodPaid: map[state.FoodType]int{state.FoodSeed: 1},
	})
	assert.Error(t, err)
	assert.True(t, p.HasCardInHand("blue-jay"), "rejected play must not remove the card from hand")
}

func TestApplyPlayBirdRejectsInsufficientEggs(t *testing.T) {
	g := newTestGame(t)
	p := g.Player("p1")
	p.Hand = []string{"blue-jay"}
	donor := p.PlaceBird(state.HabitatForest, "x1")
	a := newTestApplier(g)

	_, err := a.Apply("p1", PlayBird{
		PlayerID:     "p1",
		CardID:       "blue-jay",
		Habitat:      state.HabitatForest,
		EggsPaidFrom: []string{donor.ID},
	})
	assert.Error(t, err)
	assert.True(t, p.HasCardInHand("blue-jay"))
	assert.Equal(t, 0, donor.Eggs)
}

func TestApplyPlayBirdRejectsFullHabitatRow(t *testing.T) {
	g := newTestGame(t)
	p := g.Player("p1")
	p.Hand = []string{"blue-jay"}
	for i := 0; i < 5; i++ {
		p.PlaceBird(state.HabitatForest, "x1")
	}
	a := newTestApplier(g)

	_, err := a.Apply("p1", PlayBird{PlayerID: "p1", CardID: "blue-jay", Habitat: state.HabitatForest})
	assert.Error(t, err)
	assert.True(t, p.HasCardInHand("blue-jay"))
}

func TestApplyAllPlayersLayEggsPlacesOnBoard(t *testing.T) {
	g := newTestGame(t)
	p1 := g.Player("p1")
	p2 := g.Player("p2")
	inst1 := p1.PlaceBird(state.HabitatForest, "blue-jay")
	inst2 := p2.PlaceBird(state.HabitatForest, "blue-jay")
	a := newTestApplier(g)

	_, err := a.Apply("p1", AllPlayersLayEggs{Count: 2})
	require.NoError(t, err)

	assert.Equal(t, 2, inst1.Eggs)
	assert.Equal(t, 2, inst2.Eggs)
}

func TestApplyAllPlayersLayEggsExcludesActivePlayer(t *testing.T) {
	g := newTestGame(t)
	p1 := g.Player("p1")
	p2 := g.Player("p2")
	inst1 := p1.PlaceBird(state.HabitatForest, "blue-jay")
	inst2 := p2.PlaceBird(state.HabitatForest, "blue-jay")
	a := newTestApplier(g)

	_, err := a.Apply("p1", AllPlayersLayEggs{Count: 2, ExcludeActive: true})
	require.NoError(t, err)

	assert.Equal(t, 0, inst1.Eggs, "active player's own birds are skipped")
	assert.Equal(t, 2, inst2.Eggs)
}

func TestApplyPlayBirdRejectsWrongHabitat(t *testing.T) {
	g := newTestGame(t)
	p := g.Player("p1")
	p.Hand = []string{"blue-jay"}
	a := newTestApplier(g)

	_, err := a.Apply("p1", PlayBird{PlayerID: "p1", CardID: "blue-jay", Habitat: state.HabitatWetland})
	assert.Error(t, err)
	assert.True(t, p.HasCardInHand("blue-jay"), "rejected play must not remove the card from hand")
}

func TestApplyLayEggsRespectsCapacity(t *testing.T) {
	g := newTestGame(t)
	p := g.Player("p1")
	inst := p.PlaceBird(state.HabitatForest, "blue-jay")
	a := newTestApplier(g)

	_, err := a.Apply("p1", LayEggs{PlayerID: "p1", InstanceID: inst.ID, Count: 5})
	require.NoError(t, err)
	assert.Equal(t, 3, inst.Eggs, "capped at the card's egg capacity")
}

func TestApplyCacheFoodRejectsInsufficientBalance(t *testing.T) {
	g := newTestGame(t)
	p := g.Player("p1")
	inst := p.PlaceBird(state.HabitatForest, "blue-jay")
	a := newTestApplier(g)

	_, err := a.Apply("p1", CacheFood{PlayerID: "p1", InstanceID: inst.ID, FoodType: state.FoodFish, Count: 1})
	assert.Error(t, err)
}

func TestApplyRerollBirdfeederRequiresHomogeneous(t *testing.T) {
	g := newTestGame(t)
	g.Feeder.Dice = []state.DieFace{state.DieSeed, state.DieFish}
	a := newTestApplier(g)

	_, err := a.Apply("p1", RerollBirdfeeder{})
	assert.Error(t, err)
}

func TestEventLogRecordsAppliedEffects(t *testing.T) {
	g := newTestGame(t)
	g.Feeder.Dice = []state.DieFace{state.DieSeed}
	log := NewEventLog()
	a := NewApplier().WithGame(g).WithEventLog(log)

	_, err := a.Apply("p1", GainFood{PlayerID: "p1", FoodType: state.FoodSeed, Count: 1})
	require.NoError(t, err)
	require.Equal(t, 1, log.Len())
	assert.Equal(t, "p1", log.Entries()[0].PlayerID)
}
