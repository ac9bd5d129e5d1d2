package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreRoundGoalNoTies(t *testing.T) {
	p1 := NewPlayer("p1")
	p1.Board.Row(HabitatForest).Slots[0] = newBirdInstance("p1#1", "x")
	p1.Board.Row(HabitatForest).Slots[1] = newBirdInstance("p1#2", "x")

	p2 := NewPlayer("p2")
	p2.Board.Row(HabitatForest).Slots[0] = newBirdInstance("p2#1", "x")

	points := ScoreRoundGoal(GoalMostBirdsForest, []*Player{p1, p2})
	assert.Equal(t, 4, points["p1"])
	assert.Equal(t, 3, points["p2"])
}

func TestScoreRoundGoalTieSharesPoints(t *testing.T) {
	p1 := NewPlayer("p1")
	p1.Board.Row(HabitatForest).Slots[0] = newBirdInstance("p1#1", "x")
	p2 := NewPlayer("p2")
	p2.Board.Row(HabitatForest).Slots[0] = newBirdInstance("p2#1", "x")
	p3 := NewPlayer("p3")

	points := ScoreRoundGoal(GoalMostBirdsForest, []*Player{p1, p2, p3})
	assert.Equal(t, 3, points["p1"]) // (4+3)/2
	assert.Equal(t, 3, points["p2"])
	assert.Equal(t, 0, points["p3"])
}

func TestMeasureMostEggs(t *testing.T) {
	p := NewPlayer("p1")
	inst := newBirdInstance("p1#1", "x")
	inst.Eggs = 3
	p.Board.Row(HabitatWetland).Slots[0] = inst
	assert.Equal(t, 3, GoalMostEggs.Measure(p))
}
