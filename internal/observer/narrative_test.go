package observer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newRecording() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestNarrativeLoggerEmitsOneLinePerLifecycleEvent(t *testing.T) {
	logger, logs := newRecording()
	n := NewNarrativeLogger(logger)

	n.OnMatchStarted(MatchStartedEvent{MatchID: "m1", PlayerIDs: []string{"p1", "p2"}, Seed: 42})
	n.OnRoundStarted(RoundStartedEvent{MatchID: "m1", Round: 1, GoalKind: "most-eggs"})
	n.OnTurnStarted(TurnStartedEvent{MatchID: "m1", Round: 1, PlayerID: "p1"})
	n.OnTurnEnded(TurnEndedEvent{MatchID: "m1", PlayerID: "p1", ActionKind: "play-bird"})
	n.OnRoundEnded(RoundEndedEvent{MatchID: "m1", Round: 1, GoalPoints: map[string]int{"p1": 4}})
	n.OnPlayerForfeited(PlayerForfeitedEvent{MatchID: "m1", PlayerID: "p2", Reason: "too many invalid choices", RemainingPlayers: 1})
	n.OnMatchEnded(MatchEndedEvent{MatchID: "m1", FinalScores: map[string]int{"p1": 10}, WinnerID: "p1"})

	assert.Equal(t, 7, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "match started")
	assert.Contains(t, logs.All()[5].Message, "forfeited")
}
