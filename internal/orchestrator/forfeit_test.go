package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aviary-games/wingspan-engine/internal/agent"
	"github.com/aviary-games/wingspan-engine/internal/handler"
	"github.com/aviary-games/wingspan-engine/internal/observer"
	"github.com/aviary-games/wingspan-engine/internal/view"
)

// recordingObserver captures only the forfeit events it receives; every
// other Observer method is a no-op, matching how narrative/terminal each
// only care about a subset of the event stream.
type recordingObserver struct {
	forfeits []observer.PlayerForfeitedEvent
}

func (r *recordingObserver) OnMatchStarted(observer.MatchStartedEvent)       {}
func (r *recordingObserver) OnRoundStarted(observer.RoundStartedEvent)       {}
func (r *recordingObserver) OnTurnStarted(observer.TurnStartedEvent)         {}
func (r *recordingObserver) OnTurnEnded(observer.TurnEndedEvent)             {}
func (r *recordingObserver) OnRoundEnded(observer.RoundEndedEvent)           {}
func (r *recordingObserver) OnMatchEnded(observer.MatchEndedEvent)           {}
func (r *recordingObserver) OnPlayerForfeited(e observer.PlayerForfeitedEvent) {
	r.forfeits = append(r.forfeits, e)
}

// alwaysFailAgent answers every prompt with an error, guaranteeing a
// three-strike forfeit on its very first Ask.
type alwaysFailAgent struct{ id string }

func (a *alwaysFailAgent) ID() string { return a.id }
func (a *alwaysFailAgent) Decide(context.Context, view.View, handler.Prompt) (handler.Choice, error) {
	return handler.Choice{}, errors.New("boom")
}

// TestForfeitInTwoPlayerMatchEndsGameImmediately covers spec scenario 5: in
// a 2-player match, forfeiting one seat leaves at most one non-forfeited
// player, so the match must end right away rather than playing out the
// remaining rounds with the forfeited seat skipped.
func TestForfeitInTwoPlayerMatchEndsGameImmediately(t *testing.T) {
	reg := buildTestRegistry(10)
	agents := map[string]agent.Agent{
		"p1": &alwaysFailAgent{id: "p1"},
		"p2": agent.NewRandomAgent("p2", 99),
	}
	rec := &recordingObserver{}
	match, err := NewMatch("m1", 3, reg, []string{"p1", "p2"}, agents, []observer.Observer{rec}, zap.NewNop())
	require.NoError(t, err)

	// A single Ask already exhausts the three-strike policy internally.
	match.ask(context.Background(), "p1", handler.TurnActionPrompt{PlayerID: "p1"})

	p1 := match.Game.Player("p1")
	assert.True(t, p1.Forfeited)
	assert.Equal(t, 0, p1.TurnsRemaining, "forfeited seat's remaining turns are zeroed")
	assert.True(t, match.gameEnded, "with only p2 left, the match must end immediately")
	assert.Equal(t, 1, match.Game.ActivePlayersRemaining())

	require.Len(t, rec.forfeits, 1)
	assert.Equal(t, 1, rec.forfeits[0].RemainingPlayers)
}
