package orchestrator

import (
	"context"

	"github.com/aviary-games/wingspan-engine/internal/agent"
	"github.com/aviary-games/wingspan-engine/internal/apperrors"
	"github.com/aviary-games/wingspan-engine/internal/handler"
	"github.com/aviary-games/wingspan-engine/internal/validate"
	"github.com/aviary-games/wingspan-engine/internal/view"
)

// MaxStrikes is how many consecutive invalid responses (agent errors or
// validation rejections) a seat tolerates before being forfeited.
const MaxStrikes = 3

// AgentWrapper enforces the three-strike policy around one seat's Agent:
// every Decide response is validated, an agent error or a rejected choice
// counts as a strike, and three strikes in a row forfeits the seat. A
// valid response resets the counter.
type AgentWrapper struct {
	Underlying agent.Agent
	strikes    int
	Forfeited  bool
}

// NewAgentWrapper wraps a.
func NewAgentWrapper(a agent.Agent) *AgentWrapper {
	return &AgentWrapper{Underlying: a}
}

// Ask drives a's Decide, reprompting the same prompt on a recoverable
// strike, until a valid Choice is produced or the seat is forfeited. The
// returned error, when non-nil, is always the forfeiting strike's cause.
func (w *AgentWrapper) Ask(ctx context.Context, v view.View, p handler.Prompt) (handler.Choice, error) {
	for {
		choice, err := w.Underlying.Decide(ctx, v, p)
		if err != nil {
			if w.strike() {
				return handler.Choice{}, &apperrors.AgentFailure{PlayerID: w.Underlying.ID(), Reason: err.Error()}
			}
			continue
		}
		if verr := validate.Choice(p, choice); verr != nil {
			if w.strike() {
				return handler.Choice{}, verr
			}
			continue
		}
		w.strikes = 0
		return choice, nil
	}
}

// strike records one failure and reports whether it forfeits the seat.
func (w *AgentWrapper) strike() bool {
	w.strikes++
	if w.strikes >= MaxStrikes {
		w.Forfeited = true
		return true
	}
	return false
}
