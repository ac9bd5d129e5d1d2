// Package agent defines the decision-making interface a match's seats are
// bound to, and the concrete implementations that drive it: a seeded
// random agent, a scripted replay agent, and a websocket-backed remote
// agent for a human or external bot.
package agent

import (
	"context"

	"github.com/aviary-games/wingspan-engine/internal/handler"
	"github.com/aviary-games/wingspan-engine/internal/view"
)

// Agent answers every Prompt the engine yields on behalf of one seat. A
// non-nil error is treated as an AgentFailure by the orchestrator and
// counts toward that seat's three-strike forfeit policy, same as a
// validation rejection.
type Agent interface {
	ID() string
	Decide(ctx context.Context, v view.View, p handler.Prompt) (handler.Choice, error)
}
