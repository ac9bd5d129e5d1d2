package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/aviary-games/wingspan-engine/internal/handler"
	"github.com/aviary-games/wingspan-engine/internal/view"
)

// remoteRequest is the wire envelope sent to a remote agent for every
// prompt; remoteResponse is what it must reply with.
type remoteRequest struct {
	PromptKind string          `json:"promptKind"`
	Prompt     json.RawMessage `json:"prompt"`
	View       view.View       `json:"view"`
}

type remoteResponse struct {
	Choice handler.Choice `json:"choice"`
}

// RemoteAgent drives a human or an external bot over a websocket
// connection, one prompt/choice round trip per Decide call. Each call has
// a fixed timeout; a missed deadline surfaces as an AgentFailure the same
// way an invalid choice does.
type RemoteAgent struct {
	id      string
	conn    *websocket.Conn
	timeout time.Duration
}

// NewRemoteAgent wraps an already-established websocket connection.
func NewRemoteAgent(id string, conn *websocket.Conn, timeout time.Duration) *RemoteAgent {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RemoteAgent{id: id, conn: conn, timeout: timeout}
}

// ID implements Agent.
func (a *RemoteAgent) ID() string { return a.id }

// Decide implements Agent: marshals the prompt and view, sends it, and
// waits (up to timeout or ctx cancellation) for a JSON choice in reply.
func (a *RemoteAgent) Decide(ctx context.Context, v view.View, p handler.Prompt) (handler.Choice, error) {
	deadline := time.Now().Add(a.timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	if err := a.conn.SetWriteDeadline(deadline); err != nil {
		return handler.Choice{}, fmt.Errorf("remote agent %s: set write deadline: %w", a.id, err)
	}

	promptJSON, err := json.Marshal(p)
	if err != nil {
		return handler.Choice{}, fmt.Errorf("remote agent %s: marshal prompt: %w", a.id, err)
	}
	req := remoteRequest{PromptKind: string(p.Kind()), Prompt: promptJSON, View: v}
	if err := a.conn.WriteJSON(req); err != nil {
		return handler.Choice{}, fmt.Errorf("remote agent %s: send prompt: %w", a.id, err)
	}

	if err := a.conn.SetReadDeadline(deadline); err != nil {
		return handler.Choice{}, fmt.Errorf("remote agent %s: set read deadline: %w", a.id, err)
	}
	var resp remoteResponse
	if err := a.conn.ReadJSON(&resp); err != nil {
		return handler.Choice{}, fmt.Errorf("remote agent %s: read choice: %w", a.id, err)
	}
	return resp.Choice, nil
}

// Close releases the underlying connection.
func (a *RemoteAgent) Close() error {
	return a.conn.Close()
}
