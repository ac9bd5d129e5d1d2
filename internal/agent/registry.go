package agent

import "fmt"

// Kind names a constructible agent implementation, as selected on the
// command line.
type Kind string

const (
	KindRandom   Kind = "random"
	KindScripted Kind = "scripted"
)

// NewBySpec builds a local (non-remote) agent by kind. Remote agents are
// constructed separately once their websocket connection is accepted.
func NewBySpec(kind Kind, id string, seed int64, scriptPath string) (Agent, error) {
	switch kind {
	case KindRandom:
		return NewRandomAgent(id, seed), nil
	case KindScripted:
		script, err := LoadScript(scriptPath)
		if err != nil {
			return nil, fmt.Errorf("load script for agent %s: %w", id, err)
		}
		return NewScriptedAgent(id, script), nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", kind)
	}
}
