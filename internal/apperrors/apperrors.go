// Package apperrors defines the engine's error taxonomy (spec §7).
package apperrors

import "fmt"

// InvariantViolation indicates a bug in a handler or validator: applying an
// effect would break a model invariant. Fatal to the match.
type InvariantViolation struct {
	MatchID string
	Detail  string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation in match %s: %s", e.MatchID, e.Detail)
}

// ValidationRejection indicates an agent choice failed a prompt's
// constraints. Recovered locally via reprompt; escalates to forfeit after
// three rejections.
type ValidationRejection struct {
	PromptKind string
	Reason     string
}

func (e *ValidationRejection) Error() string {
	return fmt.Sprintf("choice rejected for prompt %s: %s", e.PromptKind, e.Reason)
}

// AgentFailure indicates a timeout, panic, or missing response from an
// agent. Travels the same path as ValidationRejection.
type AgentFailure struct {
	PlayerID string
	Reason   string
}

func (e *AgentFailure) Error() string {
	return fmt.Sprintf("agent failure for player %s: %s", e.PlayerID, e.Reason)
}

// PreconditionUnmet is normal control flow: a handler's precondition did
// not hold, so it declined without prompting.
type PreconditionUnmet struct {
	HandlerID string
	Reason    string
}

func (e *PreconditionUnmet) Error() string {
	return fmt.Sprintf("precondition unmet for handler %s: %s", e.HandlerID, e.Reason)
}

// UnknownEffect is a programmer error: an effect type the applier does not
// recognize. Logged and ignored, never fatal.
type UnknownEffect struct {
	Kind string
}

func (e *UnknownEffect) Error() string {
	return fmt.Sprintf("unknown effect type: %s", e.Kind)
}
