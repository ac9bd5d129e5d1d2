package handler

import (
	"github.com/aviary-games/wingspan-engine/internal/effects"
	"github.com/aviary-games/wingspan-engine/internal/state"
)

// StepKind discriminates the four yield variants a handler goroutine can
// suspend on. StepDone is declared but never sent: the processor learns
// that the handler function returned from a separate completion channel.
type StepKind string

const (
	StepEffect   StepKind = "effect"
	StepPrompt   StepKind = "prompt"
	StepEvent    StepKind = "event"
	StepDeferral StepKind = "deferral"
	StepDone     StepKind = "done"
)

// Step is one suspension point of a running handler.
type Step struct {
	Kind     StepKind
	Effect   effects.Effect
	Prompt   Prompt
	Event    Event
	Deferral state.DeferredContinuation
	Err      error
}

// ResumeValue carries the processor's answer back into a suspended
// handler. Choice is meaningful only after a StepPrompt; Effect only after
// a StepEffect (the applied, result-populated effect).
type ResumeValue struct {
	Choice Choice
	Effect effects.Effect
}
