package handler

import "github.com/aviary-games/wingspan-engine/internal/effects"

// PromptFunc resolves a Prompt yielded by a running handler into a Choice,
// typically by asking an agent and validating the response.
type PromptFunc func(ctx *Context, p Prompt) Choice

// EventFunc reacts to an Event yielded by a running handler, typically by
// dispatching it to other players' pink-power handlers.
type EventFunc func(ctx *Context, ev Event)

// EffectFunc reacts to an effect the applier has just successfully applied,
// typically to re-dispatch into the power registry for effects (like
// RepeatBrownPower) whose full resolution needs more than a state mutation.
// It is not called when Apply returns an error.
type EffectFunc func(ctx *Context, applied effects.Effect) error

// Processor drives one Func to completion, applying every effect it yields
// through applier and routing prompts/events through the supplied
// callbacks. It is the only place a handler's channel pair is read from.
type Processor struct {
	applier *effects.Applier
}

// NewProcessor builds a processor bound to the applier that performs the
// state mutations a driven handler yields.
func NewProcessor(applier *effects.Applier) *Processor {
	return &Processor{applier: applier}
}

// Run launches fn on its own goroutine and pumps ctx's channel pair until
// fn returns, applying effects, dispatching prompts via onPrompt, and
// dispatching applied effects via onEffect along the way. Events fn yields
// are queued and dispatched via onEvent, in yield order, once fn has
// returned. Deferrals are pushed onto ctx.Game()'s queue directly. Returns
// fn's own error, if any.
func (pr *Processor) Run(ctx *Context, fn Func, onPrompt PromptFunc, onEvent EventFunc, onEffect EffectFunc) error {
	done := make(chan error, 1)
	go func() {
		done <- fn(ctx)
	}()

	var firstEffectErr error
	var pending []Event
	for {
		select {
		case step := <-ctx.out:
			switch step.Kind {
			case StepEffect:
				applied, err := pr.applier.Apply(ctx.playerID, step.Effect)
				if err == nil && onEffect != nil {
					if hookErr := onEffect(ctx, applied); hookErr != nil && firstEffectErr == nil {
						firstEffectErr = hookErr
					}
				}
				if err != nil && firstEffectErr == nil {
					firstEffectErr = err
				}
				ctx.in <- ResumeValue{Effect: applied}
			case StepPrompt:
				choice := onPrompt(ctx, step.Prompt)
				ctx.in <- ResumeValue{Choice: choice}
			case StepEvent:
				pending = append(pending, step.Event)
				ctx.in <- ResumeValue{}
			case StepDeferral:
				ctx.game.PushDeferred(step.Deferral)
				ctx.in <- ResumeValue{}
			}
		case err := <-done:
			for _, ev := range pending {
				onEvent(ctx, ev)
			}
			if firstEffectErr != nil {
				return firstEffectErr
			}
			return err
		}
	}
}
