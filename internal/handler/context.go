package handler

import (
	"github.com/aviary-games/wingspan-engine/internal/effects"
	"github.com/aviary-games/wingspan-engine/internal/state"
)

// Func is a power or turn-action handler body. It runs on its own
// goroutine, driven entirely by Context's Yield* methods; it never touches
// channels directly. Go has no native generator/coroutine syntax, so this
// goroutine-plus-channel pair is this engine's realization of the
// suspend/resume contract every handler implements.
type Func func(ctx *Context) error

// Context is the handle a running Func uses to suspend itself and to read
// (never mutate directly) the match state it is deciding against. Every
// Yield* call blocks the handler's goroutine until the Processor driving it
// delivers a ResumeValue.
type Context struct {
	playerID string
	game     *state.Game

	out chan Step
	in  chan ResumeValue

	wantsBonus   bool
	bonusApplied bool
}

// NewContext builds a suspension channel pair for one handler invocation.
func NewContext(playerID string, g *state.Game) *Context {
	return &Context{
		playerID: playerID,
		game:     g,
		out:      make(chan Step),
		in:       make(chan ResumeValue),
	}
}

// PlayerID is the player this handler invocation runs on behalf of.
func (c *Context) PlayerID() string { return c.playerID }

// Game gives read access to match state for handler decision-making; the
// handler must route every mutation through a Yield call instead of
// writing through this reference.
func (c *Context) Game() *state.Game { return c.game }

// YieldEffect suspends until the processor has applied eff, and returns the
// effect as actually applied (result fields such as GainFood.Gained or
// DrawCards.DrawnCardIDs populated) so the handler can act on the true
// outcome rather than the request it yielded.
func (c *Context) YieldEffect(eff effects.Effect) effects.Effect {
	c.out <- Step{Kind: StepEffect, Effect: eff}
	return (<-c.in).Effect
}

// SetWantsBonus records whether the acting player opted into this turn
// action's one-per-action bonus conversion, read by GainFood/LayEggs/
// DrawCards via WantsBonus.
func (c *Context) SetWantsBonus(want bool) { c.wantsBonus = want }

// WantsBonus reports the value set by SetWantsBonus.
func (c *Context) WantsBonus() bool { return c.wantsBonus }

// MarkBonusApplied records that this handler's bonus conversion actually
// happened (as opposed to being requested but silently skipped for lack of
// the needed resource), surfaced to the orchestrator via BonusApplied.
func (c *Context) MarkBonusApplied() { c.bonusApplied = true }

// BonusApplied reports whether MarkBonusApplied was called during this
// handler's run.
func (c *Context) BonusApplied() bool { return c.bonusApplied }

// YieldPrompt suspends until the processor has obtained and returned an
// agent's Choice for p.
func (c *Context) YieldPrompt(p Prompt) Choice {
	c.out <- Step{Kind: StepPrompt, Prompt: p}
	return (<-c.in).Choice
}

// YieldEvent suspends until the processor has queued ev; the processor
// broadcasts queued events to reacting pink powers after this handler
// returns.
func (c *Context) YieldEvent(ev Event) {
	c.out <- Step{Kind: StepEvent, Event: ev}
	<-c.in
}

// YieldDeferral suspends until the processor has enqueued d onto the
// match's deferred-continuation queue. Handlers call this as their last
// suspension point before returning.
func (c *Context) YieldDeferral(d state.DeferredContinuation) {
	c.out <- Step{Kind: StepDeferral, Deferral: d}
	<-c.in
}
