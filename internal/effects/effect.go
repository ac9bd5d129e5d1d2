// Package effects applies the atomic state mutations a power handler or a
// turn action yields, through Applier.Apply. Some writes to state.Game
// bypass it: the orchestrator deals the setup hands and bonus cards and
// updates turn counters and forfeit flags itself, the handler processor
// queues deferred continuations, the predator-hunt power rolls on Game.RNG,
// and the keep-best bonus-card power draws, keeps and discards bonus cards
// directly.
package effects

import "github.com/aviary-games/wingspan-engine/internal/state"

// Effect is one atomic state mutation. The set is closed: Applier.Apply
// switches exhaustively over the concrete types below.
type Effect interface {
	effect()
}

// ActivatePower records the activate/decline outcome of one optional bird
// power — a when-activated, when-played, or once-between-turns handler must
// yield exactly one of these before (Activated) or instead of (declined,
// with SkipReason set) yielding its own effects, so the transcript always
// shows which powers fired and why the rest didn't.
type ActivatePower struct {
	InstanceID string
	Activated  bool
	SkipReason state.SkipReason // set only when Activated is false
}

// GainFood grants food from the feeder (or, for powers that say so, from
// the general supply rather than the feeder) to a player.
//
// When DieSelections is set, it names the exact feeder dice to remove (each
// resolving a dual face to the food type it was chosen as) and FoodType/
// Count are ignored. Otherwise Count matching dice are located by FoodType
// automatically (pure matches and duals offering it); if the feeder holds
// fewer matching dice than Count, as many as are present are taken and no
// error results — a handler that must have an exact count should check the
// feeder itself before yielding the effect.
type GainFood struct {
	PlayerID      string
	FoodType      state.FoodType
	Count         int
	FromSupply    bool // bypasses the feeder entirely, e.g. "gain 1 food of any kind"
	DieSelections []DieSelection

	// Gained is filled in by the applier with the count actually granted
	// (which can fall short of Count if the feeder ran short), so a caller
	// that re-reads the resumed effect knows the real outcome.
	Gained int
}

// DieSelection names one feeder die (by its index at apply time) and, for a
// dual face, the food type it resolves to.
type DieSelection struct {
	DieIndex int
	FoodType state.FoodType
}

// LayEggs adds eggs to a specific bird instance, bounded by its egg capacity.
type LayEggs struct {
	PlayerID   string
	InstanceID string
	Count      int
}

// DrawCards moves cards from the supply (deck and/or tray) into a player's
// hand.
type DrawCards struct {
	PlayerID   string
	FromDeck   int
	FromTrayID []string // specific tray card ids requested

	// DrawnCardIDs is filled in by the applier with every card id actually
	// moved into the hand (deck draws plus the tray ids taken), in the
	// replay-record sense — the resumed effect is the full record, not just
	// the request.
	DrawnCardIDs []string
}

// DiscardFood removes spendable food tokens from a player.
type DiscardFood struct {
	PlayerID string
	FoodType state.FoodType
	Count    int
}

// DiscardEggs removes eggs from a specific bird instance.
type DiscardEggs struct {
	PlayerID   string
	InstanceID string
	Count      int
}

// DiscardCards removes cards from a player's hand to the supply discard.
type DiscardCards struct {
	PlayerID string
	CardIDs  []string
}

// TuckCards moves cards from a player's hand face-down under a bird
// instance, each worth 1 VP at scoring.
type TuckCards struct {
	PlayerID   string
	InstanceID string
	CardIDs    []string
}

// CacheFood moves food onto a bird instance (from the player's supply),
// each cached token worth 1 VP at scoring.
type CacheFood struct {
	PlayerID   string
	InstanceID string
	FoodType   state.FoodType
	Count      int
}

// PlayBird places a card from hand onto the board as a new bird instance,
// paying its egg cost (from an existing bird) and food cost.
type PlayBird struct {
	PlayerID string
	CardID   string
	Habitat  state.Habitat
	EggsPaidFrom []string // instance ids an egg is removed from, one per egg
	FoodPaid     map[state.FoodType]int
}

// RerollBirdfeeder re-rolls every die currently in the feeder; only legal
// when Birdfeeder.Homogeneous() holds.
type RerollBirdfeeder struct{}

// RefillBirdfeeder tops the feeder back up to 5 dice by rolling new ones.
type RefillBirdfeeder struct{}

// RollDice rolls n fresh dice and appends them to the feeder (used by
// RefillBirdfeeder and by powers that add dice directly).
type RollDice struct {
	Count int

	// Rolled is filled in by the applier with the faces actually rolled.
	Rolled []state.DieFace
}

// RevealCards draws cards from the deck face up for every player to see,
// then discards them (the "reveal a card" style of food-converting power).
type RevealCards struct {
	PlayerID string
	Count    int

	// RevealedIDs is filled in by the applier with the card ids actually
	// drawn and discarded (can fall short of Count if the deck ran short).
	RevealedIDs []string
}

// RevealBonusCards draws bonus cards from the bonus deck face up and puts
// them straight onto the bonus discard pile; no keep choice is offered.
type RevealBonusCards struct {
	PlayerID string
	Count    int
}

// DrawBonusCards deals bonus cards directly into a player's kept set,
// with no reveal-then-choose step.
type DrawBonusCards struct {
	PlayerID string
	Count    int
}

// MoveBird relocates an existing bird instance to a different habitat row
// it is also eligible for, preserving its eggs, cache, and tucked cards.
type MoveBird struct {
	PlayerID      string
	InstanceID    string
	FromHabitat   state.Habitat
	ToHabitat     state.Habitat
}

// AllPlayersGainFood grants food to every player (typically from the
// supply), in seat order (the order of Game.Players).
type AllPlayersGainFood struct {
	FoodType        state.FoodType
	Count           int
	ExcludeActive   bool
}

// AllPlayersDrawCards has every player draw from the deck, in seat order
// (the order of Game.Players).
type AllPlayersDrawCards struct {
	Count         int
	ExcludeActive bool
}

// AllPlayersLayEggs has every player lay up to Count eggs, in board order,
// greedily filling whichever of their own birds has room first — no
// per-player choice is solicited, mirroring how AllPlayersGainFood and
// AllPlayersDrawCards also apply without prompting.
type AllPlayersLayEggs struct {
	Count         int
	ExcludeActive bool
}

// RepeatBrownPower re-triggers another bird's when-activated power in the
// same habitat activation, used by powers worded "repeat 1 [other habitat]
// power in this habitat".
type RepeatBrownPower struct {
	PlayerID       string
	SourceHabitat  state.Habitat
	TargetInstance string
}

func (ActivatePower) effect()       {}
func (GainFood) effect()            {}
func (LayEggs) effect()             {}
func (DrawCards) effect()           {}
func (DiscardFood) effect()         {}
func (DiscardEggs) effect()         {}
func (DiscardCards) effect()        {}
func (TuckCards) effect()           {}
func (CacheFood) effect()           {}
func (PlayBird) effect()            {}
func (RerollBirdfeeder) effect()    {}
func (RefillBirdfeeder) effect()    {}
func (RollDice) effect()            {}
func (RevealCards) effect()         {}
func (RevealBonusCards) effect()    {}
func (DrawBonusCards) effect()      {}
func (MoveBird) effect()            {}
func (AllPlayersGainFood) effect()  {}
func (AllPlayersDrawCards) effect() {}
func (AllPlayersLayEggs) effect()   {}
func (RepeatBrownPower) effect()    {}
