package state

import (
	"math/rand"
	"sync"
)

// TurnsPerRound gives the starting turn allowance for rounds 1-4 (index 0-3).
var TurnsPerRound = [4]int{8, 7, 6, 5}

// DeferredContinuation is a suspended handler resumption parked until a
// later point in the turn or round — e.g. "draw 1 card now, discard 1 card
// at the end of this turn". The orchestrator drains the queue belonging to
// the relevant player at the point named by When.
type DeferredContinuation struct {
	PlayerID  string
	HandlerID string
	When      DeferralPoint
	Params    map[string]string
}

// DeferralPoint names the point in the turn/round lifecycle a deferred
// continuation resumes at.
type DeferralPoint string

const (
	DeferEndOfTurn  DeferralPoint = "end-of-turn"
	DeferEndOfRound DeferralPoint = "end-of-round"
)

// Game is the complete authoritative state of one match. It carries a
// mutex with Lock/Unlock and RLock/RUnlock passthroughs, but the engine's
// own packages never take it: a match's state is touched by one goroutine
// at a time, either the orchestrator or the handler goroutine it is
// blocked on across the unbuffered channel hand-off.
type Game struct {
	mu sync.RWMutex

	MatchID string
	Seed    int64
	RNG     *rand.Rand
	Registry *Registry

	Players           []*Player
	ActivePlayerIndex int

	Feeder    *Birdfeeder
	Supply    *BirdSupply
	BonusDeck *BonusDeck

	RoundGoals [4]RoundGoalKind
	Round      int // 1-4
	TurnSeq    int // monotonic, incremented once per resolved turn

	Deferred []DeferredContinuation

	Finished bool
}

// NewGame builds a fresh match: seeds the PRNG, shuffles the bird and bonus
// decks from the registry's declared order, deals the starting round goals,
// and creates one Player per id in order (turn order == given order).
func NewGame(matchID string, seed int64, registry *Registry, playerIDs []string) *Game {
	rng := rand.New(rand.NewSource(seed))

	deck := shuffledCopy(registry.CardOrder, rng)
	bonusDeck := shuffledCopy(registry.BonusCardOrder, rng)

	players := make([]*Player, len(playerIDs))
	for i, id := range playerIDs {
		p := NewPlayer(id)
		p.TurnsRemaining = TurnsPerRound[0]
		players[i] = p
	}

	g := &Game{
		MatchID:   matchID,
		Seed:      seed,
		RNG:       rng,
		Registry:  registry,
		Players:   players,
		Feeder:    NewBirdfeeder(),
		Supply:    NewBirdSupply(deck),
		BonusDeck: NewBonusDeck(bonusDeck),
		Round:     1,
	}
	g.RoundGoals = drawRoundGoals(rng)
	return g
}

// shuffledCopy returns a Fisher-Yates shuffle of src using rng, leaving src
// untouched.
func shuffledCopy(src []string, rng *rand.Rand) []string {
	out := append([]string(nil), src...)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// drawRoundGoals picks 4 goals (with replacement if the pool is smaller than
// 4, which it never is for the shipped dataset) from RoundGoalPool.
func drawRoundGoals(rng *rand.Rand) [4]RoundGoalKind {
	pool := shuffledGoalPool(rng)
	var out [4]RoundGoalKind
	for i := range out {
		out[i] = pool[i%len(pool)]
	}
	return out
}

func shuffledGoalPool(rng *rand.Rand) []RoundGoalKind {
	out := append([]RoundGoalKind(nil), RoundGoalPool...)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Lock/Unlock/RLock/RUnlock expose the guarding mutex directly, matching the
// teacher's Game/Deck pattern of a private mutex with thin public access.
func (g *Game) Lock()    { g.mu.Lock() }
func (g *Game) Unlock()  { g.mu.Unlock() }
func (g *Game) RLock()   { g.mu.RLock() }
func (g *Game) RUnlock() { g.mu.RUnlock() }

// ActivePlayer returns the player whose turn it currently is.
func (g *Game) ActivePlayer() *Player {
	return g.Players[g.ActivePlayerIndex]
}

// Player looks up a player by id.
func (g *Game) Player(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AdvanceActivePlayer moves to the next non-forfeited player, wrapping
// around. Returns false if every player has forfeited.
func (g *Game) AdvanceActivePlayer() bool {
	n := len(g.Players)
	for i := 1; i <= n; i++ {
		idx := (g.ActivePlayerIndex + i) % n
		if !g.Players[idx].Forfeited {
			g.ActivePlayerIndex = idx
			return true
		}
	}
	return false
}

// ActivePlayersRemaining counts players still in the match.
func (g *Game) ActivePlayersRemaining() int {
	n := 0
	for _, p := range g.Players {
		if !p.Forfeited {
			n++
		}
	}
	return n
}

// PushDeferred enqueues a continuation to resume later.
func (g *Game) PushDeferred(d DeferredContinuation) {
	g.Deferred = append(g.Deferred, d)
}

// PopDeferredFor drains and returns every continuation queued for playerID
// at the given point, removing them from the queue, in FIFO order.
func (g *Game) PopDeferredFor(playerID string, when DeferralPoint) []DeferredContinuation {
	var matched []DeferredContinuation
	var rest []DeferredContinuation
	for _, d := range g.Deferred {
		if d.PlayerID == playerID && d.When == when {
			matched = append(matched, d)
		} else {
			rest = append(rest, d)
		}
	}
	g.Deferred = rest
	return matched
}
