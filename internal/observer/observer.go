// Package observer defines the match lifecycle notification interface and
// two concrete sinks: a structured narrative logger and a terminal
// renderer. Observers are read-only — they never influence engine
// decisions, only report on them.
package observer

// MatchStartedEvent fires once, after setup (starting hands and bonus
// cards dealt) and before round 1's first turn.
type MatchStartedEvent struct {
	MatchID   string
	PlayerIDs []string
	Seed      int64
}

// RoundStartedEvent fires at the beginning of each of the four rounds.
type RoundStartedEvent struct {
	MatchID string
	Round   int
	GoalKind string
}

// TurnStartedEvent fires before a player's turn action is requested.
type TurnStartedEvent struct {
	MatchID  string
	Round    int
	PlayerID string
}

// TurnEndedEvent fires after a turn action (and any triggered powers) has
// fully resolved.
type TurnEndedEvent struct {
	MatchID    string
	Round      int
	PlayerID   string
	ActionKind string
	// BonusApplied reports whether the turn action's one-per-action bonus
	// conversion (discard a card/food/egg for 1 more of the action's
	// resource) actually resolved, as opposed to being declined or offered
	// but left unaffordable.
	BonusApplied bool
}

// RoundEndedEvent fires after round-goal scoring for the round completes.
type RoundEndedEvent struct {
	MatchID     string
	Round       int
	GoalPoints  map[string]int
}

// PlayerForfeitedEvent fires when a seat is forfeited by the three-strike
// policy. RemainingPlayers is the count of non-forfeited players left in
// the match immediately after this forfeit.
type PlayerForfeitedEvent struct {
	MatchID          string
	PlayerID         string
	Reason           string
	RemainingPlayers int
}

// MatchEndedEvent fires once, after final scoring, with each player's total.
type MatchEndedEvent struct {
	MatchID     string
	FinalScores map[string]int
	WinnerID    string
}

// Observer receives every match lifecycle notification, in the order they
// occur. Implementations must not block the orchestrator for long; slow
// sinks should buffer internally.
type Observer interface {
	OnMatchStarted(e MatchStartedEvent)
	OnRoundStarted(e RoundStartedEvent)
	OnTurnStarted(e TurnStartedEvent)
	OnTurnEnded(e TurnEndedEvent)
	OnRoundEnded(e RoundEndedEvent)
	OnPlayerForfeited(e PlayerForfeitedEvent)
	OnMatchEnded(e MatchEndedEvent)
}
