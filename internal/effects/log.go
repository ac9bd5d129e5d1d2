package effects

// LoggedEffect is one applied effect recorded for replay and audit. A
// transcript is the ordered sequence of LoggedEffect values produced by one
// match; given the same seed and the same agent choices, replaying the
// transcript must reproduce bit-identical state (the engine's core
// determinism guarantee).
type LoggedEffect struct {
	Seq      int
	PlayerID string
	Kind     string
	Detail   Effect
}

// EventLog accumulates LoggedEffect entries for one match.
type EventLog struct {
	entries []LoggedEffect
	seq     int
}

// NewEventLog builds an empty log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Record appends an applied effect, assigning it the next sequence number.
func (l *EventLog) Record(playerID, kind string, detail Effect) LoggedEffect {
	l.seq++
	entry := LoggedEffect{Seq: l.seq, PlayerID: playerID, Kind: kind, Detail: detail}
	l.entries = append(l.entries, entry)
	return entry
}

// Entries returns the full transcript in application order.
func (l *EventLog) Entries() []LoggedEffect {
	return l.entries
}

// Len reports how many effects have been logged.
func (l *EventLog) Len() int {
	return len(l.entries)
}
