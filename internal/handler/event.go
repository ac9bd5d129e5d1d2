package handler

import "github.com/aviary-games/wingspan-engine/internal/state"

// EventKind names a qualifying occurrence that once-between-turns (pink)
// powers may react to.
type EventKind string

const (
	EventBirdPlayed       EventKind = "bird-played"
	EventFoodGained       EventKind = "food-gained"
	EventEggsLaid         EventKind = "eggs-laid"
	EventCardsDrawn       EventKind = "cards-drawn"
	EventPredatorResolved EventKind = "predator-power-resolved"
)

// Event is broadcast after the handler that yielded it returns, in turn
// order starting left of the active player, to every other player's
// eligible pink powers.
type Event struct {
	Kind        EventKind
	ActorID     string // the player whose turn action produced this event
	Habitat     state.Habitat
	FoodType    state.FoodType
	Count       int
}
