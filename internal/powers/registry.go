package powers

import "github.com/aviary-games/wingspan-engine/internal/handler"

// Constructor builds a handler.Func bound to the specific bird instance and
// power parameters it will run for. instanceID is the bird whose power this
// is; params come from the card's PowerSpec in the dataset.
type Constructor func(instanceID string, params map[string]string) handler.Func

// Registry maps a card's PowerSpec.HandlerID to the Constructor that builds
// its handler.Func.
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry builds a registry pre-populated with every handler this
// engine ships.
func NewRegistry() *Registry {
	r := &Registry{constructors: make(map[string]Constructor)}
	r.Register("gain-food-from-feeder-or-supply", NewGainFoodFromFeederOrSupply)
	r.Register("gain-all-matching-dice-from-feeder", NewGainAllMatchingDiceFromFeeder)
	r.Register("gain-fixed-food", NewGainFixedFood)
	r.Register("pink-gain-food-on-opponent-habitat-play", NewPinkGainFoodOnOpponentHabitatPlay)
	r.Register("draw-then-deferred-discard", NewDrawThenDeferredDiscard)
	r.Register("deferred-discard-one", NewDeferredDiscardOne)
	r.Register("repeat-habitat-power", NewRepeatHabitatPower)
	r.Register("tuck-from-deck", NewTuckFromDeck)
	r.Register("cache-food-from-supply", NewCacheFoodFromSupply)
	r.Register("lay-bonus-egg", NewLayBonusEgg)
	r.Register("all-players-gain-food", NewAllPlayersGainFoodPower)
	r.Register("all-players-draw-cards", NewAllPlayersDrawCardsPower)
	r.Register("all-players-lay-eggs", NewAllPlayersLayEggsPower)
	r.Register("predator-hunt", NewPredatorHuntPower)
	r.Register("draw-bonus-card-keep-best", NewDrawBonusCardKeepBest)
	return r
}

// Register adds or replaces the constructor for handlerID.
func (r *Registry) Register(handlerID string, ctor Constructor) {
	r.constructors[handlerID] = ctor
}

// Build looks up handlerID and builds its handler.Func for instanceID with
// the given params. Returns false if no such handler is registered.
func (r *Registry) Build(handlerID, instanceID string, params map[string]string) (handler.Func, bool) {
	ctor, ok := r.constructors[handlerID]
	if !ok {
		return nil, false
	}
	return ctor(instanceID, params), true
}
