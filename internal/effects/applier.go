package effects

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/aviary-games/wingspan-engine/internal/apperrors"
	"github.com/aviary-games/wingspan-engine/internal/state"
)

// Applier resolves Effect values against a state.Game. Configure it with
// the With* setters, each returning the same instance, then call Apply
// once per effect — mirrored on the teacher's BehaviorApplier builder.
type Applier struct {
	game    *state.Game
	log     *EventLog
	logger  *zap.Logger
}

// NewApplier builds an unconfigured applier; chain the With* setters before
// the first Apply call.
func NewApplier() *Applier {
	return &Applier{}
}

// WithGame sets the match this applier mutates.
func (a *Applier) WithGame(g *state.Game) *Applier {
	a.game = g
	return a
}

// WithEventLog sets the transcript every applied effect is recorded to.
func (a *Applier) WithEventLog(l *EventLog) *Applier {
	a.log = l
	return a
}

// WithLogger sets the structured logger used for narration.
func (a *Applier) WithLogger(logger *zap.Logger) *Applier {
	a.logger = logger
	return a
}

// Apply resolves one effect against the configured game. It takes no lock;
// the orchestrator does not take game.Lock() either, and a match's state is
// touched by one goroutine at a time (see state.Game). It returns the effect as actually applied — for the variants that carry
// result fields (GainFood, DrawCards, RevealCards, RollDice) this is a
// fully-populated record, not just the request, so a caller resuming a
// suspended handler with it gets the true outcome back.
func (a *Applier) Apply(playerID string, eff Effect) (Effect, error) {
	if a.game == nil {
		return eff, &apperrors.InvariantViolation{Detail: "applier used without WithGame"}
	}
	kind := fmt.Sprintf("%T", eff)
	var err error
	switch e := eff.(type) {
	case ActivatePower:
		err = a.applyActivatePower(playerID, e)
	case GainFood:
		e, err = a.applyGainFood(playerID, e)
		eff = e
	case LayEggs:
		err = a.applyLayEggs(playerID, e)
	case DrawCards:
		e, err = a.applyDrawCards(playerID, e)
		eff = e
	case DiscardFood:
		err = a.applyDiscardFood(playerID, e)
	case DiscardEggs:
		err = a.applyDiscardEggs(playerID, e)
	case DiscardCards:
		err = a.applyDiscardCards(playerID, e)
	case TuckCards:
		err = a.applyTuckCards(playerID, e)
	case CacheFood:
		err = a.applyCacheFood(playerID, e)
	case PlayBird:
		err = a.applyPlayBird(playerID, e)
	case RerollBirdfeeder:
		err = a.applyRerollBirdfeeder(e)
	case RefillBirdfeeder:
		err = a.applyRefillBirdfeeder(e)
	case RollDice:
		e, err = a.applyRollDice(e)
		eff = e
	case RevealCards:
		e, err = a.applyRevealCards(playerID, e)
		eff = e
	case RevealBonusCards:
		err = a.applyRevealBonusCards(playerID, e)
	case DrawBonusCards:
		err = a.applyDrawBonusCards(playerID, e)
	case MoveBird:
		err = a.applyMoveBird(playerID, e)
	case AllPlayersGainFood:
		err = a.applyAllPlayersGainFood(e)
	case AllPlayersDrawCards:
		err = a.applyAllPlayersDrawCards(e)
	case AllPlayersLayEggs:
		err = a.applyAllPlayersLayEggs(e)
	case RepeatBrownPower:
		err = a.applyRepeatBrownPower(playerID, e)
	default:
		return eff, &apperrors.UnknownEffect{Kind: kind}
	}
	if err != nil {
		return eff, err
	}
	if a.log != nil {
		a.log.Record(playerID, kind, eff)
	}
	return eff, nil
}

func (a *Applier) applyActivatePower(playerID string, e ActivatePower) error {
	if a.logger != nil {
		a.logger.Debug("🔔 power activated", zap.String("player", playerID), zap.String("instance", e.InstanceID))
	}
	// Dispatch itself is the orchestrator's job (it owns the handler
	// registry); the applier only records that activation happened.
	return nil
}

func (a *Applier) applyGainFood(playerID string, e GainFood) (GainFood, error) {
	p := a.game.Player(playerID)
	if p == nil {
		return e, &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "unknown player " + playerID}
	}
	if e.FromSupply {
		p.Food[e.FoodType] += e.Count
		e.Gained = e.Count
		if a.logger != nil {
			a.logger.Info("🌰 gained food", zap.String("player", playerID), zap.String("food", string(e.FoodType)), zap.Int("count", e.Count))
		}
		return e, nil
	}
	if len(e.DieSelections) > 0 {
		sel := append([]DieSelection(nil), e.DieSelections...)
		sort.Slice(sel, func(i, j int) bool { return sel[i].DieIndex > sel[j].DieIndex })
		for _, s := range sel {
			if s.DieIndex < 0 || s.DieIndex >= len(a.game.Feeder.Dice) {
				return e, &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "gain-food: die specified is absent from feeder"}
			}
			d := a.game.Feeder.Dice[s.DieIndex]
			food := s.FoodType
			if !d.IsDual() {
				food = state.FoodType(d)
			}
			a.game.Feeder.RemoveAt(s.DieIndex)
			p.Food[food]++
		}
		e.Gained = len(sel)
		if a.logger != nil {
			a.logger.Info("🌰 gained food", zap.String("player", playerID), zap.Int("dice", len(sel)))
		}
		return e, nil
	}
	gained := 0
	for gained < e.Count {
		idx := -1
		for i, d := range a.game.Feeder.Dice {
			if state.FoodType(d) == e.FoodType || (d.IsDual() && containsFood(d.Options(), e.FoodType)) {
				idx = i
				break
			}
		}
		if idx < 0 {
			break
		}
		a.game.Feeder.RemoveAt(idx)
		gained++
	}
	p.Food[e.FoodType] += gained
	e.Gained = gained
	if a.logger != nil {
		a.logger.Info("🌰 gained food", zap.String("player", playerID), zap.String("food", string(e.FoodType)), zap.Int("count", gained))
	}
	return e, nil
}

func containsFood(opts []state.FoodType, want state.FoodType) bool {
	for _, o := range opts {
		if o == want {
			return true
		}
	}
	return false
}

func (a *Applier) applyLayEggs(playerID string, e LayEggs) error {
	p := a.game.Player(playerID)
	inst, _, _, found := p.Board.FindInstance(e.InstanceID)
	if !found {
		return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "lay-eggs on missing instance " + e.InstanceID}
	}
	card, err := a.game.Registry.Card(inst.CardID)
	if err != nil {
		return err
	}
	capacity := card.EggCapacity
	room := capacity - inst.Eggs
	n := e.Count
	if n > room {
		n = room
	}
	inst.Eggs += n
	if a.logger != nil {
		a.logger.Info("🥚 laid eggs", zap.String("player", playerID), zap.String("instance", e.InstanceID), zap.Int("count", n))
	}
	return nil
}

func (a *Applier) applyDrawCards(playerID string, e DrawCards) (DrawCards, error) {
	p := a.game.Player(playerID)
	var drawnIDs []string
	for _, id := range e.FromTrayID {
		if a.game.Supply.TakeFromTray(id) {
			p.Hand = append(p.Hand, id)
			drawnIDs = append(drawnIDs, id)
		}
	}
	if e.FromDeck > 0 {
		drawn := a.game.Supply.DrawFromDeck(e.FromDeck)
		p.Hand = append(p.Hand, drawn...)
		drawnIDs = append(drawnIDs, drawn...)
	}
	a.game.Supply.RefillTray()
	e.DrawnCardIDs = drawnIDs
	if a.logger != nil {
		a.logger.Info("🂠 drew cards", zap.String("player", playerID), zap.Int("fromDeck", e.FromDeck), zap.Int("fromTray", len(e.FromTrayID)))
	}
	return e, nil
}

func (a *Applier) applyDiscardFood(playerID string, e DiscardFood) error {
	p := a.game.Player(playerID)
	if p.Food[e.FoodType] < e.Count {
		return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "discard-food exceeds balance"}
	}
	p.Food[e.FoodType] -= e.Count
	return nil
}

func (a *Applier) applyDiscardEggs(playerID string, e DiscardEggs) error {
	p := a.game.Player(playerID)
	inst, _, _, found := p.Board.FindInstance(e.InstanceID)
	if !found {
		return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "discard-eggs on missing instance"}
	}
	if inst.Eggs < e.Count {
		return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "discard-eggs exceeds balance"}
	}
	inst.Eggs -= e.Count
	return nil
}

func (a *Applier) applyDiscardCards(playerID string, e DiscardCards) error {
	p := a.game.Player(playerID)
	for _, id := range e.CardIDs {
		if !p.RemoveFromHand(id) {
			return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "discard-cards: not in hand " + id}
		}
	}
	a.game.Supply.DiscardCards(e.CardIDs)
	return nil
}

func (a *Applier) applyTuckCards(playerID string, e TuckCards) error {
	p := a.game.Player(playerID)
	inst, _, _, found := p.Board.FindInstance(e.InstanceID)
	if !found {
		return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "tuck-cards on missing instance"}
	}
	for _, id := range e.CardIDs {
		if !p.RemoveFromHand(id) {
			return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "tuck-cards: not in hand " + id}
		}
	}
	inst.TuckedCards = append(inst.TuckedCards, e.CardIDs...)
	return nil
}

func (a *Applier) applyCacheFood(playerID string, e CacheFood) error {
	p := a.game.Player(playerID)
	inst, _, _, found := p.Board.FindInstance(e.InstanceID)
	if !found {
		return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "cache-food on missing instance"}
	}
	if p.Food[e.FoodType] < e.Count {
		return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "cache-food exceeds balance"}
	}
	p.Food[e.FoodType] -= e.Count
	inst.CachedFood[e.FoodType] += e.Count
	return nil
}

func (a *Applier) applyPlayBird(playerID string, e PlayBird) error {
	p := a.game.Player(playerID)
	card, err := a.game.Registry.Card(e.CardID)
	if err != nil {
		return err
	}
	if !card.AllowsHabitat(e.Habitat) {
		return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "card cannot be played into habitat " + string(e.Habitat)}
	}
	row := p.Board.Row(e.Habitat)
	if row.LeftmostEmpty() < 0 {
		return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "play-bird: habitat row is full: " + string(e.Habitat)}
	}
	if !p.HasCardInHand(e.CardID) {
		return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "play-bird: card not in hand"}
	}
	for foodType, n := range e.FoodPaid {
		if p.Food[foodType] < n {
			return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "play-bird: insufficient " + string(foodType) + " to pay cost"}
		}
	}
	instances := make(map[string]*state.BirdInstance, len(e.EggsPaidFrom))
	paidFrom := make(map[string]int, len(e.EggsPaidFrom))
	for _, instanceID := range e.EggsPaidFrom {
		inst, _, _, found := p.Board.FindInstance(instanceID)
		if !found {
			return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "play-bird: egg donor not found: " + instanceID}
		}
		instances[instanceID] = inst
		paidFrom[instanceID]++
		if inst.Eggs < paidFrom[instanceID] {
			return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "play-bird: insufficient eggs on " + instanceID}
		}
	}
	p.RemoveFromHand(e.CardID)
	for foodType, n := range e.FoodPaid {
		p.Food[foodType] -= n
	}
	for instanceID, n := range paidFrom {
		instances[instanceID].Eggs -= n
	}
	p.PlaceBird(e.Habitat, e.CardID)
	if a.logger != nil {
		a.logger.Info("🐦 played bird", zap.String("player", playerID), zap.String("card", e.CardID), zap.String("habitat", string(e.Habitat)))
	}
	return nil
}

func (a *Applier) applyRerollBirdfeeder(_ RerollBirdfeeder) error {
	if !a.game.Feeder.Homogeneous() {
		return &apperrors.PreconditionUnmet{HandlerID: "reroll-birdfeeder", Reason: "feeder is not homogeneous"}
	}
	for i := range a.game.Feeder.Dice {
		a.game.Feeder.Dice[i] = state.RandomDieFace(a.game.RNG)
	}
	return nil
}

func (a *Applier) applyRefillBirdfeeder(_ RefillBirdfeeder) error {
	n := state.MaxBirdfeederDice - len(a.game.Feeder.Dice)
	_, err := a.applyRollDice(RollDice{Count: n})
	return err
}

func (a *Applier) applyRollDice(e RollDice) (RollDice, error) {
	rolled := make([]state.DieFace, 0, e.Count)
	for i := 0; i < e.Count; i++ {
		face := state.RandomDieFace(a.game.RNG)
		a.game.Feeder.Dice = append(a.game.Feeder.Dice, face)
		rolled = append(rolled, face)
	}
	e.Rolled = rolled
	return e, nil
}

func (a *Applier) applyRevealCards(playerID string, e RevealCards) (RevealCards, error) {
	drawn := a.game.Supply.DrawFromDeck(e.Count)
	a.game.Supply.DiscardCards(drawn)
	e.RevealedIDs = drawn
	if a.logger != nil {
		a.logger.Debug("👀 revealed cards", zap.String("player", playerID), zap.Int("count", len(drawn)))
	}
	return e, nil
}

func (a *Applier) applyRevealBonusCards(playerID string, e RevealBonusCards) error {
	drawn := a.game.BonusDeck.Draw(e.Count)
	a.game.BonusDeck.DiscardCards(drawn)
	if a.logger != nil {
		a.logger.Debug("👀 revealed bonus cards", zap.String("player", playerID), zap.Int("count", len(drawn)))
	}
	return nil
}

func (a *Applier) applyDrawBonusCards(playerID string, e DrawBonusCards) error {
	p := a.game.Player(playerID)
	drawn := a.game.BonusDeck.Draw(e.Count)
	p.BonusCards = append(p.BonusCards, drawn...)
	return nil
}

func (a *Applier) applyMoveBird(playerID string, e MoveBird) error {
	p := a.game.Player(playerID)
	fromRow := p.Board.Row(e.FromHabitat)
	toRow := p.Board.Row(e.ToHabitat)
	col := toRow.LeftmostEmpty()
	if col < 0 {
		return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "move-bird: destination habitat full"}
	}
	for i, s := range fromRow.Slots {
		if s != nil && s.ID == e.InstanceID {
			toRow.Slots[col] = s
			fromRow.Slots[i] = nil
			return nil
		}
	}
	return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "move-bird: instance not found in source habitat"}
}

func (a *Applier) applyAllPlayersGainFood(e AllPlayersGainFood) error {
	for _, p := range a.game.Players {
		if e.ExcludeActive && p.ID == a.game.ActivePlayer().ID {
			continue
		}
		p.Food[e.FoodType] += e.Count
	}
	return nil
}

func (a *Applier) applyAllPlayersDrawCards(e AllPlayersDrawCards) error {
	for _, p := range a.game.Players {
		if e.ExcludeActive && p.ID == a.game.ActivePlayer().ID {
			continue
		}
		drawn := a.game.Supply.DrawFromDeck(e.Count)
		p.Hand = append(p.Hand, drawn...)
	}
	a.game.Supply.RefillTray()
	return nil
}

func (a *Applier) applyAllPlayersLayEggs(e AllPlayersLayEggs) error {
	for _, p := range a.game.Players {
		if e.ExcludeActive && p.ID == a.game.ActivePlayer().ID {
			continue
		}
		remaining := e.Count
		for _, inst := range p.Board.AllBirds() {
			if remaining == 0 {
				break
			}
			card, err := a.game.Registry.Card(inst.CardID)
			if err != nil {
				continue
			}
			room := card.EggCapacity - inst.Eggs
			if room <= 0 {
				continue
			}
			if room > remaining {
				room = remaining
			}
			inst.Eggs += room
			remaining -= room
		}
		if a.logger != nil {
			a.logger.Debug("🥚 all players lay eggs", zap.String("player", p.ID), zap.Int("requested", e.Count), zap.Int("placed", e.Count-remaining))
		}
	}
	return nil
}

// applyRepeatBrownPower only validates: the target instance must exist and
// own a when-activated power. The actual re-invocation happens at the
// orchestrator level (it owns the power registry, which this package must
// not import), driven by the Processor's onEffect hook after Apply
// succeeds here.
func (a *Applier) applyRepeatBrownPower(playerID string, e RepeatBrownPower) error {
	p := a.game.Player(playerID)
	inst, _, _, found := p.Board.FindInstance(e.TargetInstance)
	if !found {
		return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "repeat-brown-power: target instance not found: " + e.TargetInstance}
	}
	card, err := a.game.Registry.Card(inst.CardID)
	if err != nil {
		return err
	}
	if card.Power == nil || card.Power.Trigger != state.TriggerWhenActivated {
		return &apperrors.InvariantViolation{MatchID: a.game.MatchID, Detail: "repeat-brown-power: target has no when-activated power: " + e.TargetInstance}
	}
	if a.logger != nil {
		a.logger.Debug("🔁 repeat brown power", zap.String("player", playerID), zap.String("target", e.TargetInstance))
	}
	return nil
}
