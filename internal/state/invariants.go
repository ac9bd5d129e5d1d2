package state

import "fmt"

// CheckInvariants runs every quantified engine invariant against the
// current state and returns the first violation found as a plain error.
// This package's tests call it; the orchestrator does not.
func CheckInvariants(g *Game) error {
	if err := checkCardConservation(g); err != nil {
		return err
	}
	if err := checkFeederBounds(g); err != nil {
		return err
	}
	if err := checkBoardContiguity(g); err != nil {
		return err
	}
	if err := checkNoNegativeFood(g); err != nil {
		return err
	}
	return nil
}

// checkCardConservation confirms every bird card lives in exactly one of:
// a deck, the tray, a hand, a discard pile, or a placed bird instance.
func checkCardConservation(g *Game) error {
	seen := make(map[string]string, g.Registry.CardUniverseSize())
	record := func(id, location string) error {
		if prior, ok := seen[id]; ok {
			return fmt.Errorf("card %q present in both %s and %s", id, prior, location)
		}
		seen[id] = location
		return nil
	}
	for _, id := range g.Supply.Deck {
		if err := record(id, "deck"); err != nil {
			return err
		}
	}
	for _, id := range g.Supply.VisibleTray() {
		if err := record(id, "tray"); err != nil {
			return err
		}
	}
	for _, id := range g.Supply.Discard {
		if err := record(id, "discard"); err != nil {
			return err
		}
	}
	for _, p := range g.Players {
		for _, id := range p.Hand {
			if err := record(id, "hand:"+p.ID); err != nil {
				return err
			}
		}
		for _, b := range p.Board.AllBirds() {
			if err := record(b.CardID, "board:"+p.ID); err != nil {
				return err
			}
			for _, tucked := range b.TuckedCards {
				if err := record(tucked, "tucked:"+p.ID); err != nil {
					return err
				}
			}
		}
	}
	if len(seen) != g.Registry.CardUniverseSize() {
		return fmt.Errorf("card conservation: tracked %d of %d cards", len(seen), g.Registry.CardUniverseSize())
	}
	return nil
}

// checkFeederBounds confirms the feeder never holds more than 5 dice.
func checkFeederBounds(g *Game) error {
	if n := len(g.Feeder.Dice); n > MaxBirdfeederDice {
		return fmt.Errorf("birdfeeder holds %d dice, max %d", n, MaxBirdfeederDice)
	}
	return nil
}

// checkBoardContiguity confirms every row's filled slots form a contiguous
// left-aligned prefix, per the board placement rule.
func checkBoardContiguity(g *Game) error {
	for _, p := range g.Players {
		for _, h := range Habitats {
			row := p.Board.Row(h)
			seenEmpty := false
			for _, s := range row.Slots {
				if s == nil {
					seenEmpty = true
					continue
				}
				if seenEmpty {
					return fmt.Errorf("player %s habitat %s has a gap before an occupied slot", p.ID, h)
				}
			}
		}
	}
	return nil
}

// checkNoNegativeFood confirms no player or bird cache holds negative food.
func checkNoNegativeFood(g *Game) error {
	for _, p := range g.Players {
		for foodType, n := range p.Food {
			if n < 0 {
				return fmt.Errorf("player %s has negative %s food: %d", p.ID, foodType, n)
			}
		}
		for _, b := range p.Board.AllBirds() {
			for foodType, n := range b.CachedFood {
				if n < 0 {
					return fmt.Errorf("player %s bird %s has negative cached %s: %d", p.ID, b.ID, foodType, n)
				}
			}
		}
	}
	return nil
}
