package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	r := NewRegistry()
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		r.Cards[id] = &CardDefinition{ID: id, Habitats: []Habitat{HabitatForest}, EggCapacity: 2}
		r.CardOrder = append(r.CardOrder, id)
	}
	for _, id := range []string{"bonus-a", "bonus-b"} {
		r.BonusCards[id] = &BonusCardDefinition{ID: id}
		r.BonusCardOrder = append(r.BonusCardOrder, id)
	}
	return r
}

func TestNewGameIsDeterministicForSeed(t *testing.T) {
	reg := testRegistry()
	g1 := NewGame("m1", 7, reg, []string{"p1", "p2"})
	g2 := NewGame("m2", 7, reg, []string{"p1", "p2"})

	assert.Equal(t, g1.Supply.Deck, g2.Supply.Deck)
	assert.Equal(t, g1.Supply.Tray, g2.Supply.Tray)
	assert.Equal(t, g1.RoundGoals, g2.RoundGoals)
}

func TestNewGameDifferentSeedsDiverge(t *testing.T) {
	reg := testRegistry()
	g1 := NewGame("m1", 1, reg, []string{"p1", "p2"})
	g2 := NewGame("m1", 2, reg, []string{"p1", "p2"})
	assert.NotEqual(t, g1.Supply.Deck, g2.Supply.Deck)
}

func TestGameAdvanceActivePlayerSkipsForfeited(t *testing.T) {
	reg := testRegistry()
	g := NewGame("m1", 1, reg, []string{"p1", "p2", "p3"})
	g.Players[1].Forfeited = true

	ok := g.AdvanceActivePlayer()
	require.True(t, ok)
	assert.Equal(t, "p3", g.ActivePlayer().ID)
}

func TestGameDeferredQueueFIFOPerPlayer(t *testing.T) {
	reg := testRegistry()
	g := NewGame("m1", 1, reg, []string{"p1", "p2"})

	g.PushDeferred(DeferredContinuation{PlayerID: "p1", HandlerID: "h1", When: DeferEndOfTurn})
	g.PushDeferred(DeferredContinuation{PlayerID: "p2", HandlerID: "h2", When: DeferEndOfTurn})
	g.PushDeferred(DeferredContinuation{PlayerID: "p1", HandlerID: "h3", When: DeferEndOfTurn})

	matched := g.PopDeferredFor("p1", DeferEndOfTurn)
	require.Len(t, matched, 2)
	assert.Equal(t, "h1", matched[0].HandlerID)
	assert.Equal(t, "h3", matched[1].HandlerID)
	assert.Len(t, g.Deferred, 1)
}
