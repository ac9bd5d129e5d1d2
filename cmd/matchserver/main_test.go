package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAddListGet(t *testing.T) {
	s := newStore()
	s.add(MatchReport{ID: "r1", MatchID: "m1", WinnerID: "p1"})
	s.add(MatchReport{ID: "r2", MatchID: "m2", WinnerID: "p2"})

	assert.Len(t, s.list(), 2)

	got, ok := s.get("r1")
	require.True(t, ok)
	assert.Equal(t, "m1", got.MatchID)

	_, ok = s.get("missing")
	assert.False(t, ok)
}
