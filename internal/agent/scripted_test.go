package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviary-games/wingspan-engine/internal/handler"
	"github.com/aviary-games/wingspan-engine/internal/view"
)

func TestScriptedAgentReplaysInOrder(t *testing.T) {
	script := &Script{Choices: []ScriptedChoice{
		{PromptKind: string(handler.PromptTurnAction), ActionKind: "play-bird"},
		{PromptKind: string(handler.PromptPlayBird), CardID: "robin", Habitat: "forest"},
	}}
	a := NewScriptedAgent("p1", script)

	c1, err := a.Decide(context.Background(), view.View{}, handler.TurnActionPrompt{})
	require.NoError(t, err)
	assert.Equal(t, handler.TurnActionKind("play-bird"), c1.ActionKind)

	c2, err := a.Decide(context.Background(), view.View{}, handler.PlayBirdPrompt{})
	require.NoError(t, err)
	assert.Equal(t, "robin", c2.CardID)
}

func TestScriptedAgentRejectsPromptKindMismatch(t *testing.T) {
	script := &Script{Choices: []ScriptedChoice{{PromptKind: string(handler.PromptYesNo)}}}
	a := NewScriptedAgent("p1", script)
	_, err := a.Decide(context.Background(), view.View{}, handler.TurnActionPrompt{})
	assert.Error(t, err)
}

func TestScriptedAgentRejectsExhaustedScript(t *testing.T) {
	a := NewScriptedAgent("p1", &Script{})
	_, err := a.Decide(context.Background(), view.View{}, handler.TurnActionPrompt{})
	assert.Error(t, err)
}
