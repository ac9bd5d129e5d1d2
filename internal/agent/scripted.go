package agent

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aviary-games/wingspan-engine/internal/handler"
	"github.com/aviary-games/wingspan-engine/internal/view"
)

// ScriptedChoice is one recorded answer in a script file, keyed by the
// prompt kind it was given in response to. A script is consumed strictly
// in order; a mismatch between the expected and actual prompt kind is a
// script error, not a game error.
type ScriptedChoice struct {
	PromptKind  string   `yaml:"promptKind"`
	ActionKind  string   `yaml:"actionKind,omitempty"`
	CardID      string   `yaml:"cardId,omitempty"`
	CardIDs     []string `yaml:"cardIds,omitempty"`
	InstanceID  string   `yaml:"instanceId,omitempty"`
	InstanceIDs []string `yaml:"instanceIds,omitempty"`
	Habitat     string   `yaml:"habitat,omitempty"`
	FoodType    string   `yaml:"foodType,omitempty"`
	DieIndex    int      `yaml:"dieIndex,omitempty"`
	Accept      bool     `yaml:"accept,omitempty"`
	TakeBonus   bool     `yaml:"takeBonus,omitempty"`
}

// Script is the on-disk replay format for a ScriptedAgent.
type Script struct {
	Choices []ScriptedChoice `yaml:"choices"`
}

// LoadScript parses a yaml script file from disk.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ScriptedAgent replays a fixed, pre-recorded sequence of choices. Used for
// regression fixtures and for reproducing a transcript deterministically
// without re-deriving choices from a random or remote source.
type ScriptedAgent struct {
	id     string
	script *Script
	cursor int
}

// NewScriptedAgent builds a scripted agent bound to an already-loaded script.
func NewScriptedAgent(id string, script *Script) *ScriptedAgent {
	return &ScriptedAgent{id: id, script: script}
}

// ID implements Agent.
func (a *ScriptedAgent) ID() string { return a.id }

// Decide implements Agent. It consumes the next scripted choice, returning
// an error if the script is exhausted or its recorded prompt kind doesn't
// match what was actually asked.
func (a *ScriptedAgent) Decide(_ context.Context, _ view.View, p handler.Prompt) (handler.Choice, error) {
	if a.cursor >= len(a.script.Choices) {
		return handler.Choice{}, fmt.Errorf("scripted agent %s: script exhausted at prompt %s", a.id, p.Kind())
	}
	sc := a.script.Choices[a.cursor]
	a.cursor++
	if sc.PromptKind != string(p.Kind()) {
		return handler.Choice{}, fmt.Errorf("scripted agent %s: script step %d expected %s, got %s", a.id, a.cursor, sc.PromptKind, p.Kind())
	}
	return handler.Choice{
		ActionKind:  handler.TurnActionKind(sc.ActionKind),
		CardID:      sc.CardID,
		CardIDs:     sc.CardIDs,
		InstanceID:  sc.InstanceID,
		InstanceIDs: sc.InstanceIDs,
		Habitat:     habitatFromString(sc.Habitat),
		FoodType:    foodFromString(sc.FoodType),
		DieIndex:    sc.DieIndex,
		Accept:      sc.Accept,
		TakeBonus:   sc.TakeBonus,
	}, nil
}
