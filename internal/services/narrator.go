package services

import (
	"context"

	"github.com/jwebster45206/echoes-of-ruin/pkg/actor"
	"github.com/jwebster45206/echoes-of-ruin/pkg/character"
	"github.com/jwebster45206/echoes-of-ruin/pkg/scene"
)

// SceneRequest carries everything the narrator needs to produce the
// next scene for one turn.
type SceneRequest struct {
	Character  *character.Character
	Action     string
	TurnInfo   string
	Enemies    []actor.Enemy
	NPCs       []actor.NPC
	EnableGore bool
}

// NarratorService defines the interface for the scene-generating LLM.
type NarratorService interface {
	// GenerateScene produces the next scene for the given turn.
	GenerateScene(ctx context.Context, req SceneRequest) (*scene.Scene, error)
}
