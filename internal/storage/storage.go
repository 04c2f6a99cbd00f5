package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/echoes-of-ruin/pkg/character"
	"github.com/jwebster45206/echoes-of-ruin/pkg/scene"
)

// SavedGame is the complete persisted state of one playthrough.
type SavedGame struct {
	Character    *character.Character `json:"character"`
	TurnCount    int                  `json:"turn_count"`
	CurrentScene *scene.Scene         `json:"current_scene"`
	UpdatedAt    time.Time            `json:"updated_at,omitempty"`
}

// Storage defines the interface for saved game persistence.
type Storage interface {
	// Ping checks connectivity to the storage backend
	Ping(ctx context.Context) error

	// Close releases storage resources
	Close() error

	// SaveGame persists a playthrough under its id
	SaveGame(ctx context.Context, id uuid.UUID, save *SavedGame) error

	// LoadGame retrieves a playthrough. Returns nil for not found.
	LoadGame(ctx context.Context, id uuid.UUID) (*SavedGame, error)

	// DeleteGame removes a playthrough
	DeleteGame(ctx context.Context, id uuid.UUID) error
}
