package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	saves     map[uuid.UUID]*SavedGame
	pingError error
	saveError error
	loadError error

	// Track deletions for testing permadeath behavior
	DeleteCalls []uuid.UUID
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		saves:       make(map[uuid.UUID]*SavedGame),
		DeleteCalls: make([]uuid.UUID, 0),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetSaveError configures the mock to fail on SaveGame
func (m *MockStorage) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

// SetLoadError configures the mock to fail on LoadGame
func (m *MockStorage) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadError = err
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	return nil
}

// SaveGame mocks saving a playthrough
func (m *MockStorage) SaveGame(ctx context.Context, id uuid.UUID, save *SavedGame) error {
	if save == nil {
		return errors.New("save cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	m.saves[id] = save
	return nil
}

// LoadGame mocks loading a playthrough
func (m *MockStorage) LoadGame(ctx context.Context, id uuid.UUID) (*SavedGame, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.loadError != nil {
		return nil, m.loadError
	}
	return m.saves[id], nil
}

// DeleteGame mocks deleting a playthrough
func (m *MockStorage) DeleteGame(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	delete(m.saves, id)
	return nil
}
