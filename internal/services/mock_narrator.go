package services

import (
	"context"
	"sync"

	"github.com/jwebster45206/echoes-of-ruin/pkg/scene"
)

// MockNarrator is a mock implementation of NarratorService for testing
type MockNarrator struct {
	GenerateSceneFunc func(ctx context.Context, req SceneRequest) (*scene.Scene, error)

	// Track calls for testing
	GenerateSceneCalls []SceneRequest

	mu sync.Mutex // protects all fields above
}

// NewMockNarrator creates a new mock narrator service
func NewMockNarrator() *MockNarrator {
	return &MockNarrator{
		GenerateSceneCalls: make([]SceneRequest, 0),
	}
}

// GenerateScene mocks scene generation
func (m *MockNarrator) GenerateScene(ctx context.Context, req SceneRequest) (*scene.Scene, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.GenerateSceneCalls = append(m.GenerateSceneCalls, req)

	if m.GenerateSceneFunc != nil {
		return m.GenerateSceneFunc(ctx, req)
	}

	// Default behavior - a minimal valid scene
	return &scene.Scene{
		Description: "Mock scene description.",
		Choices:     []string{"Continue.", "Look around.", "Wait."},
		GameOver:    false,
	}, nil
}

// SetGenerateSceneError sets up the mock to return an error on GenerateScene
func (m *MockNarrator) SetGenerateSceneError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateSceneFunc = func(ctx context.Context, req SceneRequest) (*scene.Scene, error) {
		return nil, err
	}
}

// SetScene sets up the mock to return a fixed scene
func (m *MockNarrator) SetScene(s *scene.Scene) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateSceneFunc = func(ctx context.Context, req SceneRequest) (*scene.Scene, error) {
		return s, nil
	}
}

// GetCalls returns a copy of the call tracking data in a thread-safe way
func (m *MockNarrator) GetCalls() []SceneRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]SceneRequest, len(m.GenerateSceneCalls))
	copy(calls, m.GenerateSceneCalls)
	return calls
}

// Reset clears all call tracking
func (m *MockNarrator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GenerateSceneCalls = make([]SceneRequest, 0)
	m.GenerateSceneFunc = nil
}
