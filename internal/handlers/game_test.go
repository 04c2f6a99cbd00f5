package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/echoes-of-ruin/internal/services"
	"github.com/jwebster45206/echoes-of-ruin/internal/storage"
	"github.com/jwebster45206/echoes-of-ruin/pkg/scene"
)

func postGame(t *testing.T, h http.Handler, req CreateGameRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodPost, "/v1/game", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	return rr
}

func TestGameHandler_Create(t *testing.T) {
	sto := storage.NewMockStorage()
	narrator := services.NewMockNarrator()
	narrator.SetScene(&scene.Scene{
		Description: "The gate groans open before you.",
		Choices:     []string{"Enter.", "Circle the walls.", "Listen."},
	})
	handler := NewGameHandler(sto, narrator, testLogger, true)

	rr := postGame(t, handler, CreateGameRequest{
		Name:       "Aldous",
		Origin:     "Fallen Knight",
		Difficulty: "Trial",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp GameResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "Aldous", resp.Character.Name)
	assert.Equal(t, "Fallen Knight", resp.Character.Origin.Name)
	assert.Equal(t, 0, resp.TurnCount)
	assert.Equal(t, "The gate groans open before you.", resp.Scene.Description)

	// The playthrough is persisted and readable.
	saved, err := sto.LoadGame(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Aldous", saved.Character.Name)

	// Origin skills came with the character.
	assert.True(t, saved.Character.HasSkill("knight_defensive_stance"))
}

func TestGameHandler_CreateSandbox(t *testing.T) {
	sto := storage.NewMockStorage()
	narrator := services.NewMockNarrator()
	handler := NewGameHandler(sto, narrator, testLogger, true)

	rr := postGame(t, handler, CreateGameRequest{Sandbox: true})
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp GameResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Trial Warrior", resp.Character.Name)
	assert.Equal(t, 150, resp.Character.Stats.MaxHP)

	calls := narrator.GetCalls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Action, "COMBAT SANDBOX MODE")
}

func TestGameHandler_CreateCustomJourney(t *testing.T) {
	sto := storage.NewMockStorage()
	narrator := services.NewMockNarrator()
	handler := NewGameHandler(sto, narrator, testLogger, true)

	rr := postGame(t, handler, CreateGameRequest{
		Name:           "Vex",
		Origin:         "Outcast Scholar",
		Difficulty:     "Nightmare",
		CustomScenario: "I wake chained in a flooded crypt.",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	calls := narrator.GetCalls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Action, "[CUSTOM JOURNEY]: I wake chained in a flooded crypt.")
}

func TestGameHandler_CreateNarratorFailureFallsBack(t *testing.T) {
	sto := storage.NewMockStorage()
	narrator := services.NewMockNarrator()
	narrator.SetGenerateSceneError(errors.New("quota exhausted"))
	handler := NewGameHandler(sto, narrator, testLogger, true)

	rr := postGame(t, handler, CreateGameRequest{
		Name:       "Aldous",
		Origin:     "Fallen Knight",
		Difficulty: "Trial",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp GameResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Scene.Choices, "fallback scene must offer retry choices")
	assert.False(t, resp.Scene.GameOver)
}

func TestGameHandler_CreateValidation(t *testing.T) {
	sto := storage.NewMockStorage()
	narrator := services.NewMockNarrator()
	handler := NewGameHandler(sto, narrator, testLogger, true)

	tests := []struct {
		name string
		req  CreateGameRequest
	}{
		{name: "missing name", req: CreateGameRequest{Origin: "Fallen Knight", Difficulty: "Trial"}},
		{name: "unknown origin", req: CreateGameRequest{Name: "A", Origin: "Plumber", Difficulty: "Trial"}},
		{name: "unknown difficulty", req: CreateGameRequest{Name: "A", Origin: "Fallen Knight", Difficulty: "Casual"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postGame(t, handler, tt.req)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestGameHandler_ReadAndDelete(t *testing.T) {
	sto := storage.NewMockStorage()
	narrator := services.NewMockNarrator()
	handler := NewGameHandler(sto, narrator, testLogger, true)

	id := seedSave(t, sto, explorationSave())

	req := httptest.NewRequest(http.MethodGet, "/v1/game/"+id.String(), nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp GameResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, 3, resp.TurnCount)

	req = httptest.NewRequest(http.MethodDelete, "/v1/game/"+id.String(), nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusNoContent, rr.Code)

	saved, err := sto.LoadGame(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, saved)
}

func TestGameHandler_ReadNotFound(t *testing.T) {
	handler := NewGameHandler(storage.NewMockStorage(), services.NewMockNarrator(), testLogger, true)

	req := httptest.NewRequest(http.MethodGet, "/v1/game/"+uuid.NewString(), nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGameHandler_BadID(t *testing.T) {
	handler := NewGameHandler(storage.NewMockStorage(), services.NewMockNarrator(), testLogger, true)

	req := httptest.NewRequest(http.MethodGet, "/v1/game/not-a-uuid", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
