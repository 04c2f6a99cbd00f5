package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/echoes-of-ruin/internal/services"
	"github.com/jwebster45206/echoes-of-ruin/internal/storage"
	"github.com/jwebster45206/echoes-of-ruin/pkg/actor"
	"github.com/jwebster45206/echoes-of-ruin/pkg/gamedata"
	"github.com/jwebster45206/echoes-of-ruin/pkg/scene"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

func seedSave(t *testing.T, sto *storage.MockStorage, save *storage.SavedGame) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, sto.SaveGame(context.Background(), id, save))
	return id
}

func explorationSave() *storage.SavedGame {
	return &storage.SavedGame{
		Character: gamedata.SandboxCharacter(),
		TurnCount: 3,
		CurrentScene: &scene.Scene{
			Description: "A quiet chamber.",
			Choices:     []string{"Search the rubble.", "Move on."},
			NPCs:        []actor.NPC{{ID: "npc-1", Name: "Mira", Disposition: "Wary"}},
		},
	}
}

func combatSave() *storage.SavedGame {
	return &storage.SavedGame{
		Character: gamedata.SandboxCharacter(),
		TurnCount: 2,
		CurrentScene: &scene.Scene{
			Description: "The crawler lunges.",
			Choices:     []string{"Attack.", "Defend."},
			Enemies: []actor.Enemy{{
				ID: "enemy-1", Name: "Pale Crawler",
				Stats: actor.EnemyStats{HP: 40, MaxHP: 40, Attack: 8, Defense: 3},
			}},
		},
	}
}

func postTurn(t *testing.T, h http.Handler, id uuid.UUID, choice string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(TurnRequest{Choice: choice})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/v1/game/"+id.String()+"/turn", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestTurnHandler_SuccessfulTurn(t *testing.T) {
	sto := storage.NewMockStorage()
	narrator := services.NewMockNarrator()
	narrator.SetScene(&scene.Scene{
		Description:      "You pry open the chest.",
		Choices:          []string{"Take the salve.", "Leave it."},
		InventoryChanges: []scene.InventoryChange{{ItemName: "healing_salve", Quantity: 1}},
	})

	id := seedSave(t, sto, explorationSave())
	handler := NewTurnHandler(sto, narrator, testLogger, true)

	rr := postTurn(t, handler, id, "Search the rubble.")
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp TurnResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.TurnCount)
	assert.Equal(t, 6, resp.Character.Inventory["healing_salve"], "5 starting salves plus the found one")
	assert.Nil(t, resp.Ending)

	// Hunger decayed outside combat.
	assert.Equal(t, 98, resp.Character.Hunger)

	// The save was advanced.
	saved, err := sto.LoadGame(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 4, saved.TurnCount)
	assert.Equal(t, "You pry open the chest.", saved.CurrentScene.Description)
}

func TestTurnHandler_PreviousNPCsReachNarrator(t *testing.T) {
	sto := storage.NewMockStorage()
	narrator := services.NewMockNarrator()

	id := seedSave(t, sto, explorationSave())
	handler := NewTurnHandler(sto, narrator, testLogger, true)

	rr := postTurn(t, handler, id, "Talk to Mira.")
	require.Equal(t, http.StatusOK, rr.Code)

	calls := narrator.GetCalls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0].NPCs, 1)
	assert.Equal(t, "Mira", calls[0].NPCs[0].Name)
}

func TestTurnHandler_WorldEventDirective(t *testing.T) {
	sto := storage.NewMockStorage()
	narrator := services.NewMockNarrator()

	save := explorationSave()
	save.TurnCount = 4 // the next turn is the fifth
	id := seedSave(t, sto, save)
	handler := NewTurnHandler(sto, narrator, testLogger, true)

	rr := postTurn(t, handler, id, "Move on.")
	require.Equal(t, http.StatusOK, rr.Code)

	calls := narrator.GetCalls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Action, "WORLD EVENT")
}

func TestTurnHandler_NoWorldEventInCombat(t *testing.T) {
	sto := storage.NewMockStorage()
	narrator := services.NewMockNarrator()

	save := combatSave()
	save.TurnCount = 4
	id := seedSave(t, sto, save)
	handler := NewTurnHandler(sto, narrator, testLogger, true)

	rr := postTurn(t, handler, id, "Attack.")
	require.Equal(t, http.StatusOK, rr.Code)

	calls := narrator.GetCalls()
	require.Len(t, calls, 1)
	assert.NotContains(t, calls[0].Action, "WORLD EVENT")
}

func TestTurnHandler_SkillUsageResolvedByEngine(t *testing.T) {
	sto := storage.NewMockStorage()
	narrator := services.NewMockNarrator()

	id := seedSave(t, sto, combatSave())
	handler := NewTurnHandler(sto, narrator, testLogger, true)

	// The sandbox preset knows Defensive Stance from its origin.
	rr := postTurn(t, handler, id, "Use skill: Defensive Stance")
	require.Equal(t, http.StatusOK, rr.Code)

	calls := narrator.GetCalls()
	require.Len(t, calls, 1)
	// The action forwarded to the narrator is the engine's account of
	// the skill, not the raw choice text.
	assert.NotEqual(t, "Use skill: Defensive Stance", calls[0].Action)
	assert.Contains(t, calls[0].Action, "Defensive Stance")
}

func TestTurnHandler_NarratorFailureLeavesStateUntouched(t *testing.T) {
	sto := storage.NewMockStorage()
	narrator := services.NewMockNarrator()
	narrator.SetGenerateSceneError(errors.New("quota exhausted"))

	save := explorationSave()
	startingHunger := save.Character.Hunger
	id := seedSave(t, sto, save)
	handler := NewTurnHandler(sto, narrator, testLogger, true)

	rr := postTurn(t, handler, id, "Search the rubble.")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp TurnResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TurnCount, "turn count unchanged")
	assert.Equal(t, startingHunger, resp.Character.Hunger, "survival decay not applied")
	assert.False(t, resp.Scene.GameOver)
	assert.NotEmpty(t, resp.Scene.Choices)

	// The stored save still reflects the pre-turn state.
	saved, err := sto.LoadGame(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 3, saved.TurnCount)
	assert.Equal(t, "A quiet chamber.", saved.CurrentScene.Description)
}

func TestTurnHandler_PermadeathDeletesSave(t *testing.T) {
	sto := storage.NewMockStorage()
	narrator := services.NewMockNarrator()
	narrator.SetScene(&scene.Scene{
		Description: "The blade finds your throat.",
		Choices:     []string{},
		GameOver:    true,
		Reason:      "Your journey ends in the dark.",
	})

	save := explorationSave()
	nightmare, ok := gamedata.DifficultyByName("Nightmare")
	require.True(t, ok)
	save.Character.Difficulty = nightmare
	save.Character.Stats.HP = 0
	id := seedSave(t, sto, save)
	handler := NewTurnHandler(sto, narrator, testLogger, true)

	rr := postTurn(t, handler, id, "Fight to the end.")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp TurnResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Ending)
	assert.True(t, resp.Ending.Permadeath)
	assert.True(t, resp.Scene.GameOver)

	saved, err := sto.LoadGame(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, saved, "permadeath save must be deleted")
	assert.Contains(t, sto.DeleteCalls, id)
}

func TestTurnHandler_GoreSoftening(t *testing.T) {
	sto := storage.NewMockStorage()
	narrator := services.NewMockNarrator()
	narrator.SetScene(&scene.Scene{
		Description: "The crawler's entrails spill out.",
		Choices:     []string{"Step past.", "Look away."},
	})

	id := seedSave(t, sto, explorationSave())
	handler := NewTurnHandler(sto, narrator, testLogger, false)

	rr := postTurn(t, handler, id, "Strike it down.")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp TurnResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Scene.Description, "entrails")
	assert.Contains(t, resp.Scene.Description, "wounds")
}

func TestTurnHandler_Validation(t *testing.T) {
	sto := storage.NewMockStorage()
	narrator := services.NewMockNarrator()
	handler := NewTurnHandler(sto, narrator, testLogger, true)

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/game/"+uuid.NewString()+"/turn", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("bad game id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/game/not-a-uuid/turn", strings.NewReader(`{"choice":"go"}`))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("empty choice", func(t *testing.T) {
		id := seedSave(t, sto, explorationSave())
		rr := postTurn(t, handler, id, "  ")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown game", func(t *testing.T) {
		rr := postTurn(t, handler, uuid.New(), "go")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("game already over", func(t *testing.T) {
		save := explorationSave()
		save.CurrentScene.GameOver = true
		id := seedSave(t, sto, save)
		rr := postTurn(t, handler, id, "go")
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}
