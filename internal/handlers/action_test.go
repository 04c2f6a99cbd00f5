package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/echoes-of-ruin/internal/storage"
	"github.com/jwebster45206/echoes-of-ruin/pkg/state"
)

func postAction(t *testing.T, h http.Handler, id uuid.UUID, action state.SystemAction) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(action)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/v1/game/"+id.String()+"/action", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestActionHandler_UseItem(t *testing.T) {
	sto := storage.NewMockStorage()
	handler := NewActionHandler(sto, testLogger)

	save := explorationSave()
	save.Character.Stats.HP = 100
	id := seedSave(t, sto, save)

	rr := postAction(t, handler, id, state.SystemAction{
		Type:   state.ActionUseItem,
		ItemID: "healing_salve",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ActionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 125, resp.Character.Stats.HP)
	assert.Equal(t, 4, resp.Character.Inventory["healing_salve"])
	assert.NotEmpty(t, resp.Notification)

	// The notification is appended to the running scene.
	assert.Contains(t, resp.Scene.Description, resp.Notification)

	saved, err := sto.LoadGame(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 125, saved.Character.Stats.HP)
}

func TestActionHandler_RejectionIsNotAnError(t *testing.T) {
	sto := storage.NewMockStorage()
	handler := NewActionHandler(sto, testLogger)

	id := seedSave(t, sto, explorationSave())

	rr := postAction(t, handler, id, state.SystemAction{
		Type:   state.ActionUseItem,
		ItemID: "item_that_does_not_exist",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ActionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Notification, "don't recognize")
}

func TestActionHandler_Validation(t *testing.T) {
	sto := storage.NewMockStorage()
	handler := NewActionHandler(sto, testLogger)

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/game/"+uuid.NewString()+"/action", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("missing type", func(t *testing.T) {
		id := seedSave(t, sto, explorationSave())
		rr := postAction(t, handler, id, state.SystemAction{})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown game", func(t *testing.T) {
		rr := postAction(t, handler, uuid.New(), state.SystemAction{Type: state.ActionUseItem, ItemID: "bandages"})
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("already over", func(t *testing.T) {
		save := explorationSave()
		save.CurrentScene.GameOver = true
		id := seedSave(t, sto, save)

		rr := postAction(t, handler, id, state.SystemAction{Type: state.ActionUseItem, ItemID: "healing_salve"})
		assert.Equal(t, http.StatusConflict, rr.Code)

		// The finished save must not be touched.
		saved, err := sto.LoadGame(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, 5, saved.Character.Inventory["healing_salve"])
	})
}
