package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jwebster45206/echoes-of-ruin/internal/storage"
	"github.com/jwebster45206/echoes-of-ruin/pkg/character"
	"github.com/jwebster45206/echoes-of-ruin/pkg/scene"
	"github.com/jwebster45206/echoes-of-ruin/pkg/state"
)

// ActionHandler resolves system actions: item use, crafting, sanctuary
// management and level-up path choices. These never call the narrator.
type ActionHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewActionHandler(storage storage.Storage, logger *slog.Logger) *ActionHandler {
	return &ActionHandler{
		storage: storage,
		logger:  logger,
	}
}

// ActionResponse carries the state after a system action resolved.
type ActionResponse struct {
	ID           uuid.UUID            `json:"id"`
	Character    *character.Character `json:"character"`
	Scene        *scene.Scene         `json:"scene"`
	Notification string               `json:"notification,omitempty"`
}

// ServeHTTP handles POST /v1/game/{id}/action
func (h *ActionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for action endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
		return
	}

	gameID, ok := parseGameSubpath(r.URL.Path, "/action")
	if !ok {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid game ID format")
		return
	}

	var action state.SystemAction
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if action.Type == "" {
		writeError(w, h.logger, http.StatusBadRequest, "type field is required")
		return
	}

	save, err := h.storage.LoadGame(r.Context(), gameID)
	if err != nil {
		h.logger.Error("Failed to load playthrough", "error", err, "id", gameID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load playthrough")
		return
	}
	if save == nil {
		writeError(w, h.logger, http.StatusNotFound, "Playthrough not found")
		return
	}
	if save.CurrentScene != nil && save.CurrentScene.GameOver {
		writeError(w, h.logger, http.StatusConflict, "Playthrough is already over")
		return
	}

	result := state.HandleSystemAction(save.Character, action)
	save.Character = result.Character

	// The notification is folded into the running scene text so the
	// player sees it inline with the narration.
	if result.Notification != "" && save.CurrentScene != nil {
		save.CurrentScene.Description += "\n\n" + result.Notification
	}

	if err := h.storage.SaveGame(r.Context(), gameID, save); err != nil {
		h.logger.Error("Failed to save playthrough", "error", err, "id", gameID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save playthrough")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ActionResponse{
		ID:           gameID,
		Character:    result.Character,
		Scene:        save.CurrentScene,
		Notification: result.Notification,
	}); err != nil {
		h.logger.Error("Failed to encode action response", "error", err)
	}
}
