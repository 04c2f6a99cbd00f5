package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/echoes-of-ruin/internal/services"
	"github.com/jwebster45206/echoes-of-ruin/internal/storage"
	"github.com/jwebster45206/echoes-of-ruin/pkg/actor"
	"github.com/jwebster45206/echoes-of-ruin/pkg/character"
	"github.com/jwebster45206/echoes-of-ruin/pkg/prompts"
	"github.com/jwebster45206/echoes-of-ruin/pkg/scene"
	"github.com/jwebster45206/echoes-of-ruin/pkg/state"
	"github.com/jwebster45206/echoes-of-ruin/pkg/textfilter"
)

// worldEventTurnInterval is how often the world intrudes on a quiet
// playthrough. Combat turns don't count.
const worldEventTurnInterval = 5

// TurnHandler resolves one player turn: survival tick, optional
// engine-side skill resolution, narrator call, and scene application.
type TurnHandler struct {
	storage    storage.Storage
	narrator   services.NarratorService
	logger     *slog.Logger
	enableGore bool
	goreFilter *textfilter.GoreFilter
}

func NewTurnHandler(storage storage.Storage, narrator services.NarratorService, logger *slog.Logger, enableGore bool) *TurnHandler {
	return &TurnHandler{
		storage:    storage,
		narrator:   narrator,
		logger:     logger,
		enableGore: enableGore,
		goreFilter: textfilter.NewGoreFilter(),
	}
}

// TurnRequest is the player's chosen action for this turn.
type TurnRequest struct {
	Choice string `json:"choice"`
}

// TurnResponse carries the state after the turn resolved.
type TurnResponse struct {
	ID        uuid.UUID            `json:"id"`
	Character *character.Character `json:"character"`
	Scene     *scene.Scene         `json:"scene"`
	TurnCount int                  `json:"turn_count"`
	Ending    *state.EndingResult  `json:"ending,omitempty"`
}

// ServeHTTP handles POST /v1/game/{id}/turn
func (h *TurnHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for turn endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
		return
	}

	gameID, ok := parseGameSubpath(r.URL.Path, "/turn")
	if !ok {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid game ID format")
		return
	}

	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if strings.TrimSpace(req.Choice) == "" {
		writeError(w, h.logger, http.StatusBadRequest, "choice field is required")
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

	newTurnCount := save.TurnCount + 1

	var enemies []actor.Enemy
	var previousNPCs []actor.NPC
	if save.CurrentScene != nil {
		enemies = actor.Living(save.CurrentScene.Enemies)
		previousNPCs = save.CurrentScene.NPCs
	}
	inCombat := len(enemies) > 0

	turnResult := state.AdvanceTurn(save.Character, inCombat)
	charForAI := turnResult.Character
	action := req.Choice

	// In combat, skill choices resolve in the engine; the narrator only
	// dramatizes the already-computed outcome.
	if skillName, isSkill := prompts.SkillNameFromChoice(req.Choice); inCombat && isSkill {
		if skill := findSkillByName(charForAI, skillName); skill != nil {
			targetID := ""
			if len(enemies) > 0 {
				targetID = enemies[0].ID
			}
			skillResult := state.UseSkill(charForAI, enemies, skill.ID, targetID)
			charForAI = skillResult.Character
			enemies = skillResult.Enemies
			action = skillResult.Log
		}
	}

	if newTurnCount%worldEventTurnInterval == 0 && !inCombat {
		action += "\n\n" + prompts.WorldEventDirective
	}

	nextScene, err := h.narrator.GenerateScene(r.Context(), services.SceneRequest{
		Character:  charForAI,
		Action:     action,
		TurnInfo:   turnResult.TurnInfo,
		Enemies:    enemies,
		NPCs:       previousNPCs,
		EnableGore: h.enableGore,
	})
	if err != nil {
		// The turn did not happen. Nothing is persisted; the player can
		// retry from the same state.
		h.logger.Error("Narrator call failed", "error", err, "id", gameID.String())
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(TurnResponse{
			ID:        gameID,
			Character: save.Character,
			Scene:     scene.Fallback(),
			TurnCount: save.TurnCount,
		}); err != nil {
			h.logger.Error("Failed to encode turn response", "error", err)
		}
		return
	}

	result, err := state.NewSceneWorker(nextScene, charForAI, h.logger).
		WithPreviousNPCs(previousNPCs).
		Process()
	if err != nil {
		h.logger.Error("Failed to process scene", "error", err, "id", gameID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to process turn")
		return
	}

	if !h.enableGore {
		result.FinalScene.Description = h.goreFilter.Soften(result.FinalScene.Description)
	}

	if result.Ending != nil && result.Ending.Permadeath {
		if err := h.storage.DeleteGame(r.Context(), gameID); err != nil {
			h.logger.Error("Failed to delete permadeath save", "error", err, "id", gameID.String())
		}
	} else {
		save.Character = result.Character
		save.TurnCount = newTurnCount
		save.CurrentScene = result.FinalScene
		if err := h.storage.SaveGame(r.Context(), gameID, save); err != nil {
			h.logger.Error("Failed to save playthrough", "error", err, "id", gameID.String())
			writeError(w, h.logger, http.StatusInternalServerError, "Failed to save playthrough")
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(TurnResponse{
		ID:        gameID,
		Character: result.Character,
		Scene:     result.FinalScene,
		TurnCount: newTurnCount,
		Ending:    result.Ending,
	}); err != nil {
		h.logger.Error("Failed to encode turn response", "error", err)
	}
}

// parseGameSubpath extracts the game id from paths shaped like
// /v1/game/{id}{suffix}.
func parseGameSubpath(path, suffix string) (uuid.UUID, bool) {
	p := strings.TrimPrefix(path, "/v1/game/")
	p = strings.TrimSuffix(p, suffix)
	id, err := uuid.Parse(strings.Trim(p, "/"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func findSkillByName(c *character.Character, name string) *character.Skill {
	for i := range c.Skills {
		if c.Skills[i].Name == name {
			return &c.Skills[i]
		}
	}
	return nil
}
