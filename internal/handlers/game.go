package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/echoes-of-ruin/internal/services"
	"github.com/jwebster45206/echoes-of-ruin/internal/storage"
	"github.com/jwebster45206/echoes-of-ruin/pkg/character"
	"github.com/jwebster45206/echoes-of-ruin/pkg/gamedata"
	"github.com/jwebster45206/echoes-of-ruin/pkg/prompts"
	"github.com/jwebster45206/echoes-of-ruin/pkg/scene"
	"github.com/jwebster45206/echoes-of-ruin/pkg/state"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

var (
	errNameRequired      = errors.New("name field is required")
	errUnknownOrigin     = errors.New("unknown origin")
	errUnknownDifficulty = errors.New("unknown difficulty")
)

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}

// GameHandler manages playthrough lifecycle: creation, inspection
// and deletion.
type GameHandler struct {
	storage    storage.Storage
	narrator   services.NarratorService
	logger     *slog.Logger
	enableGore bool
}

func NewGameHandler(storage storage.Storage, narrator services.NarratorService, logger *slog.Logger, enableGore bool) *GameHandler {
	return &GameHandler{
		storage:    storage,
		narrator:   narrator,
		logger:     logger,
		enableGore: enableGore,
	}
}

// CreateGameRequest defines the request body for starting a new
// playthrough. Sandbox ignores the creation fields and uses the
// combat sandbox preset.
type CreateGameRequest struct {
	Name        string `json:"name"`
	Gender      string `json:"gender,omitempty"`
	Backstory   string `json:"backstory,omitempty"`
	Origin      string `json:"origin"`
	Difficulty  string `json:"difficulty"`
	Talent      string `json:"talent,omitempty"`
	Personality string `json:"personality,omitempty"`

	GodMode        bool   `json:"god_mode,omitempty"`
	CustomScenario string `json:"custom_scenario,omitempty"`
	Sandbox        bool   `json:"sandbox,omitempty"`
}

// GameResponse is returned by game creation and reads.
type GameResponse struct {
	ID        uuid.UUID            `json:"id"`
	Character *character.Character `json:"character"`
	Scene     *scene.Scene         `json:"scene"`
	TurnCount int                  `json:"turn_count"`
}

// ServeHTTP handles HTTP requests for playthrough operations
/// Routes:
// POST /v1/game         - Create new playthrough
// GET /v1/game/{id}     - Read playthrough by ID
// DELETE /v1/game/{id}  - Delete playthrough by ID
func (h *GameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.TrimPrefix(r.URL.Path, "/v1/game")
	var gameID uuid.UUID
	var err error

	if path != "" && path != "/" {
		idStr := strings.Trim(path, "/")
		gameID, err = uuid.Parse(idStr)
		if err != nil {
			h.logger.Warn("Invalid game ID", "id", idStr, "error", err)
			writeError(w, h.logger, http.StatusBadRequest, "Invalid game ID format")
			return
		}
	}

	switch r.Method {
	case http.MethodPost:
		h.handleCreate(w, r)

	case http.MethodGet:
		if gameID == uuid.Nil {
			writeError(w, h.logger, http.StatusBadRequest, "Game ID is required for GET requests")
			return
		}
		h.handleRead(w, r, gameID)

	case http.MethodDelete:
		if gameID == uuid.Nil {
			writeError(w, h.logger, http.StatusBadRequest, "Game ID is required for DELETE requests")
			return
		}
		h.handleDelete(w, r, gameID)

	default:
		h.logger.Warn("Method not allowed for game endpoint", "method", r.Method)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST, GET, DELETE")
	}
}

func (h *GameHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Creating new playthrough")

	var req CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	c, err := h.buildCharacter(req)
	if err != nil {
		h.logger.Warn("Invalid creation request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	action := prompts.AdventureStartAction
	switch {
	case req.Sandbox:
		action = prompts.SandboxStartAction
	case c.CustomScenario != "":
		action = prompts.CustomJourneyPrefix + c.CustomScenario
	}

	firstScene, err := h.narrator.GenerateScene(r.Context(), services.SceneRequest{
		Character:  c,
		Action:     action,
		TurnInfo:   prompts.NewJourneyTurnInfo,
		EnableGore: h.enableGore,
	})
	if err != nil {
		h.logger.Error("Failed to generate opening scene", "error", err)
		firstScene = scene.Fallback()
	}

	result, err := state.NewSceneWorker(firstScene, c, h.logger).Process()
	if err != nil {
		h.logger.Error("Failed to process opening scene", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to start playthrough")
		return
	}

	id := uuid.New()
	save := &storage.SavedGame{
		Character:    result.Character,
		TurnCount:    0,
		CurrentScene: result.FinalScene,
	}
	if err := h.storage.SaveGame(r.Context(), id, save); err != nil {
		h.logger.Error("Failed to save new playthrough", "error", err, "id", id.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to create playthrough")
		return
	}

	h.logger.Debug("Playthrough created", "id", id.String(), "character", result.Character.Name)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(GameResponse{
		ID:        id,
		Character: result.Character,
		Scene:     result.FinalScene,
		TurnCount: 0,
	}); err != nil {
		h.logger.Error("Failed to encode game response", "error", err)
	}
}

func (h *GameHandler) buildCharacter(req CreateGameRequest) (*character.Character, error) {
	if req.Sandbox {
		return gamedata.SandboxCharacter(), nil
	}

	if req.Name == "" {
		return nil, errNameRequired
	}
	origin, ok := gamedata.OriginByName(req.Origin)
	if !ok {
		return nil, errUnknownOrigin
	}
	difficulty, ok := gamedata.DifficultyByName(req.Difficulty)
	if !ok {
		return nil, errUnknownDifficulty
	}

	var talent character.Talent
	if len(origin.Talents) > 0 {
		talent = origin.Talents[0]
		for _, t := range origin.Talents {
			if t.Name == req.Talent {
				talent = t
				break
			}
		}
	}

	personality := gamedata.Personalities[0]
	for _, p := range gamedata.Personalities {
		if p.Name == req.Personality {
			personality = p
			break
		}
	}

	return character.New(character.CreationParams{
		Name:           req.Name,
		Gender:         req.Gender,
		Backstory:      req.Backstory,
		Difficulty:     difficulty,
		Origin:         origin,
		Talent:         talent,
		Personality:    personality,
		CustomScenario: req.CustomScenario,
		GodMode:        req.GodMode,
		WeaponStyles:   gamedata.AllWeaponStyles,
		MagicSchools:   gamedata.AllMagicSchools,
		Deities:        gamedata.AllDeities,
		StartingSkills: gamedata.ResolveStartingSkills(origin),
	}), nil
}

func (h *GameHandler) handleRead(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
	save, err := h.storage.LoadGame(r.Context(), gameID)
	if err != nil {
		h.logger.Error("Failed to load playthrough", "error", err, "id", gameID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load playthrough")
		return
	}
	if save == nil {
		h.logger.Warn("Playthrough not found", "id", gameID.String())
		writeError(w, h.logger, http.StatusNotFound, "Playthrough not found")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(GameResponse{
		ID:        gameID,
		Character: save.Character,
		Scene:     save.CurrentScene,
		TurnCount: save.TurnCount,
	}); err != nil {
		h.logger.Error("Failed to encode game response", "error", err)
	}
}

func (h *GameHandler) handleDelete(w http.ResponseWriter, r *http.Request, gameID uuid.UUID) {
	if err := h.storage.DeleteGame(r.Context(), gameID); err != nil {
		h.logger.Error("Failed to delete playthrough", "error", err, "id", gameID.String())
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete playthrough")
		return
	}
	h.logger.Debug("Playthrough deleted", "id", gameID.String())
	w.WriteHeader(http.StatusNoContent)
}
