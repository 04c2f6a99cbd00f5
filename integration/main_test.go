//go:build integration
// +build integration

// Integration tests run against a live API with redis and a narrator
// configured. Start the stack first, then:
//
//	go test -tags=integration ./integration/
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/jwebster45206/echoes-of-ruin/internal/handlers"
	"github.com/jwebster45206/echoes-of-ruin/pkg/state"
)

var (
	apiBaseURL string
	client     *http.Client
)

func TestMain(m *testing.M) {
	apiBaseURL = os.Getenv("API_BASE_URL")
	if apiBaseURL == "" {
		apiBaseURL = "http://localhost:8080"
	}
	client = &http.Client{Timeout: 3 * time.Minute}

	fmt.Printf("Running Echoes of Ruin integration tests\n")
	fmt.Printf("   API Base URL: %s\n", apiBaseURL)

	os.Exit(m.Run())
}

func TestHealth(t *testing.T) {
	resp, err := client.Get(apiBaseURL + "/health")
	if err != nil {
		t.Fatalf("health check failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", resp.StatusCode)
	}
}

// TestPlaythroughLifecycle creates a sandbox game, plays a turn, uses an
// item, and deletes the save. The narrator is live, so only structural
// properties of the responses are asserted.
func TestPlaythroughLifecycle(t *testing.T) {
	game := createSandboxGame(t)
	defer deleteGame(t, game.ID.String())

	if game.Character == nil {
		t.Fatal("expected a character on the created game")
	}
	if game.Scene == nil || game.Scene.Description == "" {
		t.Fatal("expected an opening scene with a description")
	}

	// Play one turn with a free-form action.
	turnResp := postJSON(t, fmt.Sprintf("%s/v1/game/%s/turn", apiBaseURL, game.ID),
		handlers.TurnRequest{Choice: "Look around carefully."}, http.StatusOK)
	var turn handlers.TurnResponse
	if err := json.Unmarshal(turnResp, &turn); err != nil {
		t.Fatalf("failed to parse turn response: %v", err)
	}
	if turn.TurnCount != game.TurnCount+1 {
		t.Errorf("expected turn count %d, got %d", game.TurnCount+1, turn.TurnCount)
	}
	if turn.Scene == nil || turn.Scene.Description == "" {
		t.Error("expected a scene from the turn")
	}

	// Use a healing item from the sandbox loadout.
	actionResp := postJSON(t, fmt.Sprintf("%s/v1/game/%s/action", apiBaseURL, game.ID),
		state.SystemAction{Type: state.ActionUseItem, ItemID: "healing_salve"}, http.StatusOK)
	var action handlers.ActionResponse
	if err := json.Unmarshal(actionResp, &action); err != nil {
		t.Fatalf("failed to parse action response: %v", err)
	}
	if action.Notification == "" {
		t.Error("expected a notification from using an item")
	}

	// Reload and confirm the save advanced.
	resp, err := client.Get(fmt.Sprintf("%s/v1/game/%s", apiBaseURL, game.ID))
	if err != nil {
		t.Fatalf("failed to read game: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 reading game, got %d", resp.StatusCode)
	}
	var reloaded handlers.GameResponse
	if err := json.NewDecoder(resp.Body).Decode(&reloaded); err != nil {
		t.Fatalf("failed to parse game response: %v", err)
	}
	if reloaded.TurnCount != turn.TurnCount {
		t.Errorf("expected persisted turn count %d, got %d", turn.TurnCount, reloaded.TurnCount)
	}
}

func createSandboxGame(t *testing.T) *handlers.GameResponse {
	t.Helper()
	body := postJSON(t, apiBaseURL+"/v1/game",
		handlers.CreateGameRequest{Sandbox: true}, http.StatusCreated)
	var game handlers.GameResponse
	if err := json.Unmarshal(body, &game); err != nil {
		t.Fatalf("failed to parse game response: %v", err)
	}
	return &game
}

func deleteGame(t *testing.T, id string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/game/%s", apiBaseURL, id), nil)
	if err != nil {
		t.Fatalf("failed to build delete request: %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("failed to delete game: %v", err)
	}
	_ = resp.Body.Close()
}

func postJSON(t *testing.T, url string, payload interface{}, wantStatus int) []byte {
	t.Helper()
	jsonData, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	resp, err := client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		t.Fatalf("request to %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	if resp.StatusCode != wantStatus {
		t.Fatalf("expected status %d from %s, got %d: %s", wantStatus, url, resp.StatusCode, string(body))
	}
	return body
}
