package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jwebster45206/echoes-of-ruin/pkg/prompts"
	"github.com/jwebster45206/echoes-of-ruin/pkg/scene"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	DefaultGeminiModel       = "gemini-2.5-flash"
	DefaultGeminiTemperature = 0.7
)

// GeminiService implements NarratorService against the Gemini REST
// API. It holds a pool of API keys; a failed call rotates to the next
// key and retries once, which rides out per-key quota exhaustion.
type GeminiService struct {
	keys       []string
	keyIndex   int
	mu         sync.Mutex // protects keyIndex
	modelName  string
	httpClient *http.Client
	logger     *slog.Logger
}

type GeminiPart struct {
	Text string `json:"text"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

type GeminiGenerationConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	ResponseMimeType string   `json:"responseMimeType,omitempty"`
}

type GeminiGenerateRequest struct {
	Contents          []GeminiContent         `json:"contents"`
	SystemInstruction *GeminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GeminiGenerationConfig `json:"generationConfig,omitempty"`
}

type GeminiGenerateResponse struct {
	Candidates []struct {
		Content      GeminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

func NewGeminiService(apiKeys []string, modelName string, logger *slog.Logger) *GeminiService {
	if modelName == "" {
		modelName = DefaultGeminiModel
	}
	return &GeminiService{
		keys:      apiKeys,
		modelName: modelName,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		logger: logger,
	}
}

// currentKey returns the active API key.
func (g *GeminiService) currentKey() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.keys) == 0 {
		return ""
	}
	return g.keys[g.keyIndex]
}

// rotateKey advances to the next key in the pool. It reports false
// when there is no other key to rotate to.
func (g *GeminiService) rotateKey() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.keys) < 2 {
		return false
	}
	g.keyIndex = (g.keyIndex + 1) % len(g.keys)
	g.logger.Info("Rotated Gemini API key", "key_index", g.keyIndex)
	return true
}

// GenerateScene builds the turn prompt, calls Gemini, and parses the
// JSON scene from the response.
func (g *GeminiService) GenerateScene(ctx context.Context, req SceneRequest) (*scene.Scene, error) {
	prompt, err := prompts.BuildScenePrompt(req.Character, req.Action, req.TurnInfo, req.Enemies, req.NPCs, req.EnableGore)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene prompt: %w", err)
	}
	systemInstruction := prompts.SystemInstruction(len(req.Enemies) > 0)

	text, err := g.generateWithRetry(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	s, err := parseScene(text)
	if err != nil {
		g.logger.Error("Failed to parse narrator response", "error", err, "response", text)
		return nil, err
	}
	return s, nil
}

// generateWithRetry makes the API call with the current key. On
// failure it rotates the key pool and retries exactly once.
func (g *GeminiService) generateWithRetry(ctx context.Context, systemInstruction string, prompt string) (string, error) {
	text, err := g.generateContent(ctx, systemInstruction, prompt)
	if err == nil {
		return text, nil
	}
	if ctx.Err() != nil {
		return "", err
	}
	if !g.rotateKey() {
		return "", err
	}
	g.logger.Warn("Gemini call failed, retrying with rotated key", "error", err)
	return g.generateContent(ctx, systemInstruction, prompt)
}

func (g *GeminiService) generateContent(ctx context.Context, systemInstruction string, prompt string) (string, error) {
	key := g.currentKey()
	if key == "" {
		return "", fmt.Errorf("no Gemini API key configured")
	}

	temperature := DefaultGeminiTemperature
	geminiReq := GeminiGenerateRequest{
		Contents: []GeminiContent{
			{Role: "user", Parts: []GeminiPart{{Text: prompt}}},
		},
		SystemInstruction: &GeminiContent{
			Parts: []GeminiPart{{Text: systemInstruction}},
		},
		GenerationConfig: &GeminiGenerationConfig{
			Temperature:      &temperature,
			ResponseMimeType: "application/json",
		},
	}

	reqBody, err := json.Marshal(geminiReq)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", geminiBaseURL, g.modelName)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", key)
	req.Header.Set("content-type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var geminiResp GeminiGenerateResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if geminiResp.Error != nil {
		return "", fmt.Errorf("API error: %s", geminiResp.Error.Message)
	}

	var responseText string
	for _, candidate := range geminiResp.Candidates {
		for _, part := range candidate.Content.Parts {
			responseText += part.Text
		}
	}
	if responseText == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return responseText, nil
}

// parseScene decodes the model's JSON output into a scene, tolerating
// markdown code fences the model sometimes wraps around it.
func parseScene(text string) (*scene.Scene, error) {
	jsonStr := strings.TrimSpace(text)
	if strings.HasPrefix(jsonStr, "```json") {
		jsonStr = strings.TrimPrefix(jsonStr, "```json")
		jsonStr = strings.TrimSuffix(strings.TrimSpace(jsonStr), "```")
		jsonStr = strings.TrimSpace(jsonStr)
	} else if strings.HasPrefix(jsonStr, "```") {
		jsonStr = strings.TrimPrefix(jsonStr, "```")
		jsonStr = strings.TrimSuffix(strings.TrimSpace(jsonStr), "```")
		jsonStr = strings.TrimSpace(jsonStr)
	}

	var s scene.Scene
	if err := json.Unmarshal([]byte(jsonStr), &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene JSON: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return &s, nil
}
