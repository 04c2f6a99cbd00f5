package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/echoes-of-ruin/internal/handlers"
	"github.com/jwebster45206/echoes-of-ruin/pkg/gamedata"
)

type ConsoleConfig struct {
	APIBaseURL string
	Timeout    time.Duration
}

func main() {
	cfg := &ConsoleConfig{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		// Narrator turns can take over a minute on slow models.
		Timeout: 3 * time.Minute,
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	if !testConnection(client, cfg.APIBaseURL) {
		fmt.Fprintf(os.Stderr, "Could not connect to API. Please ensure the API is running.\nTry: docker-compose up -d\n")
		os.Exit(1)
	}

	req, err := promptForGame(bufio.NewReader(os.Stdin))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nCreating your game. The narrator is writing the opening scene...")
	game, err := createGame(client, cfg.APIBaseURL, *req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(NewConsoleUI(cfg, client, game),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// promptForGame walks the player through game setup on stdin before the
// full-screen UI takes over.
func promptForGame(in *bufio.Reader) (*handlers.CreateGameRequest, error) {
	fmt.Println("ECHOES OF RUIN")
	fmt.Println()
	fmt.Println("  1 - New Adventure")
	fmt.Println("  2 - Custom Journey")
	fmt.Println("  3 - Combat Sandbox")
	fmt.Print("\nSelect a mode by number: ")

	mode, err := readChoice(in, 3)
	if err != nil {
		return nil, err
	}

	if mode == 3 {
		return &handlers.CreateGameRequest{Sandbox: true}, nil
	}

	req := &handlers.CreateGameRequest{}

	fmt.Print("\nCharacter name: ")
	name, err := readLine(in)
	if err != nil || name == "" {
		return nil, fmt.Errorf("a character name is required")
	}
	req.Name = name

	fmt.Println("\nOrigins:")
	for i, o := range gamedata.Origins {
		fmt.Printf("  %d - %s\n      %s\n", i+1, o.Name, o.Description)
	}
	fmt.Print("\nSelect an origin by number: ")
	pick, err := readChoice(in, len(gamedata.Origins))
	if err != nil {
		return nil, err
	}
	req.Origin = gamedata.Origins[pick-1].Name

	fmt.Println("\nDifficulties:")
	for i, d := range gamedata.Difficulties {
		fmt.Printf("  %d - %s\n      %s\n", i+1, d.Name, d.Description)
	}
	fmt.Print("\nSelect a difficulty by number: ")
	pick, err = readChoice(in, len(gamedata.Difficulties))
	if err != nil {
		return nil, err
	}
	req.Difficulty = gamedata.Difficulties[pick-1].Name

	if mode == 2 {
		fmt.Print("\nDescribe your custom journey in a sentence or two: ")
		premise, err := readLine(in)
		if err != nil || premise == "" {
			return nil, fmt.Errorf("a custom journey needs a premise")
		}
		req.CustomScenario = premise
	}

	return req, nil
}

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func readChoice(in *bufio.Reader, max int) (int, error) {
	line, err := readLine(in)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > max {
		return 0, fmt.Errorf("invalid selection")
	}
	return n, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
