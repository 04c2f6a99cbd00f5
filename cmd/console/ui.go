package main

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/echoes-of-ruin/internal/handlers"
	"github.com/jwebster45206/echoes-of-ruin/pkg/scene"
	"github.com/jwebster45206/echoes-of-ruin/pkg/state"
)

const (
	AgentName       = "Narrator"
	PlaceHolderText = "Type an action, a choice number, or /help..."
)

// Roles for entries in the local story log.
const (
	rolePlayer   = "player"
	roleNarrator = "narrator"
	roleSystem   = "system"
)

type storyEntry struct {
	Role string
	Text string
}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config        *ConsoleConfig
	client        *http.Client
	game          *handlers.GameResponse
	ending        *state.EndingResult
	history       []storyEntry
	chatViewport  viewport.Model
	metaViewport  viewport.Model
	textarea      textarea.Model
	ready         bool
	width         int
	height        int
	err           error
	loading       bool
	showQuitModal bool
	progressTick  int
}

type turnResultMsg struct {
	response *handlers.TurnResponse
	err      error
}

type actionResultMsg struct {
	response *handlers.ActionResponse
	err      error
}

type progressTickMsg struct{}

var (
	chatPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	choiceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")) // pale yellow

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	endingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // red
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, game *handlers.GameResponse) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = PlaceHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 1000
	ta.SetWidth(50)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	chatVp := viewport.New(50, 20)
	chatVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	ui := ConsoleUI{
		config:       cfg,
		client:       client,
		game:         game,
		textarea:     ta,
		chatViewport: chatVp,
		metaViewport: metaVp,
	}
	if game.Scene != nil {
		ui.history = append(ui.history, storyEntry{Role: roleNarrator, Text: narrationText(game.Scene)})
	}
	return ui
}

func (m ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		// Pass mouse events to the chat viewport for scrolling and text
		// selection. The component ignores events outside its bounds.
		m.chatViewport, vpCmd = m.chatViewport.Update(msg)
		m.textarea, tiCmd = m.textarea.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(tiCmd, vpCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatWidth := int(float64(m.width)*0.75) - 4
		metaWidth := m.width - chatWidth - 6

		m.chatViewport.Width = chatWidth - 2
		m.chatViewport.Height = m.height - 7
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 4
		m.textarea.SetWidth(chatWidth - 4)

		m.ready = true
		// Reformat all content for the new width.
		m.writeChatContent()
		m.metaViewport.SetContent(m.writeMetadata())

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}

			if m.gameOver() {
				// The story has ended; only commands still work.
				return m, nil
			}

			choice := m.resolveChoice(input)
			m.textarea.Reset()
			m.loading = true
			m.progressTick = 0

			m.history = append(m.history, storyEntry{Role: rolePlayer, Text: choice})
			m.writeChatContent()

			return m, tea.Batch(m.takeTurn(choice), progressTick())
		}

	case turnResultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.history = append(m.history, storyEntry{Role: roleSystem, Text: "Error: " + msg.err.Error()})
		} else {
			m.game.Character = msg.response.Character
			m.game.Scene = msg.response.Scene
			m.game.TurnCount = msg.response.TurnCount
			m.ending = msg.response.Ending
			m.history = append(m.history, storyEntry{Role: roleNarrator, Text: narrationText(m.game.Scene)})
			if m.ending != nil {
				m.history = append(m.history, storyEntry{
					Role: roleSystem,
					Text: fmt.Sprintf("ENDING: %s\n%s", m.ending.Title, m.ending.Reason),
				})
			}
		}
		m.writeChatContent()
		m.metaViewport.SetContent(m.writeMetadata())
		m.chatViewport.GotoBottom()
		return m, nil

	case actionResultMsg:
		m.loading = false
		if msg.err != nil {
			m.history = append(m.history, storyEntry{Role: roleSystem, Text: "Error: " + msg.err.Error()})
		} else {
			m.game.Character = msg.response.Character
			m.game.Scene = msg.response.Scene
			m.history = append(m.history, storyEntry{Role: roleSystem, Text: msg.response.Notification})
		}
		m.writeChatContent()
		m.metaViewport.SetContent(m.writeMetadata())
		m.chatViewport.GotoBottom()
		return m, nil

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			m.writeChatContent()
			return m, progressTick()
		}
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.chatViewport, vpCmd = m.chatViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m *ConsoleUI) gameOver() bool {
	return m.ending != nil || (m.game.Scene != nil && m.game.Scene.GameOver)
}

// resolveChoice maps a bare number to the matching scene choice. Anything
// else is sent to the narrator verbatim as a free-form action.
func (m *ConsoleUI) resolveChoice(input string) string {
	if m.game.Scene == nil {
		return input
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(m.game.Scene.Choices) {
		return input
	}
	return m.game.Scene.Choices[n-1]
}

// narrationText flattens a scene into narration plus numbered choices
// for the story log.
func narrationText(s *scene.Scene) string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(s.Description)
	if len(s.Choices) > 0 && !s.GameOver {
		b.WriteString("\n")
		for i, c := range s.Choices {
			b.WriteString(fmt.Sprintf("\n  %d. %s", i+1, c))
		}
	}
	return b.String()
}

// writeChatContent rebuilds the story log for the current viewport width.
func (m *ConsoleUI) writeChatContent() {
	chatWidth := m.chatViewport.Width - 6 // Account for panel padding

	var content strings.Builder
	content.WriteString(titleStyle.Render("ECHOES OF RUIN") + "\n\n")
	content.WriteString("Type an action, or a number to pick a choice.\n\n")
	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(chatWidth-6, 10))) + "\n\n")

	for _, entry := range m.history {
		switch entry.Role {
		case roleNarrator:
			content.WriteString(formatNarration(entry.Text, chatWidth) + "\n\n")
		case rolePlayer:
			content.WriteString(userStyle.Render("You: ") + wordwrap.String(entry.Text, chatWidth-6) + "\n\n")
		case roleSystem:
			style := choiceStyle
			if strings.HasPrefix(entry.Text, "Error:") {
				style = errorStyle
			} else if strings.HasPrefix(entry.Text, "ENDING:") {
				style = endingStyle
			}
			content.WriteString(style.Render(wordwrap.String(entry.Text, chatWidth-6)) + "\n\n")
		}
	}

	if m.loading {
		content.WriteString(m.renderProgressBar())
	}

	m.chatViewport.SetContent(content.String())
	m.chatViewport.GotoBottom()
}

// formatNarration word-wraps narrator text and styles the choice lines.
func formatNarration(text string, width int) string {
	prefix := AgentName + ": "
	wrapped := wordwrap.String(text, width-len(prefix))

	lines := strings.Split(wrapped, "\n")
	var formatted []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 2 && trimmed[1] == '.' && trimmed[0] >= '1' && trimmed[0] <= '9' {
			formatted = append(formatted, choiceStyle.Render(line))
			continue
		}
		formatted = append(formatted, line)
	}

	return narratorStyle.Render(prefix) + strings.Join(formatted, "\n")
}

func (m *ConsoleUI) writeMetadata() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("CHARACTER") + "\n\n")

	c := m.game.Character
	if c == nil {
		return content.String()
	}

	content.WriteString("Game ID:\n")
	content.WriteString(m.game.ID.String()[:8] + "...\n\n")

	content.WriteString(c.Name + "\n")
	if c.Origin.Name != "" {
		content.WriteString(c.Origin.Name + "\n")
	}
	content.WriteString(c.Difficulty.Name + "\n\n")

	content.WriteString(fmt.Sprintf("Turn: %d\n\n", m.game.TurnCount))

	content.WriteString(fmt.Sprintf("HP      %d/%d\n", c.Stats.HP, c.Stats.MaxHP))
	content.WriteString(fmt.Sprintf("Sanity  %d/%d\n", c.Stats.San, c.Stats.MaxSan))
	content.WriteString(fmt.Sprintf("Mana    %d/%d\n", c.Stats.Mana, c.Stats.MaxMana))
	content.WriteString(fmt.Sprintf("Stamina %d/%d\n", c.Stats.Stamina, c.Stats.MaxStamina))
	content.WriteString(fmt.Sprintf("Hunger  %d/%d\n", c.Hunger, c.MaxHunger))
	content.WriteString(fmt.Sprintf("Thirst  %d/%d\n\n", c.Thirst, c.MaxThirst))

	if s := m.game.Scene; s != nil && len(s.Enemies) > 0 {
		content.WriteString(titleStyle.Render("ENEMIES") + "\n")
		for _, e := range s.Enemies {
			content.WriteString(fmt.Sprintf("%s %d/%d\n", e.Name, e.Stats.HP, e.Stats.MaxHP))
		}
		content.WriteString("\n")
	}

	content.WriteString("Inventory:\n")
	if len(c.Inventory) == 0 {
		content.WriteString("Empty\n")
	} else {
		ids := make([]string, 0, len(c.Inventory))
		for id := range c.Inventory {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			content.WriteString(fmt.Sprintf("• %s x%d\n", id, c.Inventory[id]))
		}
	}

	content.WriteString("\n")
	content.WriteString("Commands:\n")
	content.WriteString("• /use <item>\n")
	content.WriteString("• /craft <recipe>\n")
	content.WriteString("• /copy: Copy scene\n")
	content.WriteString("• /help: Help\n")
	content.WriteString("• Ctrl+C: Quit\n")

	return content.String()
}

func (m ConsoleUI) handleCommand(input string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(strings.TrimSpace(input))
	cmd := strings.ToLower(fields[0])
	m.textarea.Reset()

	switch cmd {
	case "/help":
		helpText := `How to play:
• Type your action and press Enter, or type a choice number
• /use <item_id> - Use an inventory item
• /craft <recipe_id> - Craft from a known recipe
• /copy - Copy the current scene to the clipboard
• /id - Copy the game ID to the clipboard
• Ctrl+C - Quit`
		m.history = append(m.history, storyEntry{Role: roleSystem, Text: helpText})
		m.writeChatContent()

	case "/use", "/craft":
		if len(fields) < 2 {
			m.history = append(m.history, storyEntry{Role: roleSystem, Text: fmt.Sprintf("Usage: %s <id>", cmd)})
			m.writeChatContent()
			return m, nil
		}
		action := state.SystemAction{Type: state.ActionUseItem, ItemID: fields[1]}
		if cmd == "/craft" {
			action = state.SystemAction{Type: state.ActionCraftItem, RecipeID: fields[1]}
		}
		m.loading = true
		m.progressTick = 0
		m.writeChatContent()
		return m, tea.Batch(m.takeAction(action), progressTick())

	case "/copy":
		text := ""
		if m.game.Scene != nil {
			text = m.game.Scene.Description
		}
		if err := clipboard.WriteAll(text); err != nil {
			m.history = append(m.history, storyEntry{Role: roleSystem, Text: "Error: clipboard unavailable: " + err.Error()})
		} else {
			m.history = append(m.history, storyEntry{Role: roleSystem, Text: "Scene copied to clipboard."})
		}
		m.writeChatContent()

	case "/id":
		if err := clipboard.WriteAll(m.game.ID.String()); err != nil {
			m.history = append(m.history, storyEntry{Role: roleSystem, Text: "Error: clipboard unavailable: " + err.Error()})
		} else {
			m.history = append(m.history, storyEntry{Role: roleSystem, Text: "Game ID copied to clipboard."})
		}
		m.writeChatContent()

	default:
		m.history = append(m.history, storyEntry{Role: roleSystem, Text: "Unknown command. Try /help."})
		m.writeChatContent()
	}

	return m, nil
}

func (m ConsoleUI) takeTurn(choice string) tea.Cmd {
	return func() tea.Msg {
		resp, err := sendTurn(m.client, m.config.APIBaseURL, m.game.ID, choice)
		return turnResultMsg{resp, err}
	}
}

func (m ConsoleUI) takeAction(action state.SystemAction) tea.Cmd {
	return func() tea.Msg {
		resp, err := sendAction(m.client, m.config.APIBaseURL, m.game.ID, action)
		return actionResultMsg{resp, err}
	}
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				m.textarea.Focus()
				return m, textarea.Blink
			}
		}
	}

	return m, nil
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to quit your adventure?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	chatWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - chatWidth - 6

	chatPanel := chatPanelStyle.Width(chatWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			"",
			separatorStyle.Render(strings.Repeat("─", max(chatWidth-4, 10))),
			m.textarea.View(),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, chatPanel, metaPanel)
}

// renderProgressBar creates an animated progress bar for loading states
func (m ConsoleUI) renderProgressBar() string {
	usable := m.chatViewport.Width - 6
	if usable <= 0 {
		usable = 30 // fallback before sizing
	}

	if usable > 80 {
		usable = 80
	} else if usable < 10 {
		usable = 10
	}

	const totalFrames = 40
	frame := m.progressTick % totalFrames
	filled := (frame * usable) / totalFrames

	var bar strings.Builder
	for i := 0; i < usable; i++ {
		if i < filled {
			bar.WriteString("█")
		} else if i == filled && frame%4 < 2 {
			bar.WriteString("▓") // Blinking effect at the progress point
		} else {
			bar.WriteString("░")
		}
	}
	return separatorStyle.Render(bar.String())
}

// progressTick creates a command that sends a progress tick message
func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}
