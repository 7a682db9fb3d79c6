package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/board-engine/internal/core"
	"github.com/vovakirdan/board-engine/internal/engine"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// Model is the Bubble Tea model running one engine.
// The engine owns game logic; the model only queues input, drives frames
// and prints the screen the engine renders into.
type Model struct {
	runner   engine.Runner
	screen   *core.Screen
	events   *core.EventQueue
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a model. screen must be the surface the runner renders
// into and the runner must use its built-in event queue.
func NewModel(runner engine.Runner, screen *core.Screen) (Model, error) {
	events := runner.Events()
	if events == nil {
		return Model{}, fmt.Errorf("tui: engine has no event queue")
	}
	return Model{
		runner:   runner,
		screen:   screen,
		events:   events,
		renderer: NewRenderer(),
		keys:     DefaultKeyMap().ForBoard(runner.Config()),
		help:     help.New(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runner.Config().TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Screenshot) {
			m.saveScreenshot()
			return m, nil
		}
		if key.Matches(msg, m.keys.Reset) {
			m.runner.Reset()
			return m, nil
		}
		m.events.Push(m.keys.Event(msg))
		return m, nil

	case tea.MouseMsg:
		if ev, ok := MouseEvent(msg); ok {
			m.events.Push(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one engine frame and schedules the next one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.runner.NextFrame()
	if !m.runner.Running() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.runner.Config().TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".board", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("board_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the board followed by a status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cfg := m.runner.Config()
	var b strings.Builder
	b.WriteString(m.renderer.Render(m.screen))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(cfg.Title))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))

	if m.width > 0 && (m.width < cfg.Width() || m.height < cfg.Height()+2) {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("terminal too small: need %dx%d", cfg.Width(), cfg.Height()+2))
	}
	return b.String()
}

// Run starts the Bubble Tea program for the given engine.
func Run(runner engine.Runner, screen *core.Screen) error {
	model, err := NewModel(runner, screen)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks address board cells
	)

	_, err = p.Run()
	return err
}
