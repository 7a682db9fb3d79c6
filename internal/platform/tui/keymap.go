package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/board-engine/internal/core"
)

// KeyMap holds the key bindings of the board and the game picker.
type KeyMap struct {
	Quit       key.Binding
	Mark       key.Binding
	Screenshot key.Binding
	Reset      key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
}

// ShortHelp implements help.KeyMap for the board view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mark, k.Reset, k.Screenshot, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Mark, k.Reset, k.Screenshot, k.Quit},
		{k.Up, k.Down, k.Select},
	}
}

// MenuHelp returns the bindings shown under the game picker.
func (k KeyMap) MenuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Mark: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9/click", "mark"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
	}
}

// ForBoard adapts the help of the mark binding to the board size. Digits
// address cells in reading order, so on boards with more than nine cells
// only the first nine are reachable from the keyboard.
func (k KeyMap) ForBoard(cfg core.Config) KeyMap {
	if cfg.Rows*cfg.Cols > 9 {
		k.Mark.SetHelp("click/1-9", "mark (digits: first 9 cells)")
	}
	return k
}

// Event translates a key message into an engine input event.
// Quit keys become quit events; every other key is passed through by name
// and left to the registered converters.
func (k KeyMap) Event(msg tea.KeyMsg) core.InputEvent {
	if key.Matches(msg, k.Quit) {
		return core.QuitEvent()
	}
	return core.KeyEvent(msg.String())
}

// MouseEvent translates a left-button press into a click. ok is false for
// any other mouse message.
func MouseEvent(msg tea.MouseMsg) (core.InputEvent, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.InputEvent{}, false
	}
	return core.ClickEvent(msg.X, msg.Y), true
}
