package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/board-engine/internal/core"
)

func TestKeyMapEvent(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.InputEvent
	}{
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.QuitEvent()},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.QuitEvent()},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.QuitEvent()},
		{"digit passes through", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")}, core.KeyEvent("5")},
		{"arrow passes through", tea.KeyMsg{Type: tea.KeyUp}, core.KeyEvent("up")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Event(tt.msg); got != tt.expected {
				t.Errorf("Event() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestMouseEvent(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		wantOK bool
	}{
		{"left press", tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true},
		{"left release", tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false},
		{"right press", tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false},
		{"motion", tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionMotion}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := MouseEvent(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, expected %v", ok, tt.wantOK)
			}
			if ok && ev != core.ClickEvent(12, 7) {
				t.Errorf("event = %+v, expected a click at (12, 7)", ev)
			}
		})
	}
}
