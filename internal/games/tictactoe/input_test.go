package tictactoe

import (
	"errors"
	"testing"

	"github.com/vovakirdan/board-engine/internal/core"
)

var errTest = errors.New("test failure")

func TestClickToMark(t *testing.T) {
	conv := ClickToMark(core.DefaultConfig())

	tests := []struct {
		name   string
		event  core.InputEvent
		want   Mark
		wantOK bool
	}{
		{"top left", core.ClickEvent(0, 0), Mark{0, 0}, true},
		{"center", core.ClickEvent(300, 300), Mark{1, 1}, true},
		{"bottom right", core.ClickEvent(599, 599), Mark{2, 2}, true},
		{"outside right", core.ClickEvent(600, 10), Mark{}, false},
		{"outside below", core.ClickEvent(10, 700), Mark{}, false},
		{"right button", core.InputEvent{Kind: core.EventMouseDown, X: 10, Y: 10, Button: core.MouseButtonRight}, Mark{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := conv(tt.event)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, expected %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("mark = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestKeyToMark(t *testing.T) {
	conv := KeyToMark(core.DefaultConfig())

	tests := []struct {
		key    string
		want   [2]int
		wantOK bool
	}{
		{"1", [2]int{0, 0}, true},
		{"3", [2]int{0, 2}, true},
		{"5", [2]int{1, 1}, true},
		{"9", [2]int{2, 2}, true},
		{"0", [2]int{}, false},
		{"a", [2]int{}, false},
		{"12", [2]int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := conv(core.KeyEvent(tt.key))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, expected %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("cell = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestKeyToMarkSmallBoard(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Rows, cfg.Cols = 2, 2
	conv := KeyToMark(cfg)

	if _, ok := conv(core.KeyEvent("5")); ok {
		t.Error("digit beyond a 2x2 board should produce no action")
	}
	if got, ok := conv(core.KeyEvent("3")); !ok || got != [2]int{1, 0} {
		t.Errorf("KeyToMark(3) = %v, %v, expected (1, 0)", got, ok)
	}
}

func TestKeyToMarkLargeBoard(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Rows, cfg.Cols = 5, 5
	conv := KeyToMark(cfg)

	if got, ok := conv(core.KeyEvent("6")); !ok || got != [2]int{1, 0} {
		t.Errorf("KeyToMark(6) = %v, %v, expected (1, 0)", got, ok)
	}
	if got, ok := conv(core.KeyEvent("9")); !ok || got != [2]int{1, 3} {
		t.Errorf("KeyToMark(9) = %v, %v, expected (1, 3)", got, ok)
	}
}
