package tictactoe

import (
	"github.com/vovakirdan/board-engine/internal/core"
	"github.com/vovakirdan/board-engine/internal/engine"
)

// ClickToMark converts a click into the mark of the cell under it.
// Clicks outside the board produce no action.
func ClickToMark(cfg core.Config) engine.Converter {
	return func(ev core.InputEvent) (any, bool) {
		if ev.Button != core.MouseButtonLeft {
			return nil, false
		}
		row, col, ok := cfg.CellAt(ev.X, ev.Y)
		if !ok {
			return nil, false
		}
		return Mark{Row: row, Col: col}, true
	}
}

// KeyToMark converts the digits 1-9 into cells in reading order, so on a
// 3x3 board "1" is the top-left cell and "9" the bottom-right one.
// Digits beyond the board produce no action. Boards with more than nine
// cells are only partly reachable this way; the rest take a click.
func KeyToMark(cfg core.Config) engine.Converter {
	return func(ev core.InputEvent) (any, bool) {
		if len(ev.Key) != 1 || ev.Key[0] < '1' || ev.Key[0] > '9' || cfg.Cols <= 0 {
			return nil, false
		}
		n := int(ev.Key[0] - '1')
		row, col := n/cfg.Cols, n%cfg.Cols
		if row >= cfg.Rows {
			return nil, false
		}
		return [2]int{row, col}, true
	}
}
