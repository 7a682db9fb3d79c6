// Package tictactoe is a reference rules collaborator for the board engine.
// It tracks occupancy and alternates turns; deciding a winner is left to
// whoever embeds it.
package tictactoe

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/board-engine/internal/engine"
)

// OnSlotChange is notified with (row, col int, player Player) after a mark
// is placed.
const OnSlotChange = "on_slot_change"

// Rules implements engine.Rules for a rows x cols board.
type Rules struct {
	rows, cols int
	logger     *log.Logger
}

var _ engine.Rules[*State, Action] = (*Rules)(nil)

// NewRules creates the rules for a board of the given size. Reports go to
// logger; nil discards them.
func NewRules(rows, cols int, logger *log.Logger) *Rules {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Rules{rows: rows, cols: cols, logger: logger}
}

// NewState returns an empty board with player 1 to move.
func (r *Rules) NewState() *State {
	return newState(r.rows, r.cols)
}

// CanApply reports whether the target cell exists and is empty.
func (r *Rules) CanApply(a Action, s *State) bool {
	return s.inBounds(a.Row, a.Col) && s.grid[a.Row][a.Col] == Empty
}

// Apply places the current player's mark, notifies the watcher and passes
// the turn. A failing notification is a wiring bug and panics.
func (r *Rules) Apply(a Action, s *State) {
	player := s.turn
	s.grid[a.Row][a.Col] = player.Mark()
	s.moves++
	s.turn = player.Next()

	if s.notifier == nil {
		return
	}
	if err := s.notifier.Call(OnSlotChange, a.Row, a.Col, player); err != nil {
		panic(fmt.Sprintf("tictactoe: %v", err))
	}
}

// Assign copies a candidate into dst. Accepted candidates are Mark, *Mark
// and [2]int{row, col}.
func (r *Rules) Assign(dst *Action, src any) error {
	switch v := src.(type) {
	case Mark:
		dst.Row, dst.Col = v.Row, v.Col
	case *Mark:
		if v == nil {
			return fmt.Errorf("tictactoe: nil mark")
		}
		dst.Row, dst.Col = v.Row, v.Col
	case [2]int:
		dst.Row, dst.Col = v[0], v[1]
	default:
		return fmt.Errorf("tictactoe: cannot assign %T to action", src)
	}
	return nil
}

// Report logs the action.
func (r *Rules) Report(a Action) {
	r.logger.Info(a.String(), "row", a.Row, "col", a.Col)
}

// Watch routes slot changes of s to n.
func (r *Rules) Watch(s *State, n engine.Notifier) {
	s.notifier = n
}
