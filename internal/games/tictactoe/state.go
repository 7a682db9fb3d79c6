package tictactoe

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/board-engine/internal/engine"
)

// Cell is the content of one board slot.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Player identifies who moves. Player 1 plays X and moves first.
type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

// Mark returns the cell the player places.
func (p Player) Mark() Cell {
	if p == Player2 {
		return O
	}
	return X
}

// Next returns the other player.
func (p Player) Next() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Mark is a candidate move produced by the input converters.
type Mark struct {
	Row, Col int
}

// Action is the canonical move accepted by the rules.
type Action struct {
	Row, Col int
}

func (a Action) String() string {
	return fmt.Sprintf("mark (%d, %d)", a.Row, a.Col)
}

// State is the game state. Only Rules mutates it.
type State struct {
	grid     [][]Cell
	turn     Player
	moves    int
	notifier engine.Notifier
}

func newState(rows, cols int) *State {
	grid := make([][]Cell, rows)
	for i := range grid {
		grid[i] = make([]Cell, cols)
	}
	return &State{grid: grid, turn: Player1}
}

// Rows returns the number of board rows.
func (s *State) Rows() int {
	return len(s.grid)
}

// Cols returns the number of board columns.
func (s *State) Cols() int {
	if len(s.grid) == 0 {
		return 0
	}
	return len(s.grid[0])
}

// At returns the cell at (row, col), or Empty when out of range.
func (s *State) At(row, col int) Cell {
	if !s.inBounds(row, col) {
		return Empty
	}
	return s.grid[row][col]
}

// Turn returns the player to move.
func (s *State) Turn() Player {
	return s.turn
}

// Moves returns the number of marks placed.
func (s *State) Moves() int {
	return s.moves
}

// Full reports whether every cell holds a mark.
func (s *State) Full() bool {
	return s.moves >= s.Rows()*s.Cols()
}

func (s *State) inBounds(row, col int) bool {
	return row >= 0 && row < s.Rows() && col >= 0 && col < s.Cols()
}

// String renders the grid one row per line, e.g. "X.O".
func (s *State) String() string {
	var sb strings.Builder
	for r, row := range s.grid {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}
