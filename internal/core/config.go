package core

import (
	"errors"
	"fmt"
)

// Palette holds the colors used to draw the board.
type Palette struct {
	Background Color // Surface fill behind the board
	Line       Color // Grid lines
	Cell       Color // Initial cell color
	Text       Color // Cell text and revealed marks
	Player1    Color // Fill color for the first player
	Player2    Color // Fill color for the second player
}

// Timing holds animation durations in seconds.
type Timing struct {
	Fill   float64 // Cell color transition
	Reveal float64 // Mark text reveal
	Commit float64 // Delay before the mark is written to the board
}

// Config is the immutable configuration handed to the engine at construction.
// Values are copied; nothing in the engine mutates a Config after New.
type Config struct {
	Title       string
	Rows        int
	Cols        int
	CellW       int // Cell width in surface units
	CellH       int // Cell height in surface units
	LineWidth   int // Grid line thickness in surface units
	TickRate    int // Frames per second; also bounds the animation step
	MaxSubsteps int // Upper bound of fixed-size steps per frame
	Palette     Palette
	Timing      Timing
}

// DefaultConfig returns the window layout of the classic 3x3 board.
func DefaultConfig() Config {
	bg := RGB(28, 170, 156)
	return Config{
		Title:       "Tic Tac Toe with Animation Engine",
		Rows:        3,
		Cols:        3,
		CellW:       200,
		CellH:       200,
		LineWidth:   15,
		TickRate:    60,
		MaxSubsteps: 60,
		Palette: Palette{
			Background: bg,
			Line:       RGB(23, 145, 135),
			Cell:       bg,
			Text:       Black,
			Player1:    Red,
			Player2:    Green,
		},
		Timing: Timing{
			Fill:   1.0,
			Reveal: 2.0,
			Commit: 2.0,
		},
	}
}

// Width returns the board width in surface units.
func (c Config) Width() int {
	return c.Cols * c.CellW
}

// Height returns the board height in surface units.
func (c Config) Height() int {
	return c.Rows * c.CellH
}

// CellRect returns the area covered by the cell at (row, col).
func (c Config) CellRect(row, col int) Rect {
	return NewRect(col*c.CellW, row*c.CellH, c.CellW, c.CellH)
}

// CellAt maps a surface position to a cell.
// ok is false when the position lies outside the board.
func (c Config) CellAt(x, y int) (row, col int, ok bool) {
	if c.CellW <= 0 || c.CellH <= 0 || !NewRect(0, 0, c.Width(), c.Height()).Contains(x, y) {
		return 0, 0, false
	}
	return y / c.CellH, x / c.CellW, true
}

// FrameStep returns the largest simulated time, in seconds, a single
// animation step may represent.
func (c Config) FrameStep() float64 {
	if c.TickRate <= 0 {
		return 0
	}
	return 1.0 / float64(c.TickRate)
}

// Validate reports configuration values the engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Rows <= 0 || c.Cols <= 0 {
		errs = append(errs, fmt.Errorf("board must have at least one cell, got %dx%d", c.Rows, c.Cols))
	}
	if c.CellW <= 0 || c.CellH <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %dx%d", c.CellW, c.CellH))
	}
	if c.LineWidth < 0 {
		errs = append(errs, fmt.Errorf("line width must not be negative, got %d", c.LineWidth))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick rate must be positive, got %d", c.TickRate))
	}
	if c.MaxSubsteps < 0 {
		errs = append(errs, fmt.Errorf("max substeps must not be negative, got %d", c.MaxSubsteps))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("core: invalid config: %w", err)
	}
	return nil
}
