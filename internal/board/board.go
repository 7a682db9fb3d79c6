// Package board stores per-cell colors and texts and draws them as a grid.
package board

import "github.com/vovakirdan/board-engine/internal/core"

// Manager is the cell store behind core.Board.
// Out-of-range reads return zero values and out-of-range writes are ignored.
type Manager struct {
	cfg    core.Config
	colors [][]core.Color
	texts  [][]string
}

var _ core.Board = (*Manager)(nil)

// New creates a board sized by cfg with every cell in the palette cell color.
func New(cfg core.Config) *Manager {
	m := &Manager{cfg: cfg}
	m.colors = make([][]core.Color, cfg.Rows)
	m.texts = make([][]string, cfg.Rows)
	for r := 0; r < cfg.Rows; r++ {
		m.colors[r] = make([]core.Color, cfg.Cols)
		m.texts[r] = make([]string, cfg.Cols)
		for c := range m.colors[r] {
			m.colors[r][c] = cfg.Palette.Cell
		}
	}
	return m
}

func (m *Manager) inBounds(row, col int) bool {
	return row >= 0 && row < m.cfg.Rows && col >= 0 && col < m.cfg.Cols
}

// SetCellColor sets the background color of a cell.
func (m *Manager) SetCellColor(row, col int, c core.Color) {
	if !m.inBounds(row, col) {
		return
	}
	m.colors[row][col] = c
}

// CellColor returns the background color of a cell.
func (m *Manager) CellColor(row, col int) core.Color {
	if !m.inBounds(row, col) {
		return core.Color{}
	}
	return m.colors[row][col]
}

// SetCellText sets the persistent text of a cell.
func (m *Manager) SetCellText(row, col int, text string) {
	if !m.inBounds(row, col) {
		return
	}
	m.texts[row][col] = text
}

// CellText returns the persistent text of a cell.
func (m *Manager) CellText(row, col int) string {
	if !m.inBounds(row, col) {
		return ""
	}
	return m.texts[row][col]
}

// Reset restores every cell to its initial color and clears all texts.
func (m *Manager) Reset() {
	for r := range m.colors {
		for c := range m.colors[r] {
			m.colors[r][c] = m.cfg.Palette.Cell
			m.texts[r][c] = ""
		}
	}
}

// Draw paints cell backgrounds, centered cell texts, then the grid lines.
func (m *Manager) Draw(s core.Surface) {
	for r := 0; r < m.cfg.Rows; r++ {
		for c := 0; c < m.cfg.Cols; c++ {
			rect := m.cfg.CellRect(r, c)
			s.FillRect(rect, m.colors[r][c])

			if text := m.texts[r][c]; text != "" {
				cx, cy := rect.Center()
				w, h := s.MeasureString(text)
				s.DrawString(cx-w/2, cy-h/2, text, m.cfg.Palette.Text)
			}
		}
	}
	m.drawGrid(s)
}

// drawGrid draws the lines between rows and columns.
func (m *Manager) drawGrid(s core.Surface) {
	lw := m.cfg.LineWidth
	if lw <= 0 {
		return
	}
	w, h := m.cfg.Width(), m.cfg.Height()
	for r := 1; r < m.cfg.Rows; r++ {
		y := r*m.cfg.CellH - lw/2
		s.FillRect(core.NewRect(0, y, w, lw), m.cfg.Palette.Line)
	}
	for c := 1; c < m.cfg.Cols; c++ {
		x := c*m.cfg.CellW - lw/2
		s.FillRect(core.NewRect(x, 0, lw, h), m.cfg.Palette.Line)
	}
}
