package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/board-engine/internal/core"
)

// cellStyle identifies a foreground/background pair.
type cellStyle struct {
	fg, bg core.Color
}

// Renderer converts Screen buffers to styled strings, caching one lipgloss
// style per color pair.
type Renderer struct {
	styles map[cellStyle]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[cellStyle]lipgloss.Style)}
}

func (r *Renderer) style(cs cellStyle) lipgloss.Style {
	if st, ok := r.styles[cs]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(cs.fg.Hex())).
		Background(lipgloss.Color(cs.bg.Hex()))
	r.styles[cs] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
