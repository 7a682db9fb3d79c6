package anim

import "github.com/vovakirdan/board-engine/internal/core"

// TextReveal shows a piece of text for a fixed time.
type TextReveal struct {
	Base
	text     string
	x, y     int
	color    core.Color
	duration float64
	elapsed  float64
}

// NewTextReveal creates a reveal of text at (x, y) lasting duration seconds.
func NewTextReveal(text string, x, y int, color core.Color, duration float64) *TextReveal {
	return &TextReveal{
		text:     text,
		x:        x,
		y:        y,
		color:    color,
		duration: duration,
	}
}

// Update advances the reveal timer.
func (t *TextReveal) Update(_ Context, dt float64) {
	if t.Finished() {
		return
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.Done()
	}
}

// Draw writes the text while the reveal is running.
func (t *TextReveal) Draw(_ Context, s core.Surface) {
	if t.Finished() || t.elapsed >= t.duration {
		return
	}
	s.DrawString(t.x, t.y, t.text, t.color)
}
