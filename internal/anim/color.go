package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/board-engine/internal/core"
)

// ColorTransition fades a board cell from one color to another.
//
// Each channel runs its own linear tween. While running, the cell is
// overdrawn with the interpolated color; on completion the end color is
// committed to the board.
type ColorTransition struct {
	Base
	row, col int
	from, to core.Color
	duration float64
	elapsed  float64
	current  core.Color
	tweens   [3]*gween.Tween
}

// NewColorTransition creates a transition of the cell at (row, col).
// A duration <= 0 completes on the first update.
func NewColorTransition(row, col int, from, to core.Color, duration float64) *ColorTransition {
	c := &ColorTransition{
		row:      row,
		col:      col,
		from:     from,
		to:       to,
		duration: duration,
		current:  from,
	}
	if duration > 0 {
		d := float32(duration)
		c.tweens[0] = gween.New(float32(from.R), float32(to.R), d, ease.Linear)
		c.tweens[1] = gween.New(float32(from.G), float32(to.G), d, ease.Linear)
		c.tweens[2] = gween.New(float32(from.B), float32(to.B), d, ease.Linear)
	}
	return c
}

// Update advances the transition by dt seconds.
//
// Elapsed time is kept in float64 and the tweens are set to it directly, so
// many small frames land on the same color as one long one.
func (c *ColorTransition) Update(ctx Context, dt float64) {
	if c.Finished() {
		return
	}
	if c.duration <= 0 {
		c.finish(ctx)
		return
	}

	c.elapsed = core.ClampF(c.elapsed+dt, 0, c.duration)
	if c.elapsed >= c.duration {
		c.finish(ctx)
		return
	}

	var ch [3]uint8
	for i, tw := range c.tweens {
		v, _ := tw.Set(float32(c.elapsed))
		ch[i] = channel(v)
	}
	c.current = core.RGB(ch[0], ch[1], ch[2])
}

func (c *ColorTransition) finish(ctx Context) {
	c.elapsed = c.duration
	c.current = c.to
	ctx.Board().SetCellColor(c.row, c.col, c.to)
	c.Done()
}

// Draw overdraws the cell with the current color while the transition runs.
func (c *ColorTransition) Draw(ctx Context, s core.Surface) {
	if c.Finished() || c.elapsed >= c.duration {
		return
	}
	cfg := ctx.Config()
	area := cfg.CellRect(c.row, c.col).Inset(cfg.LineWidth / 2)
	if area.Empty() {
		return
	}
	s.FillRect(area, c.current)
}

// Color returns the current interpolated color.
func (c *ColorTransition) Color() core.Color {
	return c.current
}

// Progress returns the elapsed fraction in [0, 1].
func (c *ColorTransition) Progress() float64 {
	if c.duration <= 0 {
		if c.Finished() {
			return 1
		}
		return 0
	}
	return c.elapsed / c.duration
}

// channelEpsilon absorbs float32 error so that 84.9999 truncates to 85.
const channelEpsilon = 1e-3

// channel truncates a tweened value into a color channel.
func channel(v float32) uint8 {
	v += channelEpsilon
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
