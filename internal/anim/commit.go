package anim

import "github.com/vovakirdan/board-engine/internal/core"

// DeferredCommit writes text into a board cell once its delay expires.
// It draws nothing.
type DeferredCommit struct {
	Base
	row, col int
	text     string
	delay    float64
	elapsed  float64
}

// NewDeferredCommit creates a commit of text to (row, col) after delay seconds.
func NewDeferredCommit(row, col int, text string, delay float64) *DeferredCommit {
	return &DeferredCommit{
		row:   row,
		col:   col,
		text:  text,
		delay: delay,
	}
}

// Update advances the timer and commits exactly once on expiry.
func (d *DeferredCommit) Update(ctx Context, dt float64) {
	if d.Finished() {
		return
	}
	d.elapsed += dt
	if d.elapsed >= d.delay {
		ctx.Board().SetCellText(d.row, d.col, d.text)
		d.Done()
	}
}

// Draw is a no-op.
func (d *DeferredCommit) Draw(Context, core.Surface) {}
