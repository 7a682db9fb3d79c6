// Package anim implements time-bounded visual changes and the scheduler that
// advances them frame by frame.
package anim

import "github.com/vovakirdan/board-engine/internal/core"

// Context is the owning engine as seen by an animation.
type Context interface {
	Board() core.Board
	Config() core.Config
	Schedule(a Animation)
}

// Animation is a unit of timed visual change.
//
// Update advances the animation by dt seconds. Draw renders its current
// state and must not mutate it: drawing twice between updates produces the
// same output. Once Finished reports true the animation is never drawn again.
type Animation interface {
	Update(ctx Context, dt float64)
	Draw(ctx Context, s core.Surface)
	Finished() bool
}

// Base carries the finished flag. Embed it in concrete animations.
type Base struct {
	finished bool
}

// Done marks the animation finished.
func (b *Base) Done() {
	b.finished = true
}

// Finished reports whether Done was called.
func (b *Base) Finished() bool {
	return b.finished
}
