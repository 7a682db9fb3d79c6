package anim

import "github.com/vovakirdan/board-engine/internal/core"

// stepEpsilon absorbs float drift left over after slicing a delta.
const stepEpsilon = 1e-9

// Engine owns the set of active animations.
//
// Animations are kept in scheduling order, so later ones draw on top.
// Update walks a snapshot of the set taken when it starts: an animation
// scheduled from inside another animation's Update is first advanced on the
// next call.
type Engine struct {
	active      []Animation
	maxStep     float64
	maxSubsteps int
}

// NewEngine creates an animation engine.
//
// Each Update feeds every animation its delta in slices of at most maxStep
// seconds; maxStep <= 0 passes the delta through unchanged. A delta longer
// than maxStep*maxSubsteps is cut to that length (maxSubsteps <= 0 means no
// cut) so a stalled frame cannot turn into an unbounded catch-up.
func NewEngine(maxStep float64, maxSubsteps int) *Engine {
	return &Engine{
		maxStep:     maxStep,
		maxSubsteps: maxSubsteps,
	}
}

// Schedule adds an animation to the active set.
func (e *Engine) Schedule(a Animation) {
	if a == nil {
		return
	}
	e.active = append(e.active, a)
}

// Update advances every active animation by dt seconds and removes the ones
// that report finished afterwards.
func (e *Engine) Update(ctx Context, dt float64) {
	if len(e.active) == 0 {
		return
	}
	dt = e.bound(dt)

	snapshot := e.active
	// Schedule appends to e.active while the snapshot is walked.
	e.active = nil

	survivors := make([]Animation, 0, len(snapshot))
	for _, a := range snapshot {
		e.advance(ctx, a, dt)
		if !a.Finished() {
			survivors = append(survivors, a)
		}
	}
	e.active = append(survivors, e.active...)
}

// advance feeds dt to a in fixed-size slices, stopping once it finishes.
func (e *Engine) advance(ctx Context, a Animation, dt float64) {
	if e.maxStep <= 0 || dt <= e.maxStep {
		a.Update(ctx, dt)
		return
	}
	for remaining := dt; remaining > stepEpsilon && !a.Finished(); remaining -= e.maxStep {
		a.Update(ctx, min(remaining, e.maxStep))
	}
}

func (e *Engine) bound(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if e.maxStep > 0 && e.maxSubsteps > 0 {
		return min(dt, e.maxStep*float64(e.maxSubsteps))
	}
	return dt
}

// Draw renders every active animation in scheduling order.
func (e *Engine) Draw(ctx Context, s core.Surface) {
	for _, a := range e.active {
		if a.Finished() {
			continue
		}
		a.Draw(ctx, s)
	}
}

// Len returns the number of active animations.
func (e *Engine) Len() int {
	return len(e.active)
}

// Clear drops every active animation.
func (e *Engine) Clear() {
	e.active = nil
}
