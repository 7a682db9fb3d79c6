package engine

import (
	"github.com/vovakirdan/board-engine/internal/core"
	"github.com/vovakirdan/board-engine/internal/hooks"
)

// Converter turns a raw event into a candidate action.
// ok is false when the event addresses nothing actionable, such as a click
// outside the board.
type Converter func(ev core.InputEvent) (candidate any, ok bool)

// Outcome describes what OnInput did with an event.
type Outcome int

const (
	Ignored  Outcome = iota // No converter registered for the event kind
	Quit                    // Quit signal; the engine stopped
	NoAction                // Converter declined or candidate not normalizable
	Accepted                // Legal action, valid hook fired and applied
	Rejected                // Illegal action, invalid hook fired
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Quit:
		return "quit"
	case NoAction:
		return "no action"
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// InputHandler routes classified events through converters into the rules.
type InputHandler[S, A any] struct {
	engine   *Engine[S, A]
	handlers map[core.EventKind]Converter
}

func newInputHandler[S, A any](e *Engine[S, A]) *InputHandler[S, A] {
	return &InputHandler[S, A]{
		engine:   e,
		handlers: make(map[core.EventKind]Converter),
	}
}

// RegisterHandler associates an event kind with a converter.
// Registering the same kind again replaces the previous converter.
func (h *InputHandler[S, A]) RegisterHandler(kind core.EventKind, conv Converter) {
	if conv == nil {
		delete(h.handlers, kind)
		return
	}
	h.handlers[kind] = conv
}

// Handles reports whether a converter is registered for kind.
func (h *InputHandler[S, A]) Handles(kind core.EventKind) bool {
	_, ok := h.handlers[kind]
	return ok
}

// OnInput processes one event.
//
// The valid-action hook fires before the action is applied; a rejected
// action fires only the invalid-action hook and leaves state untouched.
func (h *InputHandler[S, A]) OnInput(ev core.InputEvent) Outcome {
	e := h.engine
	if ev.Kind == core.EventQuit {
		e.logger.Info("quit requested", "frame", e.frame)
		e.Stop()
		return Quit
	}

	conv, ok := h.handlers[ev.Kind]
	if !ok {
		return Ignored
	}

	candidate, ok := conv(ev)
	if !ok {
		return NoAction
	}

	action, err := h.normalize(candidate)
	if err != nil {
		e.logger.Warn("cannot normalize action", "kind", ev.Kind, "err", err)
		return NoAction
	}

	if !e.rules.CanApply(action, e.state) {
		h.fire(hooks.OnInvalidAction, action)
		return Rejected
	}

	h.fire(hooks.OnValidAction, action)
	e.rules.Apply(action, e.state)
	return Accepted
}

// normalize returns candidate as the canonical action type.
func (h *InputHandler[S, A]) normalize(candidate any) (A, error) {
	switch v := candidate.(type) {
	case A:
		return v, nil
	case *A:
		if v != nil {
			return *v, nil
		}
	}
	var action A
	err := h.engine.rules.Assign(&action, candidate)
	return action, err
}

// fire calls a built-in hook. The built-ins always have defaults, so a
// failure here comes from an installed hook and is logged, not propagated.
func (h *InputHandler[S, A]) fire(name string, action A) {
	if err := h.engine.hooks.Call(name, action); err != nil {
		h.engine.logger.Error("hook failed", "hook", name, "err", err)
	}
}
