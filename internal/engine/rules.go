// Package engine runs a turn-based board game: it converts input into
// actions, validates them against pluggable rules, notifies hooks, and
// advances animations frame by frame.
package engine

// Notifier delivers named notifications to the hook registry.
type Notifier interface {
	Call(name string, args ...any) error
}

// Rules is the game-rules collaborator. S is the game-state handle and A the
// canonical action type. The engine never inspects either.
type Rules[S, A any] interface {
	// NewState creates the initial game state.
	NewState() S

	// CanApply reports whether a is legal in s.
	CanApply(a A, s S) bool

	// Apply mutates s. It is only called after CanApply returned true.
	Apply(a A, s S)

	// Assign normalizes an arbitrary candidate into dst.
	Assign(dst *A, src any) error

	// Report records an action for the default valid/invalid hooks.
	Report(a A)

	// Watch lets the rules notify n whenever a tracked part of s changes.
	Watch(s S, n Notifier)
}
