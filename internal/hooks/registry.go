// Package hooks provides a table of named callbacks that can be installed at
// runtime. Every callback receives the owning engine as its first argument,
// followed by whatever the caller passes.
package hooks

import (
	"errors"
	"fmt"
	"sort"
)

// Built-in hook names. Both have default implementations supplied by the
// owner when the registry is created.
const (
	OnValidAction   = "on_valid_action"
	OnInvalidAction = "on_invalid_action"
)

var (
	// ErrNoSuchHook is returned when a name has neither an installed
	// callback nor a default.
	ErrNoSuchHook = errors.New("hooks: no such hook")

	// ErrReservedName is returned when installing under a name that belongs
	// to the registry itself.
	ErrReservedName = errors.New("hooks: reserved name")
)

// reserved names are internal attributes of the registry and its owner.
var reserved = map[string]bool{
	"":         true,
	"engine":   true,
	"handlers": true,
}

// Func is a hook callback. owner is the engine that owns the registry.
type Func[O any] func(owner O, args ...any) error

// Registry maps hook names to callbacks bound to an owner.
type Registry[O any] struct {
	owner    O
	handlers map[string]Func[O]
	defaults map[string]Func[O]
}

// New creates a registry bound to owner. defaults are consulted when no
// callback is installed under a name; the map is copied.
func New[O any](owner O, defaults map[string]Func[O]) *Registry[O] {
	r := &Registry[O]{
		owner:    owner,
		handlers: make(map[string]Func[O]),
		defaults: make(map[string]Func[O], len(defaults)),
	}
	for name, fn := range defaults {
		if fn != nil {
			r.defaults[name] = fn
		}
	}
	return r
}

// Set installs fn under name, replacing any previous callback.
// Installed callbacks take precedence over defaults.
func (r *Registry[O]) Set(name string, fn Func[O]) error {
	if reserved[name] {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	if fn == nil {
		return fmt.Errorf("hooks: nil callback for %q", name)
	}
	r.handlers[name] = fn
	return nil
}

// Remove uninstalls the callback under name. A default, if any, applies again.
func (r *Registry[O]) Remove(name string) {
	delete(r.handlers, name)
}

// Lookup returns the callback for name with the owner already bound.
func (r *Registry[O]) Lookup(name string) (func(args ...any) error, error) {
	fn, ok := r.handlers[name]
	if !ok {
		fn, ok = r.defaults[name]
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchHook, name)
	}
	owner := r.owner
	return func(args ...any) error {
		return fn(owner, args...)
	}, nil
}

// Call looks up name and invokes it with args.
func (r *Registry[O]) Call(name string, args ...any) error {
	fn, err := r.Lookup(name)
	if err != nil {
		return err
	}
	if err := fn(args...); err != nil {
		return fmt.Errorf("hooks: %s: %w", name, err)
	}
	return nil
}

// Has reports whether name resolves to a callback.
func (r *Registry[O]) Has(name string) bool {
	if _, ok := r.handlers[name]; ok {
		return true
	}
	_, ok := r.defaults[name]
	return ok
}

// Names returns every resolvable hook name, sorted.
func (r *Registry[O]) Names() []string {
	seen := make(map[string]bool, len(r.handlers)+len(r.defaults))
	for name := range r.handlers {
		seen[name] = true
	}
	for name := range r.defaults {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Arg extracts args[i] as a T, for use inside hook callbacks.
func Arg[T any](args []any, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(args) {
		return zero, fmt.Errorf("hooks: missing argument %d (got %d)", i, len(args))
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, fmt.Errorf("hooks: argument %d is %T, expected %T", i, args[i], zero)
	}
	return v, nil
}
