// Package registry provides a global registry for board-game variants.
// Games register themselves in init() functions, allowing the front-ends
// to discover and start games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/board-engine/internal/core"
	"github.com/vovakirdan/board-engine/internal/engine"
)

// Game describes a playable variant: its rules wiring and the board layout
// it needs.
type Game struct {
	// ID is a unique identifier used on the command line (e.g. "tictactoe").
	ID string

	// Title is a human-readable name shown in listings and window captions.
	Title string

	// Configure adjusts a base configuration to the variant (board size,
	// title). It must be idempotent. Nil leaves the configuration unchanged.
	Configure func(cfg core.Config) core.Config

	// Start builds a wired engine for the configuration.
	Start func(cfg core.Config, opts engine.Options) (engine.Runner, error)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// ErrUnknownGame is returned for IDs that were never registered.
var ErrUnknownGame = errors.New("registry: unknown game")

var (
	games = make(map[string]Game)
	mu    sync.RWMutex
)

// Register adds a game to the registry.
// Typically called from a game's init() function.
// Panics if the ID is empty, already registered, or Start is nil.
func Register(g Game) {
	mu.Lock()
	defer mu.Unlock()

	if g.ID == "" || g.Start == nil {
		panic(fmt.Sprintf("registry: incomplete game %q", g.ID))
	}
	if _, exists := games[g.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", g.ID))
	}

	games[g.ID] = g
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(games))
	for id, g := range games {
		result = append(result, GameInfo{
			ID:    id,
			Title: g.Title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Configure applies the variant's adjustments to cfg.
// Front-ends call it first to size their drawing surface.
func Configure(id string, cfg core.Config) (core.Config, error) {
	g, err := lookup(id)
	if err != nil {
		return cfg, err
	}
	if g.Configure != nil {
		cfg = g.Configure(cfg)
	}
	return cfg, nil
}

// Create configures and starts a game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, cfg core.Config, opts engine.Options) (engine.Runner, error) {
	cfg, err := Configure(id, cfg)
	if err != nil {
		return nil, err
	}
	g, _ := lookup(id)

	r, err := g.Start(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("registry: start %q: %w", id, err)
	}
	return r, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}

func lookup(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	g, ok := games[id]
	if !ok {
		return Game{}, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return g, nil
}
