package tictactoe

import (
	"github.com/vovakirdan/board-engine/internal/core"
	"github.com/vovakirdan/board-engine/internal/engine"
	"github.com/vovakirdan/board-engine/internal/registry"
)

func init() {
	registry.Register(variant("tictactoe", "Tic Tac Toe", 3))
	registry.Register(variant("tictactoe5", "Tic Tac Toe 5x5", 5))
}

// variant registers a square board of the given size.
func variant(id, title string, size int) registry.Game {
	return registry.Game{
		ID:    id,
		Title: title,
		Configure: func(cfg core.Config) core.Config {
			cfg.Rows, cfg.Cols = size, size
			return cfg
		},
		Start: func(cfg core.Config, opts engine.Options) (engine.Runner, error) {
			e, err := New(cfg, opts)
			if err != nil {
				return nil, err
			}
			return e, nil
		},
	}
}
