package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/board-engine/internal/config"
	"github.com/vovakirdan/board-engine/internal/core"
	"github.com/vovakirdan/board-engine/internal/registry"
)

const defaultGame = "tictactoe"

// gameArg returns the game named on the command line, or the default.
func gameArg(args []string) (string, error) {
	id := defaultGame
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown game %q, run 'board list' to see available games", id)
	}
	return id, nil
}

// runtimeConfig loads the configuration for a layout and applies the game
// variant and global flag overrides.
func runtimeConfig(id, layout string) (core.Config, error) {
	file, err := config.Load(flagConfig)
	if err != nil {
		return core.Config{}, err
	}
	if flagFPS > 0 {
		file.TickRate = flagFPS
	}

	cfg, err := file.Runtime(layout)
	if err != nil {
		return core.Config{}, err
	}
	return registry.Configure(id, cfg)
}

// newLogger creates the application logger. Logs go to --log-file when set,
// otherwise to fallback. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "board",
		Level:           level,
	})
	return logger, closer, nil
}
