package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/board-engine/internal/config"
	"github.com/vovakirdan/board-engine/internal/engine"
	"github.com/vovakirdan/board-engine/internal/platform/window"
	"github.com/vovakirdan/board-engine/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play a game in a desktop window",
	Long: `Open a desktop window and play the specified game (default: tictactoe).

Controls:
  Click      - Mark the cell under the pointer
  1-9        - Mark a cell in reading order
  Q/Esc      - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	id, err := gameArg(args)
	if err != nil {
		return err
	}
	cfg, err := runtimeConfig(id, config.LayoutWindow)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	surface, err := window.NewSurface(cfg)
	if err != nil {
		return err
	}
	runner, err := registry.Create(id, cfg, engine.Options{Surface: surface, Logger: logger})
	if err != nil {
		return err
	}
	return window.Run(runner, surface)
}
