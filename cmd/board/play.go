package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/board-engine/internal/config"
	"github.com/vovakirdan/board-engine/internal/core"
	"github.com/vovakirdan/board-engine/internal/engine"
	"github.com/vovakirdan/board-engine/internal/platform/tui"
	"github.com/vovakirdan/board-engine/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.
Without a game argument an interactive picker is shown.

Controls:
  Click      - Mark the cell under the pointer
  1-9        - Mark a cell in reading order
  Ctrl+S     - Save a text screenshot to ~/.board/screenshots
  Q/Esc      - Quit

Examples:
  board play
  board play tictactoe5
  board play tictactoe --log-file board.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		picked, ok, err := tui.RunMenu()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		args = []string{picked}
	}

	id, err := gameArg(args)
	if err != nil {
		return err
	}
	cfg, err := runtimeConfig(id, config.LayoutTerminal)
	if err != nil {
		return err
	}

	// The board and the two status lines must fit
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cfg.Width() || h < cfg.Height()+2 {
			return fmt.Errorf("terminal is %dx%d, %s needs at least %dx%d", w, h, id, cfg.Width(), cfg.Height()+2)
		}
	}

	// Logging to the terminal would corrupt the alt screen
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	screen := core.NewScreen(cfg.Width(), cfg.Height())
	runner, err := registry.Create(id, cfg, engine.Options{Surface: screen, Logger: logger})
	if err != nil {
		return err
	}
	return tui.Run(runner, screen)
}
