package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/board-engine/internal/config"
	"github.com/vovakirdan/board-engine/internal/core"
	"github.com/vovakirdan/board-engine/internal/engine"
	"github.com/vovakirdan/board-engine/internal/registry"
)

var (
	flagMoves  string
	flagScreen bool
)

var runCmd = &cobra.Command{
	Use:   "run [game]",
	Short: "Replay moves without a UI",
	Long: `Replays a list of moves at a fixed tick rate without opening a UI,
waits for all animations to finish and prints the resulting board.

Each move is "row,col" and is delivered as a click on that cell, one move
per frame. Moves outside the board are ignored.

Examples:
  board run --moves "1,1 0,0 2,2"
  board run tictactoe5 --moves "2,2 0,4" --screen --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagMoves, "moves", "", `Moves as "row,col" separated by spaces`)
	runCmd.Flags().BoolVar(&flagScreen, "screen", false, "Also print the rendered terminal screen")
}

func runRun(cmd *cobra.Command, args []string) error {
	id, err := gameArg(args)
	if err != nil {
		return err
	}
	cfg, err := runtimeConfig(id, config.LayoutTerminal)
	if err != nil {
		return err
	}
	batches, err := parseMoves(flagMoves, cfg)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	screen := core.NewScreen(cfg.Width(), cfg.Height())
	src := engine.NewScriptSource(batches...)
	runner, err := registry.Create(id, cfg, engine.Options{
		Surface: screen,
		Source:  src,
		Logger:  logger,
		Fixed:   true,
	})
	if err != nil {
		return err
	}
	src.QuitWhen(runner.Idle)

	runner.MainLoop()

	out := cmd.OutOrStdout()
	printBoard(out, runner.Board(), runner.Config())
	if flagScreen {
		fmt.Fprintln(out)
		fmt.Fprintln(out, screen.String())
	}
	return nil
}

// parseMoves turns "r,c r,c" into one click batch per move.
func parseMoves(s string, cfg core.Config) ([][]core.InputEvent, error) {
	fields := strings.Fields(s)
	batches := make([][]core.InputEvent, 0, len(fields))
	for _, f := range fields {
		rs, cs, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("invalid move %q, expected row,col", f)
		}
		row, err := strconv.Atoi(rs)
		if err != nil {
			return nil, fmt.Errorf("invalid move %q: %w", f, err)
		}
		col, err := strconv.Atoi(cs)
		if err != nil {
			return nil, fmt.Errorf("invalid move %q: %w", f, err)
		}
		x, y := cfg.CellRect(row, col).Center()
		batches = append(batches, []core.InputEvent{core.ClickEvent(x, y)})
	}
	return batches, nil
}

// printBoard writes the committed cell texts, one row per line.
func printBoard(w io.Writer, b core.Board, cfg core.Config) {
	for r := 0; r < cfg.Rows; r++ {
		var sb strings.Builder
		for c := 0; c < cfg.Cols; c++ {
			text := b.CellText(r, c)
			if text == "" {
				text = "."
			}
			sb.WriteString(text)
		}
		fmt.Fprintln(w, sb.String())
	}
}
