// board runs an animated turn-based board game on the board engine.
//
// Usage:
//
//	board list               - List available games
//	board play [game]        - Play in the terminal (picker if no game given)
//	board window [game]      - Play in a desktop window
//	board run [game]         - Replay moves headlessly and print the board
//	board config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate
//	--config <path>       - Custom configuration YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/board-engine/internal/games/tictactoe"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "board",
	Short: "Board - animated turn-based board games",
	Long: `Board runs turn-based board games with an animated presentation
layer, in the terminal or in a desktop window.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  window   - Play in a desktop window
  run      - Replay moves without a UI
  config   - Print the default configuration

Examples:
  board list
  board play tictactoe
  board window tictactoe5
  board run --moves "1,1 0,0 2,2"`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
}
