package config

import (
	_ "embed"
)

//go:embed defaults/board.yaml
var defaultBoardYAML []byte

// DefaultFile returns the hardcoded configuration. It matches the embedded
// defaults/board.yaml and is used when even the embedded file cannot be parsed.
func DefaultFile() File {
	return File{
		Board: BoardConfig{
			Title: "Tic Tac Toe with Animation Engine",
			Rows:  3,
			Cols:  3,
		},
		TickRate:    60,
		MaxSubsteps: 60,
		Layouts: map[string]LayoutConfig{
			LayoutWindow: {
				CellWidth:  200,
				CellHeight: 200,
				LineWidth:  15,
			},
			LayoutTerminal: {
				CellWidth:  10,
				CellHeight: 5,
				LineWidth:  1,
			},
		},
		Palette: PaletteConfig{
			Background: "#1caa9c",
			Line:       "#179187",
			Cell:       "#1caa9c",
			Text:       "#000000",
			Player1:    "#ff0000",
			Player2:    "#00ff00",
		},
		Timing: TimingConfig{
			Fill:   1.0,
			Reveal: 2.0,
			Commit: 2.0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBoardYAML
}
