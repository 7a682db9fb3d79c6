// Package config provides YAML-based board configuration loading for the
// front-ends.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/board-engine/internal/core"
)

// Layout names.
const (
	LayoutWindow   = "window"
	LayoutTerminal = "terminal"
)

// File is the on-disk configuration.
type File struct {
	Board       BoardConfig             `yaml:"board"`
	TickRate    int                     `yaml:"tick_rate"`
	MaxSubsteps int                     `yaml:"max_substeps"`
	Layouts     map[string]LayoutConfig `yaml:"layouts"`
	Palette     PaletteConfig           `yaml:"palette"`
	Timing      TimingConfig            `yaml:"timing"`
}

// BoardConfig defines the board shape.
type BoardConfig struct {
	Title string `yaml:"title"`
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
}

// LayoutConfig defines cell geometry for one front-end.
type LayoutConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	LineWidth  int `yaml:"line_width"`
}

// PaletteConfig holds colors as hex strings ("#rrggbb").
type PaletteConfig struct {
	Background string `yaml:"background"`
	Line       string `yaml:"line"`
	Cell       string `yaml:"cell"`
	Text       string `yaml:"text"`
	Player1    string `yaml:"player1"`
	Player2    string `yaml:"player2"`
}

// TimingConfig holds animation durations in seconds.
type TimingConfig struct {
	Fill   float64 `yaml:"fill"`
	Reveal float64 `yaml:"reveal"`
	Commit float64 `yaml:"commit"`
}

// Runtime converts the file into the engine configuration for a layout.
func (f File) Runtime(layout string) (core.Config, error) {
	l, ok := f.Layouts[layout]
	if !ok {
		return core.Config{}, fmt.Errorf("config: unknown layout %q", layout)
	}

	cfg := core.Config{
		Title:       f.Board.Title,
		Rows:        f.Board.Rows,
		Cols:        f.Board.Cols,
		CellW:       l.CellWidth,
		CellH:       l.CellHeight,
		LineWidth:   l.LineWidth,
		TickRate:    f.TickRate,
		MaxSubsteps: f.MaxSubsteps,
		Timing: core.Timing{
			Fill:   f.Timing.Fill,
			Reveal: f.Timing.Reveal,
			Commit: f.Timing.Commit,
		},
	}

	var errs []error
	parse := func(name, hex string, dst *core.Color) {
		c, err := core.ParseHex(hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("palette.%s: %w", name, err))
			return
		}
		*dst = c
	}
	parse("background", f.Palette.Background, &cfg.Palette.Background)
	parse("line", f.Palette.Line, &cfg.Palette.Line)
	parse("cell", f.Palette.Cell, &cfg.Palette.Cell)
	parse("text", f.Palette.Text, &cfg.Palette.Text)
	parse("player1", f.Palette.Player1, &cfg.Palette.Player1)
	parse("player2", f.Palette.Player2, &cfg.Palette.Player2)
	if err := errors.Join(errs...); err != nil {
		return core.Config{}, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return core.Config{}, err
	}
	return cfg, nil
}
