package tictactoe

import (
	"github.com/vovakirdan/board-engine/internal/anim"
	"github.com/vovakirdan/board-engine/internal/core"
	"github.com/vovakirdan/board-engine/internal/engine"
	"github.com/vovakirdan/board-engine/internal/hooks"
)

// Engine is the board engine instantiated for tic-tac-toe.
type Engine = engine.Engine[*State, Action]

// New builds a wired engine: click and key converters are registered and
// slot changes are animated by Fill.
func New(cfg core.Config, opts engine.Options) (*Engine, error) {
	e, err := engine.New[*State, Action](cfg, NewRules(cfg.Rows, cfg.Cols, opts.Logger), opts)
	if err != nil {
		return nil, err
	}

	e.Input().RegisterHandler(core.EventMouseDown, ClickToMark(cfg))
	e.Input().RegisterHandler(core.EventKey, KeyToMark(cfg))
	if err := e.Hooks().Set(OnSlotChange, Fill); err != nil {
		return nil, err
	}
	return e, nil
}

// Fill animates a placed mark: the cell fades to the player color, the mark
// is revealed near the cell corner, and the mark is committed to the board
// once the reveal is over. Cells that already hold text are left alone.
func Fill(e *Engine, args ...any) error {
	row, err := hooks.Arg[int](args, 0)
	if err != nil {
		return err
	}
	col, err := hooks.Arg[int](args, 1)
	if err != nil {
		return err
	}
	player, err := hooks.Arg[Player](args, 2)
	if err != nil {
		return err
	}

	b, cfg := e.Board(), e.Config()
	if b.CellText(row, col) != "" {
		e.Logger().Warn("cell already filled", "row", row, "col", col)
		return nil
	}

	to := cfg.Palette.Player1
	if player == Player2 {
		to = cfg.Palette.Player2
	}
	text := player.Mark().String()
	rect := cfg.CellRect(row, col)

	e.Schedule(anim.NewColorTransition(row, col, b.CellColor(row, col), to, cfg.Timing.Fill))
	e.Schedule(anim.NewTextReveal(text, rect.X+cfg.CellW/4, rect.Y+cfg.CellH/4, cfg.Palette.Text, cfg.Timing.Reveal))
	e.Schedule(anim.NewDeferredCommit(row, col, text, cfg.Timing.Commit))
	return nil
}
