package tictactoe

import (
	"testing"

	"github.com/vovakirdan/board-engine/internal/core"
	"github.com/vovakirdan/board-engine/internal/engine"
)

func newGame(t *testing.T) *Engine {
	t.Helper()
	e, err := New(core.DefaultConfig(), engine.Options{Fixed: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e
}

// settle runs frames until no animation is left.
func settle(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; i < 1000 && e.Animations().Len() > 0; i++ {
		e.NextFrame()
	}
	if n := e.Animations().Len(); n != 0 {
		t.Fatalf("%d animations still active", n)
	}
}

func TestClickFillsCell(t *testing.T) {
	e := newGame(t)
	cfg := e.Config()

	e.Events().Push(core.ClickEvent(250, 50))
	e.NextFrame()

	if got := e.Animations().Len(); got != 3 {
		t.Fatalf("Animations().Len() = %d, expected color, reveal and commit", got)
	}
	if e.State().At(0, 1) != X || e.State().Turn() != Player2 {
		t.Error("state should hold X at (0, 1) with player 2 to move")
	}
	if e.Board().CellText(0, 1) != "" {
		t.Error("text should not be committed before the reveal ends")
	}

	settle(t, e)

	if got := e.Board().CellText(0, 1); got != "X" {
		t.Errorf("CellText(0, 1) = %q, expected X", got)
	}
	if got := e.Board().CellColor(0, 1); got != cfg.Palette.Player1 {
		t.Errorf("CellColor(0, 1) = %v, expected player 1 color", got)
	}
}

func TestSecondPlayerColor(t *testing.T) {
	e := newGame(t)
	e.Events().Push(core.KeyEvent("1"))
	e.Events().Push(core.KeyEvent("9"))
	e.NextFrame()
	settle(t, e)

	if got := e.Board().CellText(2, 2); got != "O" {
		t.Errorf("CellText(2, 2) = %q, expected O", got)
	}
	if got := e.Board().CellColor(2, 2); got != e.Config().Palette.Player2 {
		t.Errorf("CellColor(2, 2) = %v, expected player 2 color", got)
	}
}

func TestOccupiedCellRejected(t *testing.T) {
	e := newGame(t)

	if got := e.Input().OnInput(core.ClickEvent(10, 10)); got != engine.Accepted {
		t.Fatalf("first click = %v, expected accepted", got)
	}
	if got := e.Input().OnInput(core.ClickEvent(20, 20)); got != engine.Rejected {
		t.Errorf("second click = %v, expected rejected", got)
	}
	if e.State().Moves() != 1 {
		t.Errorf("Moves() = %d, expected 1", e.State().Moves())
	}
}

func TestFillSkipsTextCell(t *testing.T) {
	e := newGame(t)
	e.Board().SetCellText(1, 1, "O")

	if got := e.Input().OnInput(core.KeyEvent("5")); got != engine.Accepted {
		t.Fatalf("OnInput() = %v, expected accepted", got)
	}
	if e.Animations().Len() != 0 {
		t.Errorf("Animations().Len() = %d, expected no animation for a filled cell", e.Animations().Len())
	}
}

func TestFillBadArguments(t *testing.T) {
	e := newGame(t)
	if err := Fill(e, 0, 0); err == nil {
		t.Error("Fill() without a player should fail")
	}
	if err := Fill(e, "0", 0, Player1); err == nil {
		t.Error("Fill() with a string row should fail")
	}
}

func TestMissingSlotHookPanics(t *testing.T) {
	cfg := core.DefaultConfig()
	e, err := engine.New[*State, Action](cfg, NewRules(cfg.Rows, cfg.Cols, nil), engine.Options{})
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}
	e.Input().RegisterHandler(core.EventMouseDown, ClickToMark(cfg))

	defer func() {
		if recover() == nil {
			t.Error("applying without a slot hook should panic")
		}
	}()
	e.Input().OnInput(core.ClickEvent(10, 10))
}

func TestOutsideClickIsNoAction(t *testing.T) {
	e := newGame(t)
	if got := e.Input().OnInput(core.ClickEvent(700, 700)); got != engine.NoAction {
		t.Errorf("OnInput() = %v, expected no action", got)
	}
	if e.State().Moves() != 0 {
		t.Error("state should be unchanged")
	}
}
