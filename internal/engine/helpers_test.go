package engine

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/board-engine/internal/core"
)

type fakeAction struct {
	Cell int
}

type fakeState struct {
	occupied map[int]bool
	notifier Notifier
}

// fakeRules records every call in order.
type fakeRules struct {
	calls []string
}

func (r *fakeRules) NewState() *fakeState {
	r.calls = append(r.calls, "new")
	return &fakeState{occupied: make(map[int]bool)}
}

func (r *fakeRules) CanApply(a fakeAction, s *fakeState) bool {
	return a.Cell >= 0 && a.Cell < 9 && !s.occupied[a.Cell]
}

func (r *fakeRules) Apply(a fakeAction, s *fakeState) {
	r.calls = append(r.calls, fmt.Sprintf("apply %d", a.Cell))
	s.occupied[a.Cell] = true
	if s.notifier != nil {
		_ = s.notifier.Call("on_slot_change", a.Cell)
	}
}

func (r *fakeRules) Assign(dst *fakeAction, src any) error {
	switch v := src.(type) {
	case int:
		dst.Cell = v
		return nil
	default:
		return fmt.Errorf("cannot assign %T", src)
	}
}

func (r *fakeRules) Report(a fakeAction) {
	r.calls = append(r.calls, fmt.Sprintf("report %d", a.Cell))
}

func (r *fakeRules) Watch(s *fakeState, n Notifier) {
	r.calls = append(r.calls, "watch")
	s.notifier = n
}

type testEngine = Engine[*fakeState, fakeAction]

// clickToCell maps a click to a 3x3 cell index on a 10x10-unit grid.
func clickToCell(ev core.InputEvent) (any, bool) {
	if ev.X < 0 || ev.Y < 0 || ev.X >= 30 || ev.Y >= 30 {
		return nil, false
	}
	return (ev.Y/10)*3 + ev.X/10, true
}

func testConfig() core.Config {
	cfg := core.DefaultConfig()
	cfg.CellW = 10
	cfg.CellH = 10
	cfg.LineWidth = 0
	return cfg
}

func newTestEngine(t *testing.T, opts Options) (*testEngine, *fakeRules) {
	t.Helper()
	rules := &fakeRules{}
	e, err := New[*fakeState, fakeAction](testConfig(), rules, opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	e.Input().RegisterHandler(core.EventMouseDown, clickToCell)
	rules.calls = nil
	return e, rules
}

func equalCalls(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
