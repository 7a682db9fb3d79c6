package anim

import (
	"fmt"

	"github.com/vovakirdan/board-engine/internal/core"
)

type cellKey struct{ row, col int }

// testBoard is a map-backed core.Board.
type testBoard struct {
	colors map[cellKey]core.Color
	texts  map[cellKey]string
	writes int
}

func newTestBoard() *testBoard {
	return &testBoard{
		colors: make(map[cellKey]core.Color),
		texts:  make(map[cellKey]string),
	}
}

func (b *testBoard) SetCellColor(row, col int, c core.Color) {
	b.colors[cellKey{row, col}] = c
	b.writes++
}

func (b *testBoard) CellColor(row, col int) core.Color { return b.colors[cellKey{row, col}] }

func (b *testBoard) SetCellText(row, col int, text string) {
	b.texts[cellKey{row, col}] = text
	b.writes++
}

func (b *testBoard) CellText(row, col int) string { return b.texts[cellKey{row, col}] }

func (b *testBoard) Draw(core.Surface) {}

func (b *testBoard) Reset() {
	clear(b.colors)
	clear(b.texts)
}

// testContext is the engine seen by animations under test.
type testContext struct {
	board *testBoard
	cfg   core.Config
	anims *Engine
}

func newTestContext() *testContext {
	return &testContext{
		board: newTestBoard(),
		cfg:   core.DefaultConfig(),
		anims: NewEngine(0, 0),
	}
}

func (c *testContext) Board() core.Board    { return c.board }
func (c *testContext) Config() core.Config  { return c.cfg }
func (c *testContext) Schedule(a Animation) { c.anims.Schedule(a) }

// recordSurface logs draw calls as strings.
type recordSurface struct {
	calls []string
}

func (s *recordSurface) Fill(c core.Color) {
	s.calls = append(s.calls, fmt.Sprintf("fill %v", c))
}

func (s *recordSurface) FillRect(r core.Rect, c core.Color) {
	s.calls = append(s.calls, fmt.Sprintf("rect %d,%d %dx%d %v", r.X, r.Y, r.W, r.H, c))
}

func (s *recordSurface) DrawString(x, y int, text string, c core.Color) {
	s.calls = append(s.calls, fmt.Sprintf("text %d,%d %q %v", x, y, text, c))
}

func (s *recordSurface) MeasureString(text string) (int, int) {
	return len(text), 1
}

// stepper records every update it receives.
type stepper struct {
	Base
	name    string
	steps   []float64
	lifeFor int // finish after this many updates; 0 = never
	onFirst func(ctx Context)
	log     *[]string
}

func (p *stepper) Update(ctx Context, dt float64) {
	p.steps = append(p.steps, dt)
	if len(p.steps) == 1 && p.onFirst != nil {
		p.onFirst(ctx)
	}
	if p.lifeFor > 0 && len(p.steps) >= p.lifeFor {
		p.Done()
	}
}

func (p *stepper) Draw(Context, core.Surface) {
	if p.log != nil {
		*p.log = append(*p.log, p.name)
	}
}
