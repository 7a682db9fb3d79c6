// Package window is the ebiten front-end for the board engine.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/board-engine/internal/core"
	"github.com/vovakirdan/board-engine/internal/engine"
)

// FontSize is the mark size, matching a 200px cell.
const FontSize = 40

// ResetKey starts a new game.
const ResetKey = ebiten.KeyR

// Game adapts an engine to ebiten.Game. Each ebiten update queues the
// frame's input and runs one engine frame into an offscreen surface, which
// Draw then copies to the window.
type Game struct {
	runner  engine.Runner
	surface *ImageSurface
	events  *core.EventQueue
	keys    []ebiten.Key
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a window front-end. surface must be the one the runner
// renders into and the runner must use its built-in event queue.
func NewGame(runner engine.Runner, surface *ImageSurface) (*Game, error) {
	events := runner.Events()
	if events == nil {
		return nil, fmt.Errorf("window: engine has no event queue")
	}
	return &Game{runner: runner, surface: surface, events: events}, nil
}

// Update collects input and runs one engine frame.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.events.Push(core.QuitEvent())
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.events.Push(core.ClickEvent(x, y))
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if k == ResetKey {
			g.runner.Reset()
			continue
		}
		if ev, ok := keyEvent(k); ok {
			g.events.Push(ev)
		}
	}

	g.runner.NextFrame()
	if !g.runner.Running() {
		return ebiten.Termination
	}
	return nil
}

// Draw copies the last rendered frame to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Image(), nil)
}

// Layout fixes the logical screen to the board size.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.runner.Config()
	return cfg.Width(), cfg.Height()
}

// keyEvent maps a key to an engine event. Digits pass through by name;
// Q and Escape quit.
func keyEvent(k ebiten.Key) (core.InputEvent, bool) {
	switch {
	case k >= ebiten.KeyDigit1 && k <= ebiten.KeyDigit9:
		return core.KeyEvent(string(rune('1' + k - ebiten.KeyDigit1))), true
	case k >= ebiten.KeyNumpad1 && k <= ebiten.KeyNumpad9:
		return core.KeyEvent(string(rune('1' + k - ebiten.KeyNumpad1))), true
	case k == ebiten.KeyQ || k == ebiten.KeyEscape:
		return core.QuitEvent(), true
	}
	return core.InputEvent{}, false
}

// NewSurface allocates the offscreen image a board of cfg renders into.
func NewSurface(cfg core.Config) (*ImageSurface, error) {
	face, err := LoadFace(FontSize)
	if err != nil {
		return nil, err
	}
	return NewImageSurface(ebiten.NewImage(cfg.Width(), cfg.Height()), face), nil
}

// Run opens the window and blocks until the engine stops or the window is
// closed.
func Run(runner engine.Runner, surface *ImageSurface) error {
	g, err := NewGame(runner, surface)
	if err != nil {
		return err
	}

	cfg := runner.Config()
	ebiten.SetWindowSize(cfg.Width(), cfg.Height())
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
