package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/board-engine/internal/anim"
	"github.com/vovakirdan/board-engine/internal/board"
	"github.com/vovakirdan/board-engine/internal/core"
	"github.com/vovakirdan/board-engine/internal/hooks"
)

// Runner is the engine as seen by front-ends, independent of the rules types.
type Runner interface {
	NextFrame()
	MainLoop()
	Running() bool
	Idle() bool
	Stop()
	Frame() uint64
	Config() core.Config
	Board() core.Board
	Events() *core.EventQueue
	Reset()
}

// Options are the collaborators injected into an engine.
// Every field is optional.
type Options struct {
	Board   core.Board   // Defaults to a board.Manager sized by the config
	Source  InputSource  // Defaults to an EventQueue, see Engine.Events
	Surface core.Surface // Nil skips rendering
	Clock   clock.Clock  // Defaults to the wall clock
	Logger  *log.Logger  // Defaults to a discarding logger

	// Fixed advances every frame by exactly one tick and disables pacing.
	// Used for headless runs and deterministic replays.
	Fixed bool
}

// Engine owns the game state, the hook registry, the input handler and the
// animation scheduler, and runs them in a frame loop.
type Engine[S, A any] struct {
	cfg     core.Config
	rules   Rules[S, A]
	state   S
	board   core.Board
	source  InputSource
	events  *core.EventQueue
	surface core.Surface
	clock   *FrameClock
	fixed   bool
	anims   *anim.Engine
	hooks   *hooks.Registry[*Engine[S, A]]
	input   *InputHandler[S, A]
	logger  *log.Logger
	running bool
	frame   uint64
}

var _ anim.Context = (*Engine[struct{}, struct{}])(nil)

// New creates a running engine. The initial state comes from rules.NewState
// and the rules are wired to the hook registry before New returns.
func New[S, A any](cfg core.Config, rules Rules[S, A], opts Options) (*Engine[S, A], error) {
	if rules == nil {
		return nil, errors.New("engine: rules are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	e := &Engine[S, A]{
		cfg:     cfg,
		rules:   rules,
		board:   opts.Board,
		source:  opts.Source,
		surface: opts.Surface,
		clock:   NewFrameClock(opts.Clock, cfg.TickRate),
		fixed:   opts.Fixed,
		anims:   anim.NewEngine(cfg.FrameStep(), cfg.MaxSubsteps),
		logger:  opts.Logger,
		running: true,
	}
	if e.board == nil {
		e.board = board.New(cfg)
	}
	if e.source == nil {
		e.events = core.NewEventQueue()
		e.source = e.events
	} else if q, ok := e.source.(*core.EventQueue); ok {
		e.events = q
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	e.hooks = hooks.New(e, defaultHooks[S, A]())
	e.input = newInputHandler(e)
	e.state = rules.NewState()
	rules.Watch(e.state, e.hooks)

	return e, nil
}

// defaultHooks reports accepted and rejected actions through the rules.
func defaultHooks[S, A any]() map[string]hooks.Func[*Engine[S, A]] {
	return map[string]hooks.Func[*Engine[S, A]]{
		hooks.OnValidAction: func(e *Engine[S, A], args ...any) error {
			action, err := hooks.Arg[A](args, 0)
			if err != nil {
				return err
			}
			e.logger.Debug("action accepted", "action", action, "frame", e.frame)
			e.rules.Report(action)
			return nil
		},
		hooks.OnInvalidAction: func(e *Engine[S, A], args ...any) error {
			action, err := hooks.Arg[A](args, 0)
			if err != nil {
				return err
			}
			e.logger.Warn("INVALID", "action", action, "frame", e.frame)
			e.rules.Report(action)
			return nil
		},
	}
}

// NextFrame runs one frame: input, animation advance, render.
func (e *Engine[S, A]) NextFrame() {
	dt := e.clock.Tick().Seconds()
	if e.fixed {
		dt = e.cfg.FrameStep()
	}
	e.frame++

	for _, ev := range e.source.Poll() {
		e.input.OnInput(ev)
		if !e.running {
			break
		}
	}

	e.anims.Update(e, dt)
	e.render()
}

func (e *Engine[S, A]) render() {
	if e.surface == nil {
		return
	}
	e.surface.Fill(e.cfg.Palette.Background)
	e.board.Draw(e.surface)
	e.anims.Draw(e, e.surface)
}

// MainLoop runs frames until the engine stops. A frame in progress always
// completes.
func (e *Engine[S, A]) MainLoop() {
	e.logger.Info("main loop started", "title", e.cfg.Title, "tick_rate", e.cfg.TickRate)
	for e.running {
		e.NextFrame()
		if e.running && !e.fixed {
			e.clock.Wait()
		}
	}
	e.logger.Info("main loop stopped", "frames", e.frame)
}

// Stop moves the engine to its terminal state.
func (e *Engine[S, A]) Stop() {
	e.running = false
}

// Reset starts a new game: pending animations are dropped, the board is
// cleared and the rules hand out a fresh state.
func (e *Engine[S, A]) Reset() {
	e.anims.Clear()
	e.board.Reset()
	e.state = e.rules.NewState()
	e.rules.Watch(e.state, e.hooks)
	e.logger.Info("game reset", "frame", e.frame)
}

// Running reports whether the engine has not been stopped.
func (e *Engine[S, A]) Running() bool {
	return e.running
}

// Idle reports whether no animation is active.
func (e *Engine[S, A]) Idle() bool {
	return e.anims.Len() == 0
}

// Frame returns the number of frames run so far.
func (e *Engine[S, A]) Frame() uint64 {
	return e.frame
}

// Config returns the engine configuration.
func (e *Engine[S, A]) Config() core.Config {
	return e.cfg
}

// Board returns the render/board layer.
func (e *Engine[S, A]) Board() core.Board {
	return e.board
}

// State returns the game-state handle.
func (e *Engine[S, A]) State() S {
	return e.state
}

// Hooks returns the hook registry. Hooks receive the engine as owner.
func (e *Engine[S, A]) Hooks() *hooks.Registry[*Engine[S, A]] {
	return e.hooks
}

// Input returns the input handler.
func (e *Engine[S, A]) Input() *InputHandler[S, A] {
	return e.input
}

// Events returns the built-in event queue, or nil when a custom source was
// injected.
func (e *Engine[S, A]) Events() *core.EventQueue {
	return e.events
}

// Animations returns the animation scheduler.
func (e *Engine[S, A]) Animations() *anim.Engine {
	return e.anims
}

// Schedule adds an animation to the scheduler.
func (e *Engine[S, A]) Schedule(a anim.Animation) {
	e.anims.Schedule(a)
}

// Logger returns the engine logger.
func (e *Engine[S, A]) Logger() *log.Logger {
	return e.logger
}
