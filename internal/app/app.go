// Package app provides the main application structure and coordination
// for the ri editor. It owns the terminal session and drives the
// input/render loop.
package app

import (
	"context"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/Larsouille25/ri/internal/editor"
	"github.com/Larsouille25/ri/internal/renderer"
	"github.com/Larsouille25/ri/internal/renderer/backend"
	"github.com/Larsouille25/ri/internal/renderer/core"
)

// DefaultFrameDuration is the tick budget at 60 frames per second.
const DefaultFrameDuration = time.Second / 60

// Application is the central coordinator for ri.
// It owns the terminal backend, the editor state and the render loop.
type Application struct {
	backend  backend.Backend
	session  *backend.Session
	editor   *editor.Editor
	renderer *renderer.Renderer
	logger   *Logger
	metrics  *Metrics

	// viewport is resampled every tick.
	viewport core.Viewport

	frameDuration time.Duration
	now           func() time.Time
	sleep         func(time.Duration)

	// State
	quit    bool
	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// Backend is the terminal to drive. Required.
	Backend backend.Backend

	// Editor is the modal editor state. Defaults to editor.New().
	Editor *editor.Editor

	// Logger receives diagnostics. Defaults to NullLogger.
	Logger *Logger

	// FrameDuration is the budget of one tick. Defaults to DefaultFrameDuration.
	FrameDuration time.Duration

	// Now and Sleep drive frame pacing. They default to time.Now and
	// time.Sleep and are replaced in tests.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, ErrNoBackend
	}

	app := &Application{
		backend:       opts.Backend,
		editor:        opts.Editor,
		renderer:      renderer.New(opts.Backend),
		logger:        opts.Logger,
		metrics:       NewMetrics(),
		frameDuration: opts.FrameDuration,
		now:           opts.Now,
		sleep:         opts.Sleep,
	}

	if app.editor == nil {
		app.editor = editor.New()
	}
	if app.logger == nil {
		app.logger = NullLogger
	}
	if app.frameDuration <= 0 {
		app.frameDuration = DefaultFrameDuration
	}
	if app.now == nil {
		app.now = time.Now
	}
	if app.sleep == nil {
		app.sleep = time.Sleep
	}

	modeLog := app.logger.WithComponent("editor")
	app.editor.OnModeChange(func(from, to editor.Mode) {
		modeLog.Debug("mode %s -> %s", from.Name(), to.Name())
	})

	return app, nil
}

// Run enters the terminal session and runs the loop until Ctrl+C, a
// fatal error, or ctx is cancelled. The terminal is restored before Run
// returns on every path, including a panic inside the loop, which is
// returned as a *RecoveredPanicError.
func (app *Application) Run(ctx context.Context) (err error) {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	session, err := backend.Enter(app.backend)
	if err != nil {
		app.logger.Error("terminal init failed: %v", err)
		return &TerminalError{Op: "enter", Err: err}
	}
	app.session = session

	defer func() {
		session.Leave()
		if r := recover(); r != nil {
			perr := NewRecoveredPanicError(r, string(debug.Stack()))
			app.logger.Error("recovered %s", perr.Error())
			err = perr
		}
		app.logger.Info("terminal restored")
	}()

	app.logger.Info("event loop started (frame budget %s)", app.frameDuration)

	for !app.quit {
		select {
		case <-ctx.Done():
			app.logger.Info("cancelled: %v", ctx.Err())
			return nil
		default:
		}

		if err := app.Tick(); err != nil {
			app.logger.Error("event loop stopped: %v", err)
			return err
		}
	}

	app.logger.Info("quit requested")
	return nil
}

// Quit asks the loop to stop after the current tick.
func (app *Application) Quit() {
	app.quit = true
}

// ShouldQuit reports whether the quit flag is set.
func (app *Application) ShouldQuit() bool {
	return app.quit
}

// IsRunning returns true if Run is executing.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Editor returns the editor state.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Renderer returns the frame renderer.
func (app *Application) Renderer() *renderer.Renderer {
	return app.renderer
}

// Viewport returns the viewport sampled by the last tick.
func (app *Application) Viewport() core.Viewport {
	return app.viewport
}

// FrameDuration returns the tick budget.
func (app *Application) FrameDuration() time.Duration {
	return app.frameDuration
}
