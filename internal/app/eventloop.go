// Package app provides the main application structure and coordination.
package app

import (
	"time"

	"github.com/Larsouille25/ri/internal/renderer/backend"
	"github.com/Larsouille25/ri/internal/renderer/core"
)

// Tick runs one iteration of the loop: consume at most one pending
// event, then redraw the frame, then sleep for whatever remains of the
// frame budget. It never blocks on input.
func (app *Application) Tick() error {
	start := app.now()

	if ev, ok := app.backend.PendingEvent(); ok {
		if err := app.handleBackendEvent(ev); err != nil {
			return err
		}
	}
	if app.quit {
		return nil
	}

	app.viewport = app.sampleViewport()

	renderStart := app.now()
	app.renderer.Render(app.viewport, app.editor)
	app.metrics.RecordRender(app.now().Sub(renderStart))

	app.pace(start)
	return nil
}

// pace sleeps for the rest of the frame budget.
func (app *Application) pace(start time.Time) {
	elapsed := app.now().Sub(start)
	app.metrics.RecordFrame(elapsed)

	if remaining := app.frameDuration - elapsed; remaining > 0 {
		app.sleep(remaining)
		return
	}
	app.metrics.RecordOverrun()
}

// sampleViewport reads the current terminal size.
func (app *Application) sampleViewport() core.Viewport {
	w, h := app.backend.Size()
	return core.Viewport{Cols: max(w, 0), Rows: max(h, 0)}
}

// handleBackendEvent processes a backend event and routes it appropriately.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		app.metrics.RecordInput()
		app.handleKeyEvent(ev)
		return nil
	case backend.EventResize:
		return app.handleResize(ev)
	case backend.EventError:
		return &TerminalError{Op: "poll", Err: ev.Err}
	default:
		return nil
	}
}

// handleResize processes terminal resize events.
// The new size is picked up by the next viewport sample.
func (app *Application) handleResize(ev backend.Event) error {
	app.metrics.RecordResize()
	app.logger.Debug("resize %dx%d", ev.Width, ev.Height)
	return nil
}

// handleKeyEvent intercepts Ctrl+C before per-mode dispatch.
func (app *Application) handleKeyEvent(ev backend.Event) {
	if ev.Key.IsCtrlRune('c') {
		app.logger.Debug("ctrl+c in %s mode", app.editor.Mode().Name())
		app.quit = true
		return
	}
	app.editor.HandleKeyEvent(ev.Key)
}
