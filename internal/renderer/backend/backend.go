// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"github.com/Larsouille25/ri/internal/input/key"
	"github.com/Larsouille25/ri/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventError
)

// String returns a human-readable event type name.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "none"
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key key.Event

	// Resize event fields
	Width, Height int

	// Error event fields
	Err error
}

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other display surfaces.
type Backend interface {
	// Init takes over the terminal: alternate screen, raw input,
	// line wrap disabled.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes the composed frame to the display in a single update.
	Show()

	// HideCursor hides the cursor.
	HideCursor()

	// PendingEvent returns the next queued event without blocking.
	// The boolean is false when no event is waiting.
	PendingEvent() (Event, bool)

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)
}
