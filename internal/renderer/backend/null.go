package backend

import (
	"strings"

	"github.com/Larsouille25/ri/internal/renderer/core"
)

// NullBackend is an in-memory backend for testing.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorVisible bool
	events        chan Event

	initErr     error
	initCalls   int
	shutdowns   int
	shows       int
	outOfBounds int
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:         width,
		height:        height,
		cursorVisible: true,
		events:        make(chan Event, 100),
	}
}

// FailInit makes the next Init call return err.
func (b *NullBackend) FailInit(err error) {
	b.initErr = err
}

func (b *NullBackend) Init() error {
	b.initCalls++
	if b.initErr != nil {
		return b.initErr
	}
	b.allocate()
	return nil
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Shutdown() {
	b.shutdowns++
}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
		return
	}
	b.outOfBounds++
}

func (b *NullBackend) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Fill(rect core.ScreenRect, cell core.Cell) {
	for y := rect.Top; y < rect.Bottom; y++ {
		for x := rect.Left; x < rect.Right; x++ {
			b.SetCell(x, y, cell)
		}
	}
}

func (b *NullBackend) Clear() {
	empty := core.EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show() {
	b.shows++
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) PendingEvent() (Event, bool) {
	select {
	case ev := <-b.events:
		return ev, true
	default:
		return Event{}, false
	}
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// Resize simulates a terminal resize for testing.
// The cell buffer is reallocated and a resize event is queued.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

// RowString returns the runes of row y as a string, for testing.
func (b *NullBackend) RowString(y int) string {
	if y < 0 || y >= len(b.cells) {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
		for _, r := range c.Combining {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// CursorVisible reports whether the cursor is shown.
func (b *NullBackend) CursorVisible() bool { return b.cursorVisible }

// InitCalls returns how many times Init was called.
func (b *NullBackend) InitCalls() int { return b.initCalls }

// Shutdowns returns how many times Shutdown was called.
func (b *NullBackend) Shutdowns() int { return b.shutdowns }

// Shows returns how many frames were flushed.
func (b *NullBackend) Shows() int { return b.shows }

// OutOfBoundsWrites returns how many cell writes fell outside the screen.
func (b *NullBackend) OutOfBoundsWrites() int { return b.outOfBounds }

// Pending returns the number of queued events.
func (b *NullBackend) Pending() int { return len(b.events) }
