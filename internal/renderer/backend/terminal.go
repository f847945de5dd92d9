package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Larsouille25/ri/internal/input/key"
	"github.com/Larsouille25/ri/internal/renderer/core"
)

// Terminal implements Backend using tcell for terminal output.
//
// tcell's Init switches to the alternate screen, disables automatic
// margins (line wrap) and puts the input stream in raw mode, so Ctrl+C
// arrives as a key event rather than SIGINT. Fini reverses all of it.
// Terminal is not safe for concurrent use; the application loop is its
// only caller.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing tcell screen, such as a
// simulation screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	return t.screen.Init()
}

func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.screen.SetContent(x, y, cell.Rune, cell.Combining, convertStyle(cell.Style))
}

func (t *Terminal) Fill(rect core.ScreenRect, cell core.Cell) {
	style := convertStyle(cell.Style)
	width, height := t.screen.Size()

	for y := max(rect.Top, 0); y < rect.Bottom && y < height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < width; x++ {
			t.screen.SetContent(x, y, cell.Rune, cell.Combining, style)
		}
	}
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

func (t *Terminal) PendingEvent() (Event, bool) {
	if !t.screen.HasPendingEvent() {
		return Event{}, false
	}
	return convertEvent(t.screen.PollEvent()), true
}

func (t *Terminal) PostEvent(event Event) {
	// Only key events can be synthesised.
	if event.Type != EventKey {
		return
	}
	k, r, mod := convertToTcellKey(event.Key)
	_ = t.screen.PostEvent(tcell.NewEventKey(k, r, mod)) // best-effort; event queue may be full
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(convertColor(s.Foreground)).
		Background(convertColor(s.Background))
}

// convertColor converts our Color to tcell.Color.
func convertColor(c core.Color) tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: convertKeyEvent(e)}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventError:
		return Event{Type: EventError, Err: e}

	default:
		return Event{Type: EventNone}
	}
}

// convertKeyEvent converts a tcell key press to a key.Event.
// Several tcell control keys share values (KeyBackspace is KeyCtrlH,
// KeyTab is KeyCtrlI, KeyEnter is KeyCtrlM), so the named keys are
// matched before the generic Ctrl+letter range.
func convertKeyEvent(e *tcell.EventKey) key.Event {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	switch {
	case k == tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods)
	case k == tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case k == tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case k == tcell.KeyTab || k == tcell.KeyBacktab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case k == tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case k == tcell.KeyInsert:
		return key.NewSpecialEvent(key.KeyInsert, mods)
	case k == tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case k == tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case k == tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods)
	case k == tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods)
	case k == tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case k == tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case k == tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case k == tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods.With(key.ModCtrl))
	default:
		return key.NewSpecialEvent(key.KeyNone, mods)
	}
}

// convertToTcellKey converts a key.Event to tcell key, rune and modifiers.
func convertToTcellKey(ev key.Event) (tcell.Key, rune, tcell.ModMask) {
	mod := convertToTcellMod(ev.Modifiers)
	switch ev.Key {
	case key.KeyRune:
		if ev.Modifiers.HasCtrl() && ev.Rune >= 'a' && ev.Rune <= 'z' {
			return tcell.KeyCtrlA + tcell.Key(ev.Rune-'a'), 0, mod
		}
		return tcell.KeyRune, ev.Rune, mod
	case key.KeyEscape:
		return tcell.KeyEscape, 0, mod
	case key.KeyEnter:
		return tcell.KeyEnter, 0, mod
	case key.KeyTab:
		return tcell.KeyTab, 0, mod
	case key.KeyBackspace:
		return tcell.KeyBackspace2, 0, mod
	case key.KeyDelete:
		return tcell.KeyDelete, 0, mod
	case key.KeyInsert:
		return tcell.KeyInsert, 0, mod
	case key.KeyHome:
		return tcell.KeyHome, 0, mod
	case key.KeyEnd:
		return tcell.KeyEnd, 0, mod
	case key.KeyPageUp:
		return tcell.KeyPgUp, 0, mod
	case key.KeyPageDown:
		return tcell.KeyPgDn, 0, mod
	case key.KeyUp:
		return tcell.KeyUp, 0, mod
	case key.KeyDown:
		return tcell.KeyDown, 0, mod
	case key.KeyLeft:
		return tcell.KeyLeft, 0, mod
	case key.KeyRight:
		return tcell.KeyRight, 0, mod
	default:
		return tcell.KeyRune, ev.Rune, mod
	}
}

// convertMod converts tcell modifier mask to key.Modifier.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}

// convertToTcellMod converts key.Modifier to tcell.ModMask.
func convertToTcellMod(m key.Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m.HasShift() {
		result |= tcell.ModShift
	}
	if m.HasCtrl() {
		result |= tcell.ModCtrl
	}
	if m.HasAlt() {
		result |= tcell.ModAlt
	}
	if m.HasMeta() {
		result |= tcell.ModMeta
	}
	return result
}
