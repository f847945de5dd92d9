package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Larsouille25/ri/internal/input/key"
	"github.com/Larsouille25/ri/internal/renderer/core"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(sim)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(term.Shutdown)
	return term, sim
}

// nextKey drains queued events until a key event is found.
func nextKey(t *testing.T, term *Terminal) key.Event {
	t.Helper()
	for i := 0; i < 10; i++ {
		ev, ok := term.PendingEvent()
		if !ok {
			break
		}
		if ev.Type == EventKey {
			return ev.Key
		}
	}
	t.Fatal("no key event queued")
	return key.Event{}
}

func TestTerminalKeyConversion(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want func(key.Event) bool
	}{
		{"colon", tcell.KeyRune, ':', tcell.ModNone, func(e key.Event) bool { return e.Key == key.KeyRune && e.Rune == ':' }},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, func(e key.Event) bool { return e.Key == key.KeyEscape }},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, func(e key.Event) bool { return e.Key == key.KeyEnter }},
		{"backspace", tcell.KeyBackspace2, 0, tcell.ModNone, func(e key.Event) bool { return e.Key == key.KeyBackspace }},
		{"ctrl+c", tcell.KeyCtrlC, 0, tcell.ModCtrl, func(e key.Event) bool { return e.IsCtrlRune('c') }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, sim := newSimTerminal(t)
			sim.InjectKey(tt.key, tt.r, tt.mod)

			got := nextKey(t, term)
			if !tt.want(got) {
				t.Errorf("unexpected conversion: %+v", got)
			}
		})
	}
}

func TestTerminalPostEventRoundTrip(t *testing.T) {
	term, _ := newSimTerminal(t)

	term.PostEvent(Event{Type: EventKey, Key: key.NewRuneEvent('c', key.ModCtrl)})

	got := nextKey(t, term)
	if !got.IsCtrlRune('c') {
		t.Errorf("expected Ctrl+c, got %+v", got)
	}
}

func TestTerminalDrawAndShow(t *testing.T) {
	term, sim := newSimTerminal(t)

	style := core.DefaultStyle().WithBackground(core.ColorFromRGB(0x14, 0x14, 0x16))
	term.Clear()
	term.SetCell(2, 1, core.NewStyledCell('X', style))
	term.Show()

	cells, w, _ := sim.GetContents()
	got := cells[1*w+2]
	if len(got.Runes) == 0 || got.Runes[0] != 'X' {
		t.Errorf("expected X at (2,1), got %q", got.Runes)
	}
}

func TestTerminalSize(t *testing.T) {
	term, sim := newSimTerminal(t)
	sim.SetSize(40, 12)

	w, h := term.Size()
	if w != 40 || h != 12 {
		t.Errorf("Size() = (%d, %d), want (40, 12)", w, h)
	}
}

func TestConvertColor(t *testing.T) {
	if convertColor(core.ColorDefault) != tcell.ColorDefault {
		t.Error("default color should map to tcell.ColorDefault")
	}
	want := tcell.NewRGBColor(0x14, 0x14, 0x16)
	if got := convertColor(core.ColorFromRGB(0x14, 0x14, 0x16)); got != want {
		t.Errorf("convertColor = %v, want %v", got, want)
	}
}

func TestConvertModRoundTrip(t *testing.T) {
	mods := []key.Modifier{key.ModNone, key.ModCtrl, key.ModAlt | key.ModShift, key.ModMeta}
	for _, m := range mods {
		if got := convertMod(convertToTcellMod(m)); got != m {
			t.Errorf("round trip %v -> %v", m, got)
		}
	}
}
