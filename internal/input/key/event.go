package key

import (
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewEvent creates a key event.
func NewEvent(key Key, r rune, mods Modifier) Event {
	return Event{Key: key, Rune: r, Modifiers: mods}
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// IsCtrlRune reports whether the event is Ctrl held with the given letter.
func (e Event) IsCtrlRune(r rune) bool {
	return e.Key == KeyRune && e.Modifiers.HasCtrl() && unicode.ToLower(e.Rune) == unicode.ToLower(r)
}

// String returns a canonical string representation.
// Examples: "a", "C-c", "Esc", "BS".
func (e Event) String() string {
	var prefix string
	if e.Modifiers.HasCtrl() {
		prefix += "C-"
	}
	if e.Modifiers.HasAlt() {
		prefix += "A-"
	}
	if e.Modifiers.HasMeta() {
		prefix += "M-"
	}
	if e.Modifiers.HasShift() && !e.IsRune() {
		prefix += "S-"
	}

	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			return prefix + "Space"
		}
		return prefix + string(e.Rune)
	case KeyEscape:
		return prefix + "Esc"
	case KeyBackspace:
		return prefix + "BS"
	case KeyDelete:
		return prefix + "Del"
	default:
		return prefix + e.Key.String()
	}
}
