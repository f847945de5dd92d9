// Package key provides the backend-independent key event types consumed
// by the editor.
//
//   - Key: identifies a keyboard key (special keys or KeyRune)
//   - Modifier: modifier keys held during the press (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press
//
// Terminal backends translate their native events into Event values so the
// editor state machine never depends on a particular terminal library.
package key
