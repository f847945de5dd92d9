// Package editor holds the modal editor state and the keystroke
// dispatcher that drives it.
//
// The editor is always in exactly one Mode. HandleKeyEvent dispatches on
// that mode alone; each mode has its own handler and no handler looks at
// another mode's state:
//
//	Normal  --':'-->  Command  --Esc-->  Normal
//	                  Command  --Enter (executor attached)-->  Normal
//
// Insert and Select are reserved. They accept keys and ignore them until a
// Buffer implementation is attached to drive them.
package editor
