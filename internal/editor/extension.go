package editor

// Buffer is the text storage that Insert and Select modes will edit.
// No implementation ships with the editor yet.
type Buffer interface {
	// InsertRune inserts r at the cursor.
	InsertRune(r rune)

	// DeleteBackward removes the character before the cursor.
	DeleteBackward()

	// Text returns the full buffer contents.
	Text() string
}

// CommandExecutor runs a submitted command line.
// The returned string, if non-empty, becomes the status message; a
// non-nil error's text is shown instead.
type CommandExecutor interface {
	Execute(cmdline string) (string, error)
}

// CommandExecutorFunc adapts a function to CommandExecutor.
type CommandExecutorFunc func(cmdline string) (string, error)

// Execute calls f(cmdline).
func (f CommandExecutorFunc) Execute(cmdline string) (string, error) {
	return f(cmdline)
}

// ModeChangeCallback is called after the mode changes.
type ModeChangeCallback func(from, to Mode)
