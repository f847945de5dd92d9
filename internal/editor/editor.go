package editor

import (
	"github.com/Larsouille25/ri/internal/input/key"
)

// Editor is the modal editing state: the current mode, the theme, an
// optional status message and the command-line buffer.
//
// The command buffer is cleared on entry into Command mode and is only
// appended to or popped while Command mode is active. Outside Command
// mode it keeps whatever it last held.
type Editor struct {
	mode   Mode
	theme  Theme
	status Message
	cmdBuf []rune

	executor  CommandExecutor
	buffer    Buffer
	callbacks []ModeChangeCallback
}

// Option configures an Editor.
type Option func(*Editor)

// WithTheme sets the editor theme.
func WithTheme(theme Theme) Option {
	return func(e *Editor) {
		e.theme = theme
	}
}

// WithExecutor attaches a command executor.
func WithExecutor(x CommandExecutor) Option {
	return func(e *Editor) {
		e.executor = x
	}
}

// WithBuffer attaches the text buffer edited by Insert and Select modes.
func WithBuffer(b Buffer) Option {
	return func(e *Editor) {
		e.buffer = b
	}
}

// WithInitialMode starts the editor in m instead of Normal.
func WithInitialMode(m Mode) Option {
	return func(e *Editor) {
		e.mode = m
	}
}

// New creates an editor in Normal mode with the default theme.
func New(opts ...Option) *Editor {
	e := &Editor{
		mode:   Normal,
		theme:  DefaultTheme(),
		cmdBuf: make([]rune, 0, 64),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mode returns the current mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Theme returns the editor theme.
func (e *Editor) Theme() Theme {
	return e.theme
}

// Status returns the current status message.
func (e *Editor) Status() Message {
	return e.status
}

// SetStatus shows msg in the status bar.
func (e *Editor) SetStatus(msg string) {
	e.status = NewMessage(msg)
}

// ClearStatus removes the status message.
func (e *Editor) ClearStatus() {
	e.status = Message{}
}

// CommandLine returns the command buffer contents.
func (e *Editor) CommandLine() string {
	return string(e.cmdBuf)
}

// Buffer returns the attached text buffer, or nil.
func (e *Editor) Buffer() Buffer {
	return e.buffer
}

// OnModeChange registers a callback invoked after every mode transition.
func (e *Editor) OnModeChange(cb ModeChangeCallback) {
	e.callbacks = append(e.callbacks, cb)
}

// HandleKeyEvent applies ev to the editor according to the current mode.
// It never fails; keys a mode does not handle are ignored.
func (e *Editor) HandleKeyEvent(ev key.Event) {
	switch e.mode {
	case Normal:
		e.handleNormal(ev)
	case Insert:
		e.handleInsert(ev)
	case Select:
		e.handleSelect(ev)
	case Command:
		e.handleCommand(ev)
	}
}

func (e *Editor) handleNormal(ev key.Event) {
	if ev.IsRune() && !ev.IsModified() && ev.Rune == ':' {
		e.cmdBuf = e.cmdBuf[:0]
		e.setMode(Command)
	}
}

// handleInsert is reserved for buffer mutation.
func (e *Editor) handleInsert(key.Event) {}

// handleSelect is reserved for region selection.
func (e *Editor) handleSelect(key.Event) {}

func (e *Editor) handleCommand(ev key.Event) {
	switch {
	case ev.IsChar() && !ev.IsModified():
		e.cmdBuf = append(e.cmdBuf, ev.Rune)
	case ev.Key == key.KeyEscape:
		e.setMode(Normal)
	case ev.Key == key.KeyBackspace:
		if n := len(e.cmdBuf); n > 0 {
			e.cmdBuf = e.cmdBuf[:n-1]
		}
	case ev.Key == key.KeyEnter:
		e.submitCommand()
	}
}

// submitCommand hands the command line to the executor and returns to
// Normal mode. Without an executor, Enter does nothing.
func (e *Editor) submitCommand() {
	if e.executor == nil {
		return
	}
	out, err := e.executor.Execute(string(e.cmdBuf))
	switch {
	case err != nil:
		e.SetStatus(err.Error())
	case out != "":
		e.SetStatus(out)
	}
	e.setMode(Normal)
}

func (e *Editor) setMode(m Mode) {
	from := e.mode
	if from == m {
		return
	}
	e.mode = m
	for _, cb := range e.callbacks {
		cb(from, m)
	}
}
