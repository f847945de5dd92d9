// Package app provides the main application structure and coordination.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNoBackend indicates the application was created without a terminal backend.
	ErrNoBackend = errors.New("no terminal backend")
)

// TerminalError reports a failure talking to the terminal: entering or
// leaving application mode, querying its size, writing escape sequences,
// or an error event raised by the backend.
type TerminalError struct {
	Op  string // Operation name (e.g., "enter", "poll")
	Err error  // Underlying error
}

func (e *TerminalError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
	}
	return "terminal " + e.Op
}

func (e *TerminalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IoError reports a failed write, flush or open on an output stream.
type IoError struct {
	Op   string // Operation name (e.g., "open", "close")
	Path string // File path, if any
	Err  error  // Underlying error
}

func (e *IoError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *IoError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RecoveredPanicError wraps a panic value as an error.
// SECURITY NOTE: The Error() method includes the full stack trace and panic value.
// Be cautious about exposing this in user-facing error messages.
type RecoveredPanicError struct {
	Value any
	Stack string
}

// NewRecoveredPanicError creates a new RecoveredPanicError.
func NewRecoveredPanicError(value any, stack string) *RecoveredPanicError {
	return &RecoveredPanicError{
		Value: value,
		Stack: stack,
	}
}

func (e *RecoveredPanicError) Error() string {
	if e == nil {
		return ""
	}
	if e.Stack != "" {
		return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value if it was an error.
func (e *RecoveredPanicError) Unwrap() error {
	if e == nil {
		return nil
	}
	err, _ := e.Value.(error)
	return err
}

// Summary returns the panic message without the stack trace.
func (e *RecoveredPanicError) Summary() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("panic: %v", e.Value)
}
