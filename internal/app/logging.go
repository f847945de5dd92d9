// Package app provides the main application structure and coordination.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// toSlogLevel converts a LogLevel to slog.Level.
func (l LogLevel) toSlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLogLevel parses a string into a LogLevel.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// loggerState is shared by a logger and every logger derived from it.
type loggerState struct {
	level    slog.LevelVar
	disabled atomic.Bool
	closer   io.Closer
}

// Logger provides structured logging for the application.
// Messages are formatted printf-style; fields become slog attributes.
type Logger struct {
	slog  *slog.Logger
	state *loggerState
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level LogLevel
	// Output is where logs are written. Defaults to io.Discard, since the
	// terminal belongs to the UI.
	Output io.Writer
	// Prefix is attached to every record as the "app" field.
	Prefix string
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  LogLevelInfo,
		Output: io.Discard,
		Prefix: "ri",
	}
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}

	state := &loggerState{}
	state.level.Set(cfg.Level.toSlogLevel())

	logger := slog.New(slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: &state.level}))
	if cfg.Prefix != "" {
		logger = logger.With("app", cfg.Prefix)
	}

	return &Logger{slog: logger, state: state}
}

// OpenLogFile creates a logger appending to the file at path.
// Close releases the file.
func OpenLogFile(path string, level LogLevel) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, &IoError{Op: "open log", Path: path, Err: err}
	}

	cfg := DefaultLoggerConfig()
	cfg.Level = level
	cfg.Output = f

	l := NewLogger(cfg)
	l.state.closer = f
	return l, nil
}

// NewSessionID returns a fresh identifier for one run of the editor.
func NewSessionID() string {
	return uuid.NewString()
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	if l.slog == nil {
		return l
	}
	return &Logger{slog: l.slog.With(key, value), state: l.state}
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l.slog == nil {
		return l
	}
	args := make([]any, 0, len(fields)*2)
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		args = append(args, k, fields[k])
	}
	return &Logger{slog: l.slog.With(args...), state: l.state}
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level LogLevel) {
	if l.state != nil {
		l.state.level.Set(level.toSlogLevel())
	}
}

// Disable disables all logging.
func (l *Logger) Disable() {
	if l.state != nil {
		l.state.disabled.Store(true)
	}
}

// Enable enables logging.
func (l *Logger) Enable() {
	if l.state != nil {
		l.state.disabled.Store(false)
	}
}

// Close releases the log file, if the logger owns one.
func (l *Logger) Close() error {
	if l.state == nil || l.state.closer == nil {
		return nil
	}
	closer := l.state.closer
	l.state.closer = nil
	if err := closer.Close(); err != nil {
		return &IoError{Op: "close log", Err: err}
	}
	return nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(LogLevelDebug, msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.log(LogLevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(LogLevelWarn, msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.log(LogLevelError, msg, args...)
}

// log writes a log message if the level is enabled.
func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if l.slog == nil || l.state.disabled.Load() {
		return
	}

	ctx := context.Background()
	lvl := level.toSlogLevel()
	if !l.slog.Enabled(ctx, lvl) {
		return
	}

	// Format message with args if provided
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.slog.Log(ctx, lvl, msg)
}

// NullLogger is a logger that discards all output.
var NullLogger = &Logger{}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	return app.logger
}
