package config

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/Larsouille25/ri/internal/config/loader"
	"github.com/Larsouille25/ri/internal/editor"
	"github.com/Larsouille25/ri/internal/renderer/core"
)

// Setting paths.
const (
	PathLogFile     = "log.file"
	PathLogLevel    = "log.level"
	PathFPS         = "render.fps"
	PathDefaultBG   = "theme.defaultBG"
	PathStatusBarBG = "theme.statusBarBG"
)

// FPS bounds.
const (
	MinFPS     = 1
	MaxFPS     = 240
	DefaultFPS = 60
)

// LogLevels lists the accepted log level names.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds the runtime settings of ri.
type Config struct {
	// LogFile is where logs are written. The terminal belongs to the UI.
	LogFile string

	// LogLevel is one of LogLevels.
	LogLevel string

	// FPS is the target frame rate of the event loop.
	FPS int

	// DefaultBG and StatusBarBG are colors accepted by core.ParseColor.
	DefaultBG   string
	StatusBarBG string
}

// Default returns the built-in defaults.
func Default() *Config {
	theme := editor.DefaultTheme()
	return &Config{
		LogFile:     DefaultLogFile(),
		LogLevel:    "info",
		FPS:         DefaultFPS,
		DefaultBG:   theme.DefaultBG.String(),
		StatusBarBG: theme.StatusBarBG.String(),
	}
}

// DefaultLogFile returns ri.log under the XDG state directory, creating
// the directory if needed. It falls back to the temp directory.
func DefaultLogFile() string {
	path, err := xdg.StateFile("ri/ri.log")
	if err != nil {
		return filepath.Join(os.TempDir(), "ri.log")
	}
	return path
}

// LoadEnv applies every setting the loader finds.
// The first setting that fails to parse is returned as an error.
func (c *Config) LoadEnv(l *loader.EnvLoader) error {
	settings := l.Load()

	// Deterministic order so the reported error is stable.
	paths := make([]string, 0, len(settings))
	for path := range settings {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	for _, path := range paths {
		if err := c.Set(path, settings[path]); err != nil {
			return err
		}
	}
	return nil
}

// Set parses value and assigns it to the setting at path.
func (c *Config) Set(path, value string) error {
	switch path {
	case PathLogFile:
		c.LogFile = value
	case PathLogLevel:
		c.LogLevel = strings.ToLower(strings.TrimSpace(value))
	case PathFPS:
		fps, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return &ValidationError{
				Path:    path,
				Message: "expected an integer",
				Value:   value,
				Code:    ErrCodeTypeMismatch,
			}
		}
		c.FPS = fps
	case PathDefaultBG:
		c.DefaultBG = strings.TrimSpace(value)
	case PathStatusBarBG:
		c.StatusBarBG = strings.TrimSpace(value)
	default:
		return &ValidationError{
			Path:    path,
			Message: "unknown setting",
			Value:   value,
			Code:    ErrCodeUnknownSetting,
		}
	}
	return nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.LogFile == "" {
		return &ValidationError{
			Path:    PathLogFile,
			Message: "must not be empty",
			Value:   c.LogFile,
			Code:    ErrCodeRequiredMissing,
		}
	}

	if !slices.Contains(LogLevels, c.LogLevel) {
		return &ValidationError{
			Path:    PathLogLevel,
			Message: "must be one of " + strings.Join(LogLevels, ", "),
			Value:   c.LogLevel,
			Code:    ErrCodeInvalidEnum,
		}
	}

	if c.FPS < MinFPS || c.FPS > MaxFPS {
		return &ValidationError{
			Path:    PathFPS,
			Message: "must be between " + strconv.Itoa(MinFPS) + " and " + strconv.Itoa(MaxFPS),
			Value:   c.FPS,
			Code:    ErrCodeOutOfRange,
		}
	}

	_, err := c.Theme()
	return err
}

// Theme builds the editor theme from the configured colors.
func (c *Config) Theme() (editor.Theme, error) {
	theme := editor.DefaultTheme()

	bg, err := parseColor(PathDefaultBG, c.DefaultBG)
	if err != nil {
		return theme, err
	}
	status, err := parseColor(PathStatusBarBG, c.StatusBarBG)
	if err != nil {
		return theme, err
	}

	theme.DefaultBG = bg
	theme.StatusBarBG = status
	return theme, nil
}

// FrameDuration returns the time budget of one tick.
func (c *Config) FrameDuration() time.Duration {
	if c.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.FPS)
}

func parseColor(path, s string) (core.Color, error) {
	color, err := core.ParseColor(s)
	if err != nil {
		return core.Color{}, &ValidationError{
			Path:    path,
			Message: "expected a hex color such as #141416",
			Value:   s,
			Code:    ErrCodePatternMismatch,
		}
	}
	return color, nil
}
