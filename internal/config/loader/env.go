// Package loader reads configuration sources into setting paths.
package loader

import (
	"os"
	"strings"
)

// DefaultPrefix is the environment variable prefix for ri settings.
const DefaultPrefix = "RI_"

// LookupFunc retrieves an environment variable. It has the signature of
// os.LookupEnv so tests can substitute a map.
type LookupFunc func(key string) (string, bool)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "RI_")
	mapping map[string]string // Env var suffix -> config path
	lookup  LookupFunc
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "RI_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(),
		lookup:  os.LookupEnv,
	}
}

// NewEnvLoaderWithLookup creates a loader reading from lookup instead of
// the process environment.
func NewEnvLoaderWithLookup(prefix string, lookup LookupFunc) *EnvLoader {
	l := NewEnvLoader(prefix)
	l.lookup = lookup
	return l
}

// defaultEnvMapping returns the default environment variable mappings,
// keyed without the prefix.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"LOG_FILE":   "log.file",
		"LOG_LEVEL":  "log.level",
		"FPS":        "render.fps",
		"DEFAULT_BG": "theme.defaultBG",
		"STATUS_BG":  "theme.statusBarBG",
	}
}

// Load reads the mapped environment variables and returns their raw
// values keyed by config path.
// Note: Empty string values are treated as unset.
func (l *EnvLoader) Load() map[string]string {
	config := make(map[string]string)

	for name, path := range l.mapping {
		val, ok := l.lookup(l.prefix + name)
		if !ok || val == "" {
			continue
		}
		config[path] = val
	}

	return config
}

// AddMapping adds a custom environment variable mapping.
// envVar may be given with or without the prefix.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[strings.TrimPrefix(envVar, l.prefix)] = configPath
}

// RemoveMapping removes an environment variable mapping.
func (l *EnvLoader) RemoveMapping(envVar string) {
	delete(l.mapping, strings.TrimPrefix(envVar, l.prefix))
}

// EnvName returns the full environment variable name for a config path,
// or "" if the path is not mapped.
func (l *EnvLoader) EnvName(configPath string) string {
	for name, path := range l.mapping {
		if path == configPath {
			return l.prefix + name
		}
	}
	return ""
}
