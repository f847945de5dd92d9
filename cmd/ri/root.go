package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Larsouille25/ri/internal/app"
	"github.com/Larsouille25/ri/internal/config"
	"github.com/Larsouille25/ri/internal/config/loader"
	"github.com/Larsouille25/ri/internal/editor"
	"github.com/Larsouille25/ri/internal/renderer/backend"
)

// launcher starts the editor with a validated configuration.
type launcher func(ctx context.Context, cfg *config.Config) error

// flagPaths maps command line flags to configuration paths.
var flagPaths = []struct {
	flag string
	path string
}{
	{"log-file", config.PathLogFile},
	{"log-level", config.PathLogLevel},
	{"fps", config.PathFPS},
	{"status-bg", config.PathStatusBarBG},
	{"default-bg", config.PathDefaultBG},
}

func newRootCmd(lookup loader.LookupFunc, launch launcher) *cobra.Command {
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "ri",
		Short: "A modal terminal text editor",
		Long: `ri is a modal text editor in the vi tradition.

Press ':' to open the command line, Esc to leave it, and Ctrl+C to quit.
Logs are written to a file because the terminal belongs to the editor.`,
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, lookup)
			if err != nil {
				return err
			}
			return launch(cmd.Context(), cfg)
		},
	}
	cmd.SetVersionTemplate(versionTemplate())

	f := cmd.Flags()
	f.String("log-file", defaults.LogFile, "Log file path (env RI_LOG_FILE)")
	f.String("log-level", defaults.LogLevel, "Log level: debug, info, warn, error (env RI_LOG_LEVEL)")
	f.Int("fps", defaults.FPS, "Target frames per second (env RI_FPS)")
	f.String("status-bg", defaults.StatusBarBG, "Status bar background color (env RI_STATUS_BG)")
	f.String("default-bg", defaults.DefaultBG, "Screen background color, or \"default\" (env RI_DEFAULT_BG)")

	return cmd
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("ri %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("ri %s\n", version)
}

// loadConfig layers defaults, environment and explicitly set flags, then
// validates the result.
func loadConfig(cmd *cobra.Command, lookup loader.LookupFunc) (*config.Config, error) {
	cfg := config.Default()

	if err := cfg.LoadEnv(loader.NewEnvLoaderWithLookup(loader.DefaultPrefix, lookup)); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	for _, fp := range flagPaths {
		flag := cmd.Flags().Lookup(fp.flag)
		if flag == nil || !flag.Changed {
			continue
		}
		if err := cfg.Set(fp.path, flag.Value.String()); err != nil {
			return nil, fmt.Errorf("--%s: %w", fp.flag, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// launchEditor opens the log, takes over the terminal and runs the loop.
func launchEditor(ctx context.Context, cfg *config.Config) error {
	logger, err := app.OpenLogFile(cfg.LogFile, app.ParseLogLevel(cfg.LogLevel))
	if err != nil {
		return err
	}
	defer logger.Close()

	logger = logger.WithField("session", app.NewSessionID())
	logger.Info("ri %s starting", version)

	theme, err := cfg.Theme()
	if err != nil {
		return err
	}

	term, err := backend.NewTerminal()
	if err != nil {
		return &app.TerminalError{Op: "open", Err: err}
	}

	application, err := app.New(app.Options{
		Backend:       term,
		Editor:        editor.New(editor.WithTheme(theme)),
		Logger:        logger,
		FrameDuration: cfg.FrameDuration(),
	})
	if err != nil {
		return err
	}

	err = application.Run(ctx)
	logger.Info("ri exiting (err=%v)", err)
	return err
}
