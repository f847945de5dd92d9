// Package main is the entry point for the ri editor.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Larsouille25/ri/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Raw mode delivers Ctrl+C as a key; signals matter before the
	// terminal is entered and for external termination.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.LookupEnv, launchEditor)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errorMessage(err))
		return 1
	}
	return 0
}

// errorMessage renders err for stderr. Panic stack traces stay in the log.
func errorMessage(err error) string {
	var panicErr *app.RecoveredPanicError
	if errors.As(err, &panicErr) {
		return panicErr.Summary()
	}
	return err.Error()
}
