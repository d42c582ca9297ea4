package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/pspkit/cargo-psp/internal"
	"github.com/pspkit/cargo-psp/internal/build"
	"github.com/pspkit/cargo-psp/internal/cli"
)

// The entry point for cargo-psp.
//
// Initializes logging and executes the root command. A builder failure exits
// with the builder's own code; any other error exits with 1.
func main() {
	slog.SetDefault(slog.New(cli.Logger()))

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("cargo-psp is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// Reports err and returns the process exit code for it.
//
// Builder failures have already printed their diagnostics, so they are only
// logged at debug level.
func exitCode(err error) int {
	var failure *build.FailureError
	if errors.As(err, &failure) {
		slog.Debug(err.Error())
		return failure.ExitCode()
	}
	slog.Error(err.Error())
	return 1
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
