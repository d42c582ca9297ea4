package cli

import (
	"context"
	"errors"
	"os"

	"github.com/pspkit/cargo-psp/internal/build"
	"github.com/pspkit/cargo-psp/internal/runtime"
)

// Represents the hidden '__builder' command.
//
// Runs the sysroot-aware builder with the given build arguments. Its exit
// code is mirrored, so the orchestrator sees the builder's own failure.
type BuilderCmd struct {
	Method string   `required:"" enum:"xargo,build-std" help:"Builder to run."`
	Std    bool     `help:"Include std in the sysroot."`
	Args   []string `arg:"" optional:"" passthrough:"" help:"Build arguments."`
}

// Executes the builder command.
func (c *BuilderCmd) Run(ctx context.Context) error {
	method, err := build.ParseMethod(c.Method)
	if err != nil {
		return err
	}

	cmd := build.BuilderCommand(method, c.Std, trimSeparator(c.Args)).WithStdio(os.Stdout)

	err = runtime.Host{}.Run(ctx, cmd)

	var exitErr *runtime.ExitError
	if errors.As(err, &exitErr) {
		return &build.FailureError{Code: exitErr.Code}
	}
	return err
}

// Drops a leading "--" that kong leaves in passthrough arguments.
func trimSeparator(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}
