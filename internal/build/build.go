package build

import (
	"context"
	"io"
	"log/slog"

	"github.com/pspkit/cargo-psp/internal/runtime"
)

// Runs the build stage for a project rooted at dir.
//
// Writes the manifest, spawns builder with the build arguments appended,
// relays its output to stdout and waits for it. The manifest is gone when Run
// returns, except when Run itself reports that removing it failed.
func Run(ctx context.Context, opts Options, dir string, builder runtime.Command, stdout io.Writer) error {
	slog.Info("building",
		"target", TargetTriple,
		"profile", opts.Profile(),
		"method", opts.Method,
		"std", opts.IncludeStd,
	)

	iv := NewInvoker(opts, dir, builder, stdout)

	if err := iv.Prepare(); err != nil {
		return err
	}
	if err := iv.Start(ctx); err != nil {
		return err
	}
	return iv.Wait()
}
