package packaging

import (
	"context"
	"log/slog"
	"os"

	"github.com/pspkit/cargo-psp/internal/artifact"
	"github.com/pspkit/cargo-psp/internal/runtime"
)

// Packaging tool executables.
type Tools struct {
	Prxgen  string
	Mksfo   string
	PackPbp string
}

// Tools as installed by the PSP SDK, looked up in PATH.
func DefaultTools() Tools {
	return Tools{
		Prxgen:  "prxgen",
		Mksfo:   "mksfo",
		PackPbp: "pack-pbp",
	}
}

// Runs a command to completion.
type Runner interface {
	Run(ctx context.Context, cmd runtime.Command) error
}

// Packages artifacts one at a time.
type Packager struct {
	config *Config
	tools  Tools
	runner Runner
}

// Creates a packager. Tools run through runner with the parent's stdio.
func New(cfg *Config, tools Tools, runner Runner) *Packager {
	return &Packager{config: cfg, tools: tools, runner: runner}
}

// Packages each artifact in order.
//
// Stops at the first tool failure and returns a [*ToolFailureError]; later
// artifacts are not attempted.
func (p *Packager) Package(ctx context.Context, artifacts []artifact.Artifact) error {
	for _, a := range artifacts {
		if err := p.packageOne(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

// Runs prxgen, mksfo and pack-pbp for one artifact, each after the previous
// one has exited.
func (p *Packager) packageOne(ctx context.Context, a artifact.Artifact) error {
	slog.Info("packaging", "target", a.Target)

	steps := []runtime.Command{
		{Name: p.tools.Prxgen, Args: PrxgenArgs(a)},
		{Name: p.tools.Mksfo, Args: MksfoArgs(a, p.config)},
		{Name: p.tools.PackPbp, Args: PbpArgs(a, p.config)},
	}

	for _, cmd := range steps {
		slog.Debug("running packaging tool", "tool", cmd.Name, "target", a.Target)

		if err := p.runner.Run(ctx, cmd.WithStdio(os.Stdout)); err != nil {
			return &ToolFailureError{Tool: cmd.Name, Target: a.Target, Err: err}
		}
	}

	slog.Info("packaged", "target", a.Target, "bundle", a.PBP)
	return nil
}
