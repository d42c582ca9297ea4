package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/pspkit/cargo-psp/internal/artifact"
	"github.com/pspkit/cargo-psp/internal/build"
	"github.com/pspkit/cargo-psp/internal/packaging"
	"github.com/pspkit/cargo-psp/internal/runtime"
)

// Inputs of a run.
type Config struct {
	Options   build.Options     // Build options.
	Packaging *packaging.Config // Packaging metadata. Nil packages with defaults.
	Dir       string            // Project directory the manifest is written to.
	Builder   runtime.Command   // Builder command; build arguments are appended.
	Metadata  artifact.Source   // Workspace metadata. Nil runs cargo metadata in Dir.
	Tools     packaging.Tools   // Packaging tools. Zero uses [packaging.DefaultTools].
	Runner    packaging.Runner  // Runs packaging tools. Nil uses [runtime.Host].
	Stdout    io.Writer         // Receives the builder's output. Nil uses os.Stdout.
}

// Outcome of a successful run.
type Result struct {
	Artifacts []artifact.Artifact // Packaged binaries, in workspace order.
}

// A single run. Not reusable; create one per invocation.
type Pipeline struct {
	cfg   Config
	state atomic.Int32
}

// Creates a pipeline, filling in defaults for unset fields.
func New(cfg Config) *Pipeline {
	if cfg.Packaging == nil {
		cfg.Packaging = &packaging.Config{}
	}
	if cfg.Metadata == nil {
		cfg.Metadata = artifact.CargoSource{Cargo: build.Cargo(), Dir: cfg.Dir}
	}
	if cfg.Tools == (packaging.Tools{}) {
		cfg.Tools = packaging.DefaultTools()
	}
	if cfg.Runner == nil {
		cfg.Runner = runtime.Host{}
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	return &Pipeline{cfg: cfg}
}

// Current state. Safe to call while Run is in progress.
func (p *Pipeline) State() State {
	return State(p.state.Load())
}

// Builds and packages the workspace.
//
// Build failures are returned as produced by the [build] package, including
// [*build.FailureError] when the builder exits unsuccessfully. Packaging
// failures wrap [artifact.ErrMetadataUnavailable] or are a
// [*packaging.ToolFailureError].
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	if err := p.build(ctx); err != nil {
		p.transition(BuildFailed)
		return nil, err
	}
	p.transition(BuildSucceeded)

	p.transition(Packaging)
	artifacts, err := p.pack(ctx)
	if err != nil {
		p.transition(PackagingFailed)
		return nil, err
	}
	p.transition(Done)

	return &Result{Artifacts: artifacts}, nil
}

func (p *Pipeline) build(ctx context.Context) error {
	opts := p.cfg.Options

	slog.Info("building",
		"target", build.TargetTriple,
		"profile", opts.Profile(),
		"method", opts.Method,
		"std", opts.IncludeStd,
	)

	iv := build.NewInvoker(opts, p.cfg.Dir, p.cfg.Builder, p.cfg.Stdout)

	if err := iv.Prepare(); err != nil {
		return err
	}
	p.transition(ManifestWritten)

	if err := iv.Start(ctx); err != nil {
		return err
	}
	p.transition(Building)

	return iv.Wait()
}

func (p *Pipeline) pack(ctx context.Context) ([]artifact.Artifact, error) {
	artifacts, err := artifact.Locate(ctx, p.cfg.Metadata, build.TargetTriple, p.cfg.Options.Profile())
	if err != nil {
		return nil, err
	}
	if len(artifacts) == 0 {
		slog.Warn("no binary targets to package")
	}

	pk := packaging.New(p.cfg.Packaging, p.cfg.Tools, p.cfg.Runner)
	if err := pk.Package(ctx, artifacts); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func (p *Pipeline) transition(to State) {
	from := State(p.state.Swap(int32(to)))
	slog.Debug("pipeline state", "from", from, "to", to)
}
