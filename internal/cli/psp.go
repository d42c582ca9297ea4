package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pspkit/cargo-psp/internal/build"
	"github.com/pspkit/cargo-psp/internal/packaging"
	"github.com/pspkit/cargo-psp/internal/pipeline"
)

// Represents the 'cargo psp' command.
type PspCmd struct {
	NoStd       bool     `short:"n" help:"Do not build the standard library during the bootstrapping process."`
	Release     bool     `help:"Build in release mode."`
	BuildMethod string   `short:"b" enum:"xargo,build-std" default:"xargo" help:"Which cargo wrapper to use for bootstrapping core and std (${enum})."`
	LibcCrate   string   `name:"libc-crate" placeholder:"PATH" help:"Crate root of a local libc checkout. Not its src/ directory."`
	RustSrc     string   `name:"rust-src" placeholder:"PATH" help:"src/ directory of a local Rust checkout."`
	Prxgen      string   `default:"prxgen" env:"CARGO_PSP_PRXGEN" hidden:"" help:"prxgen executable."`
	Mksfo       string   `default:"mksfo" env:"CARGO_PSP_MKSFO" hidden:"" help:"mksfo executable."`
	PackPbp     string   `name:"pack-pbp" default:"pack-pbp" env:"CARGO_PSP_PACK_PBP" hidden:"" help:"pack-pbp executable."`
	CargoArgs   []string `arg:"" optional:"" passthrough:"" help:"Arguments to pass along to the builder."`
}

// Executes the psp command.
//
// Builds the workspace in the current directory for the PSP and packages
// every binary into an EBOOT.PBP.
func (c *PspCmd) Run(ctx context.Context) error {
	opts, err := c.options()
	if err != nil {
		return err
	}

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine the project directory: %w", err)
	}

	// Loaded up front so a malformed Psp.toml fails before a long build.
	cfg, err := packaging.Load(dir)
	if err != nil {
		return err
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate the cargo-psp executable: %w", err)
	}

	p := pipeline.New(pipeline.Config{
		Options:   opts,
		Packaging: cfg,
		Dir:       dir,
		Builder:   build.SelfCommand(exe, opts),
		Tools:     c.tools(),
	})

	res, err := p.Run(ctx)
	if err != nil {
		return err
	}

	for _, a := range res.Artifacts {
		slog.Info("bundle ready", "target", a.Target, "path", a.PBP)
	}
	return nil
}

// Returns the build options selected by the flags.
func (c *PspCmd) options() (build.Options, error) {
	method, err := build.ParseMethod(c.BuildMethod)
	if err != nil {
		return build.Options{}, err
	}
	return build.Options{
		IncludeStd:   !c.NoStd,
		Method:       method,
		LocalLibc:    c.LibcCrate,
		LocalRustSrc: c.RustSrc,
		Release:      c.Release,
		CargoArgs:    trimSeparator(c.CargoArgs),
	}, nil
}

func (c *PspCmd) tools() packaging.Tools {
	return packaging.Tools{
		Prxgen:  c.Prxgen,
		Mksfo:   c.Mksfo,
		PackPbp: c.PackPbp,
	}
}
