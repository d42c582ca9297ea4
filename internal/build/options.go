package build

import (
	"fmt"
	"os"
)

const (

	// Cross-compilation target for the PSP.
	TargetTriple = "mipsel-sony-psp"

	// Profile directory names, as cargo lays them out.
	ProfileDebug   = "debug"
	ProfileRelease = "release"
)

// Selects how core (and optionally std) is bootstrapped for the target.
type Method int

const (
	ToolchainWrapper Method = iota // xargo, driven by Xargo.toml.
	BuildStd                       // cargo's unstable -Zbuild-std.
)

// Parses a method from its command-line token.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "xargo":
		return ToolchainWrapper, nil
	case "build-std":
		return BuildStd, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Command-line token for the method.
func (m Method) String() string {
	switch m {
	case ToolchainWrapper:
		return "xargo"
	case BuildStd:
		return "build-std"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Controls a build. Treat as immutable once constructed.
type Options struct {
	IncludeStd   bool     // Bootstrap std in addition to core, alloc and panic_unwind.
	Method       Method   // Bootstrap method.
	LocalLibc    string   // Path to a local libc crate root. Empty means crates.io.
	LocalRustSrc string   // Path to a local rust src/ checkout. Empty means rustup's.
	Release      bool     // Build with the release profile.
	CargoArgs    []string // Extra arguments passed through to the builder, in order.
}

// Name of the profile output directory.
func (o Options) Profile() string {
	if o.Release {
		return ProfileRelease
	}
	return ProfileDebug
}

// Returns the builder arguments: the build verb, the target, the passthrough
// arguments in order, then --release when requested.
func BuildArgs(o Options) []string {
	args := make([]string, 0, len(o.CargoArgs)+4)
	args = append(args, "build", "--target", TargetTriple)
	args = append(args, o.CargoArgs...)
	if o.Release {
		args = append(args, "--release")
	}
	return args
}

// Returns the cargo executable to run.
//
// Cargo exports CARGO to the subcommands it runs; outside cargo the one in
// PATH is used.
func Cargo() string {
	if c := os.Getenv("CARGO"); c != "" {
		return c
	}
	return "cargo"
}
