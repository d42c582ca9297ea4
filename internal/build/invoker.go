package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/pspkit/cargo-psp/internal/paths"
	"github.com/pspkit/cargo-psp/internal/runtime"
)

const (

	// Flags variable augmented for every build.
	rustFlagsVar = "RUSTFLAGS"

	// Points xargo at a local rust source checkout.
	rustSrcVar = "XARGO_RUST_SRC"

	// Appended to RUSTFLAGS. Dead code is kept so the module import/export
	// stubs survive linking; prxgen relies on them.
	extraRustFlags = "-C link-dead-code -C opt-level=3"
)

// Runs one build: writes the manifest, spawns the builder, relays its output.
//
// Call [Invoker.Prepare], [Invoker.Start] and [Invoker.Wait] in that order,
// once each. [Run] does all three.
type Invoker struct {
	opts     Options
	builder  runtime.Command
	manifest string
	stdout   io.Writer
	proc     *runtime.Process
	relayErr chan error
}

// Creates an invoker for a project rooted at dir.
//
// Build arguments are appended to the builder's own arguments. Its
// environment (or the parent's, when nil) is augmented per [BuildEnv]. The
// builder's output is relayed to stdout.
func NewInvoker(opts Options, dir string, builder runtime.Command, stdout io.Writer) *Invoker {
	return &Invoker{
		opts:     opts,
		builder:  builder,
		manifest: paths.Manifest(dir),
		stdout:   stdout,
	}
}

// Path of the manifest this invoker writes and removes.
func (iv *Invoker) ManifestPath() string {
	return iv.manifest
}

// Writes the manifest, refusing to replace an existing one.
//
// An existing manifest fails with [ErrManifestConflict] and is left alone.
func (iv *Invoker) Prepare() error {
	f, err := os.OpenFile(iv.manifest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, paths.DefaultFileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrManifestConflict, iv.manifest)
		}
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	m := GenerateManifest(iv.opts)

	_, err = f.Write(m)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return iv.abandon(fmt.Errorf("%w: %w", ErrFileSystemOperation, err))
	}

	slog.Debug("manifest written", "path", iv.manifest, "digest", m.Digest())
	return nil
}

// Spawns the builder and starts relaying its output.
//
// If the builder cannot be spawned the manifest is removed here, since no
// relay will run to remove it, and the [*runtime.SpawnError] is returned.
func (iv *Invoker) Start(ctx context.Context) error {
	pr, pw, err := os.Pipe()
	if err != nil {
		return iv.abandon(fmt.Errorf("%w: %w", ErrRelay, err))
	}

	cmd := iv.builder.WithArgs(BuildArgs(iv.opts)...).WithStdio(pw)
	cmd.Env = BuildEnv(inheritEnv(iv.builder.Env), iv.opts)

	proc, err := runtime.Start(ctx, cmd)

	// The child holds its own copy of the write end. Closing ours lets the
	// relay see EOF once the child exits.
	pw.Close()

	if err != nil {
		pr.Close()
		return iv.abandon(err)
	}

	iv.proc = proc
	iv.relayErr = make(chan error, 1)

	go func() {
		defer pr.Close()
		iv.relayErr <- newRelay(pr, iv.stdout, iv.removeManifest, iv.kill).run()
	}()

	return nil
}

// Waits for the builder to exit, then for the relay to drain its output.
//
// A relay failure takes precedence over the exit status, since it means the
// manifest state is unknown. A non-zero or signal exit returns a
// [*FailureError].
func (iv *Invoker) Wait() error {
	waitErr := iv.proc.Wait()

	if err := <-iv.relayErr; err != nil {
		return err
	}

	var exitErr *runtime.ExitError
	if errors.As(waitErr, &exitErr) {
		return &FailureError{Code: exitErr.Code}
	}
	return waitErr
}

// Removes the manifest. Runs once, from the relay.
func (iv *Invoker) removeManifest() error {
	if err := os.Remove(iv.manifest); err != nil {
		return fmt.Errorf("%w: %w", ErrManifestRemoval, err)
	}
	slog.Debug("manifest removed", "path", iv.manifest)
	return nil
}

// Kills the builder after a relay failure.
func (iv *Invoker) kill() {
	if err := iv.proc.Kill(); err != nil {
		slog.Warn("failed to kill builder", "pid", iv.proc.Pid(), "error", err)
	}
}

// Removes the manifest on a path where the relay never started, joining any
// removal failure onto cause.
func (iv *Invoker) abandon(cause error) error {
	if err := os.Remove(iv.manifest); err != nil {
		return errors.Join(cause, fmt.Errorf("%w: %w", ErrManifestRemoval, err))
	}
	slog.Debug("manifest removed", "path", iv.manifest)
	return cause
}

// Returns env augmented for a build.
//
// RUSTFLAGS keeps its current value, followed by the fixed directives.
// XARGO_RUST_SRC is set only when a local source path was given.
func BuildEnv(env []string, o Options) []string {
	flags, _ := runtime.LookupEnv(env, rustFlagsVar)
	overrides := []string{
		rustFlagsVar + "=" + strings.TrimSpace(flags+" "+extraRustFlags),
	}
	if o.LocalRustSrc != "" {
		overrides = append(overrides, rustSrcVar+"="+o.LocalRustSrc)
	}
	return runtime.MergeEnv(env, overrides)
}

func inheritEnv(env []string) []string {
	if env == nil {
		return os.Environ()
	}
	return env
}
