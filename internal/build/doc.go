// Package build runs the cross-compilation stage of the pipeline.
//
// The stage writes a transient toolchain manifest (Xargo.toml) to the project
// root, spawns the builder, relays the builder's standard output to the
// caller, and removes the manifest the moment the builder first produces
// output. The manifest must not outlive the build: a stray Xargo.toml changes
// how later, unrelated cargo builds of the same project bootstrap core.
//
// The builder is cargo-psp itself, re-invoked in its builder role (see
// [SelfCommand]); that role then runs xargo or cargo with build-std (see
// [BuilderCommand]). Callers may substitute any [runtime.Command] as the
// builder, which is how the tests drive the stage with scripts.
//
// Example usage:
//
//	builder := build.SelfCommand(exe, opts)
//	if err := build.Run(ctx, opts, ".", builder, os.Stdout); err != nil {
//	    var failure *build.FailureError
//	    if errors.As(err, &failure) {
//	        os.Exit(failure.ExitCode())
//	    }
//	    return err
//	}
package build
