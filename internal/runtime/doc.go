// Package runtime runs host processes for the build pipeline.
//
// A [Command] describes an executable, its arguments, environment and stdio.
// [Start] spawns it and returns a [Process]; [Process.Wait] blocks until the
// process exits. Failures are typed so callers can tell the two external
// failure modes apart: a [SpawnError] means the executable could not be
// started at all (missing, not executable), an [ExitError] means it ran and
// exited non-zero or was killed by a signal.
//
// [Host] bundles Start and Wait for callers that only need a blocking run
// or captured output. [OnFirstRead] wraps a reader with a one-shot hook,
// used to act on a child's output stream the moment it first produces
// anything.
//
// Example usage:
//
//	err := runtime.Host{}.Run(ctx, runtime.Command{
//	    Name:   "prxgen",
//	    Args:   []string{"target/game", "target/game.prx"},
//	    Stdout: os.Stdout,
//	    Stderr: os.Stderr,
//	})
//	var exitErr *runtime.ExitError
//	if errors.As(err, &exitErr) {
//	    return fmt.Errorf("prxgen failed with code %d", exitErr.Code)
//	}
package runtime
