package build

import (
	"errors"
	"fmt"
)

var (
	ErrManifestConflict    = errors.New("found an existing Xargo.toml; remove it before continuing, as it interferes with cargo-psp")
	ErrManifestRemoval     = errors.New("failed to remove Xargo.toml")
	ErrFileSystemOperation = errors.New("file system operation failed")
	ErrRelay               = errors.New("failed to relay build output")
	ErrBuildFailed         = errors.New("build failed")
	ErrUnknownMethod       = errors.New("unknown build method")
)

// Returned when the builder exits unsuccessfully.
type FailureError struct {
	Code int // Builder exit code, or -1 when it was terminated by a signal.
}

func (e *FailureError) Error() string {
	if e.Code < 0 {
		return fmt.Sprintf("%s: builder terminated by signal", ErrBuildFailed)
	}
	return fmt.Sprintf("%s: builder exited with code %d", ErrBuildFailed, e.Code)
}

func (e *FailureError) Unwrap() error {
	return ErrBuildFailed
}

// Exit code the orchestrator mirrors: the builder's own code when it has one,
// otherwise 1.
func (e *FailureError) ExitCode() int {
	if e.Code <= 0 {
		return 1
	}
	return e.Code
}
