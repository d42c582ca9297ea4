package runtime

import (
	"errors"
	"fmt"
)

var (
	ErrRuntime = errors.New("process runtime error")
	ErrSpawn   = errors.New("failed to start process")
	ErrExit    = errors.New("process exited unsuccessfully")
)

// Returned when an executable cannot be started.
type SpawnError struct {
	Tool string // Executable name as given in the [Command].
	Err  error  // Underlying OS or lookup error.
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrSpawn, e.Tool, e.Err)
}

// Matches both [ErrSpawn] and the underlying cause.
func (e *SpawnError) Unwrap() []error {
	return []error{ErrSpawn, e.Err}
}

// Returned when a process runs but does not exit with code 0.
type ExitError struct {
	Tool string // Executable name as given in the [Command].
	Code int    // Exit code, or -1 when the process was terminated by a signal.
}

func (e *ExitError) Error() string {
	if e.Signaled() {
		return fmt.Sprintf("%s terminated by signal", e.Tool)
	}
	return fmt.Sprintf("%s exited with code %d", e.Tool, e.Code)
}

func (e *ExitError) Unwrap() error {
	return ErrExit
}

// Whether the process was terminated by a signal rather than exiting.
func (e *ExitError) Signaled() bool {
	return e.Code < 0
}
