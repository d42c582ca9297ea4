package packaging

import (
	"errors"
	"fmt"
)

var (
	ErrConfigRead    = errors.New("failed to read Psp.toml")
	ErrConfigParse   = errors.New("failed to parse Psp.toml; please ensure that it is formatted correctly")
	ErrPackagingTool = errors.New("packaging failed")
)

// Returned when a packaging tool cannot be spawned or exits unsuccessfully.
type ToolFailureError struct {
	Tool   string // Tool executable.
	Target string // Binary target being packaged.
	Err    error  // A [*runtime.SpawnError], [*runtime.ExitError] or other cause.
}

func (e *ToolFailureError) Error() string {
	return fmt.Sprintf("%s: %s for target %q: %v", ErrPackagingTool, e.Tool, e.Target, e.Err)
}

// Matches both [ErrPackagingTool] and the underlying cause.
func (e *ToolFailureError) Unwrap() []error {
	return []error{ErrPackagingTool, e.Err}
}
