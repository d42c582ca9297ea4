package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"slices"
)

// Describes a host process.
//
// Stdio fields left nil are connected to the null device. When a stdio field
// is an [*os.File] the child uses it directly, without a copying goroutine.
type Command struct {
	Name   string    // Executable name (looked up in PATH) or path.
	Args   []string  // Arguments, not including the executable name.
	Env    []string  // Environment in KEY=VALUE form. Nil inherits the parent's.
	Dir    string    // Working directory. Empty uses the parent's.
	Stdin  io.Reader // Standard input.
	Stdout io.Writer // Standard output.
	Stderr io.Writer // Standard error.
}

// Returns a copy of the command with args appended.
//
// The receiver's argument slice is never shared with the result.
func (c Command) WithArgs(args ...string) Command {
	c.Args = append(slices.Clip(c.Args), args...)
	return c
}

// Returns a copy of the command with stdin and stderr connected to the
// parent's, and stdout set to w.
func (c Command) WithStdio(w io.Writer) Command {
	c.Stdin = os.Stdin
	c.Stdout = w
	c.Stderr = os.Stderr
	return c
}

// A started host process.
type Process struct {
	cmd  *exec.Cmd
	name string
}

// Starts the command without waiting for it.
//
// Lookup and exec failures are returned as a [*SpawnError]. Cancelling ctx
// kills the process.
func Start(ctx context.Context, c Command) (*Process, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Env = c.Env
	cmd.Dir = c.Dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Tool: c.Name, Err: err}
	}

	slog.Debug("process started", "tool", c.Name, "pid", cmd.Process.Pid, "args", c.Args)

	return &Process{cmd: cmd, name: c.Name}, nil
}

// Process ID of the child.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// Blocks until the process exits.
//
// Returns nil on exit code 0 and an [*ExitError] for non-zero exits and
// signal terminations. Any other failure wraps [ErrRuntime].
func (p *Process) Wait() error {
	err := p.cmd.Wait()
	if err == nil {
		slog.Debug("process exited", "tool", p.name, "code", 0)
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		slog.Debug("process exited", "tool", p.name, "code", exitErr.ExitCode())
		return &ExitError{Tool: p.name, Code: exitErr.ExitCode()}
	}

	return fmt.Errorf("%w: %s: %w", ErrRuntime, p.name, err)
}

// Kills the process. Killing a process that already exited is not an error.
func (p *Process) Kill() error {
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("%w: %w", ErrRuntime, err)
	}
	return nil
}

// Runs commands on the host, blocking until they exit.
type Host struct{}

// Starts the command and waits for it to exit.
func (Host) Run(ctx context.Context, c Command) error {
	p, err := Start(ctx, c)
	if err != nil {
		return err
	}
	return p.Wait()
}

// Runs the command and returns its standard output.
//
// The command's Stdout field is ignored. Output captured before a failure is
// returned alongside the error.
func (h Host) Output(ctx context.Context, c Command) ([]byte, error) {
	var stdout bytes.Buffer
	c.Stdout = &stdout
	err := h.Run(ctx, c)
	return stdout.Bytes(), err
}
