package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pspkit/cargo-psp/internal/runtime"
)

// Subset of cargo's build metadata (format version 1) used to find binaries.
type Metadata struct {
	TargetDirectory  string    `json:"target_directory"`
	WorkspaceMembers []string  `json:"workspace_members"`
	Packages         []Package `json:"packages"`
}

type Package struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Targets []Target `json:"targets"`
}

type Target struct {
	Name string   `json:"name"`
	Kind []string `json:"kind"`
}

// Provides build metadata for the workspace.
type Source interface {
	Metadata(ctx context.Context) (*Metadata, error)
}

// Captures a command's standard output.
type OutputRunner interface {
	Output(ctx context.Context, cmd runtime.Command) ([]byte, error)
}

// Reads metadata by running `cargo metadata` in a project directory.
type CargoSource struct {
	Cargo  string       // Cargo executable.
	Dir    string       // Project directory. Empty uses the current one.
	Runner OutputRunner // Runs cargo. Nil uses [runtime.Host].
}

// Runs cargo metadata and decodes its output.
//
// Dependencies are not resolved (--no-deps); only workspace packages are
// needed. Any failure wraps [ErrMetadataUnavailable].
func (s CargoSource) Metadata(ctx context.Context) (*Metadata, error) {
	var runner OutputRunner = runtime.Host{}
	if s.Runner != nil {
		runner = s.Runner
	}

	out, err := runner.Output(ctx, runtime.Command{
		Name:   s.Cargo,
		Args:   []string{"metadata", "--format-version", "1", "--no-deps"},
		Dir:    s.Dir,
		Stderr: os.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMetadataUnavailable, err)
	}

	return DecodeMetadata(out)
}

// Decodes cargo metadata JSON.
func DecodeMetadata(data []byte) (*Metadata, error) {
	var md Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMetadataUnavailable, err)
	}
	if md.TargetDirectory == "" {
		return nil, fmt.Errorf("%w: no target directory", ErrMetadataUnavailable)
	}
	return &md, nil
}
