package cli

import (
	"context"
	"fmt"

	"github.com/pspkit/cargo-psp/internal"
)

// Represents the 'cargo-psp version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.VersionString())
	return nil
}
