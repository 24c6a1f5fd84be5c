package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/cruciblehq/xcbuild/internal"
)

// Represents the 'xcbuild version' command.
type VersionCmd struct{}

// Prints the version string.
func (c *VersionCmd) Run(ctx context.Context, out io.Writer) error {
	_, err := fmt.Fprintf(out, "%s %s\n", internal.Name, internal.VersionString())
	return err
}
