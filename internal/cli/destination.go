package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/cruciblehq/xcbuild/internal/destination"
)

// Represents the 'xcbuild destination' command.
type DestinationCmd struct {
	Raw string `arg:"" help:"Destination descriptor, e.g. platform=macOS,arch=arm64."`
}

// Prints each field in order, followed by the re-encoded descriptor.
func (c *DestinationCmd) Run(ctx context.Context, out io.Writer) error {
	d, err := destination.Parse(c.Raw)
	if err != nil {
		return err
	}

	for _, f := range d.Fields() {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", f.Name, f.Value); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(out, destination.Encode(d))
	return err
}
