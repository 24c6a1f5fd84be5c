package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/cruciblehq/xcbuild/internal/inputs"
	"github.com/cruciblehq/xcbuild/internal/options"
)

// Represents the 'xcbuild args' command.
type ArgsCmd struct {
	InputFlags `embed:""`
}

// Prints the composed argument list, one token per line.
func (c *ArgsCmd) Run(ctx context.Context, out io.Writer) error {
	src, err := c.source(RootCmd.Config)
	if err != nil {
		return err
	}

	cfg, err := inputs.ResolveConfiguration(src)
	if err != nil {
		return err
	}

	for _, arg := range options.Build(cfg) {
		if _, err := fmt.Fprintln(out, arg); err != nil {
			return err
		}
	}
	return nil
}
