package cli

import (
	"github.com/cruciblehq/xcbuild/internal/inputs"
	"github.com/cruciblehq/xcbuild/internal/paths"
)

// Input flags shared by commands that resolve a build configuration.
type InputFlags struct {
	Set map[string]string `short:"D" help:"Set an input, overriding the environment and config file." placeholder:"NAME=VALUE"`
}

// Returns the layered input source.
//
// Flags take precedence over INPUT_* environment variables, which take
// precedence over the config file. An explicit config path must exist; the
// default one may be absent.
func (f *InputFlags) source(configPath string) (inputs.Source, error) {
	optional := configPath == ""
	if optional {
		configPath = paths.ConfigFile()
	}

	file, err := inputs.LoadFile(configPath, optional)
	if err != nil {
		return nil, err
	}

	return inputs.Chain{inputs.Map(f.Set), inputs.OSEnv(), file}, nil
}
