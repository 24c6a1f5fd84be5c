package options

import (
	"slices"

	"github.com/cruciblehq/xcbuild/internal/destination"
	"github.com/cruciblehq/xcbuild/internal/optional"
	"github.com/cruciblehq/xcbuild/internal/signing"
)

// Command verbs.
const (
	VerbClean = "clean"
	VerbBuild = "build"
)

// An argument list split into its ordered segments.
type Invocation struct {
	Global       []string // Options preceding the verbs.
	Verbs        []string // Command verbs.
	BuildOptions []string // Flags following the verbs.
	Settings     []string // Trailing KEY=VALUE build settings.
}

// Flattens the segments into a single argument list.
//
// The order is global options, verbs, build options, settings.
func (inv Invocation) Args() []string {
	return slices.Concat(inv.Global, inv.Verbs, inv.BuildOptions, inv.Settings)
}

// Composes the argument list for a configuration.
func Build(cfg Configuration) []string {
	return Compose(cfg).Args()
}

// Composes the segmented invocation for a configuration.
func Compose(cfg Configuration) Invocation {
	return Invocation{
		Global:       globalOptions(cfg),
		Verbs:        verbs(cfg.Clean.Or(false)),
		BuildOptions: buildOptions(cfg),
		Settings:     signing.Resolve(cfg.Signing),
	}
}

// Returns the global options for the present fields, in fixed order.
func globalOptions(cfg Configuration) []string {
	var opts []string
	opts = appendFlag(opts, "-workspace", cfg.Workspace)
	opts = appendFlag(opts, "-project", cfg.Project)
	opts = appendFlag(opts, "-scheme", cfg.Scheme)
	opts = appendFlag(opts, "-configuration", cfg.Configuration)
	if d, ok := cfg.Destination.Get(); ok {
		opts = append(opts, "-destination", destination.Encode(d))
	}
	opts = appendFlag(opts, "-sdk", cfg.SDK)
	opts = appendFlag(opts, "-arch", cfg.Arch)
	return opts
}

// Returns the build options that follow the verbs.
func buildOptions(cfg Configuration) []string {
	return appendFlag(nil, "-resultBundlePath", cfg.ResultBundlePath)
}

// Returns the command verbs, prefixed with clean when requested.
func verbs(clean bool) []string {
	if clean {
		return []string{VerbClean, VerbBuild}
	}
	return []string{VerbBuild}
}

// Appends flag and its value if the value is present.
func appendFlag(args []string, flag string, v optional.Value[string]) []string {
	if s, ok := v.Get(); ok {
		return append(args, flag, s)
	}
	return args
}
