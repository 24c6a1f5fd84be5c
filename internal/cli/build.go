package cli

import (
	"context"
	"log/slog"

	"github.com/cruciblehq/xcbuild/internal/artifact"
	"github.com/cruciblehq/xcbuild/internal/build"
	"github.com/cruciblehq/xcbuild/internal/capture"
	"github.com/cruciblehq/xcbuild/internal/inputs"
	"github.com/cruciblehq/xcbuild/internal/options"
	"github.com/cruciblehq/xcbuild/internal/runner"
	"github.com/cruciblehq/xcbuild/internal/runtime"
	"github.com/cruciblehq/xcbuild/internal/workflow"
)

// Step output holding the absolute result bundle path.
const outputResultBundlePath = "result-bundle-path"

// Represents the 'xcbuild build' command.
type BuildCmd struct {
	InputFlags `embed:""`

	Container         string `help:"Run the tool inside this running containerd container." placeholder:"ID"`
	ContainerdAddress string `help:"Containerd socket address." default:"${containerd_address}" placeholder:"PATH"`
	Namespace         string `help:"Containerd namespace." default:"${containerd_namespace}"`
	Workdir           string `help:"Working directory inside the container." placeholder:"PATH"`
}

// Resolves inputs, runs the build, and reports the result bundle path.
func (c *BuildCmd) Run(ctx context.Context) error {
	src, err := c.source(RootCmd.Config)
	if err != nil {
		return err
	}

	cfg, err := inputs.ResolveConfiguration(src)
	if err != nil {
		return err
	}
	tooling := inputs.ResolveTooling(src)

	store, err := openStore(cfg, tooling)
	if err != nil {
		return err
	}

	launcher, closer, err := c.launcher()
	if err != nil {
		return err
	}
	defer closer()

	res, err := build.Run(ctx, launcher, build.Options{
		Configuration: cfg,
		Executable:    tooling.Executable,
		Store:         store,
		MetricsFile:   tooling.MetricsFile.Or(""),
	})
	if err != nil {
		return err
	}

	slog.Info("build finished",
		"exit_code", res.ExitCode,
		"tests_failed", res.TestsFailed,
		"duration", res.Duration,
	)

	return report(workflow.FromEnv(), res.Capture)
}

// Opens the configured artifact store, or returns nil when the build
// captures no result bundle.
func openStore(cfg options.Configuration, tooling inputs.Tooling) (artifact.Store, error) {
	if !cfg.ResultBundlePath.IsSet() {
		return nil, nil
	}
	return artifact.Open(tooling.ArtifactStore.Or(""))
}

// Reports a captured result bundle to the workflow.
//
// An archive failure is annotated as a warning; the bundle path output is
// set regardless.
func report(r *workflow.Reporter, captured *capture.Result) error {
	if captured == nil {
		return nil
	}
	if captured.ArchiveErr != nil {
		r.Warning("Result bundle was not uploaded: " + captured.ArchiveErr.Error())
	}
	return r.SetOutput(outputResultBundlePath, captured.BundlePath)
}

// Returns the launcher selected by the flags and a function releasing it.
func (c *BuildCmd) launcher() (runner.Launcher, func(), error) {
	if c.Container == "" {
		return runner.HostLauncher{}, func() {}, nil
	}

	rt, err := runtime.New(c.ContainerdAddress, c.Namespace)
	if err != nil {
		return nil, nil, err
	}

	slog.Debug("using container launcher",
		"container", c.Container,
		"address", c.ContainerdAddress,
		"namespace", c.Namespace,
	)

	closer := func() {
		if err := rt.Close(); err != nil {
			slog.Warn("failed to close containerd client", "error", err)
		}
	}
	return rt.Container(c.Container, c.Workdir), closer, nil
}
