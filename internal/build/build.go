package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cruciblehq/xcbuild/internal/artifact"
	"github.com/cruciblehq/xcbuild/internal/capture"
	"github.com/cruciblehq/xcbuild/internal/inputs"
	"github.com/cruciblehq/xcbuild/internal/metrics"
	"github.com/cruciblehq/xcbuild/internal/options"
	"github.com/cruciblehq/xcbuild/internal/runner"
)

// Controls a build.
type Options struct {
	Configuration options.Configuration // Resolved build configuration.
	Executable    string                // Build tool. Defaults to xcodebuild.
	Env           map[string]string     // Extra environment overrides for the tool.
	Store         artifact.Store        // Destination for captured bundles. Nil opens the default store.
	MetricsFile   string                // Prometheus textfile path. Empty disables metrics.
	Stdout        io.Writer             // Tool stdout. Nil uses os.Stdout.
	Stderr        io.Writer             // Tool stderr. Nil uses os.Stderr.
}

// Returned after a successful build.
type Result struct {
	Args        []string        // Arguments passed to the tool.
	ExitCode    int             // Exit code reported by the tool.
	TestsFailed bool            // Whether the tool reported failing tests.
	Duration    time.Duration   // Wall-clock duration of the invocation.
	Capture     *capture.Result // Captured bundle, nil if no bundle path was configured.
}

// Runs the build described by opts through the launcher.
func Run(ctx context.Context, l runner.Launcher, opts Options) (*Result, error) {
	cfg := opts.Configuration
	executable := opts.Executable
	if executable == "" {
		executable = inputs.DefaultExecutable
	}

	args := options.Build(cfg)
	scheme := cfg.Scheme.Or("")

	slog.Info("building",
		"scheme", scheme,
		"configuration", cfg.Configuration.Or(""),
		"destination", cfg.Destination.String(),
		"clean", cfg.Clean.Or(false),
	)

	var recorder *metrics.Recorder
	if opts.MetricsFile != "" {
		recorder = metrics.NewRecorder()
		defer writeMetrics(recorder, opts.MetricsFile)
	}

	start := time.Now()
	res, err := runner.Run(ctx, l, runner.Command{
		Name:   executable,
		Args:   args,
		Env:    opts.Env,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	})
	duration := time.Since(start)

	if recorder != nil {
		recorder.ObserveBuild(scheme, duration, exitCode(res, err), err == nil, time.Now())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}

	result := &Result{
		Args:        args,
		ExitCode:    res.ExitCode,
		TestsFailed: res.TestsFailed,
		Duration:    duration,
	}

	bundlePath, ok := cfg.ResultBundlePath.Get()
	if !ok {
		return result, nil
	}

	store := opts.Store
	if store == nil {
		if store, err = artifact.Open(""); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCapture, err)
		}
	}

	captured, err := capture.Bundle(ctx, store, capture.Request{
		BundlePath: bundlePath,
		Name:       cfg.ResultBundleName.Or(""),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCapture, err)
	}
	result.Capture = captured

	if recorder != nil && captured.Artifact != nil {
		recorder.ObserveArchive(scheme, captured.Artifact.Size)
	}

	return result, nil
}

// Returns the exit code of a finished invocation, or -1 if the tool never
// reported one.
func exitCode(res *runner.Result, err error) int {
	if res != nil {
		return res.ExitCode
	}
	var exitErr *runner.ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}

// Writes the metrics textfile, logging failures.
func writeMetrics(r *metrics.Recorder, path string) {
	if err := r.WriteFile(path); err != nil {
		slog.Warn("failed to write metrics", "path", path, "error", err)
		return
	}
	slog.Debug("metrics written", "path", path)
}
