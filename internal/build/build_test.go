package build

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cruciblehq/xcbuild/internal/artifact"
	"github.com/cruciblehq/xcbuild/internal/capture"
	"github.com/cruciblehq/xcbuild/internal/optional"
	"github.com/cruciblehq/xcbuild/internal/options"
	"github.com/cruciblehq/xcbuild/internal/runner"
	"github.com/google/go-cmp/cmp"
)

// Emulates the build tool: records the command, optionally writes a result
// bundle at the -resultBundlePath argument, and exits with a fixed code.
type fakeTool struct {
	code        int
	writeBundle bool
	got         runner.Command
}

func (f *fakeTool) Launch(ctx context.Context, cmd runner.Command) (int, error) {
	f.got = cmd
	if f.writeBundle {
		for i, arg := range cmd.Args {
			if arg == "-resultBundlePath" && i+1 < len(cmd.Args) {
				bundle := cmd.Args[i+1]
				if err := os.MkdirAll(bundle, 0755); err != nil {
					return 0, err
				}
				if err := os.WriteFile(filepath.Join(bundle, "Info.plist"), []byte("<plist/>"), 0644); err != nil {
					return 0, err
				}
			}
		}
	}
	return f.code, nil
}

func TestRun(t *testing.T) {
	tool := &fakeTool{}
	cfg := options.Configuration{
		Project: optional.Some("App.xcodeproj"),
		Scheme:  optional.Some("App"),
		Clean:   optional.Some(true),
	}

	result, err := Run(context.Background(), tool, Options{
		Configuration: cfg,
		Stdout:        io.Discard,
		Stderr:        io.Discard,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"-project", "App.xcodeproj", "-scheme", "App", "clean", "build"}
	if diff := cmp.Diff(want, tool.got.Args); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, result.Args); diff != "" {
		t.Fatalf("result args mismatch (-want +got):\n%s", diff)
	}
	if tool.got.Name != "xcodebuild" {
		t.Fatalf("executable = %q, want xcodebuild", tool.got.Name)
	}
	if tool.got.Env["NSUnbufferedIO"] != "YES" {
		t.Fatal("NSUnbufferedIO not set")
	}
	if result.Capture != nil {
		t.Fatal("capture attempted without a bundle path")
	}
}

func TestRunCapturesBundle(t *testing.T) {
	dir := t.TempDir()
	bundle := filepath.Join(dir, "App.xcresult")
	storeDir := filepath.Join(dir, "store")
	metricsFile := filepath.Join(dir, "xcbuild.prom")

	tool := &fakeTool{code: 65, writeBundle: true}
	result, err := Run(context.Background(), tool, Options{
		Configuration: options.Configuration{
			Scheme:           optional.Some("App"),
			ResultBundlePath: optional.Some(bundle),
			ResultBundleName: optional.Some("App-tests"),
		},
		Executable:  "/usr/bin/xcodebuild",
		Store:       artifact.NewDirStore(storeDir),
		MetricsFile: metricsFile,
		Stdout:      io.Discard,
		Stderr:      io.Discard,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.TestsFailed || result.ExitCode != 65 {
		t.Fatalf("result = %+v, want tests failed with 65", result)
	}
	if result.Capture == nil || result.Capture.Artifact == nil {
		t.Fatalf("capture = %+v, want uploaded artifact", result.Capture)
	}
	if result.Capture.BundlePath != bundle {
		t.Fatalf("BundlePath = %q, want %q", result.Capture.BundlePath, bundle)
	}
	if _, err := os.Stat(filepath.Join(storeDir, "App-tests", "App.xcresult.zip")); err != nil {
		t.Fatalf("stored archive: %v", err)
	}

	data, err := os.ReadFile(metricsFile)
	if err != nil {
		t.Fatalf("metrics file: %v", err)
	}
	for _, want := range []string{
		`xcbuild_build_exit_code{scheme="App"} 65`,
		`xcbuild_build_success{scheme="App"} 1`,
		`xcbuild_result_bundle_archive_bytes{scheme="App"}`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics missing %q:\n%s", want, data)
		}
	}
}

func TestRunUnexpectedExitCode(t *testing.T) {
	dir := t.TempDir()
	metricsFile := filepath.Join(dir, "xcbuild.prom")
	store := artifact.NewDirStore(filepath.Join(dir, "store"))

	tool := &fakeTool{code: 1, writeBundle: true}
	_, err := Run(context.Background(), tool, Options{
		Configuration: options.Configuration{
			Scheme:           optional.Some("App"),
			ResultBundlePath: optional.Some(filepath.Join(dir, "App.xcresult")),
		},
		Store:       store,
		MetricsFile: metricsFile,
		Stdout:      io.Discard,
		Stderr:      io.Discard,
	})
	if !errors.Is(err, runner.ErrUnexpectedExitCode) {
		t.Fatalf("error = %v, want ErrUnexpectedExitCode", err)
	}
	if !errors.Is(err, ErrBuild) {
		t.Fatalf("error = %v, want ErrBuild", err)
	}
	if _, err := os.Stat(store.Root()); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("capture attempted after failed build")
	}

	data, err := os.ReadFile(metricsFile)
	if err != nil {
		t.Fatalf("metrics file: %v", err)
	}
	if !strings.Contains(string(data), `xcbuild_build_success{scheme="App"} 0`) {
		t.Fatalf("metrics do not record failure:\n%s", data)
	}
	if !strings.Contains(string(data), `xcbuild_build_exit_code{scheme="App"} 1`) {
		t.Fatalf("metrics do not record exit code:\n%s", data)
	}
}

func TestRunMissingBundle(t *testing.T) {
	dir := t.TempDir()
	tool := &fakeTool{}
	_, err := Run(context.Background(), tool, Options{
		Configuration: options.Configuration{
			ResultBundlePath: optional.Some(filepath.Join(dir, "App.xcresult")),
		},
		Store:  artifact.NewDirStore(filepath.Join(dir, "store")),
		Stdout: io.Discard,
		Stderr: io.Discard,
	})
	if !errors.Is(err, capture.ErrMissingResultBundle) {
		t.Fatalf("error = %v, want ErrMissingResultBundle", err)
	}
}

func TestExitCode(t *testing.T) {
	if got := exitCode(&runner.Result{ExitCode: 65}, nil); got != 65 {
		t.Errorf("exitCode(result) = %d, want 65", got)
	}
	if got := exitCode(nil, &runner.ExitCodeError{Code: 2}); got != 2 {
		t.Errorf("exitCode(ExitCodeError) = %d, want 2", got)
	}
	if got := exitCode(nil, runner.ErrLaunch); got != -1 {
		t.Errorf("exitCode(launch error) = %d, want -1", got)
	}
}
