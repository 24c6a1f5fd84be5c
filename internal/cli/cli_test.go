package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cruciblehq/xcbuild/internal"
	"github.com/cruciblehq/xcbuild/internal/artifact"
	"github.com/cruciblehq/xcbuild/internal/capture"
	"github.com/cruciblehq/xcbuild/internal/destination"
	"github.com/cruciblehq/xcbuild/internal/inputs"
	"github.com/cruciblehq/xcbuild/internal/optional"
	"github.com/cruciblehq/xcbuild/internal/options"
	"github.com/cruciblehq/xcbuild/internal/workflow"
	"github.com/google/go-cmp/cmp"
)

// Points RootCmd.Config at a file with the given contents.
func withConfig(t *testing.T, contents string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	old := RootCmd.Config
	RootCmd.Config = path
	t.Cleanup(func() { RootCmd.Config = old })
}

func TestArgsPrecedence(t *testing.T) {
	withConfig(t, "scheme: FromFile\nconfiguration: Debug\n")
	t.Setenv("INPUT_SCHEME", "FromEnv")
	t.Setenv("INPUT_CLEAN", "true")

	cmd := &ArgsCmd{InputFlags: InputFlags{Set: map[string]string{"scheme": "FromFlag"}}}

	var out bytes.Buffer
	if err := cmd.Run(context.Background(), &out); err != nil {
		t.Fatal(err)
	}

	want := []string{"-scheme", "FromFlag", "-configuration", "Debug", "clean", "build"}
	got := strings.Fields(out.String())
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestArgsInvalidInput(t *testing.T) {
	withConfig(t, "workspace: App.xcworkspace\nproject: App.xcodeproj\n")

	cmd := &ArgsCmd{}
	err := cmd.Run(context.Background(), &bytes.Buffer{})
	if !errors.Is(err, inputs.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestArgsMissingExplicitConfig(t *testing.T) {
	old := RootCmd.Config
	RootCmd.Config = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { RootCmd.Config = old })

	cmd := &ArgsCmd{}
	err := cmd.Run(context.Background(), &bytes.Buffer{})
	if !errors.Is(err, inputs.ErrConfigFile) {
		t.Fatalf("err = %v, want ErrConfigFile", err)
	}
}

func TestDestination(t *testing.T) {
	cmd := &DestinationCmd{Raw: "platform=iOS Simulator, name=iPhone 15"}

	var out bytes.Buffer
	if err := cmd.Run(context.Background(), &out); err != nil {
		t.Fatal(err)
	}

	want := "platform\tiOS Simulator\nname\tiPhone 15\nplatform=iOS Simulator,name=iPhone 15\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestDestinationMalformed(t *testing.T) {
	cmd := &DestinationCmd{Raw: "platform"}
	err := cmd.Run(context.Background(), &bytes.Buffer{})
	if !errors.Is(err, destination.ErrMalformedDestination) {
		t.Fatalf("err = %v, want ErrMalformedDestination", err)
	}
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	if err := (&VersionCmd{}).Run(context.Background(), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), internal.Name+" ") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestNewLoggerLevel(t *testing.T) {
	oldQ, oldD := internal.IsQuiet(), internal.IsDebug()
	t.Cleanup(func() { internal.SetQuiet(oldQ); internal.SetDebug(oldD) })

	internal.SetDebug(false)
	internal.SetQuiet(true)

	var buf bytes.Buffer
	logger := NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("info record logged in quiet mode: %q", got)
	}
	if !strings.Contains(got, "xcbuild.key=value") {
		t.Errorf("record not grouped under program name: %q", got)
	}
}

func TestBuildHostLauncher(t *testing.T) {
	cmd := &BuildCmd{}
	l, closer, err := cmd.launcher()
	if err != nil {
		t.Fatal(err)
	}
	defer closer()
	if l == nil {
		t.Fatal("nil launcher")
	}
}

func TestOpenStoreWithoutBundle(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")

	tooling := inputs.Tooling{ArtifactStore: optional.Some("s3://ci")}
	store, err := openStore(options.Configuration{}, tooling)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store != nil {
		t.Fatalf("store = %v, want nil", store)
	}
}

func TestOpenStoreWithBundle(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")

	cfg := options.Configuration{ResultBundlePath: optional.Some("App.xcresult")}
	tooling := inputs.Tooling{ArtifactStore: optional.Some("s3://ci")}
	if _, err := openStore(cfg, tooling); !errors.Is(err, artifact.ErrStore) {
		t.Fatalf("err = %v, want ErrStore", err)
	}
}

func TestReportArchiveFailure(t *testing.T) {
	var out bytes.Buffer
	captured := &capture.Result{
		BundlePath: "/work/App.xcresult",
		ArchiveErr: fmt.Errorf("%w: disk full", capture.ErrArchive),
	}

	if err := report(workflow.New(&out, ""), captured); err != nil {
		t.Fatal(err)
	}

	want := "::warning::Result bundle was not uploaded: archive failed: disk full\n" +
		"::set-output name=result-bundle-path::/work/App.xcresult\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestReportNoCapture(t *testing.T) {
	var out bytes.Buffer
	if err := report(workflow.New(&out, ""), nil); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Fatalf("output = %q, want none", out.String())
	}
}
