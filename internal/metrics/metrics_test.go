package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveBuild(t *testing.T) {
	r := NewRecorder()
	r.ObserveBuild("App", 90*time.Second, 65, true, time.Unix(1700000000, 0))

	if got := testutil.ToFloat64(r.duration.WithLabelValues("App")); got != 90 {
		t.Errorf("duration = %v, want 90", got)
	}
	if got := testutil.ToFloat64(r.exitCode.WithLabelValues("App")); got != 65 {
		t.Errorf("exit code = %v, want 65", got)
	}
	if got := testutil.ToFloat64(r.success.WithLabelValues("App")); got != 1 {
		t.Errorf("success = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.finished.WithLabelValues("App")); got != 1700000000 {
		t.Errorf("finished = %v, want 1700000000", got)
	}
}

func TestGatherer(t *testing.T) {
	r := NewRecorder()
	r.ObserveBuild("App", time.Second, 65, true, time.Unix(0, 0))
	r.ObserveArchive("App", 512)

	expected := `
# HELP xcbuild_build_exit_code Exit code reported by the build tool.
# TYPE xcbuild_build_exit_code gauge
xcbuild_build_exit_code{scheme="App"} 65
# HELP xcbuild_result_bundle_archive_bytes Size of the uploaded result bundle archive.
# TYPE xcbuild_result_bundle_archive_bytes gauge
xcbuild_result_bundle_archive_bytes{scheme="App"} 512
`
	err := testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(expected),
		"xcbuild_build_exit_code", "xcbuild_result_bundle_archive_bytes")
	if err != nil {
		t.Fatal(err)
	}
}

func TestObserveFailedBuild(t *testing.T) {
	r := NewRecorder()
	r.ObserveBuild("App", time.Second, 1, false, time.Now())

	if got := testutil.ToFloat64(r.success.WithLabelValues("App")); got != 0 {
		t.Errorf("success = %v, want 0", got)
	}
}

func TestWriteFile(t *testing.T) {
	r := NewRecorder()
	r.ObserveBuild("App", 2*time.Second, 0, true, time.Unix(1, 0))
	r.ObserveArchive("App", 2048)

	path := filepath.Join(t.TempDir(), "xcbuild.prom")
	if err := r.WriteFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	for _, want := range []string{
		`xcbuild_build_duration_seconds{scheme="App"} 2`,
		`xcbuild_build_exit_code{scheme="App"} 0`,
		`xcbuild_build_success{scheme="App"} 1`,
		`xcbuild_result_bundle_archive_bytes{scheme="App"} 2048`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("textfile missing %q:\n%s", want, text)
		}
	}
}

func TestWriteFileError(t *testing.T) {
	r := NewRecorder()
	if err := r.WriteFile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
