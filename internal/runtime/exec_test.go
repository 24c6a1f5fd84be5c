package runtime

import (
	"strings"
	"testing"

	containerd "github.com/containerd/containerd/v2/client"
	"github.com/cruciblehq/xcbuild/internal/runner"
	"github.com/google/go-cmp/cmp"
)

// Containers launch build tools.
var _ runner.Launcher = (*Container)(nil)

func TestMergeEnvKeepsBaseOrder(t *testing.T) {
	base := []string{"PATH=/usr/bin", "NSUnbufferedIO=NO", "HOME=/var/root"}
	overrides := runner.Environ(map[string]string{
		"NSUnbufferedIO": "YES",
		"DEVELOPER_DIR":  "/Applications/Xcode.app/Contents/Developer",
		"OTHER_CFLAGS":   "-DFOO=1",
	})

	want := []string{
		"PATH=/usr/bin",
		"NSUnbufferedIO=YES",
		"HOME=/var/root",
		"DEVELOPER_DIR=/Applications/Xcode.app/Contents/Developer",
		"OTHER_CFLAGS=-DFOO=1",
	}
	if diff := cmp.Diff(want, mergeEnv(base, overrides)); diff != "" {
		t.Errorf("mergeEnv mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeEnvEdgeCases(t *testing.T) {
	cases := map[string]struct {
		base, overrides, want []string
	}{
		"nothing":           {want: []string{}},
		"no overrides":      {base: []string{"A=1"}, want: []string{"A=1"}},
		"no base":           {overrides: []string{"B=2"}, want: []string{"B=2"}},
		"empty value":       {base: []string{"A=1"}, overrides: []string{"A="}, want: []string{"A="}},
		"duplicate in base": {base: []string{"A=1", "A=2"}, want: []string{"A=2"}},
		"entries without =": {base: []string{"JUNK", "A=1"}, overrides: []string{"MORE"}, want: []string{"A=1"}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, mergeEnv(tc.base, tc.overrides)); diff != "" {
				t.Errorf("mergeEnv mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExecIDsAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for range 16 {
		id := nextExecID()
		if !strings.HasPrefix(id, "xcbuild-exec-") {
			t.Fatalf("id %q lacks prefix", id)
		}
		if seen[id] {
			t.Fatalf("id %q issued twice", id)
		}
		seen[id] = true
	}
}

func TestOnlyRunningTasksAreRunning(t *testing.T) {
	for _, status := range []containerd.ProcessStatus{
		containerd.Created,
		containerd.Stopped,
		containerd.Paused,
		containerd.Pausing,
		containerd.Unknown,
	} {
		if got := stateOf(status); got != StateStopped {
			t.Errorf("stateOf(%q) = %q, want %q", status, got, StateStopped)
		}
	}
	if got := stateOf(containerd.Running); got != StateRunning {
		t.Errorf("stateOf(running) = %q, want %q", got, StateRunning)
	}
}
