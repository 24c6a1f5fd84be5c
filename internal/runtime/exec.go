package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"

	containerd "github.com/containerd/containerd/v2/client"
	"github.com/containerd/containerd/v2/pkg/cio"
	"github.com/cruciblehq/xcbuild/internal/runner"
	specs "github.com/opencontainers/runtime-spec/specs-go"
)

// Sequence counter for generating unique exec process identifiers.
var execSeq uint64

// Returns a unique exec process identifier.
func nextExecID() string {
	return fmt.Sprintf("xcbuild-exec-%d", atomic.AddUint64(&execSeq, 1))
}

// Runs the command inside the container and returns its exit code.
//
// The container's task must already be running. The command is executed
// directly, without shell wrapping. A non-zero exit code is not treated as
// an error; the runner classifies it.
func (c *Container) Launch(ctx context.Context, cmd runner.Command) (int, error) {
	state, err := c.Status(ctx)
	if err != nil {
		return 0, err
	}
	if state != StateRunning {
		return 0, fmt.Errorf("%w: %s is %s", ErrContainerNotRunning, c.id, state)
	}

	args := append([]string{cmd.Name}, cmd.Args...)
	pspec, err := c.buildProcessSpec(ctx, runner.Environ(cmd.Env), c.workdir, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	slog.Debug("container exec", "container", c.id, "command", cmd.Name, "cwd", pspec.Cwd)

	return c.execProcess(ctx, pspec, cmd.Stdout, cmd.Stderr)
}

// Builds an OCI process spec for running a command inside the container.
//
// The base values are copied from the container's own OCI spec, then env
// and workdir are overridden if provided.
func (c *Container) buildProcessSpec(ctx context.Context, env []string, workdir string, args ...string) (*specs.Process, error) {
	ctr, err := c.client.LoadContainer(ctx, c.id)
	if err != nil {
		return nil, err
	}

	spec, err := ctr.Spec(ctx)
	if err != nil {
		return nil, err
	}

	pspec := *spec.Process
	pspec.Terminal = false
	pspec.Args = args

	if len(env) > 0 {
		pspec.Env = mergeEnv(pspec.Env, env)
	}
	if workdir != "" {
		pspec.Cwd = workdir
	}

	return &pspec, nil
}

// Returns base with overrides applied.
//
// Keys keep the position of their first occurrence in base; new keys are
// appended in override order. Entries without "=" are dropped.
func mergeEnv(base, overrides []string) []string {
	merged := make([]string, 0, len(base)+len(overrides))
	index := make(map[string]int, cap(merged))

	for _, entry := range slices.Concat(base, overrides) {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if i, seen := index[k]; seen {
			merged[i] = entry
			continue
		}
		index[k] = len(merged)
		merged = append(merged, entry)
	}

	return merged
}

// Starts a process inside the container's running task, waits for it to
// exit, and returns the exit code.
//
// The process is attached to the task as an additional exec, not as the
// primary process. Nil output streams are replaced with io.Discard. Stdin
// is left disconnected.
func (c *Container) execProcess(ctx context.Context, pspec *specs.Process, stdout, stderr io.Writer) (int, error) {
	task, err := c.loadTask(ctx)
	if err != nil {
		return 0, err
	}

	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	process, err := task.Exec(ctx, nextExecID(), pspec, cio.NewCreator(
		cio.WithStreams(nil, stdout, stderr),
	))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return awaitProcess(ctx, process)
}

// Loads the container's running task.
func (c *Container) loadTask(ctx context.Context) (containerd.Task, error) {
	ctr, err := c.client.LoadContainer(ctx, c.id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	task, err := ctr.Task(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return task, nil
}

// Starts an exec process, waits for it to exit, and returns the exit code.
//
// The wait channel is registered before the process is started so the exit
// event cannot be missed. The process is always deleted before returning.
func awaitProcess(ctx context.Context, process containerd.Process) (int, error) {
	defer func() {
		if _, err := process.Delete(ctx); err != nil {
			slog.Debug("failed to delete exec process", "id", process.ID(), "error", err)
		}
	}()

	statusC, err := process.Wait(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	if err := process.Start(ctx); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	var status containerd.ExitStatus
	select {
	case status = <-statusC:
	case <-ctx.Done():
		return 0, fmt.Errorf("%w: %w", ErrRuntime, ctx.Err())
	}

	code, _, err := status.Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return int(code), nil
}
