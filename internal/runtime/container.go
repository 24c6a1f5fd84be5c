package runtime

import (
	"context"
	"fmt"

	containerd "github.com/containerd/containerd/v2/client"
	"github.com/containerd/errdefs"
)

// Lifecycle state of a container.
type State string

const (
	StateNotCreated State = "not-created" // No container with the ID exists.
	StateStopped    State = "stopped"     // The container exists without a running task.
	StateRunning    State = "running"     // The container's task is running.
)

// A handle to a containerd container used as a build host.
type Container struct {
	client  *containerd.Client // Containerd client for managing the container.
	id      string             // Containerd container ID.
	workdir string             // Working directory override for launched processes.
}

// Returns the container ID.
func (c *Container) ID() string {
	return c.id
}

// Queries the current state of the container.
//
// Returns [StateRunning] if the task is active, [StateStopped] if the
// container exists but has no running task, or [StateNotCreated] if the
// container does not exist.
func (c *Container) Status(ctx context.Context) (State, error) {
	ctr, err := c.client.LoadContainer(ctx, c.id)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return StateNotCreated, nil
		}
		return "", fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	task, err := ctr.Task(ctx, nil)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return StateStopped, nil
		}
		return "", fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	status, err := task.Status(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRuntime, err)
	}

	return stateOf(status.Status), nil
}

// Maps a containerd process status to a container state.
func stateOf(status containerd.ProcessStatus) State {
	switch status {
	case containerd.Running:
		return StateRunning
	default:
		return StateStopped
	}
}
