package runtime

import (
	"fmt"

	containerd "github.com/containerd/containerd/v2/client"
)

const (

	// Default containerd socket address.
	DefaultAddress = "/run/containerd/containerd.sock"

	// Default containerd namespace.
	DefaultNamespace = "xcbuild"
)

// Manages the containerd client.
type Runtime struct {
	client *containerd.Client // Containerd client for managing containers and tasks.
}

// Creates a runtime connected to the containerd socket at the given address.
//
// The namespace scopes all containerd operations to a single tenant. Empty
// arguments fall back to [DefaultAddress] and [DefaultNamespace]. The
// runtime must be closed when no longer needed.
func New(address, namespace string) (*Runtime, error) {
	if address == "" {
		address = DefaultAddress
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	client, err := containerd.New(address, containerd.WithDefaultNamespace(namespace))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRuntime, err)
	}
	return &Runtime{client: client}, nil
}

// Closes the containerd client connection.
func (rt *Runtime) Close() error {
	return rt.client.Close()
}

// Returns a handle for an existing container.
//
// The container is not loaded or verified; the handle resolves it lazily on
// each launch. A non-empty workdir overrides the working directory from the
// container's OCI spec.
func (rt *Runtime) Container(id, workdir string) *Container {
	return &Container{
		client:  rt.client,
		id:      id,
		workdir: workdir,
	}
}
