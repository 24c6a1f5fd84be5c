package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
)

// A process to launch.
type Command struct {
	Name   string            // Executable name or path.
	Args   []string          // Arguments, excluding the executable.
	Env    map[string]string // Overrides applied on top of the launcher's base environment.
	Stdout io.Writer         // Receives standard output. Nil discards.
	Stderr io.Writer         // Receives standard error. Nil discards.
}

// Starts a command, waits for it to exit, and returns its exit code.
//
// A non-zero exit code is not an error; the caller classifies it. An error
// is returned only when the process could not be started or waited on.
type Launcher interface {
	Launch(ctx context.Context, cmd Command) (int, error)
}

// Launches commands as child processes of the current process.
//
// The child inherits the current environment with the command's overrides
// applied on top.
type HostLauncher struct{}

// Runs the command on the host.
func (HostLauncher) Launch(ctx context.Context, cmd Command) (int, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Env = append(os.Environ(), Environ(cmd.Env)...)
	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr

	err := c.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode(), nil
	}

	return 0, fmt.Errorf("%w: %s: %w", ErrLaunch, cmd.Name, err)
}

// Formats an environment map as sorted "key=value" entries.
func Environ(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]string, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, k+"="+env[k])
	}
	return entries
}
