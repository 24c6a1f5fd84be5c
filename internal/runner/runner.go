package runner

import (
	"context"
	"log/slog"
	"maps"
	"os"
)

const (

	// Exit code for a build that succeeded with failing tests.
	ExitTestsFailed = 65

	// Environment variable forcing unbuffered output from Foundation tools.
	unbufferedEnv = "NSUnbufferedIO"
)

// Outcome of a classified invocation.
type Result struct {
	ExitCode    int  // Exit code reported by the tool.
	TestsFailed bool // Whether the tool reported failing tests (code 65).
}

// Runs the command through the launcher and classifies its exit code.
//
// NSUnbufferedIO=YES is always set. Nil output streams default to the
// current process's stdout and stderr. Returns an [ExitCodeError] for any
// exit code other than 0 or 65. The command is attempted exactly once.
func Run(ctx context.Context, l Launcher, cmd Command) (*Result, error) {
	env := make(map[string]string, len(cmd.Env)+1)
	maps.Copy(env, cmd.Env)
	env[unbufferedEnv] = "YES"
	cmd.Env = env

	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	slog.Info("executing", "command", cmd.Name, "args", cmd.Args)

	code, err := l.Launch(ctx, cmd)
	if err != nil {
		return nil, err
	}

	slog.Debug("process exited", "command", cmd.Name, "code", code)

	if err := Classify(cmd.Name, code); err != nil {
		return nil, err
	}

	result := &Result{
		ExitCode:    code,
		TestsFailed: code == ExitTestsFailed,
	}
	if result.TestsFailed {
		slog.Warn("build succeeded but tests failed", "command", cmd.Name, "code", code)
	}
	return result, nil
}

// Classifies an exit code from the named executable.
//
// Returns nil for 0 and 65, and an [ExitCodeError] otherwise.
func Classify(name string, code int) error {
	switch code {
	case 0, ExitTestsFailed:
		return nil
	default:
		return &ExitCodeError{Name: name, Code: code}
	}
}
