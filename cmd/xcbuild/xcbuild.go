package main

import (
	"log/slog"
	"os"

	"github.com/cruciblehq/xcbuild/internal"
	"github.com/cruciblehq/xcbuild/internal/cli"
	"github.com/cruciblehq/xcbuild/internal/workflow"
)

// The entry point for xcbuild.
//
// Initializes logging, displays startup information, and executes the root
// command. Any error is reported as a workflow failure annotation and exits
// with a non-zero code.
func main() {
	slog.SetDefault(cli.NewLogger(os.Stderr))

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("xcbuild is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		workflow.FromEnv().Fail(err)
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
