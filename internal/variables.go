package internal

import (
	"fmt"
	"runtime"
	"strings"
)

const (

	// Program name, used for the CLI and the log group.
	Name = "xcbuild"

	// Placeholder for a linker variable that was not set.
	defaultUndefined = "(undefined)"

	// Version string of a build made outside the release pipeline.
	defaultLocalBuild = "(local)"

	// Release branch, omitted from version strings.
	mainBranch = "main"
)

var (
	version   = "" // Release version (e.g., "1.2.3").
	stage     = "" // Git branch the release was cut from (e.g., "main").
	gitCommit = "" // Abbreviated commit hash (e.g., "a1b2c3d4").

	rawQuiet   = "false" // Whether quiet mode is on by default.
	rawDebug   = "false" // Whether debug mode is on by default.
	rawVerbose = "false" // Whether verbose logging is on by default.
)

// Returns the release version without any "v" prefix, or "(undefined)".
func Version() string {
	v := strings.ToLower(strings.TrimSpace(version))
	if v == "" {
		return defaultUndefined
	}
	return strings.TrimPrefix(v, "v")
}

// Returns the release stage in lower case, or "(undefined)".
func Stage() string {
	s := strings.ToLower(strings.TrimSpace(stage))
	if s == "" {
		return defaultUndefined
	}
	return s
}

// Returns the git commit hash, or "(undefined)".
func GitCommit() string {
	c := strings.TrimSpace(gitCommit)
	if c == "" {
		return defaultUndefined
	}
	return c
}

// Returns the host platform as "os/arch".
func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// Returns true unless the release pipeline set version, stage, and commit.
func IsLocal() bool {
	return strings.TrimSpace(version) == "" ||
		strings.TrimSpace(gitCommit) == "" ||
		strings.TrimSpace(stage) == ""
}

// Returns a detailed version string.
//
// Local builds report "(local)". Release builds report
// "<version>[+<stage>] <commit> [<os>/<arch>]", omitting the stage for
// releases cut from main.
func VersionString() string {
	if IsLocal() {
		return defaultLocalBuild
	}

	suffix := ""
	if s := Stage(); s != mainBranch {
		suffix = "+" + s
	}

	return fmt.Sprintf("%s%s %s [%s]", Version(), suffix, GitCommit(), Platform())
}
