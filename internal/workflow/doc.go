// Package workflow reports results to the CI workflow running xcbuild.
//
// Step outputs are appended to the file named by $GITHUB_OUTPUT, using the
// heredoc form for values spanning lines. When the variable is unset the
// legacy ::set-output workflow command is written instead. Failures are
// reported as ::error:: workflow commands.
package workflow
