// Package runner executes the build tool and classifies its exit status.
//
// Process creation is delegated to a [Launcher]. [HostLauncher] runs the
// tool as a child of the current process; other launchers (such as the
// containerd-backed one in the runtime package) run it elsewhere. The
// runner always sets NSUnbufferedIO=YES so the tool's output interleaves in
// order, and passes stdout and stderr through unmodified.
//
// Exit code 0 is success. Exit code 65 is also success at this layer: the
// build tool uses it to report that the build succeeded but one or more
// tests failed. Any other code is an [ExitCodeError].
//
// Example usage:
//
//	result, err := runner.Run(ctx, runner.HostLauncher{}, runner.Command{
//	    Name: "xcodebuild",
//	    Args: args,
//	})
//	if err != nil {
//	    return err
//	}
package runner
