// Package runtime launches build tools inside containers managed by
// containerd.
//
// A [Runtime] connects to a containerd daemon. A [Container] is a
// lightweight handle to an existing container whose task is already
// running; it implements runner.Launcher by attaching the build tool as an
// additional exec process to that task. The process environment is the
// container's OCI process environment with the command's overrides merged
// on top, and its output is streamed to the command's writers as it is
// produced.
//
// Example usage:
//
//	rt, err := runtime.New("/run/containerd/containerd.sock", "xcbuild")
//	if err != nil {
//	    return err
//	}
//	defer rt.Close()
//
//	result, err := runner.Run(ctx, rt.Container("builder", ""), runner.Command{
//	    Name: "xcodebuild",
//	    Args: args,
//	})
package runtime
