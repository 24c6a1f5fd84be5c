// Package build runs one build request end to end.
//
// The configuration is composed into an argument list by the options
// package and handed to the runner, which launches the build tool and
// classifies its exit code. When a result bundle path is configured and the
// build succeeds, the bundle is captured: archived and uploaded to the
// artifact store. When a metrics file is configured, the build's duration,
// exit code, and archive size are written to it whether or not the build
// succeeded.
//
// Every step is attempted once. Errors propagate to the caller unchanged,
// except for archive failures, which the capture package reports as a
// warning.
//
// Example usage:
//
//	result, err := build.Run(ctx, runner.HostLauncher{}, build.Options{
//	    Configuration: cfg,
//	    Executable:    "xcodebuild",
//	    Store:         store,
//	})
//	if err != nil {
//	    return err
//	}
package build
