package options

import (
	"github.com/cruciblehq/xcbuild/internal/destination"
	"github.com/cruciblehq/xcbuild/internal/optional"
	"github.com/cruciblehq/xcbuild/internal/signing"
)

// Resolved build parameters.
//
// Constructed once at the input boundary and passed by value. Workspace and
// Project are mutually exclusive by caller contract; [Compose] emits
// whichever is present without enforcing it.
type Configuration struct {
	Workspace     optional.Value[string]                 // Path to an .xcworkspace.
	Project       optional.Value[string]                 // Path to an .xcodeproj.
	Scheme        optional.Value[string]                 // Scheme to build.
	Configuration optional.Value[string]                 // Build configuration (e.g., "Release").
	SDK           optional.Value[string]                 // SDK name or path.
	Arch          optional.Value[string]                 // Architecture to build.
	Destination   optional.Value[destination.Descriptor] // Parsed destination descriptor.
	Clean         optional.Value[bool]                   // Whether to clean before building.
	Signing       signing.Policy                         // Code-signing policy.

	ResultBundlePath optional.Value[string] // Where the tool writes its result bundle.
	ResultBundleName optional.Value[string] // Artifact name for the captured bundle.
}
