// Package options composes the argument list for a build tool invocation.
//
// The argument list is assembled from four ordered segments:
//
//	global options   -workspace, -project, -scheme, -configuration,
//	                 -destination, -sdk, -arch
//	command verbs    [clean] build
//	build options    -resultBundlePath
//	build settings   KEY=VALUE tokens from the signing policy
//
// The order is part of the contract; some tools apply settings that appear
// later on the command line over earlier defaults. Every optional field is
// emitted only when present. Values are passed as discrete tokens and never
// shell-escaped, so the result must be handed to a launcher that does not
// re-interpret shell metacharacters.
package options
