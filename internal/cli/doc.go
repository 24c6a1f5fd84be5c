// Parses flags, configures logging, and dispatches xcbuild commands.
//
// The root command accepts the following flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Include source locations in log output.
//	-d, --debug     Enable debug output.
//	-c, --config    Path to the YAML input file.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is replaced to reflect the final level and verbosity before
// the selected command runs.
//
// Inputs are resolved from, in order of precedence, -D name=value flags,
// INPUT_<NAME> environment variables, and the config file. The config file
// defaults to $XDG_CONFIG_HOME/xcbuild/config.yaml and may be absent.
//
// Example usage:
//
//	xcbuild build -D scheme=App -D destination="platform=iOS Simulator,name=iPhone 15"
//	xcbuild args -D scheme=App -D disable-code-signing=true
//	xcbuild destination "platform=macOS,arch=arm64"
package cli
