// Provides platform-appropriate paths for xcbuild.
//
// All paths follow XDG conventions on Linux and platform-native conventions
// on macOS and Windows. The tool name "xcbuild" is used as the subdirectory
// under each base path.
package paths
