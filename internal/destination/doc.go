// Package destination parses and encodes build destination descriptors.
//
// A destination descriptor identifies the platform, device, or OS a build
// targets. On the wire it is a single comma-separated list of key=value
// fields:
//
//	platform=iOS Simulator,name=iPhone 14,OS=16.0
//
// Field order is significant and preserved from parse to encode. Values may
// be empty but may not contain a comma; there is no quoting or escaping.
// Surrounding whitespace is trimmed from field names and values.
//
// Example usage:
//
//	d, err := destination.Parse("platform=macOS,arch=arm64")
//	if err != nil {
//	    return err
//	}
//	args = append(args, "-destination", destination.Encode(d))
package destination
