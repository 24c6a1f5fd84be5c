// Package optional provides a presence-tagged value.
//
// Configuration fields that may be omitted are modelled as [Value] rather
// than as zero-value sentinels, so an explicitly supplied empty string is
// distinguishable from a field that was never supplied.
//
// Example usage:
//
//	team := optional.Some("ABCDE12345")
//	if v, ok := team.Get(); ok {
//	    args = append(args, "DEVELOPMENT_TEAM="+v)
//	}
//	sdk := optional.None[string]().Or("iphoneos")
package optional
