// Package signing resolves code-signing policy into build settings.
//
// A [Policy] either disables code signing outright, forcing the four
// signing settings to fixed suppressing values, or carries explicit
// per-setting overrides, each of which is emitted only when present. The
// two are mutually exclusive: when signing is disabled no override is
// consulted. A development team, when present, is appended after the
// signing settings in either case.
package signing
