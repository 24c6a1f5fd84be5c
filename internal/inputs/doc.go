// Package inputs resolves named build inputs into a typed configuration.
//
// Inputs are looked up by name in a [Source]. Sources are layered with
// [Chain]; the CLI layers -D flags over the environment over a YAML config
// file. Environment lookups follow the GitHub Actions convention: an input
// named "development-team" is read from INPUT_DEVELOPMENT-TEAM.
//
// Values are trimmed of surrounding whitespace and an empty value counts as
// absent. Typed getters return optional values, so a missing input is never
// confused with an explicit one. Primitive types and structural rules are
// validated here, once, before the configuration reaches the option
// builder.
package inputs
