package inputs

import (
	"fmt"
	"strings"

	"github.com/cruciblehq/xcbuild/internal/optional"
)

// Returns the trimmed value of an input, absent if unset or empty.
func String(src Source, name string) optional.Value[string] {
	v, ok := src.Lookup(name)
	if !ok {
		return optional.None[string]()
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return optional.None[string]()
	}
	return optional.Some(v)
}

// Returns a boolean input.
//
// Accepts true, True, TRUE, false, False, and FALSE. Any other non-empty
// value is an [ErrInvalidInput].
func Bool(src Source, name string) (optional.Value[bool], error) {
	return parse(src, name, "true | True | TRUE | false | False | FALSE", []string{"true", "True", "TRUE"}, []string{"false", "False", "FALSE"})
}

// Returns a yes/no input as a boolean.
//
// Accepts yes, Yes, YES, no, No, and NO. Any other non-empty value is an
// [ErrInvalidInput].
func YesNo(src Source, name string) (optional.Value[bool], error) {
	return parse(src, name, "yes | Yes | YES | no | No | NO", []string{"yes", "Yes", "YES"}, []string{"no", "No", "NO"})
}

// Maps an input onto true or false using the given spellings.
func parse(src Source, name, expected string, truthy, falsy []string) (optional.Value[bool], error) {
	v, ok := String(src, name).Get()
	if !ok {
		return optional.None[bool](), nil
	}
	for _, t := range truthy {
		if v == t {
			return optional.Some(true), nil
		}
	}
	for _, f := range falsy {
		if v == f {
			return optional.Some(false), nil
		}
	}
	return optional.None[bool](), fmt.Errorf("%w: %s: %q is not one of %s", ErrInvalidInput, name, v, expected)
}
