package optional

import "fmt"

// A value that is either present or absent.
//
// The zero value is absent.
type Value[T any] struct {
	v  T    // Wrapped value, meaningful only when ok is true.
	ok bool // Whether the value is present.
}

// Returns a present value.
func Some[T any](v T) Value[T] {
	return Value[T]{v: v, ok: true}
}

// Returns an absent value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Returns the wrapped value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.v, o.ok
}

// Returns true if the value is present.
func (o Value[T]) IsSet() bool {
	return o.ok
}

// Returns the wrapped value, or def if absent.
func (o Value[T]) Or(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// Formats the wrapped value, or "(unset)" if absent.
func (o Value[T]) String() string {
	if !o.ok {
		return "(unset)"
	}
	return fmt.Sprint(o.v)
}
