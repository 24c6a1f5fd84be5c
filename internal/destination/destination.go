package destination

import (
	"fmt"
	"strings"
)

const (

	// Separates fields in the encoded form.
	fieldSeparator = ","

	// Separates a field name from its value.
	valueSeparator = "="
)

// A single field of a destination descriptor.
type Field struct {
	Name  string // Case-sensitive field name (e.g., "platform", "OS").
	Value string // Field value, possibly empty.
}

// An ordered, immutable mapping of field names to values.
//
// The zero value is an empty descriptor.
type Descriptor struct {
	fields []Field // Fields in first-seen order.
}

// Creates a descriptor from the given fields, in order.
//
// The same rules as [Parse] apply: names must be non-empty, unique, and free
// of separators, and values may not contain a comma.
func New(fields ...Field) (Descriptor, error) {
	d := Descriptor{fields: make([]Field, 0, len(fields))}
	for i, f := range fields {
		if err := d.add(i, f.Name, f.Value); err != nil {
			return Descriptor{}, err
		}
	}
	return d, nil
}

// Parses a raw destination string.
//
// The string is split on every comma. Each segment is split once on its
// first "=", so values may themselves contain "=". Returns
// [ErrMalformedDestination] if a segment has no "=", a field name is empty,
// or a field name repeats.
func Parse(raw string) (Descriptor, error) {
	segments := strings.Split(raw, fieldSeparator)
	d := Descriptor{fields: make([]Field, 0, len(segments))}

	for i, segment := range segments {
		name, value, ok := strings.Cut(segment, valueSeparator)
		if !ok {
			return Descriptor{}, fmt.Errorf("%w: field %d (%q) has no %q", ErrMalformedDestination, i+1, segment, valueSeparator)
		}
		if err := d.add(i, strings.TrimSpace(name), strings.TrimSpace(value)); err != nil {
			return Descriptor{}, err
		}
	}

	return d, nil
}

// Encodes a descriptor into its single-argument wire form.
//
// Fields are joined as "name=value" with commas, in stored order.
func Encode(d Descriptor) string {
	parts := make([]string, len(d.fields))
	for i, f := range d.fields {
		parts[i] = f.Name + valueSeparator + f.Value
	}
	return strings.Join(parts, fieldSeparator)
}

// Returns the encoded form of the descriptor.
func (d Descriptor) String() string {
	return Encode(d)
}

// Returns a copy of the fields, in order.
func (d Descriptor) Fields() []Field {
	fields := make([]Field, len(d.fields))
	copy(fields, d.fields)
	return fields
}

// Returns the value of the named field and whether it exists.
func (d Descriptor) Get(name string) (string, bool) {
	for _, f := range d.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Returns the number of fields.
func (d Descriptor) Len() int {
	return len(d.fields)
}

// Validates and appends a field. The index is 0-based and only used for
// error messages.
func (d *Descriptor) add(index int, name, value string) error {
	if name == "" {
		return fmt.Errorf("%w: field %d has an empty name", ErrMalformedDestination, index+1)
	}
	if strings.ContainsAny(name, fieldSeparator+valueSeparator) {
		return fmt.Errorf("%w: field name %q contains a separator", ErrMalformedDestination, name)
	}
	if strings.Contains(value, fieldSeparator) {
		return fmt.Errorf("%w: value of %q contains %q", ErrMalformedDestination, name, fieldSeparator)
	}
	if _, exists := d.Get(name); exists {
		return fmt.Errorf("%w: field %q repeats", ErrMalformedDestination, name)
	}
	d.fields = append(d.fields, Field{Name: name, Value: value})
	return nil
}
