package inputs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prefix of environment variables carrying inputs.
const envPrefix = "INPUT_"

// Looks up raw input values by name.
type Source interface {
	Lookup(name string) (string, bool)
}

// Looks up inputs in a map keyed by input name.
type Map map[string]string

// Returns the value for name.
func (m Map) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Looks up inputs in environment variables.
type Env func(key string) (string, bool)

// Returns the environment source backed by [os.LookupEnv].
func OSEnv() Env {
	return Env(os.LookupEnv)
}

// Returns the value of the environment variable for name.
func (e Env) Lookup(name string) (string, bool) {
	return e(EnvKey(name))
}

// Returns the environment variable name for an input: INPUT_ followed by
// the upper-cased name with spaces replaced by underscores.
func EnvKey(name string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// Looks up inputs in each source in turn, returning the first hit.
type Chain []Source

// Returns the value from the first source that has name.
//
// A source holding an empty value for name does not shadow later sources,
// since empty inputs count as absent.
func (c Chain) Lookup(name string) (string, bool) {
	for _, src := range c {
		if v, ok := src.Lookup(name); ok && strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}

// Loads a YAML mapping of input names to scalar values.
//
// When optional is true a missing file yields an empty source.
func LoadFile(path string, optional bool) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Map{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrConfigFile, err)
	}

	return ParseFile(data)
}

// Parses a YAML mapping of input names to scalar values.
func ParseFile(data []byte) (Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFile, err)
	}

	m := Map{}
	if len(doc.Content) == 0 {
		return m, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping of input names to values", ErrConfigFile, root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: input %q must be a scalar", ErrConfigFile, value.Line, key.Value)
		}
		if value.Tag == "!!null" {
			continue
		}
		m[key.Value] = value.Value
	}

	return m, nil
}
