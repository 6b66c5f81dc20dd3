// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envdecoder

// Environment is a flat, read only set of configuration entries.
type Environment interface {
	Lookup(key string) (any, bool)
}

// Map is an ordinary map[string]any which implements [Environment].
type Map map[string]any

// Lookup implements the [Environment] interface.
func (m Map) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Set stores v under key, overriding any previous value.
func (m Map) Set(key string, v any) error {
	m[key] = v
	return nil
}

// Strings converts a map[string]string into a Map.
func Strings(m map[string]string) Map {
	env := make(Map, len(m))
	for k, v := range m {
		env[k] = v
	}
	return env
}
