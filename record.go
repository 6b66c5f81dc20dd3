// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envdecoder

import (
	"github.com/go-viper/mapstructure/v2"
)

// Record holds decoded values keyed by variable name in the
// declaration order of the [Schema] it was decoded with.
type Record struct {
	names  []string
	values map[string]any
}

// Len returns the number of values in r.
func (r Record) Len() int {
	return len(r.names)
}

// Names returns the variable names of r in schema declaration order.
func (r Record) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Lookup returns the decoded value for the variable name.
func (r Record) Lookup(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Map returns a copy of the decoded values.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}

// Unmarshal copies the decoded values into v, which must be a pointer
// to a struct. Fields are matched to variable names by their "env"
// struct tag, falling back to a case insensitive match on the field name.
//
// The struct must mirror the schema: a variable without a field or a
// field without a variable is an error. Values are converted the way
// mapstructure converts them and string values are passed to
// encoding.TextUnmarshaler implementations.
func (r Record) Unmarshal(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "env",
		Result:      v,
		ErrorUnused: true,
		ErrorUnset:  true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return UnmarshalError{Cause: err}
	}

	err = dec.Decode(r.values)
	if err != nil {
		return UnmarshalError{Cause: err}
	}
	return nil
}
