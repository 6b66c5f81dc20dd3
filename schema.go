// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envdecoder

// Entry is a single named variable of a [Schema]. The only
// implementation is [Variable].
type Entry interface {
	Name() string
	HasDefault() bool

	decodeRaw(Raw) (any, error)
}

// Variable names an environment variable and the [Decoder] for its value.
// The type parameter carries the decoded type through to [Variable.Get].
type Variable[T any] struct {
	name    string
	decoder Decoder[T]
}

// Var returns a Variable for the environment variable name.
func Var[T any](name string, d Decoder[T]) Variable[T] {
	return Variable[T]{
		name:    name,
		decoder: d,
	}
}

// Name implements the [Entry] interface.
func (v Variable[T]) Name() string {
	return v.name
}

// HasDefault implements the [Entry] interface.
func (v Variable[T]) HasDefault() bool {
	return v.decoder.HasDefault()
}

// Decoder returns the Decoder of v.
func (v Variable[T]) Decoder() Decoder[T] {
	return v.decoder
}

func (v Variable[T]) decodeRaw(raw Raw) (any, error) {
	return v.decoder.Decode(raw)
}

// Lookup returns the decoded value of v from rec. It returns false if
// rec was not decoded with a schema containing v.
func (v Variable[T]) Lookup(rec Record) (T, bool) {
	a, ok := rec.Lookup(v.name)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := a.(T)
	return t, ok
}

// Get returns the decoded value of v from rec or the zero value
// of T, if rec does not contain v.
func (v Variable[T]) Get(rec Record) T {
	t, _ := v.Lookup(rec)
	return t
}

// Schema is an ordered set of uniquely named variables.
// A Schema is immutable once created.
type Schema struct {
	entries []Entry
}

// NewSchema returns a Schema of the given entries in declaration order.
func NewSchema(entries ...Entry) (Schema, error) {
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		name := e.Name()
		if name == "" {
			return Schema{}, EmptyNameError{Index: i}
		}
		if _, exists := seen[name]; exists {
			return Schema{}, DuplicateVariableError{Name: name}
		}
		seen[name] = struct{}{}
	}

	s := Schema{
		entries: make([]Entry, len(entries)),
	}
	copy(s.entries, entries)
	return s, nil
}

// MustSchema is like [NewSchema] but panics if the schema is invalid.
func MustSchema(entries ...Entry) Schema {
	s, err := NewSchema(entries...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of variables in s.
func (s Schema) Len() int {
	return len(s.entries)
}

// Names returns the variable names of s in declaration order.
func (s Schema) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name()
	}
	return names
}
