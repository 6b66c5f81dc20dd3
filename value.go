// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envdecoder

// Value represents a value which may or may not be set. It
// distinguishes between "not set" and "set to the zero value".
type Value[T any] struct {
	set bool
	v   T
}

// ValueOf returns a set Value containing v.
func ValueOf[T any](v T) Value[T] {
	return Value[T]{
		set: true,
		v:   v,
	}
}

// Value returns the underlying value and whether or not it was set.
func (v Value[T]) Value() (T, bool) {
	return v.v, v.set
}

// Raw is a configuration value exactly as it was found in an [Environment].
// An unset Raw means the key was absent.
type Raw = Value[any]

// empty reports whether a raw value should be replaced by a default.
func (v Value[T]) empty() bool {
	if !v.set {
		return true
	}
	switch x := any(v.v).(type) {
	case nil:
		return true
	case string:
		return x == ""
	default:
		return false
	}
}
