// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envdecoder

import "errors"

// ErrValueNotSet is returned when decoding an absent value with
// a [Decoder] that has no default.
var ErrValueNotSet = errors.New("value not set")

// Decoder validates and coerces a single raw configuration value into a T.
//
// Decoders are immutable values. Methods like [Decoder.WithDefault] return
// a new Decoder and leave the receiver untouched, so package level decoders
// such as [String] can be shared freely.
type Decoder[T any] struct {
	decode   func(any) (T, error)
	fallback func() T
}

// New returns a Decoder which uses f to decode set, non-empty values.
// f must be free of side effects.
func New[T any](f func(any) (T, error)) Decoder[T] {
	return Decoder[T]{decode: f}
}

// Decode decodes the given raw value. If the value is absent or empty
// and d has a default, the default is returned without running the
// underlying decode function.
func (d Decoder[T]) Decode(raw Raw) (T, error) {
	if d.fallback != nil && raw.empty() {
		return d.fallback(), nil
	}

	v, ok := raw.Value()
	if !ok {
		var zero T
		return zero, ErrValueNotSet
	}
	return d.decode(v)
}

// WithDefault returns a copy of d which substitutes v for absent or empty values.
func (d Decoder[T]) WithDefault(v T) Decoder[T] {
	return d.WithDefaultFunc(func() T {
		return v
	})
}

// WithDefaultFunc is like [Decoder.WithDefault] but the default is
// provided by f. f is called every time a default is needed.
func (d Decoder[T]) WithDefaultFunc(f func() T) Decoder[T] {
	return Decoder[T]{
		decode:   d.decode,
		fallback: f,
	}
}

// HasDefault reports whether d carries a default.
func (d Decoder[T]) HasDefault() bool {
	return d.fallback != nil
}

// Default returns the default value of d, if it has one.
func (d Decoder[T]) Default() (T, bool) {
	if d.fallback == nil {
		var zero T
		return zero, false
	}
	return d.fallback(), true
}

// Then returns a Decoder which first decodes with d and then passes
// the result to f. Errors from d are returned unchanged and f is
// never called for them. Any default on d is dropped since its type
// no longer matches.
func Then[A, B any](d Decoder[A], f func(A) (B, error)) Decoder[B] {
	return New(func(v any) (B, error) {
		a, err := d.decode(v)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a)
	})
}
