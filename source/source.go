// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package source builds the flat environments consumed by envdecoder.Decode.
package source

import (
	"fmt"

	envdecoder "github.com/MarcoDaniels/environment-decoder"
)

// Store represents a flat key value structure.
type Store interface {
	Set(string, any) error
}

// Source defines valid environment sources as those who can
// serialize themselves into a flat key value structure.
type Source interface {
	Apply(Store) error
}

// Read applies every source, in order, to a new environment.
// Subsequent sources override previous sources.
func Read(srcs ...Source) (envdecoder.Map, error) {
	env := make(envdecoder.Map)
	for _, src := range srcs {
		err := src.Apply(env)
		if err != nil {
			return nil, err
		}
	}
	return env, nil
}

// Values is an ordinary map[string]string but implements the Source interface.
type Values map[string]string

// Apply implements the Source interface.
func (m Values) Apply(store Store) error {
	for k, v := range m {
		err := store.Set(k, v)
		if err != nil {
			return err
		}
	}
	return nil
}

// NestedValueError occurs when a document source contains
// a value which is not a scalar.
type NestedValueError struct {
	Key string
}

// Error implements the error interface.
func (e NestedValueError) Error() string {
	return fmt.Sprintf("environment values must be scalars: %s", e.Key)
}

func applyFlat(m map[string]any, store Store) error {
	for k, v := range m {
		switch v.(type) {
		case map[string]any, []any:
			return NestedValueError{Key: k}
		}

		err := store.Set(k, v)
		if err != nil {
			return err
		}
	}
	return nil
}
