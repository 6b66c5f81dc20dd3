// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"os"
	"strings"
)

// EnvOption configures an Env source.
type EnvOption func(*Env)

// Prefix restricts an Env source to variables starting with
// prefix. The prefix is removed from the variable names.
func Prefix(prefix string) EnvOption {
	return func(e *Env) {
		e.prefix = prefix
	}
}

// Environ replaces the function used to list environment variables.
func Environ(f func() []string) EnvOption {
	return func(e *Env) {
		e.environ = f
	}
}

// Env represents a Source where its underlying values
// are extracted from environment variables.
type Env struct {
	environ func() []string
	prefix  string
}

// FromEnv returns a Source which will apply its values
// from the environment variables available to the
// current process.
func FromEnv(opts ...EnvOption) Env {
	e := Env{
		environ: os.Environ,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Apply implements the Source interface.
func (src Env) Apply(store Store) error {
	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}

		k, ok = strings.CutPrefix(k, src.prefix)
		if !ok || k == "" {
			continue
		}

		err := store.Set(k, v)
		if err != nil {
			return err
		}
	}
	return nil
}
