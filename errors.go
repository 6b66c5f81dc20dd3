// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envdecoder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// TypeMismatchError occurs when a raw value is not of the kind a
// decoder expects. Flat string environments never produce it.
type TypeMismatchError struct {
	Value    any
	Expected string
}

// Error implements the error interface.
func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("Type %q of %s is not a %s", fmt.Sprintf("%T", e.Value), serialize(e.Value), e.Expected)
}

// NotCastableError occurs when a string can not be coerced into the target type.
type NotCastableError struct {
	Value  string
	Target string
	Cause  error
}

// Error implements the error interface.
func (e NotCastableError) Error() string {
	return fmt.Sprintf("value %s cannot be cast to %s", serialize(e.Value), e.Target)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e NotCastableError) Unwrap() error {
	return e.Cause
}

// NotAllowedError occurs when a decoded value is not part of a
// literal or union constraint.
type NotAllowedError struct {
	// Noun names the kind of values allowed e.g. "strings".
	Noun string

	// Allowed holds the printed allowed values in declaration order.
	Allowed []string
	Got     string

	// Literal is set when the constraint is a single literal.
	Literal bool
}

// Error implements the error interface.
func (e NotAllowedError) Error() string {
	if e.Literal && len(e.Allowed) == 1 {
		return fmt.Sprintf("allowed %s is %s, got %s", e.Noun, e.Allowed[0], e.Got)
	}
	return fmt.Sprintf("allowed %s are %s, got %s", e.Noun, strings.Join(e.Allowed, ", "), e.Got)
}

// MissingVariablesError occurs when variables without a default
// are absent from the environment.
type MissingVariablesError struct {
	Names []string
}

// Error implements the error interface.
func (e MissingVariablesError) Error() string {
	return "Missing environment variables: \n" + strings.Join(e.Names, "\n")
}

// VariableError associates a decoding failure with the variable it occurred for.
type VariableError struct {
	Name  string
	Cause error
}

// Error implements the error interface.
func (e VariableError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e VariableError) Unwrap() error {
	return e.Cause
}

// DecoderErrors aggregates every [VariableError] of a single [Decode] call
// in schema declaration order.
type DecoderErrors struct {
	Errors []VariableError
}

// Error implements the error interface.
func (e DecoderErrors) Error() string {
	lines := make([]string, len(e.Errors))
	for i, verr := range e.Errors {
		lines[i] = verr.Error()
	}
	return "Decoder errors: \n" + strings.Join(lines, "\n")
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e DecoderErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, verr := range e.Errors {
		errs[i] = verr
	}
	return errs
}

// EmptyNameError occurs when a schema variable has no name.
type EmptyNameError struct {
	Index int
}

// Error implements the error interface.
func (e EmptyNameError) Error() string {
	return fmt.Sprintf("schema variable at index %d has an empty name", e.Index)
}

// DuplicateVariableError occurs when a schema declares the same variable twice.
type DuplicateVariableError struct {
	Name string
}

// Error implements the error interface.
func (e DuplicateVariableError) Error() string {
	return fmt.Sprintf("schema declares variable more than once: %s", e.Name)
}

// UnmarshalError occurs when a [Record] can not be unmarshaled into a Go value.
type UnmarshalError struct {
	Cause error
}

// Error implements the error interface.
func (e UnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal decoded environment: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e UnmarshalError) Unwrap() error {
	return e.Cause
}

// serialize renders v the way it would appear in JSON.
func serialize(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
