// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package schemafile compiles declarative YAML schema documents into an envdecoder.Schema.
//
// A document lists variables in declaration order:
//
//	variables:
//	  - name: PORT
//	    type: number
//	    allowed: [8080, 9090]
//	    default: 8080
//	  - name: MODE
//	    type: string
//	    allowed: [dev, prod]
//	  - name: API_KEY
//	    type: string
//	    secret: true
//	  - name: REGION
//	    type: literal
//	    value: eu-west-1
//
// Supported types are string, number, boolean, duration and literal. Defaults are
// decoded with the variable's own decoder, so a default outside of the allowed
// values fails to compile.
package schemafile

import (
	"fmt"
	"io"

	envdecoder "github.com/MarcoDaniels/environment-decoder"
	"github.com/MarcoDaniels/environment-decoder/internal/try"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Document is the YAML representation of a schema.
type Document struct {
	Variables []Variable `yaml:"variables" validate:"required,min=1,unique=Name,dive"`
}

// Variable is the YAML representation of a single schema variable.
type Variable struct {
	Name    string `yaml:"name" validate:"required"`
	Type    string `yaml:"type" validate:"required,oneof=string number boolean duration literal"`
	Allowed []any  `yaml:"allowed" validate:"excluded_if=Type boolean,excluded_if=Type duration,excluded_if=Type literal"`
	Value   string `yaml:"value" validate:"required_if=Type literal"`
	Default any    `yaml:"default"`
	Secret  bool   `yaml:"secret"`
}

// File is a compiled schema document.
type File struct {
	Schema envdecoder.Schema

	// Secrets holds the names of variables marked as secret.
	Secrets []string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// InvalidDocumentError occurs if a schema document is not valid YAML.
type InvalidDocumentError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid schema document: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidDocumentError) Unwrap() error {
	return e.Cause
}

// ValidationError occurs if a schema document is structurally invalid.
type ValidationError struct {
	Cause error
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("schema document failed validation: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ValidationError) Unwrap() error {
	return e.Cause
}

// InvalidValueError occurs if an allowed or default value of a
// variable can not be decoded with the variable's type.
type InvalidValueError struct {
	Name  string
	Field string
	Cause error
}

// Error implements the error interface.
func (e InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s for variable %s: %s", e.Field, e.Name, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidValueError) Unwrap() error {
	return e.Cause
}

// Parse reads a YAML schema document from r and compiles it.
// If r implements io.Closer it is closed.
func Parse(r io.Reader) (f *File, err error) {
	defer try.Close(&err, r)

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc Document
	err = yaml.Unmarshal(b, &doc)
	if err != nil {
		return nil, InvalidDocumentError{Cause: err}
	}
	return Compile(doc)
}

// Compile validates doc and builds its schema.
func Compile(doc Document) (*File, error) {
	err := validate.Struct(doc)
	if err != nil {
		return nil, ValidationError{Cause: err}
	}

	f := &File{}
	entries := make([]envdecoder.Entry, 0, len(doc.Variables))
	for _, v := range doc.Variables {
		e, err := compileVariable(v)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)

		if v.Secret {
			f.Secrets = append(f.Secrets, v.Name)
		}
	}

	f.Schema, err = envdecoder.NewSchema(entries...)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func compileVariable(v Variable) (envdecoder.Entry, error) {
	switch v.Type {
	case "string":
		allowed, err := convertAll(v, cast.ToStringE)
		if err != nil {
			return nil, err
		}
		d := envdecoder.String
		if len(allowed) > 0 {
			d = envdecoder.StringUnion(allowed...)
		}
		return variable(v, d, stringDefault)
	case "number":
		allowed, err := convertAll(v, decodeWith(envdecoder.Number))
		if err != nil {
			return nil, err
		}
		d := envdecoder.Number
		if len(allowed) > 0 {
			d = envdecoder.NumberUnion(allowed...)
		}
		return variable(v, d, identity)
	case "boolean":
		return variable(v, envdecoder.Boolean, identity)
	case "duration":
		return variable(v, envdecoder.Duration, identity)
	case "literal":
		return variable(v, envdecoder.Literal(v.Value), stringDefault)
	default:
		// unreachable after validation
		return nil, ValidationError{Cause: fmt.Errorf("unknown type: %s", v.Type)}
	}
}

func variable[T any](v Variable, d envdecoder.Decoder[T], prepare func(any) (any, error)) (envdecoder.Entry, error) {
	if v.Default == nil {
		return envdecoder.Var(v.Name, d), nil
	}

	def, err := prepare(v.Default)
	if err != nil {
		return nil, InvalidValueError{Name: v.Name, Field: "default", Cause: err}
	}

	t, err := d.Decode(envdecoder.ValueOf(def))
	if err != nil {
		return nil, InvalidValueError{Name: v.Name, Field: "default", Cause: err}
	}
	return envdecoder.Var(v.Name, d.WithDefault(t)), nil
}

func convertAll[T any](v Variable, f func(any) (T, error)) ([]T, error) {
	ts := make([]T, 0, len(v.Allowed))
	for _, a := range v.Allowed {
		t, err := f(a)
		if err != nil {
			return nil, InvalidValueError{Name: v.Name, Field: "allowed value", Cause: err}
		}
		ts = append(ts, t)
	}
	return ts, nil
}

func decodeWith[T any](d envdecoder.Decoder[T]) func(any) (T, error) {
	return func(a any) (T, error) {
		return d.Decode(envdecoder.ValueOf(a))
	}
}

// stringDefault lets numbers and booleans written without quotes
// in YAML serve as defaults of string variables.
func stringDefault(a any) (any, error) {
	return cast.ToStringE(a)
}

func identity(a any) (any, error) {
	return a, nil
}
