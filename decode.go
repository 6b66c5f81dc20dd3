// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envdecoder

// Decode decodes every variable of schema from env.
//
// Missing variables are reported before anything is decoded: if any variable
// without a default is absent, a [MissingVariablesError] listing all of them
// is returned. Otherwise every variable is decoded once and all failures are
// returned together as [DecoderErrors]. A Record is only returned if
// every variable decoded successfully.
func Decode(env Environment, schema Schema) (Record, error) {
	raws := make([]Raw, len(schema.entries))
	var missing []string
	for i, e := range schema.entries {
		v, ok := env.Lookup(e.Name())
		if ok {
			raws[i] = ValueOf(v)
			continue
		}
		if !e.HasDefault() {
			missing = append(missing, e.Name())
		}
	}
	if len(missing) > 0 {
		return Record{}, MissingVariablesError{Names: missing}
	}

	values := make([]any, len(schema.entries))
	var errs []VariableError
	for i, e := range schema.entries {
		v, err := e.decodeRaw(raws[i])
		if err != nil {
			errs = append(errs, VariableError{Name: e.Name(), Cause: err})
			continue
		}
		values[i] = v
	}
	if len(errs) > 0 {
		return Record{}, DecoderErrors{Errors: errs}
	}

	rec := Record{
		names:  schema.Names(),
		values: make(map[string]any, len(values)),
	}
	for i, name := range rec.names {
		rec.values[name] = values[i]
	}
	return rec, nil
}

// MustDecode is like [Decode] but panics if decoding fails.
func MustDecode(env Environment, schema Schema) Record {
	rec, err := Decode(env, schema)
	if err != nil {
		panic(err)
	}
	return rec
}

// DecodeInto decodes schema from env and unmarshals the resulting
// [Record] into a T. See [Record.Unmarshal] for how fields are matched.
func DecodeInto[T any](env Environment, schema Schema) (T, error) {
	var t T
	rec, err := Decode(env, schema)
	if err != nil {
		return t, err
	}
	err = rec.Unmarshal(&t)
	if err != nil {
		var zero T
		return zero, err
	}
	return t, nil
}
