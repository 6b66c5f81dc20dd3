// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MarcoDaniels/environment-decoder/internal/try"
)

// Json represents a Source where its underlying format is a flat JSON object.
type Json struct {
	r io.Reader
}

// FromJson returns a source which will apply its values
// from the JSON object parsed from the given io.Reader.
// Numbers are kept as json.Number.
func FromJson(r io.Reader) Json {
	return Json{r: r}
}

// InvalidJsonError occurs if the underlying io.Reader contains invalid JSON.
type InvalidJsonError struct {
	Cause error
}

// Error implements the error interface.
func (e InvalidJsonError) Error() string {
	return fmt.Sprintf("invalid json: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidJsonError) Unwrap() error {
	return e.Cause
}

// Apply implements the Source interface.
func (src Json) Apply(store Store) (err error) {
	defer try.Close(&err, src.r)

	dec := json.NewDecoder(src.r)
	dec.UseNumber()

	m := make(map[string]any)
	err = dec.Decode(&m)
	if err != nil {
		return InvalidJsonError{Cause: err}
	}
	return applyFlat(m, store)
}
