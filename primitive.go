// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envdecoder

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// String accepts any string as is.
var String = New(decodeString)

// Number decodes numbers. Already numeric values are returned as a float64,
// strings are parsed after trimming surrounding whitespace.
var Number = New(decodeNumber)

// Boolean decodes "1" and "true" to true and "0" and "false" to false.
// Already boolean values are returned as is.
var Boolean = New(decodeBoolean)

// Duration decodes strings accepted by [time.ParseDuration]. Integers
// are read as nanoseconds.
var Duration = New(decodeDuration)

func decodeString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", TypeMismatchError{Value: v, Expected: "string"}
	}
	return s, nil
}

func decodeNumber(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case json.Number:
		v = string(x)
	}

	s, err := decodeString(v)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, NotCastableError{Value: s, Target: "number", Cause: err}
	}
	if math.IsNaN(f) {
		return 0, NotCastableError{Value: s, Target: "number"}
	}
	return f, nil
}

func decodeBoolean(v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}

	s, err := decodeString(v)
	if err != nil {
		return false, err
	}

	switch s {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	default:
		return false, NotCastableError{Value: s, Target: "boolean"}
	}
}

func decodeDuration(v any) (time.Duration, error) {
	switch x := v.(type) {
	case time.Duration:
		return x, nil
	case int:
		return time.Duration(x), nil
	case int64:
		return time.Duration(x), nil
	}

	s, err := decodeString(v)
	if err != nil {
		return 0, err
	}

	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, NotCastableError{Value: s, Target: "duration", Cause: err}
	}
	return d, nil
}
