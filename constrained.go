// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envdecoder

import (
	"math"
	"slices"
	"strconv"
)

// Literal returns a Decoder which only accepts the exact string value.
func Literal(value string) Decoder[string] {
	return Then(String, func(s string) (string, error) {
		if s == value {
			return s, nil
		}
		return "", NotAllowedError{
			Noun:    "literal",
			Allowed: []string{value},
			Got:     s,
			Literal: true,
		}
	})
}

// StringUnion returns a Decoder which only accepts one of the allowed strings.
// Matching is exact and case-sensitive.
func StringUnion(allowed ...string) Decoder[string] {
	return oneOf(String, "strings", func(s string) string { return s }, allowed)
}

// NumberUnion returns a Decoder which only accepts one of the allowed numbers.
// Values which are not numbers at all fail with a [NotCastableError].
func NumberUnion(allowed ...float64) Decoder[float64] {
	return oneOf(Number, "numbers", formatNumber, allowed)
}

func oneOf[T comparable](d Decoder[T], noun string, format func(T) string, allowed []T) Decoder[T] {
	allowed = slices.Clone(allowed)

	return Then(d, func(v T) (T, error) {
		if slices.Contains(allowed, v) {
			return v, nil
		}

		ss := make([]string, len(allowed))
		for i, a := range allowed {
			ss[i] = format(a)
		}
		var zero T
		return zero, NotAllowedError{
			Noun:    noun,
			Allowed: ss,
			Got:     format(v),
		}
	})
}

// formatNumber prints f in its shortest decimal form, switching to
// exponent notation only for very large or very small magnitudes.
func formatNumber(f float64) string {
	abs := math.Abs(f)
	if abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
