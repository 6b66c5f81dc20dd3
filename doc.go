// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package envdecoder decodes a flat environment of string values into typed values
// described by a schema.
//
// # Decoders
//
// A [Decoder] validates and coerces one raw value. The package provides [String],
// [Number], [Boolean] and [Duration] along with the constrained decoders [Literal],
// [StringUnion] and [NumberUnion]. Any decoder can be given a default:
//
//	mode := envdecoder.StringUnion("dev", "prod").WithDefault("dev")
//
// A decoder with a default returns it for absent or empty values without
// validating anything. Present values are still validated.
//
// Custom decoders are usually built by refining an existing one with [Then]:
//
//	port := envdecoder.Then(envdecoder.String, func(s string) (int, error) {
//	    return strconv.Atoi(s)
//	})
//
// # Schemas
//
// A [Schema] is an ordered set of [Variable]s. Decoding a schema either returns a
// [Record] containing every variable or a single error describing every problem:
//
//	var (
//	    port = envdecoder.Var("PORT", envdecoder.Number.WithDefault(8080))
//	    mode = envdecoder.Var("MODE", envdecoder.StringUnion("dev", "prod"))
//	)
//
//	rec, err := envdecoder.Decode(env, envdecoder.MustSchema(port, mode))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(port.Get(rec), mode.Get(rec))
//
// # Typing
//
// The type of a decoded value is determined by the decoder its [Variable] was
// declared with, so [Variable.Get] is checked at compile time. Unmarshaling a
// [Record] into a struct with [Record.Unmarshal] or [DecodeInto] can only be
// checked at runtime: the struct must have exactly one field per variable.
//
// # Errors
//
// Failures are reported in two phases. If any variable without a default is
// absent a [MissingVariablesError] is returned and nothing is decoded. Otherwise
// all decoding failures are returned together as [DecoderErrors], whose entries
// wrap a [TypeMismatchError], [NotCastableError] or [NotAllowedError].
package envdecoder
