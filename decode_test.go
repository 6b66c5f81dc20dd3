// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envdecoder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		testCases := []struct {
			name        string
			env         Map
			schema      Schema
			expectedErr string
		}{
			{
				name: "if a value is not part of a string union",
				env:  Map{"BEER": "Coca Cola"},
				schema: MustSchema(
					Var("BEER", StringUnion("Budweiser", "Heineken", "Corona")),
				),
				expectedErr: "Decoder errors: \nBEER: allowed strings are Budweiser, Heineken, Corona, got Coca Cola",
			},
			{
				name: "if a value is not part of a number union",
				env:  Map{"WORLD_WAR": "3"},
				schema: MustSchema(
					Var("WORLD_WAR", NumberUnion(1, 2)),
				),
				expectedErr: "Decoder errors: \nWORLD_WAR: allowed numbers are 1, 2, got 3",
			},
			{
				name: "if variables are missing",
				env:  Map{},
				schema: MustSchema(
					Var("GAME", String),
					Var("MOVIE", StringUnion("Batman Begins", "Inception")),
					Var("AGE", Number),
					Var("YEAR", NumberUnion(1994, 2023)),
					Var("IS_COOL", Boolean),
				),
				expectedErr: "Missing environment variables: \nGAME\nMOVIE\nAGE\nYEAR\nIS_COOL",
			},
			{
				name: "if values can not be cast to numbers",
				env: Map{
					"AGE":  "not a number",
					"YEAR": "not a number",
				},
				schema: MustSchema(
					Var("AGE", Number),
					Var("YEAR", NumberUnion(1994, 2023)),
				),
				expectedErr: "Decoder errors: \nAGE: value \"not a number\" cannot be cast to number\nYEAR: value \"not a number\" cannot be cast to number",
			},
			{
				name: "if a value is not a valid boolean",
				env:  Map{"IS_COOL": "not valid"},
				schema: MustSchema(
					Var("IS_COOL", Boolean),
				),
				expectedErr: "Decoder errors: \nIS_COOL: value \"not valid\" cannot be cast to boolean",
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				rec, err := Decode(tc.env, tc.schema)
				require.EqualError(t, err, tc.expectedErr)
				require.Zero(t, rec.Len())
			})
		}
	})

	t.Run("will not return an error", func(t *testing.T) {
		t.Run("if a value is part of a string union", func(t *testing.T) {
			_, err := Decode(
				Map{"BEER": "Budweiser"},
				MustSchema(Var("BEER", StringUnion("Budweiser", "Heineken", "Corona"))),
			)
			require.NoError(t, err)
		})

		t.Run("if a value is part of a number union", func(t *testing.T) {
			worldWar := Var("WORLD_WAR", NumberUnion(1, 2))

			rec, err := Decode(Map{"WORLD_WAR": "1"}, MustSchema(worldWar))
			require.NoError(t, err)
			require.Equal(t, float64(1), worldWar.Get(rec))
		})
	})

	t.Run("will use defaults", func(t *testing.T) {
		var (
			game   = Var("GAME", String.WithDefault("Diablo"))
			movie  = Var("MOVIE", StringUnion("Batman Begins", "Inception").WithDefault("Inception"))
			age    = Var("AGE", Number.WithDefault(1))
			year   = Var("YEAR", NumberUnion(1994, 2023).WithDefault(1994))
			isCool = Var("IS_COOL", Boolean.WithDefault(true))
		)

		rec, err := Decode(Map{}, MustSchema(game, movie, age, year, isCool))
		require.NoError(t, err)

		assert.Equal(t, "Diablo", game.Get(rec))
		assert.Equal(t, "Inception", movie.Get(rec))
		assert.Equal(t, float64(1), age.Get(rec))
		assert.Equal(t, float64(1994), year.Get(rec))
		assert.Equal(t, true, isCool.Get(rec))
	})

	t.Run("will use defaults for empty values", func(t *testing.T) {
		port := Var("PORT", Number.WithDefault(8080))

		rec, err := Decode(Map{"PORT": ""}, MustSchema(port))
		require.NoError(t, err)
		require.Equal(t, float64(8080), port.Get(rec))
	})
}

func TestDecode_MissingVariablesHidesDecoderErrors(t *testing.T) {
	schema := MustSchema(
		Var("AGE", Number),
		Var("HOST", String),
		Var("DEBUG", Boolean),
	)

	_, err := Decode(Map{"AGE": "not a number"}, schema)

	var merr MissingVariablesError
	require.ErrorAs(t, err, &merr)
	require.Equal(t, []string{"HOST", "DEBUG"}, merr.Names)

	var derr DecoderErrors
	require.False(t, errors.As(err, &derr))
}

func TestDecode_DoesNotDecodeMissingVariables(t *testing.T) {
	var calls int
	counting := New(func(v any) (string, error) {
		calls++
		return "x", nil
	})

	_, err := Decode(Map{}, MustSchema(
		Var("A", counting),
		Var("B", String),
	))

	var merr MissingVariablesError
	require.ErrorAs(t, err, &merr)
	require.Zero(t, calls)
}

func TestDecode_DecodesEachVariableOnce(t *testing.T) {
	var calls int
	counting := New(func(v any) (string, error) {
		calls++
		return v.(string), nil
	})

	_, err := Decode(Map{"A": "a"}, MustSchema(Var("A", counting)))
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestDecode_CollectsEveryDecoderError(t *testing.T) {
	schema := MustSchema(
		Var("PORT", Number),
		Var("HOST", String),
		Var("MODE", StringUnion("dev", "prod")),
		Var("DEBUG", Boolean),
	)

	_, err := Decode(Map{
		"PORT":  "eighty",
		"HOST":  "localhost",
		"MODE":  "staging",
		"DEBUG": "yes",
	}, schema)

	var derr DecoderErrors
	require.ErrorAs(t, err, &derr)
	require.Len(t, derr.Errors, 3)
	require.Equal(t, "PORT", derr.Errors[0].Name)
	require.Equal(t, "MODE", derr.Errors[1].Name)
	require.Equal(t, "DEBUG", derr.Errors[2].Name)

	var nerr NotAllowedError
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, "staging", nerr.Got)
}

func TestDecode_RecordMirrorsSchema(t *testing.T) {
	schema := MustSchema(
		Var("USER", String),
		Var("WHAT", String),
		Var("WHY", Number),
		Var("FAIL", Boolean),
		Var("UNSET", String.WithDefault("fallback")),
	)

	rec, err := Decode(Map{
		"USER":  "alice",
		"WHAT":  "123",
		"WHY":   "123",
		"FAIL":  "false",
		"EXTRA": "ignored",
	}, schema)
	require.NoError(t, err)

	require.Equal(t, schema.Names(), rec.Names())
	require.Equal(t, map[string]any{
		"USER":  "alice",
		"WHAT":  "123",
		"WHY":   float64(123),
		"FAIL":  false,
		"UNSET": "fallback",
	}, rec.Map())
}

func TestMustDecode(t *testing.T) {
	t.Run("will panic", func(t *testing.T) {
		t.Run("if decoding fails", func(t *testing.T) {
			require.Panics(t, func() {
				MustDecode(Map{}, MustSchema(Var("A", String)))
			})
		})
	})

	t.Run("will return the record", func(t *testing.T) {
		a := Var("A", String)
		rec := MustDecode(Map{"A": "b"}, MustSchema(a))
		require.Equal(t, "b", a.Get(rec))
	})
}

func TestNewSchema(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if a variable is declared twice", func(t *testing.T) {
			_, err := NewSchema(Var("A", String), Var("A", Number))

			var derr DuplicateVariableError
			require.ErrorAs(t, err, &derr)
			require.Equal(t, "A", derr.Name)
		})

		t.Run("if a variable has no name", func(t *testing.T) {
			_, err := NewSchema(Var("A", String), Var("", Number))

			var eerr EmptyNameError
			require.ErrorAs(t, err, &eerr)
			require.Equal(t, 1, eerr.Index)
		})
	})

	t.Run("will keep declaration order", func(t *testing.T) {
		s, err := NewSchema(Var("Z", String), Var("A", String), Var("M", String))
		require.NoError(t, err)
		require.Equal(t, []string{"Z", "A", "M"}, s.Names())
		require.Equal(t, 3, s.Len())
	})
}

func TestVariable_Lookup(t *testing.T) {
	a := Var("A", String)
	rec := MustDecode(Map{"A": "x"}, MustSchema(a))

	t.Run("will find variables of the schema", func(t *testing.T) {
		v, ok := a.Lookup(rec)
		require.True(t, ok)
		require.Equal(t, "x", v)
	})

	t.Run("will not find variables of other schemas", func(t *testing.T) {
		v, ok := Var("B", Number).Lookup(rec)
		require.False(t, ok)
		require.Zero(t, v)
	})

	t.Run("will not convert between types", func(t *testing.T) {
		_, ok := Var("A", Number).Lookup(rec)
		require.False(t, ok)
	})
}
