// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	envdecoder "github.com/MarcoDaniels/environment-decoder"
	"github.com/MarcoDaniels/environment-decoder/internal/maskslog"
	"github.com/MarcoDaniels/environment-decoder/schemafile"
	"github.com/MarcoDaniels/environment-decoder/source"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type checkOptions struct {
	environ   func() []string
	schema    string
	sources   []string
	prefix    string
	logFormat string
}

func newCheckCommand(environ func() []string) *cobra.Command {
	opts := &checkOptions{
		environ: environ,
	}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Decode the environment and report every problem",
		Long: `check decodes the environment against the schema file. Files passed with
--source are applied first, in order, and the process environment overrides them.
YAML and JSON files are read as flat documents, any other format supported by
viper (toml, dotenv, properties, ...) is read through viper.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.schema, "schema", "s", "", "path to the schema file")
	flags.StringSliceVar(&opts.sources, "source", nil, "additional files providing variables")
	flags.StringVar(&opts.prefix, "prefix", "", "only read environment variables with this prefix and strip it")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log output format, text or json")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

func (o *checkOptions) run(out io.Writer) error {
	schema, err := os.Open(o.schema)
	if err != nil {
		return err
	}
	f, err := schemafile.Parse(schema)
	if err != nil {
		return err
	}

	logger, err := newLogger(out, o.logFormat, f.Secrets)
	if err != nil {
		return err
	}

	srcs := make([]source.Source, 0, len(o.sources)+1)
	for _, path := range o.sources {
		src, err := fileSource(path)
		if err != nil {
			logger.Error("failed to configure source", slog.String("path", path), slog.Any("error", err))
			return loggedError{err: err}
		}
		srcs = append(srcs, src)
	}
	srcs = append(srcs, source.FromEnv(source.Prefix(o.prefix), source.Environ(o.environ)))

	env, err := source.Read(srcs...)
	if err != nil {
		logger.Error("failed to read sources", slog.Any("error", err))
		return loggedError{err: err}
	}

	rec, err := envdecoder.Decode(env, f.Schema)
	if err != nil {
		logger.Error("failed to decode environment", decodeErrorAttr(err))
		return loggedError{err: err}
	}

	attrs := make([]any, 0, rec.Len())
	for _, name := range rec.Names() {
		v, _ := rec.Lookup(name)
		attrs = append(attrs, slog.Any(name, v))
	}
	logger.Info("decoded environment", slog.Group("env", attrs...))
	return nil
}

// decodeErrorAttr keys every variable error by its variable name so
// the causes of secret variables are masked like their values.
func decodeErrorAttr(err error) slog.Attr {
	var merr envdecoder.MissingVariablesError
	if errors.As(err, &merr) {
		return slog.Any("missing", merr.Names)
	}

	var derr envdecoder.DecoderErrors
	if !errors.As(err, &derr) {
		return slog.Any("error", err)
	}
	attrs := make([]any, len(derr.Errors))
	for i, verr := range derr.Errors {
		attrs[i] = slog.String(verr.Name, verr.Cause.Error())
	}
	return slog.Group("errors", attrs...)
}

// loggedError wraps errors which have already been written to the log.
type loggedError struct {
	err error
}

func (e loggedError) Error() string {
	return e.err.Error()
}

func (e loggedError) Unwrap() error {
	return e.err
}

// UnknownLogFormatError occurs when --log-format is neither text nor json.
type UnknownLogFormatError struct {
	Format string
}

// Error implements the error interface.
func (e UnknownLogFormatError) Error() string {
	return fmt.Sprintf("unknown log format: %s", e.Format)
}

func newLogger(out io.Writer, format string, secrets []string) (*slog.Logger, error) {
	var h slog.Handler
	switch format {
	case "text":
		h = slog.NewTextHandler(out, nil)
	case "json":
		h = slog.NewJSONHandler(out, nil)
	default:
		return nil, UnknownLogFormatError{Format: format}
	}
	return slog.New(maskslog.NewHandler(h, secrets...)), nil
}

func fileSource(path string) (source.Source, error) {
	if source.IsDocument(path) {
		return source.FromFile(os.DirFS(filepath.Dir(path)), filepath.Base(path)), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}
	return source.FromViper(v), nil
}
