// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

// File is a Source which reads a flat document from a file. The
// document format is chosen by the file extension.
type File struct {
	fs   fs.FS
	path string
}

// FromFile returns a Source for the file at path in fsys.
// The file is only opened once the source is applied.
func FromFile(fsys fs.FS, path string) File {
	return File{
		fs:   fsys,
		path: path,
	}
}

// UnsupportedFormatError occurs when a [File] has an extension
// which is not a known document format.
type UnsupportedFormatError struct {
	Path string
}

// Error implements the error interface.
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %s", e.Path)
}

// IsDocument reports whether name has the extension of a document
// format [File] can read, yaml, yml or json.
func IsDocument(name string) bool {
	_, ok := documentReader(name)
	return ok
}

func documentReader(name string) (func(io.Reader) Source, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return func(r io.Reader) Source { return FromYaml(r) }, true
	case ".json":
		return func(r io.Reader) Source { return FromJson(r) }, true
	}
	return nil, false
}

// Apply implements the Source interface.
func (src File) Apply(store Store) error {
	newSource, ok := documentReader(src.path)
	if !ok {
		return UnsupportedFormatError{Path: src.path}
	}

	f, err := src.fs.Open(src.path)
	if err != nil {
		return err
	}
	return newSource(f).Apply(store)
}
