// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package maskslog provides a slog.Handler which hides the values of secret attributes.
package maskslog

import (
	"context"
	"log/slog"
)

// Mask is the value secret attributes are replaced with.
const Mask = "****"

// Handler is an slog.Handler which replaces the value of every
// attribute whose key is registered as secret with [Mask].
// Attributes nested in groups are masked as well.
type Handler struct {
	slog    slog.Handler
	secrets map[string]struct{}
}

// NewHandler returns a new Handler masking the given keys.
func NewHandler(h slog.Handler, keys ...string) *Handler {
	secrets := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		secrets[k] = struct{}{}
	}
	return &Handler{
		slog:    h,
		secrets: secrets,
	}
}

// Enabled implements the slog.Handler interface.
func (h *Handler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.slog.Enabled(ctx, lvl)
}

// Handle implements the slog.Handler interface.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if len(h.secrets) == 0 {
		return h.slog.Handle(ctx, record)
	}

	attrs := make([]slog.Attr, 0, record.NumAttrs())
	record.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.mask(a))
		return true
	})

	nr := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	nr.AddAttrs(attrs...)
	return h.slog.Handle(ctx, nr)
}

// WithAttrs implements the slog.Handler interface.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = h.mask(a)
	}
	return &Handler{
		slog:    h.slog.WithAttrs(masked),
		secrets: h.secrets,
	}
}

// WithGroup implements the slog.Handler interface.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		slog:    h.slog.WithGroup(name),
		secrets: h.secrets,
	}
}

func (h *Handler) mask(a slog.Attr) slog.Attr {
	if _, secret := h.secrets[a.Key]; secret {
		return slog.String(a.Key, Mask)
	}

	v := a.Value.Resolve()
	if v.Kind() != slog.KindGroup {
		return a
	}

	group := v.Group()
	masked := make([]any, len(group))
	for i, ga := range group {
		masked[i] = h.mask(ga)
	}
	return slog.Group(a.Key, masked...)
}
