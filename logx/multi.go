// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler is a [slog.Handler] that sends each record to all of
// its handlers that are enabled for the record's level.
type MultiHandler []slog.Handler

// NewMultiHandler returns a [MultiHandler] for the given handlers.
func NewMultiHandler(handlers ...slog.Handler) MultiHandler {
	return MultiHandler(handlers)
}

func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	n := make(MultiHandler, len(m))
	for i, h := range m {
		n[i] = h.WithAttrs(attrs)
	}
	return n
}

func (m MultiHandler) WithGroup(name string) slog.Handler {
	n := make(MultiHandler, len(m))
	for i, h := range m {
		n[i] = h.WithGroup(name)
	}
	return n
}
