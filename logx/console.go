// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// ConsoleHandler is a [slog.Handler] that prints messages at or above
// [UserLevel] to a terminal, with the level name colored by severity.
type ConsoleHandler struct {
	attrState
	mu  *sync.Mutex
	out *termenv.Output
}

// NewConsoleHandler returns a new [ConsoleHandler] writing to w.
// The color profile is detected from w unless given in opts.
func NewConsoleHandler(w io.Writer, opts ...termenv.OutputOption) *ConsoleHandler {
	return &ConsoleHandler{mu: &sync.Mutex{}, out: termenv.NewOutput(w, opts...)}
}

// SetDefaultLogger sets the default [slog] logger to one that uses
// a [ConsoleHandler] on [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewConsoleHandler(os.Stderr)))
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return levelEnabled(level) && level >= UserLevel
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	name := h.out.String(LevelName(r.Level)).Foreground(levelColor(r.Level))
	if r.Level >= slog.LevelError {
		name = name.Bold()
	}
	line := name.String() + " " + h.format(r) + "\n"
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, line)
	return err
}

func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ConsoleHandler{attrState: h.withAttrs(attrs), mu: h.mu, out: h.out}
}

func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	return &ConsoleHandler{attrState: h.withGroup(name), mu: h.mu, out: h.out}
}

func levelColor(level slog.Level) termenv.Color {
	switch {
	case level < slog.LevelInfo:
		return termenv.ANSIBrightBlack
	case level < slog.LevelWarn:
		return termenv.ANSICyan
	case level < slog.LevelError:
		return termenv.ANSIYellow
	default:
		return termenv.ANSIRed
	}
}
