// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"
)

const (
	beginMarker = "---BEGIN LOG---\n\n"
	endMarker   = "\n---END LOG---\n"
)

// Logger is a buffered, append-only file log. Messages are only written
// between [Logger.BeginLog] and [Logger.EndLog], one line each:
//
//	INFO    (Mon Jan  2 15:04:05 2006) message
//
// A Logger never reports I/O errors to its caller. If the log file cannot
// be created, the Logger is disabled and every method is a no-op.
// It is safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	file    *os.File
	buf     *bufio.Writer
	logging bool

	// now returns the timestamp for messages without one.
	now func() time.Time
}

// NewLogger returns a new [Logger] writing to the file at the given path,
// which is created or truncated. On failure a warning is printed to
// standard output and the returned Logger is disabled.
func NewLogger(path string) *Logger {
	f, err := os.Create(path)
	if err != nil {
		fmt.Println("WARNING: Log file could not be created\n         Logging has been disabled")
		return &Logger{now: time.Now}
	}
	return &Logger{file: f, buf: bufio.NewWriter(f), now: time.Now}
}

// IsEnabled returns whether the logger has an open log file.
func (l *Logger) IsEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf != nil
}

// IsLogging returns whether the logger is between BeginLog and EndLog.
func (l *Logger) IsLogging() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf != nil && l.logging
}

// BeginLog writes the begin marker and starts logging messages.
func (l *Logger) BeginLog() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.buf == nil {
		return
	}
	l.logging = true
	l.buf.WriteString(beginMarker)
}

// EndLog writes the end marker and stops logging messages.
func (l *Logger) EndLog() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.buf == nil {
		return
	}
	l.logging = false
	l.buf.WriteString(endMarker)
}

// Log writes the message at the given level. Debug messages are
// dropped in release builds.
func (l *Logger) Log(level slog.Level, msg string) {
	l.write(level, time.Time{}, msg)
}

// Debug logs msg at [slog.LevelDebug].
func (l *Logger) Debug(msg string) { l.Log(slog.LevelDebug, msg) }

// Info logs msg at [slog.LevelInfo].
func (l *Logger) Info(msg string) { l.Log(slog.LevelInfo, msg) }

// Warn logs msg at [slog.LevelWarn].
func (l *Logger) Warn(msg string) { l.Log(slog.LevelWarn, msg) }

// Error logs msg at [slog.LevelError].
func (l *Logger) Error(msg string) { l.Log(slog.LevelError, msg) }

// Flush writes any buffered data to the log file.
func (l *Logger) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.buf != nil {
		l.buf.Flush()
	}
}

// Close flushes and closes the log file. The logger is disabled afterward.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.buf == nil {
		return
	}
	l.buf.Flush()
	l.file.Close()
	l.buf = nil
	l.file = nil
	l.logging = false
}

// Handler returns a [slog.Handler] that writes records through this logger,
// with any attributes appended to the message as key=value.
func (l *Logger) Handler() slog.Handler {
	return &fileHandler{l: l}
}

func (l *Logger) write(level slog.Level, t time.Time, msg string) {
	if !levelEnabled(level) {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.buf == nil || !l.logging {
		return
	}
	if t.IsZero() {
		t = l.now()
	}
	fmt.Fprintf(l.buf, "%-7s (%s) %s\n", LevelName(level), t.Format(time.ANSIC), msg)
}

// fileHandler adapts a [Logger] to [slog.Handler].
type fileHandler struct {
	attrState
	l *Logger
}

func (h *fileHandler) Enabled(_ context.Context, level slog.Level) bool {
	return levelEnabled(level) && h.l.IsLogging()
}

func (h *fileHandler) Handle(_ context.Context, r slog.Record) error {
	h.l.write(r.Level, r.Time, h.format(r))
	return nil
}

func (h *fileHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &fileHandler{attrState: h.withAttrs(attrs), l: h.l}
}

func (h *fileHandler) WithGroup(name string) slog.Handler {
	return &fileHandler{attrState: h.withGroup(name), l: h.l}
}
