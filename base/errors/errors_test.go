// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(old) })
	return &buf
}

func TestLog(t *testing.T) {
	logs := captureLogs(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, logs.String())

	err := New("bad config")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, logs.String(), "bad config | ")
	assert.Contains(t, logs.String(), "errors_test.go:")
}

func TestLog1(t *testing.T) {
	logs := captureLogs(t)
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(3, New("nope")))
	assert.Contains(t, logs.String(), "nope")
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("fatal")) })
}
