// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/trivert/math32"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestNew(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, "trivert.log", c.Log.File)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "null", c.Window.Driver)
	assert.Equal(t, "TriVert", c.Window.Title)
	assert.Equal(t, math32.Vector2{}, c.Window.Pos)
	assert.Equal(t, math32.Vec2(800, 600), c.Window.Size)

	l, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)
}

func TestOpenTOML(t *testing.T) {
	path := writeFile(t, "trivert.toml", `
[log]
level = "debug"

[window]
title = "Demo"
pos = { x = 10.0, y = 10.0 }
`)
	c, err := New()
	require.NoError(t, err)
	require.NoError(t, Open(c, path))

	assert.Equal(t, "trivert.log", c.Log.File)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "Demo", c.Window.Title)
	assert.Equal(t, "10, 10, 800, 600", math32.NewRect(c.Window.Pos, c.Window.Size).String())

	l, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
}

func TestOpenYAML(t *testing.T) {
	path := writeFile(t, "trivert.yml", `
log:
  file: game.log
window:
  driver: desktop
  size:
    x: 1280
    y: 720
`)
	c, err := New()
	require.NoError(t, err)
	require.NoError(t, Open(c, path))

	assert.Equal(t, "game.log", c.Log.File)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "desktop", c.Window.Driver)
	assert.Equal(t, math32.Vec2(1280, 720), c.Window.Size)

	empty := writeFile(t, "empty.yaml", "")
	assert.NoError(t, Open(c, empty))
}

func TestOpenErrors(t *testing.T) {
	c := &Config{}
	assert.ErrorContains(t, Open(c, writeFile(t, "c.json", "{}")), `unsupported config file format ".json"`)
	assert.ErrorContains(t, Open(c, writeFile(t, "c.toml", "[window]\ncolor = 'red'\n")), "c.toml")
	assert.ErrorContains(t, Open(c, writeFile(t, "c.yaml", "window:\n  color: red\n")), "c.yaml")
	assert.Error(t, Open(c, filepath.Join(t.TempDir(), "missing.toml")))

	c.Log.Level = "loud"
	_, err := c.Level()
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	for _, name := range []string{"out.toml", "out.yaml"} {
		t.Run(name, func(t *testing.T) {
			c, err := New()
			require.NoError(t, err)
			c.Window.Title = "Saved"
			c.Window.Pos = math32.Vec2(3, 4)
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(c, path))

			o := &Config{}
			require.NoError(t, Open(o, path))
			assert.Equal(t, c, o)
		})
	}
	assert.Error(t, Save(&Config{}, filepath.Join(t.TempDir(), "out.ini")))
}

func TestWindowOptions(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	c.Window.Pos = math32.Vec2(10, 10)
	o := c.WindowOptions()
	assert.Equal(t, "TriVert", o.Title)
	assert.Equal(t, "null", o.Driver)
	assert.Equal(t, math32.Vec2(10, 10), o.Pos)
	assert.Equal(t, math32.Vec2(800, 600), o.Size)
}

func TestOpenHomeDir(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := New()
	require.NoError(t, err)
	c.Window.Title = "Home"
	require.NoError(t, Save(c, "~/trivert.toml"))
	assert.FileExists(t, filepath.Join(home, "trivert.toml"))

	o := &Config{}
	require.NoError(t, Open(o, "~/trivert.toml"))
	assert.Equal(t, "Home", o.Window.Title)
}
