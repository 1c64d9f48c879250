// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for
// TriVert applications.
package config

import (
	"log/slog"

	"cogentcore.org/trivert/base/errors"
	"cogentcore.org/trivert/base/reflectx"
	"cogentcore.org/trivert/logx"
	"cogentcore.org/trivert/math32"
	"cogentcore.org/trivert/system"
)

// Config is the main config struct that contains all of the
// configuration options for a TriVert application.
type Config struct {

	// the configuration options for logging
	Log LogConfig `toml:"log" yaml:"log"`

	// the configuration options for the main window
	Window WindowConfig `toml:"window" yaml:"window"`
}

// LogConfig contains the configuration options for logging.
type LogConfig struct {

	// the path of the log file; logging to a file is disabled if empty
	File string `toml:"file" yaml:"file" default:"trivert.log"`

	// the minimum level of messages shown on the console:
	// debug, info, warning or error
	Level string `toml:"level" yaml:"level" default:"info"`
}

// WindowConfig contains the configuration options for the main window.
type WindowConfig struct {

	// the name of the window driver to use
	Driver string `toml:"driver" yaml:"driver" default:"null"`

	// the title of the window
	Title string `toml:"title" yaml:"title" default:"TriVert"`

	// the initial position of the window
	Pos math32.Vector2 `toml:"pos" yaml:"pos"`

	// the initial size of the window
	Size math32.Vector2 `toml:"size" yaml:"size" default:"800,600"`
}

// New returns a new [Config] with all `default:` tag values applied.
// Errors are automatically logged in addition to being returned.
func New() (*Config, error) {
	c := &Config{}
	return c, SetFromDefaults(c)
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// Level returns the console log level named in the config.
func (c *Config) Level() (slog.Level, error) {
	return logx.ParseLevel(c.Log.Level)
}

// WindowOptions returns the options for creating the main window.
func (c *Config) WindowOptions() *system.NewWindowOptions {
	return &system.NewWindowOptions{
		Title:  c.Window.Title,
		Pos:    c.Window.Pos,
		Size:   c.Window.Size,
		Driver: c.Window.Driver,
	}
}
