// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Open reads the given config object from the given file, using
// the file extension to select the format: TOML (.toml) or YAML
// (.yaml, .yml). A leading ~ in the file name is expanded to the home
// directory. Fields that are not in the file keep their values,
// so defaults should be set first.
func Open(cfg any, file string) error {
	file, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	switch formatOf(file) {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(cfg)
	case ".yaml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return fmt.Errorf("config.Open: unsupported config file format %q", filepath.Ext(file))
	}
	if err != nil {
		return fmt.Errorf("config.Open: %s: %w", file, err)
	}
	return nil
}

// Save writes the given config object to the given file, using the
// file extension to select the format as in [Open].
func Save(cfg any, file string) error {
	file, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	var b []byte
	switch formatOf(file) {
	case ".toml":
		b, err = toml.Marshal(cfg)
	case ".yaml":
		b, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("config.Save: unsupported config file format %q", filepath.Ext(file))
	}
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return os.WriteFile(file, b, 0666)
}

func formatOf(file string) string {
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".yml":
		return ".yaml"
	default:
		return ext
	}
}
