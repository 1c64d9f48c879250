// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package null implements a window driver that does nothing. It is
// always available and is used as the fallback when other drivers fail.
package null

import (
	"cogentcore.org/trivert/system"
	"cogentcore.org/trivert/system/driver/base"
)

// Name is the name the driver is registered under.
const Name = system.FallbackDriver

// Init registers the null driver with [system.RegisterDriver].
func Init() {
	system.RegisterDriver(Name, func() system.Window { return &Window{} })
}

// Window is the implementation of [system.Window] for the null driver.
// It stores its position, size and title but has no system window.
type Window struct {
	base.Window

	// Initialized is whether Initialize has been called since the last Release.
	Initialized bool
}

var _ system.Window = &Window{}

func (w *Window) Driver() string {
	return Name
}

// Initialize always succeeds.
func (w *Window) Initialize() error {
	w.Initialized = true
	return nil
}

func (w *Window) Release() {
	w.Initialized = false
}
