// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system provides a cross-platform window interface that is
// implemented by swappable window drivers, selected by name when a
// window is created.
package system

import (
	"cogentcore.org/trivert/math32"
)

// Window is a top-level window, as provided by a window driver.
// Only [Window.Initialize] can fail; the other methods are infallible,
// but callers should not use a window before it has been initialized.
type Window interface {

	// Driver returns the name of the driver that created the window.
	Driver() string

	// Position returns the current position of the window.
	Position() math32.Vector2

	// SetPosition sets the position of the window.
	SetPosition(pos math32.Vector2)

	// Size returns the current size of the window.
	Size() math32.Vector2

	// SetSize sets the size of the window.
	SetSize(size math32.Vector2)

	// Geometry returns the position and size of the window as a [math32.Rect].
	Geometry() math32.Rect

	// Title returns the current title of the window.
	Title() string

	// SetTitle sets the title of the window.
	SetTitle(title string)

	// Initialize creates the underlying system window. A failure is
	// reported as an [*InitError].
	Initialize() error

	// Release releases the underlying system window. It may be called
	// more than once.
	Release()
}

// InitError is returned by [Window.Initialize] when a driver fails
// to create its window.
type InitError struct {

	// Driver is the name of the driver that failed.
	Driver string

	// Msg is a human-readable description of the failure.
	Msg string
}

func (e *InitError) Error() string {
	return "system: initializing " + e.Driver + " window: " + e.Msg
}
