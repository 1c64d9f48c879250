// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import "cogentcore.org/trivert/math32"

const (
	// DefaultTitle is the window title used when none is given.
	DefaultTitle = "TriVert"

	// FallbackDriver is the driver used when the requested one is
	// unavailable or fails to initialize.
	FallbackDriver = "null"
)

// DefaultSize is the window size used when none is given.
var DefaultSize = math32.Vec2(800, 600)

// NewWindowOptions are options for [NewWindow].
type NewWindowOptions struct {

	// Title is the initial window title.
	Title string

	// Pos is the initial window position.
	Pos math32.Vector2

	// Size is the initial window size.
	Size math32.Vector2

	// Driver is the name of the driver to use; [FallbackDriver] if empty.
	Driver string
}

// Fixup fills in defaults for unset options. An empty Title, a zero
// Size and an empty Driver count as unset, so a window cannot be
// requested with a size of exactly (0, 0); sizes with only one zero
// component, or negative ones, are kept as given.
func (o *NewWindowOptions) Fixup() {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Size == (math32.Vector2{}) {
		o.Size = DefaultSize
	}
	if o.Driver == "" {
		o.Driver = FallbackDriver
	}
}
