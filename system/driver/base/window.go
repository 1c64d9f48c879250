// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base provides base implementations of [system] interfaces
// to be embedded by window drivers.
package base

import (
	"cogentcore.org/trivert/math32"
)

// Window contains the data and logic common to all implementations of
// [system.Window]: the cached position, size and title. Drivers embed it
// and add Driver, Initialize and Release, forwarding changes to the
// underlying system window as needed.
type Window struct {

	// Pos is the position of the window.
	Pos math32.Vector2 `label:"Position"`

	// Sz is the size of the window.
	Sz math32.Vector2 `label:"Size"`

	// Titl is the title of the window.
	Titl string `label:"Title"`
}

func (w *Window) Position() math32.Vector2 {
	return w.Pos
}

func (w *Window) SetPosition(pos math32.Vector2) {
	w.Pos = pos
}

func (w *Window) Size() math32.Vector2 {
	return w.Sz
}

func (w *Window) SetSize(size math32.Vector2) {
	w.Sz = size
}

func (w *Window) Geometry() math32.Rect {
	return math32.NewRect(w.Pos, w.Sz)
}

func (w *Window) Title() string {
	return w.Titl
}

func (w *Window) SetTitle(title string) {
	w.Titl = title
}
