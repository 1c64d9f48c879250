// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Rect is a rectangle defined by a position and a size,
// as used for window geometry. A negative size is allowed.
type Rect struct {
	Pos  Vector2
	Size Vector2
}

// NewRect returns a new [Rect] with the given position and size.
func NewRect(pos, size Vector2) Rect {
	return Rect{Pos: pos, Size: size}
}

// IsEqual returns if this rect has exactly the same position and size as other.
func (r Rect) IsEqual(other Rect) bool {
	return r.Pos.IsEqual(other.Pos) && r.Size.IsEqual(other.Size)
}

// String returns the rect as "pos, size", for example "10, 10, 800, 600".
func (r Rect) String() string {
	return r.Pos.String() + ", " + r.Size.String()
}
