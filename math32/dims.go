// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "strconv"

// Dims is a list of vector dimension (component) names,
// used to index into vectors.
type Dims int32

const (
	X Dims = iota
	Y
	Z
)

// String returns the lowercase component name of the dimension,
// or its integer value if it does not name a component.
func (d Dims) String() string {
	switch d {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return "Dims(" + strconv.Itoa(int(d)) + ")"
}

func dimPanic(typ string, dim Dims) {
	panic("math32: index out of range for " + typ + ": " + strconv.Itoa(int(dim)))
}
