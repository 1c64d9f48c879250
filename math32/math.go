// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and scalar math package
// for 2D & 3D game geometry.
package math32

import (
	"cmp"

	"github.com/chewxy/math32"
)

// Mathematical constants. These are the single-precision values
// the engine has always used, not the full-precision [math.Pi].
const (
	Pi     float32 = 3.141592
	HalfPi float32 = 1.570796
)

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor float32 = 0.017453

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor float32 = 57.295779
)

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// IsNaN reports whether f is an IEEE 754 “not-a-number” value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// Clamp clamps x to the provided closed interval [a, b].
// The result is unspecified if a > b.
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Min returns the smaller of a or b using a strict comparison.
// When the two compare equal (or either is NaN), b is returned.
//
// Note that this differs from the built-in function min for NaN and
// signed zero inputs.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a or b using a strict comparison.
// When the two compare equal (or either is NaN), b is returned.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Lerp returns the linear interpolation between start and stop
// in proportion to amount, which is clamped to [0, 1].
func Lerp(start, stop, amount float32) float32 {
	return start + (stop-start)*Clamp(amount, 0, 1)
}

// LerpUnclamped returns the linear interpolation between start and stop
// in proportion to amount, which may extrapolate outside of [0, 1].
func LerpUnclamped(start, stop, amount float32) float32 {
	return start + (stop-start)*amount
}
