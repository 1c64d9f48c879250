// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"math"
	"testing"

	"cogentcore.org/trivert/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-6)

func tolAssertEqualVector(t *testing.T, vt, va Vector2, tols ...float32) {
	t.Helper()
	tol := standardTol
	if len(tols) == 1 {
		tol = tols[0]
	}
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
}

func tolAssertEqualVector3(t *testing.T, vt, va Vector3, tols ...float32) {
	t.Helper()
	tol := standardTol
	if len(tols) == 1 {
		tol = tols[0]
	}
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func TestConstants(t *testing.T) {
	assert.Equal(t, float32(3.141592), Pi)
	assert.Equal(t, float32(1.570796), HalfPi)
	assert.Equal(t, float32(0.017453), DegToRadFactor)
	assert.Equal(t, float32(57.295779), RadToDegFactor)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(19), Clamp[float32](23, 5, 19))
	assert.Equal(t, float32(5), Clamp[float32](-3, 5, 19))
	assert.Equal(t, float32(7), Clamp[float32](7, 5, 19))
	assert.Equal(t, float32(5), Clamp[float32](5, 5, 19))
	assert.Equal(t, float32(19), Clamp[float32](19, 5, 19))
	assert.Equal(t, 3, Clamp(10, 0, 3))

	vals := []float32{-100, -1.5, 0, 0.25, 1, 7.75, 1000}
	bounds := [][2]float32{{0, 1}, {-2, 2}, {-10, -5}, {3, 3}}
	for _, b := range bounds {
		for _, v := range vals {
			c := Clamp(v, b[0], b[1])
			assert.GreaterOrEqual(t, c, b[0])
			assert.LessOrEqual(t, c, b[1])
			if v >= b[0] && v <= b[1] {
				assert.Equal(t, v, c)
			}
		}
	}
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, float32(1), Min(1, 2))
	assert.Equal(t, float32(1), Min(2, 1))
	assert.Equal(t, float32(2), Max(1, 2))
	assert.Equal(t, float32(2), Max(2, 1))

	// ties return the second argument
	negZero := float32(math.Copysign(0, -1))
	assert.True(t, math.Signbit(float64(Min(0, negZero))))
	assert.False(t, math.Signbit(float64(Min(negZero, 0))))
	assert.True(t, math.Signbit(float64(Max(0, negZero))))
	assert.False(t, math.Signbit(float64(Max(negZero, 0))))

	nan := float32(math.NaN())
	assert.Equal(t, float32(1), Min(nan, 1))
	assert.True(t, IsNaN(Min(1, nan)))
	assert.Equal(t, float32(1), Max(nan, 1))
	assert.True(t, IsNaN(Max(1, nan)))
}

func TestDegRad(t *testing.T) {
	tolassert.EqualTol(t, 1.658035, DegToRad(95), 1e-6)
	tolassert.EqualTol(t, 143.2394475, RadToDeg(2.5), 1e-4)
	assert.Equal(t, float32(0), DegToRad(0))

	// the low-precision factors are not exact inverses of each other
	for _, v := range []float32{1, 45, 90, 180, -360, 0.5} {
		tol := Abs(v)*2e-5 + 1e-6
		tolassert.EqualTol(t, v, DegToRad(RadToDeg(v)), tol)
		tolassert.EqualTol(t, v, RadToDeg(DegToRad(v)), tol)
	}
	tolassert.EqualTol(t, HalfPi, DegToRad(90), 1e-4)
	tolassert.EqualTol(t, 180, RadToDeg(Pi), 1e-3)
}

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(15.5), Lerp(9, 22, 0.5))
	assert.Equal(t, float32(9), Lerp(9, 22, 0))
	assert.Equal(t, float32(22), Lerp(9, 22, 1))
	assert.Equal(t, float32(22), Lerp(9, 22, 3))
	assert.Equal(t, float32(9), Lerp(9, 22, -1))

	assert.Equal(t, float32(2), Lerp(2, 10, 0))
	assert.Equal(t, float32(10), Lerp(2, 10, 1))
	assert.Equal(t, float32((2+10)/2.0), Lerp(2, 10, 0.5))

	assert.Equal(t, float32(15.5), LerpUnclamped(9, 22, 0.5))
	assert.Equal(t, float32(35), LerpUnclamped(9, 22, 2))
	assert.Equal(t, float32(-4), LerpUnclamped(9, 22, -1))
}

func TestSqrt(t *testing.T) {
	assert.Equal(t, float32(5), Sqrt(25))
	assert.True(t, IsNaN(Sqrt(-1)))
	assert.Equal(t, float32(2.5), Abs(-2.5))
}

func TestDimsString(t *testing.T) {
	assert.Equal(t, "x", X.String())
	assert.Equal(t, "y", Y.String())
	assert.Equal(t, "z", Z.String())
	assert.Equal(t, "Dims(7)", Dims(7).String())
}
