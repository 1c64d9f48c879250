// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"testing"

	"cogentcore.org/trivert/math32"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewWindowNoDrivers(t *testing.T) {
	driversMu.Lock()
	saved := drivers
	drivers = map[string]func() Window{}
	driversMu.Unlock()
	t.Cleanup(func() {
		driversMu.Lock()
		drivers = saved
		driversMu.Unlock()
	})

	assert.Empty(t, Drivers())
	w, err := NewWindow(&NewWindowOptions{Driver: "desktop"})
	assert.Nil(t, w)
	assert.ErrorContains(t, err, `window driver "desktop" is not registered`)
	assert.ErrorContains(t, err, `window driver "null" is not registered`)
}

func TestFixup(t *testing.T) {
	o := NewWindowOptions{}
	o.Fixup()
	assert.Equal(t, NewWindowOptions{Title: DefaultTitle, Size: DefaultSize, Driver: FallbackDriver}, o)

	o = NewWindowOptions{Title: "x", Size: DefaultSize.MulScalar(2), Driver: "other"}
	o.Fixup()
	assert.Equal(t, "x", o.Title)
	assert.Equal(t, "other", o.Driver)
	assert.Equal(t, DefaultSize.MulScalar(2), o.Size)

	o = NewWindowOptions{Size: math32.Vec2(0, 0)}
	o.Fixup()
	assert.Equal(t, DefaultSize, o.Size)

	for _, size := range []math32.Vector2{math32.Vec2(0, 600), math32.Vec2(800, 0), math32.Vec2(-3, -4)} {
		o = NewWindowOptions{Size: size}
		o.Fixup()
		assert.Equal(t, size, o.Size)
	}
}
