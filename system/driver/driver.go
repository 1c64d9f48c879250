// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver registers all of the window drivers available on
// the current platform. Import it for its side effects:
//
//	import _ "cogentcore.org/trivert/system/driver"
package driver

import (
	"cogentcore.org/trivert/system/driver/null"
)

func init() {
	null.Init()
}
