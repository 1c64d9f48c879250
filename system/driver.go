// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

var (
	driversMu sync.Mutex
	drivers   = map[string]func() Window{}
)

// RegisterDriver makes a window driver available by the given name.
// It replaces any driver already registered with that name.
// Drivers typically call it from an Init function; importing
// cogentcore.org/trivert/system/driver registers all of them.
func RegisterDriver(name string, newWindow func() Window) {
	driversMu.Lock()
	defer driversMu.Unlock()
	drivers[name] = newWindow
}

// Drivers returns the sorted names of all registered drivers.
func Drivers() []string {
	driversMu.Lock()
	defer driversMu.Unlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupDriver(name string) (func() Window, bool) {
	driversMu.Lock()
	defer driversMu.Unlock()
	nw, ok := drivers[name]
	return nw, ok
}

// NewWindow returns a new initialized [Window] from the driver named in
// the options. A nil opts is valid and means to use the default option
// values. If that driver is not registered or fails to initialize, the
// [FallbackDriver] is used instead; an error is only returned when no
// driver could provide a window.
func NewWindow(opts *NewWindowOptions) (Window, error) {
	o := NewWindowOptions{}
	if opts != nil {
		o = *opts
	}
	o.Fixup()

	names := []string{o.Driver}
	if o.Driver != FallbackDriver {
		names = append(names, FallbackDriver)
	}
	var errs []error
	for _, name := range names {
		nw, ok := lookupDriver(name)
		if !ok {
			errs = append(errs, fmt.Errorf("system: window driver %q is not registered", name))
			continue
		}
		w := nw()
		w.SetTitle(o.Title)
		w.SetPosition(o.Pos)
		w.SetSize(o.Size)
		if err := w.Initialize(); err != nil {
			slog.Warn("window driver failed to initialize", "driver", name, "err", err)
			w.Release()
			errs = append(errs, err)
			continue
		}
		if name != o.Driver {
			slog.Warn("using fallback window driver", "requested", o.Driver, "driver", name)
		}
		return w, nil
	}
	return nil, errors.Join(errs...)
}
