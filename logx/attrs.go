// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import "log/slog"

// attrState holds the attributes and group prefix accumulated through
// WithAttrs and WithGroup calls on a handler.
type attrState struct {
	prefix string
	pre    []byte
}

func (s attrState) withAttrs(attrs []slog.Attr) attrState {
	pre := append([]byte(nil), s.pre...)
	for _, a := range attrs {
		pre = appendAttr(pre, s.prefix, a)
	}
	return attrState{prefix: s.prefix, pre: pre}
}

func (s attrState) withGroup(name string) attrState {
	if name == "" {
		return s
	}
	return attrState{prefix: s.prefix + name + ".", pre: s.pre}
}

// format returns the record message followed by all attributes as key=value.
func (s attrState) format(r slog.Record) string {
	b := make([]byte, 0, len(r.Message)+len(s.pre)+32)
	b = append(b, r.Message...)
	b = append(b, s.pre...)
	r.Attrs(func(a slog.Attr) bool {
		b = appendAttr(b, s.prefix, a)
		return true
	})
	return string(b)
}

func appendAttr(b []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return b
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			b = appendAttr(b, prefix, ga)
		}
		return b
	}
	b = append(b, ' ')
	b = append(b, prefix...)
	b = append(b, a.Key...)
	b = append(b, '=')
	b = append(b, a.Value.String()...)
	return b
}
