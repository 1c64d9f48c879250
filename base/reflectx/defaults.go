// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a collection of helpers for the reflect
// package in the Go standard library.
package reflectx

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` struct field tags. Nested struct fields without a tag are
// visited recursively. A struct field with a tag, such as a vector, is set
// from a comma-separated list of values for its fields in order.
func SetFromDefaultTags(v any) error {
	rv := NonPointerValue(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: got %T, not a pointer to a struct", v)
	}
	if !rv.CanSet() {
		return fmt.Errorf("reflectx.SetFromDefaultTags: %T is not settable; pass a pointer", v)
	}
	return setFromDefaultTags(rv)
}

func setFromDefaultTags(rv reflect.Value) error {
	typ := rv.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := rv.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			if fv.Kind() == reflect.Struct {
				errs = append(errs, setFromDefaultTags(fv))
			}
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("field %s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// SetFromString sets the given settable value from its string representation.
// It supports [encoding.TextUnmarshaler], strings, bools, numbers, and structs
// of those given as a comma-separated list of field values.
func SetFromString(v reflect.Value, s string) error {
	if v.CanAddr() {
		if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(s))
		}
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(strings.TrimSpace(s), 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(strings.TrimSpace(s), 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Struct:
		parts := strings.Split(s, ",")
		if len(parts) > v.NumField() {
			return fmt.Errorf("%d values given for %v, which has %d fields", len(parts), v.Type(), v.NumField())
		}
		for i, p := range parts {
			if err := SetFromString(v.Field(i), p); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("cannot set %v from a string", v.Type())
	}
	return nil
}
