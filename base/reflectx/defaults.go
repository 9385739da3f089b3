// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for setting struct
// fields from `default:` tag values.
package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/bootstrap3d/base/errors"
)

// NonPointerValue returns a non-pointer version of the given value.
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// SetFromDefaultTags sets the values of the fields of the given
// struct pointer from their `default:` struct field tag values,
// recursing into struct fields without a tag. It returns the
// joined errors of all fields that could not be set.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() {
		return fmt.Errorf("reflectx.SetFromDefaultTags: need a non-nil pointer, not %T", obj)
	}
	return setFromDefaultTags(NonPointerValue(ov))
}

func setFromDefaultTags(val reflect.Value) error {
	if val.Kind() != reflect.Struct {
		return nil
	}
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok || def == "" {
			if f.Type.Kind() == reflect.Struct {
				errs = append(errs, setFromDefaultTags(fv))
			}
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("field %s.%s: %w", typ.Name(), f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// SetFromString sets the settable value v from the given string,
// for bool, integer, float and string kinds, and for arrays and
// slices of them given as space separated elements.
func SetFromString(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.String:
		v.SetString(s)
	case reflect.Array:
		fs := strings.Fields(s)
		if len(fs) != v.Len() {
			return fmt.Errorf("need %d elements, have %d in %q", v.Len(), len(fs), s)
		}
		for i, e := range fs {
			if err := SetFromString(v.Index(i), e); err != nil {
				return err
			}
		}
	case reflect.Slice:
		fs := strings.Fields(s)
		sl := reflect.MakeSlice(v.Type(), len(fs), len(fs))
		for i, e := range fs {
			if err := SetFromString(sl.Index(i), e); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}
