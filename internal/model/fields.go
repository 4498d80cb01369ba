package model

import (
	"reflect"
	"strings"
)

// ChangedFields lists the json names of the fields that differ between two
// parameter structs of the same type, typically a request and its clamped form.
func ChangedFields(before, after any) []string {
	bv, av := reflect.ValueOf(before), reflect.ValueOf(after)
	if bv.Kind() != reflect.Struct || bv.Type() != av.Type() {
		return nil
	}
	var changed []string
	for i := 0; i < bv.NumField(); i++ {
		if bv.Field(i).Interface() != av.Field(i).Interface() {
			changed = append(changed, jsonName(bv.Type().Field(i)))
		}
	}
	return changed
}

// FieldValue returns the numeric field of a parameter struct by its json name.
func FieldValue(params any, name string) (float64, bool) {
	rv := reflect.ValueOf(params)
	if rv.Kind() != reflect.Struct {
		return 0, false
	}
	for i := 0; i < rv.NumField(); i++ {
		if jsonName(rv.Type().Field(i)) != name {
			continue
		}
		f := rv.Field(i)
		switch {
		case f.CanInt():
			return float64(f.Int()), true
		case f.CanFloat():
			return f.Float(), true
		}
	}
	return 0, false
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return f.Name
	}
	return name
}
