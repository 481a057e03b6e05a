package validation

import (
	"html"
	"reflect"
	"strings"
)

// Trim strips surrounding whitespace from every string field of the given
// struct pointer, recursing into nested structs and slices. Fields tagged
// `sanitize:"-"` are left untouched (passwords, pre-signed URLs). Runs
// before validation so rules see the trimmed values.
func Trim(v interface{}) {
	walkStrings(v, strings.TrimSpace)
}

// Escape HTML-escapes every string field the same way. Runs after
// validation: format rules must see the raw characters, an apostrophe in a
// name would otherwise arrive as "&#39;" and fail its own format check.
func Escape(v interface{}) {
	walkStrings(v, html.EscapeString)
}

func walkStrings(v interface{}, apply func(string) string) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return
	}
	walkValue(rv.Elem(), apply)
}

func walkValue(rv reflect.Value, apply func(string) string) {
	switch rv.Kind() {
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			if t.Field(i).Tag.Get("sanitize") == "-" {
				continue
			}
			field := rv.Field(i)
			if !field.CanSet() {
				continue
			}
			walkValue(field, apply)
		}
	case reflect.Ptr:
		if !rv.IsNil() {
			walkValue(rv.Elem(), apply)
		}
	case reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			walkValue(rv.Index(i), apply)
		}
	case reflect.String:
		rv.SetString(apply(rv.String()))
	}
}
