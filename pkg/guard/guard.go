package guard

import (
	"reflect"
	"strings"
)

// Numeric constrains the bound check to the built-in integer and float types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NotNil returns value unchanged unless it is absent, in which case it fails
// with the missing-value kind. Absent means a nil pointer, interface, map,
// slice, channel, or function; values of non-nilable kinds always pass.
func NotNil[T any](value T, name string) (T, error) {
	if isNil(value) {
		return value, missingValue(name)
	}
	return value, nil
}

// NotEmpty returns text unchanged unless it is present and trims to zero
// length, in which case it fails with the invalid-argument kind. A nil text
// is accepted and passed through; pair with NotNilNotEmpty when presence is
// also required.
func NotEmpty(text *string, name string) (*string, error) {
	if text != nil && strings.TrimSpace(*text) == "" {
		return text, emptyValue(name)
	}
	return text, nil
}

// NotNilNotEmpty requires text to be present and non-blank. A nil text fails
// with the missing-value kind, a blank one with the invalid-argument kind;
// otherwise the dereferenced string is returned.
func NotNilNotEmpty(text *string, name string) (string, error) {
	if text == nil {
		return "", missingValue(name)
	}
	if strings.TrimSpace(*text) == "" {
		return "", emptyValue(name)
	}
	return *text, nil
}

// LowerBound returns value unchanged unless it is below bound, in which case
// it fails with the invalid-argument kind. A value equal to the bound passes.
func LowerBound[T Numeric](value T, name string, bound T) (T, error) {
	if value < bound {
		return value, belowBound(name, bound)
	}
	return value, nil
}

// isNil reports whether v holds a nil value of a nilable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
