package guard

// Must variants panic with the *Error the checked form would return. They are
// intended for constructors and initialization phases where a violated
// contract must prevent startup rather than surface as a runtime error.

// MustNotNil is the panicking form of NotNil.
func MustNotNil[T any](value T, name string) T {
	v, err := NotNil(value, name)
	if err != nil {
		panic(err)
	}
	return v
}

// MustNotEmpty is the panicking form of NotEmpty.
func MustNotEmpty(text *string, name string) *string {
	v, err := NotEmpty(text, name)
	if err != nil {
		panic(err)
	}
	return v
}

// MustNotNilNotEmpty is the panicking form of NotNilNotEmpty.
func MustNotNilNotEmpty(text *string, name string) string {
	v, err := NotNilNotEmpty(text, name)
	if err != nil {
		panic(err)
	}
	return v
}

// MustLowerBound is the panicking form of LowerBound.
func MustLowerBound[T Numeric](value T, name string, bound T) T {
	v, err := LowerBound(value, name, bound)
	if err != nil {
		panic(err)
	}
	return v
}
