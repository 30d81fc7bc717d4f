// Package sanitizer provides stateless string normalization helpers intended
// to run before parameter guards: normalize first, then assert.
//
// All functions are pure transformations with no shared state, safe for
// concurrent use. They never return errors; input that cannot be improved is
// returned as-is.
//
// # Usage
//
//	import "github.com/guardkit/guardkit/pkg/sanitizer"
//
//	name := sanitizer.Apply(raw,
//	    sanitizer.Trim,
//	    sanitizer.CollapseWhitespace,
//	    sanitizer.ToLower,
//	)
//
// Compose builds a reusable pipeline when the same chain is applied in
// multiple places:
//
//	normalize := sanitizer.Compose(sanitizer.Trim, sanitizer.ToLower)
//	a := normalize(inputA)
//	b := normalize(inputB)
//
// Title uses Unicode-aware casing from golang.org/x/text, which handles
// characters that the byte-oriented strings helpers get wrong.
package sanitizer
