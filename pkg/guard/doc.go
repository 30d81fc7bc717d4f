// Package guard provides stateless parameter-guard helpers for enforcing
// call-site contracts: presence checks, non-blank text checks, and numeric
// lower-bound checks.
//
// Each helper takes the value under test together with the parameter name the
// caller knows it by; the name appears only in the error message. On success
// the input value is returned unchanged so checks can be applied inline at
// assignment. On failure a *Error is returned carrying the offending
// parameter name and a formatted message, and the caller is expected to let
// it propagate: a failed guard signals a violated programming or input
// contract, not a condition to recover from.
//
// # Architecture
//
// The package is a flat collection of independent check functions with no
// hidden state, making it allocation-free on the success path, trivially
// goroutine-safe, and usable from init code and hot paths alike. The only
// composition offered is NotNilNotEmpty, which chains the presence check and
// the blank check in that order.
//
// Core building blocks:
//   - Error              – failed check: parameter name, message, failure kind
//   - ErrMissingValue    – kind sentinel for absent required values
//   - ErrInvalidArgument – kind sentinel for present-but-invalid values
//   - Numeric interface  – generic constraint used by the bound check
//
// # Usage
//
//	pool, err := guard.NotNil(pool, "pool")
//	if err != nil {
//	    return err
//	}
//
//	attempts, err := guard.LowerBound(cfg.RetryAttempts, "RetryAttempts", 1)
//	if err != nil {
//	    return err
//	}
//
// The Must variants panic instead of returning an error and are meant for
// constructors and initialization phases where a violated contract must
// prevent startup:
//
//	srv := newServer(guard.MustNotNil(handler, "handler"))
//
// # Error Handling
//
// Every failure unwraps to exactly one of the two kind sentinels, so callers
// can classify without string matching:
//
//	if errors.Is(err, guard.ErrMissingValue) { ... }
//
// The parameter name is available via errors.As:
//
//	var gerr *guard.Error
//	if errors.As(err, &gerr) {
//	    log.Warn("contract violated", "param", gerr.Param)
//	}
package guard
