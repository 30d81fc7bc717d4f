package guard

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error produced by this package unwraps to exactly one
// of these sentinels.
var (
	// ErrMissingValue indicates a required value was absent.
	ErrMissingValue = errors.New("missing required value")

	// ErrInvalidArgument indicates a value was present but violated its contract.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error describes a single failed check.
type Error struct {
	// Param is the parameter name the caller passed to the check.
	Param string

	kind error
	msg  string
}

// Error returns the formatted message of the failed check.
func (e *Error) Error() string { return e.msg }

// Unwrap exposes the failure kind so errors.Is works against
// ErrMissingValue and ErrInvalidArgument.
func (e *Error) Unwrap() error { return e.kind }

func missingValue(name string) *Error {
	return &Error{
		Param: name,
		kind:  ErrMissingValue,
		msg:   fmt.Sprintf("Value of parameter '%s' cannot be null", name),
	}
}

func emptyValue(name string) *Error {
	return &Error{
		Param: name,
		kind:  ErrInvalidArgument,
		msg:   fmt.Sprintf("Value of parameter '%s' cannot be empty", name),
	}
}

func belowBound(name string, bound any) *Error {
	return &Error{
		Param: name,
		kind:  ErrInvalidArgument,
		msg:   fmt.Sprintf("Value of parameter '%s' must be larger than or equal to %v", name, bound),
	}
}
