package mask

import (
	"errors"
	"fmt"
)

// ErrMalformedMask is returned (wrapped in a *MalformedMaskError) when a mask
// has unbalanced optional brackets or an invalid validation expression.
var ErrMalformedMask = errors.New("mask: malformed mask")

// MalformedMaskError describes a mask that could not be compiled.
type MalformedMaskError struct {
	// Mask is the original mask text as passed to Compile.
	Mask string
	// Param is the name of the offending parameter, empty for bracket errors.
	Param string
	// Err is the underlying cause, if any.
	Err error
}

func (e *MalformedMaskError) Error() string {
	if e.Param != "" {
		if e.Err != nil {
			return fmt.Sprintf("mask: invalid expression for parameter %q in %q: %v", e.Param, e.Mask, e.Err)
		}
		return fmt.Sprintf("mask: invalid expression for parameter %q in %q", e.Param, e.Mask)
	}
	return fmt.Sprintf("mask: unbalanced brackets in %q", e.Mask)
}

// Unwrap returns the underlying cause.
func (e *MalformedMaskError) Unwrap() error {
	return e.Err
}

// Is reports ErrMalformedMask as a match so callers can use errors.Is.
func (e *MalformedMaskError) Is(target error) bool {
	return target == ErrMalformedMask
}
