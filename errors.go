package jsarray

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is a RangeError: the length is outside [0, MaxIndex+1].
	ErrInvalidLength = errors.New("RangeError: Invalid array length")

	// ErrRecursionLimit is matched by every *RecursionLimitExceeded.
	ErrRecursionLimit = errors.New("recursion limit exceeded")
)

// TypeConversionError is returned when a value cannot be converted to the
// type an operation needs, e.g. a plain object passed as a flat depth.
type TypeConversionError struct {
	Value  Value
	Target string
}

func (e *TypeConversionError) Error() string {
	var kind string
	switch e.Value.(type) {
	case *Object:
		kind = "object"
	case *Array:
		kind = "array"
	default:
		kind = fmt.Sprintf("%T", e.Value)
	}
	return fmt.Sprintf("TypeError: cannot convert %s to %s", kind, e.Target)
}

// RecursionLimitExceeded is returned by the Flattener when the nesting it has
// to descend into, or the result it builds, outgrows the configured budget.
type RecursionLimitExceeded struct {
	// Limit is "depth", "elements" or "frames".
	Limit string
	Max   int64
}

func (e *RecursionLimitExceeded) Error() string {
	return fmt.Sprintf("RangeError: flat %s limit of %d exceeded", e.Limit, e.Max)
}

func (e *RecursionLimitExceeded) Is(target error) bool {
	return target == ErrRecursionLimit
}
