// SPDX-License-Identifier: MIT
// Package fuzzy: sentinel error set.
//
// Every message is prefixed with "fuzzy: ..." so logs can be grepped. Call
// sites wrap sentinels with context via fmt.Errorf("Op: %w", ErrX); callers
// match with errors.Is.
//
// Taxonomy:
//   - ErrValidation (construction time) is matched by every *ValidationError,
//     which additionally wraps the specific cause (ErrNotFinite, ErrOrder, ...).
//   - ErrUnsupportedOperand means "operand type not handled here"; the caller
//     may try the reflected operation. It is not a hard failure.
//   - ErrNotImplemented and ErrUnknownStrategy are permanent failures.

package fuzzy

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every construction-time failure.
	ErrValidation = errors.New("fuzzy: validation failed")

	// ErrNotFinite indicates a NaN or ±Inf breakpoint.
	ErrNotFinite = errors.New("fuzzy: each of a1, a2, a3, a4 should be a single finite real number")

	// ErrOrder indicates breakpoints violating a1 <= a2 <= a3 <= a4.
	ErrOrder = errors.New("fuzzy: breakpoints must satisfy a1 <= a2 <= a3 <= a4")

	// ErrMalformedShape indicates a shape function that does not return
	// exactly two values when probed at [0, 1].
	ErrMalformedShape = errors.New("fuzzy: shape function is not properly vectorized")

	// ErrShapeMonotonicity indicates a defined shape function violating its
	// direction or the [0,1] range.
	ErrShapeMonotonicity = errors.New("fuzzy: shape function violates monotonicity or bounds")

	// ErrUndefinedPairing indicates that exactly one of left/right (or
	// lower/upper) is undefined.
	ErrUndefinedPairing = errors.New("fuzzy: either all or none of a boundary pair should be undefined")

	// ErrUnsupportedOperand indicates an operand type arithmetic does not handle.
	ErrUnsupportedOperand = errors.New("fuzzy: unsupported operand")

	// ErrNotImplemented marks fuzzy-by-fuzzy operations with no implementation
	// for the given operand kinds or addition strategy.
	ErrNotImplemented = errors.New("fuzzy: operation not implemented")

	// ErrUnknownStrategy indicates an addition strategy outside the recognized set.
	ErrUnknownStrategy = errors.New("fuzzy: unknown fuzzy addition method")

	// ErrSampleCount indicates a curve sample count below two.
	ErrSampleCount = errors.New("fuzzy: sample count must be >= 2")
)

// ValidationError reports why a fuzzy number could not be constructed.
// It matches ErrValidation and unwraps to the specific cause.
type ValidationError struct {
	// Field names the offending input: "a1".."a4", "order", or a shape slot.
	Field string
	Err   error
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("fuzzy: invalid %s: %v", e.Field, e.Err)
}

// Unwrap exposes the specific cause.
func (e *ValidationError) Unwrap() error { return e.Err }

// Is makes every ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// fuzzyErrorf tags err with the operation name.
func fuzzyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Result classifies an arithmetic error.
type Result int

const (
	// OK means the operation produced a value.
	OK Result = iota

	// Unsupported means the operand type was not handled; try the reflected form.
	Unsupported

	// Failed is a hard failure (validation, not implemented, unknown strategy).
	Failed
)

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r {
	case OK:
		return "ok"
	case Unsupported:
		return "unsupported"
	default:
		return "failed"
	}
}

// Outcome maps an error returned by Add/Mul/RAdd/RMul to a Result.
func Outcome(err error) Result {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, ErrUnsupportedOperand):
		return Unsupported
	default:
		return Failed
	}
}
