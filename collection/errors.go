// SPDX-License-Identifier: MIT

package collection

import "errors"

var (
	// ErrEmpty indicates an attempt to build an Array with no elements.
	ErrEmpty = errors.New("collection: array cannot be empty")

	// ErrNilElement indicates a nil fuzzy number among the elements.
	ErrNilElement = errors.New("collection: nil element")

	// ErrIndex indicates an index outside [0, Len).
	ErrIndex = errors.New("collection: index out of range")

	// ErrKindMismatch indicates an element that is not of the declared kind.
	ErrKindMismatch = errors.New("collection: element kind does not match array kind")

	// ErrLengthMismatch indicates element-wise arithmetic on arrays of different lengths.
	ErrLengthMismatch = errors.New("collection: arrays must be of the same length")

	// ErrNoSuchField indicates an unknown or inapplicable field name.
	ErrNoSuchField = errors.New("collection: elements have no such field")

	// ErrLabels indicates a label list whose length differs from the array's.
	ErrLabels = errors.New("collection: labels must be the same length as the array")
)
