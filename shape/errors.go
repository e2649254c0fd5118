// SPDX-License-Identifier: MIT

package shape

import "errors"

var (
	// ErrMalformed indicates that a function did not return exactly one value
	// per input when probed at [0, 1], or panicked while being probed.
	ErrMalformed = errors.New("shape: function is not properly vectorized or doesn't give numeric results")

	// ErrNotMonotone indicates that a defined function violates its direction
	// or leaves the unit interval at the probe points.
	ErrNotMonotone = errors.New("shape: function is not monotone on [0,1]->[0,1]")
)
