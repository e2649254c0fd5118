// SPDX-License-Identifier: MIT
// Package fuzzy: breakpoint validators.
//
// Purpose:
//   - Single source of truth for the breakpoint checks shared by New,
//     NewTrapezoidal, NewTriangular and arithmetic results.
//   - Return *ValidationError so every constructor reports failures uniformly.

package fuzzy

import (
	"fmt"
	"math"
)

var breakpointNames = [4]string{"a1", "a2", "a3", "a4"}

// ValidateBreakpoints checks that every breakpoint is finite and that
// a1 <= a2 <= a3 <= a4.
// Errors: *ValidationError wrapping ErrNotFinite or ErrOrder.
// Complexity: O(1).
func ValidateBreakpoints(a [4]float64) error {
	for i, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid(breakpointNames[i], fmt.Errorf("%g: %w", v, ErrNotFinite))
		}
	}
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return invalid("order", fmt.Errorf("%s=%g > %s=%g: %w",
				breakpointNames[i-1], a[i-1], breakpointNames[i], a[i], ErrOrder))
		}
	}
	return nil
}

// ValidateVertices checks three triangular vertices: finite and l <= m <= r.
// Errors: *ValidationError wrapping ErrNotFinite or ErrOrder.
func ValidateVertices(l, m, r float64) error {
	names := [3]string{"left", "mid", "right"}
	vs := [3]float64{l, m, r}
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid(names[i], fmt.Errorf("%g: %w", v, ErrNotFinite))
		}
	}
	if !(l <= m && m <= r) {
		return invalid("order", fmt.Errorf("require a1 <= a2 <= a3 for triangular, got (%g, %g, %g): %w", l, m, r, ErrOrder))
	}
	return nil
}
