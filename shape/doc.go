// SPDX-License-Identifier: MIT

// Package shape defines the boundary functions of a fuzzy number's membership
// curve.
//
// A shape function maps the normalized position α ∈ [0,1] inside one ramp of
// a membership function to a degree in [0,1]. Four of them describe a fuzzy
// number: the left and right slopes, and the lower and upper bounds.
//
// ⚙️ Contract:
//
//   - Functions are vectorized: they take a slice of α values and return a
//     slice of the same length.
//   - Left/lower are non-decreasing, right/upper are non-increasing.
//   - A function reporting NaN at α=0 is "undefined"; an unset Slot is the
//     explicit form of the same state.
//
// Usage:
//
//	left := shape.Some(shape.Identity)
//	v0, v1, err := left.Probe()        // evaluates at [0, 1]
//	err = shape.CheckMonotone(left, shape.Increasing)
//
// Complexity: every helper is O(len(α)).
package shape
