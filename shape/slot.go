// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"math"
)

// Slot holds an optional boundary function. The zero Slot is unset.
type Slot struct {
	fn Func
}

// None returns an unset Slot.
func None() Slot { return Slot{} }

// Some wraps fn. Some(nil) is equivalent to None().
func Some(fn Func) Slot { return Slot{fn: fn} }

// IsSet reports whether a function was supplied.
func (s Slot) IsSet() bool { return s.fn != nil }

// Func returns the wrapped function, or Undefined when the slot is unset.
func (s Slot) Func() Func {
	if s.fn == nil {
		return Undefined
	}
	return s.fn
}

// Eval evaluates the slot at a single α. Unset slots and malformed
// functions yield NaN.
func (s Slot) Eval(alpha float64) float64 {
	if s.fn == nil {
		return math.NaN()
	}
	out, err := call(s.fn, []float64{alpha})
	if err != nil || len(out) != 1 {
		return math.NaN()
	}
	return out[0]
}

// Probe evaluates the slot at α = 0 and α = 1.
// Unset slots return (NaN, NaN, nil).
// Returns ErrMalformed if the function does not yield exactly two values.
func (s Slot) Probe() (v0, v1 float64, err error) {
	if s.fn == nil {
		return math.NaN(), math.NaN(), nil
	}
	in := probePoints
	out, err := call(s.fn, in[:])
	if err != nil {
		return math.NaN(), math.NaN(), err
	}
	if len(out) != len(probePoints) {
		return math.NaN(), math.NaN(), fmt.Errorf("probe returned %d values: %w", len(out), ErrMalformed)
	}
	return out[0], out[1], nil
}

// Defined reports whether the slot yields a number at α = 0.
// Malformed functions are never defined.
func (s Slot) Defined() bool {
	v0, _, err := s.Probe()
	return err == nil && !math.IsNaN(v0)
}

// CheckMonotone validates the probe values of s against dir.
// Undefined slots pass trivially.
//
//	Increasing: v0 ≥ 0, v1 ≤ 1, v0 ≤ v1
//	Decreasing: v1 ≥ 0, v0 ≤ 1, v1 ≤ v0
//
// Errors: ErrMalformed, ErrNotMonotone.
func CheckMonotone(s Slot, dir Direction) error {
	v0, v1, err := s.Probe()
	if err != nil {
		return err
	}
	if math.IsNaN(v0) {
		return nil
	}
	var bad bool
	switch dir {
	case Increasing:
		bad = v0 < 0 || v1 > 1 || v0 > v1
	default:
		bad = v1 < 0 || v0 > 1 || v1 > v0
	}
	// NaN at α=1 alone fails every comparison above; reject it explicitly.
	if bad || math.IsNaN(v1) {
		return fmt.Errorf("%s function gives f(0)=%g, f(1)=%g: %w", dir, v0, v1, ErrNotMonotone)
	}
	return nil
}

// call invokes fn, converting a panic into ErrMalformed.
func call(fn Func, in []float64) (out []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("panic %v: %w", r, ErrMalformed)
		}
	}()
	// Copy so callers' probe arrays stay untouched by misbehaving functions.
	arg := make([]float64, len(in))
	copy(arg, in)
	return fn(arg), nil
}
