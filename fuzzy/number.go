// SPDX-License-Identifier: MIT

package fuzzy

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fuzzy/shape"
)

// Number is the generalized fuzzy number: four ordered breakpoints and four
// optional boundary shapes. Values are immutable; copy freely.
type Number struct {
	a [4]float64

	lower, upper shape.Slot
	left, right  shape.Slot
}

// ShapeOption supplies one boundary function to New.
type ShapeOption func(*slots)

type slots struct {
	lower, upper, left, right shape.Slot
}

// WithLeft sets the left slope (non-decreasing).
func WithLeft(fn shape.Func) ShapeOption { return func(s *slots) { s.left = shape.Some(fn) } }

// WithRight sets the right slope (non-increasing).
func WithRight(fn shape.Func) ShapeOption { return func(s *slots) { s.right = shape.Some(fn) } }

// WithLower sets the lower bound (non-decreasing).
func WithLower(fn shape.Func) ShapeOption { return func(s *slots) { s.lower = shape.Some(fn) } }

// WithUpper sets the upper bound (non-increasing).
func WithUpper(fn shape.Func) ShapeOption { return func(s *slots) { s.upper = shape.Some(fn) } }

// New validates and returns a generalized fuzzy number.
//
// Validation order:
//  1. every breakpoint finite (ErrNotFinite);
//  2. a1 <= a2 <= a3 <= a4 (ErrOrder);
//  3. lower, upper, left, right each probe to two values (ErrMalformedShape)
//     and, when defined, obey their direction on [0,1] (ErrShapeMonotonicity);
//  4. left/right agree on definedness, then lower/upper (ErrUndefinedPairing).
//
// Every failure is a *ValidationError matching ErrValidation.
// Unsupplied shapes stay unset and satisfy 3 and 4 trivially.
func New(a1, a2, a3, a4 float64, opts ...ShapeOption) (Number, error) {
	var s slots
	for _, opt := range opts {
		opt(&s)
	}
	return newNumber([4]float64{a1, a2, a3, a4}, s)
}

func newNumber(a [4]float64, s slots) (Number, error) {
	if err := validate(a, s); err != nil {
		return Number{}, err
	}
	return Number{a: a, lower: s.lower, upper: s.upper, left: s.left, right: s.right}, nil
}

// validate enforces the construction contract documented on New.
func validate(a [4]float64, s slots) error {
	if err := ValidateBreakpoints(a); err != nil {
		return err
	}
	checks := []struct {
		name string
		slot shape.Slot
		dir  shape.Direction
	}{
		{"lower", s.lower, shape.Increasing},
		{"upper", s.upper, shape.Decreasing},
		{"left", s.left, shape.Increasing},
		{"right", s.right, shape.Decreasing},
	}
	for _, c := range checks {
		if err := shape.CheckMonotone(c.slot, c.dir); err != nil {
			if errors.Is(err, shape.ErrMalformed) {
				return invalid(c.name, fmt.Errorf("%w: %w", ErrMalformedShape, err))
			}
			return invalid(c.name, fmt.Errorf("%w: %w", ErrShapeMonotonicity, err))
		}
	}
	if s.left.Defined() != s.right.Defined() {
		return invalid("left/right", ErrUndefinedPairing)
	}
	if s.lower.Defined() != s.upper.Defined() {
		return invalid("lower/upper", ErrUndefinedPairing)
	}
	return nil
}

// Kind returns KindGeneric.
func (n Number) Kind() Kind { return KindGeneric }

// A1 is the left end of the support.
func (n Number) A1() float64 { return n.a[0] }

// A2 is the left end of the core.
func (n Number) A2() float64 { return n.a[1] }

// A3 is the right end of the core.
func (n Number) A3() float64 { return n.a[2] }

// A4 is the right end of the support.
func (n Number) A4() float64 { return n.a[3] }

// Breakpoints returns (a1, a2, a3, a4).
func (n Number) Breakpoints() [4]float64 { return n.a }

// Support returns (a1, a4).
func (n Number) Support() (float64, float64) { return n.a[0], n.a[3] }

// Core returns (a2, a3).
func (n Number) Core() (float64, float64) { return n.a[1], n.a[2] }

// LeftShape returns the left slope slot.
func (n Number) LeftShape() shape.Slot { return n.left }

// RightShape returns the right slope slot.
func (n Number) RightShape() shape.Slot { return n.right }

// LowerShape returns the lower bound slot.
func (n Number) LowerShape() shape.Slot { return n.lower }

// UpperShape returns the upper bound slot.
func (n Number) UpperShape() shape.Slot { return n.upper }

// Membership evaluates the membership degree of x.
//
// Precedence:
//
//	x < a1 or x > a4   → 0
//	a2 <= x <= a3      → 1
//	a1 <= x < a2       → left((x−a1)/(a2−a1)), α = 0 when a2 == a1
//	a3 < x <= a4       → right((x−a3)/(a4−a3)), α = 0 when a4 == a3
//
// An unset slope contributes 0 on its ramp.
func (n Number) Membership(x float64) float64 {
	a1, a2, a3, a4 := n.a[0], n.a[1], n.a[2], n.a[3]
	switch {
	case x < a1 || x > a4:
		return 0.0
	case a2 <= x && x <= a3:
		return 1.0
	case x < a2:
		alpha := 0.0
		if a2 != a1 {
			alpha = (x - a1) / (a2 - a1)
		}
		return rampValue(n.left, alpha)
	case x > a3:
		alpha := 0.0
		if a4 != a3 {
			alpha = (x - a3) / (a4 - a3)
		}
		return rampValue(n.right, alpha)
	}
	// NaN x fails every comparison.
	return 0.0
}

// rampValue evaluates a slope and clamps it to [0,1]. Validation only
// probes α = 0 and α = 1, so interior values may stray outside the unit
// interval; an unset or NaN slope contributes 0.
func rampValue(s shape.Slot, alpha float64) float64 {
	v := s.Eval(alpha)
	switch {
	case math.IsNaN(v), v < 0:
		return 0.0
	case v > 1:
		return 1.0
	}
	return v
}

// String implements fmt.Stringer.
func (n Number) String() string {
	return fmt.Sprintf("FuzzyNumber(a1=%g, a2=%g, a3=%g, a4=%g, lower=%s, upper=%s, left=%s, right=%s)",
		n.a[0], n.a[1], n.a[2], n.a[3],
		slotName(n.lower), slotName(n.upper), slotName(n.left), slotName(n.right))
}

func slotName(s shape.Slot) string {
	if !s.IsSet() {
		return "unset"
	}
	if s.Defined() {
		return "defined"
	}
	return "undefined"
}

func (n Number) generic() Number { return n }

// withBreakpoints rebuilds n on new breakpoints, keeping its shapes.
func (n Number) withBreakpoints(a [4]float64) (Number, error) {
	return newNumber(a, slots{lower: n.lower, upper: n.upper, left: n.left, right: n.right})
}
