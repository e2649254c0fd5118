// SPDX-License-Identifier: MIT

package fuzzy

import (
	"fmt"

	"github.com/katalvlaran/fuzzy/shape"
)

// Trapezoidal is a fuzzy number with linear ramps and a flat core:
//
//	       a2_____a3
//	      /         \
//	_____/           \_____
//	    a1           a4
//
// left(α) = α, right(α) = 1 − α.
type Trapezoidal struct {
	Number
}

// NewTrapezoidal validates a1 <= a2 <= a3 <= a4 and returns the trapezoid.
// Errors: *ValidationError (ErrNotFinite, ErrOrder).
func NewTrapezoidal(a1, a2, a3, a4 float64) (Trapezoidal, error) {
	n, err := New(a1, a2, a3, a4, WithLeft(shape.Identity), WithRight(shape.Complement))
	if err != nil {
		return Trapezoidal{}, err
	}
	return Trapezoidal{Number: n}, nil
}

func trapezoidFrom(a [4]float64) (Trapezoidal, error) {
	return NewTrapezoidal(a[0], a[1], a[2], a[3])
}

// Kind returns KindTrapezoidal.
func (t Trapezoidal) Kind() Kind { return KindTrapezoidal }

// String implements fmt.Stringer.
func (t Trapezoidal) String() string {
	return fmt.Sprintf("TrapezoidalFuzzyNumber(a1=%g, a2=%g, a3=%g, a4=%g)", t.a[0], t.a[1], t.a[2], t.a[3])
}
