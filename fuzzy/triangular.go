// SPDX-License-Identifier: MIT

package fuzzy

import "fmt"

// Triangular is a trapezoid whose core collapses to the single peak:
// (a1, a2, a3) is stored as the trapezoid (a1, a2, a2, a3).
type Triangular struct {
	Trapezoidal
}

// NewTriangular validates a1 <= a2 <= a3 and returns the triangle.
// Errors: *ValidationError (ErrNotFinite, ErrOrder).
func NewTriangular(a1, a2, a3 float64) (Triangular, error) {
	if err := ValidateVertices(a1, a2, a3); err != nil {
		return Triangular{}, err
	}
	t, err := NewTrapezoidal(a1, a2, a2, a3)
	if err != nil {
		return Triangular{}, err
	}
	return Triangular{Trapezoidal: t}, nil
}

// Kind returns KindTriangular.
func (t Triangular) Kind() Kind { return KindTriangular }

// Left is the left end of the support.
func (t Triangular) Left() float64 { return t.a[0] }

// Mid is the peak.
func (t Triangular) Mid() float64 { return t.a[1] }

// Right is the right end of the support.
func (t Triangular) Right() float64 { return t.a[3] }

// Vertices returns (left, mid, right).
func (t Triangular) Vertices() [3]float64 { return [3]float64{t.a[0], t.a[1], t.a[3]} }

// Trapezoid returns the underlying degenerate trapezoid.
func (t Triangular) Trapezoid() Trapezoidal { return t.Trapezoidal }

// String implements fmt.Stringer.
func (t Triangular) String() string {
	return fmt.Sprintf("TriangularFuzzyNumber(left=%g, mid=%g, right=%g)", t.Left(), t.Mid(), t.Right())
}
