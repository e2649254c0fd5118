// SPDX-License-Identifier: MIT

package fuzzy

import "fmt"

// DefaultSamples is the sample count renderers use for generic numbers.
const DefaultSamples = 200

// Curve returns the (x, membership) points a renderer needs to draw f.
//
//   - Triangular:  (a1,0) (a2,1) (a4,0)
//   - Trapezoidal: (a1,0) (a2,1) (a3,1) (a4,0)
//   - Number:      n evenly spaced samples over [a1, a4]
//
// n is ignored for the piecewise-linear variants.
// Errors: ErrSampleCount when a generic number is sampled with n < 2.
func Curve(f FuzzyNumber, n int) ([]Point, error) {
	switch v := Value(f).(type) {
	case Triangular:
		return []Point{{v.Left(), 0}, {v.Mid(), 1}, {v.Right(), 0}}, nil
	case Trapezoidal:
		return []Point{{v.a[0], 0}, {v.a[1], 1}, {v.a[2], 1}, {v.a[3], 0}}, nil
	case Number:
		return Sample(v, n)
	default:
		return nil, fuzzyErrorf("Curve", fmt.Errorf("%T: %w", f, ErrUnsupportedOperand))
	}
}

// Sample evaluates f at n evenly spaced points over its support, whatever
// its variant.
// Errors: ErrSampleCount when n < 2, ErrUnsupportedOperand for nil.
func Sample(f FuzzyNumber, n int) ([]Point, error) {
	f = Value(f)
	if f == nil {
		return nil, fuzzyErrorf("Sample", fmt.Errorf("nil: %w", ErrUnsupportedOperand))
	}
	if n < 2 {
		return nil, fuzzyErrorf("Sample", fmt.Errorf("n=%d: %w", n, ErrSampleCount))
	}
	lo, hi := f.Support()
	xs := linspace(lo, hi, n)
	pts := make([]Point, n)
	for i, x := range xs {
		pts[i] = Point{X: x, Mu: f.Membership(x)}
	}
	return pts, nil
}

// linspace returns n evenly spaced values from lo to hi inclusive (n >= 2).
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
