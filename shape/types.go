// SPDX-License-Identifier: MIT

package shape

import "math"

// Func is a vectorized boundary function: out[i] = f(alpha[i]).
// Implementations must not retain or mutate alpha.
type Func func(alpha []float64) []float64

// Direction is the monotonicity a boundary function must obey.
type Direction int

const (
	// Increasing is required from left slopes and lower bounds.
	Increasing Direction = iota

	// Decreasing is required from right slopes and upper bounds.
	Decreasing
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Increasing {
		return "increasing"
	}
	return "decreasing"
}

// probePoints are the two α values every boundary is validated at.
var probePoints = [2]float64{0.0, 1.0}

// Identity is the linear increasing ramp f(α) = α.
func Identity(alpha []float64) []float64 {
	out := make([]float64, len(alpha))
	copy(out, alpha)
	return out
}

// Complement is the linear decreasing ramp f(α) = 1 − α.
func Complement(alpha []float64) []float64 {
	out := make([]float64, len(alpha))
	for i, a := range alpha {
		out[i] = 1 - a
	}
	return out
}

// Undefined reports NaN for every input.
func Undefined(alpha []float64) []float64 {
	out := make([]float64, len(alpha))
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
