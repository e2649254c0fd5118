// SPDX-License-Identifier: MIT

package fuzzy

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Closeness tolerances for Equal: |a − b| <= AbsTol + RelTol·|b|.
const (
	RelTol = 1e-5
	AbsTol = 1e-8
)

// Equal reports whether other is a fuzzy number whose breakpoints are all
// close to n's. Shape functions are not compared, so numbers with the same
// breakpoints but different shapes are equal.
func (n Number) Equal(other any) bool {
	f, ok := other.(FuzzyNumber)
	if ok {
		f = Value(f)
	}
	if !ok || f == nil {
		return false
	}
	return closeAll(n.a, f.Breakpoints())
}

// Hash returns an xxhash digest of the four breakpoints. Equal numbers with
// bit-identical breakpoints hash alike; −0 and +0 hash alike.
func (n Number) Hash() uint64 {
	var buf [32]byte
	for i, v := range n.a {
		if v == 0 {
			v = 0 // folds −0 into +0
		}
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return xxhash.Sum64(buf[:])
}

// Equal reports whether a and b are equal fuzzy numbers (see Number.Equal).
func Equal(a, b FuzzyNumber) bool {
	a, b = Value(a), Value(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// EqualShapes is a stricter comparison: breakpoints must be Equal and the
// membership curves must agree within AbsTol at n evenly spaced points of
// the joint support. n < 2 is treated as 2.
func EqualShapes(a, b FuzzyNumber, n int) bool {
	if !Equal(a, b) {
		return false
	}
	a, b = Value(a), Value(b)
	if a == nil {
		return true
	}
	if n < 2 {
		n = 2
	}
	lo, hi := a.Support()
	blo, bhi := b.Support()
	lo, hi = math.Min(lo, blo), math.Max(hi, bhi)
	for _, x := range linspace(lo, hi, n) {
		if math.Abs(a.Membership(x)-b.Membership(x)) > AbsTol {
			return false
		}
	}
	return true
}

func closeAll(a, b [4]float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > AbsTol+RelTol*math.Abs(b[i]) {
			return false
		}
	}
	return true
}
