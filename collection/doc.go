// SPDX-License-Identifier: MIT

// Package collection provides Array, a fixed-size sequence of fuzzy numbers
// of one compatible kind with element-wise arithmetic.
//
// The declared kind of an Array is the most specific fuzzy.Kind shared by
// its elements (fuzzy.CommonKind): an array of triangles is triangular, a
// mix of triangles and trapezoids is trapezoidal, anything holding a generic
// Number is generic. Set only accepts elements that are-a declared kind.
//
// Usage:
//
//	a, _ := fuzzy.NewTriangular(0, 1, 2)
//	b, _ := fuzzy.NewTriangular(1, 2, 3)
//	arr, _ := collection.New(a, b)
//	shifted, _ := arr.Add(nil, 1.0)        // element-wise, default calculator
//	mids, _ := arr.Field("mid")            // [1 2]
//	series, _ := arr.Curves(200, nil)      // points for a renderer
package collection
