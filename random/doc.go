// SPDX-License-Identifier: MIT

// Package random generates populations of triangular and trapezoidal fuzzy
// numbers for simulations and tests.
//
// Centers are drawn from a normal distribution, spreads (and trapezoid core
// widths) from uniform ranges. Every candidate goes through the regular
// fuzzy constructors; candidates they reject are discarded without error,
// so a population can be smaller than requested.
//
// Usage:
//
//	arr, err := random.Triangular(random.TriangularParams{
//	    N: 100, CenterMean: 10, CenterStd: 2,
//	    LeftMin: 0.5, LeftMax: 1.5, RightMin: 0.5, RightMax: 1.5,
//	}, random.WithSeed(42))
//
// Determinism: the same seed and parameters always produce the same array.
package random
