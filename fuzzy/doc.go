// SPDX-License-Identifier: MIT

// Package fuzzy models fuzzy numbers: generalized (four breakpoints plus four
// boundary shapes), trapezoidal and triangular.
//
// 🚀 What is a fuzzy number?
//
//	A fuzzy number assigns every real x a membership degree in [0,1].
//	Four ordered breakpoints a1 <= a2 <= a3 <= a4 fix its support [a1, a4]
//	(membership > 0) and its core [a2, a3] (membership = 1); shape functions
//	describe the ramps in between.
//
//	         a2 ______ a3
//	           /      \
//	  ______ /          \ ______
//	       a1            a4
//
// ✨ Key features:
//   - eager validation: every constructor either returns a valid, immutable
//     value or a *ValidationError (ErrNotFinite, ErrOrder, ErrMalformedShape,
//     ErrShapeMonotonicity, ErrUndefinedPairing)
//   - piecewise Membership with zero-width ramps handled without division
//   - closed variant set (Kind): Number ⊃ Trapezoidal ⊃ Triangular
//   - Calculator arithmetic with an explicit addition strategy and an explicit
//     error taxonomy (ErrUnsupportedOperand / ErrNotImplemented /
//     ErrUnknownStrategy), see Outcome
//   - tolerant Equal and breakpoint Hash; Curve samples for renderers
//
// ⚙️ Usage:
//
//	a, _ := fuzzy.NewTriangular(0, 1, 2)
//	b, _ := fuzzy.NewTriangular(1, 2, 3)
//	sum, err := fuzzy.Add(a, b)          // TriangularFuzzyNumber(left=1, mid=3, right=5)
//	shifted, _ := fuzzy.Add(a, 2.0)      // scalar shift keeps the variant
//	mu := a.Membership(0.5)              // 0.5
//
//	calc := fuzzy.NewCalculator(fuzzy.WithStrategy(fuzzy.StrategyParametric))
//	_, err = calc.Add(a, b)              // errors.Is(err, fuzzy.ErrNotImplemented)
//
// Concurrency: all values are immutable and safe to share. A Calculator is
// safe for concurrent use when its strategy source is.
//
// Complexity: every operation is O(1), except Curve and EqualShapes (O(n)).
package fuzzy
