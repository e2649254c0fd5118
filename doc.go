// Package fuzzy is a toolkit for fuzzy numbers: construction with
// validation, membership evaluation, arithmetic and random populations.
//
// 🚀 What is in the box?
//
//	• Generalized fuzzy numbers with pluggable boundary shapes
//	• Trapezoidal and triangular numbers with linear ramps
//	• Addition and multiplication under an explicit addition strategy
//	• Typed arrays with broadcasting and per-field extraction
//	• Seeded random populations for simulations
//	• A YAML settings layer and a `fuzzy` command line tool
//
// ✨ Guarantees
//
//   - Immutable values: every number is safe to share between goroutines
//   - Sentinel errors: match with errors.Is, classify with fuzzy.Outcome
//   - Deterministic randomness: same seed, same population
//
// Everything is organized under these subpackages:
//
//	shape/      — optional boundary functions and their monotonicity checks
//	fuzzy/      — Number, Trapezoidal, Triangular, Calculator, curves
//	collection/ — Array of fuzzy numbers with element-wise arithmetic
//	random/     — triangular and trapezoidal population generators
//	config/     — YAML settings, zap logger, runtime strategy store
//	cmd/fuzzy/  — the command line tool
//
// Quick ASCII example:
//
//	       1 ┤    ______
//	         │   /      \
//	       0 ┼──/────────\──
//	           a1 a2   a3 a4
//
//	is the trapezoid (a1, a2, a3, a4).
//
//	go get github.com/katalvlaran/fuzzy/fuzzy
package fuzzy
