// SPDX-License-Identifier: MIT

package collection

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/fuzzy/fuzzy"
)

type binaryOp func(x fuzzy.FuzzyNumber, other any) (fuzzy.FuzzyNumber, error)

// Add returns the element-wise sum of a and other.
//
// other may be another *Array of equal length (paired element-wise) or any
// operand fuzzy.Calculator.Add accepts, applied to every element.
// A nil calc uses fuzzy.NewCalculator().
// Errors: ErrLengthMismatch, or the first element error wrapped with its index.
func (a *Array) Add(calc *fuzzy.Calculator, other any) (*Array, error) {
	if calc == nil {
		calc = fuzzy.NewCalculator()
	}
	return a.apply("Add", calc.Add, other)
}

// Mul returns the element-wise product of a and other; see Add for operands.
func (a *Array) Mul(calc *fuzzy.Calculator, other any) (*Array, error) {
	if calc == nil {
		calc = fuzzy.NewCalculator()
	}
	return a.apply("Mul", calc.Mul, other)
}

// RAdd returns other + a, broadcasting calc.RAdd over the elements. Each
// element addition logs the calculator's promotion warning.
// Errors: as Add.
func (a *Array) RAdd(calc *fuzzy.Calculator, other any) (*Array, error) {
	if calc == nil {
		calc = fuzzy.NewCalculator()
	}
	return a.apply("RAdd", reflected(calc.RAdd), other)
}

// RMul returns other * a, broadcasting calc.RMul over the elements.
// Errors: as Mul.
func (a *Array) RMul(calc *fuzzy.Calculator, other any) (*Array, error) {
	if calc == nil {
		calc = fuzzy.NewCalculator()
	}
	return a.apply("RMul", reflected(calc.RMul), other)
}

func reflected(op func(other any, x fuzzy.FuzzyNumber) (fuzzy.FuzzyNumber, error)) binaryOp {
	return func(x fuzzy.FuzzyNumber, other any) (fuzzy.FuzzyNumber, error) { return op(other, x) }
}

func (a *Array) apply(tag string, op binaryOp, other any) (*Array, error) {
	out := make([]fuzzy.FuzzyNumber, len(a.items))
	if b, ok := other.(*Array); ok {
		if b == nil || b.Len() != a.Len() {
			return nil, fmt.Errorf("%s: %w", tag, ErrLengthMismatch)
		}
		for i, x := range a.items {
			r, err := op(x, b.items[i])
			if err != nil {
				return nil, fmt.Errorf("%s: index %d: %w", tag, i, err)
			}
			out[i] = r
		}
		return New(out...)
	}
	for i, x := range a.items {
		r, err := op(x, other)
		if err != nil {
			return nil, fmt.Errorf("%s: index %d: %w", tag, i, err)
		}
		out[i] = r
	}
	return New(out...)
}

// Field returns one named value per element: "a1".."a4" for any kind;
// "left", "mid", "right" for triangular arrays.
// Errors: ErrNoSuchField.
func (a *Array) Field(name string) ([]float64, error) {
	col := -1
	switch name {
	case "a1":
		col = 0
	case "a2":
		col = 1
	case "a3":
		col = 2
	case "a4":
		col = 3
	case "left", "mid", "right":
		if a.kind != fuzzy.KindTriangular {
			return nil, fmt.Errorf("Field(%q) on %s array: %w", name, a.kind, ErrNoSuchField)
		}
		col = map[string]int{"left": 0, "mid": 1, "right": 3}[name]
	default:
		return nil, fmt.Errorf("Field(%q): %w", name, ErrNoSuchField)
	}
	out := make([]float64, len(a.items))
	for i, v := range a.items {
		out[i] = v.Breakpoints()[col]
	}
	return out, nil
}

// Series is one labelled membership curve.
type Series struct {
	Label  string
	Points []fuzzy.Point
}

// Curves returns one Series per element for a renderer.
//
// Trapezoidal-kind arrays use fuzzy.Curve, so each element contributes its
// 3 or 4 vertices; generic arrays sample every element at n evenly spaced
// points. labels defaults to
// the element indices.
// Errors: ErrLabels, fuzzy.ErrSampleCount.
func (a *Array) Curves(n int, labels []string) ([]Series, error) {
	if labels == nil {
		labels = make([]string, len(a.items))
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}
	if len(labels) != len(a.items) {
		return nil, fmt.Errorf("Curves: %d labels for %d elements: %w", len(labels), len(a.items), ErrLabels)
	}
	out := make([]Series, len(a.items))
	for i, v := range a.items {
		var (
			pts []fuzzy.Point
			err error
		)
		if a.kind.IsA(fuzzy.KindTrapezoidal) {
			pts, err = fuzzy.Curve(v, n)
		} else {
			pts, err = fuzzy.Sample(v, n)
		}
		if err != nil {
			return nil, fmt.Errorf("Curves: index %d: %w", i, err)
		}
		out[i] = Series{Label: labels[i], Points: pts}
	}
	return out, nil
}
