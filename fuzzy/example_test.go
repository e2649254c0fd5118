// SPDX-License-Identifier: MIT

package fuzzy_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fuzzy/fuzzy"
	"github.com/katalvlaran/fuzzy/shape"
)

// ExampleNewTrapezoidal evaluates the membership of a trapezoid on its
// ramps, core and outside its support.
func ExampleNewTrapezoidal() {
	t, err := fuzzy.NewTrapezoidal(0, 1, 3, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, x := range []float64{-1, 0.5, 2, 3.5, 4} {
		fmt.Printf("mu(%g)=%g\n", x, t.Membership(x))
	}
	// Output:
	// mu(-1)=0
	// mu(0.5)=0.5
	// mu(2)=1
	// mu(3.5)=0.5
	// mu(4)=0
}

// ExampleAdd adds two triangular numbers and shifts one by a scalar.
func ExampleAdd() {
	a, _ := fuzzy.NewTriangular(0, 1, 2)
	b, _ := fuzzy.NewTriangular(1, 2, 3)

	sum, err := fuzzy.Add(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sum)

	shifted, _ := fuzzy.Add(a, 2.0)
	fmt.Println(shifted)
	// Output:
	// TriangularFuzzyNumber(left=1, mid=3, right=5)
	// TriangularFuzzyNumber(left=2, mid=3, right=4)
}

// ExampleCalculator_Add shows the failure taxonomy of fuzzy addition.
func ExampleCalculator_Add() {
	a, _ := fuzzy.NewTrapezoidal(0, 1, 2, 3)
	b, _ := fuzzy.NewTrapezoidal(1, 2, 3, 4)

	_, err := fuzzy.NewCalculator().Add(a, b)
	fmt.Println(errors.Is(err, fuzzy.ErrNotImplemented), fuzzy.Outcome(err))

	_, err = fuzzy.NewCalculator(fuzzy.WithStrategy("nope")).Add(a, b)
	fmt.Println(errors.Is(err, fuzzy.ErrUnknownStrategy))

	_, err = fuzzy.Add(a, "1")
	fmt.Println(fuzzy.Outcome(err))
	// Output:
	// true failed
	// true
	// unsupported
}

// ExampleNew builds a generalized number with a custom left slope.
func ExampleNew() {
	quadratic := func(alpha []float64) []float64 {
		out := make([]float64, len(alpha))
		for i, a := range alpha {
			out[i] = a * a
		}
		return out
	}
	n, err := fuzzy.New(0, 2, 3, 4, fuzzy.WithLeft(quadratic), fuzzy.WithRight(shape.Complement))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n.Membership(1), n.Membership(3.5))

	_, err = fuzzy.New(0, 2, 3, 4, fuzzy.WithLeft(quadratic))
	fmt.Println(errors.Is(err, fuzzy.ErrUndefinedPairing))
	// Output:
	// 0.25 0.5
	// true
}
