// SPDX-License-Identifier: MIT

// Command fuzzy evaluates, samples, combines and generates fuzzy numbers
// from the command line.
//
//	fuzzy membership --params 0,1,2 --x 0.5 --x 1.5
//	fuzzy curve --params 0,1,2,3 --points 50
//	fuzzy add --lhs 0,1,2 --rhs 1,2,3
//	fuzzy mul --lhs 0,1,2,3 --scalar 2 --reflected
//	fuzzy random triangular --n 5 --seed 42
//	fuzzy plot --number 0,1,2 --number 1,2,3,4 --out curves.png
//
// Three params build a triangular number, four a trapezoidal one.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
