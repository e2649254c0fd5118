// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/fuzzy/fuzzy"
	"github.com/spf13/cobra"
)

type binaryFunc func(x fuzzy.FuzzyNumber, other any) (fuzzy.FuzzyNumber, error)
type reflectedFunc func(other any, x fuzzy.FuzzyNumber) (fuzzy.FuzzyNumber, error)

// arithCmd builds "add" or "mul". The right operand is either --rhs or
// --scalar; --reflected evaluates it as the left operand.
func (a *app) arithCmd(name, short string) *cobra.Command {
	var (
		lhs, rhs  []float64
		scalar    float64
		reflected bool
	)
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Example: fmt.Sprintf(`  fuzzy %[1]s --lhs 0,1,2 --rhs 1,2,3
  fuzzy %[1]s --lhs 0,1,2,3 --scalar 2 --reflected`, name),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseNumber("lhs", lhs)
			if err != nil {
				return err
			}
			var other any = fuzzy.Scalar(scalar)
			if cmd.Flags().Changed("rhs") {
				if other, err = parseNumber("rhs", rhs); err != nil {
					return err
				}
			}

			op, rop := a.ops(name)
			var res fuzzy.FuzzyNumber
			if reflected {
				res, err = rop(other, x)
			} else {
				res, err = op(x, other)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&lhs, "lhs", nil, "left operand breakpoints")
	cmd.Flags().Float64SliceVar(&rhs, "rhs", nil, "right operand breakpoints")
	cmd.Flags().Float64Var(&scalar, "scalar", 0, "crisp right operand")
	cmd.Flags().BoolVar(&reflected, "reflected", false, "evaluate the right operand as the left one")
	_ = cmd.MarkFlagRequired("lhs")
	cmd.MarkFlagsMutuallyExclusive("rhs", "scalar")
	cmd.MarkFlagsOneRequired("rhs", "scalar")
	return cmd
}

func (a *app) ops(name string) (binaryFunc, reflectedFunc) {
	if name == "mul" {
		return a.calc.Mul, a.calc.RMul
	}
	return a.calc.Add, a.calc.RAdd
}
