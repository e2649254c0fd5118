// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/fuzzy/fuzzy"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) membershipCmd() *cobra.Command {
	var (
		params []float64
		xs     []float64
	)
	cmd := &cobra.Command{
		Use:   "membership",
		Short: "Print the membership degree of each --x",
		Example: `  fuzzy membership --params 0,1,2 --x 0.5 --x 1
  fuzzy membership --params 0,1,2,3 --x 1.5,2.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseNumber("params", params)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, x := range xs {
				fmt.Fprintf(out, "%g\t%g\n", x, f.Membership(x))
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&params, "params", nil, "breakpoints a1,a2,a3[,a4]")
	cmd.Flags().Float64SliceVar(&xs, "x", nil, "points to evaluate (repeatable)")
	_ = cmd.MarkFlagRequired("params")
	_ = cmd.MarkFlagRequired("x")
	return cmd
}

func (a *app) curveCmd() *cobra.Command {
	var (
		params []float64
		points int
		sample bool
	)
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print the points that draw a membership curve",
		Long: `Prints x and membership, one point per line.

By default only the vertices of the piecewise-linear curve are printed.
With --sample, --points evenly spaced samples over the support are printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseNumber("params", params)
			if err != nil {
				return err
			}
			var pts []fuzzy.Point
			if sample {
				pts, err = fuzzy.Sample(f, points)
			} else {
				pts, err = fuzzy.Curve(f, points)
			}
			if err != nil {
				return err
			}
			a.logger.Debug("curve", zap.Stringer("number", f), zap.Int("points", len(pts)))
			out := cmd.OutOrStdout()
			for _, p := range pts {
				fmt.Fprintf(out, "%g\t%g\n", p.X, p.Mu)
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&params, "params", nil, "breakpoints a1,a2,a3[,a4]")
	cmd.Flags().IntVar(&points, "points", fuzzy.DefaultSamples, "sample count for --sample")
	cmd.Flags().BoolVar(&sample, "sample", false, "sample the membership function instead of listing vertices")
	_ = cmd.MarkFlagRequired("params")
	return cmd
}
