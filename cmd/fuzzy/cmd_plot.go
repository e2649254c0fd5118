// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/fuzzy/collection"
	"github.com/katalvlaran/fuzzy/fuzzy"
	"github.com/katalvlaran/fuzzy/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) plotCmd() *cobra.Command {
	var (
		numbers []string
		out     string
		title   string
		points  int
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render membership curves to an image",
		Long: `Draws one curve per --number, labelled with its breakpoints.
The output format follows the --out extension: png, svg, pdf, jpg, tiff, eps.`,
		Example: `  fuzzy plot --number 0,1,2 --number 1,2,3,4 --out curves.png`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]fuzzy.FuzzyNumber, len(numbers))
			for i, s := range numbers {
				vals, err := parseList(s)
				if err != nil {
					return fmt.Errorf("--number %q: %w", s, err)
				}
				if items[i], err = parseNumber("number", vals); err != nil {
					return err
				}
			}
			arr, err := collection.New(items...)
			if err != nil {
				return err
			}
			series, err := arr.Curves(points, numbers)
			if err != nil {
				return err
			}
			if err := render.Save(out, series, render.WithTitle(title)); err != nil {
				return err
			}
			a.logger.Debug("plot saved", zap.String("path", out), zap.Int("curves", len(series)))
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&numbers, "number", nil, "breakpoints a1,a2,a3[,a4] (repeatable)")
	cmd.Flags().StringVar(&out, "out", "membership.png", "output file")
	cmd.Flags().StringVar(&title, "title", "membership", "plot title")
	cmd.Flags().IntVar(&points, "points", fuzzy.DefaultSamples, "samples per generic curve")
	_ = cmd.MarkFlagRequired("number")
	return cmd
}

// parseList splits "a,b,c" into floats.
func parseList(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
