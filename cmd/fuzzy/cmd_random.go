// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/fuzzy/collection"
	"github.com/katalvlaran/fuzzy/random"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) randomCmd() *cobra.Command {
	var (
		n    int
		seed int64
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Draw a random population of fuzzy numbers",
		Long: `Draws a population with the distribution parameters of the settings file
(random.triangular / random.trapezoidal). Draws that do not form a valid
fuzzy number are dropped, so fewer than --n numbers may be printed.`,
	}
	cmd.PersistentFlags().IntVar(&n, "n", 0, "population size (overrides settings)")
	cmd.PersistentFlags().Int64Var(&seed, "seed", 0, "RNG seed (overrides settings; 0 keeps the default seed)")

	opts := func(c *cobra.Command) []random.Option {
		s := a.settings.Random.Seed
		if c.Flags().Changed("seed") {
			s = seed
		}
		return []random.Option{random.WithSeed(s)}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "triangular",
			Short: "Triangular population",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, args []string) error {
				p := a.settings.Random.Triangular
				if c.Flags().Changed("n") {
					p.N = n
				}
				arr, err := random.Triangular(p, opts(c)...)
				if err != nil {
					return err
				}
				return a.printArray(c, arr, p.N)
			},
		},
		&cobra.Command{
			Use:   "trapezoidal",
			Short: "Trapezoidal population",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, args []string) error {
				p := a.settings.Random.Trapezoidal
				if c.Flags().Changed("n") {
					p.N = n
				}
				arr, err := random.Trapezoidal(p, opts(c)...)
				if err != nil {
					return err
				}
				return a.printArray(c, arr, p.N)
			},
		},
	)
	return cmd
}

func (a *app) printArray(cmd *cobra.Command, arr *collection.Array, requested int) error {
	if dropped := requested - arr.Len(); dropped > 0 {
		a.logger.Info("invalid draws dropped",
			zap.Int("requested", requested),
			zap.Int("dropped", dropped))
	}
	out := cmd.OutOrStdout()
	for _, f := range arr.All() {
		if _, err := fmt.Fprintln(out, f); err != nil {
			return err
		}
	}
	return nil
}
