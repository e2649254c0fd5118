// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/fuzzy/config"
	"github.com/katalvlaran/fuzzy/fuzzy"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	// flags
	configPath string
	verbose    bool
	strategy   string

	settings *config.Settings
	store    *config.Store
	calc     *fuzzy.Calculator

	// logger is built from settings unless preset.
	logger      *zap.Logger
	ownedLogger bool
}

func newRootCmd() *cobra.Command {
	return (&app{}).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fuzzy",
		Short: "Fuzzy number toolkit",
		Long: `fuzzy evaluates membership degrees, samples membership curves,
adds and multiplies fuzzy numbers and draws random populations.

Fuzzy numbers are given as comma separated breakpoints:
  a1,a2,a3     triangular
  a1,a2,a3,a4  trapezoidal`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.ownedLogger && a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML settings file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&a.strategy, "strategy", "", "addition strategy (default, extension_principle, parametric)")

	root.AddCommand(
		a.membershipCmd(),
		a.curveCmd(),
		a.arithCmd("add", "Add two fuzzy numbers or shift one by a scalar"),
		a.arithCmd("mul", "Multiply two fuzzy numbers or scale one by a scalar"),
		a.randomCmd(),
		a.plotCmd(),
	)
	return root
}

// setup loads settings, then applies flag overrides, builds the logger and
// binds a calculator to the strategy store.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("strategy") {
		settings.AdditionStrategy = fuzzy.AdditionStrategy(a.strategy)
	}
	if a.verbose {
		settings.Log.Level = zapcore.DebugLevel.String()
	}
	a.settings = settings

	if a.logger == nil {
		if a.logger, err = settings.Logger(); err != nil {
			return err
		}
		a.ownedLogger = true
	}

	a.store = config.NewStore(settings.AdditionStrategy)
	a.calc = a.store.Calculator(a.logger)
	a.logger.Debug("settings loaded",
		zap.String("config", a.configPath),
		zap.String("strategy", string(a.store.Get())),
		zap.String("level", settings.Log.Level))
	return nil
}

// parseNumber builds a triangular (3 values) or trapezoidal (4 values) number.
func parseNumber(flag string, vals []float64) (fuzzy.FuzzyNumber, error) {
	switch len(vals) {
	case 3:
		t, err := fuzzy.NewTriangular(vals[0], vals[1], vals[2])
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", flag, err)
		}
		return t, nil
	case 4:
		t, err := fuzzy.NewTrapezoidal(vals[0], vals[1], vals[2], vals[3])
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", flag, err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("--%s: want 3 or 4 breakpoints, got %d", flag, len(vals))
	}
}
