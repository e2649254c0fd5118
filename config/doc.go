// SPDX-License-Identifier: MIT

// Package config loads fuzzy tool settings from YAML and holds the runtime
// addition strategy.
//
// A settings file looks like:
//
//	addition_strategy: default
//	log:
//	  level: warn
//	  development: false
//	random:
//	  seed: 42
//	  triangular: {n: 100, center_mean: 10, center_std: 2, left_min: 0.5, left_max: 1.5, right_min: 0.5, right_max: 1.5}
//
// FUZZY_ADDITION_STRATEGY, when set, overrides addition_strategy at Load.
package config
