// SPDX-License-Identifier: MIT
// Package fuzzy: functional configuration for Calculator.
//
// Contract:
//   - Option constructors validate and panic on nonsensical values
//     (programmer error); arithmetic itself never panics.
//   - No hidden globals: the addition strategy flows through the Calculator,
//     either as a fixed value or as a source read on every call.

package fuzzy

import "go.uber.org/zap"

// DefaultStrategy is the addition strategy of a zero-option Calculator.
const DefaultStrategy = StrategyDefault

const (
	panicNilStrategySource = "fuzzy: WithStrategySource(nil)"
	panicNilLogger         = "fuzzy: WithLogger(nil)"
)

// Option configures a Calculator.
type Option func(*Calculator)

// WithStrategy fixes the addition strategy. Unknown names are accepted here
// and rejected by Add with ErrUnknownStrategy.
func WithStrategy(s AdditionStrategy) Option {
	return func(c *Calculator) {
		c.strategy = func() AdditionStrategy { return s }
	}
}

// WithStrategySource reads the addition strategy from src on every
// fuzzy-by-fuzzy addition. The value is never cached.
// Panics on nil.
func WithStrategySource(src func() AdditionStrategy) Option {
	if src == nil {
		panic(panicNilStrategySource)
	}
	return func(c *Calculator) {
		c.strategy = src
	}
}

// WithLogger sets the logger advisory warnings go to. Without it the
// calculator uses zap.L() at the time of each warning.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(c *Calculator) {
		c.logger = l
	}
}
