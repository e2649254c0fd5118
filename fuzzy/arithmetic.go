// SPDX-License-Identifier: MIT

package fuzzy

import (
	"fmt"

	"go.uber.org/zap"
)

// Calculator performs fuzzy arithmetic under an addition strategy.
// It holds no mutable state and is safe for concurrent use as long as its
// strategy source is.
type Calculator struct {
	strategy func() AdditionStrategy
	logger   *zap.Logger
}

// NewCalculator returns a Calculator using StrategyDefault unless configured
// otherwise.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	if c.strategy == nil {
		c.strategy = func() AdditionStrategy { return DefaultStrategy }
	}
	return c
}

var defaultCalculator = NewCalculator()

// Add is NewCalculator().Add.
func Add(x FuzzyNumber, other any) (FuzzyNumber, error) { return defaultCalculator.Add(x, other) }

// Mul is NewCalculator().Mul.
func Mul(x FuzzyNumber, other any) (FuzzyNumber, error) { return defaultCalculator.Mul(x, other) }

// RAdd is NewCalculator().RAdd.
func RAdd(other any, x FuzzyNumber) (FuzzyNumber, error) { return defaultCalculator.RAdd(other, x) }

// RMul is NewCalculator().RMul.
func RMul(other any, x FuzzyNumber) (FuzzyNumber, error) { return defaultCalculator.RMul(other, x) }

// Strategy returns the addition strategy currently in effect.
func (c *Calculator) Strategy() AdditionStrategy { return c.strategy() }

// Add returns x + other.
//
//   - scalar: every breakpoint shifted; result has x's concrete type and shapes.
//   - fuzzy number: dispatched on the current strategy.
//     default → Triangular + Triangular sums vertices pairwise; any other
//     pairing is ErrNotImplemented. extension_principle and parametric →
//     ErrNotImplemented. Anything else → ErrUnknownStrategy.
//   - anything else: ErrUnsupportedOperand.
func (c *Calculator) Add(x FuzzyNumber, other any) (FuzzyNumber, error) {
	x = Value(x)
	if x == nil {
		return nil, fuzzyErrorf("Add", fmt.Errorf("nil receiver: %w", ErrUnsupportedOperand))
	}
	if s, ok := toScalar(other); ok {
		r, err := mapBreakpoints(x, func(v float64) float64 { return v + s })
		if err != nil {
			return nil, fuzzyErrorf("Add", err)
		}
		return r, nil
	}
	y, ok := other.(FuzzyNumber)
	if ok {
		y = Value(y)
	}
	if !ok || y == nil {
		return nil, fuzzyErrorf("Add", fmt.Errorf("%T: %w", other, ErrUnsupportedOperand))
	}

	switch st := c.strategy(); st {
	case StrategyDefault:
		r, err := addDefault(x, y)
		if err != nil {
			return nil, fuzzyErrorf("Add", err)
		}
		return r, nil
	case StrategyExtensionPrinciple, StrategyParametric:
		return nil, fuzzyErrorf("Add", fmt.Errorf("%s addition: %w", st, ErrNotImplemented))
	default:
		return nil, fuzzyErrorf("Add", fmt.Errorf("%q: %w", string(st), ErrUnknownStrategy))
	}
}

// RAdd returns other + x where other is not a fuzzy-aware value. It logs an
// advisory warning, then behaves exactly like Add(x, other).
func (c *Calculator) RAdd(other any, x FuzzyNumber) (FuzzyNumber, error) {
	x = Value(x)
	fields := []zap.Field{zap.String("operand", fmt.Sprintf("%T", other))}
	if x != nil {
		fields = append(fields, zap.Stringer("fuzzy", x))
	}
	c.log().Warn("upper casting to FuzzyNumber may lead to unexpected results", fields...)
	return c.Add(x, other)
}

// Mul returns x * other.
//
//   - scalar: every breakpoint scaled; result has x's concrete type and shapes.
//     A negative scalar reverses the breakpoint order and fails validation.
//   - Triangular × Triangular: vertices multiplied pairwise (Triangular).
//   - other trapezoidal-kind pairs: breakpoints multiplied pairwise
//     (Trapezoidal). Only an approximation, sound for positive numbers.
//   - any generic operand: ErrNotImplemented.
//   - anything else: ErrUnsupportedOperand.
func (c *Calculator) Mul(x FuzzyNumber, other any) (FuzzyNumber, error) {
	x = Value(x)
	if x == nil {
		return nil, fuzzyErrorf("Mul", fmt.Errorf("nil receiver: %w", ErrUnsupportedOperand))
	}
	if s, ok := toScalar(other); ok {
		r, err := mapBreakpoints(x, func(v float64) float64 { return v * s })
		if err != nil {
			return nil, fuzzyErrorf("Mul", err)
		}
		return r, nil
	}
	y, ok := other.(FuzzyNumber)
	if ok {
		y = Value(y)
	}
	if !ok || y == nil {
		return nil, fuzzyErrorf("Mul", fmt.Errorf("%T: %w", other, ErrUnsupportedOperand))
	}
	r, err := mulFuzzy(x, y)
	if err != nil {
		return nil, fuzzyErrorf("Mul", err)
	}
	return r, nil
}

// RMul returns other * x; multiplication commutes, so no warning is logged.
func (c *Calculator) RMul(other any, x FuzzyNumber) (FuzzyNumber, error) {
	return c.Mul(x, other)
}

func (c *Calculator) log() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}
	return zap.L()
}

// addDefault implements the default strategy for two fuzzy numbers.
func addDefault(x, y FuzzyNumber) (FuzzyNumber, error) {
	tx, okx := x.(Triangular)
	ty, oky := y.(Triangular)
	if okx && oky {
		return NewTriangular(tx.Left()+ty.Left(), tx.Mid()+ty.Mid(), tx.Right()+ty.Right())
	}
	return nil, fmt.Errorf("%s + %s must be implemented by a specialized type: %w", x.Kind(), y.Kind(), ErrNotImplemented)
}

func mulFuzzy(x, y FuzzyNumber) (FuzzyNumber, error) {
	tx, okx := x.(Triangular)
	ty, oky := y.(Triangular)
	if okx && oky {
		return NewTriangular(tx.Left()*ty.Left(), tx.Mid()*ty.Mid(), tx.Right()*ty.Right())
	}
	if x.Kind().IsA(KindTrapezoidal) && y.Kind().IsA(KindTrapezoidal) {
		a, b := x.Breakpoints(), y.Breakpoints()
		return trapezoidFrom([4]float64{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]})
	}
	return nil, fmt.Errorf("%s * %s must be implemented by a specialized type: %w", x.Kind(), y.Kind(), ErrNotImplemented)
}

// mapBreakpoints applies f to every breakpoint of x, keeping its concrete type.
func mapBreakpoints(x FuzzyNumber, f func(float64) float64) (FuzzyNumber, error) {
	switch v := x.(type) {
	case Triangular:
		return NewTriangular(f(v.Left()), f(v.Mid()), f(v.Right()))
	case Trapezoidal:
		a := v.a
		return NewTrapezoidal(f(a[0]), f(a[1]), f(a[2]), f(a[3]))
	case Number:
		a := v.a
		return v.withBreakpoints([4]float64{f(a[0]), f(a[1]), f(a[2]), f(a[3])})
	default:
		return nil, fmt.Errorf("%T: %w", x, ErrUnsupportedOperand)
	}
}

// toScalar accepts Scalar and the Go integer and float kinds.
func toScalar(v any) (float64, bool) {
	switch s := v.(type) {
	case Scalar:
		return float64(s), true
	case float64:
		return s, true
	case float32:
		return float64(s), true
	case int:
		return float64(s), true
	case int8:
		return float64(s), true
	case int16:
		return float64(s), true
	case int32:
		return float64(s), true
	case int64:
		return float64(s), true
	case uint:
		return float64(s), true
	case uint8:
		return float64(s), true
	case uint16:
		return float64(s), true
	case uint32:
		return float64(s), true
	case uint64:
		return float64(s), true
	}
	return 0, false
}
