// SPDX-License-Identifier: MIT

package fuzzy_test

import (
	"testing"

	"github.com/katalvlaran/fuzzy/fuzzy"
	"github.com/katalvlaran/fuzzy/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func mustTrap(t *testing.T, a1, a2, a3, a4 float64) fuzzy.Trapezoidal {
	t.Helper()
	tr, err := fuzzy.NewTrapezoidal(a1, a2, a3, a4)
	require.NoError(t, err)
	return tr
}

func mustTri(t *testing.T, a1, a2, a3 float64) fuzzy.Triangular {
	t.Helper()
	tri, err := fuzzy.NewTriangular(a1, a2, a3)
	require.NoError(t, err)
	return tri
}

func support(f fuzzy.FuzzyNumber) [2]float64 {
	lo, hi := f.Support()
	return [2]float64{lo, hi}
}

// TestAdd_ScalarShift keeps the concrete type and shifts the support (P4).
func TestAdd_ScalarShift(t *testing.T) {
	tr := mustTrap(t, 0, 1, 2, 3)
	res, err := fuzzy.Add(tr, 2.0)
	require.NoError(t, err)
	require.IsType(t, fuzzy.Trapezoidal{}, res)
	assert.Equal(t, [2]float64{2, 5}, support(res))

	tri := mustTri(t, 0, 1, 2)
	res, err = fuzzy.Add(tri, 2)
	require.NoError(t, err)
	got, ok := res.(fuzzy.Triangular)
	require.True(t, ok, "want Triangular, got %T", res)
	assert.Equal(t, [3]float64{2, 3, 4}, got.Vertices())

	res, err = fuzzy.Add(tri, fuzzy.Scalar(-1))
	require.NoError(t, err)
	assert.Equal(t, [2]float64{-1, 1}, support(res))
}

// TestAdd_ScalarPreservesShapes keeps a generic number's custom shapes.
func TestAdd_ScalarPreservesShapes(t *testing.T) {
	sq := func(a []float64) []float64 {
		out := make([]float64, len(a))
		for i, x := range a {
			out[i] = x * x
		}
		return out
	}
	n, err := fuzzy.New(0, 1, 2, 3, fuzzy.WithLeft(sq), fuzzy.WithRight(shape.Complement))
	require.NoError(t, err)

	res, err := fuzzy.Add(n, 10)
	require.NoError(t, err)
	shifted, ok := res.(fuzzy.Number)
	require.True(t, ok)
	assert.Equal(t, [4]float64{10, 11, 12, 13}, shifted.Breakpoints())
	assert.InDelta(t, n.Membership(0.5), shifted.Membership(10.5), 1e-12)
	assert.InDelta(t, 0.25, shifted.Membership(10.5), 1e-12)
}

// TestMul_ScalarScale keeps the type and scales the support (P5).
func TestMul_ScalarScale(t *testing.T) {
	tr := mustTrap(t, 0, 1, 2, 3)
	res, err := fuzzy.Mul(tr, 3.0)
	require.NoError(t, err)
	require.IsType(t, fuzzy.Trapezoidal{}, res)
	assert.Equal(t, [2]float64{0, 9}, support(res))

	tri := mustTri(t, 0, 1, 2)
	res, err = fuzzy.Mul(tri, 4.0)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0, 4, 8}, res.(fuzzy.Triangular).Vertices())

	n, _ := fuzzy.New(1, 2, 3, 4)
	res, err = fuzzy.Mul(n, 0.5)
	require.NoError(t, err)
	assert.Equal(t, [4]float64{0.5, 1, 1.5, 2}, res.Breakpoints())
	assert.Equal(t, fuzzy.KindGeneric, res.Kind())
}

// TestMul_NegativeScalarFailsValidation reverses the order and is rejected.
func TestMul_NegativeScalarFailsValidation(t *testing.T) {
	tr := mustTrap(t, 0, 1, 2, 3)
	res, err := fuzzy.Mul(tr, -1.0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, fuzzy.ErrValidation)
	assert.ErrorIs(t, err, fuzzy.ErrOrder)
	assert.Equal(t, fuzzy.Failed, fuzzy.Outcome(err))
}

// TestMul_CommutesWithScalar checks f*s == s*f (P10).
func TestMul_CommutesWithScalar(t *testing.T) {
	for _, f := range []fuzzy.FuzzyNumber{mustTrap(t, 0, 1, 2, 3), mustTri(t, -1, 0, 5)} {
		left, err := fuzzy.Mul(f, 2.0)
		require.NoError(t, err)
		right, err := fuzzy.RMul(2.0, f)
		require.NoError(t, err)
		assert.True(t, left.Equal(right))
		assert.Equal(t, left.Hash(), right.Hash())
	}
}

// TestAdd_TwoTriangulars sums vertices pairwise (P6).
func TestAdd_TwoTriangulars(t *testing.T) {
	res, err := fuzzy.Add(mustTri(t, 0, 1, 2), mustTri(t, 1, 2, 3))
	require.NoError(t, err)
	tri, ok := res.(fuzzy.Triangular)
	require.True(t, ok)
	assert.Equal(t, [3]float64{1, 3, 5}, tri.Vertices())
}

// TestAdd_FuzzyNotImplemented covers every pairing without an addition rule.
func TestAdd_FuzzyNotImplemented(t *testing.T) {
	tr := mustTrap(t, 0, 1, 2, 3)
	tri := mustTri(t, 0, 1, 2)
	n, _ := fuzzy.New(0, 1, 2, 3)

	pairs := [][2]fuzzy.FuzzyNumber{{tr, tr}, {tr, tri}, {tri, tr}, {n, n}, {n, tri}, {tri, n}}
	for _, p := range pairs {
		_, err := fuzzy.Add(p[0], p[1])
		assert.ErrorIs(t, err, fuzzy.ErrNotImplemented, "%s + %s", p[0].Kind(), p[1].Kind())
		assert.Equal(t, fuzzy.Failed, fuzzy.Outcome(err))
	}
}

// TestAdd_Strategies preserves the three-way failure taxonomy.
func TestAdd_Strategies(t *testing.T) {
	a, b := mustTri(t, 0, 1, 2), mustTri(t, 1, 2, 3)

	for _, st := range []fuzzy.AdditionStrategy{fuzzy.StrategyExtensionPrinciple, fuzzy.StrategyParametric} {
		calc := fuzzy.NewCalculator(fuzzy.WithStrategy(st))
		_, err := calc.Add(a, b)
		assert.ErrorIs(t, err, fuzzy.ErrNotImplemented, string(st))
		assert.True(t, st.Known())
	}

	calc := fuzzy.NewCalculator(fuzzy.WithStrategy("magic"))
	_, err := calc.Add(a, b)
	assert.ErrorIs(t, err, fuzzy.ErrUnknownStrategy)
	assert.False(t, fuzzy.AdditionStrategy("magic").Known())

	// Scalars never consult the strategy.
	res, err := calc.Add(a, 1.0)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{1, 3}, support(res))
}

// TestAdd_StrategySourceReadPerCall verifies the strategy is not cached.
func TestAdd_StrategySourceReadPerCall(t *testing.T) {
	current := fuzzy.StrategyDefault
	calc := fuzzy.NewCalculator(fuzzy.WithStrategySource(func() fuzzy.AdditionStrategy { return current }))
	a, b := mustTri(t, 0, 1, 2), mustTri(t, 1, 2, 3)

	_, err := calc.Add(a, b)
	require.NoError(t, err)

	current = fuzzy.StrategyParametric
	assert.Equal(t, fuzzy.StrategyParametric, calc.Strategy())
	_, err = calc.Add(a, b)
	assert.ErrorIs(t, err, fuzzy.ErrNotImplemented)

	current = "bogus"
	_, err = calc.Add(a, b)
	assert.ErrorIs(t, err, fuzzy.ErrUnknownStrategy)
}

// TestArithmetic_UnsupportedOperand signals "try the reflected form", not a failure.
func TestArithmetic_UnsupportedOperand(t *testing.T) {
	tr := mustTrap(t, 0, 1, 2, 3)
	for _, op := range []any{"2", nil, struct{}{}, []float64{1}, true} {
		res, err := fuzzy.Add(tr, op)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, fuzzy.ErrUnsupportedOperand, "%T", op)
		assert.Equal(t, fuzzy.Unsupported, fuzzy.Outcome(err))

		_, err = fuzzy.Mul(tr, op)
		assert.ErrorIs(t, err, fuzzy.ErrUnsupportedOperand, "%T", op)
	}
	_, err := fuzzy.Add(nil, 1.0)
	assert.ErrorIs(t, err, fuzzy.ErrUnsupportedOperand)
	assert.Equal(t, fuzzy.OK, fuzzy.Outcome(nil))
}

// TestRAdd_WarnsAndShifts logs an advisory warning and behaves like Add (P8).
func TestRAdd_WarnsAndShifts(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	calc := fuzzy.NewCalculator(fuzzy.WithLogger(zap.New(core)))

	res, err := calc.RAdd(2, mustTrap(t, 0, 1, 2, 3))
	require.NoError(t, err)
	require.IsType(t, fuzzy.Trapezoidal{}, res)
	assert.Equal(t, [2]float64{2, 5}, support(res))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Contains(t, entry.Message, "unexpected results")
	assert.Equal(t, "int", entry.ContextMap()["operand"])
}

// TestRMul_NoWarning multiplies silently.
func TestRMul_NoWarning(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	calc := fuzzy.NewCalculator(fuzzy.WithLogger(zap.New(core)))

	res, err := calc.RMul(3.0, mustTrap(t, 0, 1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, [2]float64{0, 9}, support(res))
	assert.Zero(t, logs.Len())
}

// TestMul_Fuzzy multiplies breakpoints pairwise for trapezoidal kinds.
func TestMul_Fuzzy(t *testing.T) {
	a, b := mustTri(t, 1, 2, 3), mustTri(t, 2, 3, 4)
	res, err := fuzzy.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{2, 6, 12}, res.(fuzzy.Triangular).Vertices())

	tr := mustTrap(t, 1, 2, 3, 4)
	res, err = fuzzy.Mul(tr, tr)
	require.NoError(t, err)
	require.IsType(t, fuzzy.Trapezoidal{}, res)
	assert.Equal(t, [4]float64{1, 4, 9, 16}, res.Breakpoints())

	// Mixed trapezoid/triangle pairs degrade to a trapezoid either way round.
	res, err = fuzzy.Mul(a, tr)
	require.NoError(t, err)
	assert.Equal(t, fuzzy.KindTrapezoidal, res.Kind())
	assert.Equal(t, [4]float64{1, 4, 6, 12}, res.Breakpoints())
	res, err = fuzzy.Mul(tr, a)
	require.NoError(t, err)
	assert.Equal(t, [4]float64{1, 4, 6, 12}, res.Breakpoints())

	n, _ := fuzzy.New(1, 2, 3, 4)
	_, err = fuzzy.Mul(n, tr)
	assert.ErrorIs(t, err, fuzzy.ErrNotImplemented)
	_, err = fuzzy.Mul(tr, n)
	assert.ErrorIs(t, err, fuzzy.ErrNotImplemented)
}

// TestOptions_PanicOnNil follows the fail-fast option contract.
func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { fuzzy.WithLogger(nil) })
	assert.Panics(t, func() { fuzzy.WithStrategySource(nil) })
	assert.Equal(t, fuzzy.StrategyDefault, fuzzy.NewCalculator().Strategy())
}

// TestArithmetic_PointerOperands treats pointers like the values they point to.
func TestArithmetic_PointerOperands(t *testing.T) {
	tri := mustTri(t, 0, 1, 2)
	trap := mustTrap(t, 0, 1, 2, 3)
	gen, err := fuzzy.New(0, 1, 2, 3)
	require.NoError(t, err)

	r, err := fuzzy.Add(&tri, 1)
	require.NoError(t, err)
	assert.IsType(t, fuzzy.Triangular{}, r)
	assert.Equal(t, [4]float64{1, 2, 2, 3}, r.Breakpoints())

	r, err = fuzzy.Add(tri, &tri)
	require.NoError(t, err)
	assert.Equal(t, fuzzy.KindTriangular, r.Kind())
	assert.Equal(t, [4]float64{0, 2, 2, 4}, r.Breakpoints())

	r, err = fuzzy.Mul(&trap, &trap)
	require.NoError(t, err)
	assert.IsType(t, fuzzy.Trapezoidal{}, r)
	assert.Equal(t, [4]float64{0, 1, 4, 9}, r.Breakpoints())

	r, err = fuzzy.RMul(2, &gen)
	require.NoError(t, err)
	assert.IsType(t, fuzzy.Number{}, r)

	pts, err := fuzzy.Curve(&tri, 10)
	require.NoError(t, err)
	assert.Len(t, pts, 3)
	pts, err = fuzzy.Sample(&gen, 5)
	require.NoError(t, err)
	assert.Len(t, pts, 5)

	assert.True(t, fuzzy.Equal(&tri, tri))
	assert.True(t, tri.Equal(&tri))
}

// TestArithmetic_NilPointerOperands reports nil pointers as unsupported.
func TestArithmetic_NilPointerOperands(t *testing.T) {
	tri := mustTri(t, 0, 1, 2)
	var none *fuzzy.Triangular

	assert.Nil(t, fuzzy.Value(none))

	_, err := fuzzy.Add(none, 1)
	assert.ErrorIs(t, err, fuzzy.ErrUnsupportedOperand)
	_, err = fuzzy.Mul(tri, none)
	assert.ErrorIs(t, err, fuzzy.ErrUnsupportedOperand)
	_, err = fuzzy.RAdd(1, none)
	assert.ErrorIs(t, err, fuzzy.ErrUnsupportedOperand)

	assert.False(t, fuzzy.Equal(tri, none))
	assert.True(t, fuzzy.Equal(none, nil))
	assert.False(t, tri.Equal(none))
}
