// SPDX-License-Identifier: MIT

package fuzzy

// Kind tags the closed set of fuzzy number variants.
//
// The variants form a chain: every Triangular is a Trapezoidal, and every
// Trapezoidal is a Generic fuzzy number.
type Kind int

const (
	// KindGeneric is a Number with arbitrary shape functions.
	KindGeneric Kind = iota

	// KindTrapezoidal has linear ramps and a flat core.
	KindTrapezoidal

	// KindTriangular is a trapezoid whose core is a single point.
	KindTriangular
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "FuzzyNumber"
	case KindTrapezoidal:
		return "TrapezoidalFuzzyNumber"
	case KindTriangular:
		return "TriangularFuzzyNumber"
	default:
		return "Kind(?)"
	}
}

// IsA reports whether a value of kind k may stand where kind o is expected.
func (k Kind) IsA(o Kind) bool { return k >= o }

// CommonKind returns the most specific kind every argument IsA.
// With no arguments it returns KindGeneric.
func CommonKind(kinds ...Kind) Kind {
	if len(kinds) == 0 {
		return KindGeneric
	}
	common := kinds[0]
	for _, k := range kinds[1:] {
		if k < common {
			common = k
		}
	}
	return common
}

// FuzzyNumber is implemented by Number, Trapezoidal and Triangular only.
type FuzzyNumber interface {
	// Kind returns the concrete variant.
	Kind() Kind
	// Breakpoints returns (a1, a2, a3, a4).
	Breakpoints() [4]float64
	// Support returns (a1, a4).
	Support() (float64, float64)
	// Core returns (a2, a3).
	Core() (float64, float64)
	// Membership returns the degree of x in [0,1].
	Membership(x float64) float64
	// Equal compares breakpoints with a tolerance; shapes are ignored.
	Equal(other any) bool
	// Hash is derived from the breakpoints only.
	Hash() uint64
	String() string

	generic() Number
}

// Value returns f in value form: *Number, *Trapezoidal and *Triangular are
// dereferenced, and nil pointers become a nil FuzzyNumber. Arithmetic,
// curves and equality normalize their operands through Value, so pointer
// and value operands behave alike.
func Value(f FuzzyNumber) FuzzyNumber {
	switch v := f.(type) {
	case *Triangular:
		if v == nil {
			return nil
		}
		return *v
	case *Trapezoidal:
		if v == nil {
			return nil
		}
		return *v
	case *Number:
		if v == nil {
			return nil
		}
		return *v
	}
	return f
}

// Scalar is a crisp operand for Add/Mul. Plain Go numeric values are
// accepted as well.
type Scalar float64

// AdditionStrategy names how two fuzzy numbers are added.
type AdditionStrategy string

const (
	// StrategyDefault delegates to the variant-specific rule.
	StrategyDefault AdditionStrategy = "default"

	// StrategyExtensionPrinciple is recognized but not implemented.
	StrategyExtensionPrinciple AdditionStrategy = "extension_principle"

	// StrategyParametric is recognized but not implemented.
	StrategyParametric AdditionStrategy = "parametric"
)

// Known reports whether s is one of the recognized strategies.
func (s AdditionStrategy) Known() bool {
	switch s {
	case StrategyDefault, StrategyExtensionPrinciple, StrategyParametric:
		return true
	}
	return false
}

// Point is one (x, membership) sample of a curve.
type Point struct {
	X  float64 `json:"x" yaml:"x"`
	Mu float64 `json:"membership" yaml:"membership"`
}
