// SPDX-License-Identifier: MIT

package random

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/fuzzy/collection"
	"github.com/katalvlaran/fuzzy/fuzzy"
)

// Triangular draws p.N candidate triangles and returns those that satisfy
// a1 < a2 < a3 and pass fuzzy.NewTriangular. Rejected draws are dropped
// silently, so the result may hold fewer than p.N elements.
//
// Candidate i:
//
//	c = N(CenterMean, CenterStd), l = |U(LeftMin, LeftMax)|, r = |U(RightMin, RightMax)|
//	(a1, a2, a3) = (c − l, c, c + r)
//
// Errors: ErrBadParams, ErrNoSurvivors.
func Triangular(p TriangularParams, opts ...Option) (*collection.Array, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Triangular: %w", err)
	}
	c := gather(opts)
	centers, lefts, rights := draws(c.rng, p)

	out := make([]fuzzy.FuzzyNumber, 0, p.N)
	for i := 0; i < p.N; i++ {
		a1 := centers[i] - math.Abs(lefts[i])
		a2 := centers[i]
		a3 := centers[i] + math.Abs(rights[i])
		if !(a1 < a2 && a2 < a3) {
			continue
		}
		t, err := fuzzy.NewTriangular(a1, a2, a3)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	return survivors("Triangular", out)
}

// Trapezoidal draws p.N candidate trapezoids and returns those that satisfy
// a1 < a2 <= a3 < a4 and pass fuzzy.NewTrapezoidal.
//
// Candidate i:
//
//	c, l, r as in Triangular, w = |U(WidthMin, WidthMax)|
//	a2 = c − w/2, a3 = c + w/2, a1 = a2 − l, a4 = a3 + r
//
// Errors: ErrBadParams, ErrNoSurvivors.
func Trapezoidal(p TrapezoidalParams, opts ...Option) (*collection.Array, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Trapezoidal: %w", err)
	}
	c := gather(opts)
	centers, lefts, rights := draws(c.rng, p.TriangularParams)
	widths := make([]float64, p.N)
	for i := range widths {
		widths[i] = uniform(c.rng, p.WidthMin, p.WidthMax)
	}

	out := make([]fuzzy.FuzzyNumber, 0, p.N)
	for i := 0; i < p.N; i++ {
		half := math.Abs(widths[i]) / 2
		a2 := centers[i] - half
		a3 := centers[i] + half
		a1 := a2 - math.Abs(lefts[i])
		a4 := a3 + math.Abs(rights[i])
		if !(a1 < a2 && a2 <= a3 && a3 < a4) {
			continue
		}
		t, err := fuzzy.NewTrapezoidal(a1, a2, a3, a4)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	return survivors("Trapezoidal", out)
}

// draws samples all centers, then all left spreads, then all right spreads.
func draws(r *rand.Rand, p TriangularParams) (centers, lefts, rights []float64) {
	centers = make([]float64, p.N)
	lefts = make([]float64, p.N)
	rights = make([]float64, p.N)
	for i := range centers {
		centers[i] = normal(r, p.CenterMean, p.CenterStd)
	}
	for i := range lefts {
		lefts[i] = uniform(r, p.LeftMin, p.LeftMax)
	}
	for i := range rights {
		rights[i] = uniform(r, p.RightMin, p.RightMax)
	}
	return centers, lefts, rights
}

func survivors(tag string, out []fuzzy.FuzzyNumber) (*collection.Array, error) {
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", tag, ErrNoSurvivors)
	}
	return collection.New(out...)
}
