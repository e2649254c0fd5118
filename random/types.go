// SPDX-License-Identifier: MIT

package random

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var (
	// ErrBadParams indicates a negative count, a negative spread or a
	// non-finite distribution parameter.
	ErrBadParams = errors.New("random: invalid distribution parameters")

	// ErrNoSurvivors indicates that every draw was rejected.
	ErrNoSurvivors = errors.New("random: no valid fuzzy number was drawn")
)

// TriangularParams describes a triangular population:
// center ~ N(CenterMean, CenterStd), left spread ~ U(LeftMin, LeftMax),
// right spread ~ U(RightMin, RightMax). Spreads are taken in absolute value.
type TriangularParams struct {
	N          int     `yaml:"n"`
	CenterMean float64 `yaml:"center_mean"`
	CenterStd  float64 `yaml:"center_std"`
	LeftMin    float64 `yaml:"left_min"`
	LeftMax    float64 `yaml:"left_max"`
	RightMin   float64 `yaml:"right_min"`
	RightMax   float64 `yaml:"right_max"`
}

// TrapezoidalParams extends TriangularParams with a core width
// ~ U(WidthMin, WidthMax) centred on the drawn center.
type TrapezoidalParams struct {
	TriangularParams `yaml:",inline"`
	WidthMin         float64 `yaml:"width_min"`
	WidthMax         float64 `yaml:"width_max"`
}

// Validate checks N >= 0, CenterStd >= 0 and that every value is finite.
func (p TriangularParams) Validate() error {
	if p.N < 0 {
		return fmt.Errorf("n=%d: %w", p.N, ErrBadParams)
	}
	if p.CenterStd < 0 {
		return fmt.Errorf("center_std=%g: %w", p.CenterStd, ErrBadParams)
	}
	return finite([]param{
		{"center_mean", p.CenterMean}, {"center_std", p.CenterStd},
		{"left_min", p.LeftMin}, {"left_max", p.LeftMax},
		{"right_min", p.RightMin}, {"right_max", p.RightMax},
	})
}

// Validate checks the embedded triangular parameters and the width range.
func (p TrapezoidalParams) Validate() error {
	if err := p.TriangularParams.Validate(); err != nil {
		return err
	}
	return finite([]param{{"width_min", p.WidthMin}, {"width_max", p.WidthMax}})
}

type param struct {
	name  string
	value float64
}

// finite checks params in order so the reported field is deterministic.
func finite(params []param) error {
	for _, p := range params {
		if math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%s=%g: %w", p.name, p.value, ErrBadParams)
		}
	}
	return nil
}

// Option configures a generator call.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithSeed draws from a fresh deterministic source; seed 0 selects the
// package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand draws from r. Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("random: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

func gather(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(0)
	}
	return c
}
