package numeric

import (
	"math/rand"
	"time"
)

// DefaultEpsilon is the comparison tolerance used when none is configured.
const DefaultEpsilon = 0.001

// Calc evaluates numeric utility operations with a configured comparison
// tolerance and random source. The zero-value configuration (default
// epsilon, time-seeded randomness) comes from New with no options.
type Calc struct {
	epsilon float64
	rng     *rand.Rand
}

// Option configures a Calc.
type Option func(*Calc)

// WithEpsilon overrides the default comparison tolerance. Values must be
// non-negative and finite; negative tolerances make NearlyEquals always
// return false.
func WithEpsilon(epsilon float64) Option {
	return func(c *Calc) {
		c.epsilon = epsilon
	}
}

// WithRand injects a random source. Tests use this for deterministic
// sampling and shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(c *Calc) {
		c.rng = rng
	}
}

// New creates a Calc with the provided options.
func New(opts ...Option) *Calc {
	c := &Calc{
		epsilon: DefaultEpsilon,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Epsilon returns the configured comparison tolerance.
func (c *Calc) Epsilon() float64 {
	return c.epsilon
}
