// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// Option customizes constructors by mutating a builderConfig before any
// graph mutation happens.
type Option func(*builderConfig)

// builderConfig is the resolved set of builder knobs.
//
// Defaults:
//   - idFn     = DefaultIDFn     ("0","1","2",...)
//   - weightFn = DefaultWeightFn (always 1)
//   - rng      = seeded with defaultSeed, so unseeded runs are reproducible too
type builderConfig struct {
	idFn     IDFn
	weightFn WeightFn
	rng      *rand.Rand
}

const defaultSeed int64 = 1

// newBuilderConfig applies opts in order; later options override earlier ones.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
		rng:      rand.New(rand.NewSource(defaultSeed)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSeed reseeds the RNG used by RandomSparse and random weight functions.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithIDFn sets the vertex ID generator. Panics on nil.
func WithIDFn(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDFn(nil)")
	}

	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithWeightFn sets the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
