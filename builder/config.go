// SPDX-License-Identifier: MIT
// Package: gridsssp/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil              (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn  (constant DefaultEdgeWeight)
//   • decimals = 2                (weights rounded like the "%.2f" test inputs)

package builder

import (
	"math"
	"math/rand"
)

// defaultDecimals matches the two-decimal weights of the reference inputs.
const defaultDecimals = 2

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic weights; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator, called once per emitted edge.
	weightFn WeightFn
	// Number of decimals weights are rounded to; negative disables rounding.
	decimals int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		decimals: defaultDecimals,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight and applies rounding.
func (c builderConfig) weight() float64 {
	w := c.weightFn(c.rng)
	if c.decimals < 0 {
		return w
	}
	p := math.Pow(10, float64(c.decimals))

	return math.Round(w*p) / p
}
