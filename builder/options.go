// SPDX-License-Identifier: MIT
// Package: spikesync/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand,
//     otherwise by the generator's own seed argument.

package builder

import (
	"math"
	"math/rand" // RNG source for stochastic generators
)

// BuilderOption customizes a generator by mutating a builderConfig instance
// before the train is produced.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG shared by stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		// Attach the RNG; callers decide the seed policy.
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// It overrides the seed argument of every generator it is passed to.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// Seeded source → reproducible draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPeriod sets the inter-spike interval of BuildRegular.
// Panics unless p is finite and > 0.
func WithPeriod(p float64) BuilderOption {
	if !(p > 0) || math.IsInf(p, 0) {
		panic("builder: WithPeriod(p<=0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.period = p
	}
}

// WithOffset sets the first spike time of BuildRegular and the start of the
// BuildPoisson interval. Panics on NaN/Inf.
func WithOffset(t0 float64) BuilderOption {
	if math.IsNaN(t0) || math.IsInf(t0, 0) {
		panic("builder: WithOffset(non-finite)")
	}
	return func(c *builderConfig) {
		c.offset = t0
	}
}

// WithRate sets the Poisson rate (spikes per time unit).
// Panics unless rate is finite and > 0.
func WithRate(rate float64) BuilderOption {
	if !(rate > 0) || math.IsInf(rate, 0) {
		panic("builder: WithRate(rate<=0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.rate = rate
	}
}

// WithJitter sets the Gaussian jitter sigma of BuildJittered.
// Panics unless sigma is finite and ≥ 0.
func WithJitter(sigma float64) BuilderOption {
	if !(sigma >= 0) || math.IsInf(sigma, 0) {
		panic("builder: WithJitter(sigma<0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.jitter = sigma
	}
}

// WithDropout sets the probability that BuildJittered deletes a spike.
// Out-of-range values are NOT rejected here: they surface as
// ErrInvalidProbability from the generator, so callers forwarding user
// input (CLI flags) get an error instead of a panic.
func WithDropout(p float64) BuilderOption {
	return func(c *builderConfig) {
		c.dropout = p
	}
}
