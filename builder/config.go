// SPDX-License-Identifier: MIT
// Package: spikesync/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng     = nil   (generators fall back to their explicit seed)
//   • period  = 1.0
//   • offset  = 0.0
//   • rate    = 1.0
//   • jitter  = 0.0
//   • dropout = 0.0

package builder

import (
	"math/rand" // RNG for stochastic generators
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “seed from the call argument”.
	rng *rand.Rand

	// Regular train controls.
	period float64 // >0
	offset float64 // any finite real

	// Poisson train controls.
	rate float64 // >0, spikes per time unit

	// Jitter controls.
	jitter  float64 // Gaussian sigma ≥0
	dropout float64 // probability in [0,1]
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	// Start with strict, deterministic defaults.
	cfg := builderConfig{
		rng:     nil,            // no shared RNG unless explicitly set
		period:  DefaultPeriod,  // 1.0
		offset:  DefaultOffset,  // 0.0
		rate:    DefaultRate,    // 1.0
		jitter:  DefaultJitter,  // 0.0
		dropout: DefaultDropout, // 0.0
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// Return by value to encourage immutability for callers.
	return cfg
}
