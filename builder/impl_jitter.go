// SPDX-License-Identifier: MIT
// Package: spikesync/builder
//
// impl_jitter.go — noisy copy of an existing train.
//
// Contract:
//   - base must pass train.Timestamps.Validate, otherwise ErrOptionViolation.
//   - dropout ∈ [0,1], otherwise ErrInvalidProbability.
//   - Each spike is dropped with probability dropout, then shifted by
//     N(0, jitter²). Output is sorted; colliding times are collapsed.
//   - base is never mutated.
//
// Complexity: O(n log n) time, O(n) space.

package builder

import (
	"github.com/katalvlaran/spikesync/train"
)

// BuildJittered returns a jittered, optionally thinned copy of base.
// With the default options (jitter 0, dropout 0) it is an exact copy.
func BuildJittered(base train.Timestamps, seed int64, opts ...BuilderOption) (train.Timestamps, error) {
	if err := base.Validate(); err != nil {
		return nil, builderErrorf(MethodJittered, ErrOptionViolation, "invalid base train: %v", err)
	}
	cfg := newBuilderConfig(opts...)
	if err := validateProbability(MethodJittered, cfg.dropout); err != nil {
		return nil, err
	}

	rng := rngFrom(cfg, seed)
	out := make([]float64, 0, len(base))
	for _, t := range base {
		// Stage 1: thinning. Draw only when dropout is active so that the
		// jitter stream is identical for dropout=0 and the default.
		if cfg.dropout > 0 && rng.Float64() < cfg.dropout {
			continue
		}
		// Stage 2: displacement.
		if cfg.jitter > 0 {
			t += rng.NormFloat64() * cfg.jitter
		}
		out = append(out, t)
	}

	// Stage 3: restore strict ordering.
	return normalizeTimes(out), nil
}
