// SPDX-License-Identifier: MIT
// Package: spikesync/builder
//
// impl_poisson.go — homogeneous Poisson spike train.
//
// Contract:
//   - duration finite and > 0, otherwise ErrBadSize.
//   - rate·duration ≤ MaxPoissonSpikes, otherwise ErrOptionViolation.
//   - Inter-spike intervals are Exp(rate); spikes lie in [offset, offset+duration).
//   - Same (duration, seed, options) ⇒ same train.
//
// Complexity: O(rate·duration) expected time and space.

package builder

import (
	"github.com/katalvlaran/spikesync/train"
)

// BuildPoisson draws a Poisson process of WithRate on [offset, offset+duration).
// The result may be empty for short durations or low rates.
func BuildPoisson(duration float64, seed int64, opts ...BuilderOption) (train.Timestamps, error) {
	if err := validatePositive(MethodPoisson, "duration", duration); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if expected := cfg.rate * duration; expected > MaxPoissonSpikes {
		return nil, builderErrorf(MethodPoisson, ErrOptionViolation, "expected %.0f spikes exceeds %d", expected, MaxPoissonSpikes)
	}

	rng := rngFrom(cfg, seed)
	end := cfg.offset + duration
	out := make([]float64, 0, int(cfg.rate*duration)+1)

	t := cfg.offset
	for {
		t += rng.ExpFloat64() / cfg.rate
		if t >= end {
			break
		}
		out = append(out, t)
	}

	// Exponential draws can underflow to 0 and repeat a time; normalize.
	return normalizeTimes(out), nil
}
