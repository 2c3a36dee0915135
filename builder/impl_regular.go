// SPDX-License-Identifier: MIT
// Package: spikesync/builder
//
// impl_regular.go — perfectly periodic spike train.
//
// Contract:
//   - n ≥ MinSpikes, otherwise ErrBadSize.
//   - t_k = offset + k·period, k ∈ [0, n).
//   - Deterministic; the RNG is never consulted.
//
// Complexity: O(n) time, O(n) space.

package builder

import (
	"github.com/katalvlaran/spikesync/train"
)

// BuildRegular returns n spikes spaced WithPeriod apart, starting WithOffset.
func BuildRegular(n int, opts ...BuilderOption) (train.Timestamps, error) {
	if err := validateMin(MethodRegular, n, MinSpikes); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	out := make(train.Timestamps, n)
	for k := 0; k < n; k++ {
		// multiply instead of accumulating to keep rounding error flat
		out[k] = cfg.offset + float64(k)*cfg.period
	}

	// Huge offsets can swallow a tiny period; refuse instead of returning
	// a train with duplicate times.
	if err := out.Validate(); err != nil {
		return nil, builderErrorf(MethodRegular, ErrOptionViolation, "period %g too small at offset %g: %v", cfg.period, cfg.offset, err)
	}

	return out, nil
}
