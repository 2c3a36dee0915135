// SPDX-License-Identifier: MIT
// Package: spikesync/builder
//
// sequence_primitives.go — shared helpers for train generators.
//
// Purpose:
//   - Provide deterministic RNG selection with cfg.rng priority.
//   - Normalize generated times into valid strictly increasing trains.
//
// Contract:
//   - Pure helpers (no global state).

package builder

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/spikesync/train"
)

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// normalizeTimes sorts ts in place and drops duplicates, so the result is
// strictly increasing. Complexity: O(n log n).
func normalizeTimes(ts []float64) train.Timestamps {
	sort.Float64s(ts)
	out := ts[:0]
	for i, t := range ts {
		if i > 0 && t == out[len(out)-1] {
			continue // collision: keep the first occurrence
		}
		out = append(out, t)
	}

	return train.Timestamps(out)
}
