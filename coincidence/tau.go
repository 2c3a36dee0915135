// SPDX-License-Identifier: MIT

package coincidence

import (
	"math"

	"github.com/katalvlaran/spikesync/train"
)

// Tau computes the adaptive coincidence window for spike i of a and spike j
// of b: half the smallest of the (up to four) inter-spike intervals adjacent
// to either spike.
//
// Algorithm:
//  1. Collect the intervals to the previous and next event of a at i and of
//     b at j, skipping missing neighbors.
//  2. tau = 0.5 · min(intervals), or 0 when no interval exists (two isolated
//     spikes never coincide).
//
// Shrinking any of the four intervals can only lower tau or keep it.
//
// Errors: train.ErrInvalidIndex when i or j is outside its train.
// Complexity: O(1) for time-stamp trains, O(gap) for indicator scans.
func Tau(a, b train.Sequence, i, j int) (float64, error) {
	if _, err := train.PreviousSpike(a, i); err != nil {
		return 0, err
	}
	if _, err := train.PreviousSpike(b, j); err != nil {
		return 0, err
	}

	return tau(a, b, i, j), nil
}

// tau is Tau without index validation.
func tau(a, b train.Sequence, i, j int) float64 {
	shortest := math.Inf(1)
	shortest = math.Min(shortest, gapBefore(a, i))
	shortest = math.Min(shortest, gapAfter(a, i))
	shortest = math.Min(shortest, gapBefore(b, j))
	shortest = math.Min(shortest, gapAfter(b, j))

	// No neighbor on any side.
	if math.IsInf(shortest, 1) {
		return 0
	}

	return 0.5 * shortest
}

// gapBefore returns the interval to the previous event, or +Inf when none.
func gapBefore(s train.Sequence, i int) float64 {
	prev := s.Previous(i)
	if prev == train.None {
		return math.Inf(1)
	}

	return s.Time(i) - s.Time(prev)
}

// gapAfter returns the interval to the next event, or +Inf when none.
func gapAfter(s train.Sequence, i int) float64 {
	next := s.Next(i)
	if next == train.None {
		return math.Inf(1)
	}

	return s.Time(next) - s.Time(i)
}
