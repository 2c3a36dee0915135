// SPDX-License-Identifier: MIT

package train

import (
	"fmt"
	"math"
)

// Len returns the number of events.
func (s Timestamps) Len() int { return len(s) }

// IsSpike is true for every slot: each timestamp is an event.
func (s Timestamps) IsSpike(int) bool { return true }

// Time returns the i-th event time.
func (s Timestamps) Time(i int) float64 { return s[i] }

// Discrete is always false for time-stamp trains.
func (s Timestamps) Discrete() bool { return false }

// Previous returns i-1, or None for the first event.
func (s Timestamps) Previous(i int) int {
	if i < 1 {
		return None
	}

	return i - 1
}

// Next returns i+1, or None for the last event.
func (s Timestamps) Next(i int) int {
	if i >= len(s)-1 {
		return None
	}

	return i + 1
}

// Validate checks that every timestamp is finite and that the sequence is
// strictly increasing. An empty train is valid.
// Complexity: O(Len).
func (s Timestamps) Validate() error {
	for i, t := range s {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("timestamp %d: %w", i, ErrNonFinite)
		}
		if i > 0 && t <= s[i-1] {
			return fmt.Errorf("timestamp %d (%g after %g): %w", i, t, s[i-1], ErrNotIncreasing)
		}
	}

	return nil
}
