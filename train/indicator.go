// SPDX-License-Identifier: MIT

package train

// Len returns the number of slots.
func (s Indicator) Len() int { return len(s) }

// IsSpike reports whether slot i equals Spike.
func (s Indicator) IsSpike(i int) bool { return s[i] == Spike }

// Time returns the slot index as a time.
func (s Indicator) Time(i int) float64 { return float64(i) }

// Discrete is always true for indicator trains.
func (s Indicator) Discrete() bool { return true }

// Previous scans backward from i (exclusive) for the nearest event.
// Complexity: O(i).
func (s Indicator) Previous(i int) int {
	for n := i - 1; n >= 0; n-- {
		if s[n] == Spike {
			return n
		}
	}

	return None
}

// Next scans forward from i (exclusive) for the nearest event.
// Complexity: O(Len-i).
func (s Indicator) Next(i int) int {
	for n := i + 1; n < len(s); n++ {
		if s[n] == Spike {
			return n
		}
	}

	return None
}

// SpikeCount returns the number of event slots.
func (s Indicator) SpikeCount() int {
	count := 0
	for _, v := range s {
		if v == Spike {
			count++
		}
	}

	return count
}

// Timestamps converts the train to time-stamp form: one entry per event
// slot, valued at the slot index. The result is always valid.
func (s Indicator) Timestamps() Timestamps {
	out := make(Timestamps, 0, s.SpikeCount())
	for i, v := range s {
		if v == Spike {
			out = append(out, float64(i))
		}
	}

	return out
}
