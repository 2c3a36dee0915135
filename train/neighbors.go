// SPDX-License-Identifier: MIT

package train

// PreviousSpike returns the slot of the nearest event strictly before slot i,
// or None when i is the first event.
//
// Errors: ErrInvalidIndex when i ∉ [0, s.Len()).
func PreviousSpike(s Sequence, i int) (int, error) {
	if i < 0 || i >= s.Len() {
		return None, indexErrorf("PreviousSpike", i, s.Len())
	}

	return s.Previous(i), nil
}

// NextSpike returns the slot of the nearest event strictly after slot i,
// or None when i is the last event.
//
// Errors: ErrInvalidIndex when i ∉ [0, s.Len()).
func NextSpike(s Sequence, i int) (int, error) {
	if i < 0 || i >= s.Len() {
		return None, indexErrorf("NextSpike", i, s.Len())
	}

	return s.Next(i), nil
}

// SpikeSlots returns the ascending slot indices of every event in s.
// Complexity: O(Len).
func SpikeSlots(s Sequence) []int {
	n := s.Len()
	slots := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if s.IsSpike(i) {
			slots = append(slots, i)
		}
	}

	return slots
}
