// SPDX-License-Identifier: MIT

package coincidence

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// NewProfile builds a Profile from parallel times and values. Both slices
// are copied.
//
// Validation:
//   - len(times) != len(values)                → ErrShapeMismatch
//   - times not strictly increasing or non-finite → ErrBadProfile
//   - a value neither NotApplicable nor finite ≥ 0 → ErrBadProfile
//
// Complexity: O(n).
func NewProfile(times, values []float64) (Profile, error) {
	if len(times) != len(values) {
		return Profile{}, fmt.Errorf("NewProfile: %d times, %d values: %w", len(times), len(values), ErrShapeMismatch)
	}
	for k, t := range times {
		if math.IsNaN(t) || math.IsInf(t, 0) || (k > 0 && t <= times[k-1]) {
			return Profile{}, fmt.Errorf("NewProfile: time %d (%g): %w", k, t, ErrBadProfile)
		}
	}
	for k, v := range values {
		if v != NotApplicable && (!isApplicable(v) || math.IsInf(v, 0)) {
			return Profile{}, fmt.Errorf("NewProfile: value %d (%g): %w", k, v, ErrBadProfile)
		}
	}

	return Profile{times: cloneFloats(times), values: cloneFloats(values)}, nil
}

// Len returns the number of entries.
func (p Profile) Len() int { return len(p.times) }

// Time returns the time of entry k. It panics when k is out of range, like
// slice indexing.
func (p Profile) Time(k int) float64 { return p.times[k] }

// Value returns the value of entry k. It panics when k is out of range.
func (p Profile) Value(k int) float64 { return p.values[k] }

// Times returns a copy of the entry times.
func (p Profile) Times() []float64 { return cloneFloats(p.times) }

// Values returns a copy of the entry values.
func (p Profile) Values() []float64 { return cloneFloats(p.values) }

// Lookup returns the value stored at time t.
// Complexity: O(log n).
func (p Profile) Lookup(t float64) (float64, bool) {
	k := sort.SearchFloat64s(p.times, t)
	if k < len(p.times) && p.times[k] == t {
		return p.values[k], true
	}

	return NotApplicable, false
}

// Applicable counts the entries that are not NotApplicable.
func (p Profile) Applicable() int {
	count := 0
	for _, v := range p.values {
		if isApplicable(v) {
			count++
		}
	}

	return count
}

// String renders the values as "[1 0.5 -1 ...]" for debugging.
func (p Profile) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for k, v := range p.values {
		if k > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(']')

	return sb.String()
}

// cloneFloats returns an independent copy of src (nil stays nil).
func cloneFloats(src []float64) []float64 {
	if src == nil {
		return nil
	}
	dst := make([]float64, len(src))
	copy(dst, src)

	return dst
}
