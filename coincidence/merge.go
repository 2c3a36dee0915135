// SPDX-License-Identifier: MIT

package coincidence

import "sort"

// Merge combines profiles into one over the union of their times. At each
// time the merged value is the maximum applicable value of any input;
// a time covered only by NotApplicable entries stays NotApplicable.
//
// For two indicator pair profiles this is the symmetric rule
// Coincident > NonCoincident > NotApplicable, so a coincidence seen from
// either train survives. Merge() of nothing is an empty profile.
//
// Complexity: O(K·log K), K = total number of entries.
func Merge(profiles ...Profile) Profile {
	best := make(map[float64]float64)
	for _, p := range profiles {
		for k, t := range p.times {
			v := p.values[k]
			cur, seen := best[t]
			switch {
			case !seen:
				best[t] = v
			case isApplicable(v) && (!isApplicable(cur) || v > cur):
				best[t] = v
			}
		}
	}

	times := make([]float64, 0, len(best))
	for t := range best {
		times = append(times, t)
	}
	sort.Float64s(times)

	values := make([]float64, len(times))
	for k, t := range times {
		values[k] = best[t]
	}

	return Profile{times: times, values: values}
}
