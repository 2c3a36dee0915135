// SPDX-License-Identifier: MIT

package coincidence

import "github.com/katalvlaran/spikesync/train"

// SyncValue returns the mean of the applicable entries of p, or 0 when p has
// none (no spikes anywhere).
// Complexity: O(n).
func SyncValue(p Profile) float64 {
	sum, count := 0.0, 0
	for _, v := range p.values {
		if isApplicable(v) {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0
	}

	return sum / float64(count)
}

// SyncDistance returns 1 − SyncValue(p).
func SyncDistance(p Profile) float64 {
	return 1 - SyncValue(p)
}

// Synchronization runs the full pipeline on two or more trains:
// Multivariate → Merge → SyncValue / SyncDistance.
//
// Errors: same as Multivariate.
func Synchronization(seqs []train.Sequence, opts ...Option) (Result, error) {
	profiles, err := Multivariate(seqs, opts...)
	if err != nil {
		return Result{}, err
	}

	merged := Merge(profiles...)
	value := SyncValue(merged)

	return Result{
		Profiles: profiles,
		Merged:   merged,
		Value:    value,
		Distance: 1 - value,
	}, nil
}
