// SPDX-License-Identifier: MIT

package coincidence

import "github.com/katalvlaran/spikesync/train"

// Multivariate computes one coincidence profile per train by comparing it
// with every other train.
//
// Algorithm:
//  1. Detect(s_i, s_j) for all N·(N−1) ordered pairs i ≠ j. Pairs are
//     independent and run on up to WithWorkers goroutines.
//  2. For train i, at every spike slot: the sum of the partners' 0/1
//     decisions divided by the fixed denominator N−1. Slots without a spike
//     stay NotApplicable.
//
// The profile of an indicator train spans its longest pair profile.
// Reordering the input permutes the output profiles the same way.
//
// Errors: ErrInsufficientInput (N < 2), plus everything Detect reports.
// On error no profile is returned.
//
// Complexity: O(N²·L·log L) time, O(N²·L) memory.
func Multivariate(seqs []train.Sequence, opts ...Option) ([]Profile, error) {
	o := gatherOptions(opts...)
	if err := validateTrains(seqs, 2, o); err != nil {
		return nil, err
	}

	return multivariate(seqs, o.workers)
}

// multivariate is Multivariate on validated input.
func multivariate(seqs []train.Sequence, workers int) ([]Profile, error) {
	n := len(seqs)

	// Index every train's spikes once; each is reused by N−1 pairs.
	idx := make([]spikeIndex, n)
	for k, s := range seqs {
		idx[k] = indexSpikes(s)
	}

	tasks := make([][2]int, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				tasks = append(tasks, [2]int{i, j})
			}
		}
	}

	// pairs[i*n+j] is Detect(s_i, s_j); every task owns one cell.
	pairs := make([]Profile, n*n)
	err := runTasks(len(tasks), workers, func(k int) error {
		i, j := tasks[k][0], tasks[k][1]
		pairs[i*n+j] = detect(seqs[i], seqs[j], idx[j])

		return nil
	})
	if err != nil {
		return nil, err
	}

	profiles := make([]Profile, n)
	for i, s := range seqs {
		profiles[i] = average(s, i, pairs[i*n:(i+1)*n])
	}

	return profiles, nil
}

// average folds the pair profiles of train s (row[self] is unused) into one
// profile with denominator len(row)-1.
func average(s train.Sequence, self int, row []Profile) Profile {
	longest := Profile{}
	for j, p := range row {
		if j != self && p.Len() > longest.Len() {
			longest = p
		}
	}

	size := longest.Len()
	denom := float64(len(row) - 1)
	values := make([]float64, size)
	for k := 0; k < size; k++ {
		if k >= s.Len() || !s.IsSpike(k) {
			values[k] = NotApplicable
			continue
		}
		sum := 0.0
		for j, p := range row {
			if j != self {
				sum += p.values[k]
			}
		}
		values[k] = sum / denom
	}

	return Profile{times: cloneFloats(longest.times), values: values}
}
