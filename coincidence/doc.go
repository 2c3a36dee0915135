// SPDX-License-Identifier: MIT

// Package coincidence computes SPIKE-Synchronization: a parameter-free
// measure of how often events in two or more spike trains coincide.
//
// 🚀 What is SPIKE-Synchronization?
//
//	For every spike, look for the nearest spike in the other train. The pair
//	coincides when their distance is strictly below an adaptive window tau:
//	half the smallest inter-spike interval around either spike. Dense regions
//	get a tight window, sparse regions a loose one, so no time scale has to
//	be chosen up front. Averaging the per-spike 0/1 decisions gives the SYNC
//	value in [0,1]; 1 − SYNC is the SYNC distance.
//
// ✨ Key features:
//   - one generic pipeline over train.Sequence (indicator or time-stamp form)
//   - locally adaptive window (Tau), lowest-index tie-break for nearest spikes
//   - N-train aggregation with a fixed (N−1) denominator (Multivariate)
//   - union/maximum merge of profiles (Merge), SYNC value/distance
//   - pairwise SYNC matrix (Matrix)
//   - optional parallel pair evaluation (WithWorkers)
//
// Pipeline:
//
//	Detect(a, b)          → Profile  (per-slot NotApplicable / 0 / 1, in a's space)
//	Multivariate(trains)  → []Profile (per-train averages over N−1 partners)
//	Merge(profiles...)    → Profile  (union of times, max of applicable values)
//	SyncValue / SyncDistance(profile) → float64
//
//	Synchronization(trains) runs all of the above and returns a Result.
//
// ⚙️ Usage:
//
//	a := train.Indicator{1, -1, -1, 1, -1, -1, 1}
//	b := train.Indicator{-1, 1, -1, -1, 1, -1, -1}
//
//	res, err := coincidence.Synchronization([]train.Sequence{a, b})
//	if err != nil {
//	  // ErrInsufficientInput, ErrShapeMismatch, train.ErrNotIncreasing, ...
//	}
//	fmt.Println(res.Value, res.Distance) // 0.8 0.2
//
// Length policy:
//
//	Indicator trains of different lengths are compared slot by slot; the
//	profile of a pair covers the longer train, the extra slots are
//	NotApplicable. WithEqualLength() switches to the strict policy
//	(ErrShapeMismatch on any length difference).
//
// Empty trains:
//
//	A spike compared against a train without spikes is NonCoincident.
//	WithRequireSpikes() rejects such input with ErrEmptySequence instead.
//
// Complexity:
//
//   - Detect:       O(La + Lb·log Lb)   (binary search over b's spike times;
//     indicator neighbor scans add O(gap) per spike)
//   - Multivariate: O(N²·L·log L)
//   - Merge:        O(K·log K), K = total profile entries
package coincidence
