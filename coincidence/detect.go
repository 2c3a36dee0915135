// SPDX-License-Identifier: MIT

package coincidence

import (
	"sort"

	"github.com/katalvlaran/spikesync/train"
)

// Detect decides, for every spike of the reference train a, whether it
// coincides with its nearest spike in b. The result is addressed in a's
// index/time space.
//
// Algorithm:
//  1. For each spike i of a, find the spike j of b minimizing
//     |t_a(i) − t_b(j)|; on equal distances the lower index wins.
//  2. tau = Tau(a, b, i, j).
//  3. Coincident if the distance is strictly below tau, else NonCoincident.
//
// Slots of a without a spike are NotApplicable. For indicator trains the
// profile spans max(len(a), len(b)) slots (padding policy); slots past the
// end of a are NotApplicable. When b holds no spike at all, every spike of a
// is NonCoincident.
//
// Errors:
//   - ErrShapeMismatch      — mixed forms, or lengths differ under WithEqualLength.
//   - ErrEmptySequence      — a train without spikes under WithRequireSpikes.
//   - train.ErrNotIncreasing, train.ErrNonFinite — invalid timestamps.
//
// Complexity: O(La + Lb·log Lb) plus indicator neighbor scans.
func Detect(a, b train.Sequence, opts ...Option) (Profile, error) {
	o := gatherOptions(opts...)
	if err := validateTrains([]train.Sequence{a, b}, 2, o); err != nil {
		return Profile{}, err
	}

	return detect(a, b, indexSpikes(b)), nil
}

// detect is Detect on validated input; bIdx must index b's spikes.
func detect(a, b train.Sequence, bIdx spikeIndex) Profile {
	size := a.Len()
	if a.Discrete() && b.Len() > size {
		size = b.Len()
	}

	times := make([]float64, size)
	values := make([]float64, size)
	for i := 0; i < size; i++ {
		if i >= a.Len() {
			// Padding slot on the shared discrete time base.
			times[i] = float64(i)
			values[i] = NotApplicable
			continue
		}
		times[i] = a.Time(i)
		if !a.IsSpike(i) {
			values[i] = NotApplicable
			continue
		}
		values[i] = decide(a, b, i, bIdx)
	}

	return Profile{times: times, values: values}
}

// decide returns Coincident or NonCoincident for spike i of a.
func decide(a, b train.Sequence, i int, bIdx spikeIndex) float64 {
	j, dist, ok := bIdx.nearest(a.Time(i))
	if !ok {
		return NonCoincident
	}
	if dist < tau(a, b, i, j) {
		return Coincident
	}

	return NonCoincident
}

// spikeIndex lists the spikes of one train in ascending time order.
type spikeIndex struct {
	slots []int     // slot of each spike
	times []float64 // time of each spike, strictly increasing
}

// indexSpikes collects the spikes of s. Complexity: O(Len).
func indexSpikes(s train.Sequence) spikeIndex {
	slots := train.SpikeSlots(s)
	times := make([]float64, len(slots))
	for k, slot := range slots {
		times[k] = s.Time(slot)
	}

	return spikeIndex{slots: slots, times: times}
}

// nearest returns the slot of the spike closest to t and its distance.
// Of two equally distant spikes the earlier (lower slot) is returned.
// ok is false when the train has no spikes. Complexity: O(log n).
func (x spikeIndex) nearest(t float64) (slot int, dist float64, ok bool) {
	n := len(x.times)
	if n == 0 {
		return train.None, 0, false
	}

	// k is the first spike at or after t; the answer is k-1 or k.
	k := sort.SearchFloat64s(x.times, t)
	if k == n {
		return x.slots[n-1], t - x.times[n-1], true
	}
	if k == 0 {
		return x.slots[0], x.times[0] - t, true
	}
	before, after := t-x.times[k-1], x.times[k]-t
	if before <= after {
		return x.slots[k-1], before, true
	}

	return x.slots[k], after, true
}
