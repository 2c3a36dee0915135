// SPDX-License-Identifier: MIT

package coincidence

// Coincidence values stored in a Profile.
const (
	// NotApplicable marks a slot without an event in the reference train.
	NotApplicable = -1.0

	// NonCoincident marks an event without a partner inside the window.
	NonCoincident = 0.0

	// Coincident marks an event matched inside the window.
	Coincident = 1.0
)

// Profile is an immutable, time-sorted sequence of coincidence values.
//
// Entry k pairs a time with a value that is either NotApplicable or ≥ 0
// (0/1 for a pair, an average in [0,1] after aggregation). For indicator
// trains the times are the slot indices 0..L-1; for time-stamp trains they
// are the event times.
type Profile struct {
	times  []float64 // strictly increasing
	values []float64 // len(values) == len(times)
}

// Result bundles every stage of the Synchronization pipeline.
type Result struct {
	// Profiles holds one averaged profile per input train, in input order.
	Profiles []Profile

	// Merged is the union/maximum merge of Profiles.
	Merged Profile

	// Value is the SYNC value of Merged, in [0,1].
	Value float64

	// Distance is 1 − Value.
	Distance float64
}

// isApplicable reports whether v is a real coincidence value.
func isApplicable(v float64) bool {
	return v >= 0
}
