// SPDX-License-Identifier: MIT

package train

const (
	// Spike marks an event slot in an Indicator train.
	Spike = 1

	// Silent is the canonical marker of an empty Indicator slot.
	// Any value other than Spike is treated as empty.
	Silent = -1

	// None is returned by neighbor lookups when no neighbor exists.
	None = -1
)

// Sequence is an ordered spike train on a time axis.
//
// Slots are addressed by 0-based index. Time must be strictly increasing
// over the slots that hold events. Previous and Next assume a valid index;
// use PreviousSpike / NextSpike for checked access.
type Sequence interface {
	// Len is the number of slots.
	Len() int

	// IsSpike reports whether slot i holds an event.
	IsSpike(i int) bool

	// Time is the position of slot i on the time axis.
	Time(i int) float64

	// Previous returns the nearest event slot strictly before i, or None.
	Previous(i int) int

	// Next returns the nearest event slot strictly after i, or None.
	Next(i int) int

	// Discrete reports whether slots form a shared discrete time base
	// (slot index == time), as in the indicator form.
	Discrete() bool
}

// Indicator is a spike train in indicator form: slot i is an event when
// its value equals Spike.
//
//	Indicator{1, -1, -1, 1} // events at t=0 and t=3
type Indicator []int

// Timestamps is a spike train in time-stamp form: one strictly increasing
// event time per slot.
type Timestamps []float64

// compile-time checks
var (
	_ Sequence = Indicator(nil)
	_ Sequence = Timestamps(nil)
)
