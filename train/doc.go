// SPDX-License-Identifier: MIT

// Package train defines spike trains (ordered event sequences) and the
// neighbor lookups the coincidence measures are built on.
//
// Two representations share one interface, Sequence:
//
//	Indicator  — fixed slots on a discrete time base; slot i holds Spike (1)
//	             or anything else (canonically Silent, -1).
//	             [1 -1 -1 1 -1 -1 1]  → events at t=0, 3, 6
//
//	Timestamps — strictly increasing event times; every slot is an event.
//	             [0 3 6]              → events at t=0, 3, 6
//
// Both forms of the same data are interchangeable for every measure in
// package coincidence: only Time, IsSpike and the neighbor lookups are used.
//
// Neighbor lookups:
//
//	PreviousSpike(s, i) / NextSpike(s, i) return the slot of the nearest
//	strictly preceding / following event, or None at the boundary.
//	Indicator: linear scan, O(L) worst case.
//	Timestamps: adjacent slot, O(1).
//
// Errors:
//   - ErrInvalidIndex  — slot outside [0, Len).
//   - ErrNotIncreasing — timestamps are not strictly increasing.
//   - ErrNonFinite     — a timestamp is NaN or ±Inf.
package train
