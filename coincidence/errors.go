// SPDX-License-Identifier: MIT
// Package coincidence: sentinel error set.
// All operations return these sentinels (possibly wrapped with %w for
// context); callers match them via errors.Is. Validation failures are never
// partial: a failing call returns no profile at all.

package coincidence

import "errors"

var (
	// ErrShapeMismatch indicates two trains that must align do not: indicator
	// lengths differ under WithEqualLength, the input mixes indicator and
	// time-stamp trains, or a profile's times and values differ in length.
	ErrShapeMismatch = errors.New("coincidence: shape mismatch")

	// ErrInsufficientInput indicates fewer than two trains where at least two
	// are required.
	ErrInsufficientInput = errors.New("coincidence: at least two trains required")

	// ErrEmptySequence indicates a train without events under WithRequireSpikes.
	ErrEmptySequence = errors.New("coincidence: train has no spikes")

	// ErrBadProfile indicates externally supplied profile data with unsorted
	// times or values that are neither NotApplicable nor ≥ 0.
	ErrBadProfile = errors.New("coincidence: malformed profile")

	// ErrOutOfRange indicates a SyncMatrix index outside [0, N).
	ErrOutOfRange = errors.New("coincidence: index out of range")
)
