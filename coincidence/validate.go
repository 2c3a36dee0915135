// SPDX-License-Identifier: MIT

package coincidence

import (
	"fmt"

	"github.com/katalvlaran/spikesync/train"
)

// validator is implemented by representations with their own input rules
// (train.Timestamps).
type validator interface {
	Validate() error
}

// validateTrains checks a set of trains that will be compared with each
// other. Priority: count → representation → per-train validity → length
// policy → spike presence.
func validateTrains(seqs []train.Sequence, minCount int, o Options) error {
	if len(seqs) < minCount {
		return fmt.Errorf("got %d trains: %w", len(seqs), ErrInsufficientInput)
	}
	for k, s := range seqs {
		if s == nil {
			return fmt.Errorf("train %d is nil: %w", k, ErrShapeMismatch)
		}
		if s.Discrete() != seqs[0].Discrete() {
			return fmt.Errorf("train %d mixes indicator and time-stamp forms: %w", k, ErrShapeMismatch)
		}
	}
	for k, s := range seqs {
		if v, ok := s.(validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("train %d: %w", k, err)
			}
		}
	}
	if o.equalLength && len(seqs) > 0 && seqs[0].Discrete() {
		for k, s := range seqs {
			if s.Len() != seqs[0].Len() {
				return fmt.Errorf("train %d has length %d, train 0 has %d: %w", k, s.Len(), seqs[0].Len(), ErrShapeMismatch)
			}
		}
	}
	if o.requireSpikes {
		for k, s := range seqs {
			if !hasSpike(s) {
				return fmt.Errorf("train %d: %w", k, ErrEmptySequence)
			}
		}
	}

	return nil
}

// hasSpike reports whether s holds at least one event.
func hasSpike(s train.Sequence) bool {
	for i := 0; i < s.Len(); i++ {
		if s.IsSpike(i) {
			return true
		}
	}

	return false
}
