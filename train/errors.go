// SPDX-License-Identifier: MIT

package train

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex indicates a slot index outside [0, Len).
	ErrInvalidIndex = errors.New("train: index out of range")

	// ErrNotIncreasing indicates timestamps that are not strictly increasing.
	// Duplicate event times within one train are undefined input.
	ErrNotIncreasing = errors.New("train: timestamps must be strictly increasing")

	// ErrNonFinite indicates a NaN or ±Inf timestamp.
	ErrNonFinite = errors.New("train: timestamp is NaN or Inf")
)

// indexErrorf wraps ErrInvalidIndex with the method, offending index and length.
func indexErrorf(method string, i, n int) error {
	return fmt.Errorf("%s(%d) on length %d: %w", method, i, n, ErrInvalidIndex)
}
