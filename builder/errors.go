// SPDX-License-Identifier: MIT
// Package: spikesync/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf, which wraps via %w.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates invalid sizes/lengths for generated trains
// (n < 1 spikes, non-positive duration or bin width, length < 1).
// Usage: if errors.Is(err, ErrBadSize) { /* fix n/duration */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrInvalidProbability indicates a probability outside the closed interval
// [0,1] (dropout).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrOptionViolation indicates a resolved configuration that cannot produce a
// train (e.g. a base train that is itself invalid, or an expected spike count
// above MaxPoissonSpikes).
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct option values */ }.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf wraps sentinel err with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <err>".
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	// Build the inner message using fmt.Sprintf
	inner := fmt.Sprintf(format, args...)
	// Prefix with the method name and keep err matchable via errors.Is
	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
