// Package builder provides validation helpers to enforce parameter contracts
// in the train generators.
//
// Each function returns a wrapped sentinel via builderErrorf when its
// precondition is violated.
package builder

import "math"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns ErrBadSize wrapped as "<Method>: parameter must be ≥ <min>, got <got>".
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		// wrap with builderErrorf to maintain uniform error prefix
		return builderErrorf(method, ErrBadSize, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validatePositive ensures that x is finite and strictly positive.
// Returns ErrBadSize wrapped with the parameter name otherwise.
//
// Complexity: O(1) time and space.
func validatePositive(method, name string, x float64) error {
	if !(x > 0) || math.IsInf(x, 0) {
		return builderErrorf(method, ErrBadSize, "%s must be finite and > 0, got %g", name, x)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Returns ErrInvalidProbability wrapped as
// "<Method>: probability must be in [0.0,1.0], got <p>" if out of range.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, ErrInvalidProbability, "probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}
