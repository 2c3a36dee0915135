// Package builder generates deterministic synthetic spike trains for demos,
// tests and benchmarks of package coincidence, using the same
// functional-options building blocks throughout.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, period, offset, rate, jitter and dropout.
//   - Train generators (all return train.Timestamps):
//     – BuildRegular:   n spikes at offset + k·period.
//     – BuildPoisson:   homogeneous Poisson process of a given rate.
//     – BuildJittered:  Gaussian-jittered copy of a train with optional dropout.
//   - Conversion:
//     – Rasterize:      bin time stamps into indicator form.
//   - Validation helpers:
//     – validateMin:         ensure integer ≥ minimum.
//     – validatePositive:    ensure finite float > 0.
//     – validateProbability: ensure p ∈ [0.0,1.0].
//
// Guarantees:
//
//   - Strict determinism per (arguments, seed, options); no global state.
//   - Every generated train is strictly increasing and finite, so it passes
//     train.Timestamps.Validate.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (builderErrorf) wrapping package sentinels.
//
// See individual function documentation for contracts and complexity.
package builder
