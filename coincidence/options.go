// SPDX-License-Identifier: MIT

// Package coincidence: functional configuration for the detectors.
//
// Contract:
//   - Option / Options follow the functional-options pattern; Options fields
//     are unexported and resolved once per call by gatherOptions.
//   - WithX constructors panic only on nonsensical values (programmer error);
//     the algorithms themselves never panic on user input.
//   - Every option changes observable behavior and is covered by tests.

package coincidence

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers evaluates train pairs sequentially.
	DefaultWorkers = 1

	// DefaultEqualLength selects the padding policy: indicator trains of
	// different lengths are compared, extra slots are NotApplicable.
	DefaultEqualLength = false

	// DefaultRequireSpikes accepts trains without events; their partners'
	// spikes are NonCoincident.
	DefaultRequireSpikes = false
)

const panicWorkersInvalid = "coincidence: WithWorkers: n must be >= 1"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers       int  // ≥1; DefaultWorkers
	equalLength   bool // DefaultEqualLength
	requireSpikes bool // DefaultRequireSpikes
}

// WithWorkers evaluates independent train pairs on up to n goroutines.
// Results do not depend on n. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) {
		o.workers = n
	}
}

// WithEqualLength enables the strict length policy: indicator trains compared
// with each other must have identical lengths, otherwise ErrShapeMismatch.
// Time-stamp trains are unaffected.
func WithEqualLength() Option {
	return func(o *Options) {
		o.equalLength = true
	}
}

// WithRequireSpikes rejects trains without events with ErrEmptySequence.
func WithRequireSpikes() Option {
	return func(o *Options) {
		o.requireSpikes = true
	}
}

// gatherOptions applies opts over the defaults, in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:       DefaultWorkers,
		equalLength:   DefaultEqualLength,
		requireSpikes: DefaultRequireSpikes,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
