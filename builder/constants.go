// Package builder defines shared constants used by the train generators,
// ensuring consistent defaults and validation across all of them.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRegular is the canonical name for the BuildRegular generator.
	MethodRegular = "BuildRegular"
	// MethodPoisson is the canonical name for the BuildPoisson generator.
	MethodPoisson = "BuildPoisson"
	// MethodJittered is the canonical name for the BuildJittered generator.
	MethodJittered = "BuildJittered"
	// MethodRasterize is the canonical name for Rasterize.
	MethodRasterize = "Rasterize"
)

//-----------------------------------------------------------------------------
// Validation Bounds
//-----------------------------------------------------------------------------

const (
	// MinSpikes is the smallest spike count accepted by BuildRegular.
	MinSpikes = 1
	// MinLength is the smallest indicator length accepted by Rasterize.
	MinLength = 1
	// MinProbability is the lower bound for dropout probabilities.
	MinProbability = 0.0
	// MaxProbability is the upper bound for dropout probabilities.
	MaxProbability = 1.0
	// MaxPoissonSpikes caps rate·duration so a typo cannot allocate gigabytes.
	MaxPoissonSpikes = 10_000_000
)

//-----------------------------------------------------------------------------
// Generator Defaults
//-----------------------------------------------------------------------------

const (
	// DefaultPeriod is the inter-spike interval of BuildRegular.
	DefaultPeriod = 1.0
	// DefaultOffset is the time of the first regular spike / the Poisson start.
	DefaultOffset = 0.0
	// DefaultRate is the Poisson rate in spikes per time unit.
	DefaultRate = 1.0
	// DefaultJitter is the Gaussian jitter sigma of BuildJittered.
	DefaultJitter = 0.0
	// DefaultDropout is the probability of deleting a spike in BuildJittered.
	DefaultDropout = 0.0
)
