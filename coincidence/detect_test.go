package coincidence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spikesync/coincidence"
	"github.com/katalvlaran/spikesync/train"
)

// Scenario trains shared by several tests: 17 slots, 7 and 6 spikes.
var (
	scenarioA = train.Indicator{1, -1, -1, 1, -1, -1, 1, -1, -1, -1, 1, 1, -1, 1, -1, -1, 1}
	scenarioB = train.Indicator{-1, 1, -1, -1, 1, -1, -1, 1, -1, -1, 1, -1, -1, -1, 1, 1, -1}
)

// TestDetect_Scenario checks both directions of the 17-slot scenario.
func TestDetect_Scenario(t *testing.T) {
	ab, err := coincidence.Detect(scenarioA, scenarioB)
	require.NoError(t, err)
	assert.Equal(t,
		[]float64{1, -1, -1, 1, -1, -1, 1, -1, -1, -1, 1, 0, -1, 0, -1, -1, 0},
		ab.Values(), "A against B")

	ba, err := coincidence.Detect(scenarioB, scenarioA)
	require.NoError(t, err)
	assert.Equal(t,
		[]float64{-1, 1, -1, -1, 1, -1, -1, 1, -1, -1, 1, -1, -1, -1, 0, 0, -1},
		ba.Values(), "B against A")

	assert.Equal(t, 17, ab.Len())
	assert.Equal(t, 16.0, ab.Time(16), "indicator profiles are keyed by slot")
}

// TestDetect_RepresentationEquivalence compares indicator and time-stamp
// forms of the same data.
func TestDetect_RepresentationEquivalence(t *testing.T) {
	a := train.Indicator{1, -1, -1, 1, -1, -1, 1}
	b := train.Indicator{-1, 1, -1, -1, 1, -1, -1}

	ind, err := coincidence.Detect(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -1, -1, 1, -1, -1, 0}, ind.Values())

	ts, err := coincidence.Detect(train.Timestamps{0, 3, 6}, train.Timestamps{1, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 6}, ts.Times(), "addressed in the reference train's times")
	assert.Equal(t, []float64{1, 1, 0}, ts.Values())

	for k, tm := range ts.Times() {
		v, ok := ind.Lookup(tm)
		require.True(t, ok)
		assert.Equal(t, ts.Value(k), v, "time %g", tm)
	}
}

// TestDetect_SelfCoincidence: identical trains coincide everywhere unless the
// window collapses (single spike).
func TestDetect_SelfCoincidence(t *testing.T) {
	p, err := coincidence.Detect(scenarioA, scenarioA)
	require.NoError(t, err)
	for k := 0; k < p.Len(); k++ {
		if scenarioA.IsSpike(k) {
			assert.Equal(t, coincidence.Coincident, p.Value(k), "slot %d", k)
		} else {
			assert.Equal(t, coincidence.NotApplicable, p.Value(k), "slot %d", k)
		}
	}

	single := train.Indicator{-1, 1, -1}
	p, err = coincidence.Detect(single, single)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0, -1}, p.Values(), "tau = 0 for a lone spike")
}

// TestDetect_PaddingPolicy: a shorter reference train is padded with
// NotApplicable up to the longer train.
func TestDetect_PaddingPolicy(t *testing.T) {
	a := train.Indicator{1, -1, 1}
	b := train.Indicator{-1, 1, -1, -1, 1}

	p, err := coincidence.Detect(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -1, 0, -1, -1}, p.Values())
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, p.Times())

	// The longer train keeps its own length.
	q, err := coincidence.Detect(b, a)
	require.NoError(t, err)
	assert.Equal(t, 5, q.Len())

	// Time-stamp trains are never padded.
	r, err := coincidence.Detect(train.Timestamps{0, 2}, train.Timestamps{1, 4, 7, 9})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
}

// TestDetect_EqualLengthPolicy verifies the strict opt-in policy.
func TestDetect_EqualLengthPolicy(t *testing.T) {
	_, err := coincidence.Detect(train.Indicator{1, -1, 1}, train.Indicator{-1, 1, -1, -1, 1}, coincidence.WithEqualLength())
	assert.ErrorIs(t, err, coincidence.ErrShapeMismatch)

	p, err := coincidence.Detect(scenarioA, scenarioB, coincidence.WithEqualLength())
	require.NoError(t, err)
	assert.Equal(t, 17, p.Len())

	// Ignored for time-stamp trains.
	_, err = coincidence.Detect(train.Timestamps{0, 2}, train.Timestamps{1}, coincidence.WithEqualLength())
	assert.NoError(t, err)
}

// TestDetect_EmptyComparisonTrain flags the documented choice: spikes
// compared against a train without spikes are NonCoincident, never Coincident.
func TestDetect_EmptyComparisonTrain(t *testing.T) {
	p, err := coincidence.Detect(train.Indicator{1, -1, 1}, train.Indicator{-1, -1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -1, 0}, p.Values())

	p, err = coincidence.Detect(train.Timestamps{1, 2}, train.Timestamps{})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, p.Values())

	// Empty reference: nothing applicable.
	p, err = coincidence.Detect(train.Timestamps{}, train.Timestamps{1, 2})
	require.NoError(t, err)
	assert.Zero(t, p.Len())

	_, err = coincidence.Detect(train.Indicator{1, -1, 1}, train.Indicator{-1, -1, -1}, coincidence.WithRequireSpikes())
	assert.ErrorIs(t, err, coincidence.ErrEmptySequence)
}

// TestDetect_InvalidInput covers representation mixing and bad timestamps.
func TestDetect_InvalidInput(t *testing.T) {
	_, err := coincidence.Detect(train.Indicator{1, -1}, train.Timestamps{0})
	assert.ErrorIs(t, err, coincidence.ErrShapeMismatch)

	_, err = coincidence.Detect(train.Timestamps{0, 1}, train.Timestamps{2, 2})
	assert.ErrorIs(t, err, train.ErrNotIncreasing)

	_, err = coincidence.Detect(nil, train.Timestamps{0})
	assert.ErrorIs(t, err, coincidence.ErrShapeMismatch)
}

// TestDetect_Deterministic: identical input, identical output.
func TestDetect_Deterministic(t *testing.T) {
	first, err := coincidence.Detect(scenarioA, scenarioB)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := coincidence.Detect(scenarioA, scenarioB)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
