package coincidence_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spikesync/coincidence"
	"github.com/katalvlaran/spikesync/train"
)

// TestSyncValue_Basics covers mean, degenerate and complement cases.
func TestSyncValue_Basics(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"all coincident", []float64{1, -1, 1}, 1},
		{"half", []float64{1, 0, -1, -1}, 0.5},
		{"averaged", []float64{0.5, 0.25, -1, 0}, 0.25},
		{"all not applicable", []float64{-1, -1}, 0},
		{"empty", nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			times := make([]float64, len(tc.values))
			for k := range times {
				times[k] = float64(k)
			}
			p := mustProfile(t, times, tc.values)
			got := coincidence.SyncValue(p)
			assert.InDelta(t, tc.want, got, 1e-12)
			assert.Equal(t, 1-got, coincidence.SyncDistance(p), "distance is the exact complement")
		})
	}

	assert.Equal(t, 1.0, coincidence.SyncDistance(coincidence.Profile{}), "degenerate distance")
}

// TestNewProfile_Validation rejects malformed external data.
func TestNewProfile_Validation(t *testing.T) {
	_, err := coincidence.NewProfile([]float64{0, 1}, []float64{1})
	assert.ErrorIs(t, err, coincidence.ErrShapeMismatch)

	_, err = coincidence.NewProfile([]float64{1, 0}, []float64{1, 1})
	assert.ErrorIs(t, err, coincidence.ErrBadProfile)

	_, err = coincidence.NewProfile([]float64{0, math.NaN()}, []float64{1, 1})
	assert.ErrorIs(t, err, coincidence.ErrBadProfile)

	_, err = coincidence.NewProfile([]float64{0}, []float64{-0.5})
	assert.ErrorIs(t, err, coincidence.ErrBadProfile)

	_, err = coincidence.NewProfile([]float64{0}, []float64{math.Inf(1)})
	assert.ErrorIs(t, err, coincidence.ErrBadProfile)

	times := []float64{0, 1}
	p, err := coincidence.NewProfile(times, []float64{1, -1})
	require.NoError(t, err)
	times[0] = 42
	assert.Equal(t, 0.0, p.Time(0), "inputs are copied")
	assert.Equal(t, "[1 -1]", p.String())
}

// TestSynchronization_Scenario: the 17-slot scenario gives 7 coincident
// entries out of 12 applicable ones.
func TestSynchronization_Scenario(t *testing.T) {
	res, err := coincidence.Synchronization([]train.Sequence{scenarioA, scenarioB})
	require.NoError(t, err)

	assert.InDelta(t, 7.0/12.0, res.Value, 1e-12)
	assert.Equal(t, 1-res.Value, res.Distance)
	assert.Len(t, res.Profiles, 2)
	assert.Equal(t,
		[]float64{1, 1, -1, 1, 1, -1, 1, 1, -1, -1, 1, 0, -1, 0, 0, 0, 0},
		res.Merged.Values())
	assert.GreaterOrEqual(t, res.Value, 0.0)
	assert.LessOrEqual(t, res.Value, 1.0)
}

// TestSynchronization_RepresentationEquivalence: indicator trains and the
// time stamps of their events give the same SYNC value.
func TestSynchronization_RepresentationEquivalence(t *testing.T) {
	a := train.Indicator{1, -1, -1, 1, -1, -1, 1}
	b := train.Indicator{-1, 1, -1, -1, 1, -1, -1}

	ind, err := coincidence.Synchronization([]train.Sequence{a, b})
	require.NoError(t, err)
	ts, err := coincidence.Synchronization([]train.Sequence{train.Timestamps{0, 3, 6}, train.Timestamps{1, 4}})
	require.NoError(t, err)

	assert.InDelta(t, 0.8, ind.Value, 1e-12)
	assert.Equal(t, ind.Value, ts.Value)

	sc, err := coincidence.Synchronization([]train.Sequence{scenarioA.Timestamps(), scenarioB.Timestamps()})
	require.NoError(t, err)
	assert.InDelta(t, 7.0/12.0, sc.Value, 1e-12)
}

// TestSynchronization_SelfCoincidence: identical trains are fully
// synchronous; a lone spike compared to itself scores 0 by convention.
func TestSynchronization_SelfCoincidence(t *testing.T) {
	res, err := coincidence.Synchronization([]train.Sequence{scenarioA, scenarioA, scenarioA})
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Value)
	assert.Equal(t, 0.0, res.Distance)

	res, err = coincidence.Synchronization([]train.Sequence{train.Timestamps{3}, train.Timestamps{3}})
	require.NoError(t, err)
	assert.Zero(t, res.Value)
	assert.Equal(t, 1.0, res.Distance)
}

// TestSynchronization_NoSpikes: all-empty input is degenerate, not an error.
func TestSynchronization_NoSpikes(t *testing.T) {
	res, err := coincidence.Synchronization([]train.Sequence{train.Indicator{-1, -1}, train.Indicator{0, 0, 0}})
	require.NoError(t, err)
	assert.Zero(t, res.Merged.Applicable())
	assert.Zero(t, res.Value)
	assert.Equal(t, 1.0, res.Distance)
}

// TestSynchronization_ThreeTrains checks the merged hand-computed value 3/8.
func TestSynchronization_ThreeTrains(t *testing.T) {
	res, err := coincidence.Synchronization(threeTrains(), coincidence.WithWorkers(3))
	require.NoError(t, err)
	assert.Equal(t, 8, res.Merged.Len())
	assert.InDelta(t, 0.375, res.Value, 1e-12)
}
