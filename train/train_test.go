package train_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spikesync/train"
)

// TestIndicator_Neighbors checks backward/forward scans, including
// lookups from slots that hold no event.
func TestIndicator_Neighbors(t *testing.T) {
	s := train.Indicator{1, -1, -1, 1, -1, -1, 1}

	tests := []struct {
		name       string
		slot       int
		prev, next int
	}{
		{"first event", 0, train.None, 3},
		{"middle event", 3, 0, 6},
		{"last event", 6, 3, train.None},
		{"empty slot", 4, 3, 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prev, err := train.PreviousSpike(s, tc.slot)
			require.NoError(t, err)
			next, err := train.NextSpike(s, tc.slot)
			require.NoError(t, err)
			assert.Equal(t, tc.prev, prev, "previous of %d", tc.slot)
			assert.Equal(t, tc.next, next, "next of %d", tc.slot)
		})
	}
}

// TestIndicator_ZeroMeansSilent mirrors the 0/1 encoding of the demo data:
// only the value Spike counts as an event.
func TestIndicator_ZeroMeansSilent(t *testing.T) {
	s := train.Indicator{1, 0, 0, 1, 0, 0, 1, 0, 0, 0, 1}
	assert.Equal(t, 4, s.SpikeCount())
	assert.Equal(t, train.Timestamps{0, 3, 6, 10}, s.Timestamps())
	assert.False(t, s.IsSpike(1))
}

// TestTimestamps_Neighbors checks the adjacent-slot rule and the boundaries.
func TestTimestamps_Neighbors(t *testing.T) {
	s := train.Timestamps{0.5, 1.25, 4}

	prev, err := train.PreviousSpike(s, 0)
	require.NoError(t, err)
	assert.Equal(t, train.None, prev)

	next, err := train.NextSpike(s, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	next, err = train.NextSpike(s, 2)
	require.NoError(t, err)
	assert.Equal(t, train.None, next)

	single := train.Timestamps{7}
	assert.Equal(t, train.None, single.Previous(0))
	assert.Equal(t, train.None, single.Next(0))
}

// TestNeighbors_InvalidIndex verifies ErrInvalidIndex for both forms.
func TestNeighbors_InvalidIndex(t *testing.T) {
	seqs := map[string]train.Sequence{
		"indicator":  train.Indicator{1, -1, 1},
		"timestamps": train.Timestamps{1, 2, 3},
		"empty":      train.Timestamps{},
	}
	for name, s := range seqs {
		t.Run(name, func(t *testing.T) {
			for _, i := range []int{-1, s.Len(), s.Len() + 5} {
				_, err := train.PreviousSpike(s, i)
				assert.ErrorIs(t, err, train.ErrInvalidIndex, "PreviousSpike(%d)", i)
				_, err = train.NextSpike(s, i)
				assert.ErrorIs(t, err, train.ErrInvalidIndex, "NextSpike(%d)", i)
			}
		})
	}
}

// TestTimestamps_Validate covers ordering and finiteness rules.
func TestTimestamps_Validate(t *testing.T) {
	assert.NoError(t, train.Timestamps{}.Validate())
	assert.NoError(t, train.Timestamps{-1, 0, 2.5}.Validate())
	assert.ErrorIs(t, train.Timestamps{0, 2, 2}.Validate(), train.ErrNotIncreasing)
	assert.ErrorIs(t, train.Timestamps{3, 1}.Validate(), train.ErrNotIncreasing)
	assert.ErrorIs(t, train.Timestamps{0, math.NaN()}.Validate(), train.ErrNonFinite)
	assert.ErrorIs(t, train.Timestamps{math.Inf(-1), 0}.Validate(), train.ErrNonFinite)
}

// TestSpikeSlots lists event slots for both forms.
func TestSpikeSlots(t *testing.T) {
	assert.Equal(t, []int{1, 4}, train.SpikeSlots(train.Indicator{-1, 1, -1, -1, 1, -1, -1}))
	assert.Equal(t, []int{0, 1, 2}, train.SpikeSlots(train.Timestamps{1, 4, 9}))
	assert.Empty(t, train.SpikeSlots(train.Indicator{-1, -1}))
	assert.True(t, train.Indicator{}.Discrete())
	assert.False(t, train.Timestamps{}.Discrete())
}
