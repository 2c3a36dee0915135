// SPDX-License-Identifier: MIT

package coincidence

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spikesync/train"
)

// SyncMatrix is a symmetric N×N matrix of pairwise SYNC values, stored
// row-major in a flat slice.
type SyncMatrix struct {
	n    int       // number of trains
	data []float64 // length n*n
}

// matrixErrorf wraps an error with SyncMatrix method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("SyncMatrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix computes the SYNC value of every pair of trains.
//
// Entry (i,j) is SyncValue(Merge(Detect(s_i,s_j), Detect(s_j,s_i))). The
// diagonal is computed the same way: 1 for any train with two or more
// spikes, 0 for a train with at most one spike (its window collapses to 0).
//
// Stage 1 (Validate): same rules as Multivariate.
// Stage 2 (Execute): N·(N+1)/2 unordered pairs on up to WithWorkers goroutines.
// Stage 3 (Finalize): mirror each pair into (i,j) and (j,i).
//
// Complexity: O(N²·L·log L).
func Matrix(seqs []train.Sequence, opts ...Option) (*SyncMatrix, error) {
	o := gatherOptions(opts...)
	if err := validateTrains(seqs, 2, o); err != nil {
		return nil, err
	}

	n := len(seqs)
	idx := make([]spikeIndex, n)
	for k, s := range seqs {
		idx[k] = indexSpikes(s)
	}

	tasks := make([][2]int, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			tasks = append(tasks, [2]int{i, j})
		}
	}

	m := &SyncMatrix{n: n, data: make([]float64, n*n)}
	err := runTasks(len(tasks), o.workers, func(k int) error {
		i, j := tasks[k][0], tasks[k][1]
		forward := detect(seqs[i], seqs[j], idx[j])
		backward := detect(seqs[j], seqs[i], idx[i])
		v := SyncValue(Merge(forward, backward))
		m.data[i*n+j] = v
		m.data[j*n+i] = v

		return nil
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// N returns the number of trains (rows and columns).
func (m *SyncMatrix) N() int { return m.n }

// At returns the SYNC value of trains row and col.
// Errors: ErrOutOfRange when either index is outside [0, N).
func (m *SyncMatrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, matrixErrorf("At", row, col, ErrOutOfRange)
	}

	return m.data[row*m.n+col], nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is outside [0, N).
func (m *SyncMatrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, matrixErrorf("Row", i, 0, ErrOutOfRange)
	}

	return cloneFloats(m.data[i*m.n : (i+1)*m.n]), nil
}

// Mean returns the average of the off-diagonal entries, or 0 for N < 2.
func (m *SyncMatrix) Mean() float64 {
	if m.n < 2 {
		return 0
	}
	sum := 0.0
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if i != j {
				sum += m.data[i*m.n+j]
			}
		}
	}

	return sum / float64(m.n*(m.n-1))
}

// String implements fmt.Stringer, one row per line.
func (m *SyncMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.4f", m.data[i*m.n+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
