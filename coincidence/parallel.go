// SPDX-License-Identifier: MIT

package coincidence

import "golang.org/x/sync/errgroup"

// runTasks calls fn(k) for k in [0, count) on up to workers goroutines and
// returns the first error. Each task must write only its own output slots.
// workers ≤ 1 runs the tasks in order on the calling goroutine.
func runTasks(count, workers int, fn func(k int) error) error {
	if workers <= 1 || count <= 1 {
		for k := 0; k < count; k++ {
			if err := fn(k); err != nil {
				return err
			}
		}

		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for k := 0; k < count; k++ {
		k := k
		g.Go(func() error {
			return fn(k)
		})
	}

	return g.Wait()
}
