package coincidence_test

import (
	"fmt"

	"github.com/katalvlaran/spikesync/coincidence"
	"github.com/katalvlaran/spikesync/train"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDetect
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two indicator trains on a 7-slot time base.
//	  a = [1 -1 -1 1 -1 -1 1]   spikes at 0, 3, 6
//	  b = [-1 1 -1 -1 1 -1 -1]  spikes at 1, 4
//
//	a's spikes at 0 and 3 find a partner 1 slot away inside a window of 1.5;
//	the spike at 6 is 2 slots from b's last spike and stays unmatched.
func ExampleDetect() {
	a := train.Indicator{1, -1, -1, 1, -1, -1, 1}
	b := train.Indicator{-1, 1, -1, -1, 1, -1, -1}

	p, err := coincidence.Detect(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p)
	// Output:
	// [1 -1 -1 1 -1 -1 0]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSynchronization
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same data as time stamps; both views are merged and averaged.
//	Four of five spikes coincide.
func ExampleSynchronization() {
	seqs := []train.Sequence{
		train.Timestamps{0, 3, 6},
		train.Timestamps{1, 4},
	}

	res, err := coincidence.Synchronization(seqs)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("merged=%v\nsync=%.2f distance=%.2f\n", res.Merged, res.Value, res.Distance)
	// Output:
	// merged=[1 1 1 1 0]
	// sync=0.80 distance=0.20
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMatrix
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three trains; the first two spike together twice, the third only once
//	meets the first.
func ExampleMatrix() {
	seqs := []train.Sequence{
		train.Timestamps{0, 10, 20},
		train.Timestamps{0.5, 10.5, 30},
		train.Timestamps{20.2, 40},
	}

	m, err := coincidence.Matrix(seqs, coincidence.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(m)
	// Output:
	// 1.0000 0.6667 0.4000
	// 0.6667 1.0000 0.0000
	// 0.4000 0.0000 1.0000
}
