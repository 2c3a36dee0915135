// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/spikesync/builder"
)

// ExampleBuildRegular shows a periodic train rasterized into indicator form.
func ExampleBuildRegular() {
	ts, _ := builder.BuildRegular(3, builder.WithPeriod(2), builder.WithOffset(1))
	ind, _ := builder.Rasterize(ts, 1, 7)
	fmt.Println(ts)
	fmt.Println(ind)
	// Output:
	// [1 3 5]
	// [-1 1 -1 1 -1 1 -1]
}
