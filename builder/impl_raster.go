// SPDX-License-Identifier: MIT
// Package: spikesync/builder
//
// impl_raster.go — time stamps → indicator form.
//
// Contract:
//   - binWidth finite and > 0, length ≥ MinLength, otherwise ErrBadSize.
//   - ts must pass Validate, otherwise ErrOptionViolation.
//   - Bin k covers [k·binWidth, (k+1)·binWidth); it is Spike when at least
//     one event falls into it, Silent otherwise.
//   - Events before 0 or at/after length·binWidth are ignored.
//
// Complexity: O(len(ts) + length) time, O(length) space.

package builder

import (
	"math"

	"github.com/katalvlaran/spikesync/train"
)

// Rasterize bins ts into an Indicator of the given length.
func Rasterize(ts train.Timestamps, binWidth float64, length int) (train.Indicator, error) {
	if err := validatePositive(MethodRasterize, "binWidth", binWidth); err != nil {
		return nil, err
	}
	if err := validateMin(MethodRasterize, length, MinLength); err != nil {
		return nil, err
	}
	if err := ts.Validate(); err != nil {
		return nil, builderErrorf(MethodRasterize, ErrOptionViolation, "invalid train: %v", err)
	}

	out := make(train.Indicator, length)
	for k := range out {
		out[k] = train.Silent
	}
	for _, t := range ts {
		if t < 0 {
			continue
		}
		k := math.Floor(t / binWidth)
		if k >= float64(length) {
			break // ts is increasing, nothing further fits
		}
		out[int(k)] = train.Spike
	}

	return out, nil
}
