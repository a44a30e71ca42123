package engine

import "github.com/meteokit/go-wind-correction/internal/simdops"

// bracketIndices locates the pair of adjacent table rows whose speed
// thresholds surround raw: high is the first row whose threshold is at
// least raw, low sits immediately before it.
//
// The boundary policy is explicit here rather than a loop side effect:
//
//   - raw at or below the zero sentinel returns (0, 0); callers special-case
//     this before interpolating, since there is no row below the sentinel.
//   - raw beyond every threshold, including the clamp sentinel, returns the
//     final pair. The sentinel repeats the last real corrections, so the
//     interpolated correction stays flat no matter how far raw overshoots.
//
// Calibration tables hold around thirty rows, so a linear scan beats a
// binary search here and matches the table's increasing-threshold layout.
func bracketIndices[F simdops.Float](thresholds []F, raw F) (low, high int) {
	for i, threshold := range thresholds {
		if raw <= threshold {
			if i == 0 {
				return 0, 0
			}
			return i - 1, i
		}
	}

	n := len(thresholds)
	return n - 2, n - 1
}
