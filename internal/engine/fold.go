package engine

import (
	"math"

	"github.com/meteokit/go-wind-correction/internal/simdops"
)

// foldAngle maps a finite angle in degrees onto the correction axis
// [0, 180]. Cup response is symmetric about 180 degrees, so angles in
// (180, 360] mirror back to their counterpart below the axis. Angles
// outside [0, 360] wrap modulo 360 first, which keeps the symmetry
// fold(a) == fold(360 - a) intact for every finite input.
func foldAngle[F simdops.Float](angle F) F {
	a := wrapAngle(angle)
	if a > angleFold {
		a = angleFull - a
	}
	return a
}

// wrapAngle reduces an angle to [0, 360]. Angles already in the
// conventional range pass through untouched so the common case costs two
// comparisons and no floating-point remainder.
func wrapAngle[F simdops.Float](angle F) F {
	if angle >= 0 && angle <= angleFull {
		return angle
	}
	a := F(math.Mod(float64(angle), angleFull))
	if a < 0 {
		a += angleFull
	}
	return a
}
