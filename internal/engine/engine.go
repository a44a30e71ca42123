// Package engine implements the bivariate interpolation core of wind speed
// correction.
//
// The engine owns a compiled calibration table and evaluates corrections in
// two stages: first along the angle axis within each bracketing table row,
// then along the speed axis between the two rows. The table is converted to
// the engine's precision once at construction; after that every call is a
// pure computation over immutable state, so a single engine may serve any
// number of goroutines without locking.
package engine

import (
	"fmt"
	"math"

	"github.com/meteokit/go-wind-correction/internal/simdops"
	"github.com/meteokit/go-wind-correction/internal/table"
)

// Engine interpolates wind speed corrections from a compiled calibration
// table. It is generic over float32 and float64 so deployments can trade
// precision for speed; the table itself is compiled in float64 and
// converted once at construction.
type Engine[F simdops.Float] struct {
	thresholds []F
	at0        []F
	at90       []F
	at180      []F

	// scale divides blended corrections back into true units. Tables
	// storing tenths carry scale 10; plain tables carry scale 1.
	scale F

	// strictAngles rejects angles outside [0, 360] instead of wrapping.
	strictAngles bool

	ops *simdops.Ops[F]
}

// New compiles tbl into an engine operating at precision F. The table is
// re-validated so the engine never runs on a malformed table, regardless of
// how the table object was produced.
func New[F simdops.Float](tbl *table.Table, strictAngles bool) (*Engine[F], error) {
	if tbl == nil {
		return nil, fmt.Errorf("nil calibration table")
	}
	if err := tbl.Validate(); err != nil {
		return nil, fmt.Errorf("invalid calibration table: %w", err)
	}

	return &Engine[F]{
		thresholds:   convertColumn[F](tbl.Speeds),
		at0:          convertColumn[F](tbl.At0),
		at90:         convertColumn[F](tbl.At90),
		at180:        convertColumn[F](tbl.At180),
		scale:        F(tbl.Scale),
		strictAngles: strictAngles,
		ops:          simdops.For[F](),
	}, nil
}

// Correct returns the wind-tunnel corrected speed for a raw anemometer
// reading at the given wind angle in degrees. The output is in the same
// unit as rawSpeed.
func (e *Engine[F]) Correct(rawSpeed, angle F) (F, error) {
	correction, err := e.Correction(rawSpeed, angle)
	if err != nil {
		return 0, err
	}
	return rawSpeed + correction, nil
}

// Correction returns only the correction term Correct would add to
// rawSpeed, already denormalized into true units. Useful for
// instrumentation and for checking the flat-clamp behavior above the
// calibrated range.
func (e *Engine[F]) Correction(rawSpeed, angle F) (F, error) {
	if err := e.checkInputs(rawSpeed, angle); err != nil {
		return 0, err
	}
	return e.rawCorrection(rawSpeed, angle) / e.scale, nil
}

// rawCorrection computes the blended correction at table scale. Inputs
// must already have passed checkInputs.
func (e *Engine[F]) rawCorrection(rawSpeed, angle F) F {
	// Zero sentinel: at or below the first threshold there is nothing to
	// bracket, and a zero reading must stay exactly zero.
	if rawSpeed <= e.thresholds[0] {
		return 0
	}

	a := foldAngle(angle)
	low, high := bracketIndices(e.thresholds, rawSpeed)

	// Thresholds are strictly increasing, so the divisor cannot be zero.
	speedFactor := (rawSpeed - e.thresholds[low]) / (e.thresholds[high] - e.thresholds[low])

	lowCorrection := e.angleCorrection(low, a)
	highCorrection := e.angleCorrection(high, a)

	return lowCorrection + speedFactor*(highCorrection-lowCorrection)
}

// angleCorrection interpolates row i's correction at folded angle a.
// The table stores corrections at 0, 90 and 180 degrees; values between
// the reference angles are linear within each half-range.
func (e *Engine[F]) angleCorrection(i int, a F) F {
	if a <= angleQuarter {
		factor := a / angleQuarter
		return e.at0[i] + factor*(e.at90[i]-e.at0[i])
	}
	factor := (a - angleQuarter) / angleQuarter
	return e.at90[i] + factor*(e.at180[i]-e.at90[i])
}

// checkInputs enforces the call contract: finite inputs, non-negative
// speed, and, in strict mode, angles within the [0, 360] convention.
func (e *Engine[F]) checkInputs(rawSpeed, angle F) error {
	speed64 := float64(rawSpeed)
	angle64 := float64(angle)

	if math.IsNaN(speed64) || math.IsInf(speed64, 0) {
		return fmt.Errorf("raw speed must be finite, got %v", speed64)
	}
	if math.IsNaN(angle64) || math.IsInf(angle64, 0) {
		return fmt.Errorf("angle must be finite, got %v", angle64)
	}
	if rawSpeed < 0 {
		return fmt.Errorf("raw speed must be non-negative, got %v", speed64)
	}
	if e.strictAngles && (angle < 0 || angle > angleFull) {
		return fmt.Errorf("angle %v outside [0, %d] rejected in strict mode", angle64, angleFull)
	}

	return nil
}

func convertColumn[F simdops.Float](col []float64) []F {
	out := make([]F, len(col))
	for i, v := range col {
		out[i] = F(v)
	}
	return out
}
