package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meteokit/go-wind-correction/internal/table"
	"github.com/meteokit/go-wind-correction/internal/testutil"
)

var (
	seriesSpeeds = []float64{0, 10, 20, 22, 47.3, 90, 128, 150, 200, 999}
	seriesAngles = []float64{0, 45, 90, 135, 180, 225, 270, 315, 360, 181}
)

// TestCorrectSeries_MatchesScalarPath verifies the vectorized series path
// agrees with per-reading calls on both table encodings.
func TestCorrectSeries_MatchesScalarPath(t *testing.T) {
	tests := []struct {
		name string
		tbl  *table.Table
	}{
		{"vantage_pro2", table.VantagePro2()},
		{"vantage_pro2_compact", table.VantagePro2Compact()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := mustEngine[float64](t, tc.tbl, false)

			corrected, err := e.CorrectSeries(seriesSpeeds, seriesAngles)
			require.NoError(t, err)
			require.Len(t, corrected, len(seriesSpeeds))

			for i := range seriesSpeeds {
				want, err := e.Correct(seriesSpeeds[i], seriesAngles[i])
				require.NoError(t, err)
				assert.InDelta(t, want, corrected[i], testutil.DefaultTolerance,
					"reading %d (speed %v, angle %v)", i, seriesSpeeds[i], seriesAngles[i])
			}

			testutil.AssertNoNaNOrInf(t, corrected)
		})
	}
}

// TestCorrectSeries_LengthMismatch verifies ragged input is rejected
// before any correction runs.
func TestCorrectSeries_LengthMismatch(t *testing.T) {
	e := mustEngine[float64](t, table.VantagePro2(), false)

	_, err := e.CorrectSeries([]float64{1, 2, 3}, []float64{0, 90})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "length mismatch")
}

// TestCorrectSeries_Empty verifies an empty series corrects to an empty,
// non-nil result.
func TestCorrectSeries_Empty(t *testing.T) {
	e := mustEngine[float64](t, table.VantagePro2(), false)

	corrected, err := e.CorrectSeries([]float64{}, []float64{})
	require.NoError(t, err)
	assert.NotNil(t, corrected)
	assert.Empty(t, corrected)
}

// TestCorrectSeries_ReportsFailingIndex verifies the error names the
// offending reading and nothing is returned for a partially valid series.
func TestCorrectSeries_ReportsFailingIndex(t *testing.T) {
	e := mustEngine[float64](t, table.VantagePro2(), false)

	speeds := []float64{10, 20, math.NaN(), 40}
	angles := []float64{0, 0, 0, 0}

	corrected, err := e.CorrectSeries(speeds, angles)
	require.Error(t, err)
	assert.Nil(t, corrected)
	assert.Contains(t, err.Error(), "reading 2")
}

// TestCorrectSeries_Float32 spot-checks the float32 series path.
func TestCorrectSeries_Float32(t *testing.T) {
	e := mustEngine[float32](t, table.VantagePro2(), false)

	corrected, err := e.CorrectSeries([]float32{20, 150}, []float32{0, 90})
	require.NoError(t, err)
	require.Len(t, corrected, 2)

	assert.InDelta(t, 23.3, float64(corrected[0]), testutil.Float32Tolerance)
	assert.InDelta(t, 137.9, float64(corrected[1]), testutil.Float32Tolerance)
}

// TestTotalCorrection verifies the vectorized sum equals the sum of the
// individual correction terms.
func TestTotalCorrection(t *testing.T) {
	e := mustEngine[float64](t, table.VantagePro2(), false)

	total, err := e.TotalCorrection(seriesSpeeds, seriesAngles)
	require.NoError(t, err)

	var want float64
	for i := range seriesSpeeds {
		correction, err := e.Correction(seriesSpeeds[i], seriesAngles[i])
		require.NoError(t, err)
		want += correction
	}

	assert.InDelta(t, want, total, testutil.DefaultTolerance)
}

// TestTotalCorrection_PropagatesErrors verifies invalid readings abort the
// aggregate as well.
func TestTotalCorrection_PropagatesErrors(t *testing.T) {
	e := mustEngine[float64](t, table.VantagePro2(), false)

	_, err := e.TotalCorrection([]float64{-1}, []float64{0})
	require.Error(t, err)
}
