package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/interp"

	"github.com/meteokit/go-wind-correction/internal/table"
)

const oracleTolerance = 1e-9

// TestCorrection_MatchesPiecewiseLinearOracle cross-checks the speed-axis
// interpolation against gonum's piecewise linear predictor. Along each
// reference angle column the bivariate blend degenerates to univariate
// interpolation over the speeds column, which the oracle reproduces
// independently of the bracket search.
func TestCorrection_MatchesPiecewiseLinearOracle(t *testing.T) {
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

			columns := []struct {
				name   string
				angle  float64
				values []float64
			}{
				{"at_0_deg", 0, tc.tbl.At0},
				{"at_90_deg", 90, tc.tbl.At90},
				{"at_180_deg", 180, tc.tbl.At180},
			}

			for _, col := range columns {
				t.Run(col.name, func(t *testing.T) {
					var pl interp.PiecewiseLinear
					require.NoError(t, pl.Fit(tc.tbl.Speeds, col.values))

					for s := 0.0; s <= tc.tbl.MaxCalibratedSpeed(); s += 3.1 {
						want := pl.Predict(s) / tc.tbl.Scale

						got, err := e.Correction(s, col.angle)
						require.NoError(t, err)

						assert.InDelta(t, want, got, oracleTolerance, "speed %v", s)
					}
				})
			}
		})
	}
}
