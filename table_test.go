package windcorrection

import (
	"errors"
	"math"
	"testing"
)

var testSites = []CalibrationRow{
	{Speed: 20, At0: 3.3, At90: -2.3, At180: -3.6},
	{Speed: 25, At0: 3.5, At90: -2.7, At180: -4.6},
	{Speed: 30, At0: 3.8, At90: -2.9, At180: -4.8},
}

// TestTableFromSites verifies sentinel shaping around bare site data.
func TestTableFromSites(t *testing.T) {
	tbl, err := TableFromSites("test-station", 1, 999, testSites)
	if err != nil {
		t.Fatalf("TableFromSites failed: %v", err)
	}

	if tbl.Name != "test-station" {
		t.Errorf("Name = %q, want %q", tbl.Name, "test-station")
	}
	if tbl.Scale != 1 {
		t.Errorf("Scale = %v, want 1", tbl.Scale)
	}
	if len(tbl.Rows) != len(testSites)+2 {
		t.Fatalf("len(Rows) = %d, want %d", len(tbl.Rows), len(testSites)+2)
	}

	if zero := tbl.Rows[0]; zero != (CalibrationRow{}) {
		t.Errorf("First row = %+v, want all-zero sentinel", zero)
	}

	last := testSites[len(testSites)-1]
	sentinel := tbl.Rows[len(tbl.Rows)-1]
	want := CalibrationRow{Speed: 999, At0: last.At0, At90: last.At90, At180: last.At180}
	if sentinel != want {
		t.Errorf("Clamp sentinel = %+v, want %+v", sentinel, want)
	}

	for i, site := range testSites {
		if tbl.Rows[i+1] != site {
			t.Errorf("Rows[%d] = %+v, want %+v", i+1, tbl.Rows[i+1], site)
		}
	}

	// The shaped table must build a working corrector.
	if _, err := New(&Config{Table: tbl}); err != nil {
		t.Fatalf("New on shaped table failed: %v", err)
	}
}

// TestTableFromSites_Errors verifies rejection of unusable site data.
func TestTableFromSites_Errors(t *testing.T) {
	tests := []struct {
		name     string
		scale    float64
		maxSpeed float64
		sites    []CalibrationRow
	}{
		{"NoSites", 1, 999, nil},
		{"ZeroSpeedSite", 1, 999, []CalibrationRow{{Speed: 0, At0: 1}}},
		{"NonIncreasingSites", 1, 999, []CalibrationRow{
			{Speed: 20, At0: 1},
			{Speed: 20, At0: 2},
		}},
		{"MaxSpeedBelowLastSite", 1, 25, testSites},
		{"NegativeScale", -1, 999, testSites},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TableFromSites("bad", tt.scale, tt.maxSpeed, tt.sites)
			if !errors.Is(err, ErrInvalidTable) {
				t.Fatalf("TableFromSites error = %v, want ErrInvalidTable", err)
			}
		})
	}
}

// TestCalibrationTable_Validate verifies the standalone validator agrees
// with construction.
func TestCalibrationTable_Validate(t *testing.T) {
	good := VantagePro2()
	if err := good.Validate(); err != nil {
		t.Errorf("Validate on built-in table failed: %v", err)
	}

	bad := VantagePro2()
	bad.Rows[5].At90 = math.NaN()
	if err := bad.Validate(); !errors.Is(err, ErrInvalidTable) {
		t.Errorf("Validate with NaN correction = %v, want ErrInvalidTable", err)
	}
}
