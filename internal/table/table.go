// Package table builds and validates compiled calibration tables for the
// wind correction engine.
//
// A compiled table is the columnar, sentinel-shaped form of a calibration
// data set: one speeds column and three correction columns (at 0, 90 and
// 180 degrees), bounded by a zero row at speed 0 and a clamp row at the
// maximum representable speed. All invariants are checked once here, at
// construction; the engine never re-validates per call.
package table

import (
	"fmt"
	"math"
)

const (
	// Minimum row count: zero sentinel + one real site + clamp sentinel.
	minRows = 3
)

// Row is one calibration table entry: a speed threshold and the three
// correction magnitudes measured at the reference angles, stored at the
// table's scale.
type Row struct {
	Speed float64
	At0   float64
	At90  float64
	At180 float64
}

// Table is the compiled, columnar form of a calibration table.
// Columns are parallel: Speeds[i] pairs with At0[i], At90[i] and At180[i].
// Correction values are stored at Scale; divide by Scale to obtain true
// correction units.
//
// A Table is immutable after Build returns. All slices are private copies.
type Table struct {
	Name   string
	Scale  float64
	Speeds []float64
	At0    []float64
	At90   []float64
	At180  []float64
}

// Build compiles calibration rows into columnar form and validates the
// table invariants. The input slice is copied, so callers may reuse or
// mutate it afterwards without affecting the returned table.
func Build(name string, scale float64, rows []Row) (*Table, error) {
	t := &Table{
		Name:   name,
		Scale:  scale,
		Speeds: make([]float64, len(rows)),
		At0:    make([]float64, len(rows)),
		At90:   make([]float64, len(rows)),
		At180:  make([]float64, len(rows)),
	}

	for i, r := range rows {
		t.Speeds[i] = r.Speed
		t.At0[i] = r.At0
		t.At90[i] = r.At90
		t.At180[i] = r.At180
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate checks the structural invariants of the table:
// a zero sentinel first row, strictly increasing speed thresholds, a clamp
// sentinel last row repeating the last real corrections, a positive finite
// scale, and finite values throughout.
func (t *Table) Validate() error {
	n := len(t.Speeds)

	if n < minRows {
		return fmt.Errorf("table %q too short: %d rows (minimum %d: zero sentinel, one site, clamp sentinel)", t.Name, n, minRows)
	}

	if len(t.At0) != n || len(t.At90) != n || len(t.At180) != n {
		return fmt.Errorf("table %q has ragged columns: %d speeds vs %d/%d/%d corrections",
			t.Name, n, len(t.At0), len(t.At90), len(t.At180))
	}

	if t.Scale <= 0 || math.IsInf(t.Scale, 0) || math.IsNaN(t.Scale) {
		return fmt.Errorf("table %q has invalid scale %v (must be positive and finite)", t.Name, t.Scale)
	}

	for i := range n {
		if !isFinite(t.Speeds[i]) || !isFinite(t.At0[i]) || !isFinite(t.At90[i]) || !isFinite(t.At180[i]) {
			return fmt.Errorf("table %q row %d contains a non-finite value", t.Name, i)
		}
	}

	if t.Speeds[0] != 0 {
		return fmt.Errorf("table %q first row threshold is %v, want 0 (zero sentinel)", t.Name, t.Speeds[0])
	}

	if t.At0[0] != 0 || t.At90[0] != 0 || t.At180[0] != 0 {
		return fmt.Errorf("table %q zero sentinel carries non-zero corrections (%v, %v, %v)",
			t.Name, t.At0[0], t.At90[0], t.At180[0])
	}

	for i := 1; i < n; i++ {
		if t.Speeds[i] <= t.Speeds[i-1] {
			return fmt.Errorf("table %q thresholds not strictly increasing: row %d (%v) <= row %d (%v)",
				t.Name, i, t.Speeds[i], i-1, t.Speeds[i-1])
		}
	}

	last, prev := n-1, n-2
	if t.At0[last] != t.At0[prev] || t.At90[last] != t.At90[prev] || t.At180[last] != t.At180[prev] {
		return fmt.Errorf("table %q clamp sentinel must repeat the last site's corrections (row %d vs row %d)",
			t.Name, last, prev)
	}

	return nil
}

// Rows returns the table contents as rows, sentinels included. The slice
// is freshly allocated; mutating it does not affect the table.
func (t *Table) Rows() []Row {
	rows := make([]Row, len(t.Speeds))
	for i := range rows {
		rows[i] = Row{
			Speed: t.Speeds[i],
			At0:   t.At0[i],
			At90:  t.At90[i],
			At180: t.At180[i],
		}
	}
	return rows
}

// Len returns the total row count, sentinels included.
func (t *Table) Len() int {
	return len(t.Speeds)
}

// Sites returns the number of real calibration sites (rows between the
// zero sentinel and the clamp sentinel).
func (t *Table) Sites() int {
	if len(t.Speeds) < minRows {
		return 0
	}
	return len(t.Speeds) - 2
}

// MaxCalibratedSpeed returns the highest real calibration site threshold.
// Corrections are clamped flat above this speed.
func (t *Table) MaxCalibratedSpeed() float64 {
	return t.Speeds[len(t.Speeds)-2]
}

// SentinelSpeed returns the clamp sentinel threshold, the maximum speed
// value representable in the table's source encoding.
func (t *Table) SentinelSpeed() float64 {
	return t.Speeds[len(t.Speeds)-1]
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
