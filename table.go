package windcorrection

import (
	"fmt"

	"github.com/meteokit/go-wind-correction/internal/table"
)

// CalibrationRow is one calibration table entry: a speed threshold and the
// correction magnitudes measured at the three reference angles, stored at
// the table's scale.
type CalibrationRow struct {
	// Speed is the site's speed threshold, in the deployment's speed
	// unit. Thresholds must increase strictly from row to row.
	Speed float64

	// At0, At90 and At180 are the signed corrections at 0, 90 and 180
	// degrees. Divide by the table's Scale to obtain true units.
	At0   float64
	At90  float64
	At180 float64
}

// CalibrationTable is the configuration surface of a corrector: the
// calibration rows plus their storage scale. It is plain versionable data;
// nothing else tunes the correction.
//
// A valid table is sentinel-shaped: the first row sits at speed 0 with all
// corrections zero, the last row repeats the final real corrections at the
// maximum representable speed, and the rows between carry the real
// calibration sites in strictly increasing speed order. TableFromSites
// produces this shape from bare site data.
type CalibrationTable struct {
	// Name identifies the table, typically the anemometer model.
	Name string

	// Scale is the decimal storage scale of the correction columns:
	// 1 for plain tables, 10 for tables storing integer tenths.
	Scale float64

	// Rows holds the calibration data, sentinels included.
	Rows []CalibrationRow
}

// Validate checks the table's structural invariants. New performs the
// same check, so explicit calls are only needed to vet a table without
// constructing a corrector.
func (t *CalibrationTable) Validate() error {
	if _, err := t.compile(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	return nil
}

// compile converts the public row form into the engine's columnar form,
// validating all invariants in the process.
func (t *CalibrationTable) compile() (*table.Table, error) {
	rows := make([]table.Row, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = table.Row{Speed: r.Speed, At0: r.At0, At90: r.At90, At180: r.At180}
	}
	return table.Build(t.Name, t.Scale, rows)
}

// TableFromSites builds a sentinel-shaped calibration table from real
// calibration sites only. The zero sentinel is prepended and the clamp
// sentinel is appended at maxSpeed carrying the last site's corrections,
// so callers supply just the measured data.
//
// maxSpeed is the highest speed value the table's source encoding can
// represent (999 for plain float-indexed tables, 255 for byte-indexed
// ones); it must exceed the last site's threshold.
func TableFromSites(name string, scale, maxSpeed float64, sites []CalibrationRow) (CalibrationTable, error) {
	if len(sites) == 0 {
		return CalibrationTable{}, fmt.Errorf("%w: no calibration sites", ErrInvalidTable)
	}

	rows := make([]CalibrationRow, 0, len(sites)+2)
	rows = append(rows, CalibrationRow{})
	rows = append(rows, sites...)

	last := sites[len(sites)-1]
	rows = append(rows, CalibrationRow{
		Speed: maxSpeed,
		At0:   last.At0,
		At90:  last.At90,
		At180: last.At180,
	})

	t := CalibrationTable{Name: name, Scale: scale, Rows: rows}
	if err := t.Validate(); err != nil {
		return CalibrationTable{}, err
	}

	return t, nil
}

// fromCompiled rebuilds the public row form from a compiled table.
func fromCompiled(tbl *table.Table) CalibrationTable {
	rows := tbl.Rows()

	public := CalibrationTable{
		Name:  tbl.Name,
		Scale: tbl.Scale,
		Rows:  make([]CalibrationRow, len(rows)),
	}
	for i, r := range rows {
		public.Rows[i] = CalibrationRow{Speed: r.Speed, At0: r.At0, At90: r.At90, At180: r.At180}
	}

	return public
}
