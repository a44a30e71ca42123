package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	windcorrection "github.com/meteokit/go-wind-correction"
)

// Fields per CSV record: speed and angle.
const readingFields = 2

// resolveTable picks the calibration table: an explicit file wins over
// the built-in model name.
func resolveTable(model, tablePath string) (windcorrection.CalibrationTable, error) {
	if tablePath != "" {
		return windcorrection.LoadTable(tablePath)
	}
	return windcorrection.ModelTable(model)
}

// parseFloatArg parses a positional numeric argument.
func parseFloatArg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}

// readReadings loads speed,angle pairs from a CSV file, or stdin when
// path is "-".
func readReadings(path string) (speeds, angles []float64, err error) {
	if path == "-" {
		return parseReadings(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open readings file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return parseReadings(f)
}

// parseReadings decodes CSV records into parallel speed and angle
// slices. A non-numeric first record is skipped as a header.
func parseReadings(r io.Reader) (speeds, angles []float64, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = readingFields
	cr.TrimLeadingSpace = true

	record := 0
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		record++

		speed, speedErr := strconv.ParseFloat(fields[0], 64)
		angle, angleErr := strconv.ParseFloat(fields[1], 64)
		if speedErr != nil || angleErr != nil {
			if record == 1 {
				continue
			}
			return nil, nil, fmt.Errorf("record %d: cannot parse reading %q", record, strings.Join(fields, ","))
		}

		speeds = append(speeds, speed)
		angles = append(angles, angle)
	}

	return speeds, angles, nil
}

// writeCorrected emits raw_speed,angle,corrected_speed CSV records.
func writeCorrected(w io.Writer, speeds, angles, corrected []float64) error {
	cw := csv.NewWriter(w)

	record := make([]string, 3)
	for i := range corrected {
		record[0] = formatValue(speeds[i])
		record[1] = formatValue(angles[i])
		record[2] = formatValue(corrected[i])
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', outputPrecision, 64)
}

// toFloat32 converts a reading series for the fast path.
func toFloat32(xs []float64) []float32 {
	out := make([]float32, len(xs))
	for i, v := range xs {
		out[i] = float32(v)
	}
	return out
}

// toFloat64 converts fast-path results back for printing.
func toFloat64(xs []float32) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = float64(v)
	}
	return out
}

// batchSummary holds statistics over the applied correction terms.
type batchSummary struct {
	readings int
	mean     float64
	stddev   float64
	min      float64
	max      float64
}

// summarizeCorrections computes statistics over the correction terms
// (corrected minus raw). Callers guard against empty input.
func summarizeCorrections(speeds, corrected []float64) batchSummary {
	corrections := make([]float64, len(corrected))
	for i := range corrected {
		corrections[i] = corrected[i] - speeds[i]
	}

	return batchSummary{
		readings: len(corrections),
		mean:     stat.Mean(corrections, nil),
		stddev:   stat.StdDev(corrections, nil),
		min:      floats.Min(corrections),
		max:      floats.Max(corrections),
	}
}
