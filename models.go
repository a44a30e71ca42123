package windcorrection

import (
	"fmt"
	"strings"

	"github.com/meteokit/go-wind-correction/internal/engine"
	"github.com/meteokit/go-wind-correction/internal/table"
)

// VantagePro2 returns the built-in Davis Vantage Pro 2 calibration table
// with corrections stored as plain decimals (scale 1). The returned value
// is a private copy; modifying it does not affect other callers.
func VantagePro2() CalibrationTable {
	return fromCompiled(table.VantagePro2())
}

// VantagePro2Compact returns the built-in Davis Vantage Pro 2 calibration
// table with corrections stored as integer tenths (scale 10), the form
// used by byte-oriented logger firmware. It yields the same corrected
// speeds as VantagePro2.
func VantagePro2Compact() CalibrationTable {
	return fromCompiled(table.VantagePro2Compact())
}

// ModelTable returns the built-in calibration table for the named
// anemometer model. It returns ErrUnknownModel for names not listed by
// ModelNames.
func ModelTable(name string) (CalibrationTable, error) {
	tbl, ok := table.ByName(name)
	if !ok {
		return CalibrationTable{}, fmt.Errorf("%w: %q (built-in models: %s)",
			ErrUnknownModel, name, strings.Join(table.ModelNames(), ", "))
	}
	return fromCompiled(tbl), nil
}

// ModelNames returns the names of all built-in calibration models in
// stable order.
func ModelNames() []string {
	return table.ModelNames()
}

// NewVantagePro2 creates a corrector for the Davis Vantage Pro 2 using
// the plain-decimal table. This is the most common deployment.
func NewVantagePro2() (Corrector, error) {
	return New(&Config{Table: VantagePro2()})
}

// NewVantagePro2Compact creates a corrector for the Davis Vantage Pro 2
// using the integer-tenths table.
func NewVantagePro2Compact() (Corrector, error) {
	return New(&Config{Table: VantagePro2Compact()})
}

// NewModel creates a corrector for the named built-in model.
func NewModel(name string) (Corrector, error) {
	tbl, err := ModelTable(name)
	if err != nil {
		return nil, err
	}
	return New(&Config{Table: tbl})
}

// CorrectSpeed is a convenience function for one-shot correction with the
// Vantage Pro 2 model. It builds a corrector per call; for repeated
// readings construct one with New and reuse it.
func CorrectSpeed(rawSpeed, angle float64) (float64, error) {
	c, err := NewVantagePro2()
	if err != nil {
		return 0, err
	}
	return c.Correct(rawSpeed, angle)
}

// =============================================================================
// Float32 Native API
// =============================================================================
//
// The following types and functions provide a float32-native correction
// path. Use these when readings already arrive as float32 (embedded
// loggers, radio telemetry frames) for:
//   - ~2x SIMD throughput in CorrectSeries (256-bit SIMD processes 8×float32 vs 4×float64)
//   - Reduced memory bandwidth on long series
//   - Consistent float32 throughout (no type conversions)
//
// Float32 corrections agree with the float64 path to well below the
// resolution of any anemometer. For archival reprocessing, use the
// float64 API anyway.

// CorrectorFloat32 is a float32-native corrector. It wraps the
// engine over float32 directly, so series pass through without any
// widening or narrowing conversions.
//
// Like Corrector, it is immutable after construction and safe for
// concurrent use.
//
// Example:
//
//	c, err := windcorrection.NewFloat32(&windcorrection.Config{
//	    Table: windcorrection.VantagePro2Compact(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	corrected, _ := c.CorrectSeries(speeds, angles) // []float32 in, []float32 out
type CorrectorFloat32 struct {
	engine *engine.Engine[float32]
	table  *table.Table
}

// NewFloat32 creates a float32-native corrector with the specified
// configuration. The calibration table itself stays float64; only the
// reading path runs in float32.
func NewFloat32(config *Config) (*CorrectorFloat32, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	compiled, err := config.Table.compile()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	eng, err := engine.New[float32](compiled, config.StrictAngles)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	return &CorrectorFloat32{engine: eng, table: compiled}, nil
}

// Correct returns the corrected speed for a raw anemometer reading at the
// given wind angle in degrees.
func (c *CorrectorFloat32) Correct(rawSpeed, angle float32) (float32, error) {
	corrected, err := c.engine.Correct(rawSpeed, angle)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidReading, err)
	}
	return corrected, nil
}

// Correction returns only the correction term Correct would add to
// rawSpeed, in true units.
func (c *CorrectorFloat32) Correction(rawSpeed, angle float32) (float32, error) {
	correction, err := c.engine.Correction(rawSpeed, angle)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidReading, err)
	}
	return correction, nil
}

// CorrectSeries corrects parallel float32 speed and angle slices in one
// pass. The first invalid reading aborts the whole series.
func (c *CorrectorFloat32) CorrectSeries(rawSpeeds, angles []float32) ([]float32, error) {
	corrected, err := c.engine.CorrectSeries(rawSpeeds, angles)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReading, err)
	}
	return corrected, nil
}

// Info returns metadata about the calibration the corrector runs on.
func (c *CorrectorFloat32) Info() Info {
	return Info{
		Model:              c.table.Name,
		Scale:              c.table.Scale,
		Sites:              c.table.Sites(),
		MaxCalibratedSpeed: c.table.MaxCalibratedSpeed(),
		SentinelSpeed:      c.table.SentinelSpeed(),
	}
}
