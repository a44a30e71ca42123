package windcorrection

import (
	"errors"
	"fmt"

	"github.com/meteokit/go-wind-correction/internal/engine"
	"github.com/meteokit/go-wind-correction/internal/table"
)

// Corrector is the main interface for wind speed correction.
// A corrector owns an immutable, validated calibration table and converts
// raw anemometer readings into wind-tunnel corrected speeds.
type Corrector interface {
	// Correct returns the corrected speed for a raw anemometer reading at
	// the given wind angle in degrees. The output is in the same unit as
	// rawSpeed.
	Correct(rawSpeed, angle float64) (float64, error)

	// Correction returns only the correction term Correct would add to
	// rawSpeed, in true units.
	Correction(rawSpeed, angle float64) (float64, error)

	// CorrectSeries corrects parallel speed and angle slices in one pass,
	// as produced by a data logger. The first invalid reading aborts the
	// whole series.
	CorrectSeries(rawSpeeds, angles []float64) ([]float64, error)

	// Info returns metadata about the calibration the corrector runs on.
	Info() Info
}

// Config holds corrector configuration.
type Config struct {
	// Table is the calibration data: sentinel-shaped rows plus the
	// storage scale. Use a built-in model table, LoadTable, or
	// TableFromSites to obtain one.
	Table CalibrationTable

	// StrictAngles rejects angles outside [0, 360] with an error instead
	// of wrapping them modulo 360. The wrap keeps out-of-convention
	// angles non-fatal; strict mode is for callers that treat them as
	// upstream sensor faults.
	StrictAngles bool
}

// Common errors returned by the corrector.
var (
	// ErrInvalidConfig indicates invalid corrector configuration.
	ErrInvalidConfig = errors.New("invalid corrector configuration")

	// ErrInvalidTable indicates a calibration table that violates the
	// structural invariants (sentinel shape, monotonic thresholds,
	// finite values, positive scale).
	ErrInvalidTable = errors.New("invalid calibration table")

	// ErrInvalidReading indicates a rejected input reading: negative or
	// non-finite speed, non-finite angle, or an out-of-convention angle
	// in strict mode.
	ErrInvalidReading = errors.New("invalid reading")

	// ErrUnknownModel indicates a model name with no built-in table.
	ErrUnknownModel = errors.New("unknown anemometer model")
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return c.Table.Validate()
}

// New creates a corrector with the specified configuration. The table is
// compiled and validated once here; calls never re-validate it.
func New(config *Config) (Corrector, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	compiled, err := config.Table.compile()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	eng, err := engine.New[float64](compiled, config.StrictAngles)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	return &corrector{engine: eng, table: compiled}, nil
}

// corrector implements Corrector over the float64 engine.
type corrector struct {
	engine *engine.Engine[float64]
	table  *table.Table
}

func (c *corrector) Correct(rawSpeed, angle float64) (float64, error) {
	corrected, err := c.engine.Correct(rawSpeed, angle)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidReading, err)
	}
	return corrected, nil
}

func (c *corrector) Correction(rawSpeed, angle float64) (float64, error) {
	correction, err := c.engine.Correction(rawSpeed, angle)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidReading, err)
	}
	return correction, nil
}

func (c *corrector) CorrectSeries(rawSpeeds, angles []float64) ([]float64, error) {
	corrected, err := c.engine.CorrectSeries(rawSpeeds, angles)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReading, err)
	}
	return corrected, nil
}

func (c *corrector) Info() Info {
	return Info{
		Model:              c.table.Name,
		Scale:              c.table.Scale,
		Sites:              c.table.Sites(),
		MaxCalibratedSpeed: c.table.MaxCalibratedSpeed(),
		SentinelSpeed:      c.table.SentinelSpeed(),
	}
}

// Info describes the calibration a corrector runs on.
type Info struct {
	// Model is the calibration table name.
	Model string

	// Sites is the number of real calibration sites between the
	// sentinels.
	Sites int

	// MaxCalibratedSpeed is the highest real site threshold; corrections
	// clamp flat above it.
	MaxCalibratedSpeed float64

	// SentinelSpeed is the clamp sentinel threshold, the maximum speed
	// representable in the table's source encoding.
	SentinelSpeed float64

	// Scale is the decimal storage scale of the correction columns.
	Scale float64
}
