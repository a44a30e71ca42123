package engine

// Angle geometry constants (degrees).
//
// These are untyped so the same expressions instantiate cleanly for both
// float32 and float64 engines.
const (
	// angleQuarter separates the two interpolation half-ranges and is the
	// divisor of both angle factors.
	angleQuarter = 90

	// angleFold is the symmetry axis of cup response: airflow striking the
	// anemometer from the mirror-image side behaves identically.
	angleFold = 180

	// angleFull is a full circle. Folding mirrors around it and wrapping
	// reduces modulo it.
	angleFull = 360
)
