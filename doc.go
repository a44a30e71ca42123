// Package windcorrection corrects anemometer wind speed readings for
// angle-dependent measurement error in pure Go.
//
// Cup and propeller anemometers under- or over-read depending on the
// angle between the wind and the instrument head. This library applies
// wind-tunnel calibration tables to raw readings, interpolating the
// tabulated corrections bilinearly over speed and angle the same way
// weather station firmware does.
//
// # Features
//
//   - Bilinear correction over calibration tables measured at 0, 90 and 180 degrees
//   - Built-in Davis Vantage Pro 2 characterization in plain and integer-tenths form
//   - Custom tables from Go values ([TableFromSites]) or JSON files ([LoadTable])
//   - Full validation at construction; correction calls never re-check the table
//   - Series API with SIMD acceleration (AVX2/SSE) via github.com/tphakala/simd
//   - Float32-native path for embedded logger and telemetry data
//   - Pure Go implementation with no CGO dependencies
//
// # Quick Start
//
// For a one-shot correction with the Vantage Pro 2 model:
//
//	corrected, err := windcorrection.CorrectSpeed(20.0, 45.0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated readings, build a corrector once and reuse it:
//
//	c, err := windcorrection.New(&windcorrection.Config{
//	    Table: windcorrection.VantagePro2(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, r := range readings {
//	    corrected, err := c.Correct(r.Speed, r.Angle)
//	    if err != nil {
//	        log.Printf("reading rejected: %v", err)
//	        continue
//	    }
//	    store(corrected)
//	}
//
// Logger dumps with parallel speed and angle columns go through
// [Corrector.CorrectSeries] in one call.
//
// # Calibration Models
//
// Two built-in tables carry the same Davis Vantage Pro 2 wind tunnel
// characterization:
//
//   - [VantagePro2]: corrections stored as plain decimals (scale 1)
//   - [VantagePro2Compact]: corrections stored as integer tenths (scale 10),
//     the form byte-oriented logger firmware ships
//
// Both produce identical corrected speeds; the compact form exists so
// tables extracted from firmware can be used verbatim. [ModelTable] looks
// tables up by name.
//
// # Calibration Files
//
// [LoadTable] reads a table from JSON. Files list only the real
// calibration sites; the zero row and the clamp sentinel are added on
// load:
//
//	{
//	  "name": "my-station",
//	  "scale": 1,
//	  "max_speed": 999,
//	  "sites": [
//	    {"speed": 20, "at_0": 3.3, "at_90": -2.3, "at_180": -3.6},
//	    {"speed": 25, "at_0": 3.5, "at_90": -2.7, "at_180": -4.6}
//	  ]
//	}
//
// # Angles and Errors
//
// Angles are degrees off the wind axis. Readings above 180 are folded by
// symmetry (fold(a) = 360 - a), and angles outside [0, 360] wrap modulo
// 360 so that out-of-convention directions stay non-fatal. Setting
// [Config].StrictAngles rejects them instead, for callers that treat
// such angles as upstream sensor faults.
//
// Negative or non-finite speeds and non-finite angles always return
// [ErrInvalidReading]. Speeds above the calibrated range are accepted
// and receive the last site's correction.
//
// # Thread Safety
//
// A [Corrector] is immutable after [New] returns. All methods are safe
// for concurrent use by multiple goroutines without external
// synchronization. The same holds for [CorrectorFloat32].
//
// # Attribution
//
// The built-in calibration data reproduces the Davis Instruments wind
// tunnel characterization of the Vantage Pro 2 anemometer as published
// in the station firmware's correction tables.
package windcorrection
