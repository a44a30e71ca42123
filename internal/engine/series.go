package engine

import "fmt"

// CorrectSeries corrects parallel speed and angle slices in one pass and
// returns the corrected speeds in a new slice. Readings are validated up
// front; the first invalid pair aborts the whole series so a data logger
// cannot silently mix corrected and uncorrectable samples.
//
// Denormalization runs as a single vectorized scale pass over the whole
// correction column, multiplying by the reciprocal scale. That differs
// from the scalar path's division by at most one ulp per element.
func (e *Engine[F]) CorrectSeries(rawSpeeds, angles []F) ([]F, error) {
	if len(rawSpeeds) != len(angles) {
		return nil, fmt.Errorf("series length mismatch: %d speeds vs %d angles", len(rawSpeeds), len(angles))
	}

	for i := range rawSpeeds {
		if err := e.checkInputs(rawSpeeds[i], angles[i]); err != nil {
			return nil, fmt.Errorf("reading %d: %w", i, err)
		}
	}

	corrected := make([]F, len(rawSpeeds))
	if len(corrected) == 0 {
		return corrected, nil
	}

	for i := range rawSpeeds {
		corrected[i] = e.rawCorrection(rawSpeeds[i], angles[i])
	}

	e.ops.Scale(corrected, corrected, 1/e.scale)

	for i := range corrected {
		corrected[i] += rawSpeeds[i]
	}

	return corrected, nil
}

// TotalCorrection sums the correction column of a series without keeping
// the per-reading values, using the vectorized sum. Handy for logging how
// much a correction pass moved a whole observation window.
func (e *Engine[F]) TotalCorrection(rawSpeeds, angles []F) (F, error) {
	corrected, err := e.CorrectSeries(rawSpeeds, angles)
	if err != nil {
		return 0, err
	}

	for i := range corrected {
		corrected[i] -= rawSpeeds[i]
	}

	return e.ops.Sum(corrected), nil
}
