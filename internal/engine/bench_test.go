package engine

import (
	"testing"

	"github.com/meteokit/go-wind-correction/internal/table"
)

// BenchmarkCorrect measures the scalar hot path on the float64 engine.
func BenchmarkCorrect(b *testing.B) {
	e, err := New[float64](table.VantagePro2(), false)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = e.Correct(87.3, 211)
	}
}

// BenchmarkCorrect_Float32 measures the scalar hot path on the float32
// engine.
func BenchmarkCorrect_Float32(b *testing.B) {
	e, err := New[float32](table.VantagePro2(), false)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = e.Correct(87.3, 211)
	}
}

// BenchmarkCorrectSeries measures the vectorized series path over a
// logger-sized batch.
func BenchmarkCorrectSeries(b *testing.B) {
	e, err := New[float64](table.VantagePro2(), false)
	if err != nil {
		b.Fatal(err)
	}

	const batch = 1024
	speeds := make([]float64, batch)
	angles := make([]float64, batch)
	for i := range batch {
		speeds[i] = float64(i % 200)
		angles[i] = float64((i * 7) % 360)
	}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = e.CorrectSeries(speeds, angles)
	}
}
