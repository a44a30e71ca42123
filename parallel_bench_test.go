package windcorrection

import (
	"math"
	"testing"
)

// BenchmarkCorrectParallel measures scalar correction throughput on a
// shared corrector under parallel load.
func BenchmarkCorrectParallel(b *testing.B) {
	c, err := New(&Config{Table: VantagePro2()})
	if err != nil {
		b.Fatalf("Failed to create corrector: %v", err)
	}

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		speed, angle := 17.3, 42.0
		var sink float64
		for pb.Next() {
			v, _ := c.Correct(speed, angle)
			sink += v
			speed = math.Mod(speed+1.9, 200)
			angle = math.Mod(angle+33.1, 360)
		}
		_ = sink
	})
}

// BenchmarkCorrectSeriesParallel measures batch correction with each
// worker holding its own readings but sharing the corrector.
func BenchmarkCorrectSeriesParallel(b *testing.B) {
	const batchSize = 1024

	c, err := New(&Config{Table: VantagePro2()})
	if err != nil {
		b.Fatalf("Failed to create corrector: %v", err)
	}

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		speeds := make([]float64, batchSize)
		angles := make([]float64, batchSize)
		for i := range batchSize {
			speeds[i] = math.Mod(float64(i)*0.37, 200)
			angles[i] = math.Mod(float64(i)*11.3, 360)
		}

		for pb.Next() {
			if _, err := c.CorrectSeries(speeds, angles); err != nil {
				b.Errorf("CorrectSeries failed: %v", err)
				return
			}
		}
	})
}
