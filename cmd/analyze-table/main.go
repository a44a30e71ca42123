// Command analyze-table inspects wind correction calibration tables. It
// prints the correction surface at the calibration sites, integrates
// mean corrections over the calibrated range, and can render the
// correction curves to a PNG.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	windcorrection "github.com/meteokit/go-wind-correction"
)

const (
	// Sweep parameters: curves run from zero to the last calibration
	// site plus headroom, so the flat clamp region stays visible.
	defaultSweepStep = 0.5
	sweepHeadroom    = 1.1

	plotWidth  = 10 * vg.Inch
	plotHeight = 6 * vg.Inch
)

// Reference and midpoint angles shown in every analysis.
var analysisAngles = []float64{0, 45, 90, 135, 180}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	model := flag.String("model", windcorrection.ModelVantagePro2, "Built-in calibration model")
	tablePath := flag.String("table", "", "Path to a JSON calibration table (overrides -model)")
	plotPath := flag.String("plot", "", "Write correction curves to this PNG file")
	step := flag.Float64("step", defaultSweepStep, "Speed step for the curve sweep")
	flag.Parse()

	if *step <= 0 {
		return fmt.Errorf("step must be positive, got %g", *step)
	}

	table, err := loadTable(*model, *tablePath)
	if err != nil {
		return err
	}

	c, err := windcorrection.New(&windcorrection.Config{Table: table})
	if err != nil {
		return err
	}

	info := c.Info()
	fmt.Println("=== Calibration Table Analysis ===")
	fmt.Printf("Table info:\n")
	fmt.Printf("  Name: %s\n", info.Model)
	fmt.Printf("  Sites: %d\n", info.Sites)
	fmt.Printf("  Max calibrated speed: %g\n", info.MaxCalibratedSpeed)
	fmt.Printf("  Sentinel speed: %g\n", info.SentinelSpeed)
	fmt.Printf("  Storage scale: %g\n\n", info.Scale)

	if err := printSiteCorrections(c, table); err != nil {
		return err
	}

	speeds := sweepSpeeds(info.MaxCalibratedSpeed*sweepHeadroom, *step)
	curves, err := sweepCurves(c, speeds)
	if err != nil {
		return err
	}

	fmt.Println("\nMean correction over sweep (true units):")
	for i, angle := range analysisAngles {
		mean := f64.Sum(curves[i]) / float64(len(curves[i]))
		fmt.Printf("  %4g deg: %+.3f\n", angle, mean)
	}

	if *plotPath != "" {
		if err := plotCurves(info.Model, speeds, curves, *plotPath); err != nil {
			return err
		}
		fmt.Printf("\nWrote correction curves to %s\n", *plotPath)
	}

	return nil
}

func loadTable(model, tablePath string) (windcorrection.CalibrationTable, error) {
	if tablePath != "" {
		return windcorrection.LoadTable(tablePath)
	}
	return windcorrection.ModelTable(model)
}

// printSiteCorrections tabulates the correction surface at each real
// calibration site.
func printSiteCorrections(c windcorrection.Corrector, table windcorrection.CalibrationTable) error {
	fmt.Println("Correction at calibration sites (true units):")
	fmt.Printf("  %8s", "speed")
	for _, angle := range analysisAngles {
		fmt.Printf("  %8s", fmt.Sprintf("%g deg", angle))
	}
	fmt.Println()

	for _, row := range table.Rows[1 : len(table.Rows)-1] {
		fmt.Printf("  %8.1f", row.Speed)
		for _, angle := range analysisAngles {
			correction, err := c.Correction(row.Speed, angle)
			if err != nil {
				return err
			}
			fmt.Printf("  %+8.2f", correction)
		}
		fmt.Println()
	}

	return nil
}

// sweepSpeeds builds the shared speed axis for all curves.
func sweepSpeeds(limit, step float64) []float64 {
	speeds := make([]float64, 0, int(limit/step)+1)
	for s := 0.0; s <= limit; s += step {
		speeds = append(speeds, s)
	}
	return speeds
}

// sweepCurves evaluates the correction term along the speed axis for
// each analysis angle.
func sweepCurves(c windcorrection.Corrector, speeds []float64) ([][]float64, error) {
	curves := make([][]float64, len(analysisAngles))
	for i, angle := range analysisAngles {
		curve := make([]float64, len(speeds))
		for j, speed := range speeds {
			correction, err := c.Correction(speed, angle)
			if err != nil {
				return nil, err
			}
			curve[j] = correction
		}
		curves[i] = curve
	}
	return curves, nil
}

// plotCurves renders one line per analysis angle.
func plotCurves(name string, speeds []float64, curves [][]float64, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s correction curves", name)
	p.X.Label.Text = "Raw speed"
	p.Y.Label.Text = "Correction"

	palette := curvePalette(len(analysisAngles))
	for i, angle := range analysisAngles {
		pts := make(plotter.XYs, len(speeds))
		for j := range speeds {
			pts[j] = plotter.XY{X: speeds[j], Y: curves[i][j]}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("curve for %g degrees: %w", angle, err)
		}
		line.Color = palette[i]
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%g deg", angle), line)
	}

	p.Legend.Top = true
	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}

	return nil
}

// curvePalette returns distinguishable line colors, cycling when more
// curves than base colors are requested.
func curvePalette(n int) []color.Color {
	base := []color.Color{
		color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
		color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
		color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
		color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	}

	out := make([]color.Color, n)
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out
}
