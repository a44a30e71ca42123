// Command windcorrect applies wind tunnel calibration corrections to raw
// anemometer wind speed readings.
//
// Usage:
//
//	windcorrect 20.0 45.0                                # one reading: speed angle
//	windcorrect -model vantage-pro2-compact 20 45        # pick a built-in table
//	windcorrect -table station.json -csv readings.csv    # custom table, CSV batch
//	windcorrect -csv - -summary < readings.csv           # stdin batch with statistics
//	windcorrect -csv logger.csv -fast                    # float32 path for logger dumps
//
// CSV input carries one speed,angle pair per line; a non-numeric first
// line is skipped as a header. Corrected readings go to stdout as
// raw_speed,angle,corrected_speed records, the summary to stderr. Flags
// can also be set through WINDCORRECT_* environment variables.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/peterbourgon/ff"

	windcorrection "github.com/meteokit/go-wind-correction"
)

const (
	// Arguments for a single positional reading: speed and angle.
	readingArgCount = 2

	// Decimals printed for speeds and angles.
	outputPrecision = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	fs := flag.NewFlagSet("windcorrect", flag.ExitOnError)
	var (
		model = fs.String("model", windcorrection.ModelVantagePro2,
			"Built-in calibration model: "+strings.Join(windcorrection.ModelNames(), ", "))
		tablePath = fs.String("table", "", "Path to a JSON calibration table (overrides -model)")
		csvPath   = fs.String("csv", "", `CSV file with speed,angle readings; "-" reads stdin`)
		strict    = fs.Bool("strict", false, "Reject angles outside [0, 360] instead of wrapping")
		fast      = fs.Bool("fast", false, "Use float32 precision (faster batch processing)")
		summary   = fs.Bool("summary", false, "Print correction statistics after a CSV batch")
		verbose   = fs.Bool("v", false, "Verbose output")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("WINDCORRECT")); err != nil {
		return err
	}

	table, err := resolveTable(*model, *tablePath)
	if err != nil {
		return err
	}
	config := &windcorrection.Config{Table: table, StrictAngles: *strict}

	if *csvPath != "" {
		if fs.NArg() > 0 {
			return fmt.Errorf("cannot combine -csv with positional readings")
		}
		return runBatch(config, *csvPath, *fast, *summary, *verbose)
	}

	args := fs.Args()
	if len(args) != readingArgCount {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] SPEED ANGLE\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s [options] -csv readings.csv\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s 20 45                        # correct one reading\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -csv day.csv -summary        # correct a logger dump\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -table station.json 20 45    # use a custom table\n", os.Args[0])
		return fmt.Errorf("expected SPEED and ANGLE arguments or -csv input")
	}
	return runSingle(config, args[0], args[1], *fast, *verbose)
}

// runSingle corrects one positional reading and prints the result.
func runSingle(config *windcorrection.Config, speedArg, angleArg string, fast, verbose bool) error {
	speed, err := parseFloatArg("speed", speedArg)
	if err != nil {
		return err
	}
	angle, err := parseFloatArg("angle", angleArg)
	if err != nil {
		return err
	}

	if fast {
		c, err := windcorrection.NewFloat32(config)
		if err != nil {
			return err
		}
		logTableInfo(c.Info(), fast, verbose)

		corrected, err := c.Correct(float32(speed), float32(angle))
		if err != nil {
			return err
		}
		fmt.Printf("%.*f\n", outputPrecision, corrected)
		return nil
	}

	c, err := windcorrection.New(config)
	if err != nil {
		return err
	}
	logTableInfo(c.Info(), fast, verbose)

	corrected, err := c.Correct(speed, angle)
	if err != nil {
		return err
	}
	fmt.Printf("%.*f\n", outputPrecision, corrected)
	return nil
}

// runBatch corrects a CSV series and writes the records to stdout.
func runBatch(config *windcorrection.Config, path string, fast, summary, verbose bool) error {
	start := time.Now()

	speeds, angles, err := readReadings(path)
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("Read %d readings from %s", len(speeds), displayPath(path))
	}

	var corrected []float64
	if fast {
		c, err := windcorrection.NewFloat32(config)
		if err != nil {
			return err
		}
		logTableInfo(c.Info(), fast, verbose)

		out, err := c.CorrectSeries(toFloat32(speeds), toFloat32(angles))
		if err != nil {
			return err
		}
		corrected = toFloat64(out)
	} else {
		c, err := windcorrection.New(config)
		if err != nil {
			return err
		}
		logTableInfo(c.Info(), fast, verbose)

		corrected, err = c.CorrectSeries(speeds, angles)
		if err != nil {
			return err
		}
	}

	if err := writeCorrected(os.Stdout, speeds, angles, corrected); err != nil {
		return err
	}

	if summary {
		// Stdout carries the corrected records, so statistics go to stderr.
		if len(corrected) == 0 {
			fmt.Fprintln(os.Stderr, "No readings")
			return nil
		}
		printSummary(summarizeCorrections(speeds, corrected), time.Since(start))
	}

	return nil
}

// logTableInfo reports the active calibration in verbose mode.
func logTableInfo(info windcorrection.Info, fast, verbose bool) {
	if !verbose {
		return
	}

	log.Printf("Table: %s (%d sites, calibrated to %g, scale %g)",
		info.Model, info.Sites, info.MaxCalibratedSpeed, info.Scale)
	if fast {
		log.Printf("Precision: float32 (fast mode)")
	} else {
		log.Printf("Precision: float64")
	}
}

// printSummary reports batch statistics on stderr.
func printSummary(s batchSummary, elapsed time.Duration) {
	fmt.Fprintf(os.Stderr, "Corrected %d readings in %.3fs\n", s.readings, elapsed.Seconds())
	fmt.Fprintf(os.Stderr, "  Correction mean:   %+.3f\n", s.mean)
	fmt.Fprintf(os.Stderr, "  Correction stddev: %.3f\n", s.stddev)
	fmt.Fprintf(os.Stderr, "  Correction range:  [%+.3f, %+.3f]\n", s.min, s.max)
}

// displayPath names the input source in logs.
func displayPath(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}
