package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chrissnell/radecbot/pkg/ephemeris"
	"github.com/chrissnell/radecbot/pkg/phase"
	"github.com/chrissnell/radecbot/pkg/report"
)

func main() {
	var timeStr string
	flag.StringVar(&timeStr, "time", "", "UTC time to calculate phase for (RFC3339 format, e.g., 2024-01-15T12:00:00Z)")
	flag.Parse()

	var t time.Time
	if timeStr == "" {
		t = time.Now().UTC()
	} else {
		var err error
		t, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing time: %v\n", err)
			os.Exit(1)
		}
	}

	// Sun and Moon come from closed-form series, so no VSOP87 data
	// directory is needed for the phase.
	provider := ephemeris.NewVSOP87Provider("")

	angle, err := report.MoonPhaseAngle(provider, t)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing phase angle: %v\n", err)
		os.Exit(1)
	}

	bucket, err := phase.Classify(angle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error classifying phase: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Moon Phase for %s\n", t.Format(time.RFC3339))
	fmt.Printf("  Phase Angle:  %.4f°\n", angle)
	fmt.Printf("  Phase:        %s\n", bucket.Phrase())
	fmt.Printf("  Illumination: %.1f%%\n", phase.Illumination(angle))
}
