// Package phase converts a lunar phase angle into an illuminated
// fraction and a named phase bucket.
//
// The phase angle is the Moon's apparent ecliptic longitude minus the
// Sun's, normalized to [0,360): 0° is new, 180° is full.
package phase

import (
	"fmt"
	"math"
)

// Bucket is one of the eight named lunar phases.
type Bucket int

const (
	New Bucket = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	Full
	WaningGibbous
	ThirdQuarter
	WaningCrescent
)

// boundaries maps half-open phase-angle intervals to buckets: an angle
// d belongs to the first entry with d < upTo. The final new-moon
// interval [345,360) closes the circle back to New.
var boundaries = []struct {
	upTo   float64
	bucket Bucket
}{
	{15, New},
	{75, WaxingCrescent},
	{105, FirstQuarter},
	{165, WaxingGibbous},
	{195, Full},
	{255, WaningGibbous},
	{285, ThirdQuarter},
	{345, WaningCrescent},
	{360, New},
}

// phrases are the report wordings, indexed by Bucket.
var phrases = []string{
	"new",
	"a waxing crescent",
	"at first quarter",
	"a waxing gibbous",
	"full",
	"a waning gibbous",
	"at third quarter",
	"a waning crescent",
}

// Classify maps a phase angle in degrees to its bucket. The input must
// already be normalized to [0,360); anything else indicates a missing
// normalization step upstream and is rejected rather than defaulted.
func Classify(deg float64) (Bucket, error) {
	if deg < 0 || deg >= 360 || math.IsNaN(deg) {
		return 0, fmt.Errorf("phase angle %v° outside [0,360)", deg)
	}
	for _, b := range boundaries {
		if deg < b.upTo {
			return b.bucket, nil
		}
	}
	// Unreachable: the table covers [0,360).
	return 0, fmt.Errorf("phase angle %v° not covered by boundary table", deg)
}

// Phrase returns the report wording for b, e.g. "a waxing crescent".
func (b Bucket) Phrase() string {
	if b < New || b > WaningCrescent {
		return "unknown"
	}
	return phrases[b]
}

// Illumination returns the illuminated percentage for a phase angle in
// degrees. This is the triangular approximation the bot has always
// used: 0% at 0°/360°, 100% at 180°, linear in between. It is not a
// cosine illumination model, and deliberately so.
func Illumination(deg float64) float64 {
	return 100 * (1 - math.Abs(deg-180)/180)
}
