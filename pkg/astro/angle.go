package astro

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// Sexagesimal splits a value in some base unit (hours or degrees) into
// a sign and a whole/minute/second triple, rounding to the nearest
// whole second. A carry out of the seconds field propagates upward, so
// the minute and second components are always in [0,59]. The sign is
// taken from the unrounded input; -0.3 splits to a negative triple even
// though its whole part is zero.
func Sexagesimal(x float64) (neg bool, u1, u2, u3 int) {
	neg = math.Signbit(x)
	v := math.Abs(x)
	u1 = int(v)
	v = (v - float64(u1)) * 60
	u2 = int(v)
	u3 = int(math.Round((v - float64(u2)) * 60))
	if u3 == 60 {
		u3 = 0
		u2++
	}
	if u2 == 60 {
		u2 = 0
		u1++
	}
	return neg, u1, u2, u3
}

// FormatRA renders a right ascension as HHhMMmSSs. A rounding carry out
// of the hours field (23h59m59.6s) wraps at 24h.
func FormatRA(ra unit.RA) string {
	_, h, m, s := Sexagesimal(ra.Hour())
	h %= 24
	return fmt.Sprintf("%02dh%02dm%02ds", h, m, s)
}

// FormatDec renders a declination as ±DD°M′SS″: a forced-sign two-digit
// degree field, an unpadded minute field, and a two-digit second field.
func FormatDec(dec unit.Angle) string {
	neg, d, m, s := Sexagesimal(dec.Deg())
	sign := "+"
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%02d°%d′%02d″", sign, d, m, s)
}

// CheckDec reports an error if dec lies outside the declination domain
// of ±90°. Out-of-domain values indicate a broken upstream computation
// and are never clamped.
func CheckDec(dec unit.Angle) error {
	if d := dec.Deg(); d < -90 || d > 90 {
		return fmt.Errorf("declination %.6f° outside ±90°", d)
	}
	return nil
}
