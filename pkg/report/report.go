// Package report resolves body positions for an instant and composes
// the bot's two status texts. Composition is pure: the same resolved
// inputs always produce byte-identical strings.
package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/chrissnell/radecbot/pkg/astro"
	"github.com/chrissnell/radecbot/pkg/ephemeris"
	"github.com/chrissnell/radecbot/pkg/phase"
	"github.com/soniakeys/unit"
)

// PositionSample is one body's resolved equatorial coordinates for a
// single instant.
type PositionSample struct {
	RA  unit.RA
	Dec unit.Angle
}

// ResolveAll asks the provider for every catalog body except Earth at
// instant t. Any body the provider cannot supply fails the whole call;
// a partial map is never returned.
func ResolveAll(p ephemeris.Provider, t time.Time) (map[astro.Body]PositionSample, error) {
	samples := make(map[astro.Body]PositionSample, len(astro.Catalog)-1)
	for _, info := range astro.Catalog {
		if info.Body == astro.Earth {
			continue
		}
		pos, err := p.Observe(astro.Earth, info.Body, t)
		if err != nil {
			return nil, fmt.Errorf("resolving %v: %w", info.Body, err)
		}
		if err := astro.CheckDec(pos.Dec); err != nil {
			return nil, fmt.Errorf("resolving %v: %w", info.Body, err)
		}
		samples[info.Body] = PositionSample{RA: pos.RA, Dec: pos.Dec}
	}
	return samples, nil
}

// MoonPhaseAngle returns the Moon's phase angle in degrees at t: the
// lunar apparent ecliptic longitude minus the solar one, normalized to
// [0,360). 0° is new, 180° is full.
func MoonPhaseAngle(p ephemeris.Provider, t time.Time) (float64, error) {
	sun, err := p.Observe(astro.Earth, astro.Sun, t)
	if err != nil {
		return 0, fmt.Errorf("resolving sun: %w", err)
	}
	moon, err := p.Observe(astro.Earth, astro.Moon, t)
	if err != nil {
		return 0, fmt.Errorf("resolving moon: %w", err)
	}

	deg := unit.PMod(moon.EclipticLon.Deg()-sun.EclipticLon.Deg(), 360)
	if deg >= 360 {
		// PMod of a tiny negative difference can round up to 360.
		deg -= 360
	}
	return deg, nil
}

// line formats one report line for a body.
func line(b astro.Body, s PositionSample) string {
	return fmt.Sprintf("%s: %s; %s", b.Symbol(), astro.FormatRA(s.RA), astro.FormatDec(s.Dec))
}

// ComposePlanets builds the planetary report: a header, a blank line,
// then one line per planet in catalog order. The Sun, Moon, and Earth
// are not planets here.
func ComposePlanets(samples map[astro.Body]PositionSample) (string, error) {
	s := []string{"Current planetary RA/Decs:\n"}
	for _, info := range astro.Catalog {
		switch info.Body {
		case astro.Sun, astro.Moon, astro.Earth:
			continue
		}
		sample, ok := samples[info.Body]
		if !ok {
			return "", fmt.Errorf("no position resolved for %v", info.Body)
		}
		s = append(s, line(info.Body, sample))
	}
	return strings.Join(s, "\n"), nil
}

// ComposeSunMoon builds the Sun & Moon report: a header, a blank line,
// the Sun and Moon lines in that order, then a blank line and the
// phase sentence. phaseDeg must already be normalized to [0,360).
func ComposeSunMoon(samples map[astro.Body]PositionSample, phaseDeg float64) (string, error) {
	bucket, err := phase.Classify(phaseDeg)
	if err != nil {
		return "", err
	}

	s := []string{"Current RA/Dec of the Sun & Moon:\n"}
	for _, b := range []astro.Body{astro.Sun, astro.Moon} {
		sample, ok := samples[b]
		if !ok {
			return "", fmt.Errorf("no position resolved for %v", b)
		}
		s = append(s, line(b, sample))
	}

	illum := int(math.Round(phase.Illumination(phaseDeg)))
	s = append(s, "", fmt.Sprintf("The moon is %s and is %d%% illuminated.", bucket.Phrase(), illum))
	return strings.Join(s, "\n"), nil
}
