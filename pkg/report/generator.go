package report

import (
	"time"

	"github.com/chrissnell/radecbot/pkg/ephemeris"
)

// Generator binds an ephemeris provider to the report composers. It is
// stateless; each call resolves positions fresh for its instant.
type Generator struct {
	provider ephemeris.Provider
}

// NewGenerator creates a generator backed by the given provider.
func NewGenerator(p ephemeris.Provider) *Generator {
	return &Generator{provider: p}
}

// PlanetaryReport composes the seven-planet RA/Dec report for t.
func (g *Generator) PlanetaryReport(t time.Time) (string, error) {
	samples, err := ResolveAll(g.provider, t)
	if err != nil {
		return "", err
	}
	return ComposePlanets(samples)
}

// SunMoonReport composes the Sun & Moon RA/Dec report, including the
// lunar phase sentence, for t.
func (g *Generator) SunMoonReport(t time.Time) (string, error) {
	samples, err := ResolveAll(g.provider, t)
	if err != nil {
		return "", err
	}
	phaseDeg, err := MoonPhaseAngle(g.provider, t)
	if err != nil {
		return "", err
	}
	return ComposeSunMoon(samples, phaseDeg)
}
