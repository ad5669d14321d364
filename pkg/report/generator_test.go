package report

import (
	"strings"
	"testing"
	"time"

	"github.com/chrissnell/radecbot/pkg/astro"
	"github.com/chrissnell/radecbot/pkg/ephemeris"
	"github.com/soniakeys/unit"
)

func TestGeneratorReports(t *testing.T) {
	p := uniformProvider()

	// Full moon geometry: lunar longitude 180° past solar.
	sun := p.positions[astro.Sun]
	sun.EclipticLon = unit.AngleFromDeg(40)
	p.positions[astro.Sun] = sun
	moon := p.positions[astro.Moon]
	moon.EclipticLon = unit.AngleFromDeg(220)
	p.positions[astro.Moon] = moon

	g := NewGenerator(p)
	now := time.Now()

	planets, err := g.PlanetaryReport(now)
	if err != nil {
		t.Fatalf("PlanetaryReport returned error: %v", err)
	}
	if !strings.HasPrefix(planets, "Current planetary RA/Decs:\n\n☿: ") {
		t.Errorf("unexpected planetary report prefix: %q", planets)
	}
	if len(strings.Split(planets, "\n")) != 9 {
		t.Errorf("planetary report has %d lines, expected 9", len(strings.Split(planets, "\n")))
	}

	sunMoon, err := g.SunMoonReport(now)
	if err != nil {
		t.Fatalf("SunMoonReport returned error: %v", err)
	}
	if !strings.HasSuffix(sunMoon, "The moon is full and is 100% illuminated.") {
		t.Errorf("unexpected sun/moon report ending: %q", sunMoon)
	}
}

func TestGeneratorPropagatesProviderFailure(t *testing.T) {
	p := uniformProvider()
	p.failing = map[astro.Body]bool{astro.Neptune: true}

	g := NewGenerator(p)
	if _, err := g.PlanetaryReport(time.Now()); err == nil {
		t.Error("PlanetaryReport succeeded with failing provider, expected error")
	}
	if _, err := g.SunMoonReport(time.Now()); err == nil {
		t.Error("SunMoonReport succeeded with failing provider, expected error")
	}
}

var _ ephemeris.Provider = (*fakeProvider)(nil)
