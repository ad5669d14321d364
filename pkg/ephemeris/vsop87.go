package ephemeris

import (
	"fmt"
	"sync"
	"time"

	"github.com/chrissnell/radecbot/pkg/astro"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/elliptic"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/solar"
)

// planetIndexes maps catalog ephemeris keys to VSOP87 planet numbers.
var planetIndexes = map[string]int{
	"mercury": pp.Mercury,
	"venus":   pp.Venus,
	"earth":   pp.Earth,
	"mars":    pp.Mars,
	"jupiter": pp.Jupiter,
	"saturn":  pp.Saturn,
	"uranus":  pp.Uranus,
	"neptune": pp.Neptune,
}

// VSOP87Provider computes apparent geocentric positions from the
// VSOP87 planetary theory and the Meeus solar and lunar series.
// Planet observations require the VSOP87B data files in dataDir (see
// Fetcher); the Sun and Moon are computed from closed-form series and
// need no data files.
type VSOP87Provider struct {
	dataDir string

	mu      sync.Mutex
	planets map[int]*pp.V87Planet
}

// NewVSOP87Provider returns a provider reading VSOP87B data files from
// dataDir. Data files are loaded lazily, on the first observation of
// each planet.
func NewVSOP87Provider(dataDir string) *VSOP87Provider {
	return &VSOP87Provider{
		dataDir: dataDir,
		planets: make(map[int]*pp.V87Planet),
	}
}

// Observe implements Provider.
func (v *VSOP87Provider) Observe(observer, target astro.Body, t time.Time) (*ApparentPosition, error) {
	if observer != astro.Earth {
		return nil, fmt.Errorf("unsupported observer %v: positions are geocentric only", observer)
	}

	jde := julian.TimeToJD(t.UTC())

	switch target {
	case astro.Sun:
		return observeSun(jde), nil
	case astro.Moon:
		return observeMoon(jde), nil
	case astro.Earth:
		return nil, fmt.Errorf("cannot observe earth from earth")
	}

	idx, ok := planetIndexes[target.Key()]
	if !ok {
		return nil, fmt.Errorf("no ephemeris for body %v", target)
	}
	return v.observePlanet(idx, jde)
}

func observeSun(jde float64) *ApparentPosition {
	ra, dec := solar.ApparentEquatorial(jde)
	lon := solar.ApparentLongitude(base.J2000Century(jde))
	return &ApparentPosition{RA: ra, Dec: dec, EclipticLon: lon.Mod1()}
}

func observeMoon(jde float64) *ApparentPosition {
	λ, β, _ := moonposition.Position(jde)
	Δψ, Δε := nutation.Nutation(jde)
	λ = (λ + Δψ).Mod1()
	ε := nutation.MeanObliquity(jde) + Δε
	sε, cε := ε.Sincos()
	ra, dec := coord.EclToEq(λ, β, sε, cε)
	return &ApparentPosition{RA: ra, Dec: dec, EclipticLon: λ}
}

func (v *VSOP87Provider) observePlanet(idx int, jde float64) (*ApparentPosition, error) {
	earth, err := v.planet(pp.Earth)
	if err != nil {
		return nil, err
	}
	p, err := v.planet(idx)
	if err != nil {
		return nil, err
	}

	ra, dec := elliptic.Position(p, earth, jde)

	// The ecliptic longitude view is derived from the same equatorial
	// coordinates the caller sees, so the two stay consistent.
	_, Δε := nutation.Nutation(jde)
	ε := nutation.MeanObliquity(jde) + Δε
	sε, cε := ε.Sincos()
	λ, _ := coord.EqToEcl(ra, dec, sε, cε)

	return &ApparentPosition{RA: ra, Dec: dec, EclipticLon: λ.Mod1()}, nil
}

// planet returns the cached VSOP87 series for a planet, loading its
// data file on first use.
func (v *VSOP87Provider) planet(idx int) (*pp.V87Planet, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if p, ok := v.planets[idx]; ok {
		return p, nil
	}
	p, err := pp.LoadPlanetPath(idx, v.dataDir)
	if err != nil {
		return nil, fmt.Errorf("loading VSOP87 data from %s: %w", v.dataDir, err)
	}
	v.planets[idx] = p
	return p, nil
}
