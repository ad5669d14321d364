// Package ephemeris supplies apparent positions of solar system bodies
// as observed from Earth.
package ephemeris

import (
	"time"

	"github.com/chrissnell/radecbot/pkg/astro"
	"github.com/soniakeys/unit"
)

// ApparentPosition is a body's observed position at one instant, with
// light-time and related corrections applied by the provider.
type ApparentPosition struct {
	RA          unit.RA
	Dec         unit.Angle
	EclipticLon unit.Angle // apparent ecliptic longitude of date, [0,360)
}

// Provider is the narrow synchronous interface the report layer calls.
// Implementations hold no per-caller state; concurrent Observe calls
// with different instants are safe.
type Provider interface {
	// Observe returns the apparent position of target as seen from
	// observer at t. Only Earth is supported as an observer.
	Observe(observer, target astro.Body, t time.Time) (*ApparentPosition, error)
}
