// Package astro defines the fixed catalog of observable bodies and the
// sexagesimal formatting applied to their coordinates in reports.
package astro

// Body identifies one of the ten bodies the bot tracks.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

// BodyInfo is one catalog record: a body, the lookup key understood by
// the ephemeris provider, and the glyph used in report lines.
type BodyInfo struct {
	Body   Body
	Key    string
	Symbol string
}

// Catalog is the fixed, ordered set of observable bodies. Iteration
// order is report order. Earth is the observation origin; it carries no
// symbol and never appears in a report.
var Catalog = []BodyInfo{
	{Sun, "sun", "☉"},
	{Moon, "moon", "☾"},
	{Mercury, "mercury", "☿"},
	{Venus, "venus", "♀"},
	{Earth, "earth", ""},
	{Mars, "mars", "♂"},
	{Jupiter, "jupiter", "♃"},
	{Saturn, "saturn", "♄"},
	{Uranus, "uranus", "⛢"},
	{Neptune, "neptune", "♆"},
}

// Key returns the ephemeris lookup key for b, or "" if b is not in the
// catalog.
func (b Body) Key() string {
	for _, info := range Catalog {
		if info.Body == b {
			return info.Key
		}
	}
	return ""
}

// Symbol returns the display glyph for b. Earth and unknown bodies
// return "".
func (b Body) Symbol() string {
	for _, info := range Catalog {
		if info.Body == b {
			return info.Symbol
		}
	}
	return ""
}

// String returns the lookup key as the body's name.
func (b Body) String() string {
	if k := b.Key(); k != "" {
		return k
	}
	return "unknown"
}
