package domain

// Planet identifies a celestial body used in chart calculations.
// The ten classical and modern bodies plus the Ascendant point.
type Planet string

const (
	PlanetSun       Planet = "Sun"
	PlanetMoon      Planet = "Moon"
	PlanetMercury   Planet = "Mercury"
	PlanetVenus     Planet = "Venus"
	PlanetMars      Planet = "Mars"
	PlanetJupiter   Planet = "Jupiter"
	PlanetSaturn    Planet = "Saturn"
	PlanetUranus    Planet = "Uranus"
	PlanetNeptune   Planet = "Neptune"
	PlanetPluto     Planet = "Pluto"
	PlanetAscendant Planet = "Ascendant"
)

// Planets lists the ten scoring bodies in traditional order.
// The Ascendant is a chart point, not a body, and is listed separately.
var Planets = []Planet{
	PlanetSun, PlanetMoon, PlanetMercury, PlanetVenus, PlanetMars,
	PlanetJupiter, PlanetSaturn, PlanetUranus, PlanetNeptune, PlanetPluto,
}

// IsValid reports whether p is a known body or the Ascendant.
func (p Planet) IsValid() bool {
	switch p {
	case PlanetSun, PlanetMoon, PlanetMercury, PlanetVenus, PlanetMars,
		PlanetJupiter, PlanetSaturn, PlanetUranus, PlanetNeptune, PlanetPluto,
		PlanetAscendant:
		return true
	}
	return false
}

// PlanetaryPosition is a raw ephemeris observation for a single body.
// Ephemeral: created per calculation request, never persisted.
type PlanetaryPosition struct {
	Planet           Planet  // body identifier
	LongitudeDegrees float64 // ecliptic longitude, any real value (reduced mod 360)
	IsRetrograde     bool    // negative longitude speed at observation time
}
