package ephemeris

import (
	"context"
	"math"
	"time"

	"alchm-core/internal/domain"
)

// j2000 is the standard astronomical epoch, 2000-01-01 12:00 TT (approximated
// here as UTC; the difference is irrelevant at mean-motion accuracy).
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// meanElements holds the J2000 mean longitude and mean daily motion of a body.
type meanElements struct {
	planet      domain.Planet
	epochDeg    float64 // mean ecliptic longitude at J2000
	dailyMotion float64 // degrees per day
}

// meanTable lists the ten classical bodies. The Ascendant is location
// dependent and cannot be derived from time alone, so it is omitted; the
// aggregation layer treats a missing Ascendant as weight redistribution.
var meanTable = []meanElements{
	{domain.PlanetSun, 280.460, 0.9856474},
	{domain.PlanetMoon, 218.316, 13.176396},
	{domain.PlanetMercury, 252.251, 4.092317},
	{domain.PlanetVenus, 181.980, 1.602130},
	{domain.PlanetMars, 355.453, 0.524033},
	{domain.PlanetJupiter, 34.351, 0.083056},
	{domain.PlanetSaturn, 50.077, 0.033371},
	{domain.PlanetUranus, 314.055, 0.011698},
	{domain.PlanetNeptune, 304.349, 0.006020},
	{domain.PlanetPluto, 238.958, 0.003968},
}

// MeanMotionSource is an offline PositionSource that linearly extrapolates
// each body's mean longitude from the J2000 epoch. Accuracy is a few degrees
// for the inner bodies and worse for the Moon, which is enough for elemental
// work when no ephemeris service is reachable. It never reports retrograde
// motion: mean longitudes only ever increase.
type MeanMotionSource struct{}

// NewMeanMotionSource creates an offline mean-motion position source.
func NewMeanMotionSource() *MeanMotionSource {
	return &MeanMotionSource{}
}

// Compile-time interface check.
var _ PositionSource = (*MeanMotionSource)(nil)

// PositionsAt computes mean longitudes for all classical bodies at the given
// time. It never fails; the error return satisfies PositionSource.
func (s *MeanMotionSource) PositionsAt(_ context.Context, at time.Time) ([]domain.PlanetaryPosition, error) {
	days := at.Sub(j2000).Hours() / 24.0

	positions := make([]domain.PlanetaryPosition, 0, len(meanTable))
	for _, el := range meanTable {
		lon := math.Mod(el.epochDeg+el.dailyMotion*days, 360.0)
		if lon < 0 {
			lon += 360.0
		}
		positions = append(positions, domain.PlanetaryPosition{
			Planet:           el.planet,
			LongitudeDegrees: lon,
		})
	}
	return positions, nil
}
