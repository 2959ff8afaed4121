// Package astro converts raw ephemeris longitudes into zodiac placements and
// provides the fixed astrological lookup tables (dignities, planetary hours,
// lunar phases, zodiac seasons) used by the scoring pipeline.
package astro

import (
	"math"

	"alchm-core/internal/domain"
)

// Normalize converts an ecliptic longitude in degrees into a zodiac placement.
// Total over all real inputs: the longitude is reduced mod 360 first, so
// negative and out-of-range values are handled. No error conditions.
func Normalize(longitudeDegrees float64) domain.ZodiacPlacement {
	lon := math.Mod(longitudeDegrees, 360)
	if lon < 0 {
		lon += 360
	}

	signIndex := int(lon / 30)
	if signIndex > 11 {
		// Guards lon values that round to exactly 360 after reduction.
		signIndex = 11
	}

	sign := domain.ZodiacSigns[signIndex]
	return domain.ZodiacPlacement{
		Sign:         sign,
		DegreeInSign: lon - float64(signIndex)*30,
		Element:      sign.Element(),
	}
}

// NormalizePositions normalizes a full position set into placements keyed by
// body. Input order is irrelevant; the result map has one entry per body.
func NormalizePositions(positions []domain.PlanetaryPosition) map[domain.Planet]domain.ZodiacPlacement {
	placements := make(map[domain.Planet]domain.ZodiacPlacement, len(positions))
	for _, p := range positions {
		placements[p.Planet] = Normalize(p.LongitudeDegrees)
	}
	return placements
}
