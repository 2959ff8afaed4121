package astro

import (
	"time"

	"alchm-core/internal/domain"
)

// ChaldeanOrder lists the seven classical planets in descending apparent
// speed, the sequence that generates both day and hour rulers.
var ChaldeanOrder = []domain.Planet{
	domain.PlanetSaturn, domain.PlanetJupiter, domain.PlanetMars,
	domain.PlanetSun, domain.PlanetVenus, domain.PlanetMercury, domain.PlanetMoon,
}

// PlanetaryElements maps the seven classical planets to the element they
// lend to hour-aligned scoring bonuses.
var PlanetaryElements = map[domain.Planet]domain.Element{
	domain.PlanetSun:     domain.ElementFire,
	domain.PlanetVenus:   domain.ElementEarth,
	domain.PlanetMercury: domain.ElementAir,
	domain.PlanetMoon:    domain.ElementWater,
	domain.PlanetSaturn:  domain.ElementEarth,
	domain.PlanetJupiter: domain.ElementFire,
	domain.PlanetMars:    domain.ElementFire,
}

// dayRulers indexes the ruler of each weekday, Sunday = 0.
var dayRulers = []domain.Planet{
	domain.PlanetSun,     // Sunday
	domain.PlanetMoon,    // Monday
	domain.PlanetMars,    // Tuesday
	domain.PlanetMercury, // Wednesday
	domain.PlanetJupiter, // Thursday
	domain.PlanetVenus,   // Friday
	domain.PlanetSaturn,  // Saturday
}

// DayRuler returns the planetary ruler of t's weekday.
func DayRuler(t time.Time) domain.Planet {
	return dayRulers[int(t.Weekday())]
}

// HourRuler returns the planetary hour ruler for the given time using equal
// 1/12 divisions of day and night anchored at 06:00 local time. The full
// sunrise-table variant needs a location; the equal-hour approximation keeps
// the function pure and deterministic for scoring purposes.
//
// The first hour of the day belongs to the day ruler; subsequent hours follow
// the Chaldean order. Night hours continue the sequence from index 12.
func HourRuler(t time.Time) domain.Planet {
	dayRuler := DayRuler(t)
	dayRulerIdx := 0
	for i, p := range ChaldeanOrder {
		if p == dayRuler {
			dayRulerIdx = i
			break
		}
	}

	// Hours since 06:00; times before 06:00 belong to the previous day's cycle.
	hourIndex := t.Hour() - 6
	if hourIndex < 0 {
		prev := t.AddDate(0, 0, -1)
		prevRuler := DayRuler(prev)
		for i, p := range ChaldeanOrder {
			if p == prevRuler {
				dayRulerIdx = i
				break
			}
		}
		hourIndex = t.Hour() + 18
	}

	return ChaldeanOrder[(dayRulerIdx+hourIndex)%7]
}
