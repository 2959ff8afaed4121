package astro

import (
	"time"

	"alchm-core/internal/domain"
)

// seasonBoundary marks the start of a sign's solar season (month, day).
type seasonBoundary struct {
	month time.Month
	day   int
	sign  domain.ZodiacSign
}

// seasonBoundaries lists tropical sign-season start dates in calendar order.
var seasonBoundaries = []seasonBoundary{
	{time.January, 20, domain.SignAquarius},
	{time.February, 19, domain.SignPisces},
	{time.March, 21, domain.SignAries},
	{time.April, 20, domain.SignTaurus},
	{time.May, 21, domain.SignGemini},
	{time.June, 21, domain.SignCancer},
	{time.July, 23, domain.SignLeo},
	{time.August, 23, domain.SignVirgo},
	{time.September, 23, domain.SignLibra},
	{time.October, 23, domain.SignScorpio},
	{time.November, 22, domain.SignSagittarius},
	{time.December, 22, domain.SignCapricorn},
}

// SeasonSign returns the zodiac sign whose solar season contains the date.
func SeasonSign(t time.Time) domain.ZodiacSign {
	month, day := t.Month(), t.Day()

	// Walk boundaries backwards; the season is the latest boundary not after t.
	for i := len(seasonBoundaries) - 1; i >= 0; i-- {
		b := seasonBoundaries[i]
		if month > b.month || (month == b.month && day >= b.day) {
			return b.sign
		}
	}
	// Before Jan 20: still Capricorn season.
	return domain.SignCapricorn
}

// SeasonalBoost lists ingredient IDs boosted during the sign's season,
// keyed by the season's element.
var seasonalBoosts = map[domain.Element][]string{
	domain.ElementFire:  {"chili", "pepper", "garlic"},
	domain.ElementEarth: {"grains", "potato", "squash"},
	domain.ElementAir:   {"microgreens", "sprouts"},
	domain.ElementWater: {"broth", "cucumber", "melon"},
}

// SeasonalBoostIDs returns the ingredient IDs boosted during t's season.
func SeasonalBoostIDs(t time.Time) []string {
	return seasonalBoosts[SeasonSign(t).Element()]
}
