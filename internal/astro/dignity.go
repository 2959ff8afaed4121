package astro

import "alchm-core/internal/domain"

// Dignity classifies a planet's strength in a sign.
type Dignity string

const (
	DignityDomicile  Dignity = "Domicile"
	DignityExalted   Dignity = "Exalted"
	DignityNeutral   Dignity = "Neutral"
	DignityDetriment Dignity = "Detriment"
	DignityFall      Dignity = "Fall"
)

type dignityKey struct {
	planet domain.Planet
	sign   domain.ZodiacSign
}

// dignities is a sparse table of traditional essential dignities.
// Absent keys are Neutral; LookupDignity applies the default so callers
// never see a missing-key zero value.
var dignities = map[dignityKey]Dignity{
	// Domiciles
	{domain.PlanetSun, domain.SignLeo}:         DignityDomicile,
	{domain.PlanetMoon, domain.SignCancer}:     DignityDomicile,
	{domain.PlanetMercury, domain.SignGemini}:  DignityDomicile,
	{domain.PlanetMercury, domain.SignVirgo}:   DignityDomicile,
	{domain.PlanetVenus, domain.SignTaurus}:    DignityDomicile,
	{domain.PlanetVenus, domain.SignLibra}:     DignityDomicile,
	{domain.PlanetMars, domain.SignAries}:      DignityDomicile,
	{domain.PlanetMars, domain.SignScorpio}:    DignityDomicile,
	{domain.PlanetJupiter, domain.SignSagittarius}: DignityDomicile,
	{domain.PlanetJupiter, domain.SignPisces}:  DignityDomicile,
	{domain.PlanetSaturn, domain.SignCapricorn}: DignityDomicile,
	{domain.PlanetSaturn, domain.SignAquarius}: DignityDomicile,

	// Exaltations
	{domain.PlanetSun, domain.SignAries}:       DignityExalted,
	{domain.PlanetMoon, domain.SignTaurus}:     DignityExalted,
	{domain.PlanetMercury, domain.SignAquarius}: DignityExalted,
	{domain.PlanetVenus, domain.SignPisces}:    DignityExalted,
	{domain.PlanetMars, domain.SignCapricorn}:  DignityExalted,
	{domain.PlanetJupiter, domain.SignCancer}:  DignityExalted,
	{domain.PlanetSaturn, domain.SignLibra}:    DignityExalted,

	// Detriments
	{domain.PlanetSun, domain.SignAquarius}:    DignityDetriment,
	{domain.PlanetMoon, domain.SignCapricorn}:  DignityDetriment,
	{domain.PlanetMercury, domain.SignSagittarius}: DignityDetriment,
	{domain.PlanetVenus, domain.SignAries}:     DignityDetriment,
	{domain.PlanetVenus, domain.SignScorpio}:   DignityDetriment,
	{domain.PlanetMars, domain.SignTaurus}:     DignityDetriment,
	{domain.PlanetMars, domain.SignLibra}:      DignityDetriment,
	{domain.PlanetJupiter, domain.SignGemini}:  DignityDetriment,
	{domain.PlanetJupiter, domain.SignVirgo}:   DignityDetriment,
	{domain.PlanetSaturn, domain.SignCancer}:   DignityDetriment,
	{domain.PlanetSaturn, domain.SignLeo}:      DignityDetriment,

	// Falls
	{domain.PlanetSun, domain.SignLibra}:       DignityFall,
	{domain.PlanetMoon, domain.SignScorpio}:    DignityFall,
	{domain.PlanetMercury, domain.SignLeo}:     DignityFall,
	{domain.PlanetVenus, domain.SignVirgo}:     DignityFall,
	{domain.PlanetMars, domain.SignCancer}:     DignityFall,
	{domain.PlanetJupiter, domain.SignCapricorn}: DignityFall,
	{domain.PlanetSaturn, domain.SignAries}:    DignityFall,
}

// LookupDignity returns the essential dignity of planet in sign.
// Bodies without a table entry (outer planets, the Ascendant, unlisted
// combinations) are Neutral.
func LookupDignity(planet domain.Planet, sign domain.ZodiacSign) Dignity {
	if d, ok := dignities[dignityKey{planet, sign}]; ok {
		return d
	}
	return DignityNeutral
}
