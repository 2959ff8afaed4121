// Package recommend ranks ingredients, cuisines, and cooking methods against
// a computed elemental profile using the static reference tables.
package recommend

import (
	"math"

	"alchm-core/internal/astro"
	"alchm-core/internal/domain"
)

// Scoring bonuses. Values follow the potency-score weighting of the
// transit engine: hour alignment is worth a quarter point, a seasonal
// signature match a tenth.
const (
	hourAlignmentBonus  = 0.25
	seasonalBoostBonus  = 0.10
	signatureMatchBonus = 0.05
)

// Similarity scores how closely a candidate's affinity vector matches the
// computed profile: 1 minus the mean absolute per-axis difference, both on
// the [0,1] fraction scale. Identical vectors score 1.0; maximally opposed
// vectors approach 0.5 (a single axis can differ by at most 1).
func Similarity(computed, candidate domain.ElementalFractions) float64 {
	diff := math.Abs(computed.Fire-candidate.Fire) +
		math.Abs(computed.Water-candidate.Water) +
		math.Abs(computed.Earth-candidate.Earth) +
		math.Abs(computed.Air-candidate.Air)
	return 1 - diff/4
}

// DominantElement returns the strongest axis of an affinity vector.
// Ties resolve in the fixed Fire/Water/Earth/Air order.
func DominantElement(a domain.ElementalAffinity) domain.Element {
	dominant := domain.ElementFire
	best := a.Fire
	for _, e := range []domain.Element{domain.ElementWater, domain.ElementEarth, domain.ElementAir} {
		if v := a.Get(e); v > best {
			best = v
			dominant = e
		}
	}
	return dominant
}

// hourElementBonus returns the bonus for a candidate whose dominant element
// matches the element of the current planetary hour ruler.
func hourElementBonus(hourRuler domain.Planet, affinity domain.ElementalAffinity) float64 {
	if hourRuler == "" {
		return 0
	}
	elem, ok := astro.PlanetaryElements[hourRuler]
	if !ok {
		return 0
	}
	if elem == DominantElement(affinity) {
		return hourAlignmentBonus
	}
	return 0
}
