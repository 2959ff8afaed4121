// Package elemental converts a set of zodiac placements into the four-way
// elemental decomposition used by the rest of the scoring pipeline.
package elemental

import (
	"errors"
	"math"

	"alchm-core/internal/domain"
)

// ErrEmptyPositions is returned when an aggregate is requested for an empty
// position map. An empty chart has no defined balance; callers render this
// as "insufficient data" rather than a crash.
var ErrEmptyPositions = errors.New("empty positions map: no bodies to aggregate")

// Planetary weights per chart importance. Sun and Moon dominate, the
// Ascendant counts when present, all remaining bodies weigh 1.
const (
	weightLuminary  = 3.0 // Sun, Moon
	weightAscendant = 2.0
	weightDefault   = 1.0
)

// Weight returns the aggregation weight of a body.
func Weight(p domain.Planet) float64 {
	switch p {
	case domain.PlanetSun, domain.PlanetMoon:
		return weightLuminary
	case domain.PlanetAscendant:
		return weightAscendant
	}
	return weightDefault
}

// Fractions computes the weighted elemental decomposition on the [0,1] scale.
// The four fractions sum to 1.0 (within float error). This is the scale the
// thermodynamics engine and recommendation scorer consume.
func Fractions(placements map[domain.Planet]domain.ZodiacPlacement) (domain.ElementalFractions, error) {
	if len(placements) == 0 {
		return domain.ElementalFractions{}, ErrEmptyPositions
	}

	totals := make(map[domain.Element]float64, 4)
	totalWeight := 0.0
	for planet, placement := range placements {
		w := Weight(planet)
		totals[placement.Element] += w
		totalWeight += w
	}

	return domain.ElementalFractions{
		Fire:  totals[domain.ElementFire] / totalWeight,
		Water: totals[domain.ElementWater] / totalWeight,
		Earth: totals[domain.ElementEarth] / totalWeight,
		Air:   totals[domain.ElementAir] / totalWeight,
	}, nil
}

// Aggregate computes the presentation-level balance: whole-number percentages
// summing to exactly 100. Each component is rounded half-up independently,
// then the largest bucket absorbs the rounding drift so the exact-100
// invariant holds for every input.
func Aggregate(placements map[domain.Planet]domain.ZodiacPlacement) (domain.ElementalBalance, error) {
	fracs, err := Fractions(placements)
	if err != nil {
		return domain.ElementalBalance{}, err
	}
	return Percentages(fracs), nil
}

// Percentages converts fractions to the exact-100 percentage form.
func Percentages(fracs domain.ElementalFractions) domain.ElementalBalance {
	rounded := [4]float64{
		math.Floor(fracs.Fire*100 + 0.5),
		math.Floor(fracs.Water*100 + 0.5),
		math.Floor(fracs.Earth*100 + 0.5),
		math.Floor(fracs.Air*100 + 0.5),
	}

	sum := rounded[0] + rounded[1] + rounded[2] + rounded[3]
	if drift := 100 - sum; drift != 0 {
		largest := 0
		for i := 1; i < 4; i++ {
			if rounded[i] > rounded[largest] {
				largest = i
			}
		}
		rounded[largest] += drift
	}

	return domain.ElementalBalance{
		Fire:  rounded[0],
		Water: rounded[1],
		Earth: rounded[2],
		Air:   rounded[3],
	}
}
