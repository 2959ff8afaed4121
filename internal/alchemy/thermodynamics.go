package alchemy

import (
	"math"

	"alchm-core/internal/domain"
)

// Epsilon guards the thermodynamic denominators against division by zero.
// A denominator below this floor is clamped to it before squaring.
const Epsilon = 1e-9

// CalculateThermodynamics computes the thermodynamic constants from the four
// alchemical scalars and the four elemental values. Pure arithmetic,
// deterministic given identical inputs; the function is scale-agnostic but
// the pipeline feeds both arguments on the [0,1] fraction scale.
//
// Kalchm is 0 (documented sentinel, not an error) when any of
// Spirit/Essence/Matter/Substance is non-positive. Monica is NaN when
// Kalchm <= 0, Reactivity == 0, or ln(Kalchm) == 0; the singularity is
// intentional and callers must check math.IsNaN before display.
func CalculateThermodynamics(props domain.AlchemicalProperties, elems domain.ElementalFractions) domain.ThermodynamicResult {
	spirit, essence := props.Spirit, props.Essence
	matter, substance := props.Matter, props.Substance
	fire, water := elems.Fire, elems.Water
	earth, air := elems.Earth, elems.Air

	heat := (spirit*spirit + fire*fire) /
		sq(guard(substance+essence+matter+water+air+earth))

	entropy := (spirit*spirit + substance*substance + fire*fire + air*air) /
		sq(guard(essence+matter+earth+water))

	reactivity := (spirit*spirit + substance*substance + essence*essence +
		fire*fire + air*air + water*water) /
		sq(guard(matter+earth))

	gregsEnergy := heat - entropy*reactivity

	kalchm := calculateKalchm(spirit, essence, matter, substance)
	monica := calculateMonica(gregsEnergy, reactivity, kalchm)

	return domain.ThermodynamicResult{
		Heat:        heat,
		Entropy:     entropy,
		Reactivity:  reactivity,
		GregsEnergy: gregsEnergy,
		Kalchm:      kalchm,
		Monica:      monica,
	}
}

// calculateKalchm computes Spirit^Spirit * Essence^Essence /
// (Matter^Matter * Substance^Substance), defined only when all four scalars
// are strictly positive. Any non-positive scalar yields the 0 sentinel.
func calculateKalchm(spirit, essence, matter, substance float64) float64 {
	if spirit <= 0 || essence <= 0 || matter <= 0 || substance <= 0 {
		return 0
	}
	return math.Pow(spirit, spirit) * math.Pow(essence, essence) /
		(math.Pow(matter, matter) * math.Pow(substance, substance))
}

// calculateMonica computes -GregsEnergy / (Reactivity * ln(Kalchm)).
// NaN under the documented singularities.
func calculateMonica(gregsEnergy, reactivity, kalchm float64) float64 {
	if kalchm <= 0 || reactivity == 0 {
		return math.NaN()
	}
	lnK := math.Log(kalchm)
	if lnK == 0 {
		return math.NaN()
	}
	return -gregsEnergy / (reactivity * lnK)
}

func guard(denominator float64) float64 {
	return math.Max(denominator, Epsilon)
}

func sq(v float64) float64 { return v * v }
