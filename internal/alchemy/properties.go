// Package alchemy derives the four alchemical scalars and the closed-form
// thermodynamic constants (Heat, Entropy, Reactivity, Greg's Energy, Kalchm,
// Monica) from an elemental decomposition.
package alchemy

import (
	"math"

	"alchm-core/internal/domain"
)

// CalculateProperties maps an elemental balance into the four alchemical
// scalars via fixed pairwise averages. Total function, no failure modes.
// On the percentage pipeline each output lies in [0,100].
func CalculateProperties(balance domain.ElementalBalance) domain.AlchemicalProperties {
	return domain.AlchemicalProperties{
		Spirit:    roundHalf((balance.Fire + balance.Air) / 2),
		Essence:   roundHalf((balance.Fire + balance.Water) / 2),
		Matter:    roundHalf((balance.Earth + balance.Water) / 2),
		Substance: roundHalf((balance.Earth + balance.Air) / 2),
	}
}

// FractionProperties computes the same pairwise averages on the [0,1]
// fraction scale, unrounded. This is the form fed to the thermodynamics
// engine so the whole pipeline stays on one scale.
func FractionProperties(fracs domain.ElementalFractions) domain.AlchemicalProperties {
	return domain.AlchemicalProperties{
		Spirit:    (fracs.Fire + fracs.Air) / 2,
		Essence:   (fracs.Fire + fracs.Water) / 2,
		Matter:    (fracs.Earth + fracs.Water) / 2,
		Substance: (fracs.Earth + fracs.Air) / 2,
	}
}

// roundHalf rounds half away from zero, matching the aggregator's policy.
func roundHalf(v float64) float64 {
	return math.Floor(v + 0.5)
}
