package domain

// ElementalBalance is the presentation-level four-way decomposition of a set
// of planetary positions. Each component is a whole-number percentage stored
// as float64; the four components sum to exactly 100 (the aggregator adjusts
// the largest bucket to absorb independent-rounding drift).
type ElementalBalance struct {
	Fire  float64
	Water float64
	Earth float64
	Air   float64
}

// Get returns the component for the given element.
func (b ElementalBalance) Get(e Element) float64 {
	switch e {
	case ElementFire:
		return b.Fire
	case ElementWater:
		return b.Water
	case ElementEarth:
		return b.Earth
	case ElementAir:
		return b.Air
	}
	return 0
}

// Total returns the sum of all four components.
func (b ElementalBalance) Total() float64 {
	return b.Fire + b.Water + b.Earth + b.Air
}

// ElementalFractions carries the same decomposition on the [0,1] scale,
// summing to 1.0. This is the scale fed to the thermodynamics engine and the
// recommendation scorer; percentages exist only for display.
type ElementalFractions struct {
	Fire  float64
	Water float64
	Earth float64
	Air   float64
}

// Get returns the fraction for the given element.
func (f ElementalFractions) Get(e Element) float64 {
	switch e {
	case ElementFire:
		return f.Fire
	case ElementWater:
		return f.Water
	case ElementEarth:
		return f.Earth
	case ElementAir:
		return f.Air
	}
	return 0
}

// Sum returns the total of all four fractions.
func (f ElementalFractions) Sum() float64 {
	return f.Fire + f.Water + f.Earth + f.Air
}

// AlchemicalProperties are the four derived scalars computed from an
// elemental decomposition via fixed pairwise averages. On the percentage
// pipeline they lie in [0,100]; the thermodynamics engine accepts them on
// whatever scale its elemental inputs use.
type AlchemicalProperties struct {
	Spirit    float64
	Essence   float64
	Matter    float64
	Substance float64
}

// ThermodynamicResult holds the closed-form thermodynamic constants.
// Kalchm is exactly 0 when any alchemical scalar is non-positive (documented
// sentinel). Monica is NaN under its mathematical singularities; callers must
// check math.IsNaN before display. Neither condition is an error.
type ThermodynamicResult struct {
	Heat        float64
	Entropy     float64
	Reactivity  float64
	GregsEnergy float64
	Kalchm      float64
	Monica      float64
}
