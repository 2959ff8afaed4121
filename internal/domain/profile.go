package domain

// ElementalAffinity is a reference entity's fixed four-element vector on the
// [0,1] scale. Reference tables are loaded once at startup and never mutated.
type ElementalAffinity struct {
	Fire  float64
	Water float64
	Earth float64
	Air   float64
}

// Get returns the affinity for the given element.
func (a ElementalAffinity) Get(e Element) float64 {
	switch e {
	case ElementFire:
		return a.Fire
	case ElementWater:
		return a.Water
	case ElementEarth:
		return a.Earth
	case ElementAir:
		return a.Air
	}
	return 0
}

// Fractions converts the affinity to the shared fraction type.
func (a ElementalAffinity) Fractions() ElementalFractions {
	return ElementalFractions{Fire: a.Fire, Water: a.Water, Earth: a.Earth, Air: a.Air}
}

// IngredientProfile describes one ingredient's culinary reference data.
// Corresponds to the ingredients table in PostgreSQL.
type IngredientProfile struct {
	IngredientID string   // PRIMARY KEY, lowercase slug
	Name         string   // display name
	Category     string   // e.g. "vegetable", "spice", "grain"
	Affinity     ElementalAffinity
	RulingPlanet Planet   // primary planetary influence
	Seasons      []string // zodiac signs during which the ingredient peaks
	LunarTag     string   // lunar category: "Root/Grounding", "High-Water/Cooling", "Detoxifying", or ""
}

// CuisineProfile describes one cuisine's flavor reference data.
// Corresponds to the cuisines table in PostgreSQL.
type CuisineProfile struct {
	CuisineID  string // PRIMARY KEY, lowercase slug
	Name       string
	Affinity   ElementalAffinity
	Signatures []string // signature ingredient IDs
}

// CookingMethodProfile describes one cooking method's reference data.
// Corresponds to the cooking_methods table in PostgreSQL.
type CookingMethodProfile struct {
	MethodID     string // PRIMARY KEY, lowercase slug
	Name         string
	Affinity     ElementalAffinity
	RulingPlanet Planet
}
