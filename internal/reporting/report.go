// Package reporting renders computed charts and recommendation sets as
// Markdown and CSV.
package reporting

import "time"

// Report is the renderable view of one alchemize run.
type Report struct {
	// Metadata
	GeneratedAt time.Time
	ChartID     string
	ShareCode   string
	ObservedAt  time.Time
	SourceKind  string

	// Celestial context
	LunarPhase        string
	LunarIllumination float64
	HourRuler         string
	SeasonSign        string

	// Placements (display order: Sun first, then the traditional sequence)
	Placements []PlacementRow

	// Elemental balance, percentage scale
	Fire  float64
	Water float64
	Earth float64
	Air   float64

	// Alchemical properties, percentage scale
	Spirit    float64
	Essence   float64
	Matter    float64
	Substance float64

	// Thermodynamics, fraction scale
	Heat        float64
	Entropy     float64
	Reactivity  float64
	GregsEnergy float64
	Kalchm      float64
	Monica      float64 // NaN renders as "undefined"

	// Ranked recommendations
	Ingredients    []RecommendationRow
	Cuisines       []RecommendationRow
	CookingMethods []RecommendationRow
}

// PlacementRow is one body's position in the placements table.
type PlacementRow struct {
	Planet  string
	Sign    string
	Degree  float64 // [0, 30) within the sign
	Element string
	Dignity string
}

// RecommendationRow is one ranked candidate.
type RecommendationRow struct {
	Rank  int
	ID    string
	Name  string
	Score float64
}
