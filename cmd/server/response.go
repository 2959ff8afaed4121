package main

import (
	"math"
	"time"

	"alchm-core/internal/domain"
	"alchm-core/internal/metrics"
	"alchm-core/internal/pipeline"
)

// ChartResponse is the JSON response for /v1/alchemize.
type ChartResponse struct {
	ChartID     string                 `json:"chart_id"`
	ShareCode   string                 `json:"share_code"`
	ObservedAt  string                 `json:"observed_at"`
	Source      string                 `json:"source"`
	PlanetCount int                    `json:"planet_count"`
	Placements  []PlacementResponse    `json:"placements"`
	Balance     BalanceResponse        `json:"balance"`
	Properties  PropertiesResponse     `json:"properties"`
	Thermo      ThermoResponse         `json:"thermodynamics"`
	Context     ContextResponse        `json:"context"`
	Recommended RecommendationResponse `json:"recommendations"`
}

// PlacementResponse is one body's normalized position.
type PlacementResponse struct {
	Planet  string  `json:"planet"`
	Sign    string  `json:"sign"`
	Degree  float64 `json:"degree"`
	Element string  `json:"element"`
}

// BalanceResponse is the percentage-scale elemental balance.
type BalanceResponse struct {
	Fire  float64 `json:"fire"`
	Water float64 `json:"water"`
	Earth float64 `json:"earth"`
	Air   float64 `json:"air"`
}

// PropertiesResponse holds the four alchemical scalars.
type PropertiesResponse struct {
	Spirit    float64 `json:"spirit"`
	Essence   float64 `json:"essence"`
	Matter    float64 `json:"matter"`
	Substance float64 `json:"substance"`
}

// ThermoResponse holds the thermodynamic constants. Monica is null when
// undefined; NaN does not survive JSON encoding.
type ThermoResponse struct {
	Heat        float64  `json:"heat"`
	Entropy     float64  `json:"entropy"`
	Reactivity  float64  `json:"reactivity"`
	GregsEnergy float64  `json:"gregs_energy"`
	Kalchm      float64  `json:"kalchm"`
	Monica      *float64 `json:"monica"`
}

// ContextResponse holds the celestial modifiers in effect for this chart.
type ContextResponse struct {
	LunarPhase   string  `json:"lunar_phase"`
	Illumination float64 `json:"illumination"`
	HourRuler    string  `json:"hour_ruler"`
	SeasonSign   string  `json:"season_sign"`
}

// RecommendationResponse holds the three ranked lists.
type RecommendationResponse struct {
	Ingredients    []CandidateResponse `json:"ingredients"`
	Cuisines       []CandidateResponse `json:"cuisines"`
	CookingMethods []CandidateResponse `json:"cooking_methods"`
}

// CandidateResponse is one ranked entry.
type CandidateResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func newChartResponse(result *pipeline.Result) ChartResponse {
	var monica *float64
	if !math.IsNaN(result.Chart.Thermo.Monica) {
		monica = &result.Chart.Thermo.Monica
	}

	placements := make([]PlacementResponse, 0, len(result.Placements))
	displayOrder := append(append([]domain.Planet{}, domain.Planets...), domain.PlanetAscendant)
	for _, planet := range displayOrder {
		p, ok := result.Placements[planet]
		if !ok {
			continue
		}
		placements = append(placements, PlacementResponse{
			Planet:  string(planet),
			Sign:    string(p.Sign),
			Degree:  p.DegreeInSign,
			Element: string(p.Element),
		})
	}

	return ChartResponse{
		ChartID:     result.Chart.ChartID,
		ShareCode:   result.Chart.ShareCode,
		ObservedAt:  time.UnixMilli(result.Chart.ObservedAt).UTC().Format(time.RFC3339),
		Source:      result.Chart.SourceKind,
		PlanetCount: result.Chart.PlanetCount,
		Placements:  placements,
		Balance: BalanceResponse{
			Fire:  result.Chart.Balance.Fire,
			Water: result.Chart.Balance.Water,
			Earth: result.Chart.Balance.Earth,
			Air:   result.Chart.Balance.Air,
		},
		Properties: PropertiesResponse{
			Spirit:    result.Chart.Properties.Spirit,
			Essence:   result.Chart.Properties.Essence,
			Matter:    result.Chart.Properties.Matter,
			Substance: result.Chart.Properties.Substance,
		},
		Thermo: ThermoResponse{
			Heat:        result.Chart.Thermo.Heat,
			Entropy:     result.Chart.Thermo.Entropy,
			Reactivity:  result.Chart.Thermo.Reactivity,
			GregsEnergy: result.Chart.Thermo.GregsEnergy,
			Kalchm:      result.Chart.Thermo.Kalchm,
			Monica:      monica,
		},
		Context: ContextResponse{
			LunarPhase:   string(result.Lunar.Phase),
			Illumination: result.Lunar.Illumination,
			HourRuler:    string(result.HourRuler),
			SeasonSign:   string(result.SeasonSign),
		},
		Recommended: newRecommendationResponse(result.Recommendations),
	}
}

func newRecommendationResponse(recs domain.RecommendationSet) RecommendationResponse {
	return RecommendationResponse{
		Ingredients:    candidateResponses(recs.Ingredients),
		Cuisines:       candidateResponses(recs.Cuisines),
		CookingMethods: candidateResponses(recs.CookingMethods),
	}
}

// TransitSummaryResponse is the JSON response for /v1/transit-summary.
type TransitSummaryResponse struct {
	StartMs  int64                     `json:"start_ms"`
	EndMs    int64                     `json:"end_ms"`
	Samples  int                       `json:"samples"`
	Series   map[string]SeriesResponse `json:"series"`
	SunSigns map[string]int            `json:"sun_signs"`
}

// SeriesResponse is one metric's descriptive statistics.
type SeriesResponse struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P10    float64 `json:"p10"`
	P90    float64 `json:"p90"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Stddev float64 `json:"stddev"`
}

func newTransitSummaryResponse(summary *metrics.TransitSummary) TransitSummaryResponse {
	sunSigns := make(map[string]int, len(summary.SunSigns))
	for sign, count := range summary.SunSigns {
		sunSigns[string(sign)] = count
	}

	return TransitSummaryResponse{
		StartMs: summary.StartMs,
		EndMs:   summary.EndMs,
		Samples: summary.Samples,
		Series: map[string]SeriesResponse{
			"fire":         seriesResponse(summary.Fire),
			"water":        seriesResponse(summary.Water),
			"earth":        seriesResponse(summary.Earth),
			"air":          seriesResponse(summary.Air),
			"heat":         seriesResponse(summary.Heat),
			"entropy":      seriesResponse(summary.Entropy),
			"reactivity":   seriesResponse(summary.Reactivity),
			"gregs_energy": seriesResponse(summary.GregsEnergy),
			"kalchm":       seriesResponse(summary.Kalchm),
			"monica":       seriesResponse(summary.Monica),
		},
		SunSigns: sunSigns,
	}
}

func seriesResponse(s metrics.SeriesSummary) SeriesResponse {
	return SeriesResponse{
		Count:  s.Count,
		Mean:   s.Mean,
		Median: s.Median,
		P10:    s.P10,
		P90:    s.P90,
		Min:    s.Min,
		Max:    s.Max,
		Stddev: s.Stddev,
	}
}

func candidateResponses(candidates []domain.ScoredCandidate) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, CandidateResponse{ID: c.ID, Name: c.Name, Score: c.Score})
	}
	return out
}
