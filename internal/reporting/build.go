package reporting

import (
	"time"

	"alchm-core/internal/astro"
	"alchm-core/internal/domain"
	"alchm-core/internal/pipeline"
)

// Build converts a pipeline result into a renderable report. Placements come
// out in traditional body order with the Ascendant last; bodies absent from
// the result are skipped.
func Build(result *pipeline.Result) *Report {
	r := &Report{
		GeneratedAt:       time.Now().UTC(),
		ChartID:           result.Chart.ChartID,
		ShareCode:         result.Chart.ShareCode,
		ObservedAt:        time.UnixMilli(result.Chart.ObservedAt).UTC(),
		SourceKind:        result.Chart.SourceKind,
		LunarPhase:        string(result.Lunar.Phase),
		LunarIllumination: result.Lunar.Illumination,
		HourRuler:         string(result.HourRuler),
		SeasonSign:        string(result.SeasonSign),
		Fire:              result.Chart.Balance.Fire,
		Water:             result.Chart.Balance.Water,
		Earth:             result.Chart.Balance.Earth,
		Air:               result.Chart.Balance.Air,
		Spirit:            result.Chart.Properties.Spirit,
		Essence:           result.Chart.Properties.Essence,
		Matter:            result.Chart.Properties.Matter,
		Substance:         result.Chart.Properties.Substance,
		Heat:              result.Chart.Thermo.Heat,
		Entropy:           result.Chart.Thermo.Entropy,
		Reactivity:        result.Chart.Thermo.Reactivity,
		GregsEnergy:       result.Chart.Thermo.GregsEnergy,
		Kalchm:            result.Chart.Thermo.Kalchm,
		Monica:            result.Chart.Thermo.Monica,
		Ingredients:       recommendationRows(result.Recommendations.Ingredients),
		Cuisines:          recommendationRows(result.Recommendations.Cuisines),
		CookingMethods:    recommendationRows(result.Recommendations.CookingMethods),
	}

	displayOrder := append(append([]domain.Planet{}, domain.Planets...), domain.PlanetAscendant)
	for _, planet := range displayOrder {
		placement, ok := result.Placements[planet]
		if !ok {
			continue
		}
		r.Placements = append(r.Placements, PlacementRow{
			Planet:  string(planet),
			Sign:    string(placement.Sign),
			Degree:  placement.DegreeInSign,
			Element: string(placement.Element),
			Dignity: string(astro.LookupDignity(planet, placement.Sign)),
		})
	}

	return r
}

func recommendationRows(candidates []domain.ScoredCandidate) []RecommendationRow {
	rows := make([]RecommendationRow, 0, len(candidates))
	for i, c := range candidates {
		rows = append(rows, RecommendationRow{
			Rank:  i + 1,
			ID:    c.ID,
			Name:  c.Name,
			Score: c.Score,
		})
	}
	return rows
}
