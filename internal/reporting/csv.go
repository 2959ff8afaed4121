package reporting

import (
	"fmt"
	"math"
	"strings"

	"alchm-core/internal/domain"
)

// RenderRecommendationsCSV renders the three ranked lists as one CSV string,
// one row per candidate with its list kind.
func RenderRecommendationsCSV(r *Report) string {
	var sb strings.Builder

	sb.WriteString("kind,rank,id,name,score\n")
	writeRecommendationRows(&sb, "ingredient", r.Ingredients)
	writeRecommendationRows(&sb, "cuisine", r.Cuisines)
	writeRecommendationRows(&sb, "cooking_method", r.CookingMethods)

	return sb.String()
}

func writeRecommendationRows(sb *strings.Builder, kind string, rows []RecommendationRow) {
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%s,%d,%s,%s,%.6f\n",
			kind, row.Rank, row.ID, row.Name, row.Score))
	}
}

// RenderTransitCSV renders transit history rows as CSV. Monica is empty when
// undefined, matching its NULL representation in storage.
func RenderTransitCSV(snapshots []*domain.TransitSnapshot) string {
	var sb strings.Builder

	sb.WriteString("timestamp_ms,fire,water,earth,air,")
	sb.WriteString("heat,entropy,reactivity,gregs_energy,kalchm,monica,sun_sign,hour_ruler\n")

	for _, snap := range snapshots {
		monica := ""
		if !math.IsNaN(snap.Monica) {
			monica = fmt.Sprintf("%.6f", snap.Monica)
		}
		sb.WriteString(fmt.Sprintf("%d,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%s,%s,%s\n",
			snap.TimestampMs,
			snap.Fire, snap.Water, snap.Earth, snap.Air,
			snap.Heat, snap.Entropy, snap.Reactivity, snap.GregsEnergy, snap.Kalchm,
			monica, snap.SunSign, snap.HourRuler))
	}

	return sb.String()
}
