package reporting

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// RenderMarkdown renders a report as a Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Alchemical Chart\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Chart: `%s`\n\n", r.ChartID))
	sb.WriteString(fmt.Sprintf("Share code: `%s` | Observed: %s | Source: %s\n\n",
		r.ShareCode, r.ObservedAt.Format(time.RFC3339), r.SourceKind))

	// Celestial Context
	sb.WriteString("## Celestial Context\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Lunar Phase | %s |\n", r.LunarPhase))
	sb.WriteString(fmt.Sprintf("| Illumination | %.1f%% |\n", r.LunarIllumination*100))
	sb.WriteString(fmt.Sprintf("| Planetary Hour | %s |\n", r.HourRuler))
	sb.WriteString(fmt.Sprintf("| Season | %s |\n", r.SeasonSign))
	sb.WriteString("\n")

	// Placements
	sb.WriteString("## Placements\n\n")
	if len(r.Placements) > 0 {
		sb.WriteString("| Body | Sign | Degree | Element | Dignity |\n")
		sb.WriteString("|------|------|--------|---------|--------|\n")
		for _, p := range r.Placements {
			sb.WriteString(fmt.Sprintf("| %s | %s | %.2f | %s | %s |\n",
				p.Planet, p.Sign, p.Degree, p.Element, p.Dignity))
		}
	} else {
		sb.WriteString("No placements available.\n")
	}
	sb.WriteString("\n")

	// Elemental Balance
	sb.WriteString("## Elemental Balance\n\n")
	sb.WriteString("| Element | Share |\n")
	sb.WriteString("|---------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Fire | %.1f%% |\n", r.Fire))
	sb.WriteString(fmt.Sprintf("| Water | %.1f%% |\n", r.Water))
	sb.WriteString(fmt.Sprintf("| Earth | %.1f%% |\n", r.Earth))
	sb.WriteString(fmt.Sprintf("| Air | %.1f%% |\n", r.Air))
	sb.WriteString("\n")

	// Alchemical Properties
	sb.WriteString("## Alchemical Properties\n\n")
	sb.WriteString("| Property | Value |\n")
	sb.WriteString("|----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Spirit | %.0f |\n", r.Spirit))
	sb.WriteString(fmt.Sprintf("| Essence | %.0f |\n", r.Essence))
	sb.WriteString(fmt.Sprintf("| Matter | %.0f |\n", r.Matter))
	sb.WriteString(fmt.Sprintf("| Substance | %.0f |\n", r.Substance))
	sb.WriteString("\n")

	// Thermodynamics
	sb.WriteString("## Thermodynamics\n\n")
	sb.WriteString("| Constant | Value |\n")
	sb.WriteString("|----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Heat | %.6f |\n", r.Heat))
	sb.WriteString(fmt.Sprintf("| Entropy | %.6f |\n", r.Entropy))
	sb.WriteString(fmt.Sprintf("| Reactivity | %.6f |\n", r.Reactivity))
	sb.WriteString(fmt.Sprintf("| Greg's Energy | %.6f |\n", r.GregsEnergy))
	sb.WriteString(fmt.Sprintf("| Kalchm | %.6f |\n", r.Kalchm))
	sb.WriteString(fmt.Sprintf("| Monica | %s |\n", formatMonica(r.Monica)))
	sb.WriteString("\n")

	// Recommendations
	writeRecommendationSection(&sb, "Ingredients", r.Ingredients)
	writeRecommendationSection(&sb, "Cuisines", r.Cuisines)
	writeRecommendationSection(&sb, "Cooking Methods", r.CookingMethods)

	return sb.String()
}

func writeRecommendationSection(sb *strings.Builder, title string, rows []RecommendationRow) {
	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	if len(rows) == 0 {
		sb.WriteString("No candidates available.\n\n")
		return
	}

	sb.WriteString("| Rank | Name | Score |\n")
	sb.WriteString("|------|------|-------|\n")
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("| %d | %s | %.4f |\n", row.Rank, row.Name, row.Score))
	}
	sb.WriteString("\n")
}

// formatMonica renders the Monica constant, honoring the NaN sentinel.
func formatMonica(v float64) string {
	if math.IsNaN(v) {
		return "undefined"
	}
	return fmt.Sprintf("%.6f", v)
}
