package recommend

import (
	"sort"

	"alchm-core/internal/astro"
	"alchm-core/internal/domain"
)

// Tables holds the immutable reference data the mapper scores against.
// Loaded once at startup and shared read-only across invocations.
type Tables struct {
	Ingredients    []domain.IngredientProfile
	Cuisines       []domain.CuisineProfile
	CookingMethods []domain.CookingMethodProfile
}

// Context carries the computed profile plus the optional celestial modifiers.
// Zero-valued modifier fields disable the corresponding bonus.
type Context struct {
	Fractions      domain.ElementalFractions
	HourRuler      domain.Planet    // "" disables the hour-alignment bonus
	LunarPhase     astro.LunarPhase // "" disables lunar modifiers
	SeasonalBoosts []string         // ingredient IDs in season; nil disables
	Limit          int              // max entries per list; <= 0 means all
}

// Recommend scores every candidate in the reference tables against the
// computed profile and returns ranked lists. Empty tables produce empty
// lists, never an error. Rankings are fully deterministic: descending score
// with lexicographic ID tie-break.
func Recommend(ctx Context, tables Tables) domain.RecommendationSet {
	boosted := make(map[string]bool, len(ctx.SeasonalBoosts))
	for _, id := range ctx.SeasonalBoosts {
		boosted[id] = true
	}

	ingredients := make([]domain.ScoredCandidate, 0, len(tables.Ingredients))
	for _, ing := range tables.Ingredients {
		score := Similarity(ctx.Fractions, ing.Affinity.Fractions())
		score += hourElementBonus(ctx.HourRuler, ing.Affinity)
		if boosted[ing.IngredientID] {
			score += seasonalBoostBonus
		}
		if ctx.LunarPhase != "" {
			score *= astro.LunarModifier(ctx.LunarPhase, ing.LunarTag)
		}
		ingredients = append(ingredients, domain.ScoredCandidate{
			ID: ing.IngredientID, Name: ing.Name, Score: score,
		})
	}

	cuisines := make([]domain.ScoredCandidate, 0, len(tables.Cuisines))
	for _, c := range tables.Cuisines {
		score := Similarity(ctx.Fractions, c.Affinity.Fractions())
		score += hourElementBonus(ctx.HourRuler, c.Affinity)
		for _, sig := range c.Signatures {
			if boosted[sig] {
				score += signatureMatchBonus
			}
		}
		cuisines = append(cuisines, domain.ScoredCandidate{
			ID: c.CuisineID, Name: c.Name, Score: score,
		})
	}

	methods := make([]domain.ScoredCandidate, 0, len(tables.CookingMethods))
	for _, m := range tables.CookingMethods {
		score := Similarity(ctx.Fractions, m.Affinity.Fractions())
		score += hourElementBonus(ctx.HourRuler, m.Affinity)
		methods = append(methods, domain.ScoredCandidate{
			ID: m.MethodID, Name: m.Name, Score: score,
		})
	}

	return domain.RecommendationSet{
		Ingredients:    rank(ingredients, ctx.Limit),
		Cuisines:       rank(cuisines, ctx.Limit),
		CookingMethods: rank(methods, ctx.Limit),
	}
}

// rank sorts candidates by descending score, breaking ties by lexicographic
// ID order, and truncates to limit when positive.
func rank(candidates []domain.ScoredCandidate, limit int) []domain.ScoredCandidate {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].ID < candidates[j].ID
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
