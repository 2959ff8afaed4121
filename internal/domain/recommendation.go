package domain

// ScoredCandidate is one ranked entry in a recommendation list.
type ScoredCandidate struct {
	ID    string  // candidate identifier from the reference table
	Name  string  // display name
	Score float64 // similarity score, higher is better
}

// RecommendationSet holds ranked suggestions keyed by similarity to a
// computed elemental profile. Rankings are deterministic: descending score,
// ties broken by lexicographic ID order. Empty lists are a normal outcome
// when the reference tables have no candidates.
type RecommendationSet struct {
	Ingredients    []ScoredCandidate
	Cuisines       []ScoredCandidate
	CookingMethods []ScoredCandidate
}

// IsEmpty reports whether no candidates were ranked in any list.
func (r RecommendationSet) IsEmpty() bool {
	return len(r.Ingredients) == 0 && len(r.Cuisines) == 0 && len(r.CookingMethods) == 0
}
