package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"alchm-core/internal/domain"
)

// ComputeChartID computes a deterministic chart_id using SHA256.
// Formula: SHA256(observed_ms|planet:longitude:retrograde|...) with
// positions sorted by planet name so input order does not matter.
// Returns hex-encoded hash (64 characters).
func ComputeChartID(observedMs int64, positions []domain.PlanetaryPosition) string {
	sorted := make([]domain.PlanetaryPosition, len(positions))
	copy(sorted, positions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Planet < sorted[j].Planet
	})

	var b strings.Builder
	fmt.Fprintf(&b, "%d", observedMs)
	for _, p := range sorted {
		fmt.Fprintf(&b, "|%s:%.6f:%t", p.Planet, p.LongitudeDegrees, p.IsRetrograde)
	}

	hash := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(hash[:])
}
