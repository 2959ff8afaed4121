package metrics

import (
	"context"
	"errors"

	"alchm-core/internal/domain"
	"alchm-core/internal/storage"
)

// ErrNoSnapshots is returned when no transit snapshots fall in the window.
var ErrNoSnapshots = errors.New("no snapshots available for aggregation")

// TransitSummary holds descriptive statistics for every recorded metric over
// one time window. Monica's Count can be lower than Samples because the
// undefined sentinel is excluded from its series.
type TransitSummary struct {
	StartMs int64
	EndMs   int64
	Samples int

	Fire  SeriesSummary
	Water SeriesSummary
	Earth SeriesSummary
	Air   SeriesSummary

	Heat        SeriesSummary
	Entropy     SeriesSummary
	Reactivity  SeriesSummary
	GregsEnergy SeriesSummary
	Kalchm      SeriesSummary
	Monica      SeriesSummary

	// SunSigns counts snapshots per sun sign in the window.
	SunSigns map[domain.ZodiacSign]int
}

// Aggregator computes transit history summaries from stored snapshots.
type Aggregator struct {
	transitStore storage.TransitSnapshotStore
}

// NewAggregator creates a new transit aggregator.
func NewAggregator(transitStore storage.TransitSnapshotStore) *Aggregator {
	return &Aggregator{transitStore: transitStore}
}

// Summarize computes statistics over snapshots in [startMs, endMs].
// Returns ErrNoSnapshots when the window is empty.
func (a *Aggregator) Summarize(ctx context.Context, startMs, endMs int64) (*TransitSummary, error) {
	snapshots, err := a.transitStore.GetByTimeRange(ctx, startMs, endMs)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, ErrNoSnapshots
	}

	n := len(snapshots)
	series := map[string][]float64{
		"fire": make([]float64, 0, n), "water": make([]float64, 0, n),
		"earth": make([]float64, 0, n), "air": make([]float64, 0, n),
		"heat": make([]float64, 0, n), "entropy": make([]float64, 0, n),
		"reactivity": make([]float64, 0, n), "gregs": make([]float64, 0, n),
		"kalchm": make([]float64, 0, n), "monica": make([]float64, 0, n),
	}
	sunSigns := make(map[domain.ZodiacSign]int)

	for _, snap := range snapshots {
		series["fire"] = append(series["fire"], snap.Fire)
		series["water"] = append(series["water"], snap.Water)
		series["earth"] = append(series["earth"], snap.Earth)
		series["air"] = append(series["air"], snap.Air)
		series["heat"] = append(series["heat"], snap.Heat)
		series["entropy"] = append(series["entropy"], snap.Entropy)
		series["reactivity"] = append(series["reactivity"], snap.Reactivity)
		series["gregs"] = append(series["gregs"], snap.GregsEnergy)
		series["kalchm"] = append(series["kalchm"], snap.Kalchm)
		series["monica"] = append(series["monica"], snap.Monica)
		sunSigns[snap.SunSign]++
	}

	return &TransitSummary{
		StartMs:     startMs,
		EndMs:       endMs,
		Samples:     n,
		Fire:        summarize(series["fire"]),
		Water:       summarize(series["water"]),
		Earth:       summarize(series["earth"]),
		Air:         summarize(series["air"]),
		Heat:        summarize(series["heat"]),
		Entropy:     summarize(series["entropy"]),
		Reactivity:  summarize(series["reactivity"]),
		GregsEnergy: summarize(series["gregs"]),
		Kalchm:      summarize(series["kalchm"]),
		Monica:      summarize(series["monica"]),
		SunSigns:    sunSigns,
	}, nil
}
