// Package pipeline orchestrates a full alchemize run: fetch positions,
// normalize, aggregate the elemental balance, derive alchemical properties
// and thermodynamics, persist the chart, and map recommendations.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"alchm-core/internal/alchemy"
	"alchm-core/internal/astro"
	"alchm-core/internal/domain"
	"alchm-core/internal/elemental"
	"alchm-core/internal/ephemeris"
	"alchm-core/internal/idhash"
	"alchm-core/internal/observability"
	"alchm-core/internal/recommend"
	"alchm-core/internal/storage"
)

// Result is the full output of one alchemize run.
type Result struct {
	Chart           domain.ChartRecord
	Placements      map[domain.Planet]domain.ZodiacPlacement
	Fractions       domain.ElementalFractions
	Recommendations domain.RecommendationSet
	Lunar           astro.LunarState
	HourRuler       domain.Planet
	SeasonSign      domain.ZodiacSign
}

// Engine runs the alchemize pipeline against a position source. Stores are
// optional: a nil chart or transit store disables persistence, which is how
// the one-shot CLI runs.
type Engine struct {
	source     ephemeris.PositionSource
	sourceKind string
	charts     storage.ChartStore
	transits   storage.TransitSnapshotStore
	tables     recommend.Tables
	limit      int
	clock      func() time.Time
	metrics    *observability.Metrics
}

// NewEngine creates a pipeline engine over the given position source.
// sourceKind is recorded on every chart ("ephemeris-http", "ephemeris-ws",
// "file", "stub").
func NewEngine(source ephemeris.PositionSource, sourceKind string) *Engine {
	return &Engine{
		source:     source,
		sourceKind: sourceKind,
		clock:      func() time.Time { return time.Now().UTC() },
	}
}

// WithChartStore enables chart persistence.
func (e *Engine) WithChartStore(store storage.ChartStore) *Engine {
	e.charts = store
	return e
}

// WithTransitStore enables transit snapshot persistence.
func (e *Engine) WithTransitStore(store storage.TransitSnapshotStore) *Engine {
	e.transits = store
	return e
}

// WithTables sets the reference tables used for recommendations.
func (e *Engine) WithTables(tables recommend.Tables) *Engine {
	e.tables = tables
	return e
}

// WithLimit caps each recommendation list. <= 0 means all candidates.
func (e *Engine) WithLimit(limit int) *Engine {
	e.limit = limit
	return e
}

// WithClock sets a custom clock function for deterministic output.
func (e *Engine) WithClock(clock func() time.Time) *Engine {
	e.clock = clock
	return e
}

// WithMetrics enables Prometheus instrumentation.
func (e *Engine) WithMetrics(m *observability.Metrics) *Engine {
	e.metrics = m
	return e
}

// Alchemize runs the full pipeline for the sky at the given moment. The
// chart write is idempotent: recomputing an already persisted position set
// is not an error. Recommendations come back empty when no tables are set.
func (e *Engine) Alchemize(ctx context.Context, at time.Time) (*Result, error) {
	positions, err := e.source.PositionsAt(ctx, at)
	if err != nil {
		e.countRun("error")
		return nil, fmt.Errorf("fetch positions: %w", err)
	}

	return e.AlchemizePositions(ctx, at, positions)
}

// AlchemizePositions runs the pipeline on a caller-supplied position set,
// bypassing the engine's source. This is the path for file input and for
// request bodies that carry their own positions.
func (e *Engine) AlchemizePositions(ctx context.Context, at time.Time, positions []domain.PlanetaryPosition) (*Result, error) {
	started := e.clock()

	result, err := e.compute(at, positions)
	if err != nil {
		e.countRun("error")
		return nil, err
	}

	if e.charts != nil {
		err := e.charts.Insert(ctx, &result.Chart)
		if err != nil && !errors.Is(err, storage.ErrDuplicateKey) {
			e.countRun("error")
			return nil, fmt.Errorf("persist chart: %w", err)
		}
	}

	e.countRun("ok")
	if e.metrics != nil {
		e.metrics.ChartsComputed.Inc()
		if math.IsNaN(result.Chart.Thermo.Monica) {
			e.metrics.MonicaSingular.Inc()
		}
		e.metrics.PipelineDuration.Observe(e.clock().Sub(started).Seconds())
	}
	return result, nil
}

// compute is the pure part of the pipeline, from raw positions to a chart
// and its recommendations. No I/O, fully deterministic given the clock.
func (e *Engine) compute(at time.Time, positions []domain.PlanetaryPosition) (*Result, error) {
	placements := astro.NormalizePositions(positions)

	fracs, err := elemental.Fractions(placements)
	if err != nil {
		return nil, fmt.Errorf("aggregate elements: %w", err)
	}
	balance := elemental.Percentages(fracs)

	props := alchemy.FractionProperties(fracs)
	thermo := alchemy.CalculateThermodynamics(props, fracs)

	observedMs := at.UnixMilli()
	chartID := idhash.ComputeChartID(observedMs, positions)

	chart := domain.ChartRecord{
		ChartID:     chartID,
		ShareCode:   idhash.ShareCode(chartID),
		ObservedAt:  observedMs,
		Balance:     balance,
		Properties:  alchemy.CalculateProperties(balance),
		Thermo:      thermo,
		CreatedAt:   e.clock().UnixMilli(),
		SourceKind:  e.sourceKind,
		PlanetCount: len(placements),
	}

	lunar := astro.CurrentLunarPhase(at)
	hourRuler := astro.HourRuler(at)

	recs := recommend.Recommend(recommend.Context{
		Fractions:      fracs,
		HourRuler:      hourRuler,
		LunarPhase:     lunar.Phase,
		SeasonalBoosts: astro.SeasonalBoostIDs(at),
		Limit:          e.limit,
	}, e.tables)

	return &Result{
		Chart:           chart,
		Placements:      placements,
		Fractions:       fracs,
		Recommendations: recs,
		Lunar:           lunar,
		HourRuler:       hourRuler,
		SeasonSign:      astro.SeasonSign(at),
	}, nil
}

// Snapshot computes and persists one transit history row for the sky at the
// given moment. An already recorded timestamp is not an error, so a restart
// that replays the current minute is harmless.
func (e *Engine) Snapshot(ctx context.Context, at time.Time) (domain.TransitSnapshot, error) {
	positions, err := e.source.PositionsAt(ctx, at)
	if err != nil {
		return domain.TransitSnapshot{}, fmt.Errorf("fetch positions: %w", err)
	}

	return e.SnapshotPositions(ctx, at, positions)
}

// SnapshotPositions records a transit row from a caller-supplied position
// set, the path for streamed updates that already carry their positions.
func (e *Engine) SnapshotPositions(ctx context.Context, at time.Time, positions []domain.PlanetaryPosition) (domain.TransitSnapshot, error) {
	placements := astro.NormalizePositions(positions)
	fracs, err := elemental.Fractions(placements)
	if err != nil {
		return domain.TransitSnapshot{}, fmt.Errorf("aggregate elements: %w", err)
	}

	props := alchemy.FractionProperties(fracs)
	thermo := alchemy.CalculateThermodynamics(props, fracs)

	snap := domain.TransitSnapshot{
		TimestampMs: at.UnixMilli(),
		Fire:        fracs.Fire,
		Water:       fracs.Water,
		Earth:       fracs.Earth,
		Air:         fracs.Air,
		Heat:        thermo.Heat,
		Entropy:     thermo.Entropy,
		Reactivity:  thermo.Reactivity,
		GregsEnergy: thermo.GregsEnergy,
		Kalchm:      thermo.Kalchm,
		Monica:      thermo.Monica,
		SunSign:     placements[domain.PlanetSun].Sign,
		HourRuler:   astro.HourRuler(at),
	}

	if e.transits != nil {
		err := e.transits.InsertBulk(ctx, []*domain.TransitSnapshot{&snap})
		if err != nil && !errors.Is(err, storage.ErrDuplicateKey) {
			return domain.TransitSnapshot{}, fmt.Errorf("persist snapshot: %w", err)
		}
	}

	if e.metrics != nil {
		e.metrics.SnapshotsRecorded.Inc()
	}
	return snap, nil
}

func (e *Engine) countRun(status string) {
	if e.metrics != nil {
		e.metrics.PipelineRunsTotal.WithLabelValues(status).Inc()
	}
}
