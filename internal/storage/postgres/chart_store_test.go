package postgres

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alchm-core/internal/domain"
	"alchm-core/internal/storage"
)

func testChart(id, code string, observedAt int64) *domain.ChartRecord {
	return &domain.ChartRecord{
		ChartID:    id,
		ShareCode:  code,
		ObservedAt: observedAt,
		Balance:    domain.ElementalBalance{Fire: 40, Water: 25, Earth: 20, Air: 15},
		Properties: domain.AlchemicalProperties{Spirit: 28, Essence: 33, Matter: 23, Substance: 18},
		Thermo: domain.ThermodynamicResult{
			Heat:        0.0595,
			Entropy:     0.124,
			Reactivity:  0.312,
			GregsEnergy: -0.021,
			Kalchm:      1129.69,
			Monica:      0.0095,
		},
		CreatedAt:   observedAt,
		SourceKind:  "stub",
		PlanetCount: 11,
	}
}

func TestChartStore_InsertAndGet(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewChartStore(pool)
	ctx := context.Background()

	chart := testChart("chart-001", "Ab3xY9kQz", 1700000000000)
	require.NoError(t, store.Insert(ctx, chart))

	retrieved, err := store.GetByID(ctx, "chart-001")
	require.NoError(t, err)

	assert.Equal(t, chart.ShareCode, retrieved.ShareCode)
	assert.Equal(t, chart.Balance, retrieved.Balance)
	assert.Equal(t, chart.Properties, retrieved.Properties)
	assert.Equal(t, chart.Thermo, retrieved.Thermo)
	assert.Equal(t, chart.SourceKind, retrieved.SourceKind)
	assert.Equal(t, chart.PlanetCount, retrieved.PlanetCount)

	byCode, err := store.GetByShareCode(ctx, "Ab3xY9kQz")
	require.NoError(t, err)
	assert.Equal(t, chart.ChartID, byCode.ChartID)
}

func TestChartStore_MonicaNaNRoundTrip(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewChartStore(pool)
	ctx := context.Background()

	chart := testChart("chart-nan", "NaNcode1", 1700000000000)
	chart.Thermo.Monica = math.NaN()
	require.NoError(t, store.Insert(ctx, chart))

	retrieved, err := store.GetByID(ctx, "chart-nan")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(retrieved.Thermo.Monica), "NaN Monica must survive the NULL round trip")
}

func TestChartStore_InsertDuplicate(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewChartStore(pool)
	ctx := context.Background()

	require.NoError(t, store.Insert(ctx, testChart("chart-dup", "dupCode1", 1700000000000)))

	err := store.Insert(ctx, testChart("chart-dup", "dupCode2", 1700000001000))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	// share_code is unique too
	err = store.Insert(ctx, testChart("chart-other", "dupCode1", 1700000001000))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestChartStore_NotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewChartStore(pool)
	ctx := context.Background()

	_, err := store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = store.GetByShareCode(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestChartStore_GetByTimeRange(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewChartStore(pool)
	ctx := context.Background()

	charts := []*domain.ChartRecord{
		testChart("c3", "s3", 3000),
		testChart("c1", "s1", 1000),
		testChart("c2b", "s2b", 2000),
		testChart("c2a", "s2a", 2000),
	}
	for _, c := range charts {
		require.NoError(t, store.Insert(ctx, c))
	}

	got, err := store.GetByTimeRange(ctx, 1000, 2000)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// observed_at ASC with chart_id tie-break
	assert.Equal(t, "c1", got[0].ChartID)
	assert.Equal(t, "c2a", got[1].ChartID)
	assert.Equal(t, "c2b", got[2].ChartID)
}
