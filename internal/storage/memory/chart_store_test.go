package memory

import (
	"context"
	"errors"
	"testing"

	"alchm-core/internal/domain"
	"alchm-core/internal/storage"
)

func sampleChart(id, code string, observedAt int64) *domain.ChartRecord {
	return &domain.ChartRecord{
		ChartID:    id,
		ShareCode:  code,
		ObservedAt: observedAt,
		Balance:    domain.ElementalBalance{Fire: 40, Water: 25, Earth: 20, Air: 15},
		Properties: domain.AlchemicalProperties{Spirit: 28, Essence: 33, Matter: 23, Substance: 18},
		CreatedAt:  observedAt,
		SourceKind: "stub",
	}
}

func TestChartStore_InsertAndGet(t *testing.T) {
	store := NewChartStore()
	ctx := context.Background()

	c := sampleChart("chart1", "code1", 1000)
	if err := store.Insert(ctx, c); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.GetByID(ctx, "chart1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Balance.Fire != 40 {
		t.Errorf("Balance.Fire mismatch: got %v, want 40", got.Balance.Fire)
	}

	byCode, err := store.GetByShareCode(ctx, "code1")
	if err != nil {
		t.Fatalf("GetByShareCode failed: %v", err)
	}
	if byCode.ChartID != "chart1" {
		t.Errorf("ChartID mismatch: got %s, want chart1", byCode.ChartID)
	}
}

func TestChartStore_DuplicateKey(t *testing.T) {
	store := NewChartStore()
	ctx := context.Background()

	if err := store.Insert(ctx, sampleChart("chart1", "code1", 1000)); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	err := store.Insert(ctx, sampleChart("chart1", "code2", 2000))
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey for duplicate chart_id, got %v", err)
	}

	err = store.Insert(ctx, sampleChart("chart2", "code1", 2000))
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey for duplicate share_code, got %v", err)
	}
}

func TestChartStore_NotFound(t *testing.T) {
	store := NewChartStore()
	ctx := context.Background()

	if _, err := store.GetByID(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := store.GetByShareCode(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestChartStore_GetByTimeRange(t *testing.T) {
	store := NewChartStore()
	ctx := context.Background()

	charts := []*domain.ChartRecord{
		sampleChart("c3", "s3", 3000),
		sampleChart("c1", "s1", 1000),
		sampleChart("c2", "s2", 2000),
		sampleChart("c2b", "s2b", 2000), // same observed_at as c2
	}
	for _, c := range charts {
		if err := store.Insert(ctx, c); err != nil {
			t.Fatalf("Insert %s failed: %v", c.ChartID, err)
		}
	}

	got, err := store.GetByTimeRange(ctx, 1000, 2000)
	if err != nil {
		t.Fatalf("GetByTimeRange failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 charts in range, got %d", len(got))
	}

	// Ordered by observed_at ASC then chart_id ASC.
	want := []string{"c1", "c2", "c2b"}
	for i, c := range got {
		if c.ChartID != want[i] {
			t.Errorf("Position %d: got %s, want %s", i, c.ChartID, want[i])
		}
	}
}
