package memory

import (
	"context"
	"errors"
	"math"
	"testing"

	"alchm-core/internal/domain"
	"alchm-core/internal/storage"
)

func sampleSnapshot(ts int64) *domain.TransitSnapshot {
	return &domain.TransitSnapshot{
		TimestampMs: ts,
		Fire:        0.4, Water: 0.25, Earth: 0.2, Air: 0.15,
		Heat:      0.06,
		SunSign:   domain.SignVirgo,
		HourRuler: domain.PlanetSun,
	}
}

func TestTransitSnapshotStore_InsertBulkAndQuery(t *testing.T) {
	store := NewTransitSnapshotStore()
	ctx := context.Background()

	snapshots := []*domain.TransitSnapshot{
		sampleSnapshot(3000),
		sampleSnapshot(1000),
		sampleSnapshot(2000),
	}
	if err := store.InsertBulk(ctx, snapshots); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	got, err := store.GetByTimeRange(ctx, 1000, 2000)
	if err != nil {
		t.Fatalf("GetByTimeRange failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 snapshots, got %d", len(got))
	}
	if got[0].TimestampMs != 1000 || got[1].TimestampMs != 2000 {
		t.Errorf("Wrong order: %d, %d", got[0].TimestampMs, got[1].TimestampMs)
	}
}

func TestTransitSnapshotStore_DuplicateTimestamp(t *testing.T) {
	store := NewTransitSnapshotStore()
	ctx := context.Background()

	if err := store.InsertBulk(ctx, []*domain.TransitSnapshot{sampleSnapshot(1000)}); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	err := store.InsertBulk(ctx, []*domain.TransitSnapshot{sampleSnapshot(2000), sampleSnapshot(1000)})
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}

	// Failed batch must not have stored anything.
	got, err := store.GetByTimeRange(ctx, 0, 5000)
	if err != nil {
		t.Fatalf("GetByTimeRange failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Expected 1 snapshot after failed batch, got %d", len(got))
	}

	// Intra-batch duplicates also fail.
	err = store.InsertBulk(ctx, []*domain.TransitSnapshot{sampleSnapshot(4000), sampleSnapshot(4000)})
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey for intra-batch duplicate, got %v", err)
	}
}

func TestTransitSnapshotStore_GetLatest(t *testing.T) {
	store := NewTransitSnapshotStore()
	ctx := context.Background()

	if _, err := store.GetLatest(ctx); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on empty store, got %v", err)
	}

	snapshots := []*domain.TransitSnapshot{
		sampleSnapshot(1000),
		sampleSnapshot(5000),
		sampleSnapshot(3000),
	}
	if err := store.InsertBulk(ctx, snapshots); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	latest, err := store.GetLatest(ctx)
	if err != nil {
		t.Fatalf("GetLatest failed: %v", err)
	}
	if latest.TimestampMs != 5000 {
		t.Errorf("Expected latest timestamp 5000, got %d", latest.TimestampMs)
	}
}

func TestTransitSnapshotStore_PreservesNaNMonica(t *testing.T) {
	store := NewTransitSnapshotStore()
	ctx := context.Background()

	snap := sampleSnapshot(1000)
	snap.Monica = math.NaN()
	if err := store.InsertBulk(ctx, []*domain.TransitSnapshot{snap}); err != nil {
		t.Fatalf("InsertBulk failed: %v", err)
	}

	got, err := store.GetLatest(ctx)
	if err != nil {
		t.Fatalf("GetLatest failed: %v", err)
	}
	if !math.IsNaN(got.Monica) {
		t.Errorf("Expected Monica to round-trip as NaN, got %v", got.Monica)
	}
}
