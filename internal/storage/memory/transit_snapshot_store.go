package memory

import (
	"context"
	"sort"
	"sync"

	"alchm-core/internal/domain"
	"alchm-core/internal/storage"
)

// TransitSnapshotStore is an in-memory implementation of storage.TransitSnapshotStore.
type TransitSnapshotStore struct {
	mu   sync.RWMutex
	data map[int64]*domain.TransitSnapshot // keyed by timestamp_ms
}

// NewTransitSnapshotStore creates a new in-memory transit snapshot store.
func NewTransitSnapshotStore() *TransitSnapshotStore {
	return &TransitSnapshotStore{
		data: make(map[int64]*domain.TransitSnapshot),
	}
}

// InsertBulk adds multiple snapshots. Fails entire batch on duplicate timestamp_ms.
func (s *TransitSnapshotStore) InsertBulk(_ context.Context, snapshots []*domain.TransitSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]struct{}, len(snapshots))
	for _, snap := range snapshots {
		if snap == nil || snap.TimestampMs <= 0 {
			return storage.ErrInvalidInput
		}
		if _, exists := s.data[snap.TimestampMs]; exists {
			return storage.ErrDuplicateKey
		}
		if _, dup := seen[snap.TimestampMs]; dup {
			return storage.ErrDuplicateKey
		}
		seen[snap.TimestampMs] = struct{}{}
	}

	for _, snap := range snapshots {
		snapCopy := *snap
		s.data[snap.TimestampMs] = &snapCopy
	}
	return nil
}

// GetByTimeRange retrieves snapshots within [start, end] (inclusive), ordered by timestamp ASC.
func (s *TransitSnapshotStore) GetByTimeRange(_ context.Context, start, end int64) ([]*domain.TransitSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.TransitSnapshot
	for ts, snap := range s.data {
		if ts >= start && ts <= end {
			snapCopy := *snap
			result = append(result, &snapCopy)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].TimestampMs < result[j].TimestampMs
	})

	return result, nil
}

// GetLatest retrieves the most recent snapshot. Returns ErrNotFound when empty.
func (s *TransitSnapshotStore) GetLatest(_ context.Context) (*domain.TransitSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *domain.TransitSnapshot
	for _, snap := range s.data {
		if latest == nil || snap.TimestampMs > latest.TimestampMs {
			latest = snap
		}
	}
	if latest == nil {
		return nil, storage.ErrNotFound
	}
	snapCopy := *latest
	return &snapCopy, nil
}

// Verify interface compliance at compile time.
var _ storage.TransitSnapshotStore = (*TransitSnapshotStore)(nil)
