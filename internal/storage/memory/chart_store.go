package memory

import (
	"context"
	"sort"
	"sync"

	"alchm-core/internal/domain"
	"alchm-core/internal/storage"
)

// ChartStore is an in-memory implementation of storage.ChartStore.
type ChartStore struct {
	mu          sync.RWMutex
	data        map[string]*domain.ChartRecord // keyed by chart_id
	byShareCode map[string]string              // share_code -> chart_id
}

// NewChartStore creates a new in-memory chart store.
func NewChartStore() *ChartStore {
	return &ChartStore{
		data:        make(map[string]*domain.ChartRecord),
		byShareCode: make(map[string]string),
	}
}

// Insert adds a new chart. Returns ErrDuplicateKey if chart_id exists.
func (s *ChartStore) Insert(_ context.Context, c *domain.ChartRecord) error {
	if c == nil || c.ChartID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[c.ChartID]; exists {
		return storage.ErrDuplicateKey
	}
	if c.ShareCode != "" {
		if _, exists := s.byShareCode[c.ShareCode]; exists {
			return storage.ErrDuplicateKey
		}
	}

	chartCopy := *c
	s.data[c.ChartID] = &chartCopy
	if c.ShareCode != "" {
		s.byShareCode[c.ShareCode] = c.ChartID
	}
	return nil
}

// GetByID retrieves a chart by its ID. Returns ErrNotFound if not exists.
func (s *ChartStore) GetByID(_ context.Context, chartID string) (*domain.ChartRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.data[chartID]
	if !exists {
		return nil, storage.ErrNotFound
	}
	chartCopy := *c
	return &chartCopy, nil
}

// GetByShareCode retrieves a chart by its share code. Returns ErrNotFound if not exists.
func (s *ChartStore) GetByShareCode(_ context.Context, shareCode string) (*domain.ChartRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chartID, exists := s.byShareCode[shareCode]
	if !exists {
		return nil, storage.ErrNotFound
	}
	chartCopy := *s.data[chartID]
	return &chartCopy, nil
}

// GetByTimeRange retrieves charts observed within [start, end] (inclusive).
func (s *ChartStore) GetByTimeRange(_ context.Context, start, end int64) ([]*domain.ChartRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.ChartRecord
	for _, c := range s.data {
		if c.ObservedAt >= start && c.ObservedAt <= end {
			chartCopy := *c
			result = append(result, &chartCopy)
		}
	}

	// Sort by observed_at ASC, chart_id as tie-break
	sort.Slice(result, func(i, j int) bool {
		if result[i].ObservedAt != result[j].ObservedAt {
			return result[i].ObservedAt < result[j].ObservedAt
		}
		return result[i].ChartID < result[j].ChartID
	})

	return result, nil
}

// Verify interface compliance at compile time.
var _ storage.ChartStore = (*ChartStore)(nil)
