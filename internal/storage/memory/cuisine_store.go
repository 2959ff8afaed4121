package memory

import (
	"context"
	"sort"
	"sync"

	"alchm-core/internal/domain"
	"alchm-core/internal/storage"
)

// CuisineStore is an in-memory implementation of storage.CuisineStore.
type CuisineStore struct {
	mu   sync.RWMutex
	data map[string]*domain.CuisineProfile // keyed by cuisine_id
}

// NewCuisineStore creates a new in-memory cuisine store.
func NewCuisineStore() *CuisineStore {
	return &CuisineStore{
		data: make(map[string]*domain.CuisineProfile),
	}
}

// Insert adds a new cuisine. Returns ErrDuplicateKey if cuisine_id exists.
func (s *CuisineStore) Insert(_ context.Context, p *domain.CuisineProfile) error {
	if p == nil || p.CuisineID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[p.CuisineID]; exists {
		return storage.ErrDuplicateKey
	}

	s.data[p.CuisineID] = copyCuisine(p)
	return nil
}

// InsertBulk adds multiple cuisines atomically. Fails entire batch on any duplicate.
func (s *CuisineStore) InsertBulk(_ context.Context, profiles []*domain.CuisineProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(profiles))
	for _, p := range profiles {
		if p == nil || p.CuisineID == "" {
			return storage.ErrInvalidInput
		}
		if _, exists := s.data[p.CuisineID]; exists {
			return storage.ErrDuplicateKey
		}
		if _, dup := seen[p.CuisineID]; dup {
			return storage.ErrDuplicateKey
		}
		seen[p.CuisineID] = struct{}{}
	}

	for _, p := range profiles {
		s.data[p.CuisineID] = copyCuisine(p)
	}
	return nil
}

// GetByID retrieves a cuisine by its ID. Returns ErrNotFound if not exists.
func (s *CuisineStore) GetByID(_ context.Context, cuisineID string) (*domain.CuisineProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.data[cuisineID]
	if !exists {
		return nil, storage.ErrNotFound
	}
	return copyCuisine(p), nil
}

// GetAll retrieves every cuisine, ordered by ID ASC.
func (s *CuisineStore) GetAll(_ context.Context) ([]*domain.CuisineProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.CuisineProfile, 0, len(s.data))
	for _, p := range s.data {
		result = append(result, copyCuisine(p))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CuisineID < result[j].CuisineID
	})
	return result, nil
}

// copyCuisine returns a deep copy to prevent external mutation.
func copyCuisine(p *domain.CuisineProfile) *domain.CuisineProfile {
	c := *p
	if p.Signatures != nil {
		c.Signatures = make([]string, len(p.Signatures))
		copy(c.Signatures, p.Signatures)
	}
	return &c
}

// Verify interface compliance at compile time.
var _ storage.CuisineStore = (*CuisineStore)(nil)
