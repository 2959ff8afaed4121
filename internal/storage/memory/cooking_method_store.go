package memory

import (
	"context"
	"sort"
	"sync"

	"alchm-core/internal/domain"
	"alchm-core/internal/storage"
)

// CookingMethodStore is an in-memory implementation of storage.CookingMethodStore.
type CookingMethodStore struct {
	mu   sync.RWMutex
	data map[string]*domain.CookingMethodProfile // keyed by method_id
}

// NewCookingMethodStore creates a new in-memory cooking method store.
func NewCookingMethodStore() *CookingMethodStore {
	return &CookingMethodStore{
		data: make(map[string]*domain.CookingMethodProfile),
	}
}

// Insert adds a new method. Returns ErrDuplicateKey if method_id exists.
func (s *CookingMethodStore) Insert(_ context.Context, p *domain.CookingMethodProfile) error {
	if p == nil || p.MethodID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[p.MethodID]; exists {
		return storage.ErrDuplicateKey
	}

	methodCopy := *p
	s.data[p.MethodID] = &methodCopy
	return nil
}

// InsertBulk adds multiple methods atomically. Fails entire batch on any duplicate.
func (s *CookingMethodStore) InsertBulk(_ context.Context, profiles []*domain.CookingMethodProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(profiles))
	for _, p := range profiles {
		if p == nil || p.MethodID == "" {
			return storage.ErrInvalidInput
		}
		if _, exists := s.data[p.MethodID]; exists {
			return storage.ErrDuplicateKey
		}
		if _, dup := seen[p.MethodID]; dup {
			return storage.ErrDuplicateKey
		}
		seen[p.MethodID] = struct{}{}
	}

	for _, p := range profiles {
		methodCopy := *p
		s.data[p.MethodID] = &methodCopy
	}
	return nil
}

// GetByID retrieves a method by its ID. Returns ErrNotFound if not exists.
func (s *CookingMethodStore) GetByID(_ context.Context, methodID string) (*domain.CookingMethodProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.data[methodID]
	if !exists {
		return nil, storage.ErrNotFound
	}
	methodCopy := *p
	return &methodCopy, nil
}

// GetAll retrieves every method, ordered by ID ASC.
func (s *CookingMethodStore) GetAll(_ context.Context) ([]*domain.CookingMethodProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.CookingMethodProfile, 0, len(s.data))
	for _, p := range s.data {
		methodCopy := *p
		result = append(result, &methodCopy)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].MethodID < result[j].MethodID
	})
	return result, nil
}

// Verify interface compliance at compile time.
var _ storage.CookingMethodStore = (*CookingMethodStore)(nil)
