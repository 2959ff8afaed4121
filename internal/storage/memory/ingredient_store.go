package memory

import (
	"context"
	"sort"
	"sync"

	"alchm-core/internal/domain"
	"alchm-core/internal/storage"
)

// IngredientStore is an in-memory implementation of storage.IngredientStore.
type IngredientStore struct {
	mu   sync.RWMutex
	data map[string]*domain.IngredientProfile // keyed by ingredient_id
}

// NewIngredientStore creates a new in-memory ingredient store.
func NewIngredientStore() *IngredientStore {
	return &IngredientStore{
		data: make(map[string]*domain.IngredientProfile),
	}
}

// Insert adds a new ingredient. Returns ErrDuplicateKey if ingredient_id exists.
func (s *IngredientStore) Insert(_ context.Context, p *domain.IngredientProfile) error {
	if p == nil || p.IngredientID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[p.IngredientID]; exists {
		return storage.ErrDuplicateKey
	}

	s.data[p.IngredientID] = copyIngredient(p)
	return nil
}

// InsertBulk adds multiple ingredients atomically. Fails entire batch on any duplicate.
func (s *IngredientStore) InsertBulk(_ context.Context, profiles []*domain.IngredientProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(profiles))
	for _, p := range profiles {
		if p == nil || p.IngredientID == "" {
			return storage.ErrInvalidInput
		}
		if _, exists := s.data[p.IngredientID]; exists {
			return storage.ErrDuplicateKey
		}
		if _, dup := seen[p.IngredientID]; dup {
			return storage.ErrDuplicateKey
		}
		seen[p.IngredientID] = struct{}{}
	}

	for _, p := range profiles {
		s.data[p.IngredientID] = copyIngredient(p)
	}
	return nil
}

// GetByID retrieves an ingredient by its ID. Returns ErrNotFound if not exists.
func (s *IngredientStore) GetByID(_ context.Context, ingredientID string) (*domain.IngredientProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.data[ingredientID]
	if !exists {
		return nil, storage.ErrNotFound
	}
	return copyIngredient(p), nil
}

// GetByCategory retrieves all ingredients of a category, ordered by ID ASC.
func (s *IngredientStore) GetByCategory(_ context.Context, category string) ([]*domain.IngredientProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.IngredientProfile
	for _, p := range s.data {
		if p.Category == category {
			result = append(result, copyIngredient(p))
		}
	}
	sortIngredients(result)
	return result, nil
}

// GetAll retrieves every ingredient, ordered by ID ASC.
func (s *IngredientStore) GetAll(_ context.Context) ([]*domain.IngredientProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.IngredientProfile, 0, len(s.data))
	for _, p := range s.data {
		result = append(result, copyIngredient(p))
	}
	sortIngredients(result)
	return result, nil
}

// copyIngredient returns a deep copy to prevent external mutation.
func copyIngredient(p *domain.IngredientProfile) *domain.IngredientProfile {
	c := *p
	if p.Seasons != nil {
		c.Seasons = make([]string, len(p.Seasons))
		copy(c.Seasons, p.Seasons)
	}
	return &c
}

func sortIngredients(profiles []*domain.IngredientProfile) {
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].IngredientID < profiles[j].IngredientID
	})
}

// Verify interface compliance at compile time.
var _ storage.IngredientStore = (*IngredientStore)(nil)
