package storage

import (
	"context"

	"alchm-core/internal/domain"
)

// IngredientStore provides access to the ingredients reference table.
type IngredientStore interface {
	// Insert adds a new ingredient. Returns ErrDuplicateKey if ingredient_id exists.
	Insert(ctx context.Context, p *domain.IngredientProfile) error

	// InsertBulk adds multiple ingredients atomically. Fails entire batch on any duplicate.
	InsertBulk(ctx context.Context, profiles []*domain.IngredientProfile) error

	// GetByID retrieves an ingredient by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, ingredientID string) (*domain.IngredientProfile, error)

	// GetByCategory retrieves all ingredients of a category, ordered by ID ASC.
	GetByCategory(ctx context.Context, category string) ([]*domain.IngredientProfile, error)

	// GetAll retrieves every ingredient, ordered by ID ASC.
	GetAll(ctx context.Context) ([]*domain.IngredientProfile, error)
}

// CuisineStore provides access to the cuisines reference table.
type CuisineStore interface {
	// Insert adds a new cuisine. Returns ErrDuplicateKey if cuisine_id exists.
	Insert(ctx context.Context, p *domain.CuisineProfile) error

	// InsertBulk adds multiple cuisines atomically. Fails entire batch on any duplicate.
	InsertBulk(ctx context.Context, profiles []*domain.CuisineProfile) error

	// GetByID retrieves a cuisine by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, cuisineID string) (*domain.CuisineProfile, error)

	// GetAll retrieves every cuisine, ordered by ID ASC.
	GetAll(ctx context.Context) ([]*domain.CuisineProfile, error)
}

// CookingMethodStore provides access to the cooking_methods reference table.
type CookingMethodStore interface {
	// Insert adds a new method. Returns ErrDuplicateKey if method_id exists.
	Insert(ctx context.Context, p *domain.CookingMethodProfile) error

	// InsertBulk adds multiple methods atomically. Fails entire batch on any duplicate.
	InsertBulk(ctx context.Context, profiles []*domain.CookingMethodProfile) error

	// GetByID retrieves a method by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, methodID string) (*domain.CookingMethodProfile, error)

	// GetAll retrieves every method, ordered by ID ASC.
	GetAll(ctx context.Context) ([]*domain.CookingMethodProfile, error)
}

// ChartStore provides access to computed chart storage.
type ChartStore interface {
	// Insert adds a new chart. Returns ErrDuplicateKey if chart_id exists.
	Insert(ctx context.Context, c *domain.ChartRecord) error

	// GetByID retrieves a chart by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, chartID string) (*domain.ChartRecord, error)

	// GetByShareCode retrieves a chart by its share code. Returns ErrNotFound if not exists.
	GetByShareCode(ctx context.Context, shareCode string) (*domain.ChartRecord, error)

	// GetByTimeRange retrieves charts observed within [start, end] (inclusive),
	// ordered by observed_at ASC with chart_id as tie-break.
	GetByTimeRange(ctx context.Context, start, end int64) ([]*domain.ChartRecord, error)
}

// TransitSnapshotStore provides access to transit_history storage.
// The table is append-only; snapshots are never updated.
type TransitSnapshotStore interface {
	// InsertBulk adds multiple snapshots. Fails entire batch on duplicate timestamp_ms.
	InsertBulk(ctx context.Context, snapshots []*domain.TransitSnapshot) error

	// GetByTimeRange retrieves snapshots within [start, end] (inclusive), ordered by timestamp ASC.
	GetByTimeRange(ctx context.Context, start, end int64) ([]*domain.TransitSnapshot, error)

	// GetLatest retrieves the most recent snapshot. Returns ErrNotFound when empty.
	GetLatest(ctx context.Context) (*domain.TransitSnapshot, error)
}
