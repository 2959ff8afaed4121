package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"alchm-core/internal/domain"
	"alchm-core/internal/storage"
)

// IngredientStore implements storage.IngredientStore using PostgreSQL.
type IngredientStore struct {
	pool *Pool
}

// NewIngredientStore creates a new IngredientStore.
func NewIngredientStore(pool *Pool) *IngredientStore {
	return &IngredientStore{pool: pool}
}

// Compile-time interface check.
var _ storage.IngredientStore = (*IngredientStore)(nil)

const ingredientColumns = `
	ingredient_id, name, category, fire, water, earth, air, ruling_planet, seasons, lunar_tag
`

const insertIngredientQuery = `
	INSERT INTO ingredients (
		ingredient_id, name, category, fire, water, earth, air, ruling_planet, seasons, lunar_tag
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

// Insert adds a new ingredient. Returns ErrDuplicateKey if ingredient_id exists.
func (s *IngredientStore) Insert(ctx context.Context, p *domain.IngredientProfile) error {
	_, err := s.pool.Exec(ctx, insertIngredientQuery, ingredientArgs(p)...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// InsertBulk adds multiple ingredients atomically. Fails entire batch on any duplicate.
func (s *IngredientStore) InsertBulk(ctx context.Context, profiles []*domain.IngredientProfile) error {
	if len(profiles) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, p := range profiles {
		if _, err := tx.Exec(ctx, insertIngredientQuery, ingredientArgs(p)...); err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert ingredient in bulk: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetByID retrieves an ingredient by its ID. Returns ErrNotFound if not exists.
func (s *IngredientStore) GetByID(ctx context.Context, ingredientID string) (*domain.IngredientProfile, error) {
	query := `
		SELECT ` + ingredientColumns + `
		FROM ingredients
		WHERE ingredient_id = $1
	`

	row := s.pool.QueryRow(ctx, query, ingredientID)
	p, err := scanIngredient(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get ingredient by id: %w", err)
	}
	return p, nil
}

// GetByCategory retrieves all ingredients of a category, ordered by ID ASC.
func (s *IngredientStore) GetByCategory(ctx context.Context, category string) ([]*domain.IngredientProfile, error) {
	query := `
		SELECT ` + ingredientColumns + `
		FROM ingredients
		WHERE category = $1
		ORDER BY ingredient_id ASC
	`

	rows, err := s.pool.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("get ingredients by category: %w", err)
	}
	defer rows.Close()

	return scanIngredients(rows)
}

// GetAll retrieves every ingredient, ordered by ID ASC.
func (s *IngredientStore) GetAll(ctx context.Context) ([]*domain.IngredientProfile, error) {
	query := `
		SELECT ` + ingredientColumns + `
		FROM ingredients
		ORDER BY ingredient_id ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all ingredients: %w", err)
	}
	defer rows.Close()

	return scanIngredients(rows)
}

func ingredientArgs(p *domain.IngredientProfile) []any {
	return []any{
		p.IngredientID,
		p.Name,
		p.Category,
		p.Affinity.Fire,
		p.Affinity.Water,
		p.Affinity.Earth,
		p.Affinity.Air,
		string(p.RulingPlanet),
		p.Seasons,
		p.LunarTag,
	}
}

// scanIngredient scans a single row into an IngredientProfile.
func scanIngredient(row pgx.Row) (*domain.IngredientProfile, error) {
	var p domain.IngredientProfile
	var planetStr string

	err := row.Scan(
		&p.IngredientID,
		&p.Name,
		&p.Category,
		&p.Affinity.Fire,
		&p.Affinity.Water,
		&p.Affinity.Earth,
		&p.Affinity.Air,
		&planetStr,
		&p.Seasons,
		&p.LunarTag,
	)
	if err != nil {
		return nil, err
	}

	p.RulingPlanet = domain.Planet(planetStr)
	return &p, nil
}

// scanIngredients scans multiple rows into a slice of IngredientProfile.
func scanIngredients(rows pgx.Rows) ([]*domain.IngredientProfile, error) {
	var profiles []*domain.IngredientProfile

	for rows.Next() {
		p, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ingredient row: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredient rows: %w", err)
	}

	return profiles, nil
}
