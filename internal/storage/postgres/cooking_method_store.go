package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"alchm-core/internal/domain"
	"alchm-core/internal/storage"
)

// CookingMethodStore implements storage.CookingMethodStore using PostgreSQL.
type CookingMethodStore struct {
	pool *Pool
}

// NewCookingMethodStore creates a new CookingMethodStore.
func NewCookingMethodStore(pool *Pool) *CookingMethodStore {
	return &CookingMethodStore{pool: pool}
}

// Compile-time interface check.
var _ storage.CookingMethodStore = (*CookingMethodStore)(nil)

const insertMethodQuery = `
	INSERT INTO cooking_methods (
		method_id, name, fire, water, earth, air, ruling_planet
	) VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// Insert adds a new method. Returns ErrDuplicateKey if method_id exists.
func (s *CookingMethodStore) Insert(ctx context.Context, p *domain.CookingMethodProfile) error {
	_, err := s.pool.Exec(ctx, insertMethodQuery,
		p.MethodID, p.Name,
		p.Affinity.Fire, p.Affinity.Water, p.Affinity.Earth, p.Affinity.Air,
		string(p.RulingPlanet),
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert cooking method: %w", err)
	}
	return nil
}

// InsertBulk adds multiple methods atomically. Fails entire batch on any duplicate.
func (s *CookingMethodStore) InsertBulk(ctx context.Context, profiles []*domain.CookingMethodProfile) error {
	if len(profiles) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, p := range profiles {
		_, err := tx.Exec(ctx, insertMethodQuery,
			p.MethodID, p.Name,
			p.Affinity.Fire, p.Affinity.Water, p.Affinity.Earth, p.Affinity.Air,
			string(p.RulingPlanet),
		)
		if err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert cooking method in bulk: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetByID retrieves a method by its ID. Returns ErrNotFound if not exists.
func (s *CookingMethodStore) GetByID(ctx context.Context, methodID string) (*domain.CookingMethodProfile, error) {
	query := `
		SELECT method_id, name, fire, water, earth, air, ruling_planet
		FROM cooking_methods
		WHERE method_id = $1
	`

	row := s.pool.QueryRow(ctx, query, methodID)
	p, err := scanCookingMethod(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get cooking method by id: %w", err)
	}
	return p, nil
}

// GetAll retrieves every method, ordered by ID ASC.
func (s *CookingMethodStore) GetAll(ctx context.Context) ([]*domain.CookingMethodProfile, error) {
	query := `
		SELECT method_id, name, fire, water, earth, air, ruling_planet
		FROM cooking_methods
		ORDER BY method_id ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all cooking methods: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.CookingMethodProfile
	for rows.Next() {
		p, err := scanCookingMethod(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cooking method row: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cooking method rows: %w", err)
	}

	return profiles, nil
}

// scanCookingMethod scans a single row into a CookingMethodProfile.
func scanCookingMethod(row pgx.Row) (*domain.CookingMethodProfile, error) {
	var p domain.CookingMethodProfile
	var planetStr string

	err := row.Scan(
		&p.MethodID,
		&p.Name,
		&p.Affinity.Fire,
		&p.Affinity.Water,
		&p.Affinity.Earth,
		&p.Affinity.Air,
		&planetStr,
	)
	if err != nil {
		return nil, err
	}

	p.RulingPlanet = domain.Planet(planetStr)
	return &p, nil
}
