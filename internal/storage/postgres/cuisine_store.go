package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"alchm-core/internal/domain"
	"alchm-core/internal/storage"
)

// CuisineStore implements storage.CuisineStore using PostgreSQL.
type CuisineStore struct {
	pool *Pool
}

// NewCuisineStore creates a new CuisineStore.
func NewCuisineStore(pool *Pool) *CuisineStore {
	return &CuisineStore{pool: pool}
}

// Compile-time interface check.
var _ storage.CuisineStore = (*CuisineStore)(nil)

const insertCuisineQuery = `
	INSERT INTO cuisines (
		cuisine_id, name, fire, water, earth, air, signatures
	) VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// Insert adds a new cuisine. Returns ErrDuplicateKey if cuisine_id exists.
func (s *CuisineStore) Insert(ctx context.Context, p *domain.CuisineProfile) error {
	_, err := s.pool.Exec(ctx, insertCuisineQuery,
		p.CuisineID, p.Name,
		p.Affinity.Fire, p.Affinity.Water, p.Affinity.Earth, p.Affinity.Air,
		p.Signatures,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert cuisine: %w", err)
	}
	return nil
}

// InsertBulk adds multiple cuisines atomically. Fails entire batch on any duplicate.
func (s *CuisineStore) InsertBulk(ctx context.Context, profiles []*domain.CuisineProfile) error {
	if len(profiles) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, p := range profiles {
		_, err := tx.Exec(ctx, insertCuisineQuery,
			p.CuisineID, p.Name,
			p.Affinity.Fire, p.Affinity.Water, p.Affinity.Earth, p.Affinity.Air,
			p.Signatures,
		)
		if err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert cuisine in bulk: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetByID retrieves a cuisine by its ID. Returns ErrNotFound if not exists.
func (s *CuisineStore) GetByID(ctx context.Context, cuisineID string) (*domain.CuisineProfile, error) {
	query := `
		SELECT cuisine_id, name, fire, water, earth, air, signatures
		FROM cuisines
		WHERE cuisine_id = $1
	`

	row := s.pool.QueryRow(ctx, query, cuisineID)
	p, err := scanCuisine(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get cuisine by id: %w", err)
	}
	return p, nil
}

// GetAll retrieves every cuisine, ordered by ID ASC.
func (s *CuisineStore) GetAll(ctx context.Context) ([]*domain.CuisineProfile, error) {
	query := `
		SELECT cuisine_id, name, fire, water, earth, air, signatures
		FROM cuisines
		ORDER BY cuisine_id ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all cuisines: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.CuisineProfile
	for rows.Next() {
		p, err := scanCuisine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cuisine row: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cuisine rows: %w", err)
	}

	return profiles, nil
}

// scanCuisine scans a single row into a CuisineProfile.
func scanCuisine(row pgx.Row) (*domain.CuisineProfile, error) {
	var p domain.CuisineProfile

	err := row.Scan(
		&p.CuisineID,
		&p.Name,
		&p.Affinity.Fire,
		&p.Affinity.Water,
		&p.Affinity.Earth,
		&p.Affinity.Air,
		&p.Signatures,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
