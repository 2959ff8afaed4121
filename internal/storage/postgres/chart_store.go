package postgres

import (
	"context"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"

	"alchm-core/internal/domain"
	"alchm-core/internal/storage"
)

// ChartStore implements storage.ChartStore using PostgreSQL.
type ChartStore struct {
	pool *Pool
}

// NewChartStore creates a new ChartStore.
func NewChartStore(pool *Pool) *ChartStore {
	return &ChartStore{pool: pool}
}

// Compile-time interface check.
var _ storage.ChartStore = (*ChartStore)(nil)

const chartColumns = `
	chart_id, share_code, observed_at,
	fire_pct, water_pct, earth_pct, air_pct,
	spirit, essence, matter, substance,
	heat, entropy, reactivity, gregs_energy, kalchm, monica,
	source_kind, planet_count, created_at
`

// Insert adds a new chart. Returns ErrDuplicateKey if chart_id exists.
// A NaN Monica is stored as NULL.
func (s *ChartStore) Insert(ctx context.Context, c *domain.ChartRecord) error {
	query := `
		INSERT INTO charts (` + chartColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	var monica *float64
	if !math.IsNaN(c.Thermo.Monica) {
		monica = &c.Thermo.Monica
	}

	_, err := s.pool.Exec(ctx, query,
		c.ChartID,
		c.ShareCode,
		c.ObservedAt,
		c.Balance.Fire,
		c.Balance.Water,
		c.Balance.Earth,
		c.Balance.Air,
		c.Properties.Spirit,
		c.Properties.Essence,
		c.Properties.Matter,
		c.Properties.Substance,
		c.Thermo.Heat,
		c.Thermo.Entropy,
		c.Thermo.Reactivity,
		c.Thermo.GregsEnergy,
		c.Thermo.Kalchm,
		monica,
		c.SourceKind,
		c.PlanetCount,
		c.CreatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return storage.ErrDuplicateKey
		}
		return fmt.Errorf("insert chart: %w", err)
	}
	return nil
}

// GetByID retrieves a chart by its ID. Returns ErrNotFound if not exists.
func (s *ChartStore) GetByID(ctx context.Context, chartID string) (*domain.ChartRecord, error) {
	query := `
		SELECT ` + chartColumns + `
		FROM charts
		WHERE chart_id = $1
	`

	row := s.pool.QueryRow(ctx, query, chartID)
	c, err := scanChart(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get chart by id: %w", err)
	}
	return c, nil
}

// GetByShareCode retrieves a chart by its share code. Returns ErrNotFound if not exists.
func (s *ChartStore) GetByShareCode(ctx context.Context, shareCode string) (*domain.ChartRecord, error) {
	query := `
		SELECT ` + chartColumns + `
		FROM charts
		WHERE share_code = $1
	`

	row := s.pool.QueryRow(ctx, query, shareCode)
	c, err := scanChart(row)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get chart by share code: %w", err)
	}
	return c, nil
}

// GetByTimeRange retrieves charts observed within [start, end] (inclusive).
func (s *ChartStore) GetByTimeRange(ctx context.Context, start, end int64) ([]*domain.ChartRecord, error) {
	query := `
		SELECT ` + chartColumns + `
		FROM charts
		WHERE observed_at >= $1 AND observed_at <= $2
		ORDER BY observed_at ASC, chart_id ASC
	`

	rows, err := s.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("get charts by time range: %w", err)
	}
	defer rows.Close()

	var charts []*domain.ChartRecord
	for rows.Next() {
		c, err := scanChart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chart row: %w", err)
		}
		charts = append(charts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chart rows: %w", err)
	}

	return charts, nil
}

// scanChart scans a single row into a ChartRecord. A NULL monica column
// becomes NaN.
func scanChart(row pgx.Row) (*domain.ChartRecord, error) {
	var c domain.ChartRecord
	var monica *float64

	err := row.Scan(
		&c.ChartID,
		&c.ShareCode,
		&c.ObservedAt,
		&c.Balance.Fire,
		&c.Balance.Water,
		&c.Balance.Earth,
		&c.Balance.Air,
		&c.Properties.Spirit,
		&c.Properties.Essence,
		&c.Properties.Matter,
		&c.Properties.Substance,
		&c.Thermo.Heat,
		&c.Thermo.Entropy,
		&c.Thermo.Reactivity,
		&c.Thermo.GregsEnergy,
		&c.Thermo.Kalchm,
		&monica,
		&c.SourceKind,
		&c.PlanetCount,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if monica != nil {
		c.Thermo.Monica = *monica
	} else {
		c.Thermo.Monica = math.NaN()
	}
	return &c, nil
}
