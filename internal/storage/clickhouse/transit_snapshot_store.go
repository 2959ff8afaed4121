package clickhouse

import (
	"context"
	"fmt"
	"math"

	"alchm-core/internal/domain"
	"alchm-core/internal/storage"
)

// TransitSnapshotStore implements storage.TransitSnapshotStore using ClickHouse.
type TransitSnapshotStore struct {
	conn *Conn
}

// NewTransitSnapshotStore creates a new TransitSnapshotStore.
func NewTransitSnapshotStore(conn *Conn) *TransitSnapshotStore {
	return &TransitSnapshotStore{conn: conn}
}

// Compile-time interface check.
var _ storage.TransitSnapshotStore = (*TransitSnapshotStore)(nil)

// InsertBulk adds multiple snapshots. Fails entire batch on duplicate timestamp_ms.
// MergeTree does not enforce uniqueness, so duplicates are checked explicitly
// before the batch is sent.
func (s *TransitSnapshotStore) InsertBulk(ctx context.Context, snapshots []*domain.TransitSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	// Check for intra-batch duplicates
	seen := make(map[int64]struct{}, len(snapshots))
	for _, snap := range snapshots {
		if _, exists := seen[snap.TimestampMs]; exists {
			return storage.ErrDuplicateKey
		}
		seen[snap.TimestampMs] = struct{}{}
	}

	// Check for duplicates against existing DB rows
	for _, snap := range snapshots {
		exists, err := s.exists(ctx, snap.TimestampMs)
		if err != nil {
			return fmt.Errorf("check exists: %w", err)
		}
		if exists {
			return storage.ErrDuplicateKey
		}
	}

	batch, err := s.conn.PrepareBatch(ctx, `
		INSERT INTO transit_history (
			timestamp_ms, fire, water, earth, air,
			heat, entropy, reactivity, gregs_energy, kalchm, monica,
			sun_sign, hour_ruler
		)
	`)
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}

	for _, snap := range snapshots {
		var monica *float64
		if !math.IsNaN(snap.Monica) {
			m := snap.Monica
			monica = &m
		}

		err = batch.Append(
			uint64(snap.TimestampMs),
			snap.Fire, snap.Water, snap.Earth, snap.Air,
			snap.Heat, snap.Entropy, snap.Reactivity, snap.GregsEnergy, snap.Kalchm, monica,
			string(snap.SunSign), string(snap.HourRuler),
		)
		if err != nil {
			return fmt.Errorf("append to batch: %w", err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}

	return nil
}

// GetByTimeRange retrieves snapshots within [start, end] (inclusive), ordered by timestamp ASC.
func (s *TransitSnapshotStore) GetByTimeRange(ctx context.Context, start, end int64) ([]*domain.TransitSnapshot, error) {
	query := `
		SELECT timestamp_ms, fire, water, earth, air,
		       heat, entropy, reactivity, gregs_energy, kalchm, monica,
		       sun_sign, hour_ruler
		FROM transit_history
		WHERE timestamp_ms >= ? AND timestamp_ms <= ?
		ORDER BY timestamp_ms ASC
	`

	rows, err := s.conn.Query(ctx, query, uint64(start), uint64(end))
	if err != nil {
		return nil, fmt.Errorf("query by time range: %w", err)
	}
	defer rows.Close()

	return scanTransitSnapshots(rows)
}

// GetLatest retrieves the most recent snapshot. Returns ErrNotFound when empty.
func (s *TransitSnapshotStore) GetLatest(ctx context.Context) (*domain.TransitSnapshot, error) {
	query := `
		SELECT timestamp_ms, fire, water, earth, air,
		       heat, entropy, reactivity, gregs_energy, kalchm, monica,
		       sun_sign, hour_ruler
		FROM transit_history
		ORDER BY timestamp_ms DESC
		LIMIT 1
	`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query latest: %w", err)
	}
	defer rows.Close()

	snapshots, err := scanTransitSnapshots(rows)
	if err != nil {
		return nil, err
	}
	if len(snapshots) == 0 {
		return nil, storage.ErrNotFound
	}
	return snapshots[0], nil
}

// exists checks if a snapshot with the given timestamp exists.
func (s *TransitSnapshotStore) exists(ctx context.Context, timestampMs int64) (bool, error) {
	query := `
		SELECT count(*) FROM transit_history
		WHERE timestamp_ms = ?
	`

	var count uint64
	err := s.conn.QueryRow(ctx, query, uint64(timestampMs)).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Rows interface for scanning
type chRows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// scanTransitSnapshots scans multiple rows. A NULL monica column becomes NaN.
func scanTransitSnapshots(rows chRows) ([]*domain.TransitSnapshot, error) {
	var snapshots []*domain.TransitSnapshot

	for rows.Next() {
		var snap domain.TransitSnapshot
		var timestampMs uint64
		var monica *float64
		var sunSign, hourRuler string

		err := rows.Scan(
			&timestampMs,
			&snap.Fire, &snap.Water, &snap.Earth, &snap.Air,
			&snap.Heat, &snap.Entropy, &snap.Reactivity, &snap.GregsEnergy, &snap.Kalchm, &monica,
			&sunSign, &hourRuler,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transit snapshot row: %w", err)
		}

		snap.TimestampMs = int64(timestampMs)
		if monica != nil {
			snap.Monica = *monica
		} else {
			snap.Monica = math.NaN()
		}
		snap.SunSign = domain.ZodiacSign(sunSign)
		snap.HourRuler = domain.Planet(hourRuler)
		snapshots = append(snapshots, &snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transit snapshot rows: %w", err)
	}

	return snapshots, nil
}
