package pipeline

import (
	"context"
	"log"
	"time"
)

// SnapshotScheduler records transit snapshots on a fixed interval. Timestamps
// are truncated to the interval so restarts land on the same grid and the
// engine's duplicate tolerance keeps the history clean.
type SnapshotScheduler struct {
	engine   *Engine
	interval time.Duration
}

// NewSnapshotScheduler creates a scheduler over the given engine.
func NewSnapshotScheduler(engine *Engine, interval time.Duration) *SnapshotScheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SnapshotScheduler{engine: engine, interval: interval}
}

// Run records snapshots until the context is canceled. The first snapshot
// is taken immediately. Failures are logged and the loop keeps going; a
// transient ephemeris or database outage costs rows, not the process.
func (s *SnapshotScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.record(ctx, time.Now().UTC())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-ticker.C:
			s.record(ctx, t.UTC())
		}
	}
}

func (s *SnapshotScheduler) record(ctx context.Context, at time.Time) {
	at = at.Truncate(s.interval)
	if _, err := s.engine.Snapshot(ctx, at); err != nil {
		log.Printf("[scheduler] transit snapshot at %s failed: %v", at.Format(time.RFC3339), err)
	}
}
