// Package ingestion consumes streamed ephemeris updates and turns each one
// into a persisted transit snapshot, with an optional chart per update.
package ingestion

import (
	"context"
	"log"
	"time"

	"alchm-core/internal/ephemeris"
	"alchm-core/internal/pipeline"
)

// Runner drains a position stream into the pipeline. Updates arriving closer
// together than MinInterval are dropped so a chatty feed cannot flood the
// transit history.
type Runner struct {
	stream      ephemeris.StreamSource
	engine      *pipeline.Engine
	minInterval time.Duration
	charts      bool
	logger      *log.Logger

	lastRecorded time.Time
}

// RunnerOptions contains configuration for creating a Runner.
type RunnerOptions struct {
	Stream      ephemeris.StreamSource
	Engine      *pipeline.Engine
	MinInterval time.Duration // Default: 30s - minimum spacing between recorded updates
	Charts      bool          // Also persist a chart per recorded update
	Logger      *log.Logger
}

// NewRunner creates a new stream runner.
func NewRunner(opts RunnerOptions) *Runner {
	minInterval := opts.MinInterval
	if minInterval == 0 {
		minInterval = 30 * time.Second
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Runner{
		stream:      opts.Stream,
		engine:      opts.Engine,
		minInterval: minInterval,
		charts:      opts.Charts,
		logger:      logger,
	}
}

// Run subscribes to the stream and processes updates until the context is
// canceled or the stream closes. Per-update failures are logged and skipped;
// the stream stays subscribed.
func (r *Runner) Run(ctx context.Context) error {
	updates, err := r.stream.Subscribe(ctx)
	if err != nil {
		return err
	}

	r.logger.Println("Stream subscription established")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				r.logger.Println("Stream closed")
				return nil
			}
			r.process(ctx, update)
		}
	}
}

func (r *Runner) process(ctx context.Context, update ephemeris.PositionUpdate) {
	if !r.lastRecorded.IsZero() && update.ObservedAt.Sub(r.lastRecorded) < r.minInterval {
		return
	}

	if len(update.Positions) == 0 {
		r.logger.Println("Skipping empty position update")
		return
	}

	if r.charts {
		if _, err := r.engine.AlchemizePositions(ctx, update.ObservedAt, update.Positions); err != nil {
			r.logger.Printf("Chart from stream update failed: %v", err)
			return
		}
	}

	if _, err := r.engine.SnapshotPositions(ctx, update.ObservedAt, update.Positions); err != nil {
		r.logger.Printf("Snapshot from stream update failed: %v", err)
		return
	}

	r.lastRecorded = update.ObservedAt
}
