// Package ephemeris provides planetary position sources: an HTTP client for
// remote ephemeris services, a WebSocket client for streamed updates, and a
// mean-motion approximation for offline operation.
package ephemeris

import (
	"context"
	"time"

	"alchm-core/internal/domain"
)

// PositionSource yields geocentric ecliptic longitudes for a moment in time.
type PositionSource interface {
	// PositionsAt retrieves planetary positions for the given moment.
	PositionsAt(ctx context.Context, at time.Time) ([]domain.PlanetaryPosition, error)
}

// PositionUpdate is one streamed set of positions.
type PositionUpdate struct {
	ObservedAt time.Time
	Positions  []domain.PlanetaryPosition
}

// StreamSource pushes position updates as the sky moves.
type StreamSource interface {
	// Subscribe starts streaming position updates.
	Subscribe(ctx context.Context) (<-chan PositionUpdate, error)

	// Close closes the stream.
	Close() error
}
