package ephemeris

import (
	"context"
	"math"
	"testing"
	"time"

	"alchm-core/internal/domain"
)

func TestMeanMotionSource_AtEpoch(t *testing.T) {
	src := NewMeanMotionSource()
	ctx := context.Background()

	positions, err := src.PositionsAt(ctx, j2000)
	if err != nil {
		t.Fatalf("PositionsAt: %v", err)
	}

	if len(positions) != 10 {
		t.Fatalf("expected 10 positions, got %d", len(positions))
	}

	byPlanet := make(map[domain.Planet]domain.PlanetaryPosition)
	for _, p := range positions {
		byPlanet[p.Planet] = p
	}

	sun, ok := byPlanet[domain.PlanetSun]
	if !ok {
		t.Fatal("expected Sun position")
	}
	if math.Abs(sun.LongitudeDegrees-280.460) > 1e-9 {
		t.Errorf("expected Sun at 280.460 at epoch, got %f", sun.LongitudeDegrees)
	}

	if _, ok := byPlanet[domain.PlanetAscendant]; ok {
		t.Error("mean-motion source must not report an Ascendant")
	}
}

func TestMeanMotionSource_SunAdvancesDaily(t *testing.T) {
	src := NewMeanMotionSource()
	ctx := context.Background()

	day0, err := src.PositionsAt(ctx, j2000)
	if err != nil {
		t.Fatalf("PositionsAt day0: %v", err)
	}
	day1, err := src.PositionsAt(ctx, j2000.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("PositionsAt day1: %v", err)
	}

	sunAt := func(ps []domain.PlanetaryPosition) float64 {
		for _, p := range ps {
			if p.Planet == domain.PlanetSun {
				return p.LongitudeDegrees
			}
		}
		t.Fatal("no Sun position")
		return 0
	}

	advance := sunAt(day1) - sunAt(day0)
	if math.Abs(advance-0.9856474) > 1e-6 {
		t.Errorf("expected Sun to advance ~0.9856 degrees per day, got %f", advance)
	}
}

func TestMeanMotionSource_LongitudesNormalized(t *testing.T) {
	src := NewMeanMotionSource()
	ctx := context.Background()

	// Far from the epoch in both directions
	for _, at := range []time.Time{
		j2000.AddDate(50, 0, 0),
		j2000.AddDate(-50, 0, 0),
	} {
		positions, err := src.PositionsAt(ctx, at)
		if err != nil {
			t.Fatalf("PositionsAt %v: %v", at, err)
		}
		for _, p := range positions {
			if p.LongitudeDegrees < 0 || p.LongitudeDegrees >= 360 {
				t.Errorf("%s at %v: longitude %f out of [0, 360)", p.Planet, at, p.LongitudeDegrees)
			}
			if p.IsRetrograde {
				t.Errorf("%s at %v: mean motion never retrogrades", p.Planet, at)
			}
		}
	}
}

func TestMeanMotionSource_Deterministic(t *testing.T) {
	src := NewMeanMotionSource()
	ctx := context.Background()
	at := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	first, err := src.PositionsAt(ctx, at)
	if err != nil {
		t.Fatalf("PositionsAt: %v", err)
	}

	for i := 0; i < 5; i++ {
		again, err := src.PositionsAt(ctx, at)
		if err != nil {
			t.Fatalf("PositionsAt: %v", err)
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("positions differ between calls: %+v vs %+v", first[j], again[j])
			}
		}
	}
}
