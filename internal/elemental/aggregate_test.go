package elemental

import (
	"errors"
	"math"
	"testing"

	"alchm-core/internal/astro"
	"alchm-core/internal/domain"
)

func placementsFor(longitudes map[domain.Planet]float64) map[domain.Planet]domain.ZodiacPlacement {
	placements := make(map[domain.Planet]domain.ZodiacPlacement, len(longitudes))
	for planet, lon := range longitudes {
		placements[planet] = astro.Normalize(lon)
	}
	return placements
}

func TestWeight(t *testing.T) {
	if Weight(domain.PlanetSun) != 3 || Weight(domain.PlanetMoon) != 3 {
		t.Error("luminaries must weigh 3")
	}
	if Weight(domain.PlanetAscendant) != 2 {
		t.Error("ascendant must weigh 2")
	}
	for _, p := range []domain.Planet{domain.PlanetMercury, domain.PlanetSaturn, domain.PlanetPluto} {
		if Weight(p) != 1 {
			t.Errorf("%s must weigh 1", p)
		}
	}
}

func TestFractions_EmptyInput(t *testing.T) {
	_, err := Fractions(map[domain.Planet]domain.ZodiacPlacement{})
	if !errors.Is(err, ErrEmptyPositions) {
		t.Fatalf("expected ErrEmptyPositions, got %v", err)
	}
	_, err = Aggregate(nil)
	if !errors.Is(err, ErrEmptyPositions) {
		t.Fatalf("Aggregate(nil): expected ErrEmptyPositions, got %v", err)
	}
}

func TestFractions_SumToOne(t *testing.T) {
	placements := placementsFor(map[domain.Planet]float64{
		domain.PlanetSun:     125,  // Leo, fire
		domain.PlanetMoon:    215,  // Scorpio, water
		domain.PlanetMercury: 150,  // Virgo, earth
		domain.PlanetVenus:   185,  // Libra, air
		domain.PlanetMars:    5,    // Aries, fire
		domain.PlanetJupiter: 250,  // Sagittarius, fire
		domain.PlanetSaturn:  280,  // Capricorn, earth
	})

	fracs, err := Fractions(placements)
	if err != nil {
		t.Fatalf("Fractions failed: %v", err)
	}
	if math.Abs(fracs.Sum()-1.0) > 1e-9 {
		t.Errorf("fractions sum %v, want 1.0", fracs.Sum())
	}
	for _, e := range domain.Elements {
		if fracs.Get(e) < 0 {
			t.Errorf("%s fraction negative: %v", e, fracs.Get(e))
		}
	}
}

func TestFractions_LuminaryWeighting(t *testing.T) {
	// Sun in fire (weight 3), Mercury in earth (weight 1): fire 3/4, earth 1/4.
	placements := placementsFor(map[domain.Planet]float64{
		domain.PlanetSun:     125,
		domain.PlanetMercury: 150,
	})

	fracs, err := Fractions(placements)
	if err != nil {
		t.Fatalf("Fractions failed: %v", err)
	}
	if math.Abs(fracs.Fire-0.75) > 1e-9 {
		t.Errorf("fire fraction: got %v, want 0.75", fracs.Fire)
	}
	if math.Abs(fracs.Earth-0.25) > 1e-9 {
		t.Errorf("earth fraction: got %v, want 0.25", fracs.Earth)
	}
}

func TestFractions_AscendantWeight(t *testing.T) {
	// Ascendant in air (weight 2) vs Mars in fire (weight 1): air 2/3.
	placements := placementsFor(map[domain.Planet]float64{
		domain.PlanetAscendant: 185,
		domain.PlanetMars:      5,
	})

	fracs, err := Fractions(placements)
	if err != nil {
		t.Fatalf("Fractions failed: %v", err)
	}
	if math.Abs(fracs.Air-2.0/3.0) > 1e-9 {
		t.Errorf("air fraction: got %v, want 2/3", fracs.Air)
	}
}

// The exact-100 invariant: percentages always sum to 100, with the largest
// bucket absorbing independent-rounding drift.
func TestAggregate_ExactHundredInvariant(t *testing.T) {
	charts := []map[domain.Planet]float64{
		{domain.PlanetSun: 125, domain.PlanetMoon: 215, domain.PlanetMercury: 150},
		// 3-way split that rounds to 33+33+33 without adjustment.
		{domain.PlanetMercury: 5, domain.PlanetVenus: 35, domain.PlanetMars: 65},
		{domain.PlanetSun: 0, domain.PlanetMoon: 95, domain.PlanetVenus: 150,
			domain.PlanetMars: 185, domain.PlanetJupiter: 215, domain.PlanetSaturn: 250,
			domain.PlanetUranus: 280, domain.PlanetNeptune: 305, domain.PlanetPluto: 335},
	}

	for i, chart := range charts {
		balance, err := Aggregate(placementsFor(chart))
		if err != nil {
			t.Fatalf("chart %d: Aggregate failed: %v", i, err)
		}
		if balance.Total() != 100 {
			t.Errorf("chart %d: total %v, want exactly 100", i, balance.Total())
		}
		for _, e := range domain.Elements {
			if balance.Get(e) < 0 {
				t.Errorf("chart %d: %s negative: %v", i, e, balance.Get(e))
			}
		}
	}
}

func TestPercentages_DriftGoesToLargestBucket(t *testing.T) {
	// 1/3 splits round to 33 each; the largest bucket picks up the missing 1.
	fracs := domain.ElementalFractions{Fire: 1.0 / 3, Water: 1.0 / 3, Earth: 1.0 / 3, Air: 0}
	balance := Percentages(fracs)
	if balance.Total() != 100 {
		t.Fatalf("total %v, want 100", balance.Total())
	}
	if balance.Air != 0 {
		t.Errorf("empty bucket must stay 0, got %v", balance.Air)
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	placements := placementsFor(map[domain.Planet]float64{
		domain.PlanetSun:  125,
		domain.PlanetMoon: 215,
		domain.PlanetMars: 5,
	})

	first, err := Aggregate(placements)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Aggregate(placements)
		if err != nil {
			t.Fatalf("Aggregate failed: %v", err)
		}
		if again != first {
			t.Fatalf("non-deterministic aggregate: %+v != %+v", again, first)
		}
	}
}
