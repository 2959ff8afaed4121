package idhash

import (
	"testing"

	"alchm-core/internal/domain"
)

func samplePositions() []domain.PlanetaryPosition {
	return []domain.PlanetaryPosition{
		{Planet: domain.PlanetSun, LongitudeDegrees: 157.3},
		{Planet: domain.PlanetMoon, LongitudeDegrees: 12.0},
		{Planet: domain.PlanetMercury, LongitudeDegrees: 170.55, IsRetrograde: true},
	}
}

func TestComputeChartID(t *testing.T) {
	got := ComputeChartID(1756500000000, samplePositions())

	if len(got) != 64 {
		t.Errorf("ComputeChartID() length = %d, want 64", len(got))
	}

	// Same inputs produce the same hash.
	got2 := ComputeChartID(1756500000000, samplePositions())
	if got != got2 {
		t.Errorf("ComputeChartID() not deterministic: %s != %s", got, got2)
	}
}

func TestComputeChartID_OrderIndependent(t *testing.T) {
	positions := samplePositions()
	reversed := []domain.PlanetaryPosition{positions[2], positions[1], positions[0]}

	a := ComputeChartID(1756500000000, positions)
	b := ComputeChartID(1756500000000, reversed)
	if a != b {
		t.Errorf("position order changed the hash: %s != %s", a, b)
	}
}

func TestComputeChartID_DifferentInputs(t *testing.T) {
	base := ComputeChartID(1756500000000, samplePositions())

	// Different observation time should produce a different hash.
	diffTime := ComputeChartID(1756500001000, samplePositions())
	if base == diffTime {
		t.Error("Different observed time should produce different hash")
	}

	// Different longitude should produce a different hash.
	shifted := samplePositions()
	shifted[0].LongitudeDegrees += 0.001
	diffLon := ComputeChartID(1756500000000, shifted)
	if base == diffLon {
		t.Error("Different longitude should produce different hash")
	}

	// Retrograde flag participates in the hash.
	direct := samplePositions()
	direct[2].IsRetrograde = false
	diffRetro := ComputeChartID(1756500000000, direct)
	if base == diffRetro {
		t.Error("Different retrograde flag should produce different hash")
	}
}

func TestShareCode(t *testing.T) {
	chartID := ComputeChartID(1756500000000, samplePositions())

	code := ShareCode(chartID)
	if code == "" {
		t.Fatal("ShareCode() returned empty string")
	}
	if len(code) < 8 || len(code) > 12 {
		t.Errorf("ShareCode() length = %d, want a short code", len(code))
	}

	// Deterministic.
	if code != ShareCode(chartID) {
		t.Error("ShareCode() not deterministic")
	}

	// Distinct charts get distinct codes.
	other := ShareCode(ComputeChartID(1756500001000, samplePositions()))
	if code == other {
		t.Error("Different chart IDs should produce different share codes")
	}
}
