package alchemy

import (
	"math"
	"testing"

	"alchm-core/internal/domain"
)

func TestCalculateProperties_PairwiseAverages(t *testing.T) {
	balance := domain.ElementalBalance{Fire: 40, Water: 20, Earth: 30, Air: 10}

	props := CalculateProperties(balance)
	if props.Spirit != 25 { // (40+10)/2
		t.Errorf("Spirit: got %v, want 25", props.Spirit)
	}
	if props.Essence != 30 { // (40+20)/2
		t.Errorf("Essence: got %v, want 30", props.Essence)
	}
	if props.Matter != 25 { // (30+20)/2
		t.Errorf("Matter: got %v, want 25", props.Matter)
	}
	if props.Substance != 20 { // (30+10)/2
		t.Errorf("Substance: got %v, want 20", props.Substance)
	}
}

func TestCalculateProperties_HalfUpRounding(t *testing.T) {
	// (33+20)/2 = 26.5 rounds up to 27.
	balance := domain.ElementalBalance{Fire: 33, Water: 20, Earth: 25, Air: 22}
	props := CalculateProperties(balance)
	if props.Essence != 27 {
		t.Errorf("Essence: got %v, want 27", props.Essence)
	}
}

// For any balance with components in [0,100], every output lies in [0,100].
func TestCalculateProperties_RangeInvariant(t *testing.T) {
	balances := []domain.ElementalBalance{
		{Fire: 100, Water: 0, Earth: 0, Air: 0},
		{Fire: 0, Water: 100, Earth: 0, Air: 0},
		{Fire: 0, Water: 0, Earth: 0, Air: 100},
		{Fire: 25, Water: 25, Earth: 25, Air: 25},
		{Fire: 63, Water: 12, Earth: 17, Air: 8},
		{Fire: 0, Water: 0, Earth: 0, Air: 0},
	}

	for _, b := range balances {
		props := CalculateProperties(b)
		for name, v := range map[string]float64{
			"Spirit": props.Spirit, "Essence": props.Essence,
			"Matter": props.Matter, "Substance": props.Substance,
		} {
			if v < 0 || v > 100 {
				t.Errorf("balance %+v: %s = %v out of [0,100]", b, name, v)
			}
		}
	}
}

func TestFractionProperties_Unrounded(t *testing.T) {
	fracs := domain.ElementalFractions{Fire: 0.4, Water: 0.2, Earth: 0.3, Air: 0.1}
	props := FractionProperties(fracs)
	if math.Abs(props.Spirit-0.25) > 1e-12 {
		t.Errorf("Spirit: got %v, want 0.25", props.Spirit)
	}
	if math.Abs(props.Essence-0.3) > 1e-12 {
		t.Errorf("Essence: got %v, want 0.3", props.Essence)
	}
	if math.Abs(props.Matter-0.25) > 1e-12 {
		t.Errorf("Matter: got %v, want 0.25", props.Matter)
	}
	if math.Abs(props.Substance-0.2) > 1e-12 {
		t.Errorf("Substance: got %v, want 0.2", props.Substance)
	}
}
