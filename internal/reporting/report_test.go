package reporting

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"alchm-core/internal/domain"
	"alchm-core/internal/pipeline"
	"alchm-core/internal/recommend"
)

// fixedSource returns the same position set for every query.
type fixedSource struct {
	positions []domain.PlanetaryPosition
}

func (s *fixedSource) PositionsAt(_ context.Context, _ time.Time) ([]domain.PlanetaryPosition, error) {
	return s.positions, nil
}

func sampleResult(t *testing.T) *pipeline.Result {
	t.Helper()

	source := &fixedSource{positions: []domain.PlanetaryPosition{
		{Planet: domain.PlanetSun, LongitudeDegrees: 125.0},  // Leo
		{Planet: domain.PlanetMoon, LongitudeDegrees: 95.0},  // Cancer
		{Planet: domain.PlanetMars, LongitudeDegrees: 200.0}, // Libra
	}}

	tables := recommend.Tables{
		Ingredients: []domain.IngredientProfile{
			{
				IngredientID: "garlic",
				Name:         "Garlic",
				Affinity:     domain.ElementalAffinity{Fire: 0.7, Water: 0.1, Earth: 0.1, Air: 0.1},
				RulingPlanet: domain.PlanetMars,
			},
		},
		Cuisines: []domain.CuisineProfile{
			{
				CuisineID: "thai",
				Name:      "Thai",
				Affinity:  domain.ElementalAffinity{Fire: 0.4, Water: 0.3, Earth: 0.1, Air: 0.2},
			},
		},
	}

	engine := pipeline.NewEngine(source, "stub").WithTables(tables)
	result, err := engine.Alchemize(context.Background(), time.Date(2026, time.May, 10, 14, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Alchemize: %v", err)
	}
	return result
}

func TestBuild(t *testing.T) {
	result := sampleResult(t)
	report := Build(result)

	if report.ChartID != result.Chart.ChartID {
		t.Errorf("chart ID mismatch")
	}

	if len(report.Placements) != 3 {
		t.Fatalf("expected 3 placements, got %d", len(report.Placements))
	}

	// Traditional body order: Sun before Moon before Mars
	if report.Placements[0].Planet != "Sun" || report.Placements[0].Sign != "Leo" {
		t.Errorf("expected Sun in Leo first, got %s in %s",
			report.Placements[0].Planet, report.Placements[0].Sign)
	}
	if report.Placements[0].Dignity != "Domicile" {
		t.Errorf("expected Sun in Leo domicile, got %s", report.Placements[0].Dignity)
	}

	if len(report.Ingredients) != 1 || report.Ingredients[0].Rank != 1 {
		t.Errorf("expected one ranked ingredient, got %+v", report.Ingredients)
	}
	if len(report.CookingMethods) != 0 {
		t.Errorf("expected no cooking methods, got %d", len(report.CookingMethods))
	}
}

func TestRenderMarkdown(t *testing.T) {
	report := Build(sampleResult(t))
	md := RenderMarkdown(report)

	for _, want := range []string{
		"# Alchemical Chart",
		"## Celestial Context",
		"## Placements",
		"| Sun | Leo |",
		"## Elemental Balance",
		"## Thermodynamics",
		"## Ingredients",
		"| 1 | Garlic |",
		"## Cooking Methods",
		"No candidates available.",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestRenderMarkdown_UndefinedMonica(t *testing.T) {
	report := Build(sampleResult(t))
	report.Monica = math.NaN()

	md := RenderMarkdown(report)
	if !strings.Contains(md, "| Monica | undefined |") {
		t.Error("expected undefined Monica row")
	}
	if strings.Contains(md, "NaN") {
		t.Error("NaN must not leak into rendered output")
	}
}

func TestRenderRecommendationsCSV(t *testing.T) {
	report := Build(sampleResult(t))
	csv := RenderRecommendationsCSV(report)

	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if lines[0] != "kind,rank,id,name,score" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	// garlic + thai
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "ingredient,1,garlic,Garlic,") {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	if !strings.HasPrefix(lines[2], "cuisine,1,thai,Thai,") {
		t.Errorf("unexpected second row: %s", lines[2])
	}
}

func TestRenderTransitCSV(t *testing.T) {
	snapshots := []*domain.TransitSnapshot{
		{
			TimestampMs: 1700000000000,
			Fire:        0.5, Water: 0.2, Earth: 0.2, Air: 0.1,
			Heat: 0.02, Entropy: 0.3, Reactivity: 1.1, GregsEnergy: -0.31,
			Kalchm: 0.9, Monica: 1.5,
			SunSign: domain.SignAries, HourRuler: domain.PlanetMars,
		},
		{
			TimestampMs: 1700000060000,
			Monica:      math.NaN(),
			SunSign:     domain.SignAries, HourRuler: domain.PlanetSun,
		},
	}

	csv := RenderTransitCSV(snapshots)
	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "1.500000,Aries,Mars") {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	// Undefined Monica renders as an empty field
	if !strings.Contains(lines[2], ",,Aries,Sun") {
		t.Errorf("expected empty monica field, got: %s", lines[2])
	}
}
