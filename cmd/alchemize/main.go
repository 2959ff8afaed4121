// Package main provides a one-shot CLI: compute a chart for a moment in time
// and print it as Markdown, JSON, or CSV. Positions come from a JSON file,
// an ephemeris endpoint, or the built-in mean-motion approximation.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"alchm-core/internal/domain"
	"alchm-core/internal/ephemeris"
	"alchm-core/internal/pipeline"
	"alchm-core/internal/refdata"
	"alchm-core/internal/reporting"
)

func main() {
	atFlag := flag.String("at", "", "Observation time, RFC3339 (default: now)")
	positionsFile := flag.String("positions-file", "", "JSON file with explicit planetary positions")
	ephemerisEndpoint := flag.String("ephemeris-endpoint", os.Getenv("EPHEMERIS_ENDPOINT"), "Ephemeris HTTP endpoint")
	format := flag.String("format", "markdown", "Output format: markdown, json, csv")
	limit := flag.Int("limit", 10, "Max entries per recommendation list")
	flag.Parse()

	ctx := context.Background()

	at := time.Now().UTC()
	if *atFlag != "" {
		parsed, err := time.Parse(time.RFC3339, *atFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid --at: %v\n", err)
			os.Exit(1)
		}
		at = parsed.UTC()
	}

	tables, err := refdata.Tables()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading reference tables: %v\n", err)
		os.Exit(1)
	}

	var result *pipeline.Result
	switch {
	case *positionsFile != "":
		positions, err := loadPositions(*positionsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading positions: %v\n", err)
			os.Exit(1)
		}
		engine := pipeline.NewEngine(nil, "file").WithTables(tables).WithLimit(*limit)
		result, err = engine.AlchemizePositions(ctx, at, positions)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case *ephemerisEndpoint != "":
		engine := pipeline.NewEngine(ephemeris.NewHTTPClient(*ephemerisEndpoint), "ephemeris-http").
			WithTables(tables).WithLimit(*limit)
		result, err = engine.Alchemize(ctx, at)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		engine := pipeline.NewEngine(ephemeris.NewMeanMotionSource(), "stub").
			WithTables(tables).WithLimit(*limit)
		result, err = engine.Alchemize(ctx, at)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	report := reporting.Build(result)

	switch *format {
	case "markdown":
		fmt.Print(reporting.RenderMarkdown(report))
	case "csv":
		fmt.Print(reporting.RenderRecommendationsCSV(report))
	case "json":
		if err := printJSON(result); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want markdown, json, or csv)\n", *format)
		os.Exit(1)
	}
}

// positionEntry is one body in a positions file.
type positionEntry struct {
	Planet     string  `json:"planet"`
	Longitude  float64 `json:"longitude"`
	Retrograde bool    `json:"retrograde"`
}

func loadPositions(path string) ([]domain.PlanetaryPosition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []positionEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	positions := make([]domain.PlanetaryPosition, 0, len(entries))
	for _, e := range entries {
		planet := domain.Planet(e.Planet)
		if !planet.IsValid() {
			return nil, fmt.Errorf("unknown body %q in %s", e.Planet, path)
		}
		positions = append(positions, domain.PlanetaryPosition{
			Planet:           planet,
			LongitudeDegrees: e.Longitude,
			IsRetrograde:     e.Retrograde,
		})
	}
	return positions, nil
}

// chartJSON is the CLI's JSON output shape. Monica is null when undefined;
// NaN does not survive JSON encoding.
type chartJSON struct {
	ChartID     string             `json:"chart_id"`
	ShareCode   string             `json:"share_code"`
	ObservedAt  string             `json:"observed_at"`
	Source      string             `json:"source"`
	PlanetCount int                `json:"planet_count"`
	Balance     map[string]float64 `json:"balance"`
	Properties  map[string]float64 `json:"properties"`
	Thermo      thermoJSON         `json:"thermodynamics"`
	Ingredients []candidateJSON    `json:"ingredients"`
	Cuisines    []candidateJSON    `json:"cuisines"`
	Methods     []candidateJSON    `json:"cooking_methods"`
}

type thermoJSON struct {
	Heat        float64  `json:"heat"`
	Entropy     float64  `json:"entropy"`
	Reactivity  float64  `json:"reactivity"`
	GregsEnergy float64  `json:"gregs_energy"`
	Kalchm      float64  `json:"kalchm"`
	Monica      *float64 `json:"monica"`
}

type candidateJSON struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func printJSON(result *pipeline.Result) error {
	var monica *float64
	if !math.IsNaN(result.Chart.Thermo.Monica) {
		monica = &result.Chart.Thermo.Monica
	}

	out := chartJSON{
		ChartID:     result.Chart.ChartID,
		ShareCode:   result.Chart.ShareCode,
		ObservedAt:  time.UnixMilli(result.Chart.ObservedAt).UTC().Format(time.RFC3339),
		Source:      result.Chart.SourceKind,
		PlanetCount: result.Chart.PlanetCount,
		Balance: map[string]float64{
			"fire":  result.Chart.Balance.Fire,
			"water": result.Chart.Balance.Water,
			"earth": result.Chart.Balance.Earth,
			"air":   result.Chart.Balance.Air,
		},
		Properties: map[string]float64{
			"spirit":    result.Chart.Properties.Spirit,
			"essence":   result.Chart.Properties.Essence,
			"matter":    result.Chart.Properties.Matter,
			"substance": result.Chart.Properties.Substance,
		},
		Thermo: thermoJSON{
			Heat:        result.Chart.Thermo.Heat,
			Entropy:     result.Chart.Thermo.Entropy,
			Reactivity:  result.Chart.Thermo.Reactivity,
			GregsEnergy: result.Chart.Thermo.GregsEnergy,
			Kalchm:      result.Chart.Thermo.Kalchm,
			Monica:      monica,
		},
		Ingredients: candidates(result.Recommendations.Ingredients),
		Cuisines:    candidates(result.Recommendations.Cuisines),
		Methods:     candidates(result.Recommendations.CookingMethods),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func candidates(scored []domain.ScoredCandidate) []candidateJSON {
	out := make([]candidateJSON, 0, len(scored))
	for _, c := range scored {
		out = append(out, candidateJSON{ID: c.ID, Name: c.Name, Score: c.Score})
	}
	return out
}
