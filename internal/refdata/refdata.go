// Package refdata embeds the built-in culinary reference tables. The JSON
// files are the canonical seed data; deployments that want live tables load
// the same records into PostgreSQL via cmd/seed.
package refdata

import (
	"embed"
	"encoding/json"
	"fmt"

	"alchm-core/internal/domain"
	"alchm-core/internal/recommend"
)

//go:embed data/*.json
var dataFS embed.FS

type affinityJSON struct {
	Fire  float64 `json:"fire"`
	Water float64 `json:"water"`
	Earth float64 `json:"earth"`
	Air   float64 `json:"air"`
}

func (a affinityJSON) toDomain() domain.ElementalAffinity {
	return domain.ElementalAffinity{Fire: a.Fire, Water: a.Water, Earth: a.Earth, Air: a.Air}
}

type ingredientJSON struct {
	IngredientID string       `json:"ingredient_id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Affinity     affinityJSON `json:"affinity"`
	RulingPlanet string       `json:"ruling_planet"`
	Seasons      []string     `json:"seasons"`
	LunarTag     string       `json:"lunar_tag"`
}

type cuisineJSON struct {
	CuisineID  string       `json:"cuisine_id"`
	Name       string       `json:"name"`
	Affinity   affinityJSON `json:"affinity"`
	Signatures []string     `json:"signatures"`
}

type cookingMethodJSON struct {
	MethodID     string       `json:"method_id"`
	Name         string       `json:"name"`
	Affinity     affinityJSON `json:"affinity"`
	RulingPlanet string       `json:"ruling_planet"`
}

// Ingredients decodes the embedded ingredient table.
func Ingredients() ([]domain.IngredientProfile, error) {
	var raw []ingredientJSON
	if err := load("data/ingredients.json", &raw); err != nil {
		return nil, err
	}

	profiles := make([]domain.IngredientProfile, 0, len(raw))
	for _, r := range raw {
		profiles = append(profiles, domain.IngredientProfile{
			IngredientID: r.IngredientID,
			Name:         r.Name,
			Category:     r.Category,
			Affinity:     r.Affinity.toDomain(),
			RulingPlanet: domain.Planet(r.RulingPlanet),
			Seasons:      r.Seasons,
			LunarTag:     r.LunarTag,
		})
	}
	return profiles, nil
}

// Cuisines decodes the embedded cuisine table.
func Cuisines() ([]domain.CuisineProfile, error) {
	var raw []cuisineJSON
	if err := load("data/cuisines.json", &raw); err != nil {
		return nil, err
	}

	profiles := make([]domain.CuisineProfile, 0, len(raw))
	for _, r := range raw {
		profiles = append(profiles, domain.CuisineProfile{
			CuisineID:  r.CuisineID,
			Name:       r.Name,
			Affinity:   r.Affinity.toDomain(),
			Signatures: r.Signatures,
		})
	}
	return profiles, nil
}

// CookingMethods decodes the embedded cooking method table.
func CookingMethods() ([]domain.CookingMethodProfile, error) {
	var raw []cookingMethodJSON
	if err := load("data/cooking_methods.json", &raw); err != nil {
		return nil, err
	}

	profiles := make([]domain.CookingMethodProfile, 0, len(raw))
	for _, r := range raw {
		profiles = append(profiles, domain.CookingMethodProfile{
			MethodID:     r.MethodID,
			Name:         r.Name,
			Affinity:     r.Affinity.toDomain(),
			RulingPlanet: domain.Planet(r.RulingPlanet),
		})
	}
	return profiles, nil
}

// Tables decodes all three embedded tables into the scorer's input shape.
func Tables() (recommend.Tables, error) {
	ingredients, err := Ingredients()
	if err != nil {
		return recommend.Tables{}, err
	}
	cuisines, err := Cuisines()
	if err != nil {
		return recommend.Tables{}, err
	}
	methods, err := CookingMethods()
	if err != nil {
		return recommend.Tables{}, err
	}
	return recommend.Tables{
		Ingredients:    ingredients,
		Cuisines:       cuisines,
		CookingMethods: methods,
	}, nil
}

func load(path string, dst any) error {
	data, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read embedded %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
