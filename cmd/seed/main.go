// Package main loads the embedded reference tables into PostgreSQL.
// Safe to re-run: rows that already exist are skipped.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"alchm-core/internal/refdata"
	"alchm-core/internal/storage"
	"alchm-core/internal/storage/migrations"
	pgstore "alchm-core/internal/storage/postgres"
)

func main() {
	postgresDSN := flag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL connection string")
	flag.Parse()

	if *postgresDSN == "" {
		fmt.Fprintln(os.Stderr, "Error: --postgres-dsn is required")
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pgstore.NewPool(ctx, *postgresDSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to postgres: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Error running migrations: %v\n", err)
		os.Exit(1)
	}

	if err := seed(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Seed complete")
}

func seed(ctx context.Context, pool *pgstore.Pool) error {
	ingredients, err := refdata.Ingredients()
	if err != nil {
		return fmt.Errorf("load ingredients: %w", err)
	}
	cuisines, err := refdata.Cuisines()
	if err != nil {
		return fmt.Errorf("load cuisines: %w", err)
	}
	methods, err := refdata.CookingMethods()
	if err != nil {
		return fmt.Errorf("load cooking methods: %w", err)
	}

	ingredientStore := pgstore.NewIngredientStore(pool)
	inserted := 0
	for i := range ingredients {
		err := ingredientStore.Insert(ctx, &ingredients[i])
		if errors.Is(err, storage.ErrDuplicateKey) {
			continue
		}
		if err != nil {
			return fmt.Errorf("insert ingredient %s: %w", ingredients[i].IngredientID, err)
		}
		inserted++
	}
	fmt.Printf("Ingredients: %d inserted, %d skipped\n", inserted, len(ingredients)-inserted)

	cuisineStore := pgstore.NewCuisineStore(pool)
	inserted = 0
	for i := range cuisines {
		err := cuisineStore.Insert(ctx, &cuisines[i])
		if errors.Is(err, storage.ErrDuplicateKey) {
			continue
		}
		if err != nil {
			return fmt.Errorf("insert cuisine %s: %w", cuisines[i].CuisineID, err)
		}
		inserted++
	}
	fmt.Printf("Cuisines: %d inserted, %d skipped\n", inserted, len(cuisines)-inserted)

	methodStore := pgstore.NewCookingMethodStore(pool)
	inserted = 0
	for i := range methods {
		err := methodStore.Insert(ctx, &methods[i])
		if errors.Is(err, storage.ErrDuplicateKey) {
			continue
		}
		if err != nil {
			return fmt.Errorf("insert cooking method %s: %w", methods[i].MethodID, err)
		}
		inserted++
	}
	fmt.Printf("Cooking methods: %d inserted, %d skipped\n", inserted, len(methods)-inserted)

	return nil
}
