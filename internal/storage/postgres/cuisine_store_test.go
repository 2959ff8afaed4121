package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alchm-core/internal/domain"
	"alchm-core/internal/storage"
)

func TestCuisineStore_InsertAndGet(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewCuisineStore(pool)
	ctx := context.Background()

	profile := &domain.CuisineProfile{
		CuisineID:  "thai",
		Name:       "Thai",
		Affinity:   domain.ElementalAffinity{Fire: 0.5, Water: 0.2, Earth: 0.15, Air: 0.15},
		Signatures: []string{"chili", "lemongrass"},
	}

	require.NoError(t, store.Insert(ctx, profile))

	retrieved, err := store.GetByID(ctx, "thai")
	require.NoError(t, err)
	assert.Equal(t, profile.Name, retrieved.Name)
	assert.Equal(t, profile.Affinity, retrieved.Affinity)
	assert.Equal(t, profile.Signatures, retrieved.Signatures)

	err = store.Insert(ctx, profile)
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestCuisineStore_GetAllOrdered(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewCuisineStore(pool)
	ctx := context.Background()

	profiles := []*domain.CuisineProfile{
		{CuisineID: "thai", Name: "Thai"},
		{CuisineID: "greek", Name: "Greek"},
		{CuisineID: "japanese", Name: "Japanese"},
	}
	require.NoError(t, store.InsertBulk(ctx, profiles))

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "greek", all[0].CuisineID)
	assert.Equal(t, "japanese", all[1].CuisineID)
	assert.Equal(t, "thai", all[2].CuisineID)
}

func TestCookingMethodStore_InsertAndGet(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewCookingMethodStore(pool)
	ctx := context.Background()

	profile := &domain.CookingMethodProfile{
		MethodID:     "grilling",
		Name:         "Grilling",
		Affinity:     domain.ElementalAffinity{Fire: 0.7, Water: 0.05, Earth: 0.15, Air: 0.1},
		RulingPlanet: domain.PlanetMars,
	}

	require.NoError(t, store.Insert(ctx, profile))

	retrieved, err := store.GetByID(ctx, "grilling")
	require.NoError(t, err)
	assert.Equal(t, profile.Name, retrieved.Name)
	assert.Equal(t, profile.Affinity, retrieved.Affinity)
	assert.Equal(t, profile.RulingPlanet, retrieved.RulingPlanet)

	err = store.Insert(ctx, profile)
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	_, err = store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
