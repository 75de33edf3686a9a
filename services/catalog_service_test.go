package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedCatalogIsIdempotent(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, SeedCatalog())
	require.NoError(t, SeedCatalog())

	foods, err := ListFoods()
	require.NoError(t, err)
	require.Len(t, foods, 15)
	require.Equal(t, "Oatmeal", foods[0].Name)
	require.Equal(t, 150.0, foods[0].Calories)
}

func TestSearchFoodsCaseInsensitive(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, SeedCatalog())

	foods, err := SearchFoods("OAT")
	require.NoError(t, err)
	require.Len(t, foods, 1)
	require.Equal(t, "Oatmeal", foods[0].Name)

	foods, err = SearchFoods("protein")
	require.NoError(t, err)
	require.Len(t, foods, 2) // Protein Shake, Whey Protein
}

func TestSearchFoodsNoMatches(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, SeedCatalog())

	foods, err := SearchFoods("zzz")
	require.NoError(t, err)
	require.NotNil(t, foods)
	require.Empty(t, foods)
}

func TestSearchFoodsBlankQueryReturnsAll(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, SeedCatalog())

	foods, err := SearchFoods("   ")
	require.NoError(t, err)
	require.Len(t, foods, 15)
}

func TestFoodByIDUnknown(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, SeedCatalog())

	_, err := FoodByID(999)
	require.Error(t, err)
}
