package controllers_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"huile-de-sfax/controllers"
	"huile-de-sfax/models"
	"huile-de-sfax/store"
)

func TestConcurrentSeedingInsertsCatalogOnce(t *testing.T) {
	database := store.NewMemoryDatabase()
	seeder := controllers.NewSeeder(database, zap.NewNop())

	const callers = 8
	results := make([]controllers.SeedResult, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := seeder.SeedIfEmpty(context.Background())
			assert.NoError(t, err)
			results[i] = result
		}()
	}
	wg.Wait()

	var seededOil, seededKitchen int
	for _, result := range results {
		seededOil += result.OliveOil
		seededKitchen += result.Kitchenware
	}
	require.Equal(t, len(models.DefaultOliveOilProducts()), seededOil)
	require.Equal(t, len(models.DefaultKitchenwareProducts()), seededKitchen)

	count, err := database.Collection(store.OliveOilProducts).CountDocuments(context.Background(), bson.M{})
	require.NoError(t, err)
	require.EqualValues(t, len(models.DefaultOliveOilProducts()), count)
}
