package controllers

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"huile-de-sfax/models"
	"huile-de-sfax/store"
	"huile-de-sfax/utils"
)

// SeedResult reports how many default products were inserted per catalog.
type SeedResult struct {
	OliveOil    int `json:"olive_oil"`
	Kitchenware int `json:"kitchenware"`
}

// Seeder persists the built-in catalogs into empty product collections.
type Seeder struct {
	// mu makes the count-then-insert in SeedIfEmpty atomic for this process.
	mu          sync.Mutex
	oliveOil    store.Collection
	kitchenware store.Collection
	logger      *zap.Logger
}

func NewSeeder(db store.Database, logger *zap.Logger) *Seeder {
	return &Seeder{
		oliveOil:    db.Collection(store.OliveOilProducts),
		kitchenware: db.Collection(store.KitchenwareProducts),
		logger:      logger,
	}
}

// SeedIfEmpty fills each product collection that has no document yet. Collections
// that already hold data are left alone, so repeated calls are no-ops. Concurrent
// calls on one Seeder run one at a time; separate processes are not coordinated.
func (s *Seeder) SeedIfEmpty(ctx context.Context) (SeedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result SeedResult
	var err error

	result.OliveOil, err = seedCollection(ctx, s.oliveOil, models.DefaultOliveOilProducts())
	if err != nil {
		return result, fmt.Errorf("seed %s: %w", store.OliveOilProducts, err)
	}
	result.Kitchenware, err = seedCollection(ctx, s.kitchenware, models.DefaultKitchenwareProducts())
	if err != nil {
		return result, fmt.Errorf("seed %s: %w", store.KitchenwareProducts, err)
	}

	s.logger.Info("catalog seed finished",
		zap.Int("olive_oil", result.OliveOil),
		zap.Int("kitchenware", result.Kitchenware),
	)
	return result, nil
}

func seedCollection[P interface{ WithID(string) P }](ctx context.Context, collection store.Collection, defaults []P) (int, error) {
	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	documents := make([]any, 0, len(defaults))
	for _, product := range defaults {
		documents = append(documents, product.WithID(utils.NewID()))
	}
	if err := collection.InsertMany(ctx, documents); err != nil {
		return 0, err
	}
	return len(documents), nil
}
