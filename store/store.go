// Package store is the persistence layer used by the controllers. It exposes the
// handful of single-document operations the API needs so handlers can be exercised
// against MongoDB in production and an in-memory collection in tests.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names.
const (
	ContactMessages     = "contact_messages"
	OliveOilProducts    = "olive_oil_products"
	KitchenwareProducts = "kitchenware_products"
	SiteSettings        = "site_settings"
)

// MaxResults caps every list query.
const MaxResults = 1000

// ErrNotFound is returned by FindOne when no document matches the filter.
var ErrNotFound = errors.New("document not found")

// SortOrder is the direction of a sort key.
type SortOrder int

const (
	Ascending  SortOrder = 1
	Descending SortOrder = -1
)

// FindOptions controls ordering and size of a Find query. A zero Limit means MaxResults.
type FindOptions struct {
	SortField string
	SortOrder SortOrder
	Limit     int64
}

func (o FindOptions) limit() int64 {
	if o.Limit <= 0 || o.Limit > MaxResults {
		return MaxResults
	}
	return o.Limit
}

// Collection is a document collection. Filters are equality matches on top-level fields.
type Collection interface {
	InsertOne(ctx context.Context, document any) error
	InsertMany(ctx context.Context, documents []any) error
	// FindOne decodes the first matching document into result.
	FindOne(ctx context.Context, filter bson.M, result any) error
	// Find decodes every matching document into results, which must be a pointer to a slice.
	Find(ctx context.Context, filter bson.M, opts FindOptions, results any) error
	// UpdateOne applies set to the first matching document and returns the matched count.
	UpdateOne(ctx context.Context, filter bson.M, set bson.M) (int64, error)
	// UpsertOne applies set to the first matching document, creating it when none
	// matches. A created document starts from onInsert (may be nil), then filter, then set.
	UpsertOne(ctx context.Context, filter bson.M, set bson.M, onInsert any) error
	// DeleteOne removes the first matching document and returns the deleted count.
	DeleteOne(ctx context.Context, filter bson.M) (int64, error)
	CountDocuments(ctx context.Context, filter bson.M) (int64, error)
}

// Database hands out collections by name.
type Database interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

func toDocument(value any) (bson.M, error) {
	raw, err := bson.Marshal(value)
	if err != nil {
		return nil, err
	}
	var document bson.M
	if err := bson.Unmarshal(raw, &document); err != nil {
		return nil, err
	}
	return document, nil
}

// insertDefaults encodes onInsert without the keys already fixed by filter or set.
func insertDefaults(filter, set bson.M, onInsert any) (bson.M, error) {
	if onInsert == nil {
		return bson.M{}, nil
	}
	document, err := toDocument(onInsert)
	if err != nil {
		return nil, err
	}
	for key := range filter {
		delete(document, key)
	}
	for key := range set {
		delete(document, key)
	}
	return document, nil
}
