package store

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
)

// MemoryDatabase is an in-process Database. Documents go through the same bson
// encoding as the Mongo driver, so struct tags behave identically.
type MemoryDatabase struct {
	mu          sync.Mutex
	collections map[string]*memoryCollection
	failure     error
}

// NewMemoryDatabase returns an empty MemoryDatabase.
func NewMemoryDatabase() *MemoryDatabase {
	return &MemoryDatabase{collections: map[string]*memoryCollection{}}
}

// Fail makes every subsequent operation return err. Passing nil restores normal behavior.
func (d *MemoryDatabase) Fail(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failure = err
}

func (d *MemoryDatabase) err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.failure
}

func (d *MemoryDatabase) Collection(name string) Collection {
	d.mu.Lock()
	defer d.mu.Unlock()
	collection, ok := d.collections[name]
	if !ok {
		collection = &memoryCollection{name: name, database: d}
		d.collections[name] = collection
	}
	return collection
}

func (d *MemoryDatabase) Ping(context.Context) error {
	return d.err()
}

func (d *MemoryDatabase) Close(context.Context) error {
	return nil
}

type memoryCollection struct {
	mu        sync.RWMutex
	name      string
	database  *MemoryDatabase
	documents []bson.M
}

func fromDocument(document bson.M, result any) error {
	raw, err := bson.Marshal(document)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, result)
}

func matches(document, filter bson.M) bool {
	for key, want := range filter {
		got, ok := document[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func compareValues(a, b any) int {
	switch left := a.(type) {
	case string:
		right, _ := b.(string)
		return cmp.Compare(left, right)
	case bool:
		right, _ := b.(bool)
		switch {
		case left == right:
			return 0
		case !left:
			return -1
		default:
			return 1
		}
	}
	return cmp.Compare(toFloat(a), toFloat(b))
}

func toFloat(value any) float64 {
	switch number := value.(type) {
	case int32:
		return float64(number)
	case int64:
		return float64(number)
	case float64:
		return number
	}
	return 0
}

func (c *memoryCollection) normalizedFilter(filter bson.M) (bson.M, error) {
	if err := c.database.err(); err != nil {
		return nil, err
	}
	if filter == nil {
		return bson.M{}, nil
	}
	normalized, err := toDocument(filter)
	if err != nil {
		return nil, fmt.Errorf("encode filter for %s: %w", c.name, err)
	}
	return normalized, nil
}

func (c *memoryCollection) InsertOne(ctx context.Context, document any) error {
	return c.InsertMany(ctx, []any{document})
}

func (c *memoryCollection) InsertMany(_ context.Context, documents []any) error {
	if err := c.database.err(); err != nil {
		return err
	}
	encoded := make([]bson.M, 0, len(documents))
	for _, document := range documents {
		converted, err := toDocument(document)
		if err != nil {
			return fmt.Errorf("insert into %s: %w", c.name, err)
		}
		encoded = append(encoded, converted)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.documents = append(c.documents, encoded...)
	return nil
}

func (c *memoryCollection) FindOne(_ context.Context, filter bson.M, result any) error {
	normalized, err := c.normalizedFilter(filter)
	if err != nil {
		return err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, document := range c.documents {
		if matches(document, normalized) {
			return fromDocument(document, result)
		}
	}
	return ErrNotFound
}

func (c *memoryCollection) Find(_ context.Context, filter bson.M, opts FindOptions, results any) error {
	normalized, err := c.normalizedFilter(filter)
	if err != nil {
		return err
	}

	target := reflect.ValueOf(results)
	if target.Kind() != reflect.Pointer || target.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("find in %s: results must be a pointer to a slice", c.name)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	var found []bson.M
	for _, document := range c.documents {
		if matches(document, normalized) {
			found = append(found, document)
		}
	}

	if opts.SortField != "" {
		slices.SortStableFunc(found, func(a, b bson.M) int {
			return int(opts.SortOrder) * compareValues(a[opts.SortField], b[opts.SortField])
		})
	}
	if limit := opts.limit(); int64(len(found)) > limit {
		found = found[:limit]
	}

	slice := reflect.MakeSlice(target.Elem().Type(), 0, len(found))
	for _, document := range found {
		element := reflect.New(slice.Type().Elem())
		if err := fromDocument(document, element.Interface()); err != nil {
			return fmt.Errorf("decode %s: %w", c.name, err)
		}
		slice = reflect.Append(slice, element.Elem())
	}
	target.Elem().Set(slice)
	return nil
}

func (c *memoryCollection) UpdateOne(_ context.Context, filter bson.M, set bson.M) (int64, error) {
	normalized, err := c.normalizedFilter(filter)
	if err != nil {
		return 0, err
	}
	changes, err := toDocument(set)
	if err != nil {
		return 0, fmt.Errorf("update in %s: %w", c.name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if document := c.first(normalized); document != nil {
		maps.Copy(document, changes)
		return 1, nil
	}
	return 0, nil
}

func (c *memoryCollection) UpsertOne(_ context.Context, filter bson.M, set bson.M, onInsert any) error {
	normalized, err := c.normalizedFilter(filter)
	if err != nil {
		return err
	}
	changes, err := toDocument(set)
	if err != nil {
		return fmt.Errorf("upsert in %s: %w", c.name, err)
	}
	created, err := insertDefaults(normalized, changes, onInsert)
	if err != nil {
		return fmt.Errorf("upsert in %s: %w", c.name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if document := c.first(normalized); document != nil {
		maps.Copy(document, changes)
		return nil
	}
	maps.Copy(created, normalized)
	maps.Copy(created, changes)
	c.documents = append(c.documents, created)
	return nil
}

// first returns the first document matching filter. Callers hold c.mu.
func (c *memoryCollection) first(filter bson.M) bson.M {
	for _, document := range c.documents {
		if matches(document, filter) {
			return document
		}
	}
	return nil
}

func (c *memoryCollection) DeleteOne(_ context.Context, filter bson.M) (int64, error) {
	normalized, err := c.normalizedFilter(filter)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for index, document := range c.documents {
		if matches(document, normalized) {
			c.documents = slices.Delete(c.documents, index, index+1)
			return 1, nil
		}
	}
	return 0, nil
}

func (c *memoryCollection) CountDocuments(_ context.Context, filter bson.M) (int64, error) {
	normalized, err := c.normalizedFilter(filter)
	if err != nil {
		return 0, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	var count int64
	for _, document := range c.documents {
		if matches(document, normalized) {
			count++
		}
	}
	return count, nil
}
