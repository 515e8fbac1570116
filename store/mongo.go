package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Documents carry their own string id; the Mongo _id never leaves the store.
var hideObjectID = bson.M{"_id": 0}

// MongoDatabase is a Database backed by a MongoDB deployment.
type MongoDatabase struct {
	client   *mongo.Client
	database *mongo.Database
}

// ConnectMongo dials the deployment at uri and verifies it answers a ping.
func ConnectMongo(ctx context.Context, uri, databaseName string) (*MongoDatabase, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoDatabase{
		client:   client,
		database: client.Database(databaseName),
	}, nil
}

// Collection returns the named collection.
func (d *MongoDatabase) Collection(name string) Collection {
	return &mongoCollection{collection: d.database.Collection(name)}
}

// Ping checks the primary is reachable.
func (d *MongoDatabase) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (d *MongoDatabase) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

type mongoCollection struct {
	collection *mongo.Collection
}

func (c *mongoCollection) InsertOne(ctx context.Context, document any) error {
	if _, err := c.collection.InsertOne(ctx, document); err != nil {
		return fmt.Errorf("insert into %s: %w", c.collection.Name(), err)
	}
	return nil
}

func (c *mongoCollection) InsertMany(ctx context.Context, documents []any) error {
	if len(documents) == 0 {
		return nil
	}
	if _, err := c.collection.InsertMany(ctx, documents); err != nil {
		return fmt.Errorf("insert many into %s: %w", c.collection.Name(), err)
	}
	return nil
}

func (c *mongoCollection) FindOne(ctx context.Context, filter bson.M, result any) error {
	opts := options.FindOne().SetProjection(hideObjectID)
	err := c.collection.FindOne(ctx, filter, opts).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find one in %s: %w", c.collection.Name(), err)
	}
	return nil
}

func (c *mongoCollection) Find(ctx context.Context, filter bson.M, opts FindOptions, results any) error {
	findOptions := options.Find().
		SetProjection(hideObjectID).
		SetLimit(opts.limit())
	if opts.SortField != "" {
		findOptions.SetSort(bson.D{{Key: opts.SortField, Value: int(opts.SortOrder)}})
	}

	cursor, err := c.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return fmt.Errorf("find in %s: %w", c.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("decode %s: %w", c.collection.Name(), err)
	}
	return nil
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter bson.M, set bson.M) (int64, error) {
	result, err := c.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("update in %s: %w", c.collection.Name(), err)
	}
	return result.MatchedCount, nil
}

func (c *mongoCollection) UpsertOne(ctx context.Context, filter bson.M, set bson.M, onInsert any) error {
	defaults, err := insertDefaults(filter, set, onInsert)
	if err != nil {
		return fmt.Errorf("upsert in %s: %w", c.collection.Name(), err)
	}
	update := bson.M{"$set": set}
	if len(defaults) > 0 {
		update["$setOnInsert"] = defaults
	}

	opts := options.Update().SetUpsert(true)
	if _, err := c.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("upsert in %s: %w", c.collection.Name(), err)
	}
	return nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	result, err := c.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", c.collection.Name(), err)
	}
	return result.DeletedCount, nil
}

func (c *mongoCollection) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	count, err := c.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.collection.Name(), err)
	}
	return count, nil
}
