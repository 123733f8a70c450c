package mongo

import (
	"context"
	"errors"
	"fmt"

	"mongosync/pkg/document"
	"mongosync/pkg/logger"
	"mongosync/pkg/storage/generic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const progressInterval = 500000

// MongoStorage implements the generic.Database interface for MongoDB
type MongoStorage struct {
	client   *mongo.Client
	uri      string
	database *mongo.Database
}

// New creates a new MongoDB storage instance
func New() *MongoStorage {
	return &MongoStorage{}
}

// NewFromClient wraps an already connected client
func NewFromClient(client *mongo.Client, dbName string) *MongoStorage {
	return &MongoStorage{
		client:   client,
		database: client.Database(dbName),
	}
}

// Setup connects to the MongoDB server behind uri and selects dbName
func (m *MongoStorage) Setup(ctx context.Context, uri string, dbName string) error {
	if uri == "" {
		return errors.New("mongodb uri not provided")
	}
	if dbName == "" {
		return errors.New("database name not provided")
	}

	logger.Info("Connecting to mongodb server...")
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Error("failed to create mongodb client: %v", err)
		return fmt.Errorf("failed to create mongodb client: %w", err)
	}

	// Test the connection
	if err := client.Ping(ctx, nil); err != nil {
		logger.Error("failed to ping mongodb: %v", err)
		_ = client.Disconnect(ctx)
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("successfully connected to mongodb")
	m.client = client
	m.uri = uri
	m.database = client.Database(dbName)
	return nil
}

// Close closes the MongoDB connection
func (m *MongoStorage) Close() error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(context.Background())
}

func (m *MongoStorage) Name() string {
	return m.database.Name()
}

func (m *MongoStorage) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := m.database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		logger.Error("failed to list collections of %s: %v", m.database.Name(), err)
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

func (m *MongoStorage) Collection(name string) generic.Collection {
	return &mongoCollection{collection: m.database.Collection(name)}
}

type mongoCollection struct {
	collection *mongo.Collection
}

// Find streams the whole collection without filter or limit
func (c *mongoCollection) Find(ctx context.Context, fn func(document.Document) error) error {
	cursor, err := c.collection.Find(ctx, bson.D{})
	if err != nil {
		logger.Error("failed to query documents of %s: %v", c.collection.Name(), err)
		return fmt.Errorf("failed to query documents: %w", err)
	}
	defer cursor.Close(ctx)

	var count int
	for cursor.Next(ctx) {
		var raw bson.D
		if err := cursor.Decode(&raw); err != nil {
			return fmt.Errorf("failed to decode document %d: %w", count, err)
		}
		doc, err := FromBSON(raw)
		if err != nil {
			return fmt.Errorf("failed to convert document %d: %w", count, err)
		}
		if err := fn(doc); err != nil {
			return err
		}

		count++
		if count%progressInterval == 0 {
			logger.Info("[ongoing] read %d documents from %s", count, c.collection.Name())
		}
	}

	if err := cursor.Err(); err != nil {
		logger.Error("cursor error on %s: %v", c.collection.Name(), err)
		return fmt.Errorf("cursor error: %w", err)
	}
	logger.Debug("read %d documents from %s", count, c.collection.Name())
	return nil
}

// InsertMany runs a single ordered insert for the whole batch. An empty batch is a no-op.
// When the insert stops on a write error, the documents before it are already stored
// and their count is returned along with the error.
func (c *mongoCollection) InsertMany(ctx context.Context, docs []document.Document) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}

	batch := make([]interface{}, len(docs))
	for i, doc := range docs {
		batch[i] = ToBSON(doc)
	}

	res, err := c.collection.InsertMany(ctx, batch)
	if err != nil {
		return insertedBefore(err), fmt.Errorf("failed to insert into %s: %w", c.collection.Name(), err)
	}
	return len(res.InsertedIDs), nil
}

// insertedBefore is the number of documents an ordered insert stored before its first write error
func insertedBefore(err error) int {
	var bulkErr mongo.BulkWriteException
	if !errors.As(err, &bulkErr) || len(bulkErr.WriteErrors) == 0 {
		return 0
	}
	first := bulkErr.WriteErrors[0].Index
	for _, we := range bulkErr.WriteErrors[1:] {
		if we.Index < first {
			first = we.Index
		}
	}
	return first
}
