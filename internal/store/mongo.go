package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikita1503agarwal/storefront-backend/internal/config"
)

var _ Store = (*Mongo)(nil)

// Mongo is the document store backed by MongoDB.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo connects to MongoDB and pings it before returning.
func NewMongo(ctx context.Context, cfg config.Store) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	name := cfg.Name
	if name == "" {
		name = "storefront"
	}

	return &Mongo{
		client: client,
		db:     client.Database(name),
	}, nil
}

func (m *Mongo) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", fmt.Errorf("insert one: %w", err)
	}

	return idToString(res.InsertedID), nil
}

func (m *Mongo) InsertMany(ctx context.Context, collection string, docs []Document) error {
	rows := make([]any, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, bson.M(doc))
	}

	if _, err := m.db.Collection(collection).InsertMany(ctx, rows); err != nil {
		return fmt.Errorf("insert many: %w", err)
	}

	return nil
}

func (m *Mongo) FindAll(ctx context.Context, collection string) ([]Document, error) {
	cur, err := m.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}

	var rows []bson.M
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc := Document(row)
		if id, ok := doc["_id"]; ok {
			doc["_id"] = idToString(id)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func (m *Mongo) Count(ctx context.Context, collection string) (int64, error) {
	count, err := m.db.Collection(collection).CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}

	return count, nil
}

func (m *Mongo) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collection names: %w", err)
	}

	return names, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func idToString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
