// Package store provides a collection-scoped document store abstraction.
// The store does not validate documents; callers are expected to have done
// that before anything reaches it.
package store

import "context"

// Document is a schemaless document as persisted in a collection. Stored
// documents carry their assigned identity under the "_id" key when read back.
type Document map[string]any

// Store is the document store contract. A process may run without a store at
// all; callers hold a nil Store in that case and must check it before use.
type Store interface {
	// Insert persists a single document and returns its assigned id.
	Insert(ctx context.Context, collection string, doc Document) (string, error)
	// InsertMany persists documents as a single batch.
	InsertMany(ctx context.Context, collection string, docs []Document) error
	// FindAll returns every document in the collection in store-default order.
	FindAll(ctx context.Context, collection string) ([]Document, error)
	// Count returns the number of documents in the collection.
	Count(ctx context.Context, collection string) (int64, error)
	// ListCollectionNames enumerates collection names.
	ListCollectionNames(ctx context.Context) ([]string, error)
	// Ping probes connectivity.
	Ping(ctx context.Context) error
	// Close releases the underlying connection.
	Close(ctx context.Context) error
}
