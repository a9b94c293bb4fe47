package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
)

var _ Store = (*Memory)(nil)

// Memory is an in-process store used by tests. Documents are kept in
// insertion order per collection.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]Document)}
}

func (m *Memory) Insert(_ context.Context, collection string, doc Document) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.insert(collection, doc), nil
}

func (m *Memory) InsertMany(_ context.Context, collection string, docs []Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range docs {
		m.insert(collection, doc)
	}

	return nil
}

func (m *Memory) insert(collection string, doc Document) string {
	stored := maps.Clone(doc)
	id := uuid.NewString()
	stored["_id"] = id

	m.collections[collection] = append(m.collections[collection], stored)

	return id
}

func (m *Memory) FindAll(_ context.Context, collection string) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]Document, 0, len(m.collections[collection]))
	for _, doc := range m.collections[collection] {
		docs = append(docs, maps.Clone(doc))
	}

	return docs, nil
}

func (m *Memory) Count(_ context.Context, collection string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.collections[collection])), nil
}

func (m *Memory) ListCollectionNames(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.collections)), nil
}

func (m *Memory) Ping(_ context.Context) error {
	return nil
}

func (m *Memory) Close(_ context.Context) error {
	return nil
}
