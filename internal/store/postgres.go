package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/nikita1503agarwal/storefront-backend/internal/storage/db"
)

var _ Store = (*Postgres)(nil)

// Postgres is the document store backed by a single jsonb table. Collections
// are logical: rows tagged with a collection name, read back in insertion
// order.
type Postgres struct {
	client *db.Client
}

// NewPostgres wraps an established pool client.
func NewPostgres(client *db.Client) *Postgres {
	return &Postgres{client: client}
}

func (p *Postgres) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	id, err := p.insert(ctx, p.client, collection, doc)
	if err != nil {
		return "", err
	}

	return id, nil
}

func (p *Postgres) InsertMany(ctx context.Context, collection string, docs []Document) error {
	if err := p.client.WithTx(ctx, func(tx db.DB) error {
		for _, doc := range docs {
			if _, err := p.insert(ctx, tx, collection, doc); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("insert many: %w", err)
	}

	return nil
}

func (p *Postgres) insert(ctx context.Context, q db.DB, collection string, doc Document) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid v7: %w", err)
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}

	if _, err := q.Exec(ctx, `
		INSERT INTO documents (id, collection, doc)
		VALUES ($1, $2, $3)
	`, id.String(), collection, payload); err != nil {
		return "", fmt.Errorf("insert document: %w", err)
	}

	return id.String(), nil
}

func (p *Postgres) FindAll(ctx context.Context, collection string) ([]Document, error) {
	rows, err := p.client.Query(ctx, `
		SELECT id::text, doc
		FROM documents
		WHERE collection = $1
		ORDER BY inserted_at, id
	`, collection)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var (
			id      string
			payload []byte
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}

		var doc Document
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal document: %w", err)
		}
		doc["_id"] = id

		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	return docs, nil
}

func (p *Postgres) Count(ctx context.Context, collection string) (int64, error) {
	var count int64
	if err := p.client.QueryRow(ctx, `
		SELECT COUNT(*) FROM documents WHERE collection = $1
	`, collection).Scan(&count); err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}

	return count, nil
}

func (p *Postgres) ListCollectionNames(ctx context.Context) ([]string, error) {
	rows, err := p.client.Query(ctx, `
		SELECT DISTINCT collection FROM documents ORDER BY collection
	`)
	if err != nil {
		return nil, fmt.Errorf("query collections: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan collection name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collection names: %w", err)
	}

	return names, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.client.Ping(ctx)
}

func (p *Postgres) Close(_ context.Context) error {
	p.client.Pool.Close()
	return nil
}
