package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nikita1503agarwal/storefront-backend/internal/model"
	"github.com/nikita1503agarwal/storefront-backend/internal/store"
)

const orderCollection = "order"

type OrderRepository interface {
	CreateOrder(ctx context.Context, order model.Order) (string, error)
}

type orderRepository struct {
	store store.Store
}

func NewOrderRepository(s store.Store) OrderRepository {
	return &orderRepository{store: s}
}

func (r orderRepository) CreateOrder(ctx context.Context, order model.Order) (string, error) {
	doc, err := orderToDocument(order)
	if err != nil {
		return "", err
	}

	id, err := r.store.Insert(ctx, orderCollection, doc)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	return id, nil
}

// orderToDocument persists the order verbatim: the JSON round trip keeps every
// caller-supplied field, including the snapshot line items and totals, exactly
// as received.
func orderToDocument(order model.Order) (store.Document, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	var doc store.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal order document: %w", err)
	}

	return doc, nil
}
