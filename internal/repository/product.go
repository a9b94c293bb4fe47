package repository

import (
	"context"
	"fmt"

	"github.com/nikita1503agarwal/storefront-backend/internal/model"
	"github.com/nikita1503agarwal/storefront-backend/internal/store"
)

const productCollection = "product"

type ProductRepository interface {
	CreateProduct(ctx context.Context, product model.Product) (string, error)
	CreateProducts(ctx context.Context, products []model.Product) error
	CountProducts(ctx context.Context) (int64, error)
	ListAllProducts(ctx context.Context) ([]model.ProductView, error)
}

type productRepository struct {
	store store.Store
}

func NewProductRepository(s store.Store) ProductRepository {
	return &productRepository{store: s}
}

func (r productRepository) CreateProduct(ctx context.Context, product model.Product) (string, error) {
	id, err := r.store.Insert(ctx, productCollection, productToDocument(product))
	if err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}

	return id, nil
}

func (r productRepository) CreateProducts(ctx context.Context, products []model.Product) error {
	docs := make([]store.Document, 0, len(products))
	for _, product := range products {
		docs = append(docs, productToDocument(product))
	}

	if err := r.store.InsertMany(ctx, productCollection, docs); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}

	return nil
}

func (r productRepository) CountProducts(ctx context.Context) (int64, error) {
	count, err := r.store.Count(ctx, productCollection)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}

func (r productRepository) ListAllProducts(ctx context.Context) ([]model.ProductView, error) {
	docs, err := r.store.FindAll(ctx, productCollection)
	if err != nil {
		return nil, fmt.Errorf("find all products: %w", err)
	}

	views := make([]model.ProductView, 0, len(docs))
	for _, doc := range docs {
		views = append(views, documentToProductView(doc))
	}

	return views, nil
}

func productToDocument(p model.Product) store.Document {
	inStock := true
	if p.InStock != nil {
		inStock = *p.InStock
	}

	return store.Document{
		"title":       p.Title,
		"description": ptrValue(p.Description),
		"price":       *p.Price,
		"category":    p.Category,
		"image":       ptrValue(p.Image),
		"in_stock":    inStock,
	}
}

// documentToProductView maps a stored document to the response shape. Seed and
// legacy documents may lack optional fields, so missing values take defaults
// and the mapping never fails.
func documentToProductView(doc store.Document) model.ProductView {
	return model.ProductView{
		ID:          asString(doc["_id"], ""),
		Title:       asString(doc["title"], ""),
		Description: asStringPtr(doc["description"]),
		Price:       asFloat(doc["price"], 0),
		Category:    asString(doc["category"], "General"),
		Image:       asStringPtr(doc["image"]),
		InStock:     asBool(doc["in_stock"], true),
	}
}
