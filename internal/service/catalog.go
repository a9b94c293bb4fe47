package service

import (
	"context"
	"fmt"

	"github.com/nikita1503agarwal/storefront-backend/internal/apperr"
	"github.com/nikita1503agarwal/storefront-backend/internal/event"
	"github.com/nikita1503agarwal/storefront-backend/internal/model"
	"github.com/nikita1503agarwal/storefront-backend/internal/repository"
	"github.com/nikita1503agarwal/storefront-backend/internal/store"
	"github.com/nikita1503agarwal/storefront-backend/pkg/ptr"
	"github.com/nikita1503agarwal/storefront-backend/pkg/validator"
)

// seedCatalog is inserted as a single batch the first time the product
// collection is observed empty.
var seedCatalog = []model.Product{
	{
		Title:       "Minimalist Chair",
		Description: ptr.New("A modern, comfortable chair with a minimalist design."),
		Price:       ptr.New(89.99),
		Category:    "Furniture",
		Image:       ptr.New("https://images.unsplash.com/photo-1549187774-b4e9b0445b41?q=80&w=1200&auto=format&fit=crop"),
		InStock:     ptr.New(true),
	},
	{
		Title:       "Wireless Headphones",
		Description: ptr.New("Noise-cancelling over-ear headphones with 30h battery."),
		Price:       ptr.New(129.0),
		Category:    "Electronics",
		Image:       ptr.New("https://images.unsplash.com/photo-1518449037270-3c0758cd7ed0?q=80&w=1200&auto=format&fit=crop"),
		InStock:     ptr.New(true),
	},
	{
		Title:       "Ceramic Mug",
		Description: ptr.New("Handmade ceramic mug for coffee or tea (350ml)."),
		Price:       ptr.New(16.5),
		Category:    "Kitchen",
		Image:       ptr.New("https://images.unsplash.com/photo-1509463531436-7b8b53f6d4ba?q=80&w=1200&auto=format&fit=crop"),
		InStock:     ptr.New(true),
	},
}

type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.ProductView, error)
	CreateProduct(ctx context.Context, product model.Product) (string, error)
}

type catalogService struct {
	store       store.Store
	productRepo repository.ProductRepository
	validator   validator.Validator
	events      *event.Publisher
}

// NewCatalogService wires the catalog. The store handle may be nil when no
// database is configured; every operation checks it before touching the repo.
func NewCatalogService(
	s store.Store,
	productRepo repository.ProductRepository,
	v validator.Validator,
	events *event.Publisher,
) CatalogService {
	return &catalogService{
		store:       s,
		productRepo: productRepo,
		validator:   v,
		events:      events,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]model.ProductView, error) {
	if s.store == nil {
		return nil, apperr.StoreNotConfiguredErr
	}

	count, err := s.productRepo.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository count products: %w", err)
	}

	// The count-then-insert pair is not atomic: two concurrent first requests
	// can both observe zero and both seed. Sequential access seeds once.
	if count == 0 {
		if err := s.productRepo.CreateProducts(ctx, seedCatalog); err != nil {
			return nil, fmt.Errorf("product repository seed products: %w", err)
		}
	}

	products, err := s.productRepo.ListAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("product repository list all products: %w", err)
	}

	return products, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, product model.Product) (string, error) {
	if err := s.validator.Validate(product); err != nil {
		return "", fmt.Errorf("validate product: %w", err)
	}

	if s.store == nil {
		return "", apperr.StoreNotConfiguredErr
	}

	id, err := s.productRepo.CreateProduct(ctx, product)
	if err != nil {
		return "", fmt.Errorf("product repository create product: %w", err)
	}

	s.events.ProductCreated(ctx, event.ProductCreatedEvent{
		ProductID: id,
		Title:     product.Title,
		Price:     *product.Price,
		Category:  product.Category,
	})

	return id, nil
}
