package service_test

import (
	"errors"
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikita1503agarwal/storefront-backend/internal/apperr"
	"github.com/nikita1503agarwal/storefront-backend/internal/model"
	"github.com/nikita1503agarwal/storefront-backend/internal/repository"
	"github.com/nikita1503agarwal/storefront-backend/internal/service"
	"github.com/nikita1503agarwal/storefront-backend/internal/store"
	"github.com/nikita1503agarwal/storefront-backend/pkg/ptr"
	"github.com/nikita1503agarwal/storefront-backend/pkg/validator"
)

func newCatalogService(s store.Store) service.CatalogService {
	return service.NewCatalogService(
		s,
		repository.NewProductRepository(s),
		validator.NewDefaultValidator(),
		nil,
	)
}

func TestCatalogServiceListProducts(t *testing.T) {
	ctx := t.Context()

	t.Run("Should seed three products when the collection is empty", func(t *testing.T) {
		mem := store.NewMemory()
		svc := newCatalogService(mem)

		products, err := svc.ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 3)

		titles := make([]string, 0, len(products))
		for _, p := range products {
			titles = append(titles, p.Title)
		}
		assert.Equal(t, []string{"Minimalist Chair", "Wireless Headphones", "Ceramic Mug"}, titles)
		for _, p := range products {
			assert.NotEmpty(t, p.ID)
			assert.True(t, p.InStock)
			assert.Greater(t, p.Price, 0.0)
		}
	})

	t.Run("Should not seed again on subsequent calls", func(t *testing.T) {
		mem := store.NewMemory()
		svc := newCatalogService(mem)

		_, err := svc.ListProducts(ctx)
		require.NoError(t, err)

		products, err := svc.ListProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("Should not seed when products already exist", func(t *testing.T) {
		mem := store.NewMemory()
		svc := newCatalogService(mem)

		_, err := svc.CreateProduct(ctx, model.Product{
			Title:    "Desk Lamp",
			Price:    ptr.New(24.0),
			Category: "Lighting",
		})
		require.NoError(t, err)

		products, err := svc.ListProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Desk Lamp", products[0].Title)
	})

	t.Run("Should fail when no store is configured", func(t *testing.T) {
		svc := newCatalogService(nil)

		_, err := svc.ListProducts(ctx)
		assert.ErrorIs(t, err, apperr.StoreNotConfiguredErr)
	})
}

func TestCatalogServiceCreateProduct(t *testing.T) {
	ctx := t.Context()

	t.Run("Should persist a valid product", func(t *testing.T) {
		mem := store.NewMemory()
		svc := newCatalogService(mem)

		id, err := svc.CreateProduct(ctx, model.Product{
			Title:       "Standing Desk",
			Description: ptr.New("Height adjustable."),
			Price:       ptr.New(399.0),
			Category:    "Furniture",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, id)

		count, err := mem.Count(ctx, "product")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Should accept a zero price", func(t *testing.T) {
		mem := store.NewMemory()
		svc := newCatalogService(mem)

		_, err := svc.CreateProduct(ctx, model.Product{
			Title:    "Free Sample",
			Price:    ptr.New(0.0),
			Category: "Promo",
		})
		assert.NoError(t, err)
	})

	t.Run("Should reject a product without required fields", func(t *testing.T) {
		mem := store.NewMemory()
		svc := newCatalogService(mem)

		_, err := svc.CreateProduct(ctx, model.Product{
			Description: ptr.New("no title, price or category"),
		})
		require.Error(t, err)

		var verrs govalidator.ValidationErrors
		assert.True(t, errors.As(err, &verrs))

		count, err := mem.Count(ctx, "product")
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Should reject a negative price", func(t *testing.T) {
		svc := newCatalogService(store.NewMemory())

		_, err := svc.CreateProduct(ctx, model.Product{
			Title:    "Broken",
			Price:    ptr.New(-1.0),
			Category: "Misc",
		})
		var verrs govalidator.ValidationErrors
		assert.True(t, errors.As(err, &verrs))
	})

	t.Run("Should validate before checking the store", func(t *testing.T) {
		svc := newCatalogService(nil)

		_, err := svc.CreateProduct(ctx, model.Product{})
		var verrs govalidator.ValidationErrors
		assert.True(t, errors.As(err, &verrs))
	})

	t.Run("Should fail for a valid product when no store is configured", func(t *testing.T) {
		svc := newCatalogService(nil)

		_, err := svc.CreateProduct(ctx, model.Product{
			Title:    "Standing Desk",
			Price:    ptr.New(399.0),
			Category: "Furniture",
		})
		assert.ErrorIs(t, err, apperr.StoreNotConfiguredErr)
	})
}
