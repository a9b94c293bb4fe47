package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikita1503agarwal/storefront-backend/internal/model"
	"github.com/nikita1503agarwal/storefront-backend/internal/repository"
	"github.com/nikita1503agarwal/storefront-backend/internal/store"
	"github.com/nikita1503agarwal/storefront-backend/pkg/ptr"
)

func TestOrderRepository(t *testing.T) {
	ctx := t.Context()

	t.Run("Should persist the order verbatim", func(t *testing.T) {
		mem := store.NewMemory()
		repo := repository.NewOrderRepository(mem)

		order := model.Order{
			Items: []model.OrderItem{
				{
					ProductID: "p-1",
					Title:     "Ceramic Mug",
					Price:     ptr.New(16.5),
					Quantity:  ptr.New(2),
				},
			},
			// Deliberately inconsistent totals: the service stores what the
			// caller sent, it does not recompute.
			Subtotal:      ptr.New(33.0),
			Shipping:      ptr.New(5.0),
			Tax:           ptr.New(2.5),
			Total:         ptr.New(999.0),
			CustomerName:  "Ada Lovelace",
			CustomerEmail: "ada@example.com",
			AddressLine1:  "12 Analytical Way",
			City:          "London",
			State:         "LDN",
			PostalCode:    "EC1A",
			Country:       "UK",
		}

		id, err := repo.CreateOrder(ctx, order)
		require.NoError(t, err)
		require.NotEmpty(t, id)

		docs, err := mem.FindAll(ctx, "order")
		require.NoError(t, err)
		require.Len(t, docs, 1)

		doc := docs[0]
		assert.Equal(t, id, doc["_id"])
		assert.Equal(t, 33.0, doc["subtotal"])
		assert.Equal(t, 999.0, doc["total"])
		assert.Equal(t, "Ada Lovelace", doc["customer_name"])
		assert.Equal(t, "ada@example.com", doc["customer_email"])
		assert.Equal(t, "12 Analytical Way", doc["address_line1"])
		assert.Nil(t, doc["address_line2"])
		assert.Equal(t, "UK", doc["country"])

		items, ok := doc["items"].([]any)
		require.True(t, ok)
		require.Len(t, items, 1)

		item, ok := items[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "p-1", item["product_id"])
		assert.Equal(t, "Ceramic Mug", item["title"])
		assert.Equal(t, 16.5, item["price"])
		assert.Equal(t, float64(2), item["quantity"])
		assert.Nil(t, item["image"])
	})
}
