package apicontract_test

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/nikita1503agarwal/storefront-backend/api-contract"
)

func TestEmbeddedSpec(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(apicontract.GetSpecBytes())
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))

	t.Run("Should document every route", func(t *testing.T) {
		for _, path := range []string{"/", "/api/hello", "/test", "/api/products", "/api/orders"} {
			assert.NotNil(t, doc.Paths.Find(path), "missing path %s", path)
		}
	})

	t.Run("Should document both catalog operations", func(t *testing.T) {
		products := doc.Paths.Find("/api/products")
		require.NotNil(t, products)
		assert.NotNil(t, products.Get)
		assert.NotNil(t, products.Post)
	})
}
