package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikita1503agarwal/storefront-backend/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("Should apply defaults when nothing is set", func(t *testing.T) {
		cfg, err := config.New[config.HTTP]()
		require.NoError(t, err)

		assert.Equal(t, uint32(8000), cfg.Port)
		assert.True(t, cfg.Swagger)
	})

	t.Run("Should read values from the environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("HTTP_SWAGGER", "false")

		cfg, err := config.New[config.HTTP]()
		require.NoError(t, err)

		assert.Equal(t, uint32(9090), cfg.Port)
		assert.False(t, cfg.Swagger)
	})

	t.Run("Should leave the store unconfigured without a url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DATABASE_NAME", "")

		cfg, err := config.New[config.Store]()
		require.NoError(t, err)

		assert.Empty(t, cfg.URL)
		assert.Empty(t, cfg.Name)
		assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	})

	t.Run("Should fail on an unparsable value", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")

		_, err := config.New[config.HTTP]()
		assert.Error(t, err)
	})
}

func TestStoreBackend(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want config.Backend
	}{
		{name: "empty url selects no backend", url: "", want: config.BackendNone},
		{name: "mongodb scheme", url: "mongodb://localhost:27017", want: config.BackendMongo},
		{name: "mongodb srv scheme", url: "mongodb+srv://cluster.example.com", want: config.BackendMongo},
		{name: "postgres scheme", url: "postgres://localhost:5432/app", want: config.BackendPostgres},
		{name: "postgresql scheme", url: "postgresql://localhost:5432/app", want: config.BackendPostgres},
		{name: "unrecognized scheme", url: "mysql://localhost:3306/app", want: config.BackendUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Store{URL: tt.url}
			assert.Equal(t, tt.want, cfg.Backend())
		})
	}
}
