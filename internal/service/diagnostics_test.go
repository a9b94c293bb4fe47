package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikita1503agarwal/storefront-backend/internal/config"
	"github.com/nikita1503agarwal/storefront-backend/internal/service"
	"github.com/nikita1503agarwal/storefront-backend/internal/store"
)

// brokenStore fails every operation with a fixed error.
type brokenStore struct {
	err error
}

func (b brokenStore) Insert(context.Context, string, store.Document) (string, error) {
	return "", b.err
}

func (b brokenStore) InsertMany(context.Context, string, []store.Document) error { return b.err }

func (b brokenStore) FindAll(context.Context, string) ([]store.Document, error) {
	return nil, b.err
}

func (b brokenStore) Count(context.Context, string) (int64, error) { return 0, b.err }

func (b brokenStore) ListCollectionNames(context.Context) ([]string, error) { return nil, b.err }

func (b brokenStore) Ping(context.Context) error { return b.err }

func (b brokenStore) Close(context.Context) error { return nil }

func TestDiagnosticsServiceReport(t *testing.T) {
	ctx := t.Context()

	t.Run("Should report not available when nothing is configured", func(t *testing.T) {
		svc := service.NewDiagnosticsService(config.Store{}, nil)

		report := svc.Report(ctx)

		assert.Equal(t, "running", report.Backend)
		assert.Equal(t, "not available", report.Database)
		assert.Equal(t, "not set", report.DatabaseURL)
		assert.Equal(t, "not set", report.DatabaseName)
		assert.Equal(t, "not connected", report.ConnectionStatus)
		assert.Equal(t, []string{}, report.Collections)
	})

	t.Run("Should report not initialized when configured but never connected", func(t *testing.T) {
		cfg := config.Store{URL: "mongodb://localhost:27017", Name: "storefront"}
		svc := service.NewDiagnosticsService(cfg, nil)

		report := svc.Report(ctx)

		assert.Equal(t, "available but not initialized", report.Database)
		assert.Equal(t, "set", report.DatabaseURL)
		assert.Equal(t, "set", report.DatabaseName)
		assert.Equal(t, "not connected", report.ConnectionStatus)
	})

	t.Run("Should report connected and working with collection names", func(t *testing.T) {
		mem := store.NewMemory()
		_, err := mem.Insert(ctx, "product", store.Document{"title": "x"})
		require.NoError(t, err)
		_, err = mem.Insert(ctx, "order", store.Document{"total": 1.0})
		require.NoError(t, err)

		cfg := config.Store{URL: "mongodb://localhost:27017", Name: "storefront"}
		svc := service.NewDiagnosticsService(cfg, mem)

		report := svc.Report(ctx)

		assert.Equal(t, "connected and working", report.Database)
		assert.Equal(t, "connected", report.ConnectionStatus)
		assert.Equal(t, []string{"order", "product"}, report.Collections)
	})

	t.Run("Should report an empty collection list before any data is written", func(t *testing.T) {
		cfg := config.Store{URL: "mongodb://localhost:27017", Name: "storefront"}
		svc := service.NewDiagnosticsService(cfg, store.NewMemory())

		report := svc.Report(ctx)

		assert.Equal(t, "connected and working", report.Database)
		assert.Equal(t, []string{}, report.Collections)

		raw, err := json.Marshal(report)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"collections":[]`)
	})

	t.Run("Should cap the collection listing at ten names", func(t *testing.T) {
		mem := store.NewMemory()
		for i := range 15 {
			_, err := mem.Insert(ctx, fmt.Sprintf("c%02d", i), store.Document{"n": i})
			require.NoError(t, err)
		}

		svc := service.NewDiagnosticsService(config.Store{URL: "mongodb://x"}, mem)

		report := svc.Report(ctx)
		assert.Len(t, report.Collections, 10)
	})

	t.Run("Should fold listing failures into the report", func(t *testing.T) {
		failure := errors.New(strings.Repeat("a", 80))
		cfg := config.Store{URL: "mongodb://localhost:27017", Name: "storefront"}
		svc := service.NewDiagnosticsService(cfg, brokenStore{err: failure})

		report := svc.Report(ctx)

		assert.Equal(t, "connected but error: "+strings.Repeat("a", 50), report.Database)
		assert.Equal(t, "connected", report.ConnectionStatus)
		assert.Equal(t, []string{}, report.Collections)
	})
}
