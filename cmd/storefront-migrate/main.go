package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nikita1503agarwal/storefront-backend/internal/config"
	"github.com/nikita1503agarwal/storefront-backend/internal/log"
	"github.com/nikita1503agarwal/storefront-backend/internal/storage/db"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running migrate application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log   config.Log
		Store config.Store
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	// Only the postgres backend has schema to manage; mongo collections are
	// created on first insert.
	if cfg.Store.Backend() != config.BackendPostgres {
		return errors.New("DATABASE_URL must point at a postgres database")
	}

	pgxPool, err := db.NewPgxPool(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("error creating pgx pool: %w", err)
	}
	defer pgxPool.Close()

	logger.InfoContext(ctx, "starting database migration")

	if err := db.Migrate(pgxPool); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	logger.InfoContext(ctx, "database migration completed successfully")

	return nil
}
