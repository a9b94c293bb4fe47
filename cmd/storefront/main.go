package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nikita1503agarwal/storefront-backend/internal/config"
	"github.com/nikita1503agarwal/storefront-backend/internal/event"
	"github.com/nikita1503agarwal/storefront-backend/internal/http"
	"github.com/nikita1503agarwal/storefront-backend/internal/log"
	"github.com/nikita1503agarwal/storefront-backend/internal/repository"
	"github.com/nikita1503agarwal/storefront-backend/internal/service"
	"github.com/nikita1503agarwal/storefront-backend/internal/storage/db"
	"github.com/nikita1503agarwal/storefront-backend/internal/storage/mq"
	"github.com/nikita1503agarwal/storefront-backend/internal/store"
	"github.com/nikita1503agarwal/storefront-backend/internal/telemetry"
	"github.com/nikita1503agarwal/storefront-backend/pkg/cmdutil"
	"github.com/nikita1503agarwal/storefront-backend/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running storefront application: %v\n", err)
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
		HTTP  config.HTTP
		Kafka config.Kafka
		Otel  config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	// A missing or unreachable database is not fatal: the service keeps
	// serving and reports the store state through /test.
	docStore := openStore(ctx, cfg.Store, logger)
	if docStore != nil {
		defer func() {
			if err := docStore.Close(ctx); err != nil {
				logger.ErrorContext(ctx, "error closing store", slog.Any("error", err))
			}
		}()
	}

	var (
		events        *event.Publisher
		kafkaConsumer *mq.KafkaConsumer
	)
	if cfg.Kafka.Enabled() {
		kafkaProducer, err := mq.NewKafkaProducer(ctx, cfg.Kafka)
		if err != nil {
			return fmt.Errorf("error creating kafka producer: %w", err)
		}
		defer kafkaProducer.Close()

		events = event.NewPublisher(logger, kafkaProducer)

		kafkaConsumer, err = mq.NewKafkaConsumer(ctx, cfg.Kafka, logger)
		if err != nil {
			return fmt.Errorf("error creating kafka consumer: %w", err)
		}
		defer kafkaConsumer.Close()
	}

	v := validator.NewDefaultValidator()

	productRepo := repository.NewProductRepository(docStore)
	orderRepo := repository.NewOrderRepository(docStore)

	catalogService := service.NewCatalogService(docStore, productRepo, v, events)
	orderService := service.NewOrderService(docStore, orderRepo, v, events)
	diagnosticsService := service.NewDiagnosticsService(cfg.Store, docStore)

	metricsRegistry := prometheus.NewRegistry()
	metricsRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	interruptChan := cmdutil.InterruptChan()
	var wg sync.WaitGroup

	wg.Go(func() {
		svc := http.New(cfg.HTTP, logger, catalogService, orderService, diagnosticsService, metricsRegistry)
		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running http service: %w", err))
		}

		logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

		<-interruptChan

		logger.InfoContext(ctx, "http service is shutting down")
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
		}

		logger.InfoContext(ctx, "http service is stopped")
	})

	if kafkaConsumer != nil {
		wg.Go(func() {
			svc := event.New(logger, kafkaConsumer)
			cleanup, err := svc.Run(ctx)
			if err != nil {
				panic(fmt.Errorf("error running event service: %w", err))
			}
			logger.InfoContext(ctx, "event service started")

			<-interruptChan

			logger.InfoContext(ctx, "event service is shutting down")
			cleanup()

			logger.InfoContext(ctx, "event service is stopped")
		})
	}

	wg.Wait()

	return nil
}

func openStore(ctx context.Context, cfg config.Store, logger *slog.Logger) store.Store {
	switch cfg.Backend() {
	case config.BackendNone:
		logger.WarnContext(ctx, "DATABASE_URL not set, running without a store")
		return nil

	case config.BackendMongo:
		m, err := store.NewMongo(ctx, cfg)
		if err != nil {
			logger.ErrorContext(ctx, "error connecting to mongo store", slog.Any("error", err))
			return nil
		}
		return m

	case config.BackendPostgres:
		pool, err := db.NewPgxPool(ctx, cfg)
		if err != nil {
			logger.ErrorContext(ctx, "error connecting to postgres store", slog.Any("error", err))
			return nil
		}
		return store.NewPostgres(db.NewClient(pool))

	default:
		logger.ErrorContext(ctx, "unsupported DATABASE_URL scheme, running without a store")
		return nil
	}
}
