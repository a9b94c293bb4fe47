package http

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/nikita1503agarwal/storefront-backend/internal/config"
	"github.com/nikita1503agarwal/storefront-backend/internal/http/metric"
	"github.com/nikita1503agarwal/storefront-backend/internal/http/middleware"
	"github.com/nikita1503agarwal/storefront-backend/internal/http/swagger"
	"github.com/nikita1503agarwal/storefront-backend/internal/service"
)

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg      config.HTTP
	logger   *slog.Logger
	metrics  *metric.Metrics
	registry *prometheus.Registry

	catalogSvc     service.CatalogService
	orderSvc       service.OrderService
	diagnosticsSvc service.DiagnosticsService
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	catalogSvc service.CatalogService,
	orderSvc service.OrderService,
	diagnosticsSvc service.DiagnosticsService,
	reg *prometheus.Registry,
) *Service {
	return &Service{
		cfg:            cfg,
		logger:         log.With(slog.String("service", "http")),
		metrics:        metric.New(reg),
		registry:       reg,
		catalogSvc:     catalogSvc,
		orderSvc:       orderSvc,
		diagnosticsSvc: diagnosticsSvc,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		swagger.Register(r)
	}

	s.RegisterHandlers(r)

	return s.RunWithServer(ctx, r)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	r.Get("/", s.handleRoot)
	r.Get("/api/hello", s.handleHello)
	r.Get("/test", s.handleDiagnostics)
	r.Get("/api/products", s.handleListProducts)
	r.Post("/api/products", s.handleCreateProduct)
	r.Post("/api/orders", s.handleCreateOrder)

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}
