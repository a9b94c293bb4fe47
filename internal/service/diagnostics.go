package service

import (
	"context"

	"github.com/nikita1503agarwal/storefront-backend/internal/config"
	"github.com/nikita1503agarwal/storefront-backend/internal/store"
)

// maxErrorSummaryLen bounds database error text in the diagnostics report.
const maxErrorSummaryLen = 50

// maxReportedCollections bounds the collection listing in the report.
const maxReportedCollections = 10

// DiagnosticsReport is the /test response. It always renders; failures are
// folded into the Database field instead of propagating.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type DiagnosticsService interface {
	Report(ctx context.Context) DiagnosticsReport
}

type diagnosticsService struct {
	cfg   config.Store
	store store.Store
}

func NewDiagnosticsService(cfg config.Store, s store.Store) DiagnosticsService {
	return &diagnosticsService{cfg: cfg, store: s}
}

func (s *diagnosticsService) Report(ctx context.Context) DiagnosticsReport {
	report := DiagnosticsReport{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      presenceFlag(s.cfg.URL != ""),
		DatabaseName:     presenceFlag(s.cfg.Name != ""),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	switch {
	case s.store != nil:
		report.ConnectionStatus = "connected"

		names, err := s.store.ListCollectionNames(ctx)
		if err != nil {
			report.Database = "connected but error: " + truncate(err.Error(), maxErrorSummaryLen)
			break
		}

		if len(names) > maxReportedCollections {
			names = names[:maxReportedCollections]
		}
		if names != nil {
			report.Collections = names
		}
		report.Database = "connected and working"

	case s.cfg.URL != "":
		// Configured but the connection never came up.
		report.Database = "available but not initialized"
	}

	return report
}

func presenceFlag(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
