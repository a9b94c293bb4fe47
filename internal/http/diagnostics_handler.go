package http

import (
	"net/http"
)

// handleDiagnostics always reports success; store failures are reflected in
// the report body, never in the status code.
func (s *Service) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	report := s.diagnosticsSvc.Report(r.Context())
	s.writeJSON(w, r, http.StatusOK, report)
}
