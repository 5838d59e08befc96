// Package dashboard serves the period-scoped business metrics endpoint.
package dashboard

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	api "casense/internal/http"
	"casense/internal/services/metrics"
	"casense/internal/services/period"
	"casense/internal/services/store"
)

var records *store.Store

// Initialize sets up the dashboard package with required dependencies
func Initialize(s *store.Store) {
	records = s
}

// RegisterRoutes registers all dashboard routes
func RegisterRoutes(r chi.Router) {
	r.Get("/api/dashboard", handleDashboard)
}

func handleDashboard(w http.ResponseWriter, r *http.Request) {
	name := period.Name(r.URL.Query().Get("period"))
	if name == "" {
		name = period.Month
	}

	snap, err := records.Snapshot()
	if err != nil {
		log.Printf("Error loading data: %v", err)
		api.Fail(w, http.StatusInternalServerError, "failed to load data")
		return
	}

	m := metrics.Dashboard(&snap, name, time.Now())
	api.Success(w, http.StatusOK, map[string]any{"metrics": m})
}
