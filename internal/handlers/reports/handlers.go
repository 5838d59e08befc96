// Package reports serves the financial report endpoint. The date range is
// mandatory; an unrecognized report kind falls back to profit and loss.
package reports

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	api "casense/internal/http"
	"casense/internal/models"
	"casense/internal/services/reports"
	"casense/internal/services/store"
)

var records *store.Store

// Initialize sets up the reports package with required dependencies
func Initialize(s *store.Store) {
	records = s
}

// RegisterRoutes registers all report routes
func RegisterRoutes(r chi.Router) {
	r.Get("/api/reports/{kind}", handleReport)
}

func handleReport(w http.ResponseWriter, r *http.Request) {
	kind := models.ParseReportKind(chi.URLParam(r, "kind"))

	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		api.Fail(w, http.StatusBadRequest, "from and to dates are required")
		return
	}
	from, err := models.ParseDate(fromStr)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid from date")
		return
	}
	to, err := models.ParseDate(toStr)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid to date")
		return
	}

	snap, err := records.Snapshot()
	if err != nil {
		log.Printf("Error loading data: %v", err)
		api.Fail(w, http.StatusInternalServerError, "failed to load data")
		return
	}

	ts := snap.TransactionSet().FilterByDateRange(from.Time, to.Time)
	report := reports.Generate(kind, ts)
	report.From = from
	report.To = to

	api.Success(w, http.StatusOK, map[string]any{"report": report})
}
