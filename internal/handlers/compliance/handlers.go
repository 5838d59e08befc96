// Package compliance serves the statutory deadline calendar endpoint.
package compliance

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	api "casense/internal/http"
	"casense/internal/services/compliance"
)

// RegisterRoutes registers all compliance routes
func RegisterRoutes(r chi.Router) {
	r.Get("/api/compliance", handleCalendar)
}

func handleCalendar(w http.ResponseWriter, r *http.Request) {
	items := compliance.Calendar(time.Now())
	api.Success(w, http.StatusOK, map[string]any{"compliance": items})
}
