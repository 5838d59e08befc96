// Package insights serves the advisory insight endpoint.
package insights

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	api "casense/internal/http"
	"casense/internal/models"
	"casense/internal/services/insights"
	"casense/internal/services/store"
)

var records *store.Store

// Initialize sets up the insights package with required dependencies
func Initialize(s *store.Store) {
	records = s
}

// RegisterRoutes registers all insight routes
func RegisterRoutes(r chi.Router) {
	r.Get("/api/insights", handleInsights)
}

// insightView adds the display label for the action tag to the engine
// output.
type insightView struct {
	models.Insight
	ActionLabel string `json:"actionLabel"`
}

func handleInsights(w http.ResponseWriter, r *http.Request) {
	category := models.ParseInsightCategory(r.URL.Query().Get("category"))

	snap, err := records.Snapshot()
	if err != nil {
		log.Printf("Error loading data: %v", err)
		api.Fail(w, http.StatusInternalServerError, "failed to load data")
		return
	}

	agg := insights.BuildAggregates(&snap, time.Now())
	generated := insights.Generate(agg, category)

	views := make([]insightView, 0, len(generated))
	for _, in := range generated {
		views = append(views, insightView{Insight: in, ActionLabel: in.Action.Label()})
	}

	api.Success(w, http.StatusOK, map[string]any{
		"category": category,
		"insights": views,
	})
}
