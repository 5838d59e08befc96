// Package tax serves the GST and income tax calculator endpoints. Both are
// pure computations over the request body and never touch stored records.
package tax

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	api "casense/internal/http"
	"casense/internal/services/tax"
)

// RegisterRoutes registers all tax calculator routes
func RegisterRoutes(r chi.Router) {
	r.Post("/api/tax/gst", handleGST)
	r.Post("/api/tax/income", handleIncomeTax)
}

type gstRequest struct {
	Amount float64  `json:"amount" validate:"required,gt=0"`
	Rate   *float64 `json:"rate" validate:"omitempty,gte=0,lte=100"`
}

func handleGST(w http.ResponseWriter, r *http.Request) {
	var req gstRequest
	if err := api.DecodeValid(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	rate := tax.DefaultGSTRate
	if req.Rate != nil {
		rate = *req.Rate
	}
	api.Success(w, http.StatusOK, map[string]any{"gst": tax.GST(req.Amount, rate)})
}

type incomeTaxRequest struct {
	AnnualIncome float64    `json:"annualIncome" validate:"required,gte=0"`
	Regime       tax.Regime `json:"regime"`
}

func handleIncomeTax(w http.ResponseWriter, r *http.Request) {
	var req incomeTaxRequest
	if err := api.DecodeValid(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	api.Success(w, http.StatusOK, map[string]any{"incomeTax": tax.IncomeTax(req.AnnualIncome, req.Regime)})
}
