// Package invoices serves the invoice CRUD endpoints. Line item totals are
// recomputed server side; clients never supply derived amounts.
package invoices

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	api "casense/internal/http"
	"casense/internal/models"
	"casense/internal/services/store"
)

var records *store.Store

// Initialize sets up the invoices package with required dependencies
func Initialize(s *store.Store) {
	records = s
}

// RegisterRoutes registers all invoice routes
func RegisterRoutes(r chi.Router) {
	r.Get("/api/invoices", handleList)
	r.Post("/api/invoices", handleCreate)
	r.Put("/api/invoices/{id}", handleUpdate)
	r.Delete("/api/invoices/{id}", handleDelete)
}

// handleList returns every invoice with its status refreshed against the
// current date, so pending invoices past due show as overdue.
func handleList(w http.ResponseWriter, r *http.Request) {
	invoices, err := records.ListInvoices()
	if err != nil {
		log.Printf("Error loading invoices: %v", err)
		api.Fail(w, http.StatusInternalServerError, "failed to load invoices")
		return
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}

	now := time.Now()
	for i := range invoices {
		invoices[i].Status = invoices[i].EffectiveStatus(now)
	}
	api.Success(w, http.StatusOK, map[string]any{"invoices": invoices})
}

type createRequest struct {
	Number   string            `json:"number" validate:"required"`
	ClientID string            `json:"clientId"`
	Date     models.Date       `json:"date"`
	DueDate  models.Date       `json:"dueDate"`
	Items    []models.LineItem `json:"items" validate:"required,min=1"`
}

func handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := api.DecodeValid(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	inv, err := records.CreateInvoice(models.Invoice{
		Number:   req.Number,
		ClientID: req.ClientID,
		Date:     req.Date,
		DueDate:  req.DueDate,
		Items:    req.Items,
	})
	if err != nil {
		log.Printf("Error creating invoice: %v", err)
		api.Fail(w, http.StatusInternalServerError, "failed to save invoice")
		return
	}
	api.Success(w, http.StatusCreated, map[string]any{"invoice": inv})
}

func handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch store.InvoicePatch
	if err := api.Decode(r, &patch); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	inv, err := records.UpdateInvoice(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "invoice not found")
			return
		}
		log.Printf("Error updating invoice %s: %v", id, err)
		api.Fail(w, http.StatusInternalServerError, "failed to save invoice")
		return
	}
	api.Success(w, http.StatusOK, map[string]any{"invoice": inv})
}

func handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := records.DeleteInvoice(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "invoice not found")
			return
		}
		log.Printf("Error deleting invoice %s: %v", id, err)
		api.Fail(w, http.StatusInternalServerError, "failed to delete invoice")
		return
	}
	api.Success(w, http.StatusOK, map[string]any{"message": "invoice deleted"})
}
