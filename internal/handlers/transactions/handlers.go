// Package transactions serves the transaction CRUD endpoints and the
// category suggestion lookup.
package transactions

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	api "casense/internal/http"
	"casense/internal/models"
	"casense/internal/services/store"
)

var records *store.Store

// Initialize sets up the transactions package with required dependencies
func Initialize(s *store.Store) {
	records = s
}

// RegisterRoutes registers all transaction routes
func RegisterRoutes(r chi.Router) {
	r.Get("/api/transactions", handleList)
	r.Post("/api/transactions", handleCreate)
	r.Put("/api/transactions/{id}", handleUpdate)
	r.Delete("/api/transactions/{id}", handleDelete)
	r.Get("/api/categories", handleCategories)
}

func handleList(w http.ResponseWriter, r *http.Request) {
	txns, err := records.ListTransactions()
	if err != nil {
		log.Printf("Error loading transactions: %v", err)
		api.Fail(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}
	if txns == nil {
		txns = []models.Transaction{}
	}
	api.Success(w, http.StatusOK, map[string]any{"transactions": txns})
}

type createRequest struct {
	Date          models.Date            `json:"date"`
	ClientID      string                 `json:"clientId"`
	Type          models.TransactionType `json:"type" validate:"required,oneof=income expense asset liability"`
	Category      string                 `json:"category"`
	Description   string                 `json:"description"`
	Amount        float64                `json:"amount" validate:"required,gt=0"`
	PaymentMethod string                 `json:"paymentMethod"`
	Reference     string                 `json:"reference"`
}

func handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := api.DecodeValid(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	txn, err := records.CreateTransaction(models.Transaction{
		Date:          req.Date,
		ClientID:      req.ClientID,
		Type:          req.Type,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
	})
	if err != nil {
		log.Printf("Error creating transaction: %v", err)
		api.Fail(w, http.StatusInternalServerError, "failed to save transaction")
		return
	}
	api.Success(w, http.StatusCreated, map[string]any{"transaction": txn})
}

func handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch store.TransactionPatch
	if err := api.Decode(r, &patch); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	txn, err := records.UpdateTransaction(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "transaction not found")
			return
		}
		log.Printf("Error updating transaction %s: %v", id, err)
		api.Fail(w, http.StatusInternalServerError, "failed to save transaction")
		return
	}
	api.Success(w, http.StatusOK, map[string]any{"transaction": txn})
}

func handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := records.DeleteTransaction(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "transaction not found")
			return
		}
		log.Printf("Error deleting transaction %s: %v", id, err)
		api.Fail(w, http.StatusInternalServerError, "failed to delete transaction")
		return
	}
	api.Success(w, http.StatusOK, map[string]any{"message": "transaction deleted"})
}

// handleCategories returns the standard category suggestions, either for
// one transaction type or all of them.
func handleCategories(w http.ResponseWriter, r *http.Request) {
	tt := r.URL.Query().Get("type")
	if tt != "" {
		suggestions, ok := models.CategorySuggestions[models.TransactionType(tt)]
		if !ok {
			api.Fail(w, http.StatusBadRequest, "unknown transaction type")
			return
		}
		api.Success(w, http.StatusOK, map[string]any{"categories": suggestions})
		return
	}
	api.Success(w, http.StatusOK, map[string]any{"categories": models.CategorySuggestions})
}
