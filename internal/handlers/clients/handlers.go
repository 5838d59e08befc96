// Package clients serves the client CRUD endpoints.
package clients

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

// Initialize sets up the clients package with required dependencies
func Initialize(s *store.Store) {
	records = s
}

// RegisterRoutes registers all client routes
func RegisterRoutes(r chi.Router) {
	r.Get("/api/clients", handleList)
	r.Post("/api/clients", handleCreate)
	r.Put("/api/clients/{id}", handleUpdate)
	r.Delete("/api/clients/{id}", handleDelete)
}

func handleList(w http.ResponseWriter, r *http.Request) {
	clients, err := records.ListClients()
	if err != nil {
		log.Printf("Error loading clients: %v", err)
		api.Fail(w, http.StatusInternalServerError, "failed to load clients")
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	api.Success(w, http.StatusOK, map[string]any{"clients": clients})
}

type createRequest struct {
	Name         string              `json:"name" validate:"required"`
	BusinessType models.BusinessType `json:"businessType"`
	GSTIN        string              `json:"gstin"`
	PAN          string              `json:"pan"`
	Email        string              `json:"email" validate:"omitempty,email"`
	Phone        string              `json:"phone"`
	Address      string              `json:"address"`
}

func handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := api.DecodeValid(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	client, err := records.CreateClient(models.Client{
		Name:         req.Name,
		BusinessType: req.BusinessType,
		GSTIN:        req.GSTIN,
		PAN:          req.PAN,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
	})
	if err != nil {
		log.Printf("Error creating client: %v", err)
		api.Fail(w, http.StatusInternalServerError, "failed to save client")
		return
	}
	api.Success(w, http.StatusCreated, map[string]any{"client": client})
}

func handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch store.ClientPatch
	if err := api.Decode(r, &patch); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	client, err := records.UpdateClient(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "client not found")
			return
		}
		log.Printf("Error updating client %s: %v", id, err)
		api.Fail(w, http.StatusInternalServerError, "failed to save client")
		return
	}
	api.Success(w, http.StatusOK, map[string]any{"client": client})
}

func handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := records.DeleteClient(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "client not found")
			return
		}
		log.Printf("Error deleting client %s: %v", id, err)
		api.Fail(w, http.StatusInternalServerError, "failed to delete client")
		return
	}
	api.Success(w, http.StatusOK, map[string]any{"message": "client deleted"})
}
