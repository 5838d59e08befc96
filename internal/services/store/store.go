// Package store is the record store: a single flat JSON document holding
// clients, transactions and invoices, read and written through the storage
// layer. It is the only mutable state in the system; the analysis services
// work on snapshots it hands out.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"casense/internal/models"
	"casense/internal/services/storage"
)

// ErrNotFound indicates an update or delete referenced an unknown id.
var ErrNotFound = errors.New("not found")

// Store serializes access to the data document. The backend is
// single-writer; a mutex is sufficient.
type Store struct {
	mu      sync.Mutex
	storage *storage.Storage
	path    string
}

// New creates a Store persisting to the given document path.
func New(st *storage.Storage, path string) *Store {
	return &Store{storage: st, path: path}
}

// load reads the document. A missing file yields an empty record set, same
// as a fresh install.
func (s *Store) load() (*models.Snapshot, error) {
	data, err := s.storage.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Snapshot{}, nil
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse data file: %w", err)
	}
	return &snap, nil
}

func (s *Store) save(snap *models.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}
	return s.storage.WriteFile(s.path, data, 0644)
}

// Snapshot returns an independent copy of the full record set.
func (s *Store) Snapshot() (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return models.Snapshot{}, err
	}
	return snap.Copy(), nil
}

// ListClients returns the current client records.
func (s *Store) ListClients() ([]models.Client, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Clients, nil
}

// CreateClient stores a new client, assigning its id.
func (s *Store) CreateClient(c models.Client) (models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return models.Client{}, err
	}

	c.ID = uuid.NewString()
	snap.Clients = append(snap.Clients, c)

	if err := s.save(snap); err != nil {
		return models.Client{}, err
	}
	return c, nil
}

// ClientPatch is a shallow-merge update: nil fields keep their stored
// value.
type ClientPatch struct {
	Name         *string              `json:"name"`
	BusinessType *models.BusinessType `json:"businessType"`
	GSTIN        *string              `json:"gstin"`
	PAN          *string              `json:"pan"`
	Email        *string              `json:"email"`
	Phone        *string              `json:"phone"`
	Address      *string              `json:"address"`
}

// UpdateClient merges the patch into the stored client.
func (s *Store) UpdateClient(id string, p ClientPatch) (models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return models.Client{}, err
	}

	for i := range snap.Clients {
		if snap.Clients[i].ID != id {
			continue
		}
		c := &snap.Clients[i]
		if p.Name != nil {
			c.Name = *p.Name
		}
		if p.BusinessType != nil {
			c.BusinessType = *p.BusinessType
		}
		if p.GSTIN != nil {
			c.GSTIN = *p.GSTIN
		}
		if p.PAN != nil {
			c.PAN = *p.PAN
		}
		if p.Email != nil {
			c.Email = *p.Email
		}
		if p.Phone != nil {
			c.Phone = *p.Phone
		}
		if p.Address != nil {
			c.Address = *p.Address
		}
		if err := s.save(snap); err != nil {
			return models.Client{}, err
		}
		return *c, nil
	}
	return models.Client{}, ErrNotFound
}

// DeleteClient removes a client. Its transactions and invoices keep their
// dangling references; display code resolves them to "Unknown".
func (s *Store) DeleteClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}

	kept := snap.Clients[:0]
	for _, c := range snap.Clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(snap.Clients) {
		return ErrNotFound
	}
	snap.Clients = kept
	return s.save(snap)
}

// ListTransactions returns the current transaction records.
func (s *Store) ListTransactions() ([]models.Transaction, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Transactions, nil
}

// CreateTransaction stores a new transaction, assigning its id. A zero date
// defaults to today.
func (s *Store) CreateTransaction(t models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return models.Transaction{}, err
	}

	t.ID = uuid.NewString()
	if t.Date.IsZero() {
		t.Date = models.NewDate(time.Now())
	}
	snap.Transactions = append(snap.Transactions, t)

	if err := s.save(snap); err != nil {
		return models.Transaction{}, err
	}
	return t, nil
}

// TransactionPatch is a shallow-merge update for a transaction.
type TransactionPatch struct {
	Date          *models.Date            `json:"date"`
	ClientID      *string                 `json:"clientId"`
	Type          *models.TransactionType `json:"type"`
	Category      *string                 `json:"category"`
	Description   *string                 `json:"description"`
	Amount        *float64                `json:"amount"`
	PaymentMethod *string                 `json:"paymentMethod"`
	Reference     *string                 `json:"reference"`
}

// UpdateTransaction merges the patch into the stored transaction.
func (s *Store) UpdateTransaction(id string, p TransactionPatch) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return models.Transaction{}, err
	}

	for i := range snap.Transactions {
		if snap.Transactions[i].ID != id {
			continue
		}
		t := &snap.Transactions[i]
		if p.Date != nil {
			t.Date = *p.Date
		}
		if p.ClientID != nil {
			t.ClientID = *p.ClientID
		}
		if p.Type != nil {
			t.Type = *p.Type
		}
		if p.Category != nil {
			t.Category = *p.Category
		}
		if p.Description != nil {
			t.Description = *p.Description
		}
		if p.Amount != nil {
			t.Amount = *p.Amount
		}
		if p.PaymentMethod != nil {
			t.PaymentMethod = *p.PaymentMethod
		}
		if p.Reference != nil {
			t.Reference = *p.Reference
		}
		if err := s.save(snap); err != nil {
			return models.Transaction{}, err
		}
		return *t, nil
	}
	return models.Transaction{}, ErrNotFound
}

// DeleteTransaction removes a transaction by id.
func (s *Store) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}

	kept := snap.Transactions[:0]
	for _, t := range snap.Transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(snap.Transactions) {
		return ErrNotFound
	}
	snap.Transactions = kept
	return s.save(snap)
}

// ListInvoices returns the current invoice records.
func (s *Store) ListInvoices() ([]models.Invoice, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Invoices, nil
}

// CreateInvoice stores a new invoice, assigning its id and creation time
// and recomputing the derived totals.
func (s *Store) CreateInvoice(inv models.Invoice) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return models.Invoice{}, err
	}

	inv.ID = uuid.NewString()
	inv.CreatedAt = time.Now()
	if inv.Status == "" {
		inv.Status = models.InvoicePending
	}
	inv.Recalculate()
	snap.Invoices = append(snap.Invoices, inv)

	if err := s.save(snap); err != nil {
		return models.Invoice{}, err
	}
	return inv, nil
}

// InvoicePatch is a shallow-merge update for an invoice. Patching Items
// recomputes the derived totals.
type InvoicePatch struct {
	Number   *string               `json:"number"`
	ClientID *string               `json:"clientId"`
	Date     *models.Date          `json:"date"`
	DueDate  *models.Date          `json:"dueDate"`
	Items    *[]models.LineItem    `json:"items"`
	Status   *models.InvoiceStatus `json:"status"`
}

// UpdateInvoice merges the patch into the stored invoice.
func (s *Store) UpdateInvoice(id string, p InvoicePatch) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return models.Invoice{}, err
	}

	for i := range snap.Invoices {
		if snap.Invoices[i].ID != id {
			continue
		}
		inv := &snap.Invoices[i]
		if p.Number != nil {
			inv.Number = *p.Number
		}
		if p.ClientID != nil {
			inv.ClientID = *p.ClientID
		}
		if p.Date != nil {
			inv.Date = *p.Date
		}
		if p.DueDate != nil {
			inv.DueDate = *p.DueDate
		}
		if p.Status != nil {
			inv.Status = *p.Status
		}
		if p.Items != nil {
			inv.Items = *p.Items
			inv.Recalculate()
		}
		if err := s.save(snap); err != nil {
			return models.Invoice{}, err
		}
		return *inv, nil
	}
	return models.Invoice{}, ErrNotFound
}

// DeleteInvoice removes an invoice by id.
func (s *Store) DeleteInvoice(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}

	kept := snap.Invoices[:0]
	for _, inv := range snap.Invoices {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	if len(kept) == len(snap.Invoices) {
		return ErrNotFound
	}
	snap.Invoices = kept
	return s.save(snap)
}
