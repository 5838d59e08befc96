package store

import (
	"errors"
	"path/filepath"
	"testing"

	"casense/internal/models"
	"casense/internal/services/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dir := t.TempDir()
	st, err := storage.New(dir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	return New(st, filepath.Join(dir, "data.json"))
}

func strptr(s string) *string { return &s }

func TestEmptyStoreSnapshot(t *testing.T) {
	s := newTestStore(t)

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(snap.Clients) != 0 || len(snap.Transactions) != 0 || len(snap.Invoices) != 0 {
		t.Errorf("fresh store not empty: %+v", snap)
	}
}

func TestClientCRUD(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateClient(models.Client{Name: "Gupta & Associates", GSTIN: "27AAAAA0000A1Z5"})
	if err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("CreateClient did not assign an id")
	}

	// Shallow merge: only patched fields change
	updated, err := s.UpdateClient(created.ID, ClientPatch{Email: strptr("gupta@example.com")})
	if err != nil {
		t.Fatalf("UpdateClient failed: %v", err)
	}
	if updated.Email != "gupta@example.com" {
		t.Errorf("Email = %q, want patched value", updated.Email)
	}
	if updated.Name != "Gupta & Associates" || updated.GSTIN != "27AAAAA0000A1Z5" {
		t.Errorf("unpatched fields changed: %+v", updated)
	}

	if err := s.DeleteClient(created.ID); err != nil {
		t.Fatalf("DeleteClient failed: %v", err)
	}
	clients, err := s.ListClients()
	if err != nil {
		t.Fatalf("ListClients failed: %v", err)
	}
	if len(clients) != 0 {
		t.Errorf("client list after delete = %d entries, want 0", len(clients))
	}
}

func TestUpdateUnknownIDs(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.UpdateClient("nope", ClientPatch{Name: strptr("x")}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateClient unknown id = %v, want ErrNotFound", err)
	}
	if _, err := s.UpdateTransaction("nope", TransactionPatch{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateTransaction unknown id = %v, want ErrNotFound", err)
	}
	if err := s.DeleteInvoice("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteInvoice unknown id = %v, want ErrNotFound", err)
	}
}

func TestCreateTransactionDefaultsDate(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateTransaction(models.Transaction{Type: models.Income, Amount: 1000})
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}
	if created.Date.IsZero() {
		t.Error("CreateTransaction left the date zero, want today")
	}
}

func TestInvoiceTotalsMaintained(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreateInvoice(models.Invoice{
		Number: "INV-001",
		Items:  []models.LineItem{{Description: "Audit", Quantity: 1, Rate: 10000, Tax: 18}},
	})
	if err != nil {
		t.Fatalf("CreateInvoice failed: %v", err)
	}
	if created.Total != 11800 {
		t.Errorf("created Total = %v, want 11800", created.Total)
	}
	if created.Status != models.InvoicePending {
		t.Errorf("created Status = %s, want pending", created.Status)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	// Patching items recomputes totals
	items := []models.LineItem{{Description: "Audit", Quantity: 2, Rate: 10000, Tax: 18}}
	updated, err := s.UpdateInvoice(created.ID, InvoicePatch{Items: &items})
	if err != nil {
		t.Fatalf("UpdateInvoice failed: %v", err)
	}
	if updated.Total != 23600 {
		t.Errorf("updated Total = %v, want 23600", updated.Total)
	}

	// Patching only the status leaves totals alone
	paid := models.InvoicePaid
	updated, err = s.UpdateInvoice(created.ID, InvoicePatch{Status: &paid})
	if err != nil {
		t.Fatalf("UpdateInvoice status failed: %v", err)
	}
	if updated.Status != models.InvoicePaid || updated.Total != 23600 {
		t.Errorf("status patch changed totals: %+v", updated)
	}
}

func TestDeleteClientKeepsReferences(t *testing.T) {
	s := newTestStore(t)

	client, err := s.CreateClient(models.Client{Name: "Departing Ltd"})
	if err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}
	txn, err := s.CreateTransaction(models.Transaction{Type: models.Income, Amount: 500, ClientID: client.ID})
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	if err := s.DeleteClient(client.ID); err != nil {
		t.Fatalf("DeleteClient failed: %v", err)
	}

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(snap.Transactions) != 1 || snap.Transactions[0].ID != txn.ID {
		t.Fatalf("transaction removed with its client: %+v", snap.Transactions)
	}
	// The dangling reference resolves to a placeholder, not an error
	if got := snap.ClientName(txn.ClientID); got != "Unknown" {
		t.Errorf("ClientName after delete = %q, want Unknown", got)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreateClient(models.Client{Name: "Stable"}); err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}

	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	snap.Clients[0].Name = "Mutated"

	fresh, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if fresh.Clients[0].Name != "Stable" {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestPersistenceAcrossStoreInstances(t *testing.T) {
	dir := t.TempDir()
	st, err := storage.New(dir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	path := filepath.Join(dir, "data.json")

	first := New(st, path)
	created, err := first.CreateClient(models.Client{Name: "Persistent"})
	if err != nil {
		t.Fatalf("CreateClient failed: %v", err)
	}

	second := New(st, path)
	clients, err := second.ListClients()
	if err != nil {
		t.Fatalf("ListClients failed: %v", err)
	}
	if len(clients) != 1 || clients[0].ID != created.ID {
		t.Errorf("reloaded clients = %+v, want the created one", clients)
	}
}
