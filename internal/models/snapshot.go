package models

// Snapshot is the full record set at a point in time, matching the layout of
// the persisted JSON document. The analysis services receive snapshots and
// never mutate them; the store hands out copies.
type Snapshot struct {
	Clients      []Client      `json:"clients"`
	Transactions []Transaction `json:"transactions"`
	Invoices     []Invoice     `json:"invoices"`
}

// TransactionSet wraps the snapshot's transactions.
func (s *Snapshot) TransactionSet() *TransactionSet {
	return NewTransactionSet(s.Transactions)
}

// InvoiceSet wraps the snapshot's invoices.
func (s *Snapshot) InvoiceSet() *InvoiceSet {
	return NewInvoiceSet(s.Invoices)
}

// ClientName resolves a client reference for display. Empty references
// resolve to "N/A", dangling ones to "Unknown"; neither is an error.
func (s *Snapshot) ClientName(id string) string {
	if id == "" {
		return "N/A"
	}
	for _, c := range s.Clients {
		if c.ID == id {
			return c.Name
		}
	}
	return "Unknown"
}

// Copy returns a snapshot whose slices are independent of the receiver.
func (s *Snapshot) Copy() Snapshot {
	out := Snapshot{
		Clients:      make([]Client, len(s.Clients)),
		Transactions: make([]Transaction, len(s.Transactions)),
		Invoices:     make([]Invoice, len(s.Invoices)),
	}
	copy(out.Clients, s.Clients)
	copy(out.Transactions, s.Transactions)
	for i, inv := range s.Invoices {
		items := make([]LineItem, len(inv.Items))
		copy(items, inv.Items)
		inv.Items = items
		out.Invoices[i] = inv
	}
	return out
}
