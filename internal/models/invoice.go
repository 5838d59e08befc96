package models

import "time"

// InvoiceStatus is the stored payment state of an invoice. Only pending and
// paid are persisted; overdue is derived from the due date at read time.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// LineItem is one billed row of an invoice. Subtotal, TaxAmount and Total
// are derived from Quantity, Rate and the Tax percentage.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Tax         float64 `json:"tax"`
	Subtotal    float64 `json:"subtotal"`
	TaxAmount   float64 `json:"taxAmount"`
	Total       float64 `json:"total"`
}

// Compute fills in the derived fields from quantity, rate and tax rate.
func (li *LineItem) Compute() {
	li.Subtotal = li.Quantity * li.Rate
	li.TaxAmount = li.Subtotal * (li.Tax / 100)
	li.Total = li.Subtotal + li.TaxAmount
}

// Invoice is a bill issued to a client. Number is a display label and is not
// guaranteed unique. Header totals are sums over the line items.
type Invoice struct {
	ID        string        `json:"id"`
	Number    string        `json:"number"`
	ClientID  string        `json:"clientId,omitempty"`
	Date      Date          `json:"date"`
	DueDate   Date          `json:"dueDate"`
	Items     []LineItem    `json:"items"`
	Subtotal  float64       `json:"subtotal"`
	Tax       float64       `json:"tax"`
	Total     float64       `json:"total"`
	Status    InvoiceStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt,omitempty"`
}

// Recalculate recomputes every line item and the header totals.
func (inv *Invoice) Recalculate() {
	var subtotal, tax float64
	for i := range inv.Items {
		inv.Items[i].Compute()
		subtotal += inv.Items[i].Subtotal
		tax += inv.Items[i].TaxAmount
	}
	inv.Subtotal = subtotal
	inv.Tax = tax
	inv.Total = subtotal + tax
}

// IsOverdue reports whether the invoice is unpaid past its due date.
func (inv *Invoice) IsOverdue(now time.Time) bool {
	return inv.Status != InvoicePaid && !inv.DueDate.IsZero() && inv.DueDate.Time.Before(now)
}

// EffectiveStatus returns the display status: paid, overdue if past due and
// unpaid, otherwise pending.
func (inv *Invoice) EffectiveStatus(now time.Time) InvoiceStatus {
	if inv.Status == InvoicePaid {
		return InvoicePaid
	}
	if inv.IsOverdue(now) {
		return InvoiceOverdue
	}
	return InvoicePending
}

// InvoiceSet wraps a slice of invoices with the aggregations the dashboard
// and insight engine need.
type InvoiceSet struct {
	Invoices []Invoice
}

// NewInvoiceSet creates an InvoiceSet from a slice.
func NewInvoiceSet(invoices []Invoice) *InvoiceSet {
	return &InvoiceSet{Invoices: invoices}
}

// Len returns the number of invoices.
func (is *InvoiceSet) Len() int {
	return len(is.Invoices)
}

// FilterByDateRange returns invoices issued within the range, inclusive at
// day granularity.
func (is *InvoiceSet) FilterByDateRange(start, end time.Time) *InvoiceSet {
	result := &InvoiceSet{}
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999999999, end.Location())

	for _, inv := range is.Invoices {
		if !inv.Date.Time.Before(startDay) && !inv.Date.Time.After(endDay) {
			result.Invoices = append(result.Invoices, inv)
		}
	}
	return result
}

// Unpaid returns invoices not yet marked paid, overdue ones included.
func (is *InvoiceSet) Unpaid() *InvoiceSet {
	result := &InvoiceSet{}
	for _, inv := range is.Invoices {
		if inv.Status != InvoicePaid {
			result.Invoices = append(result.Invoices, inv)
		}
	}
	return result
}

// Overdue returns unpaid invoices past their due date.
func (is *InvoiceSet) Overdue(now time.Time) *InvoiceSet {
	result := &InvoiceSet{}
	for _, inv := range is.Invoices {
		if inv.IsOverdue(now) {
			result.Invoices = append(result.Invoices, inv)
		}
	}
	return result
}

// CountPaid returns the number of invoices marked paid.
func (is *InvoiceSet) CountPaid() int {
	var n int
	for _, inv := range is.Invoices {
		if inv.Status == InvoicePaid {
			n++
		}
	}
	return n
}

// SumTotal sums the invoice totals.
func (is *InvoiceSet) SumTotal() float64 {
	var sum float64
	for _, inv := range is.Invoices {
		sum += inv.Total
	}
	return sum
}
