package metrics

import (
	"testing"
	"time"

	"casense/internal/models"
	"casense/internal/services/period"
)

func date(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func TestDashboard(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	snap := models.Snapshot{
		Clients: []models.Client{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}},
		Transactions: []models.Transaction{
			// Inside the month window
			{Type: models.Income, Amount: 80000, Date: date(t, "2024-06-01")},
			{Type: models.Expense, Amount: 30000, Date: date(t, "2024-06-10")},
			// Outside the window
			{Type: models.Income, Amount: 999999, Date: date(t, "2024-01-01")},
		},
		Invoices: []models.Invoice{
			{Status: models.InvoicePending, Total: 10000, Date: date(t, "2024-06-05")},
			{Status: models.InvoicePaid, Total: 5000, Date: date(t, "2024-06-06")},
			// Pending but issued outside the window
			{Status: models.InvoicePending, Total: 7000, Date: date(t, "2024-02-01")},
		},
	}

	m := Dashboard(&snap, period.Month, now)

	if m.Revenue != 80000 {
		t.Errorf("Revenue = %v, want 80000", m.Revenue)
	}
	if m.Expenses != 30000 {
		t.Errorf("Expenses = %v, want 30000", m.Expenses)
	}
	if m.Profit != 50000 {
		t.Errorf("Profit = %v, want 50000", m.Profit)
	}
	if m.ActiveClients != 3 {
		t.Errorf("ActiveClients = %d, want 3 (whole book, not period)", m.ActiveClients)
	}
	if m.PendingInvoices != 1 {
		t.Errorf("PendingInvoices = %d, want 1", m.PendingInvoices)
	}
	// Flat 18% of period income
	if m.TaxLiability != 14400 {
		t.Errorf("TaxLiability = %v, want 14400", m.TaxLiability)
	}
	if m.Period != "month" {
		t.Errorf("Period = %q, want month", m.Period)
	}
}

func TestDashboardEmptySnapshot(t *testing.T) {
	m := Dashboard(&models.Snapshot{}, period.Year, time.Now())

	if m.Revenue != 0 || m.Expenses != 0 || m.Profit != 0 || m.TaxLiability != 0 {
		t.Errorf("empty snapshot produced nonzero figures: %+v", m)
	}
	if m.ActiveClients != 0 || m.PendingInvoices != 0 {
		t.Errorf("empty snapshot produced nonzero counts: %+v", m)
	}
}
