// Package metrics computes the dashboard KPI tiles for a named period.
package metrics

import (
	"time"

	"casense/internal/models"
	"casense/internal/services/period"
	"casense/internal/services/tax"
)

// Dashboard derives the tile figures from a snapshot for the period ending
// at now. Transactions and invoices are filtered to the resolved range; the
// client count covers the whole book, not just the period.
func Dashboard(snap *models.Snapshot, name period.Name, now time.Time) models.DashboardMetrics {
	r := period.Resolve(name, now)

	transactions := snap.TransactionSet().FilterByDateRange(r.Start, r.End)
	invoices := snap.InvoiceSet().FilterByDateRange(r.Start, r.End)

	revenue := transactions.SumByType(models.Income)
	expenses := transactions.SumByType(models.Expense)

	return models.DashboardMetrics{
		Period:          string(name),
		StartDate:       r.Start,
		EndDate:         r.End,
		Revenue:         revenue,
		Expenses:        expenses,
		Profit:          revenue - expenses,
		ActiveClients:   len(snap.Clients),
		PendingInvoices: invoices.Unpaid().Len(),
		TaxLiability:    tax.LiabilityEstimate(transactions),
	}
}
