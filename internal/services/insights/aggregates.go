package insights

import (
	"time"

	"casense/internal/models"
)

// Aggregates are the precomputed figures the rule set evaluates against.
// Build them once per request from a snapshot; the engine itself performs no
// record scans.
type Aggregates struct {
	Income       float64
	Expenses     float64
	Profit       float64
	ProfitMargin float64

	ClientCount int

	InvoiceCount    int
	PendingInvoices int
	PaidInvoices    int
	OverdueInvoices int
	OverdueAmount   float64
	UnpaidInvoices  int
	UnpaidAmount    float64

	// Expense totals per category, first-seen order preserved for the
	// top-category rule.
	ExpenseCategories []string
	ExpenseByCategory map[string]float64
}

// BuildAggregates derives the rule inputs from a full record snapshot. The
// profit margin is zero whenever income is zero, never a division by zero.
func BuildAggregates(snap *models.Snapshot, now time.Time) Aggregates {
	ts := snap.TransactionSet()
	is := snap.InvoiceSet()

	income := ts.SumByType(models.Income)
	expenses := ts.SumByType(models.Expense)
	profit := income - expenses

	var margin float64
	if income > 0 {
		margin = (profit / income) * 100
	}

	unpaid := is.Unpaid()
	overdue := is.Overdue(now)

	categories, totals := ts.CategoryTotals(models.Expense)

	return Aggregates{
		Income:            income,
		Expenses:          expenses,
		Profit:            profit,
		ProfitMargin:      margin,
		ClientCount:       len(snap.Clients),
		InvoiceCount:      is.Len(),
		PendingInvoices:   unpaid.Len(),
		PaidInvoices:      is.CountPaid(),
		OverdueInvoices:   overdue.Len(),
		OverdueAmount:     overdue.SumTotal(),
		UnpaidInvoices:    unpaid.Len(),
		UnpaidAmount:      unpaid.SumTotal(),
		ExpenseCategories: categories,
		ExpenseByCategory: totals,
	}
}

// TopExpenseCategory returns the largest expense category and its total.
// Ties resolve to the earlier-seen category.
func (a Aggregates) TopExpenseCategory() (string, float64) {
	var topName string
	var topTotal float64
	for _, name := range a.ExpenseCategories {
		if a.ExpenseByCategory[name] > topTotal {
			topName = name
			topTotal = a.ExpenseByCategory[name]
		}
	}
	return topName, topTotal
}

// AvgClientValue is income spread across the client base, zero when there
// are no clients.
func (a Aggregates) AvgClientValue() float64 {
	if a.ClientCount == 0 {
		return 0
	}
	return a.Income / float64(a.ClientCount)
}

// ExpenseRatio is expenses as a percentage of income, zero when income is
// zero.
func (a Aggregates) ExpenseRatio() float64 {
	if a.Income <= 0 {
		return 0
	}
	return (a.Expenses / a.Income) * 100
}
