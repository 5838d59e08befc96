package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"casense/internal/models"
)

func TestBuildAggregates(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	due, _ := models.ParseDate("2024-06-01")

	snap := models.Snapshot{
		Clients: []models.Client{{ID: "c1"}, {ID: "c2"}},
		Transactions: []models.Transaction{
			{Type: models.Income, Amount: 100000},
			{Type: models.Expense, Category: "Office Rent", Amount: 40000},
			{Type: models.Expense, Category: "Travel", Amount: 10000},
		},
		Invoices: []models.Invoice{
			{Status: models.InvoicePaid, Total: 30000},
			{Status: models.InvoicePending, Total: 20000, DueDate: due},
		},
	}

	agg := BuildAggregates(&snap, now)

	assert.Equal(t, 100000.0, agg.Income)
	assert.Equal(t, 50000.0, agg.Expenses)
	assert.Equal(t, 50000.0, agg.Profit)
	assert.Equal(t, 50.0, agg.ProfitMargin)
	assert.Equal(t, 2, agg.ClientCount)
	assert.Equal(t, 1, agg.PaidInvoices)
	assert.Equal(t, 1, agg.PendingInvoices)
	assert.Equal(t, 1, agg.OverdueInvoices)
	assert.Equal(t, 20000.0, agg.OverdueAmount)

	name, total := agg.TopExpenseCategory()
	assert.Equal(t, "Office Rent", name)
	assert.Equal(t, 40000.0, total)
	assert.Equal(t, 50000.0, agg.AvgClientValue())
	assert.Equal(t, 50.0, agg.ExpenseRatio())
}

func TestAggregatesZeroGuards(t *testing.T) {
	agg := BuildAggregates(&models.Snapshot{}, time.Now())

	assert.Zero(t, agg.ProfitMargin)
	assert.Zero(t, agg.AvgClientValue())
	assert.Zero(t, agg.ExpenseRatio())
}

func TestGenerateEmptyBookFallsBack(t *testing.T) {
	agg := BuildAggregates(&models.Snapshot{}, time.Now())

	for _, cat := range []models.InsightCategory{
		models.CategoryProfit, models.CategoryCost, models.CategoryGrowth, models.CategoryCashFlow,
	} {
		out := Generate(agg, cat)
		require.Len(t, out, 1, "category %s", cat)
		assert.Equal(t, "Getting Started", out[0].Title)
		assert.Equal(t, models.ActionAddFirstClient, out[0].Action)
		assert.Equal(t, models.PriorityLow, out[0].Priority)
	}
}

func TestLowMarginRuleNeedsIncome(t *testing.T) {
	// Expenses but no income: margin stays zero, so the low-margin rule must
	// not fire even though the business is losing money.
	agg := Aggregates{Expenses: 50000}
	out := Generate(agg, models.CategoryProfit)

	for _, in := range out {
		assert.NotEqual(t, "Low Profit Margin Detected", in.Title)
	}
}

func TestProfitRules(t *testing.T) {
	tests := []struct {
		name       string
		agg        Aggregates
		wantTitles []string
	}{
		{
			name: "thin margin fires high priority alert",
			agg:  Aggregates{Income: 100000, Expenses: 95000, Profit: 5000, ProfitMargin: 5},
			wantTitles: []string{
				"Low Profit Margin Detected",
				"High Expense Ratio",
			},
		},
		{
			name:       "healthy margin praised",
			agg:        Aggregates{Income: 100000, Expenses: 60000, Profit: 40000, ProfitMargin: 40},
			wantTitles: []string{"Excellent Profitability"},
		},
		{
			name:       "mid margin fires nothing in profit category",
			agg:        Aggregates{Income: 100000, Expenses: 15000, Profit: 85000, ProfitMargin: 15},
			wantTitles: []string{"Getting Started"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Generate(tt.agg, models.CategoryProfit)
			require.Len(t, out, len(tt.wantTitles))
			for i, want := range tt.wantTitles {
				assert.Equal(t, want, out[i].Title)
			}
		})
	}
}

func TestLowMarginImpactFigure(t *testing.T) {
	agg := Aggregates{Income: 100000, Expenses: 95000, Profit: 5000, ProfitMargin: 5}
	out := Generate(agg, models.CategoryProfit)

	require.NotEmpty(t, out)
	// Impact is the gap to a 15% margin: 100000*0.15 - 5000 = 10000
	assert.Equal(t, "Potential increase: ₹10,000", out[0].Impact)
	assert.Equal(t, models.PriorityHigh, out[0].Priority)
	assert.Equal(t, models.ActionReviewPricing, out[0].Action)
}

func TestCostRules(t *testing.T) {
	agg := Aggregates{
		Income:            200000,
		Expenses:          100000,
		ExpenseCategories: []string{"Office Rent", "Travel"},
		ExpenseByCategory: map[string]float64{"Office Rent": 40000, "Travel": 60000},
	}
	out := Generate(agg, models.CategoryCost)

	require.Len(t, out, 2)
	assert.Equal(t, "Major Expense Category Identified", out[0].Title)
	assert.Contains(t, out[0].Description, "Travel")
	assert.Equal(t, "Automated Cost Tracking", out[1].Title)
}

func TestRiskRules(t *testing.T) {
	agg := Aggregates{
		Income:          500000,
		ClientCount:     3,
		PendingInvoices: 6,
		OverdueInvoices: 2,
		OverdueAmount:   45000,
	}
	out := Generate(agg, models.CategoryRisk)

	require.Len(t, out, 3)
	assert.Equal(t, "Overdue Invoices Risk", out[0].Title)
	assert.Equal(t, "At risk: ₹45,000", out[0].Impact)
	assert.Equal(t, "High Pending Invoice Volume", out[1].Title)
	assert.Equal(t, "Client Concentration Risk", out[2].Title)
}

func TestCashFlowRules(t *testing.T) {
	agg := Aggregates{
		Income:       100000,
		Expenses:     85000,
		UnpaidAmount: 40000,
	}
	out := Generate(agg, models.CategoryCashFlow)

	require.Len(t, out, 2)
	assert.Equal(t, "Cash Flow Constraint", out[0].Title)
	assert.Equal(t, "Tight Cash Flow Margin", out[1].Title)
}

func TestGenerateUnknownCategoryUsesProfitRules(t *testing.T) {
	agg := Aggregates{Income: 100000, Expenses: 60000, Profit: 40000, ProfitMargin: 40}
	out := Generate(agg, "mystery")

	require.NotEmpty(t, out)
	assert.Equal(t, "Excellent Profitability", out[0].Title)
}
