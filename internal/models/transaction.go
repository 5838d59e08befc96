package models

import "time"

// TransactionType classifies a transaction for reporting purposes.
type TransactionType string

const (
	Income    TransactionType = "income"
	Expense   TransactionType = "expense"
	Asset     TransactionType = "asset"
	Liability TransactionType = "liability"
)

// Transaction is a single bookkeeping entry. Amount is always positive; the
// type decides which side of a report it lands on. ClientID may reference a
// client that no longer exists.
type Transaction struct {
	ID            string          `json:"id"`
	Date          Date            `json:"date"`
	ClientID      string          `json:"clientId,omitempty"`
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	Amount        float64         `json:"amount"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Reference     string          `json:"reference,omitempty"`
}

// CategorySuggestions lists the standard categories offered for each
// transaction type. Category itself is free text; these are only defaults.
var CategorySuggestions = map[TransactionType][]string{
	Income:    {"Service Revenue", "Product Sales", "Interest Income", "Other Income"},
	Expense:   {"Office Rent", "Salaries", "Utilities", "Marketing", "Travel", "Supplies", "Other Expenses"},
	Asset:     {"Cash", "Bank Account", "Accounts Receivable", "Inventory", "Equipment", "Property"},
	Liability: {"Accounts Payable", "Loans", "Tax Payable", "Other Liabilities"},
}

// TransactionSet wraps a slice of transactions with the aggregation
// primitives every report and insight is built from.
type TransactionSet struct {
	Transactions []Transaction
}

// NewTransactionSet creates a TransactionSet from a slice.
func NewTransactionSet(transactions []Transaction) *TransactionSet {
	return &TransactionSet{Transactions: transactions}
}

// Len returns the number of transactions.
func (ts *TransactionSet) Len() int {
	return len(ts.Transactions)
}

// SumWhere sums the amounts of transactions matching the predicate.
func (ts *TransactionSet) SumWhere(pred func(Transaction) bool) float64 {
	var sum float64
	for _, t := range ts.Transactions {
		if pred(t) {
			sum += t.Amount
		}
	}
	return sum
}

// GroupSum accumulates amounts per key. Keys are returned in first-seen
// order so callers can render stable rows.
func (ts *TransactionSet) GroupSum(key func(Transaction) string) ([]string, map[string]float64) {
	totals := make(map[string]float64)
	var order []string
	for _, t := range ts.Transactions {
		k := key(t)
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += t.Amount
	}
	return order, totals
}

// FilterWhere returns the transactions matching the predicate.
func (ts *TransactionSet) FilterWhere(pred func(Transaction) bool) *TransactionSet {
	result := &TransactionSet{}
	for _, t := range ts.Transactions {
		if pred(t) {
			result.Transactions = append(result.Transactions, t)
		}
	}
	return result
}

// SumByType sums the amounts of all transactions of the given type.
func (ts *TransactionSet) SumByType(tt TransactionType) float64 {
	return ts.SumWhere(func(t Transaction) bool { return t.Type == tt })
}

// FilterByType returns the transactions of the given type.
func (ts *TransactionSet) FilterByType(tt TransactionType) *TransactionSet {
	result := &TransactionSet{}
	for _, t := range ts.Transactions {
		if t.Type == tt {
			result.Transactions = append(result.Transactions, t)
		}
	}
	return result
}

// FilterByDateRange returns transactions within the range, inclusive on
// both ends at day granularity.
func (ts *TransactionSet) FilterByDateRange(start, end time.Time) *TransactionSet {
	result := &TransactionSet{}
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999999999, end.Location())

	for _, t := range ts.Transactions {
		if !t.Date.Time.Before(startDay) && !t.Date.Time.After(endDay) {
			result.Transactions = append(result.Transactions, t)
		}
	}
	return result
}

// FilterByClient returns transactions referencing the given client.
func (ts *TransactionSet) FilterByClient(clientID string) *TransactionSet {
	result := &TransactionSet{}
	for _, t := range ts.Transactions {
		if t.ClientID == clientID {
			result.Transactions = append(result.Transactions, t)
		}
	}
	return result
}

// CategoryTotals returns per-category totals for transactions of the given
// type, keys in first-seen order. Empty categories fall under "Uncategorized".
func (ts *TransactionSet) CategoryTotals(tt TransactionType) ([]string, map[string]float64) {
	return ts.FilterByType(tt).GroupSum(func(t Transaction) string {
		if t.Category == "" {
			return "Uncategorized"
		}
		return t.Category
	})
}
