// Package reports builds the four financial statements from a transaction
// set already filtered to the reporting range. Every generator is a pure
// function expressed through the TransactionSet aggregation primitives, so
// repeated calls over the same input yield identical output.
package reports

import "casense/internal/models"

// ProfitLoss computes income, expenses and net profit.
func ProfitLoss(ts *models.TransactionSet) models.ProfitLoss {
	income := ts.SumByType(models.Income)
	expenses := ts.SumByType(models.Expense)
	profit := income - expenses

	return models.ProfitLoss{
		Income:     income,
		Expenses:   expenses,
		Profit:     profit,
		Profitable: profit >= 0,
	}
}

// BalanceSheet computes assets, liabilities and derived equity. Equity folds
// in retained earnings (income minus expenses), which makes the accounting
// identity Assets == Liabilities + Equity hold by construction.
func BalanceSheet(ts *models.TransactionSet) models.BalanceSheet {
	assets := ts.SumByType(models.Asset)
	liabilities := ts.SumByType(models.Liability)
	income := ts.SumByType(models.Income)
	expenses := ts.SumByType(models.Expense)

	equity := assets - liabilities + (income - expenses)

	return models.BalanceSheet{
		Assets:      assets,
		Liabilities: liabilities,
		Equity:      equity,
		Total:       liabilities + equity,
	}
}

// CashFlow computes operating inflows and outflows. Inflows and outflows
// mirror the profit and loss figures: the books record no timing distinction
// between accrual and settlement, and asset/liability entries stay out of
// both statements.
func CashFlow(ts *models.TransactionSet) models.CashFlow {
	inflows := ts.SumByType(models.Income)
	outflows := ts.SumByType(models.Expense)
	net := inflows - outflows

	return models.CashFlow{
		Inflows:  inflows,
		Outflows: outflows,
		Net:      net,
		Positive: net >= 0,
	}
}

// TrialBalance groups transactions by category, posting expense and asset
// amounts to the debit column and everything else to credit. Rows keep the
// order categories first appear in the set.
func TrialBalance(ts *models.TransactionSet) models.TrialBalance {
	isDebit := func(t models.Transaction) bool {
		return t.Type == models.Expense || t.Type == models.Asset
	}
	byCategory := func(t models.Transaction) string { return t.Category }

	_, debits := ts.FilterWhere(isDebit).GroupSum(byCategory)
	_, credits := ts.FilterWhere(func(t models.Transaction) bool { return !isDebit(t) }).GroupSum(byCategory)

	// One row per category, ordered by first occurrence across the whole set.
	accounts, _ := ts.GroupSum(byCategory)

	tb := models.TrialBalance{}
	for _, account := range accounts {
		row := models.TrialBalanceRow{
			Account: account,
			Debit:   debits[account],
			Credit:  credits[account],
		}
		tb.TotalDebit += row.Debit
		tb.TotalCredit += row.Credit
		tb.Rows = append(tb.Rows, row)
	}
	return tb
}

// Generate dispatches to the generator for the given kind. Unknown kinds
// fall back to the profit and loss statement.
func Generate(kind models.ReportKind, ts *models.TransactionSet) models.Report {
	report := models.Report{Kind: models.ParseReportKind(string(kind))}

	switch report.Kind {
	case models.ReportBalanceSheet:
		bs := BalanceSheet(ts)
		report.BalanceSheet = &bs
	case models.ReportCashFlow:
		cf := CashFlow(ts)
		report.CashFlow = &cf
	case models.ReportTrialBalance:
		tb := TrialBalance(ts)
		report.TrialBalance = &tb
	default:
		pl := ProfitLoss(ts)
		report.ProfitLoss = &pl
	}
	return report
}
