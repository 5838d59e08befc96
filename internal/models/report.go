package models

// ReportKind identifies one of the four financial reports.
type ReportKind string

const (
	ReportProfitLoss   ReportKind = "pl"
	ReportBalanceSheet ReportKind = "balance-sheet"
	ReportCashFlow     ReportKind = "cash-flow"
	ReportTrialBalance ReportKind = "trial-balance"
)

// ParseReportKind maps a request value to a report kind. Unrecognized values
// fall back to the profit and loss statement.
func ParseReportKind(s string) ReportKind {
	switch ReportKind(s) {
	case ReportBalanceSheet, ReportCashFlow, ReportTrialBalance:
		return ReportKind(s)
	}
	return ReportProfitLoss
}

// ProfitLoss is the profit and loss statement for a period.
type ProfitLoss struct {
	Income     float64 `json:"income"`
	Expenses   float64 `json:"expenses"`
	Profit     float64 `json:"profit"`
	Profitable bool    `json:"profitable"`
}

// BalanceSheet reports assets against liabilities and equity. Equity is
// derived so that Assets == Liabilities + Equity always holds.
type BalanceSheet struct {
	Assets      float64 `json:"assets"`
	Liabilities float64 `json:"liabilities"`
	Equity      float64 `json:"equity"`
	Total       float64 `json:"total"`
}

// CashFlow reports operating inflows and outflows for a period.
type CashFlow struct {
	Inflows  float64 `json:"inflows"`
	Outflows float64 `json:"outflows"`
	Net      float64 `json:"net"`
	Positive bool    `json:"positive"`
}

// TrialBalanceRow is one account line of the trial balance.
type TrialBalanceRow struct {
	Account string  `json:"account"`
	Debit   float64 `json:"debit"`
	Credit  float64 `json:"credit"`
}

// TrialBalance lists debit and credit totals per category. Rows appear in
// the order categories first occur in the transaction set.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  float64           `json:"totalDebit"`
	TotalCredit float64           `json:"totalCredit"`
}

// Report is the envelope returned by the report endpoint; exactly one of the
// statement fields is set, matching Kind.
type Report struct {
	Kind         ReportKind    `json:"kind"`
	From         Date          `json:"from"`
	To           Date          `json:"to"`
	ProfitLoss   *ProfitLoss   `json:"profitLoss,omitempty"`
	BalanceSheet *BalanceSheet `json:"balanceSheet,omitempty"`
	CashFlow     *CashFlow     `json:"cashFlow,omitempty"`
	TrialBalance *TrialBalance `json:"trialBalance,omitempty"`
}
