package models

import "time"

// DashboardMetrics holds the KPI tiles shown on the dashboard, computed for
// one named period.
type DashboardMetrics struct {
	Period          string    `json:"period"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Revenue         float64   `json:"revenue"`
	Expenses        float64   `json:"expenses"`
	Profit          float64   `json:"profit"`
	ActiveClients   int       `json:"activeClients"`
	PendingInvoices int       `json:"pendingInvoices"`
	TaxLiability    float64   `json:"taxLiability"`
}
