// Package tax implements the GST calculator, the two-regime income tax slab
// calculator, and the simplified liability estimate shown on the dashboard.
package tax

// DefaultGSTRate is the standard services rate applied when the caller does
// not supply one.
const DefaultGSTRate = 18.0

// GSTResult is the outcome of a GST computation on a base amount.
type GSTResult struct {
	BaseAmount float64 `json:"baseAmount"`
	Rate       float64 `json:"rate"`
	GSTAmount  float64 `json:"gstAmount"`
	Total      float64 `json:"total"`
}

// GST applies a percentage rate to a base amount.
func GST(base, rate float64) GSTResult {
	amount := base * (rate / 100)
	return GSTResult{
		BaseAmount: base,
		Rate:       rate,
		GSTAmount:  amount,
		Total:      base + amount,
	}
}
