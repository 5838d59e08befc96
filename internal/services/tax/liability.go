package tax

import "casense/internal/models"

// Flat rate for the dashboard estimate, assuming GST on services.
const liabilityRate = 0.18

// LiabilityEstimate is the rough tax figure shown on the dashboard tile: a
// flat percentage of period income. It is a placeholder, not a slab
// computation; keep it independent of IncomeTax.
func LiabilityEstimate(ts *models.TransactionSet) float64 {
	return ts.SumByType(models.Income) * liabilityRate
}
