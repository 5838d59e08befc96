package tax

// Regime selects one of the two income tax slab schedules.
type Regime string

const (
	RegimeOld Regime = "old"
	RegimeNew Regime = "new"
)

// Standard deduction applied under the old regime only.
const standardDeduction = 50000

// Cess is levied flat on the computed slab tax under both regimes.
const cessRate = 0.04

// IncomeTaxResult breaks down an income tax computation.
type IncomeTaxResult struct {
	Regime        Regime  `json:"regime"`
	AnnualIncome  float64 `json:"annualIncome"`
	TaxableIncome float64 `json:"taxableIncome"`
	Tax           float64 `json:"tax"`
	Cess          float64 `json:"cess"`
	TotalTax      float64 `json:"totalTax"`
}

// IncomeTax computes tax owed on an annual income under the chosen regime.
// Slab boundaries are inclusive-upper: the boundary amount itself is taxed by
// the lower slab's formula. Anything other than the old regime uses the new
// regime schedule.
func IncomeTax(annualIncome float64, regime Regime) IncomeTaxResult {
	var taxable, tax float64

	if regime == RegimeOld {
		taxable = annualIncome - standardDeduction
		if taxable < 0 {
			taxable = 0
		}
		switch {
		case taxable <= 250000:
			tax = 0
		case taxable <= 500000:
			tax = (taxable - 250000) * 0.05
		case taxable <= 1000000:
			tax = 12500 + (taxable-500000)*0.20
		default:
			tax = 112500 + (taxable-1000000)*0.30
		}
	} else {
		regime = RegimeNew
		taxable = annualIncome
		switch {
		case taxable <= 300000:
			tax = 0
		case taxable <= 700000:
			tax = (taxable - 300000) * 0.05
		case taxable <= 1000000:
			tax = 20000 + (taxable-700000)*0.10
		case taxable <= 1200000:
			tax = 50000 + (taxable-1000000)*0.15
		case taxable <= 1500000:
			tax = 80000 + (taxable-1200000)*0.20
		default:
			tax = 140000 + (taxable-1500000)*0.30
		}
	}

	cess := tax * cessRate

	return IncomeTaxResult{
		Regime:        regime,
		AnnualIncome:  annualIncome,
		TaxableIncome: taxable,
		Tax:           tax,
		Cess:          cess,
		TotalTax:      tax + cess,
	}
}
