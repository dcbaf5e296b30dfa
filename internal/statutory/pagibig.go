package statutory

import "github.com/shopspring/decimal"

// Pag-IBIG employee share: 1% of monthly compensation at or below 1,500,
// 2% above it, with the fund salary capped at 5,000 (so the share tops out
// at 100 pesos).
var (
	pagibigLowRate      = decimal.NewFromFloat(0.01)
	pagibigHighRate     = decimal.NewFromFloat(0.02)
	pagibigLowThreshold = decimal.NewFromInt(1500)
	pagibigSalaryCap    = decimal.NewFromInt(5000)
)

func PagIbigEmployeeContribution(monthlySalary decimal.Decimal) decimal.Decimal {
	if monthlySalary.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	base := monthlySalary
	if base.GreaterThan(pagibigSalaryCap) {
		base = pagibigSalaryCap
	}

	rate := pagibigHighRate
	if monthlySalary.LessThanOrEqual(pagibigLowThreshold) {
		rate = pagibigLowRate
	}

	return base.Mul(rate).Round(2)
}
