package statutory

import "github.com/shopspring/decimal"

// 2024 PhilHealth premium: 5% of the monthly basic salary, floored at
// 10,000 and capped at 100,000, split evenly between employer and employee.
var (
	philHealthRate    = decimal.NewFromFloat(0.05)
	philHealthFloor   = decimal.NewFromInt(10000)
	philHealthCeiling = decimal.NewFromInt(100000)
	two               = decimal.NewFromInt(2)
)

func PhilHealthPremium(monthlySalary decimal.Decimal) decimal.Decimal {
	if monthlySalary.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	base := monthlySalary
	if base.LessThan(philHealthFloor) {
		base = philHealthFloor
	}
	if base.GreaterThan(philHealthCeiling) {
		base = philHealthCeiling
	}

	return base.Mul(philHealthRate).Round(2)
}

// PhilHealthEmployeeContribution is the employee half of the premium.
func PhilHealthEmployeeContribution(monthlySalary decimal.Decimal) decimal.Decimal {
	return PhilHealthPremium(monthlySalary).Div(two).Round(2)
}
