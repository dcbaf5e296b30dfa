package statutory

import "github.com/shopspring/decimal"

// 2024 SSS schedule. The monthly salary credit runs from 4,000 to 30,000 in
// 500-peso steps; the employee share is 4.5% of the credit.
var (
	sssMinSalaryCredit = decimal.NewFromInt(4000)
	sssMaxSalaryCredit = decimal.NewFromInt(30000)
	sssCreditStep      = decimal.NewFromInt(500)
	sssEmployeeRate    = decimal.NewFromFloat(0.045)
)

// SSSSalaryCredit maps a monthly salary to its salary credit bracket.
// Salaries below the floor of a bracket's range (bracket midpoint - 250)
// fall into the next lower credit, matching the published table.
func SSSSalaryCredit(monthlySalary decimal.Decimal) decimal.Decimal {
	if monthlySalary.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	halfStep := sssCreditStep.Div(decimal.NewFromInt(2))
	credit := monthlySalary.Add(halfStep).Div(sssCreditStep).Floor().Mul(sssCreditStep)

	if credit.LessThan(sssMinSalaryCredit) {
		return sssMinSalaryCredit
	}
	if credit.GreaterThan(sssMaxSalaryCredit) {
		return sssMaxSalaryCredit
	}
	return credit
}

// SSSEmployeeContribution returns the monthly employee share for a salary.
func SSSEmployeeContribution(monthlySalary decimal.Decimal) decimal.Decimal {
	credit := SSSSalaryCredit(monthlySalary)
	return credit.Mul(sssEmployeeRate).Round(2)
}
