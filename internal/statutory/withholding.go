package statutory

import "github.com/shopspring/decimal"

// TaxBracket is one row of the progressive withholding table: income above
// Over is taxed at Rate, on top of the fixed Base amount.
type TaxBracket struct {
	Over decimal.Decimal
	Base decimal.Decimal
	Rate decimal.Decimal
}

// BIR monthly withholding table under the TRAIN schedule effective 2023.
var monthlyWithholdingBrackets = []TaxBracket{
	{decimal.Zero, decimal.Zero, decimal.Zero},
	{decimal.NewFromFloat(20833), decimal.Zero, decimal.NewFromFloat(0.15)},
	{decimal.NewFromFloat(33333), decimal.NewFromFloat(1875), decimal.NewFromFloat(0.20)},
	{decimal.NewFromFloat(66667), decimal.NewFromFloat(8541.80), decimal.NewFromFloat(0.25)},
	{decimal.NewFromFloat(166667), decimal.NewFromFloat(33541.80), decimal.NewFromFloat(0.30)},
	{decimal.NewFromFloat(666667), decimal.NewFromFloat(183541.80), decimal.NewFromFloat(0.35)},
}

// MonthlyWithholdingTax walks the bracket table for a monthly taxable income.
func MonthlyWithholdingTax(taxableIncome decimal.Decimal) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	bracket := monthlyWithholdingBrackets[0]
	for _, b := range monthlyWithholdingBrackets {
		if taxableIncome.LessThan(b.Over) {
			break
		}
		bracket = b
	}

	excess := taxableIncome.Sub(bracket.Over)
	return bracket.Base.Add(excess.Mul(bracket.Rate)).Round(2)
}

// SemiMonthlyWithholdingTax halves the monthly table, the common shortcut
// for semi-monthly pay periods.
func SemiMonthlyWithholdingTax(taxableIncome decimal.Decimal) decimal.Decimal {
	return MonthlyWithholdingTax(taxableIncome.Mul(two)).Div(two).Round(2)
}
