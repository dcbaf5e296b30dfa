package statutory

import "github.com/shopspring/decimal"

// SuggestedContributions bundles the table lookups for one monthly rate.
// Deduction settings store fixed amounts; this is the default the tables
// would assign when a setting is created with auto-compute.
type SuggestedContributions struct {
	SSS          decimal.Decimal `json:"sss_contribution"`
	PhilHealth   decimal.Decimal `json:"philhealth_contribution"`
	PagIbig      decimal.Decimal `json:"pagibig_contribution"`
	EstimatedTax decimal.Decimal `json:"estimated_monthly_tax"`
}

func Suggest(monthlyRate decimal.Decimal) SuggestedContributions {
	sss := SSSEmployeeContribution(monthlyRate)
	philHealth := PhilHealthEmployeeContribution(monthlyRate)
	pagibig := PagIbigEmployeeContribution(monthlyRate)

	// Withholding applies after the statutory contributions come off the top.
	taxable := monthlyRate.Sub(sss).Sub(philHealth).Sub(pagibig)

	return SuggestedContributions{
		SSS:          sss,
		PhilHealth:   philHealth,
		PagIbig:      pagibig,
		EstimatedTax: MonthlyWithholdingTax(taxable),
	}
}
