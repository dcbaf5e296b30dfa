package deduction

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Resolution carries everything the payroll run needs from the employee's
// deduction setting. When no setting applies, Found is false and every
// amount is zero; payroll still produces a record.
type Resolution struct {
	Found   bool
	Setting *DeductionSetting

	SSSContribution        decimal.Decimal
	PhilHealthContribution decimal.Decimal
	PagIbigContribution    decimal.Decimal
	TaxWithheld            decimal.Decimal
	LoanDeductions         decimal.Decimal
	OtherDeductions        decimal.Decimal

	Allowances     decimal.Decimal
	OtherAdditions decimal.Decimal
}

// TotalDeductions sums the deduction side of the resolution.
func (r Resolution) TotalDeductions() decimal.Decimal {
	return r.SSSContribution.
		Add(r.PhilHealthContribution).
		Add(r.PagIbigContribution).
		Add(r.TaxWithheld).
		Add(r.LoanDeductions).
		Add(r.OtherDeductions)
}

// TotalAdditions sums the earnings on top of basic pay and overtime.
func (r Resolution) TotalAdditions() decimal.Decimal {
	return r.Allowances.Add(r.OtherAdditions)
}

//go:generate mockgen -source=resolver.go -destination=mock/resolver_mock.go -package=mock
type Resolver interface {
	// Resolve looks up the employee's active setting and prices the
	// deduction side against the earned subtotal (regular + overtime).
	Resolve(ctx context.Context, employeeID string, earnedSubtotal decimal.Decimal) (Resolution, error)
}

type resolver struct {
	repo Repository
}

func NewResolver(repo Repository) Resolver {
	return &resolver{repo: repo}
}

func (rv *resolver) Resolve(ctx context.Context, employeeID string, earnedSubtotal decimal.Decimal) (Resolution, error) {
	setting, err := rv.repo.FindActiveByEmployee(ctx, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return zeroResolution(), nil
	}
	if err != nil {
		return Resolution{}, err
	}

	// The taxable subtotal counts the setting's own allowances on top of
	// what the employee earned from attendance and overtime.
	grossSubtotal := earnedSubtotal.Add(setting.Allowances)

	return Resolution{
		Found:                  true,
		Setting:                setting,
		SSSContribution:        setting.SSSContribution,
		PhilHealthContribution: setting.PhilHealthContribution,
		PagIbigContribution:    setting.PagIbigContribution,
		TaxWithheld:            WithholdingTax(grossSubtotal, setting.TaxExemption, setting.TaxRate),
		LoanDeductions:         setting.Loans.Total(),
		OtherDeductions:        setting.OtherDeductions,
		Allowances:             setting.Allowances,
		OtherAdditions:         setting.OtherAdditions,
	}, nil
}

// WithholdingTax applies the flat-rate formula: the exemption is taken off
// the gross subtotal first and the result never goes negative.
func WithholdingTax(grossSubtotal, exemption, rate decimal.Decimal) decimal.Decimal {
	taxable := grossSubtotal.Sub(exemption)
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return taxable.Mul(rate).Round(2)
}

func zeroResolution() Resolution {
	return Resolution{
		Found:                  false,
		SSSContribution:        decimal.Zero,
		PhilHealthContribution: decimal.Zero,
		PagIbigContribution:    decimal.Zero,
		TaxWithheld:            decimal.Zero,
		LoanDeductions:         decimal.Zero,
		OtherDeductions:        decimal.Zero,
		Allowances:             decimal.Zero,
		OtherAdditions:         decimal.Zero,
	}
}
