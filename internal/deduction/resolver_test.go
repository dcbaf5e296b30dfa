package deduction

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeResolverRepo struct {
	Repository
	findActiveFn func(ctx context.Context, employeeID string) (*DeductionSetting, error)
}

func (f *fakeResolverRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeResolverRepo) FindActiveByEmployee(ctx context.Context, employeeID string) (*DeductionSetting, error) {
	return f.findActiveFn(ctx, employeeID)
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func activeSetting() *DeductionSetting {
	return &DeductionSetting{
		ID:                     uuid.New(),
		EmployeeID:             uuid.New(),
		SSSContribution:        d("500"),
		PhilHealthContribution: d("300"),
		PagIbigContribution:    d("100"),
		TaxRate:                d("0.10"),
		TaxExemption:           d("15000"),
		OtherDeductions:        d("0"),
		Allowances:             d("0"),
		OtherAdditions:         d("0"),
		IsActive:               true,
	}
}

func TestResolve_CopiesContributionsAndComputesTax(t *testing.T) {
	repo := &fakeResolverRepo{
		findActiveFn: func(ctx context.Context, employeeID string) (*DeductionSetting, error) {
			return activeSetting(), nil
		},
	}
	rv := NewResolver(repo)

	res, err := rv.Resolve(context.Background(), uuid.NewString(), d("20625"))

	assert.NoError(t, err)
	assert.True(t, res.Found)
	assert.True(t, d("500").Equal(res.SSSContribution))
	assert.True(t, d("300").Equal(res.PhilHealthContribution))
	assert.True(t, d("100").Equal(res.PagIbigContribution))
	// (20625 - 15000) * 0.10
	assert.True(t, d("562.50").Equal(res.TaxWithheld), "tax: %s", res.TaxWithheld)
	assert.True(t, d("1462.50").Equal(res.TotalDeductions()), "total: %s", res.TotalDeductions())
}

func TestResolve_AllowancesRaiseTheTaxBase(t *testing.T) {
	setting := activeSetting()
	setting.Allowances = d("2000")
	repo := &fakeResolverRepo{
		findActiveFn: func(ctx context.Context, employeeID string) (*DeductionSetting, error) {
			return setting, nil
		},
	}
	rv := NewResolver(repo)

	res, err := rv.Resolve(context.Background(), uuid.NewString(), d("20000"))

	assert.NoError(t, err)
	// (20000 + 2000 - 15000) * 0.10
	assert.True(t, d("700").Equal(res.TaxWithheld), "tax: %s", res.TaxWithheld)
	assert.True(t, d("2000").Equal(res.Allowances))
}

func TestResolve_ExemptionAboveGrossMeansZeroTax(t *testing.T) {
	setting := activeSetting()
	setting.TaxExemption = d("25000")
	repo := &fakeResolverRepo{
		findActiveFn: func(ctx context.Context, employeeID string) (*DeductionSetting, error) {
			return setting, nil
		},
	}
	rv := NewResolver(repo)

	res, err := rv.Resolve(context.Background(), uuid.NewString(), d("20625"))

	assert.NoError(t, err)
	assert.True(t, res.TaxWithheld.IsZero(), "tax: %s", res.TaxWithheld)
}

func TestResolve_SumsLoanAmounts(t *testing.T) {
	setting := activeSetting()
	setting.Loans = Loans{
		{Name: "SSS salary loan", Amount: d("850.25")},
		{Name: "company laptop", Amount: d("1200")},
	}
	repo := &fakeResolverRepo{
		findActiveFn: func(ctx context.Context, employeeID string) (*DeductionSetting, error) {
			return setting, nil
		},
	}
	rv := NewResolver(repo)

	res, err := rv.Resolve(context.Background(), uuid.NewString(), d("20625"))

	assert.NoError(t, err)
	assert.True(t, d("2050.25").Equal(res.LoanDeductions), "loans: %s", res.LoanDeductions)
}

func TestResolve_NoActiveSettingDegradesToZero(t *testing.T) {
	repo := &fakeResolverRepo{
		findActiveFn: func(ctx context.Context, employeeID string) (*DeductionSetting, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	rv := NewResolver(repo)

	res, err := rv.Resolve(context.Background(), uuid.NewString(), d("20625"))

	assert.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Setting)
	assert.True(t, res.TotalDeductions().IsZero())
	assert.True(t, res.TotalAdditions().IsZero())
}

func TestResolve_RepoError(t *testing.T) {
	boom := errors.New("db down")
	repo := &fakeResolverRepo{
		findActiveFn: func(ctx context.Context, employeeID string) (*DeductionSetting, error) {
			return nil, boom
		},
	}
	rv := NewResolver(repo)

	_, err := rv.Resolve(context.Background(), uuid.NewString(), d("20625"))

	assert.ErrorIs(t, err, boom)
}
