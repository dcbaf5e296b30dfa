package deduction

import (
	"context"
	"database/sql"
	"testing"

	deductionerrors "ph-payroll/internal/deduction/errors"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSettingRepo struct {
	Repository
	createFn        func(ctx context.Context, setting *DeductionSetting) error
	findByIDFn      func(ctx context.Context, id string) (*DeductionSetting, error)
	findActiveFn    func(ctx context.Context, employeeID string) (*DeductionSetting, error)
	updateFn        func(ctx context.Context, setting *DeductionSetting) error
	deactivateAllFn func(ctx context.Context, employeeID string) error
	deleteFn        func(ctx context.Context, id string) error
}

func (f *fakeSettingRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeSettingRepo) Create(ctx context.Context, setting *DeductionSetting) error {
	return f.createFn(ctx, setting)
}

func (f *fakeSettingRepo) FindByID(ctx context.Context, id string) (*DeductionSetting, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeSettingRepo) FindActiveByEmployee(ctx context.Context, employeeID string) (*DeductionSetting, error) {
	return f.findActiveFn(ctx, employeeID)
}

func (f *fakeSettingRepo) Update(ctx context.Context, setting *DeductionSetting) error {
	return f.updateFn(ctx, setting)
}

func (f *fakeSettingRepo) DeactivateAllForEmployee(ctx context.Context, employeeID string) error {
	return f.deactivateAllFn(ctx, employeeID)
}

func (f *fakeSettingRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeRateSource struct {
	rate decimal.Decimal
	ok   bool
}

func (f *fakeRateSource) ActiveMonthlyRate(ctx context.Context, employeeID string) (decimal.Decimal, bool, error) {
	return f.rate, f.ok, nil
}

func newSettingServiceForTest(t *testing.T, repo *fakeSettingRepo, rates RateSource) (Service, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewService(db, repo, rates), mock
}

func TestSettingServiceCreate(t *testing.T) {
	t.Run("fills statutory defaults from the active monthly rate", func(t *testing.T) {
		var created *DeductionSetting
		repo := &fakeSettingRepo{
			createFn: func(ctx context.Context, setting *DeductionSetting) error {
				created = setting
				return nil
			},
		}
		svc, mock := newSettingServiceForTest(t, repo, &fakeRateSource{rate: d("22000"), ok: true})
		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Create(context.Background(), CreateDeductionSettingRequest{
			EmployeeID:    uuid.NewString(),
			EffectiveDate: "2026-08-01",
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, "990.00", resp.SSSContribution)
		assert.Equal(t, "550.00", resp.PhilHealthContribution)
		assert.Equal(t, "100.00", resp.PagIbigContribution)
		assert.Equal(t, "S", resp.TaxStatus)
		assert.False(t, resp.IsActive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("explicit amounts win over defaults", func(t *testing.T) {
		repo := &fakeSettingRepo{
			createFn: func(ctx context.Context, setting *DeductionSetting) error { return nil },
		}
		svc, mock := newSettingServiceForTest(t, repo, &fakeRateSource{rate: d("22000"), ok: true})
		mock.ExpectBegin()
		mock.ExpectCommit()
		sss := "500"

		resp, err := svc.Create(context.Background(), CreateDeductionSettingRequest{
			EmployeeID:      uuid.NewString(),
			EffectiveDate:   "2026-08-01",
			SSSContribution: &sss,
		})

		assert.NoError(t, err)
		assert.Equal(t, "500.00", resp.SSSContribution)
		// The untouched fields still come from the tables.
		assert.Equal(t, "550.00", resp.PhilHealthContribution)
	})

	t.Run("no active profile leaves contributions at zero", func(t *testing.T) {
		repo := &fakeSettingRepo{
			createFn: func(ctx context.Context, setting *DeductionSetting) error { return nil },
		}
		svc, mock := newSettingServiceForTest(t, repo, &fakeRateSource{ok: false})
		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Create(context.Background(), CreateDeductionSettingRequest{
			EmployeeID:    uuid.NewString(),
			EffectiveDate: "2026-08-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, "0.00", resp.SSSContribution)
		assert.Equal(t, "0.00", resp.PhilHealthContribution)
		assert.Equal(t, "0.00", resp.PagIbigContribution)
	})

	t.Run("activate deactivates the previous setting in the same transaction", func(t *testing.T) {
		var deactivated string
		repo := &fakeSettingRepo{
			deactivateAllFn: func(ctx context.Context, employeeID string) error {
				deactivated = employeeID
				return nil
			},
			createFn: func(ctx context.Context, setting *DeductionSetting) error { return nil },
		}
		svc, mock := newSettingServiceForTest(t, repo, &fakeRateSource{ok: false})
		mock.ExpectBegin()
		mock.ExpectCommit()
		employeeID := uuid.NewString()

		resp, err := svc.Create(context.Background(), CreateDeductionSettingRequest{
			EmployeeID:    employeeID,
			EffectiveDate: "2026-08-01",
			Activate:      true,
		})

		assert.NoError(t, err)
		assert.True(t, resp.IsActive)
		assert.Equal(t, employeeID, deactivated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects tax rate above one", func(t *testing.T) {
		svc, _ := newSettingServiceForTest(t, &fakeSettingRepo{}, &fakeRateSource{ok: false})
		rate := "1.5"

		_, err := svc.Create(context.Background(), CreateDeductionSettingRequest{
			EmployeeID:    uuid.NewString(),
			EffectiveDate: "2026-08-01",
			TaxRate:       &rate,
		})

		assert.ErrorIs(t, err, deductionerrors.ErrInvalidTaxRate)
	})

	t.Run("rejects end date before effective date", func(t *testing.T) {
		svc, _ := newSettingServiceForTest(t, &fakeSettingRepo{}, &fakeRateSource{ok: false})
		end := "2026-07-01"

		_, err := svc.Create(context.Background(), CreateDeductionSettingRequest{
			EmployeeID:    uuid.NewString(),
			EffectiveDate: "2026-08-01",
			EndDate:       &end,
		})

		assert.ErrorIs(t, err, deductionerrors.ErrInvalidDateRange)
	})

	t.Run("rejects negative loan amount", func(t *testing.T) {
		svc, _ := newSettingServiceForTest(t, &fakeSettingRepo{}, &fakeRateSource{ok: false})

		_, err := svc.Create(context.Background(), CreateDeductionSettingRequest{
			EmployeeID:    uuid.NewString(),
			EffectiveDate: "2026-08-01",
			Loans:         []LoanInput{{Name: "salary loan", Amount: "-50"}},
		})

		assert.ErrorIs(t, err, deductionerrors.ErrNegativeAmount)
	})
}

func TestSettingServiceUpdate_KeepsUnsetFields(t *testing.T) {
	existing := activeSetting()
	repo := &fakeSettingRepo{
		findByIDFn: func(ctx context.Context, id string) (*DeductionSetting, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, setting *DeductionSetting) error { return nil },
	}
	svc, mock := newSettingServiceForTest(t, repo, &fakeRateSource{ok: false})
	mock.ExpectBegin()
	mock.ExpectCommit()
	sss := "600"

	resp, err := svc.Update(context.Background(), existing.ID.String(), UpdateDeductionSettingRequest{
		SSSContribution: &sss,
	})

	assert.NoError(t, err)
	assert.Equal(t, "600.00", resp.SSSContribution)
	assert.Equal(t, "300.00", resp.PhilHealthContribution)
	assert.Equal(t, "15000.00", resp.TaxExemption)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingServiceActivate(t *testing.T) {
	t.Run("swaps the active setting", func(t *testing.T) {
		existing := activeSetting()
		existing.IsActive = false
		var deactivated string
		repo := &fakeSettingRepo{
			findByIDFn: func(ctx context.Context, id string) (*DeductionSetting, error) {
				return existing, nil
			},
			deactivateAllFn: func(ctx context.Context, employeeID string) error {
				deactivated = employeeID
				return nil
			},
			updateFn: func(ctx context.Context, setting *DeductionSetting) error { return nil },
		}
		svc, mock := newSettingServiceForTest(t, repo, &fakeRateSource{ok: false})
		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Activate(context.Background(), existing.ID.String())

		assert.NoError(t, err)
		assert.True(t, resp.IsActive)
		assert.Equal(t, existing.EmployeeID.String(), deactivated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown setting", func(t *testing.T) {
		repo := &fakeSettingRepo{
			findByIDFn: func(ctx context.Context, id string) (*DeductionSetting, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc, mock := newSettingServiceForTest(t, repo, &fakeRateSource{ok: false})
		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.Activate(context.Background(), uuid.NewString())

		assert.ErrorIs(t, err, deductionerrors.ErrDeductionSettingNotFound)
	})
}

func TestSettingServiceGetActiveByEmployee_NotFound(t *testing.T) {
	repo := &fakeSettingRepo{
		findActiveFn: func(ctx context.Context, employeeID string) (*DeductionSetting, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc, _ := newSettingServiceForTest(t, repo, &fakeRateSource{ok: false})

	_, err := svc.GetActiveByEmployee(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, deductionerrors.ErrNoActiveSetting)
}
