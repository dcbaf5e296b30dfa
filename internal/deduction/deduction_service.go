package deduction

import (
	"context"
	"database/sql"
	"errors"
	"time"

	deductionerrors "ph-payroll/internal/deduction/errors"
	"ph-payroll/internal/statutory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RateSource supplies the active monthly rate used to default the
// statutory contribution amounts. The bool is false when the employee
// has no active salary profile.
type RateSource interface {
	ActiveMonthlyRate(ctx context.Context, employeeID string) (decimal.Decimal, bool, error)
}

//go:generate mockgen -source=deduction_service.go -destination=mock/deduction_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDeductionSettingRequest) (DeductionSettingResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]DeductionSettingResponse, error)
	GetActiveByEmployee(ctx context.Context, employeeID string) (DeductionSettingResponse, error)
	Update(ctx context.Context, id string, req UpdateDeductionSettingRequest) (DeductionSettingResponse, error)
	Activate(ctx context.Context, id string) (DeductionSettingResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rates  RateSource
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rates RateSource, logger ...*zap.Logger) Service {
	l := zap.L().Named("deduction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("deduction.service")
	}
	return &service{db: db, repo: repo, rates: rates, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateDeductionSettingRequest,
) (DeductionSettingResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return DeductionSettingResponse{}, deductionerrors.ErrInvalidEmployeeID
	}

	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return DeductionSettingResponse{}, deductionerrors.ErrInvalidEffectiveDate
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return DeductionSettingResponse{}, deductionerrors.ErrInvalidEndDate
		}
		if parsed.Before(effectiveDate) {
			return DeductionSettingResponse{}, deductionerrors.ErrInvalidDateRange
		}
		endDate = &parsed
	}

	setting := &DeductionSetting{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		TaxStatus:     req.TaxStatus,
		EffectiveDate: effectiveDate,
		EndDate:       endDate,
	}
	if setting.TaxStatus == "" {
		setting.TaxStatus = "S"
	}

	if err := s.applyAmounts(ctx, setting, amountFields{
		sss:             req.SSSContribution,
		philHealth:      req.PhilHealthContribution,
		pagIbig:         req.PagIbigContribution,
		taxRate:         req.TaxRate,
		taxExemption:    req.TaxExemption,
		loans:           req.Loans,
		loansSet:        req.Loans != nil,
		otherDeductions: req.OtherDeductions,
		allowances:      req.Allowances,
		otherAdditions:  req.OtherAdditions,
	}, true); err != nil {
		return DeductionSettingResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DeductionSettingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.Activate {
		// One active setting per employee at any moment.
		if err := qtx.DeactivateAllForEmployee(ctx, req.EmployeeID); err != nil {
			return DeductionSettingResponse{}, err
		}
		setting.IsActive = true
	}

	if err := qtx.Create(ctx, setting); err != nil {
		s.logger.Error("create deduction setting persist failed", zap.Error(err))
		return DeductionSettingResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DeductionSettingResponse{}, err
	}

	s.logger.Info("deduction setting created",
		zap.String("setting_id", setting.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Bool("active", setting.IsActive),
	)

	return mapSettingToResponse(*setting), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]DeductionSettingResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, deductionerrors.ErrInvalidEmployeeID
	}

	settings, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]DeductionSettingResponse, len(settings))
	for i, setting := range settings {
		resp[i] = mapSettingToResponse(setting)
	}
	return resp, nil
}

func (s *service) GetActiveByEmployee(ctx context.Context, employeeID string) (DeductionSettingResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return DeductionSettingResponse{}, deductionerrors.ErrInvalidEmployeeID
	}

	setting, err := s.repo.FindActiveByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DeductionSettingResponse{}, deductionerrors.ErrNoActiveSetting
		}
		return DeductionSettingResponse{}, err
	}

	return mapSettingToResponse(*setting), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateDeductionSettingRequest,
) (DeductionSettingResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DeductionSettingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	setting, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DeductionSettingResponse{}, deductionerrors.ErrDeductionSettingNotFound
		}
		return DeductionSettingResponse{}, err
	}

	if req.EffectiveDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EffectiveDate)
		if err != nil {
			return DeductionSettingResponse{}, deductionerrors.ErrInvalidEffectiveDate
		}
		setting.EffectiveDate = parsed
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			setting.EndDate = nil
		} else {
			parsed, err := time.Parse("2006-01-02", *req.EndDate)
			if err != nil {
				return DeductionSettingResponse{}, deductionerrors.ErrInvalidEndDate
			}
			if parsed.Before(setting.EffectiveDate) {
				return DeductionSettingResponse{}, deductionerrors.ErrInvalidDateRange
			}
			setting.EndDate = &parsed
		}
	}
	if req.TaxStatus != nil && *req.TaxStatus != "" {
		setting.TaxStatus = *req.TaxStatus
	}

	if err := s.applyAmounts(ctx, setting, amountFields{
		sss:             req.SSSContribution,
		philHealth:      req.PhilHealthContribution,
		pagIbig:         req.PagIbigContribution,
		taxRate:         req.TaxRate,
		taxExemption:    req.TaxExemption,
		loans:           req.Loans,
		loansSet:        req.Loans != nil,
		otherDeductions: req.OtherDeductions,
		allowances:      req.Allowances,
		otherAdditions:  req.OtherAdditions,
	}, false); err != nil {
		return DeductionSettingResponse{}, err
	}

	if err := qtx.Update(ctx, setting); err != nil {
		return DeductionSettingResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DeductionSettingResponse{}, err
	}

	return mapSettingToResponse(*setting), nil
}

func (s *service) Activate(ctx context.Context, id string) (DeductionSettingResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DeductionSettingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	setting, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DeductionSettingResponse{}, deductionerrors.ErrDeductionSettingNotFound
		}
		return DeductionSettingResponse{}, err
	}

	if err := qtx.DeactivateAllForEmployee(ctx, setting.EmployeeID.String()); err != nil {
		return DeductionSettingResponse{}, err
	}

	setting.IsActive = true
	if err := qtx.Update(ctx, setting); err != nil {
		return DeductionSettingResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DeductionSettingResponse{}, err
	}

	s.logger.Info("deduction setting activated",
		zap.String("setting_id", id),
		zap.String("employee_id", setting.EmployeeID.String()),
	)

	return mapSettingToResponse(*setting), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return deductionerrors.ErrDeductionSettingNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

type amountFields struct {
	sss             *string
	philHealth      *string
	pagIbig         *string
	taxRate         *string
	taxExemption    *string
	loans           []LoanInput
	loansSet        bool
	otherDeductions *string
	allowances      *string
	otherAdditions  *string
}

// applyAmounts parses the optional money fields onto the setting. On
// create, statutory contributions left empty fall back to the table
// amounts for the employee's active monthly rate; on update, empty
// means keep the stored value.
func (s *service) applyAmounts(ctx context.Context, setting *DeductionSetting, fields amountFields, fillDefaults bool) error {
	var suggested *statutory.SuggestedContributions
	needDefaults := fillDefaults && (fields.sss == nil || fields.philHealth == nil || fields.pagIbig == nil)
	if needDefaults && s.rates != nil {
		rate, ok, err := s.rates.ActiveMonthlyRate(ctx, setting.EmployeeID.String())
		if err != nil {
			return err
		}
		if ok {
			sc := statutory.Suggest(rate)
			suggested = &sc
		}
	}

	assign := func(dst *decimal.Decimal, raw *string, fallback decimal.Decimal) error {
		if raw == nil {
			if fillDefaults {
				*dst = fallback
			}
			return nil
		}
		parsed, err := decimal.NewFromString(*raw)
		if err != nil || parsed.IsNegative() {
			return deductionerrors.ErrNegativeAmount
		}
		*dst = parsed
		return nil
	}

	sssDefault, phDefault, pagibigDefault := decimal.Zero, decimal.Zero, decimal.Zero
	if suggested != nil {
		sssDefault = suggested.SSS
		phDefault = suggested.PhilHealth
		pagibigDefault = suggested.PagIbig
	}

	if err := assign(&setting.SSSContribution, fields.sss, sssDefault); err != nil {
		return err
	}
	if err := assign(&setting.PhilHealthContribution, fields.philHealth, phDefault); err != nil {
		return err
	}
	if err := assign(&setting.PagIbigContribution, fields.pagIbig, pagibigDefault); err != nil {
		return err
	}
	if err := assign(&setting.TaxExemption, fields.taxExemption, decimal.Zero); err != nil {
		return err
	}
	if err := assign(&setting.OtherDeductions, fields.otherDeductions, decimal.Zero); err != nil {
		return err
	}
	if err := assign(&setting.Allowances, fields.allowances, decimal.Zero); err != nil {
		return err
	}
	if err := assign(&setting.OtherAdditions, fields.otherAdditions, decimal.Zero); err != nil {
		return err
	}

	if fields.taxRate != nil {
		rate, err := decimal.NewFromString(*fields.taxRate)
		if err != nil || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return deductionerrors.ErrInvalidTaxRate
		}
		setting.TaxRate = rate
	} else if fillDefaults {
		setting.TaxRate = decimal.Zero
	}

	if fields.loansSet {
		loans := make(Loans, len(fields.loans))
		for i, in := range fields.loans {
			amount, err := decimal.NewFromString(in.Amount)
			if err != nil || amount.IsNegative() {
				return deductionerrors.ErrNegativeAmount
			}
			loans[i] = Loan{Name: in.Name, Amount: amount}
			if in.Balance != nil && *in.Balance != "" {
				balance, err := decimal.NewFromString(*in.Balance)
				if err != nil || balance.IsNegative() {
					return deductionerrors.ErrNegativeAmount
				}
				loans[i].Balance = &balance
			}
		}
		setting.Loans = loans
	}

	return nil
}

func mapSettingToResponse(setting DeductionSetting) DeductionSettingResponse {
	loans := make([]LoanResponse, len(setting.Loans))
	for i, loan := range setting.Loans {
		loans[i] = LoanResponse{Name: loan.Name, Amount: loan.Amount.StringFixed(2)}
		if loan.Balance != nil {
			v := loan.Balance.StringFixed(2)
			loans[i].Balance = &v
		}
	}

	resp := DeductionSettingResponse{
		ID:                     setting.ID.String(),
		EmployeeID:             setting.EmployeeID.String(),
		SSSContribution:        setting.SSSContribution.StringFixed(2),
		PhilHealthContribution: setting.PhilHealthContribution.StringFixed(2),
		PagIbigContribution:    setting.PagIbigContribution.StringFixed(2),
		TaxRate:                setting.TaxRate.String(),
		TaxExemption:           setting.TaxExemption.StringFixed(2),
		TaxStatus:              setting.TaxStatus,
		Loans:                  loans,
		OtherDeductions:        setting.OtherDeductions.StringFixed(2),
		Allowances:             setting.Allowances.StringFixed(2),
		OtherAdditions:         setting.OtherAdditions.StringFixed(2),
		EffectiveDate:          setting.EffectiveDate.Format("2006-01-02"),
		IsActive:               setting.IsActive,
	}
	if setting.EndDate != nil {
		v := setting.EndDate.Format("2006-01-02")
		resp.EndDate = &v
	}
	return resp
}
