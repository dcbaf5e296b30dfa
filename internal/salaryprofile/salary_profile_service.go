package salaryprofile

import (
	"context"
	"database/sql"
	"errors"
	"time"

	salaryprofileerrors "ph-payroll/internal/salaryprofile/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_profile_service.go -destination=mock/salary_profile_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalaryProfileRequest) (SalaryProfileResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]SalaryProfileResponse, error)
	GetActiveByEmployee(ctx context.Context, employeeID string) (SalaryProfileResponse, error)
	Update(ctx context.Context, id string, req UpdateSalaryProfileRequest) (SalaryProfileResponse, error)
	Activate(ctx context.Context, id string) (SalaryProfileResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salaryprofile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salaryprofile.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateSalaryProfileRequest,
) (SalaryProfileResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return SalaryProfileResponse{}, salaryprofileerrors.ErrInvalidEmployeeID
	}

	monthlyRate, err := decimal.NewFromString(req.MonthlyRate)
	if err != nil {
		return SalaryProfileResponse{}, salaryprofileerrors.ErrInvalidMonthlyRate
	}

	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return SalaryProfileResponse{}, salaryprofileerrors.ErrInvalidEffectiveDate
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return SalaryProfileResponse{}, salaryprofileerrors.ErrInvalidEndDate
		}
		endDate = &parsed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryProfileResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	profile := &SalaryProfile{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		MonthlyRate:   monthlyRate,
		EffectiveDate: effectiveDate,
		EndDate:       endDate,
	}
	CalculateAllRates(profile)

	if req.Activate {
		// Deactivate-then-activate inside one transaction so there is never
		// a window with zero or two active profiles for the employee.
		if err := qtx.DeactivateAllForEmployee(ctx, req.EmployeeID); err != nil {
			return SalaryProfileResponse{}, err
		}
		profile.IsActive = true
	}

	if err := qtx.Create(ctx, profile); err != nil {
		s.logger.Error("create salary profile persist failed", zap.Error(err))
		return SalaryProfileResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SalaryProfileResponse{}, err
	}

	s.logger.Info("salary profile created",
		zap.String("profile_id", profile.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.Bool("active", profile.IsActive),
	)

	return mapToResponse(*profile), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]SalaryProfileResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, salaryprofileerrors.ErrInvalidEmployeeID
	}

	profiles, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]SalaryProfileResponse, len(profiles))
	for i, p := range profiles {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetActiveByEmployee(ctx context.Context, employeeID string) (SalaryProfileResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return SalaryProfileResponse{}, salaryprofileerrors.ErrInvalidEmployeeID
	}

	profile, err := s.repo.FindActiveByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryProfileResponse{}, salaryprofileerrors.ErrProfileNotFound
		}
		return SalaryProfileResponse{}, err
	}

	return mapToResponse(*profile), nil
}

// Update recomputes the derived rates on every persist, not only creation.
func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateSalaryProfileRequest,
) (SalaryProfileResponse, error) {
	monthlyRate, err := decimal.NewFromString(req.MonthlyRate)
	if err != nil {
		return SalaryProfileResponse{}, salaryprofileerrors.ErrInvalidMonthlyRate
	}

	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return SalaryProfileResponse{}, salaryprofileerrors.ErrInvalidEffectiveDate
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return SalaryProfileResponse{}, salaryprofileerrors.ErrInvalidEndDate
		}
		endDate = &parsed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryProfileResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	profile, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryProfileResponse{}, salaryprofileerrors.ErrProfileNotFound
		}
		return SalaryProfileResponse{}, err
	}

	profile.MonthlyRate = monthlyRate
	profile.EffectiveDate = effectiveDate
	profile.EndDate = endDate
	CalculateAllRates(profile)

	if err := qtx.Update(ctx, profile); err != nil {
		return SalaryProfileResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SalaryProfileResponse{}, err
	}

	return mapToResponse(*profile), nil
}

func (s *service) Activate(ctx context.Context, id string) (SalaryProfileResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryProfileResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	profile, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryProfileResponse{}, salaryprofileerrors.ErrProfileNotFound
		}
		return SalaryProfileResponse{}, err
	}

	if err := qtx.DeactivateAllForEmployee(ctx, profile.EmployeeID.String()); err != nil {
		return SalaryProfileResponse{}, err
	}

	profile.IsActive = true
	if err := qtx.Update(ctx, profile); err != nil {
		return SalaryProfileResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SalaryProfileResponse{}, err
	}

	s.logger.Info("salary profile activated",
		zap.String("profile_id", id),
		zap.String("employee_id", profile.EmployeeID.String()),
	)

	return mapToResponse(*profile), nil
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
			return salaryprofileerrors.ErrProfileNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

func mapToResponse(profile SalaryProfile) SalaryProfileResponse {
	resp := SalaryProfileResponse{
		ID:              profile.ID.String(),
		EmployeeID:      profile.EmployeeID.String(),
		MonthlyRate:     profile.MonthlyRate.StringFixed(2),
		SemiMonthlyRate: profile.SemiMonthlyRate.StringFixed(2),
		DailyRate:       profile.DailyRate.StringFixed(2),
		HourlyRate:      profile.HourlyRate.StringFixed(2),
		MinuteRate:      profile.MinuteRate.StringFixed(4),
		EffectiveDate:   profile.EffectiveDate.Format("2006-01-02"),
		IsActive:        profile.IsActive,
	}
	if profile.EndDate != nil {
		v := profile.EndDate.Format("2006-01-02")
		resp.EndDate = &v
	}
	return resp
}
