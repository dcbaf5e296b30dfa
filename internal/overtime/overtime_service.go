package overtime

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"ph-payroll/internal/attendance"
	overtimeerrors "ph-payroll/internal/overtime/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var minutesPerHour = decimal.NewFromInt(60)

//go:generate mockgen -source=overtime_service.go -destination=mock/overtime_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error)
	GetByID(ctx context.Context, id string) (OvertimeResponse, error)
	GetByAttendance(ctx context.Context, attendanceID string) ([]OvertimeResponse, error)
	Update(ctx context.Context, id string, req UpdateOvertimeRequest) (OvertimeResponse, error)
	SetStatus(ctx context.Context, id, status string) (OvertimeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("overtime.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("overtime.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateOvertimeRequest,
) (OvertimeResponse, error) {
	attendanceID, err := uuid.Parse(req.AttendanceID)
	if err != nil {
		return OvertimeResponse{}, overtimeerrors.ErrInvalidAttendanceID
	}

	row := &Overtime{
		ID:           uuid.New(),
		AttendanceID: attendanceID,
		Status:       StatusPending,
		Reason:       req.Reason,
	}

	if err := applyFields(row, req.Type, req.Hours, req.StartTime, req.EndTime, req.RateMultiplier); err != nil {
		return OvertimeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OvertimeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, row); err != nil {
		return OvertimeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return OvertimeResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) GetByID(ctx context.Context, id string) (OvertimeResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return OvertimeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) GetByAttendance(ctx context.Context, attendanceID string) ([]OvertimeResponse, error) {
	if _, err := uuid.Parse(attendanceID); err != nil {
		return nil, overtimeerrors.ErrInvalidAttendanceID
	}

	rows, err := s.repo.FindByAttendance(ctx, attendanceID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]OvertimeResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateOvertimeRequest,
) (OvertimeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OvertimeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return OvertimeResponse{}, mapRepositoryError(err)
	}

	row.Reason = req.Reason
	if err := applyFields(row, req.Type, req.Hours, req.StartTime, req.EndTime, req.RateMultiplier); err != nil {
		return OvertimeResponse{}, err
	}

	if err := qtx.Update(ctx, row); err != nil {
		return OvertimeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return OvertimeResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) SetStatus(ctx context.Context, id, status string) (OvertimeResponse, error) {
	status = strings.ToUpper(status)
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
	default:
		return OvertimeResponse{}, overtimeerrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return OvertimeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return OvertimeResponse{}, mapRepositoryError(err)
	}

	row.Status = status
	if err := qtx.Update(ctx, row); err != nil {
		return OvertimeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return OvertimeResponse{}, err
	}

	s.logger.Info("overtime status updated",
		zap.String("overtime_id", id),
		zap.String("status", status),
	)

	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

// applyFields resolves type, multiplier and hours. The multiplier defaults
// from the canonical table; hours fall back to the start/end span with the
// same overnight normalization attendance uses.
func applyFields(row *Overtime, otType string, hoursStr, startStr, endStr, multStr *string) error {
	defaultMult, ok := DefaultMultiplier(otType)
	if !ok {
		return overtimeerrors.ErrInvalidOvertimeType
	}
	row.Type = otType

	row.RateMultiplier = defaultMult
	if multStr != nil && *multStr != "" {
		mult, err := decimal.NewFromString(*multStr)
		if err != nil {
			return overtimeerrors.ErrInvalidOvertimeType
		}
		row.RateMultiplier = mult
	}

	row.StartTime = nil
	row.EndTime = nil
	if startStr != nil && *startStr != "" {
		parsed, err := time.Parse(time.RFC3339, *startStr)
		if err != nil {
			return overtimeerrors.ErrInvalidTimeFormat
		}
		row.StartTime = &parsed
	}
	if endStr != nil && *endStr != "" {
		parsed, err := time.Parse(time.RFC3339, *endStr)
		if err != nil {
			return overtimeerrors.ErrInvalidTimeFormat
		}
		row.EndTime = &parsed
	}

	switch {
	case hoursStr != nil && *hoursStr != "":
		hours, err := decimal.NewFromString(*hoursStr)
		if err != nil {
			return overtimeerrors.ErrHoursUnresolvable
		}
		row.Hours = hours
	case row.StartTime != nil && row.EndTime != nil:
		row.Hours = attendance.SpanMinutes(*row.StartTime, *row.EndTime).
			Div(minutesPerHour).Round(2)
	default:
		return overtimeerrors.ErrHoursUnresolvable
	}

	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return overtimeerrors.ErrOvertimeNotFound
	}
	return err
}

func mapToResponse(row Overtime) OvertimeResponse {
	resp := OvertimeResponse{
		ID:             row.ID.String(),
		AttendanceID:   row.AttendanceID.String(),
		Type:           row.Type,
		Hours:          row.Hours.StringFixed(2),
		RateMultiplier: row.RateMultiplier.StringFixed(2),
		Status:         row.Status,
		Reason:         row.Reason,
	}
	if row.StartTime != nil {
		v := row.StartTime.Format(time.RFC3339)
		resp.StartTime = &v
	}
	if row.EndTime != nil {
		v := row.EndTime.Format(time.RFC3339)
		resp.EndTime = &v
	}
	return resp
}
