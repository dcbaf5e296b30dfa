package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "ph-payroll/internal/attendance/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetByID(ctx context.Context, id string) (AttendanceResponse, error)
	GetRange(ctx context.Context, employeeID, start, end string) ([]AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	SetStatus(ctx context.Context, id, status string) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	req CreateAttendanceRequest,
) (AttendanceResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidEmployeeID
	}

	date, err := time.Parse("2006-01-02", req.AttendanceDate)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}

	timeIn, timeOut, manual, err := parseTimeFields(req.TimeIn, req.TimeOut, req.DaysWorked)
	if err != nil {
		return AttendanceResponse{}, err
	}

	if req.IsAbsent && (timeIn != nil || timeOut != nil) {
		return AttendanceResponse{}, attendanceerrors.ErrAbsentWithTimes
	}

	row := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     employeeID,
		AttendanceDate: date,
		TimeIn:         timeIn,
		TimeOut:        timeOut,
		LateMinutes:    req.LateMinutes,
		IsAbsent:       req.IsAbsent,
		Status:         StatusPending,
		Notes:          req.Notes,
	}
	applyAbsence(row)
	row.DaysWorked = DeriveDaysWorked(row.TimeIn, row.TimeOut, row.IsAbsent, manual)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AttendanceResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) GetRange(ctx context.Context, employeeID, start, end string) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}

	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateFormat
	}

	rows, err := s.repo.FindRangeByEmployee(ctx, employeeID, startDate, endDate)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]AttendanceResponse, len(rows))
	for i, row := range rows {
		resp[i] = mapToResponse(row)
	}
	return resp, nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateAttendanceRequest,
) (AttendanceResponse, error) {
	timeIn, timeOut, manual, err := parseTimeFields(req.TimeIn, req.TimeOut, req.DaysWorked)
	if err != nil {
		return AttendanceResponse{}, err
	}

	if req.IsAbsent && (timeIn != nil || timeOut != nil) {
		return AttendanceResponse{}, attendanceerrors.ErrAbsentWithTimes
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	row.TimeIn = timeIn
	row.TimeOut = timeOut
	row.LateMinutes = req.LateMinutes
	row.IsAbsent = req.IsAbsent
	row.Notes = req.Notes
	applyAbsence(row)
	row.DaysWorked = DeriveDaysWorked(row.TimeIn, row.TimeOut, row.IsAbsent, manual)

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) SetStatus(ctx context.Context, id, status string) (AttendanceResponse, error) {
	status = strings.ToUpper(status)
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
	default:
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	row.Status = status
	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance status updated",
		zap.String("attendance_id", id),
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

// applyAbsence enforces the absence invariant: no times, no fraction,
// no late minutes.
func applyAbsence(row *Attendance) {
	if !row.IsAbsent {
		return
	}
	row.TimeIn = nil
	row.TimeOut = nil
	row.DaysWorked = decimal.Zero
	row.LateMinutes = 0
}

func parseTimeFields(timeInStr, timeOutStr, daysWorkedStr *string) (*time.Time, *time.Time, decimal.Decimal, error) {
	var timeIn, timeOut *time.Time
	manual := decimal.Zero

	if timeInStr != nil && *timeInStr != "" {
		parsed, err := time.Parse(time.RFC3339, *timeInStr)
		if err != nil {
			return nil, nil, decimal.Zero, attendanceerrors.ErrInvalidTimeFormat
		}
		timeIn = &parsed
	}
	if timeOutStr != nil && *timeOutStr != "" {
		parsed, err := time.Parse(time.RFC3339, *timeOutStr)
		if err != nil {
			return nil, nil, decimal.Zero, attendanceerrors.ErrInvalidTimeFormat
		}
		timeOut = &parsed
	}
	if daysWorkedStr != nil && *daysWorkedStr != "" {
		parsed, err := decimal.NewFromString(*daysWorkedStr)
		if err != nil {
			return nil, nil, decimal.Zero, attendanceerrors.ErrInvalidDateFormat
		}
		// Fraction of one work day; anything outside [0, 1] would flow
		// straight into regular earnings.
		if parsed.IsNegative() || parsed.GreaterThan(decimal.NewFromInt(1)) {
			return nil, nil, decimal.Zero, attendanceerrors.ErrDaysWorkedOutOfRange
		}
		manual = parsed
	}

	return timeIn, timeOut, manual, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return attendanceerrors.ErrDuplicateAttendance
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return attendanceerrors.ErrDuplicateAttendance
	}

	return err
}

func mapToResponse(row Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             row.ID.String(),
		EmployeeID:     row.EmployeeID.String(),
		AttendanceDate: row.AttendanceDate.Format("2006-01-02"),
		DaysWorked:     row.DaysWorked.StringFixed(2),
		LateMinutes:    row.LateMinutes,
		IsAbsent:       row.IsAbsent,
		Status:         row.Status,
		Notes:          row.Notes,
	}
	if row.TimeIn != nil {
		v := row.TimeIn.Format(time.RFC3339)
		resp.TimeIn = &v
	}
	if row.TimeOut != nil {
		v := row.TimeOut.Format(time.RFC3339)
		resp.TimeOut = &v
	}
	return resp
}
