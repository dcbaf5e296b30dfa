package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"ph-payroll/internal/events"
	"ph-payroll/internal/messaging/kafka"
	payrollerrors "ph-payroll/internal/payroll/errors"
	"ph-payroll/internal/shared/apperror"
	"ph-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Auditor records who did what to which payroll record. Approve and
// mark-paid are the money-moving actions and always leave a trail.
type Auditor interface {
	Record(ctx context.Context, action, entityID string)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context) ([]PayrollResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollResponse, error)
	GetBreakdown(ctx context.Context, id string) (BreakdownResponse, error)
	Process(ctx context.Context, id string) (PayrollResponse, error)
	Approve(ctx context.Context, id string) (PayrollResponse, error)
	MarkAsPaid(ctx context.Context, id string, req MarkPaidRequest) (PayrollResponse, error)
	Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	Delete(ctx context.Context, id string) error
	GenerateBatch(ctx context.Context, req GenerateBatchRequest) (BatchResult, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	processor *Processor
	outbox    kafka.OutboxRepository
	audit     Auditor
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	processor *Processor,
	outbox kafka.OutboxRepository,
	audit Auditor,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		processor: processor,
		outbox:    outbox,
		audit:     audit,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	startDate, endDate, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return PayrollResponse{}, err
	}

	holidayPay, otherEarnings, err := parseManualEarnings(req.HolidayPay, req.OtherEarnings)
	if err != nil {
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingPeriod(ctx, req.EmployeeID, startDate, endDate, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	if overlap {
		return PayrollResponse{}, payrollerrors.ErrPayrollOverlap
	}

	record := newDraftRecord(employeeID, startDate, endDate, holidayPay, otherEarnings, req.Remarks)

	if err := qtx.Create(ctx, record); err != nil {
		s.logger.Error("create payroll persist failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll record created",
		zap.String("payroll_id", record.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("period_start", req.StartDate),
		zap.String("period_end", req.EndDate),
	)

	return mapToResponse(*record), nil
}

func (s *service) GetAll(ctx context.Context) ([]PayrollResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]PayrollResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}

	records, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapNotFound(err)
	}
	return mapToResponse(*record), nil
}

func (s *service) GetBreakdown(ctx context.Context, id string) (BreakdownResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return BreakdownResponse{}, mapNotFound(err)
	}

	return BreakdownResponse{
		Payroll:           mapToResponse(*record),
		AttendanceDetails: record.AttendanceDetails,
		OvertimeDetails:   record.OvertimeDetails,
		DeductionDetails:  record.DeductionDetails,
	}, nil
}

// Process runs the computation pass and persists the result atomically.
func (s *service) Process(ctx context.Context, id string) (PayrollResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapNotFound(err)
	}

	from := record.Status
	if err := s.processor.Run(ctx, record); err != nil {
		return PayrollResponse{}, err
	}

	if err := qtx.Update(ctx, record); err != nil {
		return PayrollResponse{}, err
	}

	if err := s.enqueueStatusChanged(ctx, tx, record, from); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll record processed",
		zap.String("payroll_id", id),
		zap.String("employee_id", record.EmployeeID.String()),
		zap.String("net_pay", record.NetPay.StringFixed(2)),
	)

	return mapToResponse(*record), nil
}

func (s *service) Approve(ctx context.Context, id string) (PayrollResponse, error) {
	record, err := s.transition(ctx, id, StatusProcessing, StatusApproved, payrollerrors.ErrApproveOnlyProcessing, nil)
	if err != nil {
		return PayrollResponse{}, err
	}

	if s.audit != nil {
		s.audit.Record(ctx, "payroll.approve", id)
	}

	return mapToResponse(*record), nil
}

func (s *service) MarkAsPaid(ctx context.Context, id string, req MarkPaidRequest) (PayrollResponse, error) {
	record, err := s.transition(ctx, id, StatusApproved, StatusPaid, payrollerrors.ErrMarkPaidOnlyApproved, func(r *PayrollRecord) {
		now := time.Now().UTC()
		r.PaidAt = &now
		if req.Notes != nil && *req.Notes != "" {
			r.Remarks = req.Notes
		}
	})
	if err != nil {
		return PayrollResponse{}, err
	}

	if s.audit != nil {
		s.audit.Record(ctx, "payroll.mark_paid", id)
	}

	return mapToResponse(*record), nil
}

// transition moves a record one step forward, guarding the precondition
// and emitting the status event in the same transaction.
func (s *service) transition(
	ctx context.Context,
	id, require, next string,
	guardErr *apperror.AppError,
	mutate func(*PayrollRecord),
) (*PayrollRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if record.Status != require {
		return nil, guardErr
	}

	from := record.Status
	record.Status = next
	if mutate != nil {
		mutate(record)
	}

	if err := qtx.Update(ctx, record); err != nil {
		return nil, err
	}

	if err := s.enqueueStatusChanged(ctx, tx, record, from); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("payroll status changed",
		zap.String("payroll_id", id),
		zap.String("from", from),
		zap.String("to", next),
	)

	return record, nil
}

// Update rewrites the DRAFT-time fields, re-validates the period and
// re-runs the processing pass, leaving the record PROCESSING.
func (s *service) Update(ctx context.Context, id string, req UpdatePayrollRequest) (PayrollResponse, error) {
	startDate, endDate, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return PayrollResponse{}, err
	}

	holidayPay, otherEarnings, err := parseManualEarnings(req.HolidayPay, req.OtherEarnings)
	if err != nil {
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapNotFound(err)
	}

	if record.Status != StatusDraft {
		return PayrollResponse{}, payrollerrors.ErrUpdateOnlyDraft
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, record.EmployeeID.String(), startDate, endDate, &id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if overlap {
		return PayrollResponse{}, payrollerrors.ErrPayrollOverlap
	}

	record.StartDate = startDate
	record.EndDate = endDate
	record.HolidayPay = holidayPay
	record.OtherEarnings = otherEarnings
	if req.Remarks != nil {
		record.Remarks = req.Remarks
	}

	from := record.Status
	if err := s.processor.Run(ctx, record); err != nil {
		return PayrollResponse{}, err
	}

	if err := qtx.Update(ctx, record); err != nil {
		return PayrollResponse{}, err
	}

	if err := s.enqueueStatusChanged(ctx, tx, record, from); err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*record), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}

	if record.Status != StatusDraft {
		return payrollerrors.ErrDeleteOnlyDraft
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

// GenerateBatch creates and processes one record per item inside a single
// outer transaction. A period overlap skips the item; any other error
// rolls the whole batch back.
func (s *service) GenerateBatch(ctx context.Context, req GenerateBatchRequest) (BatchResult, error) {
	startDate, endDate, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return BatchResult{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BatchResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	var result BatchResult
	for _, item := range req.Items {
		employeeID, err := uuid.Parse(item.EmployeeID)
		if err != nil {
			return BatchResult{}, payrollerrors.ErrInvalidEmployeeID
		}

		holidayPay, otherEarnings, err := parseManualEarnings(item.HolidayPay, item.OtherEarnings)
		if err != nil {
			return BatchResult{}, err
		}

		overlap, err := qtx.HasOverlappingPeriod(ctx, item.EmployeeID, startDate, endDate, nil)
		if err != nil {
			return BatchResult{}, err
		}
		if overlap {
			result.Skipped++
			result.Errors = append(result.Errors, item.EmployeeID+": overlapping period")
			s.logger.Warn("batch item skipped on period overlap",
				zap.String("employee_id", item.EmployeeID),
			)
			continue
		}

		record := newDraftRecord(employeeID, startDate, endDate, holidayPay, otherEarnings, nil)

		if err := s.processor.Run(ctx, record); err != nil {
			return BatchResult{}, err
		}

		if err := qtx.Create(ctx, record); err != nil {
			return BatchResult{}, err
		}

		if err := s.enqueueStatusChanged(ctx, tx, record, StatusDraft); err != nil {
			return BatchResult{}, err
		}

		result.Created++
	}

	if err := tx.Commit(); err != nil {
		return BatchResult{}, err
	}

	s.logger.Info("payroll batch generated",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)

	return result, nil
}

func (s *service) enqueueStatusChanged(ctx context.Context, tx *sql.Tx, record *PayrollRecord, from string) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.PayrollStatusChangedEvent{
		EventType:  "payroll_status_changed",
		RequestID:  rid,
		PayrollID:  record.ID.String(),
		EmployeeID: record.EmployeeID.String(),
		FromStatus: from,
		ToStatus:   record.Status,
		NetPay:     record.NetPay.StringFixed(2),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payroll",
		AggregateID:   record.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollStatusChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func newDraftRecord(
	employeeID uuid.UUID,
	startDate, endDate time.Time,
	holidayPay, otherEarnings decimal.Decimal,
	remarks *string,
) *PayrollRecord {
	return &PayrollRecord{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,

		DaysWorked:       decimal.Zero,
		RegularEarnings:  decimal.Zero,
		OvertimeHours:    decimal.Zero,
		OvertimeEarnings: decimal.Zero,
		HolidayPay:       holidayPay,
		Allowances:       decimal.Zero,
		OtherEarnings:    otherEarnings,
		GrossPay:         decimal.Zero,

		SSSContribution:        decimal.Zero,
		PhilHealthContribution: decimal.Zero,
		PagIbigContribution:    decimal.Zero,
		TaxWithheld:            decimal.Zero,
		LoanDeductions:         decimal.Zero,
		OtherDeductions:        decimal.Zero,
		TotalDeductions:        decimal.Zero,

		NetPay:  decimal.Zero,
		Status:  StatusDraft,
		Remarks: remarks,
	}
}

func parsePeriod(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidPeriod
	}
	return startDate, endDate, nil
}

func parseManualEarnings(holidayPay, otherEarnings *string) (decimal.Decimal, decimal.Decimal, error) {
	holiday := decimal.Zero
	other := decimal.Zero

	if holidayPay != nil && *holidayPay != "" {
		parsed, err := decimal.NewFromString(*holidayPay)
		if err != nil || parsed.IsNegative() {
			return decimal.Zero, decimal.Zero, payrollerrors.ErrInvalidAmount
		}
		holiday = parsed
	}
	if otherEarnings != nil && *otherEarnings != "" {
		parsed, err := decimal.NewFromString(*otherEarnings)
		if err != nil || parsed.IsNegative() {
			return decimal.Zero, decimal.Zero, payrollerrors.ErrInvalidAmount
		}
		other = parsed
	}

	return holiday, other, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}
	return err
}

func mapToResponse(record PayrollRecord) PayrollResponse {
	resp := PayrollResponse{
		ID:         record.ID.String(),
		EmployeeID: record.EmployeeID.String(),
		StartDate:  record.StartDate.Format("2006-01-02"),
		EndDate:    record.EndDate.Format("2006-01-02"),

		DaysWorked:       record.DaysWorked.StringFixed(2),
		RegularEarnings:  record.RegularEarnings.StringFixed(2),
		OvertimeHours:    record.OvertimeHours.StringFixed(2),
		OvertimeEarnings: record.OvertimeEarnings.StringFixed(2),
		HolidayPay:       record.HolidayPay.StringFixed(2),
		Allowances:       record.Allowances.StringFixed(2),
		OtherEarnings:    record.OtherEarnings.StringFixed(2),
		GrossPay:         record.GrossPay.StringFixed(2),

		SSSContribution:        record.SSSContribution.StringFixed(2),
		PhilHealthContribution: record.PhilHealthContribution.StringFixed(2),
		PagIbigContribution:    record.PagIbigContribution.StringFixed(2),
		TaxWithheld:            record.TaxWithheld.StringFixed(2),
		LoanDeductions:         record.LoanDeductions.StringFixed(2),
		OtherDeductions:        record.OtherDeductions.StringFixed(2),
		TotalDeductions:        record.TotalDeductions.StringFixed(2),

		NetPay:  record.NetPay.StringFixed(2),
		Status:  record.Status,
		Remarks: record.Remarks,
	}
	if record.PaidAt != nil {
		v := record.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	return resp
}

func mapToListResponse(records []PayrollRecord) []PayrollResponse {
	resp := make([]PayrollResponse, len(records))
	for i, record := range records {
		resp[i] = mapToResponse(record)
	}
	return resp
}
