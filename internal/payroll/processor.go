package payroll

import (
	"context"

	"ph-payroll/internal/attendance"
	"ph-payroll/internal/deduction"
	"ph-payroll/internal/overtime"
	payrollerrors "ph-payroll/internal/payroll/errors"
	"ph-payroll/internal/shared/jsonb"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Processor runs one processing pass over a DRAFT record: it resolves the
// employee's configuration, aggregates the period, prices deductions and
// freezes the source rows into the snapshot columns. The pass mutates the
// record in memory only; the caller persists inside its own transaction.
// Re-running the pass on unchanged sources yields identical fields, every
// derived value is recomputed from scratch.
type Processor struct {
	employees EmployeeSource
	profiles  ProfileSource
	atts      attendance.Aggregator
	overtimes overtime.Aggregator
	resolver  deduction.Resolver
	policy    Policy
	logger    *zap.Logger
}

func NewProcessor(
	employees EmployeeSource,
	profiles ProfileSource,
	atts attendance.Aggregator,
	overtimes overtime.Aggregator,
	resolver deduction.Resolver,
	policy Policy,
	logger *zap.Logger,
) *Processor {
	if logger == nil {
		logger = zap.L()
	}
	return &Processor{
		employees: employees,
		profiles:  profiles,
		atts:      atts,
		overtimes: overtimes,
		resolver:  resolver,
		policy:    policy,
		logger:    logger.Named("payroll.processor"),
	}
}

// Run executes the pass. The record must be DRAFT; on success its status
// is PROCESSING. Any error aborts the pass, nothing is persisted.
func (p *Processor) Run(ctx context.Context, record *PayrollRecord) error {
	if record.Status != StatusDraft {
		return payrollerrors.ErrProcessOnlyDraft
	}

	employeeID := record.EmployeeID.String()

	exists, err := p.employees.Exists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !exists {
		return payrollerrors.ErrEmployeeNotFound
	}

	rates, hasProfile, err := p.profiles.ActiveRates(ctx, employeeID)
	if err != nil {
		return err
	}

	daysWorked := decimal.Zero
	regular := decimal.Zero
	otSummary := overtime.Summary{Hours: decimal.Zero, Earnings: decimal.Zero}
	var attendanceDetails, overtimeDetails jsonb.JSONB

	if hasProfile {
		attSummary, err := p.atts.Aggregate(ctx, employeeID, record.StartDate, record.EndDate, p.policy.ApprovedOnly)
		if err != nil {
			return err
		}

		otSummary, err = p.overtimes.Aggregate(ctx, employeeID, record.StartDate, record.EndDate, rates.Hourly, p.policy.ApprovedOnly)
		if err != nil {
			return err
		}

		daysWorked = attSummary.DaysWorked
		regular = attSummary.DaysWorked.Mul(rates.Daily).Round(2)

		attendanceDetails, err = snapshotAttendance(attSummary.Records)
		if err != nil {
			return err
		}
		overtimeDetails, err = snapshotOvertime(otSummary.Lines)
		if err != nil {
			return err
		}
	} else {
		p.logger.Warn("no active salary profile, earnings degrade to zero",
			zap.String("employee_id", employeeID),
			zap.Time("period_start", record.StartDate),
			zap.Time("period_end", record.EndDate),
		)
	}

	resolution, err := p.resolver.Resolve(ctx, employeeID, regular.Add(otSummary.Earnings))
	if err != nil {
		return err
	}
	if !resolution.Found {
		p.logger.Warn("no active deduction setting, deductions degrade to zero",
			zap.String("employee_id", employeeID),
			zap.Time("period_start", record.StartDate),
			zap.Time("period_end", record.EndDate),
		)
	}

	deductionDetails, err := snapshotDeductions(resolution)
	if err != nil {
		return err
	}

	record.DaysWorked = daysWorked
	record.RegularEarnings = regular
	record.OvertimeHours = otSummary.Hours
	record.OvertimeEarnings = otSummary.Earnings.Round(2)
	record.Allowances = resolution.Allowances

	record.SSSContribution = resolution.SSSContribution
	record.PhilHealthContribution = resolution.PhilHealthContribution
	record.PagIbigContribution = resolution.PagIbigContribution
	record.TaxWithheld = resolution.TaxWithheld
	record.LoanDeductions = resolution.LoanDeductions
	record.OtherDeductions = resolution.OtherDeductions

	record.AttendanceDetails = attendanceDetails
	record.OvertimeDetails = overtimeDetails
	record.DeductionDetails = deductionDetails

	calculateTotals(record)
	record.Status = StatusProcessing

	return nil
}

// calculateTotals derives the three roll-up fields from the line items.
// HolidayPay and OtherEarnings are manual DRAFT-time inputs and are never
// touched by the pass itself.
func calculateTotals(record *PayrollRecord) {
	record.GrossPay = record.RegularEarnings.
		Add(record.OvertimeEarnings).
		Add(record.HolidayPay).
		Add(record.Allowances).
		Add(record.OtherEarnings)

	record.TotalDeductions = record.SSSContribution.
		Add(record.PhilHealthContribution).
		Add(record.PagIbigContribution).
		Add(record.TaxWithheld).
		Add(record.LoanDeductions).
		Add(record.OtherDeductions)

	record.NetPay = record.GrossPay.Sub(record.TotalDeductions)
}

type attendanceSnapshot struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	DaysWorked  string `json:"days_worked"`
	LateMinutes int    `json:"late_minutes"`
	IsAbsent    bool   `json:"is_absent"`
	Status      string `json:"status"`
}

type overtimeSnapshot struct {
	ID             string `json:"id"`
	AttendanceID   string `json:"attendance_id"`
	Type           string `json:"type"`
	Hours          string `json:"hours"`
	RateMultiplier string `json:"rate_multiplier"`
	Status         string `json:"status"`
	Pay            string `json:"pay"`
}

type deductionSnapshot struct {
	Loans           deduction.Loans `json:"loans"`
	OtherDeductions string          `json:"other_deductions"`
}

func snapshotAttendance(rows []attendance.Attendance) (jsonb.JSONB, error) {
	snaps := make([]attendanceSnapshot, len(rows))
	for i, row := range rows {
		snaps[i] = attendanceSnapshot{
			ID:          row.ID.String(),
			Date:        row.AttendanceDate.Format("2006-01-02"),
			DaysWorked:  row.DaysWorked.StringFixed(2),
			LateMinutes: row.LateMinutes,
			IsAbsent:    row.IsAbsent,
			Status:      row.Status,
		}
	}
	return jsonb.Marshal(snaps)
}

func snapshotOvertime(lines []overtime.Line) (jsonb.JSONB, error) {
	snaps := make([]overtimeSnapshot, len(lines))
	for i, line := range lines {
		snaps[i] = overtimeSnapshot{
			ID:             line.Record.ID.String(),
			AttendanceID:   line.Record.AttendanceID.String(),
			Type:           line.Record.Type,
			Hours:          line.Record.Hours.StringFixed(2),
			RateMultiplier: line.Record.RateMultiplier.StringFixed(2),
			Status:         line.Record.Status,
			Pay:            line.Pay.StringFixed(2),
		}
	}
	return jsonb.Marshal(snaps)
}

func snapshotDeductions(resolution deduction.Resolution) (jsonb.JSONB, error) {
	if !resolution.Found {
		return jsonb.Marshal(deductionSnapshot{OtherDeductions: "0.00"})
	}
	return jsonb.Marshal(deductionSnapshot{
		Loans:           resolution.Setting.Loans,
		OtherDeductions: resolution.OtherDeductions.StringFixed(2),
	})
}
