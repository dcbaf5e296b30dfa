package payroll

import (
	"context"
	"testing"
	"time"

	"ph-payroll/internal/attendance"
	"ph-payroll/internal/deduction"
	"ph-payroll/internal/overtime"
	payrollerrors "ph-payroll/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

type fakeEmployeeSource struct {
	existsFn func(ctx context.Context, employeeID string) (bool, error)
}

func (f *fakeEmployeeSource) Exists(ctx context.Context, employeeID string) (bool, error) {
	return f.existsFn(ctx, employeeID)
}

type fakeProfileSource struct {
	activeRatesFn func(ctx context.Context, employeeID string) (ProfileRates, bool, error)
}

func (f *fakeProfileSource) ActiveRates(ctx context.Context, employeeID string) (ProfileRates, bool, error) {
	return f.activeRatesFn(ctx, employeeID)
}

type fakeAttendanceAggregator struct {
	aggregateFn func(ctx context.Context, employeeID string, start, end time.Time, approvedOnly bool) (attendance.Summary, error)
}

func (f *fakeAttendanceAggregator) Aggregate(ctx context.Context, employeeID string, start, end time.Time, approvedOnly bool) (attendance.Summary, error) {
	return f.aggregateFn(ctx, employeeID, start, end, approvedOnly)
}

type fakeOvertimeAggregator struct {
	aggregateFn func(ctx context.Context, employeeID string, start, end time.Time, hourlyRate decimal.Decimal, approvedOnly bool) (overtime.Summary, error)
}

func (f *fakeOvertimeAggregator) Aggregate(ctx context.Context, employeeID string, start, end time.Time, hourlyRate decimal.Decimal, approvedOnly bool) (overtime.Summary, error) {
	return f.aggregateFn(ctx, employeeID, start, end, hourlyRate, approvedOnly)
}

type fakeResolver struct {
	resolveFn func(ctx context.Context, employeeID string, earnedSubtotal decimal.Decimal) (deduction.Resolution, error)
}

func (f *fakeResolver) Resolve(ctx context.Context, employeeID string, earnedSubtotal decimal.Decimal) (deduction.Resolution, error) {
	return f.resolveFn(ctx, employeeID, earnedSubtotal)
}

func draftRecord() *PayrollRecord {
	return newDraftRecord(
		uuid.New(),
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		decimal.Zero,
		decimal.Zero,
		nil,
	)
}

// standardProcessor wires a full fixture: monthly 22000 (daily 1000,
// hourly 125), 20 days worked, 4 overtime hours at 1.25, and a setting
// with SSS 500 / PhilHealth 300 / Pag-IBIG 100, 10% tax over a 15000
// exemption.
func standardProcessor() *Processor {
	employees := &fakeEmployeeSource{
		existsFn: func(ctx context.Context, employeeID string) (bool, error) { return true, nil },
	}
	profiles := &fakeProfileSource{
		activeRatesFn: func(ctx context.Context, employeeID string) (ProfileRates, bool, error) {
			return ProfileRates{Monthly: d("22000"), Daily: d("1000"), Hourly: d("125")}, true, nil
		},
	}
	atts := &fakeAttendanceAggregator{
		aggregateFn: func(ctx context.Context, employeeID string, start, end time.Time, approvedOnly bool) (attendance.Summary, error) {
			records := make([]attendance.Attendance, 20)
			for i := range records {
				records[i] = attendance.Attendance{
					ID:             uuid.New(),
					AttendanceDate: start.AddDate(0, 0, i),
					DaysWorked:     d("1"),
					Status:         attendance.StatusApproved,
				}
			}
			return attendance.Summary{DaysWorked: d("20"), Records: records}, nil
		},
	}
	overtimes := &fakeOvertimeAggregator{
		aggregateFn: func(ctx context.Context, employeeID string, start, end time.Time, hourlyRate decimal.Decimal, approvedOnly bool) (overtime.Summary, error) {
			record := overtime.Overtime{
				ID:             uuid.New(),
				AttendanceID:   uuid.New(),
				Type:           overtime.TypeRegular,
				Hours:          d("4"),
				RateMultiplier: d("1.25"),
				Status:         overtime.StatusApproved,
			}
			pay := record.Hours.Mul(hourlyRate).Mul(record.RateMultiplier)
			return overtime.Summary{
				Hours:    record.Hours,
				Earnings: pay,
				Lines:    []overtime.Line{{Record: record, Pay: pay}},
			}, nil
		},
	}
	resolver := &fakeResolver{
		resolveFn: func(ctx context.Context, employeeID string, earnedSubtotal decimal.Decimal) (deduction.Resolution, error) {
			exemption := d("15000")
			return deduction.Resolution{
				Found:                  true,
				Setting:                &deduction.DeductionSetting{},
				SSSContribution:        d("500"),
				PhilHealthContribution: d("300"),
				PagIbigContribution:    d("100"),
				TaxWithheld:            deduction.WithholdingTax(earnedSubtotal, exemption, d("0.10")),
				LoanDeductions:         decimal.Zero,
				OtherDeductions:        decimal.Zero,
				Allowances:             decimal.Zero,
				OtherAdditions:         decimal.Zero,
			}, nil
		},
	}

	return NewProcessor(employees, profiles, atts, overtimes, resolver, Policy{}, nil)
}

func TestProcessorRun_FullPass(t *testing.T) {
	p := standardProcessor()
	record := draftRecord()

	err := p.Run(context.Background(), record)

	assert.NoError(t, err)
	assert.Equal(t, StatusProcessing, record.Status)

	assert.True(t, d("20").Equal(record.DaysWorked), "days: %s", record.DaysWorked)
	assert.True(t, d("20000").Equal(record.RegularEarnings), "regular: %s", record.RegularEarnings)
	assert.True(t, d("4").Equal(record.OvertimeHours), "ot hours: %s", record.OvertimeHours)
	assert.True(t, d("625").Equal(record.OvertimeEarnings), "ot pay: %s", record.OvertimeEarnings)
	assert.True(t, d("20625").Equal(record.GrossPay), "gross: %s", record.GrossPay)

	assert.True(t, d("500").Equal(record.SSSContribution))
	assert.True(t, d("300").Equal(record.PhilHealthContribution))
	assert.True(t, d("100").Equal(record.PagIbigContribution))
	assert.True(t, d("562.50").Equal(record.TaxWithheld), "tax: %s", record.TaxWithheld)
	assert.True(t, d("1462.50").Equal(record.TotalDeductions), "deductions: %s", record.TotalDeductions)
	assert.True(t, d("19162.50").Equal(record.NetPay), "net: %s", record.NetPay)

	assert.NotEmpty(t, record.AttendanceDetails)
	assert.NotEmpty(t, record.OvertimeDetails)
	assert.NotEmpty(t, record.DeductionDetails)
}

func TestProcessorRun_TotalsIdentity(t *testing.T) {
	p := standardProcessor()
	record := draftRecord()
	record.HolidayPay = d("1000")
	record.OtherEarnings = d("250")

	err := p.Run(context.Background(), record)

	assert.NoError(t, err)
	// Manual earnings survive the pass untouched and feed the gross.
	assert.True(t, d("1000").Equal(record.HolidayPay))
	assert.True(t, d("250").Equal(record.OtherEarnings))
	assert.True(t, d("21875").Equal(record.GrossPay), "gross: %s", record.GrossPay)
	assert.True(t, record.NetPay.Equal(record.GrossPay.Sub(record.TotalDeductions)))
}

func TestProcessorRun_SamePassTwiceYieldsSameFields(t *testing.T) {
	p := standardProcessor()
	record := draftRecord()

	assert.NoError(t, p.Run(context.Background(), record))
	firstNet := record.NetPay
	firstGross := record.GrossPay
	firstDetails := string(record.AttendanceDetails)

	// Editing the draft re-opens it for another pass over the same rows.
	record.Status = StatusDraft
	assert.NoError(t, p.Run(context.Background(), record))

	assert.True(t, firstNet.Equal(record.NetPay))
	assert.True(t, firstGross.Equal(record.GrossPay))
	assert.Len(t, record.AttendanceDetails, len(firstDetails))
}

func TestProcessorRun_RejectsNonDraft(t *testing.T) {
	p := standardProcessor()

	for _, status := range []string{StatusProcessing, StatusApproved, StatusPaid} {
		t.Run(status, func(t *testing.T) {
			record := draftRecord()
			record.Status = status

			err := p.Run(context.Background(), record)

			assert.ErrorIs(t, err, payrollerrors.ErrProcessOnlyDraft)
		})
	}
}

func TestProcessorRun_UnknownEmployee(t *testing.T) {
	p := standardProcessor()
	p.employees = &fakeEmployeeSource{
		existsFn: func(ctx context.Context, employeeID string) (bool, error) { return false, nil },
	}
	record := draftRecord()

	err := p.Run(context.Background(), record)

	assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
	assert.Equal(t, StatusDraft, record.Status)
}

func TestProcessorRun_NoProfileDegradesEarningsToZero(t *testing.T) {
	p := standardProcessor()
	p.profiles = &fakeProfileSource{
		activeRatesFn: func(ctx context.Context, employeeID string) (ProfileRates, bool, error) {
			return ProfileRates{}, false, nil
		},
	}
	record := draftRecord()

	err := p.Run(context.Background(), record)

	assert.NoError(t, err)
	assert.Equal(t, StatusProcessing, record.Status)
	assert.True(t, record.DaysWorked.IsZero())
	assert.True(t, record.RegularEarnings.IsZero())
	assert.True(t, record.OvertimeEarnings.IsZero())
	assert.True(t, record.GrossPay.IsZero())
	assert.Nil(t, record.AttendanceDetails)
	assert.Nil(t, record.OvertimeDetails)

	// Fixed deductions still apply; only the tax base collapsed.
	assert.True(t, d("500").Equal(record.SSSContribution))
	assert.True(t, record.TaxWithheld.IsZero(), "tax: %s", record.TaxWithheld)
	assert.True(t, d("900").Equal(record.TotalDeductions), "deductions: %s", record.TotalDeductions)
	assert.True(t, d("-900").Equal(record.NetPay), "net: %s", record.NetPay)
}

func TestProcessorRun_NoDeductionSettingDegradesToZero(t *testing.T) {
	p := standardProcessor()
	p.resolver = &fakeResolver{
		resolveFn: func(ctx context.Context, employeeID string, earnedSubtotal decimal.Decimal) (deduction.Resolution, error) {
			return deduction.Resolution{Found: false}, nil
		},
	}
	record := draftRecord()

	err := p.Run(context.Background(), record)

	assert.NoError(t, err)
	assert.True(t, record.TotalDeductions.IsZero())
	assert.True(t, record.GrossPay.Equal(record.NetPay))
}

func TestProcessorRun_PolicyReachesAggregators(t *testing.T) {
	var attApproved, otApproved bool
	p := standardProcessor()
	p.policy = Policy{ApprovedOnly: true}

	base := standardProcessor()
	p.atts = &fakeAttendanceAggregator{
		aggregateFn: func(ctx context.Context, employeeID string, start, end time.Time, approvedOnly bool) (attendance.Summary, error) {
			attApproved = approvedOnly
			return base.atts.Aggregate(ctx, employeeID, start, end, approvedOnly)
		},
	}
	p.overtimes = &fakeOvertimeAggregator{
		aggregateFn: func(ctx context.Context, employeeID string, start, end time.Time, hourlyRate decimal.Decimal, approvedOnly bool) (overtime.Summary, error) {
			otApproved = approvedOnly
			return base.overtimes.Aggregate(ctx, employeeID, start, end, hourlyRate, approvedOnly)
		},
	}

	err := p.Run(context.Background(), draftRecord())

	assert.NoError(t, err)
	assert.True(t, attApproved)
	assert.True(t, otApproved)
}
