package payroll

import (
	"time"

	"ph-payroll/internal/shared/jsonb"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusDraft      = "DRAFT"
	StatusProcessing = "PROCESSING"
	StatusApproved   = "APPROVED"
	StatusPaid       = "PAID"
)

// PayrollRecord is one employee's pay for one period. Monetary fields are
// derived during processing; once the record leaves DRAFT its figures are
// frozen, the snapshot columns keep them from drifting when source rows
// are edited later.
type PayrollRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period"`

	StartDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_payroll_employee_period"`
	EndDate   time.Time `gorm:"type:date;not null;uniqueIndex:uq_payroll_employee_period"`

	// Earnings
	DaysWorked       decimal.Decimal `gorm:"type:numeric(6,2);not null;default:0"`
	RegularEarnings  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	OvertimeHours    decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
	OvertimeEarnings decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	HolidayPay       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Allowances       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	OtherEarnings    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	GrossPay         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	// Deductions
	SSSContribution        decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	PhilHealthContribution decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	PagIbigContribution    decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	TaxWithheld            decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	LoanDeductions         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	OtherDeductions        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TotalDeductions        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	NetPay decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	// Snapshots of the source rows as of processing time.
	AttendanceDetails jsonb.JSONB `gorm:"type:jsonb"`
	OvertimeDetails   jsonb.JSONB `gorm:"type:jsonb"`
	DeductionDetails  jsonb.JSONB `gorm:"type:jsonb"`

	Status  string  `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	Remarks *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	PaidAt    *time.Time `gorm:"index"`
}

func (PayrollRecord) TableName() string {
	return "payroll_records"
}
