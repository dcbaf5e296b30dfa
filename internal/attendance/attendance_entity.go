package attendance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Attendance struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID     uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date;index"`
	TimeIn         *time.Time `gorm:"column:time_in;type:timestamptz"`
	TimeOut        *time.Time `gorm:"column:time_out;type:timestamptz"`

	// DaysWorked is a fraction in [0,1]; derived from the time pair when both
	// are present, otherwise a manual override.
	DaysWorked  decimal.Decimal `gorm:"column:days_worked;type:numeric(4,2);not null;default:0"`
	LateMinutes int             `gorm:"column:late_minutes;not null;default:0"`
	IsAbsent    bool            `gorm:"column:is_absent;not null;default:false"`
	Status      string          `gorm:"column:status;type:varchar(20);not null;default:'PENDING'"`
	Notes       *string         `gorm:"column:notes;type:text"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendance_records"
}
