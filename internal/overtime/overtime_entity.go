package overtime

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

// Overtime belongs to one attendance record; the parent's date anchors it
// inside a payroll period.
type Overtime struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	AttendanceID uuid.UUID  `gorm:"column:attendance_id;type:uuid;not null;index"`
	Type         string     `gorm:"column:type;type:varchar(40);not null"`
	Hours        decimal.Decimal `gorm:"column:hours;type:numeric(6,2);not null;default:0"`
	StartTime    *time.Time `gorm:"column:start_time;type:timestamptz"`
	EndTime      *time.Time `gorm:"column:end_time;type:timestamptz"`

	// RateMultiplier is frozen at creation; later changes to the canonical
	// table never reprice existing records.
	RateMultiplier decimal.Decimal `gorm:"column:rate_multiplier;type:numeric(4,2);not null"`
	Status         string          `gorm:"column:status;type:varchar(20);not null;default:'PENDING'"`
	Reason         *string         `gorm:"column:reason;type:text"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (Overtime) TableName() string {
	return "overtime_records"
}
