package salaryprofile

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalaryProfile struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	// MonthlyRate is the single source of truth; the other rates are
	// derived caches recomputed on every persist.
	MonthlyRate     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	SemiMonthlyRate decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	DailyRate       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	HourlyRate      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	MinuteRate      decimal.Decimal `gorm:"type:numeric(12,4);not null;default:0"`

	EffectiveDate time.Time  `gorm:"type:date;not null"`
	EndDate       *time.Time `gorm:"type:date"`
	IsActive      bool       `gorm:"not null;default:false;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
