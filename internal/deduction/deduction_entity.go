package deduction

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DeductionSetting struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`

	// Statutory contributions are stored as fixed monthly amounts; the
	// statutory tables only supply defaults when a setting is created.
	SSSContribution        decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	PhilHealthContribution decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	PagIbigContribution    decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`

	TaxRate      decimal.Decimal `gorm:"type:numeric(6,4);not null;default:0"`
	TaxExemption decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TaxStatus    string          `gorm:"type:varchar(20);not null;default:'S'"`

	Loans           Loans           `gorm:"type:jsonb"`
	OtherDeductions decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Allowances      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	OtherAdditions  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	EffectiveDate time.Time  `gorm:"type:date;not null"`
	EndDate       *time.Time `gorm:"type:date"`
	IsActive      bool       `gorm:"not null;default:false;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DeductionSetting) TableName() string {
	return "deduction_settings"
}

type Loan struct {
	Name    string           `json:"name"`
	Amount  decimal.Decimal  `json:"amount"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
}

type Loans []Loan

func (l Loans) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *Loans) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("loans: unsupported scan source")
	}
}

// Total sums every loan's periodic amount.
func (l Loans) Total() decimal.Decimal {
	total := decimal.Zero
	for _, loan := range l {
		total = total.Add(loan.Amount)
	}
	return total
}
