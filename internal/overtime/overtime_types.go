package overtime

import "github.com/shopspring/decimal"

// Overtime types and their statutory pay multipliers.
const (
	TypeRegular               = "regular_overtime"
	TypeRestDay               = "rest_day"
	TypeSpecialHoliday        = "special_holiday"
	TypeSpecialHolidayRestDay = "special_holiday_rest_day"
	TypeLegalHoliday          = "legal_holiday"
	TypeNightDifferential     = "night_differential"
)

var multipliers = map[string]decimal.Decimal{
	TypeRegular:               decimal.NewFromFloat(1.25),
	TypeRestDay:               decimal.NewFromFloat(1.30),
	TypeSpecialHoliday:        decimal.NewFromFloat(1.30),
	TypeSpecialHolidayRestDay: decimal.NewFromFloat(1.50),
	TypeLegalHoliday:          decimal.NewFromFloat(2.00),
	TypeNightDifferential:     decimal.NewFromFloat(1.10),
}

// DefaultMultiplier returns the canonical multiplier for an overtime type,
// and whether the type is known.
func DefaultMultiplier(overtimeType string) (decimal.Decimal, bool) {
	m, ok := multipliers[overtimeType]
	return m, ok
}
