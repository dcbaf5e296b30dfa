package salaryprofile

import "github.com/shopspring/decimal"

const (
	WorkDaysPerMonth = 22
	WorkHoursPerDay  = 8
	MinutesPerHour   = 60
)

var (
	divTwo     = decimal.NewFromInt(2)
	divDays    = decimal.NewFromInt(WorkDaysPerMonth)
	divHours   = decimal.NewFromInt(WorkHoursPerDay)
	divMinutes = decimal.NewFromInt(MinutesPerHour)
)

// CalculateAllRates recomputes the derived pay rates from MonthlyRate.
// A non-positive monthly rate leaves the cached rates untouched; that
// matches the long-standing behavior downstream reports rely on, so it is
// deliberately not treated as a validation error.
func CalculateAllRates(profile *SalaryProfile) *SalaryProfile {
	if profile.MonthlyRate.LessThanOrEqual(decimal.Zero) {
		return profile
	}

	profile.SemiMonthlyRate = profile.MonthlyRate.Div(divTwo).Round(2)
	profile.DailyRate = profile.MonthlyRate.Div(divDays).Round(2)
	profile.HourlyRate = profile.DailyRate.Div(divHours).Round(2)
	profile.MinuteRate = profile.HourlyRate.Div(divMinutes).Round(4)

	return profile
}
