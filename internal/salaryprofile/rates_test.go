package salaryprofile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestCalculateAllRates(t *testing.T) {
	profile := &SalaryProfile{MonthlyRate: d("22000")}

	CalculateAllRates(profile)

	assert.True(t, d("11000").Equal(profile.SemiMonthlyRate), "semi-monthly: %s", profile.SemiMonthlyRate)
	assert.True(t, d("1000").Equal(profile.DailyRate), "daily: %s", profile.DailyRate)
	assert.True(t, d("125").Equal(profile.HourlyRate), "hourly: %s", profile.HourlyRate)
	assert.True(t, d("2.0833").Equal(profile.MinuteRate), "minute: %s", profile.MinuteRate)
}

func TestCalculateAllRates_RoundsToCents(t *testing.T) {
	profile := &SalaryProfile{MonthlyRate: d("25000")}

	CalculateAllRates(profile)

	// 25000/22 = 1136.3636..., stored to the cent.
	assert.True(t, d("12500").Equal(profile.SemiMonthlyRate))
	assert.True(t, d("1136.36").Equal(profile.DailyRate), "daily: %s", profile.DailyRate)
	assert.True(t, d("142.05").Equal(profile.HourlyRate), "hourly: %s", profile.HourlyRate)
	assert.True(t, d("2.3675").Equal(profile.MinuteRate), "minute: %s", profile.MinuteRate)
}

func TestCalculateAllRates_NonPositiveLeavesRatesUntouched(t *testing.T) {
	profile := &SalaryProfile{
		MonthlyRate:     d("0"),
		SemiMonthlyRate: d("11000"),
		DailyRate:       d("1000"),
		HourlyRate:      d("125"),
		MinuteRate:      d("2.0833"),
	}

	CalculateAllRates(profile)

	// Stale derived rates stay as they were, recomputation is skipped.
	assert.True(t, d("11000").Equal(profile.SemiMonthlyRate))
	assert.True(t, d("1000").Equal(profile.DailyRate))
	assert.True(t, d("125").Equal(profile.HourlyRate))
	assert.True(t, d("2.0833").Equal(profile.MinuteRate))
}
