package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	nominalDayMinutes = decimal.NewFromInt(8 * 60)
	one               = decimal.NewFromInt(1)
)

// SpanMinutes returns the minutes between in and out, treating an out time
// earlier than the in time as the next calendar day (overnight shift).
func SpanMinutes(in, out time.Time) decimal.Decimal {
	if out.Before(in) {
		out = out.Add(24 * time.Hour)
	}
	return decimal.NewFromFloat(out.Sub(in).Minutes())
}

// DeriveDaysWorked reproduces the rule payroll depends on:
//  1. absent days are zero regardless of the time pair;
//  2. when both times exist, days = worked minutes over an 8-hour nominal
//     day, clamped to [0,1];
//  3. otherwise the manually supplied value stands.
func DeriveDaysWorked(timeIn, timeOut *time.Time, isAbsent bool, manual decimal.Decimal) decimal.Decimal {
	if isAbsent {
		return decimal.Zero
	}

	if timeIn != nil && timeOut != nil {
		days := SpanMinutes(*timeIn, *timeOut).Div(nominalDayMinutes)
		if days.LessThan(decimal.Zero) {
			return decimal.Zero
		}
		if days.GreaterThan(one) {
			return one
		}
		return days.Round(2)
	}

	return manual
}
