package overtime

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Summary carries the period totals plus per-record computed pay, so the
// payroll processor can snapshot exactly what it paid for.
type Summary struct {
	Hours    decimal.Decimal
	Earnings decimal.Decimal
	Lines    []Line
}

type Line struct {
	Record Overtime
	Pay    decimal.Decimal
}

//go:generate mockgen -source=aggregator.go -destination=mock/aggregator_mock.go -package=mock
type Aggregator interface {
	Aggregate(ctx context.Context, employeeID string, start, end time.Time, hourlyRate decimal.Decimal, approvedOnly bool) (Summary, error)
}

type aggregator struct {
	repo Repository
}

func NewAggregator(repo Repository) Aggregator {
	return &aggregator{repo: repo}
}

// Aggregate prices every overtime record in the period:
// pay = hours * hourly_rate * rate_multiplier.
func (a *aggregator) Aggregate(
	ctx context.Context,
	employeeID string,
	start, end time.Time,
	hourlyRate decimal.Decimal,
	approvedOnly bool,
) (Summary, error) {
	rows, err := a.repo.FindRangeByEmployee(ctx, employeeID, start, end)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Hours:    decimal.Zero,
		Earnings: decimal.Zero,
	}

	for _, row := range rows {
		if approvedOnly && row.Status != StatusApproved {
			continue
		}

		pay := row.Hours.Mul(hourlyRate).Mul(row.RateMultiplier)
		summary.Hours = summary.Hours.Add(row.Hours)
		summary.Earnings = summary.Earnings.Add(pay)
		summary.Lines = append(summary.Lines, Line{Record: row, Pay: pay})
	}

	return summary, nil
}
