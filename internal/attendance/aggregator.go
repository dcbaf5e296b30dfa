package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Summary is what one payroll pass consumes: the days-worked total plus the
// raw rows so the processor can snapshot them by value.
type Summary struct {
	DaysWorked decimal.Decimal
	Records    []Attendance
}

//go:generate mockgen -source=aggregator.go -destination=mock/aggregator_mock.go -package=mock
type Aggregator interface {
	Aggregate(ctx context.Context, employeeID string, start, end time.Time, approvedOnly bool) (Summary, error)
}

type aggregator struct {
	repo Repository
}

func NewAggregator(repo Repository) Aggregator {
	return &aggregator{repo: repo}
}

// Aggregate sums days_worked over the closed interval [start, end].
// approvedOnly narrows to APPROVED rows; the default payroll policy passes
// false and counts every status.
func (a *aggregator) Aggregate(
	ctx context.Context,
	employeeID string,
	start, end time.Time,
	approvedOnly bool,
) (Summary, error) {
	rows, err := a.repo.FindRangeByEmployee(ctx, employeeID, start, end)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{DaysWorked: decimal.Zero}
	for _, row := range rows {
		if approvedOnly && row.Status != StatusApproved {
			continue
		}
		summary.DaysWorked = summary.DaysWorked.Add(row.DaysWorked)
		summary.Records = append(summary.Records, row)
	}

	return summary, nil
}
