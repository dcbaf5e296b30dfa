package overtime

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeAggregatorRepo struct {
	Repository
	findRangeFn func(ctx context.Context, employeeID string, start, end time.Time) ([]Overtime, error)
}

func (f *fakeAggregatorRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeAggregatorRepo) FindRangeByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]Overtime, error) {
	return f.findRangeFn(ctx, employeeID, start, end)
}

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func period() (time.Time, time.Time) {
	return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
}

func row(hours, multiplier, status string) Overtime {
	return Overtime{
		ID:             uuid.New(),
		Hours:          d(hours),
		RateMultiplier: d(multiplier),
		Status:         status,
	}
}

func TestAggregate_PricesEachRecord(t *testing.T) {
	rows := []Overtime{
		row("2", "2.00", StatusApproved),
		row("1.5", "1.25", StatusApproved),
	}
	repo := &fakeAggregatorRepo{
		findRangeFn: func(ctx context.Context, employeeID string, start, end time.Time) ([]Overtime, error) {
			return rows, nil
		},
	}
	agg := NewAggregator(repo)
	start, end := period()

	summary, err := agg.Aggregate(context.Background(), uuid.NewString(), start, end, d("100"), false)

	assert.NoError(t, err)
	assert.True(t, d("3.5").Equal(summary.Hours), "hours: %s", summary.Hours)
	// 2*100*2.00 + 1.5*100*1.25 = 400 + 187.50
	assert.True(t, d("587.50").Equal(summary.Earnings), "earnings: %s", summary.Earnings)
	assert.Len(t, summary.Lines, 2)
	assert.True(t, d("400").Equal(summary.Lines[0].Pay), "line 0 pay: %s", summary.Lines[0].Pay)
	assert.True(t, d("187.50").Equal(summary.Lines[1].Pay), "line 1 pay: %s", summary.Lines[1].Pay)
}

func TestAggregate_ApprovedOnlySkipsOtherStatuses(t *testing.T) {
	rows := []Overtime{
		row("2", "1.25", StatusApproved),
		row("4", "1.25", StatusPending),
		row("1", "2.00", StatusRejected),
	}
	repo := &fakeAggregatorRepo{
		findRangeFn: func(ctx context.Context, employeeID string, start, end time.Time) ([]Overtime, error) {
			return rows, nil
		},
	}
	agg := NewAggregator(repo)
	start, end := period()

	summary, err := agg.Aggregate(context.Background(), uuid.NewString(), start, end, d("125"), true)

	assert.NoError(t, err)
	assert.True(t, d("2").Equal(summary.Hours), "hours: %s", summary.Hours)
	assert.True(t, d("312.50").Equal(summary.Earnings), "earnings: %s", summary.Earnings)
	assert.Len(t, summary.Lines, 1)
}

func TestAggregate_EmptyRange(t *testing.T) {
	repo := &fakeAggregatorRepo{
		findRangeFn: func(ctx context.Context, employeeID string, start, end time.Time) ([]Overtime, error) {
			return nil, nil
		},
	}
	agg := NewAggregator(repo)
	start, end := period()

	summary, err := agg.Aggregate(context.Background(), uuid.NewString(), start, end, d("125"), false)

	assert.NoError(t, err)
	assert.True(t, summary.Hours.IsZero())
	assert.True(t, summary.Earnings.IsZero())
	assert.Empty(t, summary.Lines)
}

func TestAggregate_RepoError(t *testing.T) {
	boom := errors.New("db down")
	repo := &fakeAggregatorRepo{
		findRangeFn: func(ctx context.Context, employeeID string, start, end time.Time) ([]Overtime, error) {
			return nil, boom
		},
	}
	agg := NewAggregator(repo)
	start, end := period()

	_, err := agg.Aggregate(context.Background(), uuid.NewString(), start, end, d("125"), false)

	assert.ErrorIs(t, err, boom)
}
