package attendance

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
	findRangeFn func(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
}

func (f *fakeAggregatorRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeAggregatorRepo) FindRangeByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error) {
	return f.findRangeFn(ctx, employeeID, start, end)
}

func period() (time.Time, time.Time) {
	return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
}

func row(days, status string) Attendance {
	return Attendance{
		ID:         uuid.New(),
		DaysWorked: d(days),
		Status:     status,
	}
}

func TestAggregate_SumsDaysWorked(t *testing.T) {
	rows := []Attendance{
		row("1", StatusApproved),
		row("0.5", StatusPending),
		row("1", StatusApproved),
		row("0", StatusRejected),
	}
	repo := &fakeAggregatorRepo{
		findRangeFn: func(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error) {
			return rows, nil
		},
	}
	agg := NewAggregator(repo)
	start, end := period()

	summary, err := agg.Aggregate(context.Background(), uuid.NewString(), start, end, false)

	assert.NoError(t, err)
	assert.True(t, d("2.5").Equal(summary.DaysWorked), "got %s", summary.DaysWorked)
	assert.Len(t, summary.Records, 4)
}

func TestAggregate_ApprovedOnlySkipsOtherStatuses(t *testing.T) {
	rows := []Attendance{
		row("1", StatusApproved),
		row("0.5", StatusPending),
		row("1", StatusRejected),
	}
	repo := &fakeAggregatorRepo{
		findRangeFn: func(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error) {
			return rows, nil
		},
	}
	agg := NewAggregator(repo)
	start, end := period()

	summary, err := agg.Aggregate(context.Background(), uuid.NewString(), start, end, true)

	assert.NoError(t, err)
	assert.True(t, d("1").Equal(summary.DaysWorked), "got %s", summary.DaysWorked)
	assert.Len(t, summary.Records, 1)
}

func TestAggregate_EmptyRange(t *testing.T) {
	repo := &fakeAggregatorRepo{
		findRangeFn: func(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error) {
			return nil, nil
		},
	}
	agg := NewAggregator(repo)
	start, end := period()

	summary, err := agg.Aggregate(context.Background(), uuid.NewString(), start, end, false)

	assert.NoError(t, err)
	assert.True(t, summary.DaysWorked.Equal(decimal.Zero))
	assert.Empty(t, summary.Records)
}

func TestAggregate_RepoError(t *testing.T) {
	boom := errors.New("db down")
	repo := &fakeAggregatorRepo{
		findRangeFn: func(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error) {
			return nil, boom
		},
	}
	agg := NewAggregator(repo)
	start, end := period()

	_, err := agg.Aggregate(context.Background(), uuid.NewString(), start, end, false)

	assert.ErrorIs(t, err, boom)
}
