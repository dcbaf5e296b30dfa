package overtime

import (
	"context"
	"database/sql"
	"testing"

	overtimeerrors "ph-payroll/internal/overtime/errors"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeServiceRepo struct {
	Repository
	createFn   func(ctx context.Context, row *Overtime) error
	findByIDFn func(ctx context.Context, id string) (*Overtime, error)
	updateFn   func(ctx context.Context, row *Overtime) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeServiceRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeServiceRepo) Create(ctx context.Context, row *Overtime) error {
	return f.createFn(ctx, row)
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id string) (*Overtime, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeServiceRepo) Update(ctx context.Context, row *Overtime) error {
	return f.updateFn(ctx, row)
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func newOvertimeServiceForTest(t *testing.T, repo *fakeServiceRepo) (Service, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewService(db, repo), mock
}

func strptr(v string) *string { return &v }

func TestOvertimeServiceCreate(t *testing.T) {
	t.Run("defaults the multiplier from the type table", func(t *testing.T) {
		var created *Overtime
		repo := &fakeServiceRepo{
			createFn: func(ctx context.Context, row *Overtime) error {
				created = row
				return nil
			},
		}
		svc, mock := newOvertimeServiceForTest(t, repo)
		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Create(context.Background(), CreateOvertimeRequest{
			AttendanceID: uuid.NewString(),
			Type:         TypeLegalHoliday,
			Hours:        strptr("2"),
		})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, "2.00", resp.RateMultiplier)
		assert.Equal(t, "2.00", resp.Hours)
		assert.Equal(t, StatusPending, resp.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("explicit multiplier overrides the table", func(t *testing.T) {
		repo := &fakeServiceRepo{
			createFn: func(ctx context.Context, row *Overtime) error { return nil },
		}
		svc, mock := newOvertimeServiceForTest(t, repo)
		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Create(context.Background(), CreateOvertimeRequest{
			AttendanceID:   uuid.NewString(),
			Type:           TypeRegular,
			Hours:          strptr("3"),
			RateMultiplier: strptr("1.35"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "1.35", resp.RateMultiplier)
	})

	t.Run("derives hours from the start and end times", func(t *testing.T) {
		repo := &fakeServiceRepo{
			createFn: func(ctx context.Context, row *Overtime) error { return nil },
		}
		svc, mock := newOvertimeServiceForTest(t, repo)
		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Create(context.Background(), CreateOvertimeRequest{
			AttendanceID: uuid.NewString(),
			Type:         TypeRegular,
			StartTime:    strptr("2026-08-03T18:00:00Z"),
			EndTime:      strptr("2026-08-03T20:30:00Z"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "2.50", resp.Hours)
	})

	t.Run("overnight span rolls into the next day", func(t *testing.T) {
		repo := &fakeServiceRepo{
			createFn: func(ctx context.Context, row *Overtime) error { return nil },
		}
		svc, mock := newOvertimeServiceForTest(t, repo)
		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Create(context.Background(), CreateOvertimeRequest{
			AttendanceID: uuid.NewString(),
			Type:         TypeNightDifferential,
			StartTime:    strptr("2026-08-03T22:00:00Z"),
			EndTime:      strptr("2026-08-03T02:00:00Z"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "4.00", resp.Hours)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		svc, _ := newOvertimeServiceForTest(t, &fakeServiceRepo{})

		_, err := svc.Create(context.Background(), CreateOvertimeRequest{
			AttendanceID: uuid.NewString(),
			Type:         "double_secret_overtime",
			Hours:        strptr("2"),
		})

		assert.ErrorIs(t, err, overtimeerrors.ErrInvalidOvertimeType)
	})

	t.Run("no hours and no time pair", func(t *testing.T) {
		svc, _ := newOvertimeServiceForTest(t, &fakeServiceRepo{})

		_, err := svc.Create(context.Background(), CreateOvertimeRequest{
			AttendanceID: uuid.NewString(),
			Type:         TypeRegular,
		})

		assert.ErrorIs(t, err, overtimeerrors.ErrHoursUnresolvable)
	})
}

func TestOvertimeServiceSetStatus(t *testing.T) {
	existing := &Overtime{
		ID:             uuid.New(),
		AttendanceID:   uuid.New(),
		Type:           TypeRegular,
		Hours:          d("2"),
		RateMultiplier: d("1.25"),
		Status:         StatusPending,
	}

	t.Run("rejects unknown status", func(t *testing.T) {
		svc, _ := newOvertimeServiceForTest(t, &fakeServiceRepo{})

		_, err := svc.SetStatus(context.Background(), existing.ID.String(), "WAITING")

		assert.ErrorIs(t, err, overtimeerrors.ErrInvalidStatus)
	})

	t.Run("approves", func(t *testing.T) {
		repo := &fakeServiceRepo{
			findByIDFn: func(ctx context.Context, id string) (*Overtime, error) {
				return existing, nil
			},
			updateFn: func(ctx context.Context, row *Overtime) error { return nil },
		}
		svc, mock := newOvertimeServiceForTest(t, repo)
		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.SetStatus(context.Background(), existing.ID.String(), "approved")

		assert.NoError(t, err)
		assert.Equal(t, StatusApproved, resp.Status)
	})
}

func TestOvertimeServiceGetByID_NotFound(t *testing.T) {
	repo := &fakeServiceRepo{
		findByIDFn: func(ctx context.Context, id string) (*Overtime, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc, _ := newOvertimeServiceForTest(t, repo)

	_, err := svc.GetByID(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, overtimeerrors.ErrOvertimeNotFound)
}
