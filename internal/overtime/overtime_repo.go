package overtime

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=overtime_repo.go -destination=mock/overtime_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, row *Overtime) error
	FindByID(ctx context.Context, id string) (*Overtime, error)
	FindByAttendance(ctx context.Context, attendanceID string) ([]Overtime, error)
	FindRangeByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]Overtime, error)
	Update(ctx context.Context, row *Overtime) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the gorm session onto the caller's transaction so every
// statement commits or rolls back with it.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, row *Overtime) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Overtime, error) {
	var row Overtime
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	return &row, err
}

func (r *repository) FindByAttendance(ctx context.Context, attendanceID string) ([]Overtime, error) {
	var rows []Overtime
	err := r.db.WithContext(ctx).
		Where("attendance_id = ?", attendanceID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// FindRangeByEmployee reaches overtime through its parent attendance record,
// which is what anchors a row to a payroll period.
func (r *repository) FindRangeByEmployee(ctx context.Context, employeeID string, start, end time.Time) ([]Overtime, error) {
	var rows []Overtime
	err := r.db.WithContext(ctx).
		Joins("JOIN attendance_records ON attendance_records.id = overtime_records.attendance_id").
		Where("attendance_records.employee_id = ?", employeeID).
		Where("attendance_records.attendance_date BETWEEN ? AND ?", start, end).
		Order("attendance_records.attendance_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, row *Overtime) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Overtime{}, "id = ?", id).Error
}
