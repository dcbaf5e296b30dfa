package deduction

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=deduction_repo.go -destination=mock/deduction_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, setting *DeductionSetting) error
	FindByID(ctx context.Context, id string) (*DeductionSetting, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]DeductionSetting, error)
	FindActiveByEmployee(ctx context.Context, employeeID string) (*DeductionSetting, error)
	FindEffectiveOn(ctx context.Context, employeeID string, date time.Time) (*DeductionSetting, error)
	Update(ctx context.Context, setting *DeductionSetting) error
	DeactivateAllForEmployee(ctx context.Context, employeeID string) error
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

func (r *repository) Create(ctx context.Context, setting *DeductionSetting) error {
	return r.db.WithContext(ctx).Create(setting).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*DeductionSetting, error) {
	var setting DeductionSetting
	err := r.db.WithContext(ctx).First(&setting, "id = ?", id).Error
	return &setting, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]DeductionSetting, error) {
	var settings []DeductionSetting
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_date DESC").
		Find(&settings).Error
	return settings, err
}

func (r *repository) FindActiveByEmployee(ctx context.Context, employeeID string) (*DeductionSetting, error) {
	var setting DeductionSetting
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND is_active = true", employeeID).
		First(&setting).Error
	return &setting, err
}

func (r *repository) FindEffectiveOn(ctx context.Context, employeeID string, date time.Time) (*DeductionSetting, error) {
	var setting DeductionSetting
	day := date.Format("2006-01-02")
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("effective_date <= ?", day).
		Where("end_date IS NULL OR end_date >= ?", day).
		Order("effective_date DESC").
		First(&setting).Error
	return &setting, err
}

func (r *repository) Update(ctx context.Context, setting *DeductionSetting) error {
	return r.db.WithContext(ctx).Save(setting).Error
}

func (r *repository) DeactivateAllForEmployee(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).
		Model(&DeductionSetting{}).
		Where("employee_id = ? AND is_active = true", employeeID).
		Update("is_active", false).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&DeductionSetting{}, "id = ?", id).Error
}
