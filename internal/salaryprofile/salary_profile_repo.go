package salaryprofile

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_profile_repo.go -destination=mock/salary_profile_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, profile *SalaryProfile) error
	FindByID(ctx context.Context, id string) (*SalaryProfile, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]SalaryProfile, error)
	FindActiveByEmployee(ctx context.Context, employeeID string) (*SalaryProfile, error)
	Update(ctx context.Context, profile *SalaryProfile) error
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

func (r *repository) Create(ctx context.Context, profile *SalaryProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryProfile, error) {
	var profile SalaryProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	return &profile, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]SalaryProfile, error) {
	var profiles []SalaryProfile
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("effective_date DESC").
		Find(&profiles).Error
	return profiles, err
}

func (r *repository) FindActiveByEmployee(ctx context.Context, employeeID string) (*SalaryProfile, error) {
	var profile SalaryProfile
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND is_active = true", employeeID).
		First(&profile).Error
	return &profile, err
}

func (r *repository) Update(ctx context.Context, profile *SalaryProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *repository) DeactivateAllForEmployee(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).
		Model(&SalaryProfile{}).
		Where("employee_id = ? AND is_active = true", employeeID).
		Update("is_active", false).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&SalaryProfile{}, "id = ?", id).Error
}
