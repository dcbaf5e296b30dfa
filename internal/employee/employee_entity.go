package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber   string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_number"`
	FullName         string    `gorm:"type:varchar(150);not null"`
	Email            string    `gorm:"type:varchar(150);not null;uniqueIndex:uq_employee_email"`
	Phone            *string   `gorm:"type:varchar(30)"`
	Position         *string   `gorm:"type:varchar(100)"`
	Department       *string   `gorm:"type:varchar(100)"`
	HireDate         time.Time `gorm:"type:date;not null"`
	EmploymentStatus string    `gorm:"type:varchar(30);not null;default:'REGULAR'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
