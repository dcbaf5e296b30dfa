package app

import (
	"database/sql"
	"os"

	"ph-payroll/internal/shared/connection"

	"gorm.io/gorm"
)

const connectRetries = 5

// openDatabase dials postgres from the DB_* environment variables and
// returns both the gorm handle and the underlying sql.DB.
func openDatabase() (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		connectRetries,
	)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}

	return gormDB, sqlDB, nil
}
