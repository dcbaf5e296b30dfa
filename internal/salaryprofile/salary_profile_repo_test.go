package salaryprofile

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// The repository handle returned by WithTx must execute on the caller's
// transaction, not on the shared pool: a rollback has to undo its writes.
// Two separate mock connections make any statement escaping the
// transaction fail the test.
func TestWithTxRoutesStatementsThroughTheTransaction(t *testing.T) {
	poolConn, poolMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer poolConn.Close()

	txConn, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	defer txConn.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: poolConn}), &gorm.Config{})
	assert.NoError(t, err)

	repo := NewRepository(gormDB)

	txMock.ExpectBegin()
	txMock.ExpectExec(`UPDATE "salary_profiles"`).
		WithArgs(false, sqlmock.AnyArg(), "2f0c6a44-9c20-4b71-9cf1-3a51c1c7f7d2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectRollback()

	tx, err := txConn.Begin()
	assert.NoError(t, err)

	err = repo.WithTx(tx).DeactivateAllForEmployee(context.Background(), "2f0c6a44-9c20-4b71-9cf1-3a51c1c7f7d2")
	assert.NoError(t, err)

	assert.NoError(t, tx.Rollback())

	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}
