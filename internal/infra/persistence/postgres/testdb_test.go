package postgres

import (
	"context"
	"os"
	"sync"
	"testing"

	"careadmin/internal/errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var errMissingDSN = errors.New("missing TEST_POSTGRES_DSN")

var (
	dbOnce sync.Once
	testDB *gorm.DB
	dbErr  error
)

// openTestDB connects to TEST_POSTGRES_DSN once and migrates the schema.
// Tests are skipped when the variable is unset.
func openTestDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			dbErr = errMissingDSN

			return
		}

		testDB, dbErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			SkipDefaultTransaction: true,
			Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if dbErr != nil {
			return
		}

		dbErr = Migrate(context.Background(), testDB)
	})

	if errors.Is(dbErr, errMissingDSN) {
		tb.Skip("set TEST_POSTGRES_DSN to run repository integration tests")
	}
	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}

	return testDB
}

// testTx opens a transaction that is rolled back when the test ends.
func testTx(tb testing.TB) *gorm.DB {
	tb.Helper()

	tx := openTestDB(tb).Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})

	return tx
}

// savepoint runs fn in a nested transaction so a failing statement does not
// abort the outer test transaction.
func savepoint(tx *gorm.DB, fn func(tx *gorm.DB) error) error {
	var fnErr error
	_ = tx.Transaction(func(nested *gorm.DB) error {
		fnErr = fn(nested)

		return fnErr
	})

	return fnErr
}
