package postgres

import (
	"careadmin/internal/domain/repository"
	"careadmin/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	sqlStateNotNullViolation    = "23502"
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
	sqlStateCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == sqlStateUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == sqlStateForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == sqlStateNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == sqlStateCheckViolation
}

// translateWriteError maps constraint violations onto repository sentinels,
// keeping the driver error in the chain. Other errors are wrapped with msg.
func translateWriteError(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case isUniqueConstraintViolation(err):
		return errors.Wrap(errors.Join(repository.ErrDuplicate, err), msg)
	case isForeignKeyConstraintViolation(err):
		return errors.Wrap(errors.Join(repository.ErrInvalidReference, err), msg)
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return errors.Wrap(errors.Join(repository.ErrConstraint, err), msg)
	default:
		return errors.Wrap(err, msg)
	}
}
