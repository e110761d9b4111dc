package postgres

import (
	"testing"

	"careadmin/internal/domain/repository"
	"careadmin/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unique sqlstate", err: &pgconn.PgError{Code: "23505"}, want: repository.ErrDuplicate},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: repository.ErrDuplicate},
		{name: "foreign key sqlstate", err: &pgconn.PgError{Code: "23503"}, want: repository.ErrInvalidReference},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, want: repository.ErrInvalidReference},
		{name: "not null", err: &pgconn.PgError{Code: "23502"}, want: repository.ErrConstraint},
		{name: "check", err: &pgconn.PgError{Code: "23514"}, want: repository.ErrConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateWriteError(errors.WithStack(tt.err), "write")
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestTranslateWriteError_PassesThroughOtherErrors(t *testing.T) {
	cause := errors.New("connection refused")
	got := translateWriteError(cause, "write")

	assert.ErrorIs(t, got, cause)
	assert.NotErrorIs(t, got, repository.ErrDuplicate)
	assert.Nil(t, translateWriteError(nil, "write"))
}
