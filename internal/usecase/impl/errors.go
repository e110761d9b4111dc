// Package impl contains the application-specific business rules implementations.
package impl

import (
	domainerrors "careadmin/internal/domain/errors"
	"careadmin/internal/domain/repository"

	"github.com/pkg/errors"
)

// translateRepoError maps repository sentinels onto application errors.
// notFound is the error reported for repository.ErrNotFound.
func translateRepoError(err error, notFound *domainerrors.BaseError, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return errors.Wrap(notFound, msg)
	case errors.Is(err, repository.ErrDuplicate):
		return errors.Wrap(domainerrors.ErrDuplicate, msg)
	case errors.Is(err, repository.ErrInvalidReference):
		return errors.Wrap(domainerrors.ErrInvalidReference, msg)
	case errors.Is(err, repository.ErrConstraint):
		return errors.Wrap(domainerrors.ErrConstraintViolation, msg)
	default:
		return errors.Wrap(err, msg)
	}
}
