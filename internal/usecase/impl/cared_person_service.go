package impl

import (
	"context"
	"log/slog"

	deliverycontext "careadmin/internal/delivery/context"
	"careadmin/internal/domain/constants"
	"careadmin/internal/domain/entity"
	domainerrors "careadmin/internal/domain/errors"
	"careadmin/internal/domain/repository"
	"careadmin/internal/usecase"
	"careadmin/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const caredPersonEntity = "cared_persons"

// caredPersonService implements the CaredPersonUsecase interface.
type caredPersonService struct {
	txManager repository.TransactionManager
	audit     *auditRecorder
	logger    *slog.Logger
}

// NewCaredPersonService is the constructor for caredPersonService.
func NewCaredPersonService(params OwnedServiceParams) usecase.CaredPersonUsecase {
	return &caredPersonService{
		txManager: params.TxManager,
		audit:     newAuditRecorder(params.Publisher, params.Logger),
		logger:    params.Logger,
	}
}

func (srv *caredPersonService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *caredPersonService) Create(ctx context.Context, person *entity.CaredPerson) (*entity.CaredPerson, error) {
	created := *person
	created.ID = uuid.New()
	created.IsActive = true
	if err := validation.Struct(&created); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return translateRepoError(
			repoFactory.CaredPersonRepo().Create(ctx, &created),
			domainerrors.ErrCaredPersonNotFound,
			"failed to create cared person",
		)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Cared person created", slog.String("id", created.ID.String()))
	srv.audit.record(ctx, caredPersonEntity, created.ID.String(), entity.AuditCreate, "")

	return &created, nil
}

func (srv *caredPersonService) Get(ctx context.Context, id uuid.UUID) (*entity.CaredPerson, error) {
	var person *entity.CaredPerson

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CaredPersonRepo().FindActiveByID(ctx, id)
		if err != nil {
			return translateRepoError(err, domainerrors.ErrCaredPersonNotFound, "cared person not found")
		}
		person = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return person, nil
}

func (srv *caredPersonService) List(ctx context.Context, skip, limit int) ([]*entity.CaredPerson, error) {
	if skip < 0 {
		return nil, validation.Failed("skip", "must not be negative")
	}
	if limit < 0 {
		return nil, validation.Failed("limit", "must not be negative")
	}
	if limit == 0 {
		limit = constants.DefaultPageLimit
	}
	limit = min(limit, constants.MaxPageLimit)

	var persons []*entity.CaredPerson

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CaredPersonRepo().List(ctx, skip, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list cared persons")
		}
		persons = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return persons, nil
}

func (srv *caredPersonService) Update(ctx context.Context, id uuid.UUID, patch entity.CaredPersonPatch) (*entity.CaredPerson, error) {
	var person *entity.CaredPerson

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		personRepo := repoFactory.CaredPersonRepo()

		found, err := personRepo.FindActiveByID(ctx, id)
		if err != nil {
			return translateRepoError(err, domainerrors.ErrCaredPersonNotFound, "cared person not found")
		}

		patch.ApplyTo(found)
		if err := validation.Struct(found); err != nil {
			return err
		}

		if err := personRepo.Update(ctx, found); err != nil {
			return translateRepoError(err, domainerrors.ErrCaredPersonNotFound, "failed to update cared person")
		}
		person = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.audit.record(ctx, caredPersonEntity, id.String(), entity.AuditUpdate, "")

	return person, nil
}

func (srv *caredPersonService) Deactivate(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		personRepo := repoFactory.CaredPersonRepo()

		found, err := personRepo.FindActiveByID(ctx, id)
		if err != nil {
			return translateRepoError(err, domainerrors.ErrCaredPersonNotFound, "cared person not found")
		}
		found.IsActive = false

		return translateRepoError(
			personRepo.Update(ctx, found),
			domainerrors.ErrCaredPersonNotFound,
			"failed to deactivate cared person",
		)
	})
	if err != nil {
		return err
	}

	srv.audit.record(ctx, caredPersonEntity, id.String(), entity.AuditDeactivate, "")

	return nil
}

// Delete removes the person; the store cascades to every owned record.
func (srv *caredPersonService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return translateRepoError(
			repoFactory.CaredPersonRepo().Delete(ctx, id),
			domainerrors.ErrCaredPersonNotFound,
			"failed to delete cared person",
		)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Cared person deleted", slog.String("id", id.String()))
	srv.audit.record(ctx, caredPersonEntity, id.String(), entity.AuditDelete, "")

	return nil
}
