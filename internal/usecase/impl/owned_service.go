package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "careadmin/internal/delivery/context"
	"careadmin/internal/domain/entity"
	domainerrors "careadmin/internal/domain/errors"
	"careadmin/internal/domain/repository"
	"careadmin/internal/domain/service"
	"careadmin/internal/usecase"
	"careadmin/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaulter is implemented by records with server-side defaults.
type defaulter interface {
	FillDefaults(now time.Time)
}

// ownedService implements usecase.OwnedUsecase once for every owned record
// type. repo selects the table from the transaction's factory.
type ownedService[E any, PE entity.OwnedRecord[E], P entity.OwnedPatch[E]] struct {
	txManager  repository.TransactionManager
	audit      *auditRecorder
	logger     *slog.Logger
	entityType string
	repo       func(repository.RepositoryFactory) repository.OwnedRepository[E]
	now        func() time.Time
}

// OwnedServiceParams holds dependencies shared by the owned record services, injected by Fx.
type OwnedServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

func newOwnedService[E any, PE entity.OwnedRecord[E], P entity.OwnedPatch[E]](
	params OwnedServiceParams,
	entityType string,
	repo func(repository.RepositoryFactory) repository.OwnedRepository[E],
) *ownedService[E, PE, P] {
	return &ownedService[E, PE, P]{
		txManager:  params.TxManager,
		audit:      newAuditRecorder(params.Publisher, params.Logger),
		logger:     params.Logger,
		entityType: entityType,
		repo:       repo,
		now:        time.Now,
	}
}

// NewAllergyService is the constructor for the allergy service.
func NewAllergyService(params OwnedServiceParams) usecase.AllergyUsecase {
	return newOwnedService[entity.Allergy, *entity.Allergy, entity.AllergyPatch](params, "allergies",
		repository.RepositoryFactory.AllergyRepo)
}

// NewMedicationService is the constructor for the medication service.
func NewMedicationService(params OwnedServiceParams) usecase.MedicationUsecase {
	return newOwnedService[entity.Medication, *entity.Medication, entity.MedicationPatch](params, "medications",
		repository.RepositoryFactory.MedicationRepo)
}

// NewMedicalConditionService is the constructor for the medical condition service.
func NewMedicalConditionService(params OwnedServiceParams) usecase.MedicalConditionUsecase {
	return newOwnedService[entity.MedicalCondition, *entity.MedicalCondition, entity.MedicalConditionPatch](params, "medical_conditions",
		repository.RepositoryFactory.MedicalConditionRepo)
}

// NewVitalSignService is the constructor for the vital sign service.
func NewVitalSignService(params OwnedServiceParams) usecase.VitalSignUsecase {
	return newOwnedService[entity.VitalSign, *entity.VitalSign, entity.VitalSignPatch](params, "vital_signs",
		repository.RepositoryFactory.VitalSignRepo)
}

// NewActivityService is the constructor for the activity service.
func NewActivityService(params OwnedServiceParams) usecase.ActivityUsecase {
	return newOwnedService[entity.Activity, *entity.Activity, entity.ActivityPatch](params, "activities",
		repository.RepositoryFactory.ActivityRepo)
}

// NewActivityParticipationService is the constructor for the activity participation service.
func NewActivityParticipationService(params OwnedServiceParams) usecase.ActivityParticipationUsecase {
	return newOwnedService[entity.ActivityParticipation, *entity.ActivityParticipation, entity.ActivityParticipationPatch](params, "activity_participations",
		repository.RepositoryFactory.ActivityParticipationRepo)
}

// NewCaregiverAssignmentService is the constructor for the caregiver assignment service.
func NewCaregiverAssignmentService(params OwnedServiceParams) usecase.CaregiverAssignmentUsecase {
	return newOwnedService[entity.CaregiverAssignment, *entity.CaregiverAssignment, entity.CaregiverAssignmentPatch](params, "caregiver_assignments",
		repository.RepositoryFactory.CaregiverAssignmentRepo)
}

// NewShiftObservationService is the constructor for the shift observation service.
func NewShiftObservationService(params OwnedServiceParams) usecase.ShiftObservationUsecase {
	return newOwnedService[entity.ShiftObservation, *entity.ShiftObservation, entity.ShiftObservationPatch](params, "shift_observations",
		repository.RepositoryFactory.ShiftObservationRepo)
}

// NewReminderService is the constructor for the reminder service.
func NewReminderService(params OwnedServiceParams) usecase.ReminderUsecase {
	return newOwnedService[entity.Reminder, *entity.Reminder, entity.ReminderPatch](params, "reminders",
		repository.RepositoryFactory.ReminderRepo)
}

// NewAlertService is the constructor for the alert service.
func NewAlertService(params OwnedServiceParams) usecase.AlertUsecase {
	return newOwnedService[entity.Alert, *entity.Alert, entity.AlertPatch](params, "alerts",
		repository.RepositoryFactory.AlertRepo)
}

// NewDeviceService is the constructor for the device service.
func NewDeviceService(params OwnedServiceParams) usecase.DeviceUsecase {
	return newOwnedService[entity.Device, *entity.Device, entity.DevicePatch](params, "devices",
		repository.RepositoryFactory.DeviceRepo)
}

func (srv *ownedService[E, PE, P]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new ACTIVE record. The owner is not looked up first; the
// foreign key rejects unknown owners.
func (srv *ownedService[E, PE, P]) Create(ctx context.Context, ownerID uuid.UUID, record *E) (*E, error) {
	created := *record
	base := PE(&created).Base()
	*base = entity.OwnedBase{
		ID:            uuid.New(),
		CaredPersonID: ownerID,
		IsActive:      true,
	}

	if d, ok := any(&created).(defaulter); ok {
		d.FillDefaults(srv.now())
	}
	if err := validation.Struct(&created); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return translateRepoError(
			srv.repo(repoFactory).Create(ctx, &created),
			domainerrors.ErrRecordNotFound,
			"failed to create "+srv.entityType,
		)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Owned record created",
		slog.String("entity_type", srv.entityType),
		slog.String("id", base.ID.String()),
		slog.String("cared_person_id", ownerID.String()),
	)
	srv.audit.record(ctx, srv.entityType, base.ID.String(), entity.AuditCreate, "cared_person_id="+ownerID.String())

	return &created, nil
}

func (srv *ownedService[E, PE, P]) GetByID(ctx context.Context, id uuid.UUID) (*E, error) {
	var record *E

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.repo(repoFactory).FindActiveByID(ctx, id)
		if err != nil {
			return translateRepoError(err, domainerrors.ErrRecordNotFound, srv.entityType+" not found")
		}
		record = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (srv *ownedService[E, PE, P]) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*E, error) {
	var records []*E

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.repo(repoFactory).FindActiveByOwner(ctx, ownerID)
		if err != nil {
			return errors.Wrapf(err, "failed to list %s", srv.entityType)
		}
		records = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Update merges the patch into the active record and validates the result.
func (srv *ownedService[E, PE, P]) Update(ctx context.Context, id uuid.UUID, patch P) (*E, error) {
	var record *E

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := srv.repo(repoFactory)

		found, err := repo.FindActiveByID(ctx, id)
		if err != nil {
			return translateRepoError(err, domainerrors.ErrRecordNotFound, srv.entityType+" not found")
		}

		patch.ApplyTo(found)
		if err := validation.Struct(found); err != nil {
			return err
		}

		if err := repo.Update(ctx, found); err != nil {
			return translateRepoError(err, domainerrors.ErrRecordNotFound, "failed to update "+srv.entityType)
		}
		record = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.audit.record(ctx, srv.entityType, id.String(), entity.AuditUpdate, "")

	return record, nil
}

// Delete flips an active record to inactive. The transition is one-way, so
// a second call reports false.
func (srv *ownedService[E, PE, P]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var deactivated bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ok, err := srv.repo(repoFactory).Deactivate(ctx, id, srv.now())
		if err != nil {
			return errors.Wrapf(err, "failed to delete %s", srv.entityType)
		}
		deactivated = ok

		return nil
	})
	if err != nil {
		return false, err
	}

	if deactivated {
		srv.audit.record(ctx, srv.entityType, id.String(), entity.AuditDeactivate, "")
	}

	return deactivated, nil
}
