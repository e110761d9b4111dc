package usecase

import (
	"context"

	"careadmin/internal/domain/entity"

	"github.com/google/uuid"
)

// OwnedUsecase is the CRUD surface shared by every record that belongs to a
// cared person. Reads never return inactive records.
type OwnedUsecase[E any, P entity.OwnedPatch[E]] interface {
	// Create stores record for ownerID. An unknown owner or reference fails
	// with ErrInvalidReference.
	Create(ctx context.Context, ownerID uuid.UUID, record *E) (*E, error)

	GetByID(ctx context.Context, id uuid.UUID) (*E, error)

	// ListByOwner returns active records ordered by creation.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*E, error)

	// Update applies the supplied fields only. An empty patch refreshes
	// updated_at and nothing else.
	Update(ctx context.Context, id uuid.UUID, patch P) (*E, error)

	// Delete deactivates the record. It reports false when the record was
	// already inactive or does not exist.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type (
	AllergyUsecase               = OwnedUsecase[entity.Allergy, entity.AllergyPatch]
	MedicationUsecase            = OwnedUsecase[entity.Medication, entity.MedicationPatch]
	MedicalConditionUsecase      = OwnedUsecase[entity.MedicalCondition, entity.MedicalConditionPatch]
	VitalSignUsecase             = OwnedUsecase[entity.VitalSign, entity.VitalSignPatch]
	ActivityUsecase              = OwnedUsecase[entity.Activity, entity.ActivityPatch]
	ActivityParticipationUsecase = OwnedUsecase[entity.ActivityParticipation, entity.ActivityParticipationPatch]
	CaregiverAssignmentUsecase   = OwnedUsecase[entity.CaregiverAssignment, entity.CaregiverAssignmentPatch]
	ShiftObservationUsecase      = OwnedUsecase[entity.ShiftObservation, entity.ShiftObservationPatch]
	ReminderUsecase              = OwnedUsecase[entity.Reminder, entity.ReminderPatch]
	AlertUsecase                 = OwnedUsecase[entity.Alert, entity.AlertPatch]
	DeviceUsecase                = OwnedUsecase[entity.Device, entity.DevicePatch]
)
