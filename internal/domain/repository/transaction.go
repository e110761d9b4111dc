package repository

import (
	"context"

	"careadmin/internal/domain/entity"
)

// TransactionManager runs use case work inside one persistence transaction.
type TransactionManager interface {
	// Execute runs fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	CatalogRepo() CatalogRepository
	CaredPersonRepo() CaredPersonRepository
	PackageRepo() PackageRepository
	AuditLogRepo() AuditLogRepository

	AllergyRepo() OwnedRepository[entity.Allergy]
	MedicationRepo() OwnedRepository[entity.Medication]
	MedicalConditionRepo() OwnedRepository[entity.MedicalCondition]
	VitalSignRepo() OwnedRepository[entity.VitalSign]
	ActivityRepo() OwnedRepository[entity.Activity]
	ActivityParticipationRepo() OwnedRepository[entity.ActivityParticipation]
	CaregiverAssignmentRepo() OwnedRepository[entity.CaregiverAssignment]
	ShiftObservationRepo() OwnedRepository[entity.ShiftObservation]
	ReminderRepo() OwnedRepository[entity.Reminder]
	AlertRepo() OwnedRepository[entity.Alert]
	DeviceRepo() OwnedRepository[entity.Device]
}
