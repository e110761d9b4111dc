package memory

import (
	"context"
	"sync"

	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/repository"
)

// TransactionManager serializes transactions over a single store. A failed
// or panicking transaction restores the snapshot taken when it began.
type TransactionManager struct {
	mu    sync.Mutex
	store *store
}

// NewTransactionManager returns a manager over an empty store.
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{store: newStore()}
}

func (tm *TransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	snapshot := tm.store.snapshot()
	committed := false
	defer func() {
		if !committed {
			tm.store = snapshot
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		return err
	}
	committed = true

	return nil
}

type repositoryFactory struct {
	store *store
}

func (f *repositoryFactory) CatalogRepo() repository.CatalogRepository {
	return &catalogRepository{store: f.store}
}

func (f *repositoryFactory) CaredPersonRepo() repository.CaredPersonRepository {
	return &caredPersonRepository{store: f.store}
}

func (f *repositoryFactory) PackageRepo() repository.PackageRepository {
	return &packageRepository{store: f.store}
}

func (f *repositoryFactory) AuditLogRepo() repository.AuditLogRepository {
	return &auditLogRepository{store: f.store}
}

func (f *repositoryFactory) AllergyRepo() repository.OwnedRepository[entity.Allergy] {
	return &ownedRepository[entity.Allergy, *entity.Allergy]{store: f.store, table: func(s *store) *ownedTable[entity.Allergy, *entity.Allergy] { return s.allergies }}
}

func (f *repositoryFactory) MedicationRepo() repository.OwnedRepository[entity.Medication] {
	return &ownedRepository[entity.Medication, *entity.Medication]{store: f.store, table: func(s *store) *ownedTable[entity.Medication, *entity.Medication] { return s.medications }}
}

func (f *repositoryFactory) MedicalConditionRepo() repository.OwnedRepository[entity.MedicalCondition] {
	return &ownedRepository[entity.MedicalCondition, *entity.MedicalCondition]{store: f.store, table: func(s *store) *ownedTable[entity.MedicalCondition, *entity.MedicalCondition] { return s.conditions }}
}

func (f *repositoryFactory) VitalSignRepo() repository.OwnedRepository[entity.VitalSign] {
	return &ownedRepository[entity.VitalSign, *entity.VitalSign]{store: f.store, table: func(s *store) *ownedTable[entity.VitalSign, *entity.VitalSign] { return s.vitalSigns }}
}

func (f *repositoryFactory) ActivityRepo() repository.OwnedRepository[entity.Activity] {
	return &ownedRepository[entity.Activity, *entity.Activity]{store: f.store, table: func(s *store) *ownedTable[entity.Activity, *entity.Activity] { return s.activities }}
}

func (f *repositoryFactory) ActivityParticipationRepo() repository.OwnedRepository[entity.ActivityParticipation] {
	return &ownedRepository[entity.ActivityParticipation, *entity.ActivityParticipation]{store: f.store, table: func(s *store) *ownedTable[entity.ActivityParticipation, *entity.ActivityParticipation] {
		return s.participations
	}}
}

func (f *repositoryFactory) CaregiverAssignmentRepo() repository.OwnedRepository[entity.CaregiverAssignment] {
	return &ownedRepository[entity.CaregiverAssignment, *entity.CaregiverAssignment]{store: f.store, table: func(s *store) *ownedTable[entity.CaregiverAssignment, *entity.CaregiverAssignment] {
		return s.caregiverAssignments
	}}
}

func (f *repositoryFactory) ShiftObservationRepo() repository.OwnedRepository[entity.ShiftObservation] {
	return &ownedRepository[entity.ShiftObservation, *entity.ShiftObservation]{store: f.store, table: func(s *store) *ownedTable[entity.ShiftObservation, *entity.ShiftObservation] {
		return s.shiftObservations
	}}
}

func (f *repositoryFactory) ReminderRepo() repository.OwnedRepository[entity.Reminder] {
	return &ownedRepository[entity.Reminder, *entity.Reminder]{store: f.store, table: func(s *store) *ownedTable[entity.Reminder, *entity.Reminder] { return s.reminders }}
}

func (f *repositoryFactory) AlertRepo() repository.OwnedRepository[entity.Alert] {
	return &ownedRepository[entity.Alert, *entity.Alert]{store: f.store, table: func(s *store) *ownedTable[entity.Alert, *entity.Alert] { return s.alerts }}
}

func (f *repositoryFactory) DeviceRepo() repository.OwnedRepository[entity.Device] {
	return &ownedRepository[entity.Device, *entity.Device]{store: f.store, table: func(s *store) *ownedTable[entity.Device, *entity.Device] { return s.devices }}
}
