// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) CatalogRepo() repository.CatalogRepository {
	return NewCatalogRepository(f.tx)
}

func (f *gormRepositoryFactory) CaredPersonRepo() repository.CaredPersonRepository {
	return NewCaredPersonRepository(f.tx)
}

func (f *gormRepositoryFactory) PackageRepo() repository.PackageRepository {
	return NewPackageRepository(f.tx)
}

func (f *gormRepositoryFactory) AuditLogRepo() repository.AuditLogRepository {
	return NewAuditLogRepository(f.tx)
}

func (f *gormRepositoryFactory) AllergyRepo() repository.OwnedRepository[entity.Allergy] {
	return NewAllergyRepository(f.tx)
}

func (f *gormRepositoryFactory) MedicationRepo() repository.OwnedRepository[entity.Medication] {
	return NewMedicationRepository(f.tx)
}

func (f *gormRepositoryFactory) MedicalConditionRepo() repository.OwnedRepository[entity.MedicalCondition] {
	return NewMedicalConditionRepository(f.tx)
}

func (f *gormRepositoryFactory) VitalSignRepo() repository.OwnedRepository[entity.VitalSign] {
	return NewVitalSignRepository(f.tx)
}

func (f *gormRepositoryFactory) ActivityRepo() repository.OwnedRepository[entity.Activity] {
	return NewActivityRepository(f.tx)
}

func (f *gormRepositoryFactory) ActivityParticipationRepo() repository.OwnedRepository[entity.ActivityParticipation] {
	return NewActivityParticipationRepository(f.tx)
}

func (f *gormRepositoryFactory) CaregiverAssignmentRepo() repository.OwnedRepository[entity.CaregiverAssignment] {
	return NewCaregiverAssignmentRepository(f.tx)
}

func (f *gormRepositoryFactory) ShiftObservationRepo() repository.OwnedRepository[entity.ShiftObservation] {
	return NewShiftObservationRepository(f.tx)
}

func (f *gormRepositoryFactory) ReminderRepo() repository.OwnedRepository[entity.Reminder] {
	return NewReminderRepository(f.tx)
}

func (f *gormRepositoryFactory) AlertRepo() repository.OwnedRepository[entity.Alert] {
	return NewAlertRepository(f.tx)
}

func (f *gormRepositoryFactory) DeviceRepo() repository.OwnedRepository[entity.Device] {
	return NewDeviceRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn within a single database transaction. The transaction is
// rolled back when fn returns an error or panics.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
