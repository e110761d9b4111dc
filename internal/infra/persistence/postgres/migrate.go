package postgres

import (
	"context"
	"fmt"
	"strings"

	"careadmin/internal/domain/entity"
	"careadmin/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type foreignKey struct {
	table    string
	column   string
	refTable string
	onDelete string
}

func (fk foreignKey) name() string {
	return "fk_" + fk.table + "_" + fk.column
}

// foreignKeys are declared here rather than as GORM associations because
// the catalog tables share one model.
//
//nolint:gochecknoglobals
var foreignKeys = []foreignKey{
	{table: "cared_persons", column: "care_type_id", refTable: entity.CatalogCareTypes.String(), onDelete: "RESTRICT"},
	{table: "allergies", column: "cared_person_id", refTable: "cared_persons", onDelete: "CASCADE"},
	{table: "medications", column: "cared_person_id", refTable: "cared_persons", onDelete: "CASCADE"},
	{table: "medical_conditions", column: "cared_person_id", refTable: "cared_persons", onDelete: "CASCADE"},
	{table: "vital_signs", column: "cared_person_id", refTable: "cared_persons", onDelete: "CASCADE"},
	{table: "activities", column: "cared_person_id", refTable: "cared_persons", onDelete: "CASCADE"},
	{table: "activities", column: "activity_type_id", refTable: entity.CatalogActivityTypes.String(), onDelete: "RESTRICT"},
	{table: "activities", column: "difficulty_level_id", refTable: entity.CatalogDifficultyLevels.String(), onDelete: "RESTRICT"},
	{table: "activity_participations", column: "cared_person_id", refTable: "cared_persons", onDelete: "CASCADE"},
	{table: "activity_participations", column: "activity_id", refTable: "activities", onDelete: "CASCADE"},
	{table: "caregiver_assignments", column: "cared_person_id", refTable: "cared_persons", onDelete: "CASCADE"},
	{table: "caregiver_assignments", column: "caregiver_assignment_type_id", refTable: entity.CatalogCaregiverAssignmentType.String(), onDelete: "RESTRICT"},
	{table: "shift_observations", column: "cared_person_id", refTable: "cared_persons", onDelete: "CASCADE"},
	{table: "shift_observations", column: "shift_observation_type_id", refTable: entity.CatalogShiftObservationTypes.String(), onDelete: "RESTRICT"},
	{table: "reminders", column: "cared_person_id", refTable: "cared_persons", onDelete: "CASCADE"},
	{table: "reminders", column: "reminder_type_id", refTable: entity.CatalogReminderTypes.String(), onDelete: "RESTRICT"},
	{table: "alerts", column: "cared_person_id", refTable: "cared_persons", onDelete: "CASCADE"},
	{table: "alerts", column: "alert_type_id", refTable: entity.CatalogAlertTypes.String(), onDelete: "RESTRICT"},
	{table: "devices", column: "cared_person_id", refTable: "cared_persons", onDelete: "CASCADE"},
	{table: "devices", column: "device_type_id", refTable: entity.CatalogDeviceTypes.String(), onDelete: "RESTRICT"},
}

// Migrate creates or updates every table, unique index and foreign key.
// It is safe to run repeatedly.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	for _, spec := range entity.CatalogSpecs() {
		if err := migrateCatalog(db, spec); err != nil {
			return err
		}
	}

	if err := db.AutoMigrate(
		&model.CaredPersonModel{},
		&model.AllergyModel{},
		&model.MedicationModel{},
		&model.MedicalConditionModel{},
		&model.VitalSignModel{},
		&model.ActivityModel{},
		&model.ActivityParticipationModel{},
		&model.CaregiverAssignmentModel{},
		&model.ShiftObservationModel{},
		&model.ReminderModel{},
		&model.AlertModel{},
		&model.DeviceModel{},
		&model.CarePackageModel{},
		&model.AuditLogModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate tables")
	}

	for _, fk := range foreignKeys {
		if err := ensureForeignKey(db, fk); err != nil {
			return err
		}
	}

	return nil
}

func migrateCatalog(db *gorm.DB, spec entity.CatalogSpec) error {
	table := spec.Kind.String()

	if err := db.Table(table).AutoMigrate(&model.CatalogEntryModel{}); err != nil {
		return errors.Wrapf(err, "failed to migrate %s", table)
	}

	columns := spec.UniqueColumns()
	index := fmt.Sprintf("uq_%s_%s", table, strings.Join(columns, "_"))
	stmt := fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (%s)", index, table, strings.Join(columns, ", "))
	if err := db.Exec(stmt).Error; err != nil {
		return errors.Wrapf(err, "failed to create unique index on %s", table)
	}

	return nil
}

func ensureForeignKey(db *gorm.DB, fk foreignKey) error {
	if db.Migrator().HasConstraint(fk.table, fk.name()) {
		return nil
	}

	stmt := fmt.Sprintf(
		"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (id) ON DELETE %s",
		fk.table, fk.name(), fk.column, fk.refTable, fk.onDelete,
	)
	if err := db.Exec(stmt).Error; err != nil {
		return errors.Wrapf(err, "failed to add foreign key %s", fk.name())
	}

	return nil
}
