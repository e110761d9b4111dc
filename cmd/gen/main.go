package main

import (
	"careadmin/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Catalog tables share one model bound per kind at runtime and are not
// generated.
func main() {
	models := []any{
		model.CaredPersonModel{},
		model.AllergyModel{},
		model.MedicationModel{},
		model.MedicalConditionModel{},
		model.VitalSignModel{},
		model.ActivityModel{},
		model.ActivityParticipationModel{},
		model.CaregiverAssignmentModel{},
		model.ShiftObservationModel{},
		model.ReminderModel{},
		model.AlertModel{},
		model.DeviceModel{},
		model.CarePackageModel{},
		model.AuditLogModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
