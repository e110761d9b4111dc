package postgres

import (
	"careadmin/internal/domain/entity"
	"careadmin/internal/domain/repository"
	"careadmin/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// NewAllergyRepository is the constructor for the allergies repository.
func NewAllergyRepository(db *gorm.DB) repository.OwnedRepository[entity.Allergy] {
	return &ownedRepository[entity.Allergy, model.AllergyModel]{
		db:    db,
		label: "allergy",
		toModel: func(a *entity.Allergy) *model.AllergyModel {
			return &model.AllergyModel{
				OwnedColumns:        fromOwnedBase(&a.OwnedBase),
				AllergenName:        a.AllergenName,
				AllergyType:         a.AllergyType,
				Severity:            a.Severity,
				ReactionDescription: a.ReactionDescription,
				DiagnosisDate:       a.DiagnosisDate,
			}
		},
		toDomain: func(m *model.AllergyModel) *entity.Allergy {
			return &entity.Allergy{
				OwnedBase:           toOwnedBase(&m.OwnedColumns),
				AllergenName:        m.AllergenName,
				AllergyType:         m.AllergyType,
				Severity:            m.Severity,
				ReactionDescription: m.ReactionDescription,
				DiagnosisDate:       m.DiagnosisDate,
			}
		},
	}
}

// NewMedicationRepository is the constructor for the medications repository.
func NewMedicationRepository(db *gorm.DB) repository.OwnedRepository[entity.Medication] {
	return &ownedRepository[entity.Medication, model.MedicationModel]{
		db:    db,
		label: "medication",
		toModel: func(m *entity.Medication) *model.MedicationModel {
			return &model.MedicationModel{
				OwnedColumns:   fromOwnedBase(&m.OwnedBase),
				MedicationName: m.MedicationName,
				Dosage:         m.Dosage,
				Frequency:      m.Frequency,
				StartDate:      m.StartDate,
				EndDate:        m.EndDate,
				PrescribedBy:   m.PrescribedBy,
				Instructions:   m.Instructions,
			}
		},
		toDomain: func(m *model.MedicationModel) *entity.Medication {
			return &entity.Medication{
				OwnedBase:      toOwnedBase(&m.OwnedColumns),
				MedicationName: m.MedicationName,
				Dosage:         m.Dosage,
				Frequency:      m.Frequency,
				StartDate:      m.StartDate,
				EndDate:        m.EndDate,
				PrescribedBy:   m.PrescribedBy,
				Instructions:   m.Instructions,
			}
		},
	}
}

// NewMedicalConditionRepository is the constructor for the medical conditions repository.
func NewMedicalConditionRepository(db *gorm.DB) repository.OwnedRepository[entity.MedicalCondition] {
	return &ownedRepository[entity.MedicalCondition, model.MedicalConditionModel]{
		db:    db,
		label: "medical condition",
		toModel: func(c *entity.MedicalCondition) *model.MedicalConditionModel {
			return &model.MedicalConditionModel{
				OwnedColumns:  fromOwnedBase(&c.OwnedBase),
				ConditionName: c.ConditionName,
				SeverityLevel: c.SeverityLevel,
				DiagnosisDate: c.DiagnosisDate,
				Description:   c.Description,
				TreatmentPlan: c.TreatmentPlan,
				DoctorName:    c.DoctorName,
			}
		},
		toDomain: func(m *model.MedicalConditionModel) *entity.MedicalCondition {
			return &entity.MedicalCondition{
				OwnedBase:     toOwnedBase(&m.OwnedColumns),
				ConditionName: m.ConditionName,
				SeverityLevel: m.SeverityLevel,
				DiagnosisDate: m.DiagnosisDate,
				Description:   m.Description,
				TreatmentPlan: m.TreatmentPlan,
				DoctorName:    m.DoctorName,
			}
		},
	}
}

// NewVitalSignRepository is the constructor for the vital signs repository.
func NewVitalSignRepository(db *gorm.DB) repository.OwnedRepository[entity.VitalSign] {
	return &ownedRepository[entity.VitalSign, model.VitalSignModel]{
		db:    db,
		label: "vital sign",
		toModel: func(v *entity.VitalSign) *model.VitalSignModel {
			return &model.VitalSignModel{
				OwnedColumns:           fromOwnedBase(&v.OwnedBase),
				BloodPressureSystolic:  v.BloodPressureSystolic,
				BloodPressureDiastolic: v.BloodPressureDiastolic,
				HeartRate:              v.HeartRate,
				Temperature:            v.Temperature,
				OxygenSaturation:       v.OxygenSaturation,
				RespiratoryRate:        v.RespiratoryRate,
				Weight:                 v.Weight,
				Height:                 v.Height,
				BMI:                    v.BMI,
				Notes:                  v.Notes,
				MeasuredAt:             v.MeasuredAt,
			}
		},
		toDomain: func(m *model.VitalSignModel) *entity.VitalSign {
			return &entity.VitalSign{
				OwnedBase:              toOwnedBase(&m.OwnedColumns),
				BloodPressureSystolic:  m.BloodPressureSystolic,
				BloodPressureDiastolic: m.BloodPressureDiastolic,
				HeartRate:              m.HeartRate,
				Temperature:            m.Temperature,
				OxygenSaturation:       m.OxygenSaturation,
				RespiratoryRate:        m.RespiratoryRate,
				Weight:                 m.Weight,
				Height:                 m.Height,
				BMI:                    m.BMI,
				Notes:                  m.Notes,
				MeasuredAt:             m.MeasuredAt,
			}
		},
	}
}

// NewActivityRepository is the constructor for the activities repository.
func NewActivityRepository(db *gorm.DB) repository.OwnedRepository[entity.Activity] {
	return &ownedRepository[entity.Activity, model.ActivityModel]{
		db:    db,
		label: "activity",
		toModel: func(a *entity.Activity) *model.ActivityModel {
			return &model.ActivityModel{
				OwnedColumns:      fromOwnedBase(&a.OwnedBase),
				ActivityTypeID:    a.ActivityTypeID,
				DifficultyLevelID: a.DifficultyLevelID,
				ActivityName:      a.ActivityName,
				Description:       a.Description,
				DurationMinutes:   a.DurationMinutes,
			}
		},
		toDomain: func(m *model.ActivityModel) *entity.Activity {
			return &entity.Activity{
				OwnedBase:         toOwnedBase(&m.OwnedColumns),
				ActivityTypeID:    m.ActivityTypeID,
				DifficultyLevelID: m.DifficultyLevelID,
				ActivityName:      m.ActivityName,
				Description:       m.Description,
				DurationMinutes:   m.DurationMinutes,
			}
		},
	}
}

// NewActivityParticipationRepository is the constructor for the activity participations repository.
func NewActivityParticipationRepository(db *gorm.DB) repository.OwnedRepository[entity.ActivityParticipation] {
	return &ownedRepository[entity.ActivityParticipation, model.ActivityParticipationModel]{
		db:    db,
		label: "activity participation",
		toModel: func(p *entity.ActivityParticipation) *model.ActivityParticipationModel {
			return &model.ActivityParticipationModel{
				OwnedColumns:      fromOwnedBase(&p.OwnedBase),
				ActivityID:        p.ActivityID,
				ParticipationDate: p.ParticipationDate,
				DurationMinutes:   p.DurationMinutes,
				PerformanceLevel:  p.PerformanceLevel,
				Notes:             p.Notes,
			}
		},
		toDomain: func(m *model.ActivityParticipationModel) *entity.ActivityParticipation {
			return &entity.ActivityParticipation{
				OwnedBase:         toOwnedBase(&m.OwnedColumns),
				ActivityID:        m.ActivityID,
				ParticipationDate: m.ParticipationDate,
				DurationMinutes:   m.DurationMinutes,
				PerformanceLevel:  m.PerformanceLevel,
				Notes:             m.Notes,
			}
		},
	}
}

func fromOwnedBase(base *entity.OwnedBase) model.OwnedColumns {
	return model.OwnedColumns{
		ID:            base.ID,
		CaredPersonID: base.CaredPersonID,
		IsActive:      base.IsActive,
		CreatedAt:     base.CreatedAt,
		UpdatedAt:     base.UpdatedAt,
	}
}

func toOwnedBase(columns *model.OwnedColumns) entity.OwnedBase {
	return entity.OwnedBase{
		ID:            columns.ID,
		CaredPersonID: columns.CaredPersonID,
		IsActive:      columns.IsActive,
		CreatedAt:     columns.CreatedAt,
		UpdatedAt:     columns.UpdatedAt,
	}
}
