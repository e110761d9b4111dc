package model

import (
	"time"

	"github.com/google/uuid"
)

// OwnedColumns are embedded by every table scoped to a cared person.
// The cared_person_id foreign key cascades on delete.
type OwnedColumns struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CaredPersonID uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AllergyModel struct {
	OwnedColumns
	AllergenName        string     `gorm:"type:varchar(255);not null"`
	AllergyType         *string    `gorm:"type:varchar(100)"`
	Severity            *string    `gorm:"type:varchar(50)"`
	ReactionDescription *string    `gorm:"type:text"`
	DiagnosisDate       *time.Time `gorm:"type:date"`
}

func (AllergyModel) TableName() string {
	return "allergies"
}

type MedicationModel struct {
	OwnedColumns
	MedicationName string     `gorm:"type:varchar(255);not null"`
	Dosage         *string    `gorm:"type:varchar(100)"`
	Frequency      *string    `gorm:"type:varchar(100)"`
	StartDate      *time.Time `gorm:"type:date"`
	EndDate        *time.Time `gorm:"type:date"`
	PrescribedBy   *string    `gorm:"type:varchar(255)"`
	Instructions   *string    `gorm:"type:text"`
}

func (MedicationModel) TableName() string {
	return "medications"
}

type MedicalConditionModel struct {
	OwnedColumns
	ConditionName string     `gorm:"type:varchar(255);not null"`
	SeverityLevel *string    `gorm:"type:varchar(50)"`
	DiagnosisDate *time.Time `gorm:"type:date"`
	Description   *string    `gorm:"type:text"`
	TreatmentPlan *string    `gorm:"type:text"`
	DoctorName    *string    `gorm:"type:varchar(255)"`
}

func (MedicalConditionModel) TableName() string {
	return "medical_conditions"
}

type VitalSignModel struct {
	OwnedColumns
	BloodPressureSystolic  *int
	BloodPressureDiastolic *int
	HeartRate              *int
	Temperature            *float64
	OxygenSaturation       *float64
	RespiratoryRate        *int
	Weight                 *float64
	Height                 *float64
	BMI                    *float64  `gorm:"column:bmi"`
	Notes                  *string   `gorm:"type:text"`
	MeasuredAt             time.Time `gorm:"not null;index"`
}

func (VitalSignModel) TableName() string {
	return "vital_signs"
}

// ActivityModel references activity_types and difficulty_levels; both
// constraints are added by the migrator.
type ActivityModel struct {
	OwnedColumns
	ActivityTypeID    int64   `gorm:"not null;index"`
	DifficultyLevelID *int64  `gorm:"index"`
	ActivityName      string  `gorm:"type:varchar(255);not null"`
	Description       *string `gorm:"type:text"`
	DurationMinutes   *int
}

func (ActivityModel) TableName() string {
	return "activities"
}

type ActivityParticipationModel struct {
	OwnedColumns
	ActivityID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ParticipationDate time.Time `gorm:"type:date;not null"`
	DurationMinutes   *int
	PerformanceLevel  *string `gorm:"type:varchar(50)"`
	Notes             *string `gorm:"type:text"`
}

func (ActivityParticipationModel) TableName() string {
	return "activity_participations"
}
