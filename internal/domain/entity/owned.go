package entity

import (
	"time"

	"github.com/google/uuid"
)

// OwnedBase holds the columns shared by every record that belongs to a cared
// person. Records start ACTIVE and can only move to INACTIVE.
type OwnedBase struct {
	ID            uuid.UUID `json:"id"`
	CaredPersonID uuid.UUID `json:"cared_person_id"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Base exposes the shared columns; it satisfies OwnedRecord through embedding.
func (b *OwnedBase) Base() *OwnedBase {
	return b
}

// OwnedRecord constrains a pointer to an owned record type.
type OwnedRecord[E any] interface {
	*E
	Base() *OwnedBase
}

// OwnedPatch applies a partial update to an owned record.
type OwnedPatch[E any] interface {
	ApplyTo(record *E)
}

// Date fields are stored as calendar dates; the time part is ignored.

// Allergy records a known allergen of a cared person.
type Allergy struct {
	OwnedBase
	AllergenName        string     `json:"allergen_name" validate:"required,max=255"`
	AllergyType         *string    `json:"allergy_type,omitempty" validate:"omitempty,max=100"`
	Severity            *string    `json:"severity,omitempty" validate:"omitempty,max=50"`
	ReactionDescription *string    `json:"reaction_description,omitempty"`
	DiagnosisDate       *time.Time `json:"diagnosis_date,omitempty"`
}

type AllergyPatch struct {
	AllergenName        Optional[string]     `json:"allergen_name"`
	AllergyType         Optional[*string]    `json:"allergy_type"`
	Severity            Optional[*string]    `json:"severity"`
	ReactionDescription Optional[*string]    `json:"reaction_description"`
	DiagnosisDate       Optional[*time.Time] `json:"diagnosis_date"`
}

func (p AllergyPatch) ApplyTo(a *Allergy) {
	p.AllergenName.ApplyTo(&a.AllergenName)
	p.AllergyType.ApplyTo(&a.AllergyType)
	p.Severity.ApplyTo(&a.Severity)
	p.ReactionDescription.ApplyTo(&a.ReactionDescription)
	p.DiagnosisDate.ApplyTo(&a.DiagnosisDate)
}

// Medication is a prescription or regular medicine.
type Medication struct {
	OwnedBase
	MedicationName string     `json:"medication_name" validate:"required,max=255"`
	Dosage         *string    `json:"dosage,omitempty" validate:"omitempty,max=100"`
	Frequency      *string    `json:"frequency,omitempty" validate:"omitempty,max=100"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	PrescribedBy   *string    `json:"prescribed_by,omitempty" validate:"omitempty,max=255"`
	Instructions   *string    `json:"instructions,omitempty"`
}

type MedicationPatch struct {
	MedicationName Optional[string]     `json:"medication_name"`
	Dosage         Optional[*string]    `json:"dosage"`
	Frequency      Optional[*string]    `json:"frequency"`
	StartDate      Optional[*time.Time] `json:"start_date"`
	EndDate        Optional[*time.Time] `json:"end_date"`
	PrescribedBy   Optional[*string]    `json:"prescribed_by"`
	Instructions   Optional[*string]    `json:"instructions"`
}

func (p MedicationPatch) ApplyTo(m *Medication) {
	p.MedicationName.ApplyTo(&m.MedicationName)
	p.Dosage.ApplyTo(&m.Dosage)
	p.Frequency.ApplyTo(&m.Frequency)
	p.StartDate.ApplyTo(&m.StartDate)
	p.EndDate.ApplyTo(&m.EndDate)
	p.PrescribedBy.ApplyTo(&m.PrescribedBy)
	p.Instructions.ApplyTo(&m.Instructions)
}

// MedicalCondition is a diagnosed condition.
type MedicalCondition struct {
	OwnedBase
	ConditionName string     `json:"condition_name" validate:"required,max=255"`
	SeverityLevel *string    `json:"severity_level,omitempty" validate:"omitempty,max=50"`
	DiagnosisDate *time.Time `json:"diagnosis_date,omitempty"`
	Description   *string    `json:"description,omitempty"`
	TreatmentPlan *string    `json:"treatment_plan,omitempty"`
	DoctorName    *string    `json:"doctor_name,omitempty" validate:"omitempty,max=255"`
}

type MedicalConditionPatch struct {
	ConditionName Optional[string]     `json:"condition_name"`
	SeverityLevel Optional[*string]    `json:"severity_level"`
	DiagnosisDate Optional[*time.Time] `json:"diagnosis_date"`
	Description   Optional[*string]    `json:"description"`
	TreatmentPlan Optional[*string]    `json:"treatment_plan"`
	DoctorName    Optional[*string]    `json:"doctor_name"`
}

func (p MedicalConditionPatch) ApplyTo(c *MedicalCondition) {
	p.ConditionName.ApplyTo(&c.ConditionName)
	p.SeverityLevel.ApplyTo(&c.SeverityLevel)
	p.DiagnosisDate.ApplyTo(&c.DiagnosisDate)
	p.Description.ApplyTo(&c.Description)
	p.TreatmentPlan.ApplyTo(&c.TreatmentPlan)
	p.DoctorName.ApplyTo(&c.DoctorName)
}

// VitalSign is one measurement session.
type VitalSign struct {
	OwnedBase
	BloodPressureSystolic  *int      `json:"blood_pressure_systolic,omitempty" validate:"omitempty,gte=40,lte=300"`
	BloodPressureDiastolic *int      `json:"blood_pressure_diastolic,omitempty" validate:"omitempty,gte=20,lte=200"`
	HeartRate              *int      `json:"heart_rate,omitempty" validate:"omitempty,gte=20,lte=300"`
	Temperature            *float64  `json:"temperature,omitempty" validate:"omitempty,gte=25,lte=45"`
	OxygenSaturation       *float64  `json:"oxygen_saturation,omitempty" validate:"omitempty,gte=0,lte=100"`
	RespiratoryRate        *int      `json:"respiratory_rate,omitempty" validate:"omitempty,gte=0,lte=100"`
	Weight                 *float64  `json:"weight,omitempty" validate:"omitempty,gt=0"`
	Height                 *float64  `json:"height,omitempty" validate:"omitempty,gt=0"`
	BMI                    *float64  `json:"bmi,omitempty" validate:"omitempty,gt=0"`
	Notes                  *string   `json:"notes,omitempty"`
	MeasuredAt             time.Time `json:"measured_at" validate:"required"`
}

type VitalSignPatch struct {
	BloodPressureSystolic  Optional[*int]      `json:"blood_pressure_systolic"`
	BloodPressureDiastolic Optional[*int]      `json:"blood_pressure_diastolic"`
	HeartRate              Optional[*int]      `json:"heart_rate"`
	Temperature            Optional[*float64]  `json:"temperature"`
	OxygenSaturation       Optional[*float64]  `json:"oxygen_saturation"`
	RespiratoryRate        Optional[*int]      `json:"respiratory_rate"`
	Weight                 Optional[*float64]  `json:"weight"`
	Height                 Optional[*float64]  `json:"height"`
	BMI                    Optional[*float64]  `json:"bmi"`
	Notes                  Optional[*string]   `json:"notes"`
	MeasuredAt             Optional[time.Time] `json:"measured_at"`
}

func (p VitalSignPatch) ApplyTo(v *VitalSign) {
	p.BloodPressureSystolic.ApplyTo(&v.BloodPressureSystolic)
	p.BloodPressureDiastolic.ApplyTo(&v.BloodPressureDiastolic)
	p.HeartRate.ApplyTo(&v.HeartRate)
	p.Temperature.ApplyTo(&v.Temperature)
	p.OxygenSaturation.ApplyTo(&v.OxygenSaturation)
	p.RespiratoryRate.ApplyTo(&v.RespiratoryRate)
	p.Weight.ApplyTo(&v.Weight)
	p.Height.ApplyTo(&v.Height)
	p.BMI.ApplyTo(&v.BMI)
	p.Notes.ApplyTo(&v.Notes)
	p.MeasuredAt.ApplyTo(&v.MeasuredAt)
}

// Activity is a planned activity; it references activity_types and,
// optionally, difficulty_levels.
type Activity struct {
	OwnedBase
	ActivityTypeID    int64   `json:"activity_type_id" validate:"required,gt=0"`
	DifficultyLevelID *int64  `json:"difficulty_level_id,omitempty" validate:"omitempty,gt=0"`
	ActivityName      string  `json:"activity_name" validate:"required,max=255"`
	Description       *string `json:"description,omitempty"`
	DurationMinutes   *int    `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
}

type ActivityPatch struct {
	ActivityTypeID    Optional[int64]   `json:"activity_type_id"`
	DifficultyLevelID Optional[*int64]  `json:"difficulty_level_id"`
	ActivityName      Optional[string]  `json:"activity_name"`
	Description       Optional[*string] `json:"description"`
	DurationMinutes   Optional[*int]    `json:"duration_minutes"`
}

func (p ActivityPatch) ApplyTo(a *Activity) {
	p.ActivityTypeID.ApplyTo(&a.ActivityTypeID)
	p.DifficultyLevelID.ApplyTo(&a.DifficultyLevelID)
	p.ActivityName.ApplyTo(&a.ActivityName)
	p.Description.ApplyTo(&a.Description)
	p.DurationMinutes.ApplyTo(&a.DurationMinutes)
}

// ActivityParticipation records a cared person taking part in an activity.
type ActivityParticipation struct {
	OwnedBase
	ActivityID        uuid.UUID `json:"activity_id" validate:"required"`
	ParticipationDate time.Time `json:"participation_date" validate:"required"`
	DurationMinutes   *int      `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
	PerformanceLevel  *string   `json:"performance_level,omitempty" validate:"omitempty,max=50"`
	Notes             *string   `json:"notes,omitempty"`
}

type ActivityParticipationPatch struct {
	ActivityID        Optional[uuid.UUID] `json:"activity_id"`
	ParticipationDate Optional[time.Time] `json:"participation_date"`
	DurationMinutes   Optional[*int]      `json:"duration_minutes"`
	PerformanceLevel  Optional[*string]   `json:"performance_level"`
	Notes             Optional[*string]   `json:"notes"`
}

func (p ActivityParticipationPatch) ApplyTo(a *ActivityParticipation) {
	p.ActivityID.ApplyTo(&a.ActivityID)
	p.ParticipationDate.ApplyTo(&a.ParticipationDate)
	p.DurationMinutes.ApplyTo(&a.DurationMinutes)
	p.PerformanceLevel.ApplyTo(&a.PerformanceLevel)
	p.Notes.ApplyTo(&a.Notes)
}

// FillDefaults stamps MeasuredAt when the caller left it empty.
func (v *VitalSign) FillDefaults(now time.Time) {
	if v.MeasuredAt.IsZero() {
		v.MeasuredAt = now
	}
}
