package entity

import (
	"time"

	"github.com/google/uuid"
)

// The records below each reference one catalog through a required type id.
// Caregiver ids are opaque; accounts live outside this service.

// CaregiverAssignment links a caregiver to a cared person for a period.
type CaregiverAssignment struct {
	OwnedBase
	CaregiverAssignmentTypeID int64      `json:"caregiver_assignment_type_id" validate:"required,gt=0"`
	CaregiverID               uuid.UUID  `json:"caregiver_id" validate:"required"`
	IsPrimary                 bool       `json:"is_primary"`
	StartDate                 time.Time  `json:"start_date" validate:"required"`
	EndDate                   *time.Time `json:"end_date,omitempty" validate:"omitempty,gtefield=StartDate"`
	Schedule                  *string    `json:"schedule,omitempty"`
	Notes                     *string    `json:"notes,omitempty"`
}

type CaregiverAssignmentPatch struct {
	CaregiverAssignmentTypeID Optional[int64]      `json:"caregiver_assignment_type_id"`
	CaregiverID               Optional[uuid.UUID]  `json:"caregiver_id"`
	IsPrimary                 Optional[bool]       `json:"is_primary"`
	StartDate                 Optional[time.Time]  `json:"start_date"`
	EndDate                   Optional[*time.Time] `json:"end_date"`
	Schedule                  Optional[*string]    `json:"schedule"`
	Notes                     Optional[*string]    `json:"notes"`
}

func (p CaregiverAssignmentPatch) ApplyTo(a *CaregiverAssignment) {
	p.CaregiverAssignmentTypeID.ApplyTo(&a.CaregiverAssignmentTypeID)
	p.CaregiverID.ApplyTo(&a.CaregiverID)
	p.IsPrimary.ApplyTo(&a.IsPrimary)
	p.StartDate.ApplyTo(&a.StartDate)
	p.EndDate.ApplyTo(&a.EndDate)
	p.Schedule.ApplyTo(&a.Schedule)
	p.Notes.ApplyTo(&a.Notes)
}

// FillDefaults starts the assignment now when no start date was given.
func (a *CaregiverAssignment) FillDefaults(now time.Time) {
	if a.StartDate.IsZero() {
		a.StartDate = now
	}
}

// ShiftObservation is a caregiver's report for one shift. New reports start
// as drafts.
type ShiftObservation struct {
	OwnedBase
	ShiftObservationTypeID int64     `json:"shift_observation_type_id" validate:"required,gt=0"`
	CaregiverID            uuid.UUID `json:"caregiver_id" validate:"required"`
	ShiftStart             time.Time `json:"shift_start" validate:"required"`
	ShiftEnd               time.Time `json:"shift_end" validate:"required,gtfield=ShiftStart"`
	PhysicalCondition      *string   `json:"physical_condition,omitempty" validate:"omitempty,max=50"`
	MentalState            *string   `json:"mental_state,omitempty" validate:"omitempty,max=50"`
	PainLevel              *int      `json:"pain_level,omitempty" validate:"omitempty,gte=0,lte=10"`
	IncidentsOccurred      bool      `json:"incidents_occurred"`
	IncidentDetails        *string   `json:"incident_details,omitempty"`
	HandoverNotes          *string   `json:"handover_notes,omitempty"`
	Status                 string    `json:"status" validate:"required,oneof=draft completed reviewed archived"`
}

type ShiftObservationPatch struct {
	ShiftObservationTypeID Optional[int64]     `json:"shift_observation_type_id"`
	CaregiverID            Optional[uuid.UUID] `json:"caregiver_id"`
	ShiftStart             Optional[time.Time] `json:"shift_start"`
	ShiftEnd               Optional[time.Time] `json:"shift_end"`
	PhysicalCondition      Optional[*string]   `json:"physical_condition"`
	MentalState            Optional[*string]   `json:"mental_state"`
	PainLevel              Optional[*int]      `json:"pain_level"`
	IncidentsOccurred      Optional[bool]      `json:"incidents_occurred"`
	IncidentDetails        Optional[*string]   `json:"incident_details"`
	HandoverNotes          Optional[*string]   `json:"handover_notes"`
	Status                 Optional[string]    `json:"status"`
}

func (p ShiftObservationPatch) ApplyTo(o *ShiftObservation) {
	p.ShiftObservationTypeID.ApplyTo(&o.ShiftObservationTypeID)
	p.CaregiverID.ApplyTo(&o.CaregiverID)
	p.ShiftStart.ApplyTo(&o.ShiftStart)
	p.ShiftEnd.ApplyTo(&o.ShiftEnd)
	p.PhysicalCondition.ApplyTo(&o.PhysicalCondition)
	p.MentalState.ApplyTo(&o.MentalState)
	p.PainLevel.ApplyTo(&o.PainLevel)
	p.IncidentsOccurred.ApplyTo(&o.IncidentsOccurred)
	p.IncidentDetails.ApplyTo(&o.IncidentDetails)
	p.HandoverNotes.ApplyTo(&o.HandoverNotes)
	p.Status.ApplyTo(&o.Status)
}

func (o *ShiftObservation) FillDefaults(time.Time) {
	if o.Status == "" {
		o.Status = "draft"
	}
}

// Reminder fires at ScheduledTime (HH:MM) on the listed ISO weekdays,
// 1 = Monday. An empty DaysOfWeek means every day.
type Reminder struct {
	OwnedBase
	ReminderTypeID int64   `json:"reminder_type_id" validate:"required,gt=0"`
	Title          string  `json:"title" validate:"required,max=200"`
	Description    *string `json:"description,omitempty"`
	ScheduledTime  string  `json:"scheduled_time" validate:"required,datetime=15:04"`
	DaysOfWeek     []int   `json:"days_of_week" validate:"omitempty,max=7,unique,dive,gte=1,lte=7"`
}

type ReminderPatch struct {
	ReminderTypeID Optional[int64]   `json:"reminder_type_id"`
	Title          Optional[string]  `json:"title"`
	Description    Optional[*string] `json:"description"`
	ScheduledTime  Optional[string]  `json:"scheduled_time"`
	DaysOfWeek     Optional[[]int]   `json:"days_of_week"`
}

func (p ReminderPatch) ApplyTo(r *Reminder) {
	p.ReminderTypeID.ApplyTo(&r.ReminderTypeID)
	p.Title.ApplyTo(&r.Title)
	p.Description.ApplyTo(&r.Description)
	p.ScheduledTime.ApplyTo(&r.ScheduledTime)
	p.DaysOfWeek.ApplyTo(&r.DaysOfWeek)
}

func (r *Reminder) FillDefaults(time.Time) {
	if r.DaysOfWeek == nil {
		r.DaysOfWeek = []int{}
	}
}

// Alert is a raised condition that stays open until resolved.
type Alert struct {
	OwnedBase
	AlertTypeID int64      `json:"alert_type_id" validate:"required,gt=0"`
	Message     string     `json:"message" validate:"required"`
	Severity    string     `json:"severity" validate:"required,oneof=low medium high critical"`
	IsResolved  bool       `json:"is_resolved"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

type AlertPatch struct {
	AlertTypeID Optional[int64]      `json:"alert_type_id"`
	Message     Optional[string]     `json:"message"`
	Severity    Optional[string]     `json:"severity"`
	IsResolved  Optional[bool]       `json:"is_resolved"`
	ResolvedAt  Optional[*time.Time] `json:"resolved_at"`
}

func (p AlertPatch) ApplyTo(a *Alert) {
	p.AlertTypeID.ApplyTo(&a.AlertTypeID)
	p.Message.ApplyTo(&a.Message)
	p.Severity.ApplyTo(&a.Severity)
	p.IsResolved.ApplyTo(&a.IsResolved)
	p.ResolvedAt.ApplyTo(&a.ResolvedAt)
}

func (a *Alert) FillDefaults(time.Time) {
	if a.Severity == "" {
		a.Severity = "medium"
	}
}

// Device is a monitoring device worn by or installed for a cared person.
type Device struct {
	OwnedBase
	DeviceTypeID  int64      `json:"device_type_id" validate:"required,gt=0"`
	SerialNumber  string     `json:"serial_number" validate:"required,max=100"`
	Name          string     `json:"name" validate:"required,max=100"`
	Location      *string    `json:"location,omitempty" validate:"omitempty,max=100"`
	Status        string     `json:"status" validate:"required,oneof=ready offline error off"`
	LastHeartbeat *time.Time `json:"last_heartbeat,omitempty"`
}

type DevicePatch struct {
	DeviceTypeID  Optional[int64]      `json:"device_type_id"`
	SerialNumber  Optional[string]     `json:"serial_number"`
	Name          Optional[string]     `json:"name"`
	Location      Optional[*string]    `json:"location"`
	Status        Optional[string]     `json:"status"`
	LastHeartbeat Optional[*time.Time] `json:"last_heartbeat"`
}

func (p DevicePatch) ApplyTo(d *Device) {
	p.DeviceTypeID.ApplyTo(&d.DeviceTypeID)
	p.SerialNumber.ApplyTo(&d.SerialNumber)
	p.Name.ApplyTo(&d.Name)
	p.Location.ApplyTo(&d.Location)
	p.Status.ApplyTo(&d.Status)
	p.LastHeartbeat.ApplyTo(&d.LastHeartbeat)
}

func (d *Device) FillDefaults(time.Time) {
	if d.Status == "" {
		d.Status = "ready"
	}
}
