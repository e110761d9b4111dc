package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// The type id columns below are constrained by the migrator, not by GORM
// associations.

type CaregiverAssignmentModel struct {
	OwnedColumns
	CaregiverAssignmentTypeID int64     `gorm:"not null;index"`
	CaregiverID               uuid.UUID `gorm:"type:uuid;not null;index"`
	IsPrimary                 bool      `gorm:"not null;default:false"`
	StartDate                 time.Time `gorm:"not null"`
	EndDate                   *time.Time
	Schedule                  *string `gorm:"type:text"`
	Notes                     *string `gorm:"type:text"`
}

func (CaregiverAssignmentModel) TableName() string {
	return "caregiver_assignments"
}

type ShiftObservationModel struct {
	OwnedColumns
	ShiftObservationTypeID int64     `gorm:"not null;index"`
	CaregiverID            uuid.UUID `gorm:"type:uuid;not null;index"`
	ShiftStart             time.Time `gorm:"not null"`
	ShiftEnd               time.Time `gorm:"not null"`
	PhysicalCondition      *string   `gorm:"type:varchar(50)"`
	MentalState            *string   `gorm:"type:varchar(50)"`
	PainLevel              *int
	IncidentsOccurred      bool    `gorm:"not null;default:false"`
	IncidentDetails        *string `gorm:"type:text"`
	HandoverNotes          *string `gorm:"type:text"`
	Status                 string  `gorm:"type:varchar(50);not null;default:draft"`
}

func (ShiftObservationModel) TableName() string {
	return "shift_observations"
}

type ReminderModel struct {
	OwnedColumns
	ReminderTypeID int64                    `gorm:"not null;index"`
	Title          string                   `gorm:"type:varchar(200);not null"`
	Description    *string                  `gorm:"type:text"`
	ScheduledTime  string                   `gorm:"type:varchar(5);not null"`
	DaysOfWeek     datatypes.JSONSlice[int] `gorm:"type:jsonb"`
}

func (ReminderModel) TableName() string {
	return "reminders"
}

type AlertModel struct {
	OwnedColumns
	AlertTypeID int64  `gorm:"not null;index"`
	Message     string `gorm:"type:text;not null"`
	Severity    string `gorm:"type:varchar(20);not null;default:medium"`
	IsResolved  bool   `gorm:"not null;default:false"`
	ResolvedAt  *time.Time
}

func (AlertModel) TableName() string {
	return "alerts"
}

type DeviceModel struct {
	OwnedColumns
	DeviceTypeID  int64   `gorm:"not null;index"`
	SerialNumber  string  `gorm:"type:varchar(100);not null;index"`
	Name          string  `gorm:"type:varchar(100);not null"`
	Location      *string `gorm:"type:varchar(100)"`
	Status        string  `gorm:"type:varchar(20);not null;default:ready"`
	LastHeartbeat *time.Time
}

func (DeviceModel) TableName() string {
	return "devices"
}
