package entity

import (
	"time"

	"github.com/google/uuid"
)

// CaredPerson is the owner of every medical and activity record.
// Deleting one removes its owned records with it.
type CaredPerson struct {
	ID          uuid.UUID  `json:"id"`
	FullName    string     `json:"full_name" validate:"required,max=255"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	CareTypeID  *int64     `json:"care_type_id,omitempty" validate:"omitempty,gt=0"`
	IsSelfCare  bool       `json:"is_self_care"`
	Notes       *string    `json:"notes,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CaredPersonPatch struct {
	FullName    Optional[string]     `json:"full_name"`
	DateOfBirth Optional[*time.Time] `json:"date_of_birth"`
	CareTypeID  Optional[*int64]     `json:"care_type_id"`
	IsSelfCare  Optional[bool]       `json:"is_self_care"`
	Notes       Optional[*string]    `json:"notes"`
}

func (p CaredPersonPatch) ApplyTo(c *CaredPerson) {
	p.FullName.ApplyTo(&c.FullName)
	p.DateOfBirth.ApplyTo(&c.DateOfBirth)
	p.CareTypeID.ApplyTo(&c.CareTypeID)
	p.IsSelfCare.ApplyTo(&c.IsSelfCare)
	p.Notes.ApplyTo(&c.Notes)
}
