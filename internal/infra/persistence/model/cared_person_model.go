package model

import (
	"time"

	"github.com/google/uuid"
)

// CaredPersonModel is the GORM-specific struct for the 'cared_persons' table.
type CaredPersonModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName    string     `gorm:"type:varchar(255);not null"`
	DateOfBirth *time.Time `gorm:"type:date"`
	CareTypeID  *int64     `gorm:"index"`
	IsSelfCare  bool       `gorm:"not null;default:false"`
	Notes       *string    `gorm:"type:text"`
	IsActive    bool       `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CaredPersonModel) TableName() string {
	return "cared_persons"
}
