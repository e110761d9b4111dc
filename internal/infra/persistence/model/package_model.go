package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CarePackageModel is the GORM-specific struct for the 'packages' table.
// Features are stored as a JSONB array.
type CarePackageModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageType  string    `gorm:"type:varchar(50);not null;index"`
	Name         string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_packages_name"`
	Description  *string   `gorm:"type:text"`
	PriceMonthly int64     `gorm:"not null"`
	PriceYearly  *int64
	Currency     string                      `gorm:"type:varchar(3);not null;default:'ARS'"`
	Features     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	IsFeatured   bool                        `gorm:"not null;default:false"`
	IsActive     bool                        `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CarePackageModel) TableName() string {
	return "packages"
}
