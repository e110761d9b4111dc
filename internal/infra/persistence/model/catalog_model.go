package model

import "time"

// CatalogEntryModel is the row shape shared by every lookup table. It has no
// TableName: repositories bind it to a table with db.Table(kind). Unique and
// foreign key constraints are created per table by the migrator because index
// names must be unique across the schema.
type CatalogEntryModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(50);not null"`
	Description *string `gorm:"type:varchar(255)"`
	Category    *string `gorm:"type:varchar(50)"`
	IconName    *string `gorm:"type:varchar(50)"`
	ColorCode   *string `gorm:"type:varchar(7)"`
	IsActive    bool    `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
