// Package entity contains the core business objects of careadmin: catalog
// lookups, cared persons and the records they own.
package entity

import "time"

// CatalogEntry is one row of a lookup table (alert type, status type, ...).
// Every catalog shares this shape; the table it lives in is chosen by CatalogKind.
type CatalogEntry struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required,max=50"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=255"`
	Category    *string   `json:"category,omitempty" validate:"omitempty,max=50"`
	IconName    *string   `json:"icon_name,omitempty" validate:"omitempty,max=50"`
	ColorCode   *string   `json:"color_code,omitempty" validate:"omitempty,len=7,hexcolor"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryValue returns the category or "" when unset.
func (e *CatalogEntry) CategoryValue() string {
	if e.Category == nil {
		return ""
	}

	return *e.Category
}

// CatalogPatch lists the fields an update may touch.
type CatalogPatch struct {
	Name        Optional[string]  `json:"name"`
	Description Optional[*string] `json:"description"`
	Category    Optional[*string] `json:"category"`
	IconName    Optional[*string] `json:"icon_name"`
	ColorCode   Optional[*string] `json:"color_code"`
	IsActive    Optional[bool]    `json:"is_active"`
}

// ApplyTo copies every supplied field onto e.
func (p CatalogPatch) ApplyTo(e *CatalogEntry) {
	p.Name.ApplyTo(&e.Name)
	p.Description.ApplyTo(&e.Description)
	p.Category.ApplyTo(&e.Category)
	p.IconName.ApplyTo(&e.IconName)
	p.ColorCode.ApplyTo(&e.ColorCode)
	p.IsActive.ApplyTo(&e.IsActive)
}

// CatalogFilter narrows a catalog listing.
type CatalogFilter struct {
	Skip       int
	Limit      int
	Category   *string
	ActiveOnly bool
}
